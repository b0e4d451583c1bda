package mailxsmtp

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
	"time"

	"github.com/jmvelez/portfolio-api/pkg/mailx"
)

// buildPayload assembles the RFC 5322 message bytes. Messages carrying both
// a text and an HTML body become multipart/alternative; single-body messages
// stay a plain single part.
func buildPayload(msg mailx.Message, msgID string) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", msg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(msg.To, ", "))
	if msg.ReplyTo != "" {
		fmt.Fprintf(&buf, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&buf, "Message-ID: %s\r\n", msgID)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")

	if msg.TextBody != "" && msg.HTMLBody != "" {
		writer := multipart.NewWriter(&buf)
		fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", writer.Boundary())

		textHeader := make(textproto.MIMEHeader)
		textHeader.Set("Content-Type", "text/plain; charset=UTF-8")
		part, err := writer.CreatePart(textHeader)
		if err != nil {
			return nil, smtpErrors.NewWithCause(ErrBuildMessage, err)
		}
		part.Write([]byte(msg.TextBody))

		htmlHeader := make(textproto.MIMEHeader)
		htmlHeader.Set("Content-Type", "text/html; charset=UTF-8")
		part, err = writer.CreatePart(htmlHeader)
		if err != nil {
			return nil, smtpErrors.NewWithCause(ErrBuildMessage, err)
		}
		part.Write([]byte(msg.HTMLBody))

		writer.Close()
		return buf.Bytes(), nil
	}

	if msg.HTMLBody != "" {
		fmt.Fprintf(&buf, "Content-Type: text/html; charset=UTF-8\r\n\r\n")
		buf.WriteString(msg.HTMLBody)
	} else {
		fmt.Fprintf(&buf, "Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		buf.WriteString(msg.TextBody)
	}

	return buf.Bytes(), nil
}
