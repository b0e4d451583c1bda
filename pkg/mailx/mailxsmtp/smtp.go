// Package mailxsmtp implements mailx.Transport over plain SMTP with
// STARTTLS and PLAIN authentication.
package mailxsmtp

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"

	"github.com/google/uuid"

	"github.com/jmvelez/portfolio-api/pkg/mailx"
)

// Config holds the connection settings for an SMTP transport.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string

	// InsecureTLS skips certificate verification during STARTTLS. Some
	// self-hosted relays present certificates for a different hostname.
	InsecureTLS bool
}

// SMTPTransport sends mail through a single SMTP account.
type SMTPTransport struct {
	cfg Config
}

// New creates a new SMTP transport.
func New(cfg Config) *SMTPTransport {
	return &SMTPTransport{cfg: cfg}
}

// Name returns the transport name.
func (t *SMTPTransport) Name() string {
	return "smtp"
}

// Verify dials the server, negotiates STARTTLS and authenticates, then
// quits without sending anything. A nil return means the account is usable.
func (t *SMTPTransport) Verify(ctx context.Context) error {
	c, err := t.connect(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	return c.Quit()
}

// Send delivers a single message and returns a synthesized message id.
// SMTP itself does not hand back an identifier, so the Message-ID header
// written into the payload doubles as the returned id.
func (t *SMTPTransport) Send(ctx context.Context, msg mailx.Message) (string, error) {
	if err := mailx.ValidateMessage(msg); err != nil {
		return "", err
	}

	from, err := mail.ParseAddress(msg.From)
	if err != nil {
		return "", smtpErrors.NewWithCause(ErrBuildMessage, err).WithDetail("from", msg.From)
	}

	msgID := fmt.Sprintf("<%s@%s>", uuid.NewString(), t.cfg.Host)
	payload, err := buildPayload(msg, msgID)
	if err != nil {
		return "", err
	}

	c, err := t.connect(ctx)
	if err != nil {
		return "", err
	}
	defer c.Close()

	if err := c.Mail(from.Address); err != nil {
		return "", smtpErrors.NewWithCause(ErrSendFailed, err).WithDetail("phase", "MAIL FROM")
	}
	for _, rcpt := range msg.To {
		if err := c.Rcpt(rcpt); err != nil {
			return "", smtpErrors.NewWithCause(ErrSendFailed, err).WithDetail("phase", "RCPT TO")
		}
	}

	w, err := c.Data()
	if err != nil {
		return "", smtpErrors.NewWithCause(ErrSendFailed, err).WithDetail("phase", "DATA")
	}
	if _, err := w.Write(payload); err != nil {
		return "", smtpErrors.NewWithCause(ErrSendFailed, err).WithDetail("phase", "DATA")
	}
	if err := w.Close(); err != nil {
		return "", smtpErrors.NewWithCause(ErrSendFailed, err).WithDetail("phase", "DATA")
	}

	// The message was accepted at DATA; a failed QUIT is not a delivery failure.
	_ = c.Quit()

	return msgID, nil
}

// connect dials the server and runs the EHLO / STARTTLS / AUTH handshake.
func (t *SMTPTransport) connect(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(t.cfg.Host, strconv.Itoa(t.cfg.Port))

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, smtpErrors.NewWithCause(ErrConnectFailed, err).WithDetail("addr", addr)
	}

	c, err := smtp.NewClient(conn, t.cfg.Host)
	if err != nil {
		conn.Close()
		return nil, smtpErrors.NewWithCause(ErrConnectFailed, err).WithDetail("addr", addr)
	}

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{
			ServerName:         t.cfg.Host,
			InsecureSkipVerify: t.cfg.InsecureTLS,
		}
		if err := c.StartTLS(tlsCfg); err != nil {
			c.Close()
			return nil, smtpErrors.NewWithCause(ErrConnectFailed, err).WithDetail("phase", "STARTTLS")
		}
	}

	if t.cfg.Username != "" {
		auth := smtp.PlainAuth("", t.cfg.Username, t.cfg.Password, t.cfg.Host)
		if err := c.Auth(auth); err != nil {
			c.Close()
			return nil, smtpErrors.NewWithCause(ErrAuthFailed, err).WithDetail("username", t.cfg.Username)
		}
	}

	return c, nil
}
