// Package mailxconsole implements mailx.Transport by logging messages
// instead of sending them. Intended for development and testing.
package mailxconsole

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jmvelez/portfolio-api/pkg/logx"
	"github.com/jmvelez/portfolio-api/pkg/mailx"
)

// ConsoleTransport prints messages to the terminal via logx.
type ConsoleTransport struct{}

// New creates a new console transport.
func New() *ConsoleTransport {
	return &ConsoleTransport{}
}

// Name returns the transport name.
func (t *ConsoleTransport) Name() string {
	return "console"
}

// Verify always succeeds; there is nothing to connect to.
func (t *ConsoleTransport) Verify(_ context.Context) error {
	return nil
}

// Send logs the message details and returns a generated id.
func (t *ConsoleTransport) Send(_ context.Context, msg mailx.Message) (string, error) {
	if err := mailx.ValidateMessage(msg); err != nil {
		return "", err
	}

	id := uuid.NewString()
	logx.WithFields(logx.Fields{
		"from":       msg.From,
		"to":         strings.Join(msg.To, ", "),
		"subject":    msg.Subject,
		"message_id": id,
	}).Info("mailx/console: email sent (dev mode)")

	if msg.TextBody != "" {
		logx.Debugf("mailx/console: text body:\n%s", msg.TextBody)
	}
	if msg.HTMLBody != "" {
		logx.Debugf("mailx/console: html body:\n%s", msg.HTMLBody)
	}

	return id, nil
}
