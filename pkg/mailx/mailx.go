package mailx

import (
	"context"
)

// Transport delivers email through a concrete backend (SMTP, SES, console).
type Transport interface {
	// Verify checks that the transport can reach and authenticate against
	// its backend without sending anything. Callers use it to fail fast
	// before composing a message.
	Verify(ctx context.Context) error

	// Send delivers a single message and returns the backend's message id.
	Send(ctx context.Context, msg Message) (string, error)

	// Name returns the human-readable name of this transport.
	Name() string
}

// ValidateMessage checks the structural invariants every transport relies on.
func ValidateMessage(msg Message) error {
	if len(msg.To) == 0 {
		return mailxErrors.New(ErrInvalidMessage).WithDetail("reason", "no recipients")
	}
	if msg.Subject == "" {
		return mailxErrors.New(ErrInvalidMessage).WithDetail("reason", "empty subject")
	}
	if msg.TextBody == "" && msg.HTMLBody == "" {
		return mailxErrors.New(ErrInvalidMessage).WithDetail("reason", "empty body")
	}
	return nil
}
