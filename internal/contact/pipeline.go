// Package contact implements the contact-form submission pipeline: a chain
// of hard gates from raw payload to a dispatched owner notification. Each
// invocation is independent; there is no cross-request state here.
package contact

import (
	"context"
	"net/mail"

	"github.com/jmvelez/portfolio-api/internal/config"
	"github.com/jmvelez/portfolio-api/pkg/logx"
	"github.com/jmvelez/portfolio-api/pkg/mailx"
)

// SuccessMessage is the confirmation returned for a dispatched submission.
const SuccessMessage = "Your message has been sent successfully!"

// Pipeline validates, sanitizes and dispatches contact-form submissions.
type Pipeline struct {
	mail      config.MailConfig
	transport mailx.Transport
	templates *mailx.TemplateRegistry
}

// NewPipeline creates a pipeline bound to a mail configuration and transport.
func NewPipeline(mailCfg config.MailConfig, transport mailx.Transport) (*Pipeline, error) {
	templates := mailx.NewTemplateRegistry()
	if err := templates.RegisterHTML(notificationTemplate, notificationHTML); err != nil {
		return nil, err
	}
	if err := templates.RegisterText(notificationTemplate, notificationText); err != nil {
		return nil, err
	}

	return &Pipeline{
		mail:      mailCfg,
		transport: transport,
		templates: templates,
	}, nil
}

// Handle runs one submission through the pipeline. The first failing gate
// short-circuits; the returned error always carries a caller-safe message.
// On success the confirmation message is returned.
func (p *Pipeline) Handle(ctx context.Context, sub Submission) (string, error) {
	if !p.mail.Complete() {
		logx.WithField("provider", p.mail.Provider).
			Error("contact: rejected submission, mail configuration incomplete")
		return "", contactErrors.New(ErrConfigIncomplete)
	}

	if !sub.HasAllFields() {
		return "", contactErrors.New(ErrMissingFields)
	}

	if !sub.ValidEmail() {
		return "", contactErrors.New(ErrInvalidEmail)
	}

	clean := sub.Sanitize()
	// Whitespace-only fields survive the presence gate but trim to nothing.
	if clean.FullName == "" || clean.Message == "" {
		return "", contactErrors.New(ErrMissingFields)
	}

	if err := p.transport.Verify(ctx); err != nil {
		logx.WithError(err).
			WithField("transport", p.transport.Name()).
			Error("contact: transport verification failed")
		return "", contactErrors.NewWithCause(ErrTransportUnavailable, err)
	}

	msg, err := p.compose(clean)
	if err != nil {
		return "", err
	}

	id, err := p.transport.Send(ctx, msg)
	if err != nil {
		logx.WithError(err).
			WithFields(logx.Fields{
				"transport": p.transport.Name(),
				"from":      clean.Email,
			}).
			Error("contact: dispatch failed")
		return "", contactErrors.NewWithCause(ErrSendFailed, err)
	}

	logx.WithFields(logx.Fields{
		"transport":  p.transport.Name(),
		"message_id": id,
		"from":       clean.Email,
	}).Info("contact: submission dispatched")

	return SuccessMessage, nil
}

// compose builds the owner notification deterministically from the sanitized
// submission. The site owner is always the recipient; Reply-To points at the
// submitter so the owner can answer directly.
func (p *Pipeline) compose(clean SanitizedSubmission) (mailx.Message, error) {
	data := templateData{
		SiteName: p.mail.SiteName,
		FullName: clean.FullName,
		Email:    clean.Email,
		Message:  clean.Message,
	}

	htmlBody, err := p.templates.RenderHTML(notificationTemplate, data)
	if err != nil {
		return mailx.Message{}, err
	}
	textBody, err := p.templates.RenderText(notificationTemplate, data)
	if err != nil {
		return mailx.Message{}, err
	}

	from := mail.Address{Name: p.mail.SiteName, Address: p.mail.From}

	return mailx.Message{
		From:     from.String(),
		To:       []string{p.mail.User},
		ReplyTo:  clean.Email,
		Subject:  "New Contact - " + clean.FullName,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}, nil
}
