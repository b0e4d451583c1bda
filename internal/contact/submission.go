package contact

import (
	"regexp"
	"strings"
)

// Field length caps, in runes. Anything longer is silently cut.
const (
	maxFullNameLen = 100
	maxEmailLen    = 100
	maxMessageLen  = 1000
)

// emailPattern is deliberately loose: something, an @, something, a dot,
// something. Real deliverability is the transport's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is the raw contact-form payload as received from a caller.
type Submission struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

// SanitizedSubmission is a Submission after trimming, case-folding and
// length-capping. Sanitizing an already-sanitized value is a no-op.
type SanitizedSubmission struct {
	FullName string
	Email    string
	Message  string
}

// Sanitize derives the cleaned submission: fields trimmed, email lower-cased,
// everything capped to its length limit.
func (s Submission) Sanitize() SanitizedSubmission {
	return SanitizedSubmission{
		FullName: truncateRunes(strings.TrimSpace(s.FullName), maxFullNameLen),
		Email:    truncateRunes(strings.ToLower(strings.TrimSpace(s.Email)), maxEmailLen),
		Message:  truncateRunes(strings.TrimSpace(s.Message), maxMessageLen),
	}
}

// HasAllFields reports whether every field carries a value.
func (s Submission) HasAllFields() bool {
	return s.FullName != "" && s.Email != "" && s.Message != ""
}

// ValidEmail reports whether the email field has a plausible shape.
func (s Submission) ValidEmail() bool {
	return emailPattern.MatchString(s.Email)
}

// truncateRunes cuts s to at most max runes, never splitting a rune.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
