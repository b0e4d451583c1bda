package contact

import "github.com/jmvelez/portfolio-api/pkg/errx"

var contactErrors = errx.NewRegistry("CONTACT")

// The registered messages are the only failure text a caller ever sees.
// Transport codes, key names and causes stay in the logs.
var (
	ErrConfigIncomplete     = contactErrors.Register("CONFIG_INCOMPLETE", errx.TypeInternal, 500, "The server is not configured to accept messages right now. Please try again later.")
	ErrMissingFields        = contactErrors.Register("MISSING_FIELDS", errx.TypeValidation, 400, "All fields are required.")
	ErrInvalidEmail         = contactErrors.Register("INVALID_EMAIL", errx.TypeValidation, 400, "Please provide a valid email address.")
	ErrTransportUnavailable = contactErrors.Register("TRANSPORT_UNAVAILABLE", errx.TypeExternal, 500, "Unable to send your message right now. Please try again later.")
	ErrSendFailed           = contactErrors.Register("SEND_FAILED", errx.TypeExternal, 500, "Failed to send your message. Please try again later.")
)
