package httpapi

import "github.com/jmvelez/portfolio-api/pkg/errx"

var apiErrors = errx.NewRegistry("API")

var (
	ErrBadRequest      = apiErrors.Register("BAD_REQUEST", errx.TypeValidation, 400, "Invalid request body.")
	ErrNotFound        = apiErrors.Register("NOT_FOUND", errx.TypeNotFound, 404, "Endpoint not found")
	ErrTooManyRequests = apiErrors.Register("TOO_MANY_REQUESTS", errx.TypeRateLimit, 429, "Too many requests. Please try again later.")
)
