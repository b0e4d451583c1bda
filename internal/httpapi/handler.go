// Package httpapi contains the Fiber handlers and the error-to-response
// mapping. Responses use a fixed envelope: {success, message} on 200 and
// {success, error} otherwise, with caller-safe text only.
package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmvelez/portfolio-api/internal/contact"
	"github.com/jmvelez/portfolio-api/pkg/errx"
	"github.com/jmvelez/portfolio-api/pkg/logx"
)

// Handler holds the handlers' dependencies.
type Handler struct {
	pipeline  *contact.Pipeline
	transport string
	siteName  string
}

// NewHandler creates the API handler set.
func NewHandler(pipeline *contact.Pipeline, transportName, siteName string) *Handler {
	return &Handler{
		pipeline:  pipeline,
		transport: transportName,
		siteName:  siteName,
	}
}

// Health answers liveness probes. It succeeds whenever the process is up.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"service":   "portfolio-api",
		"site":      h.siteName,
		"transport": h.transport,
	})
}

// Contact accepts a contact-form submission and runs it through the pipeline.
func (h *Handler) Contact(c *fiber.Ctx) error {
	var sub contact.Submission
	if err := c.BodyParser(&sub); err != nil {
		return apiErrors.NewWithCause(ErrBadRequest, err)
	}

	message, err := h.pipeline.Handle(c.Context(), sub)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// NotFound handles unmatched routes.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"error":   ErrNotFound.Message,
	})
}

// LimitReached is the rate limiter's rejection response.
func LimitReached(c *fiber.Ctx) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
		"success": false,
		"error":   ErrTooManyRequests.Message,
	})
}

// ErrorHandler converts errors into the response envelope. Diagnostics
// (codes, details, causes) are logged here and never serialized.
func ErrorHandler(c *fiber.Ctx, err error) error {
	entry := logx.WithFields(logx.Fields{
		"path":       c.Path(),
		"method":     c.Method(),
		"ip":         c.IP(),
		"request_id": c.Locals("requestid"),
	})

	var e *errx.Error
	if errx.As(err, &e) {
		fields := logx.Fields{"code": e.Code, "type": e.Type.String()}
		for k, v := range e.Details {
			fields[k] = v
		}
		entry.WithFields(fields).WithError(e.Err).Warnf("request failed: %s", e.Message)

		return c.Status(e.HTTPStatus).JSON(fiber.Map{
			"success": false,
			"error":   e.Message,
		})
	}

	if fe, ok := err.(*fiber.Error); ok {
		entry.Warnf("request failed: %s", fe.Message)
		return c.Status(fe.Code).JSON(fiber.Map{
			"success": false,
			"error":   fe.Message,
		})
	}

	entry.WithError(err).Error("unhandled request error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "Something went wrong. Please try again later.",
	})
}
