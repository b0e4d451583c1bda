package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jmvelez/portfolio-api/internal/config"
	"github.com/jmvelez/portfolio-api/internal/contact"
	"github.com/jmvelez/portfolio-api/internal/httpapi"
	"github.com/jmvelez/portfolio-api/pkg/mailx"
)

// mockTransport is a fake mail transport for exercising the HTTP surface.
type mockTransport struct {
	verifyErr error
	sendErr   error
	sendCalls int
}

func (m *mockTransport) Verify(_ context.Context) error { return m.verifyErr }

func (m *mockTransport) Send(_ context.Context, _ mailx.Message) (string, error) {
	m.sendCalls++
	if m.sendErr != nil {
		return "", m.sendErr
	}
	return "msg-1", nil
}

func (m *mockTransport) Name() string { return "mock" }

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func newApp(t *testing.T, transport mailx.Transport) *fiber.App {
	t.Helper()

	cfg := config.MailConfig{
		Provider: "smtp",
		User:     "owner@site.dev",
		Pass:     "secret",
		From:     "no-reply@site.dev",
		SiteName: "My Portfolio",
	}

	pipeline, err := contact.NewPipeline(cfg, transport)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	h := httpapi.NewHandler(pipeline, transport.Name(), cfg.SiteName)
	app.Get("/", h.Health)
	app.Get("/api/health", h.Health)
	app.Post("/api/contact", h.Contact)
	app.Use(httpapi.NotFound)

	return app
}

func postContact(t *testing.T, app *fiber.App, body string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("bad response body %q: %v", raw, err)
	}
	return resp.StatusCode, env
}

func TestHealth(t *testing.T) {
	app := newApp(t, &mockTransport{})

	for _, path := range []string{"/", "/api/health"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != 200 {
			t.Errorf("GET %s = %d, want 200", path, resp.StatusCode)
		}
		resp.Body.Close()
	}
}

func TestContact_Success(t *testing.T) {
	app := newApp(t, &mockTransport{})

	status, env := postContact(t, app, `{"fullname":"Jane Doe","email":"jane@x.com","message":"Hi there"}`)
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	if !env.Success {
		t.Fatalf("success = false, error = %q", env.Error)
	}
	if env.Message != "Your message has been sent successfully!" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestContact_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing fields", `{"fullname":"Jane Doe"}`},
		{"invalid email", `{"fullname":"Jane","email":"not-an-email","message":"hi"}`},
		{"malformed json", `{"fullname":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := &mockTransport{}
			app := newApp(t, mock)

			status, env := postContact(t, app, tc.body)
			if status != 400 {
				t.Fatalf("status = %d, want 400", status)
			}
			if env.Success || env.Error == "" {
				t.Fatalf("expected an error envelope, got %+v", env)
			}
			if mock.sendCalls != 0 {
				t.Fatal("transport sent mail for an invalid submission")
			}
		})
	}
}

func TestContact_TransportFailureIsGeneric(t *testing.T) {
	app := newApp(t, &mockTransport{sendErr: errors.New("dial tcp 10.0.0.5:587: i/o timeout")})

	status, env := postContact(t, app, `{"fullname":"Jane","email":"jane@x.com","message":"hi"}`)
	if status != 500 {
		t.Fatalf("status = %d, want 500", status)
	}
	if env.Success {
		t.Fatal("expected failure envelope")
	}
	if strings.Contains(env.Error, "10.0.0.5") || strings.Contains(env.Error, "dial") {
		t.Fatalf("response leaks transport internals: %q", env.Error)
	}
}

func TestNotFound(t *testing.T) {
	app := newApp(t, &mockTransport{})

	resp, err := app.Test(httptest.NewRequest("GET", "/nope", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 404 {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatal(err)
	}
	if env.Error != "Endpoint not found" {
		t.Fatalf("error = %q", env.Error)
	}
}

func TestContact_RateLimited(t *testing.T) {
	mock := &mockTransport{}

	cfg := config.MailConfig{
		Provider: "smtp",
		User:     "owner@site.dev",
		Pass:     "secret",
		From:     "no-reply@site.dev",
		SiteName: "My Portfolio",
	}
	pipeline, err := contact.NewPipeline(cfg, mock)
	if err != nil {
		t.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          httpapi.ErrorHandler,
	})
	h := httpapi.NewHandler(pipeline, mock.Name(), cfg.SiteName)
	app.Post("/api/contact", limiter.New(limiter.Config{
		Max:          2,
		Expiration:   time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string { return c.IP() },
		LimitReached: httpapi.LimitReached,
	}), h.Contact)

	body := `{"fullname":"Jane","email":"jane@x.com","message":"hi"}`
	for i := 0; i < 2; i++ {
		status, _ := postContact(t, app, body)
		if status != 200 {
			t.Fatalf("request %d: status = %d, want 200", i+1, status)
		}
	}

	status, env := postContact(t, app, body)
	if status != 429 {
		t.Fatalf("status = %d, want 429", status)
	}
	if env.Success || env.Error == "" {
		t.Fatalf("expected rate-limit envelope, got %+v", env)
	}
	if mock.sendCalls != 2 {
		t.Fatalf("sendCalls = %d, want 2", mock.sendCalls)
	}
}
