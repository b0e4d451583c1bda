package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jmvelez/portfolio-api/internal/httpapi"
	"github.com/jmvelez/portfolio-api/pkg/logx"
)

func main() {
	logx.Info("Starting portfolio API server...")

	container := NewContainer()
	defer container.Cleanup()

	app := fiber.New(fiber.Config{
		AppName:               "portfolio-api",
		DisableStartupMessage: true,
		ErrorHandler:          httpapi.ErrorHandler,
		BodyLimit:             64 * 1024, // submissions are a few KB at most
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return uuid.NewString()
		},
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:  container.Config.AllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods:  "GET, POST, HEAD, OPTIONS",
		ExposeHeaders: "X-Request-ID",
	}))

	app.Use(helmet.New())

	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} ${path} | ${ip} | ${locals:requestid}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
	}))

	h := httpapi.NewHandler(container.Pipeline, container.Transport.Name(), container.Config.Mail.SiteName)

	app.Get("/", h.Health)
	app.Get("/api/health", h.Health)
	app.Post("/api/contact", contactLimiter(container), h.Contact)

	app.Use(httpapi.NotFound)

	startServer(app, container.Config.Port)
}

// contactLimiter admits at most RateLimit.Max submissions per source IP per
// window. Counters live in the container's storage (redis when configured).
func contactLimiter(container *Container) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        container.Config.RateLimit.Max,
		Expiration: container.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: httpapi.LimitReached,
		Storage:      container.LimiterStorage,
	})
}

// startServer starts the server and blocks until shutdown
func startServer(app *fiber.App, port string) {
	go func() {
		logx.Infof("Server listening on port %s", port)
		if err := app.Listen(":" + port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	gracefulShutdown(app)
}

// gracefulShutdown handles graceful server shutdown
func gracefulShutdown(app *fiber.App) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logx.Infof("Received signal: %v", sig)
	logx.Info("Shutting down gracefully...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}
