// cmd/container.go
//
// Composition root. Resolves configuration once, picks the mail transport
// and wires the submission pipeline and limiter storage.
package main

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jmvelez/portfolio-api/internal/config"
	"github.com/jmvelez/portfolio-api/internal/contact"
	"github.com/jmvelez/portfolio-api/internal/ratelimit"
	"github.com/jmvelez/portfolio-api/pkg/logx"
	"github.com/jmvelez/portfolio-api/pkg/mailx"
	"github.com/jmvelez/portfolio-api/pkg/mailx/mailxconsole"
	"github.com/jmvelez/portfolio-api/pkg/mailx/mailxses"
	"github.com/jmvelez/portfolio-api/pkg/mailx/mailxsmtp"
)

// Container holds the composed application dependencies.
type Container struct {
	Config    *config.Config
	Transport mailx.Transport
	Pipeline  *contact.Pipeline

	// LimiterStorage backs the rate limiter; nil means fiber's in-process
	// default, which is fine for a single instance.
	LimiterStorage fiber.Storage

	redisStorage *ratelimit.RedisStorage
}

// NewContainer builds the application container.
func NewContainer() *Container {
	cfg := config.Load()
	c := &Container{Config: cfg}

	// Missing mail keys are an operator problem, not a startup failure:
	// health probes must keep answering while submissions get rejected.
	if missing := cfg.MissingKeys(); len(missing) > 0 {
		logx.WithField("keys", strings.Join(missing, ", ")).
			Warn("mail configuration incomplete, contact submissions will be rejected")
	}

	c.initTransport()
	c.initPipeline()
	c.initLimiterStorage()

	return c
}

func (c *Container) initTransport() {
	switch c.Config.Mail.Provider {
	case "ses":
		transport, err := mailxses.New(context.Background(), mailxses.Config{
			Region:          c.Config.Mail.AWSRegion,
			AccessKeyID:     c.Config.Mail.AWSAccessKeyID,
			SecretAccessKey: c.Config.Mail.AWSSecretAccessKey,
		})
		if err != nil {
			logx.Fatalf("Failed to initialize SES transport: %v", err)
		}
		c.Transport = transport

	case "console":
		c.Transport = mailxconsole.New()

	case "smtp":
		c.Transport = mailxsmtp.New(mailxsmtp.Config{
			Host:        c.Config.Mail.Host,
			Port:        c.Config.Mail.SMTPPort,
			Username:    c.Config.Mail.User,
			Password:    c.Config.Mail.Pass,
			InsecureTLS: c.Config.Mail.InsecureTLS,
		})

	default:
		logx.Fatalf("Unknown MAIL_PROVIDER: %s (use 'smtp', 'ses' or 'console')", c.Config.Mail.Provider)
	}

	logx.Infof("Mail transport configured: %s", c.Transport.Name())
}

func (c *Container) initPipeline() {
	pipeline, err := contact.NewPipeline(c.Config.Mail, c.Transport)
	if err != nil {
		logx.Fatalf("Failed to initialize contact pipeline: %v", err)
	}
	c.Pipeline = pipeline
}

func (c *Container) initLimiterStorage() {
	if c.Config.Redis.Addr == "" {
		return
	}

	storage, err := ratelimit.NewRedisStorage(
		c.Config.Redis.Addr,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)
	if err != nil {
		logx.Fatalf("Failed to connect to Redis: %v (unset REDIS_ADDR to use in-process counters)", err)
	}

	c.redisStorage = storage
	c.LimiterStorage = storage
	logx.Infof("Rate limiter backed by redis at %s", c.Config.Redis.Addr)
}

// Cleanup releases held resources.
func (c *Container) Cleanup() {
	if c.redisStorage != nil {
		if err := c.redisStorage.Close(); err != nil {
			logx.Errorf("Error closing redis: %v", err)
		}
	}
}
