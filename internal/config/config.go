// Package config provides environment-first configuration resolved once at
// process start. A .env file is honored when present; real environment
// variables always win.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the complete application configuration.
type Config struct {
	Port           string
	AllowedOrigins string
	Mail           MailConfig
	RateLimit      RateLimitConfig
	Redis          RedisConfig
}

// MailConfig holds the mail account and transport settings.
type MailConfig struct {
	// Provider selects the transport: "smtp", "ses" or "console".
	Provider string

	// User is the mail-account identity. It is also the address the
	// contact notifications are delivered to.
	User string

	// Pass is the mail-account secret (SMTP only).
	Pass string

	// From is the address notifications are sent from.
	From string

	// SiteName is the display name embedded in the From header and bodies.
	SiteName string

	Host        string
	SMTPPort    int
	InsecureTLS bool

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

// RateLimitConfig holds the per-IP admission window for the contact route.
type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

// RedisConfig holds the optional redis backend for rate-limit counters.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load reads configuration from the environment. It never fails: missing
// required keys are reported by MissingKeys so the caller decides whether
// that is fatal.
func Load() *Config {
	// Ignore the error: a missing .env file just means plain env vars.
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnvVars()
	return cfg
}

// MissingKeys returns the names of required environment variables that are
// absent or empty. An empty result means the mail pipeline may run.
func (c *Config) MissingKeys() []string {
	var missing []string
	if c.Mail.User == "" {
		missing = append(missing, "MAIL_USER")
	}
	if c.Mail.Pass == "" && c.Mail.Provider == "smtp" {
		missing = append(missing, "MAIL_PASS")
	}
	if c.Mail.From == "" {
		missing = append(missing, "MAIL_FROM")
	}
	if c.Mail.SiteName == "" {
		missing = append(missing, "SITE_NAME")
	}
	return missing
}

// Complete reports whether every required mail key is present.
func (m MailConfig) Complete() bool {
	if m.User == "" || m.From == "" || m.SiteName == "" {
		return false
	}
	if m.Provider == "smtp" && m.Pass == "" {
		return false
	}
	return true
}

func (c *Config) applyDefaults() {
	c.Port = "8080"
	c.AllowedOrigins = "*"
	c.Mail.Provider = "smtp"
	c.Mail.Host = "smtp.gmail.com"
	c.Mail.SMTPPort = 587
	c.Mail.AWSRegion = "us-east-1"
	c.RateLimit.Max = 5
	c.RateLimit.Window = 15 * time.Minute
}

func (c *Config) applyEnvVars() {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = v
	}

	if v := os.Getenv("MAIL_PROVIDER"); v != "" {
		c.Mail.Provider = v
	}
	if v := os.Getenv("MAIL_USER"); v != "" {
		c.Mail.User = v
	}
	if v := os.Getenv("MAIL_PASS"); v != "" {
		c.Mail.Pass = v
	}
	if v := os.Getenv("MAIL_FROM"); v != "" {
		c.Mail.From = v
	}
	if v := os.Getenv("SITE_NAME"); v != "" {
		c.Mail.SiteName = v
	}
	if v := os.Getenv("MAIL_HOST"); v != "" {
		c.Mail.Host = v
	}
	if v := os.Getenv("MAIL_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Mail.SMTPPort = port
		}
	}
	if v := os.Getenv("MAIL_TLS_SKIP_VERIFY"); v != "" {
		c.Mail.InsecureTLS = v == "true" || v == "1"
	}

	if v := os.Getenv("AWS_REGION"); v != "" {
		c.Mail.AWSRegion = v
	}
	if v := os.Getenv("AWS_ACCESS_KEY_ID"); v != "" {
		c.Mail.AWSAccessKeyID = v
	}
	if v := os.Getenv("AWS_SECRET_ACCESS_KEY"); v != "" {
		c.Mail.AWSSecretAccessKey = v
	}

	if v := os.Getenv("RATE_LIMIT_MAX"); v != "" {
		if max, err := strconv.Atoi(v); err == nil && max > 0 {
			c.RateLimit.Max = max
		}
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		if window, err := time.ParseDuration(v); err == nil && window > 0 {
			c.RateLimit.Window = window
		}
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			c.Redis.DB = db
		}
	}
}
