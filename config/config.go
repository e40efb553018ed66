package config

import (
	"log/slog"
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - backend.go: upstream API and session configuration
//   - database.go: Redis and the optional audit database
//   - http.go: HTTP server configuration
//   - notifications.go: WhatsApp document delivery
type AppConfig struct {
	// IsDev controls development mode behavior (template hot reloading, detailed errors).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	HTTP    HTTPConfig
	Backend BackendConfig `envPrefix:"BACKEND_"`
	Session SessionConfig `envPrefix:"SESSION_"`

	Redis RedisConfig `envPrefix:"REDIS_"`
	Audit AuditConfig

	WhatsApp WhatsAppConfig `envPrefix:"WHATSAPP_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Backend.Sanitize()
	c.Session.Sanitize()
	c.Audit.Sanitize()
	c.WhatsApp.Sanitize()

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.detectDevMode()
}

// SlogLevel maps LogLevel onto a slog.Level, defaulting to info.
func (c *AppConfig) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
