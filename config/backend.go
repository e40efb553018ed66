package config

import (
	"strings"
	"time"
)

// BackendConfig describes the upstream uniform-store API the console drives.
type BackendConfig struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:5000"`
	Timeout time.Duration `env:"TIMEOUT"  envDefault:"30s"`
}

// Sanitize trims the base URL and enforces a positive timeout.
func (c *BackendConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
}

// SessionConfig controls the server-side operator session.
type SessionConfig struct {
	// TTL applies when the backend token carries no readable expiry.
	TTL time.Duration `env:"TTL" envDefault:"12h"`
	// KeyPrefix namespaces the token and identity keys in Redis.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"session:"`
}

// Sanitize enforces a usable TTL and prefix.
func (c *SessionConfig) Sanitize() {
	if c.TTL <= 0 {
		c.TTL = 12 * time.Hour
	}
	if strings.TrimSpace(c.KeyPrefix) == "" {
		c.KeyPrefix = "session:"
	}
}
