package config

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// CookieDomain is the domain for session cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`

	// CompressionEnabled enables gzip compression for text-based responses.
	CompressionEnabled bool `env:"HTTP_COMPRESSION_ENABLED" envDefault:"false"`

	// CompressionLevel is the gzip compression level (1-9).
	CompressionLevel int `env:"HTTP_COMPRESSION_LEVEL" envDefault:"6"`

	// LoginRateLimit caps credential submissions per client IP per minute.
	LoginRateLimit int `env:"HTTP_LOGIN_RATE_LIMIT" envDefault:"10"`

	// SSLRedirect makes the security headers middleware redirect plain HTTP to HTTPS.
	SSLRedirect bool `env:"HTTP_SECURE_SSL_REDIRECT" envDefault:"false"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.CompressionLevel < 1 {
		h.CompressionLevel = 1
	}
	if h.CompressionLevel > 9 {
		h.CompressionLevel = 9
	}
	if h.LoginRateLimit <= 0 {
		h.LoginRateLimit = 10
	}
}
