package config

import (
	"log/slog"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "http://localhost:5000", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "session:", cfg.Session.KeyPrefix)
	assert.Equal(t, "localhost:6379", cfg.Redis.URI)
	assert.False(t, cfg.WhatsApp.Enabled)
	assert.Equal(t, "invoice_template", cfg.WhatsApp.TemplateName)
	assert.Equal(t, 10, cfg.HTTP.LoginRateLimit)
}

func TestAppConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", " https://api.example.com/ ")
	t.Setenv("BACKEND_TIMEOUT", "5s")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("REDIS_URI", "redis:6380")
	t.Setenv("AUDIT_ENABLED", "true")
	t.Setenv("DB_HOST", "pg")
	t.Setenv("LOG_LEVEL", " DEBUG ")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "https://api.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, "redis:6380", cfg.Redis.URI)
	assert.True(t, cfg.Audit.Enabled)
	assert.Equal(t, "pg", cfg.Audit.Postgres.Host)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestHTTPConfig_Sanitize(t *testing.T) {
	tests := []struct {
		name      string
		in        HTTPConfig
		wantLevel int
		wantRate  int
	}{
		{name: "below range", in: HTTPConfig{CompressionLevel: 0, LoginRateLimit: 0}, wantLevel: 1, wantRate: 10},
		{name: "above range", in: HTTPConfig{CompressionLevel: 12, LoginRateLimit: 3}, wantLevel: 9, wantRate: 3},
		{name: "in range", in: HTTPConfig{CompressionLevel: 5, LoginRateLimit: 20}, wantLevel: 5, wantRate: 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.Sanitize()
			assert.Equal(t, tt.wantLevel, cfg.CompressionLevel)
			assert.Equal(t, tt.wantRate, cfg.LoginRateLimit)
		})
	}
}

func TestWhatsAppConfig_DisabledWithoutCredentials(t *testing.T) {
	cfg := WhatsAppConfig{Enabled: true, PhoneNumberID: "  ", AccessToken: "tok", Timeout: -1, RetryLimit: -3}
	cfg.Sanitize()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 0, cfg.RetryLimit)
}

func TestAuditConfig_RequiresHost(t *testing.T) {
	cfg := AuditConfig{Enabled: true}
	cfg.Sanitize()
	assert.False(t, cfg.Enabled)
}

func TestDetectDevMode(t *testing.T) {
	t.Setenv("NODE_ENV", "development")
	cfg := AppConfig{}
	cfg.detectDevMode()
	assert.True(t, cfg.IsDev)
}
