package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/jhaverenterprises/uniform-admin/config"
)

//nolint:gochecknoglobals // process-wide log level, raised or lowered once config is loaded
var logLevel = new(slog.LevelVar)

// InitLogger initializes the structured logger at info level and sets it as
// the default. ApplyLogLevel adjusts the level once configuration is known.
func InitLogger() *slog.Logger {
	logLevel.Set(slog.LevelInfo)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// ApplyLogLevel switches the logger created by InitLogger to the configured level.
func ApplyLogLevel(cfg *config.AppConfig) {
	if cfg == nil {
		return
	}
	logLevel.Set(cfg.SlogLevel())
}

// LoadConfig loads configuration from environment variables, reading a .env
// file first when one exists.
func LoadConfig() (config.AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return config.AppConfig{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg config.AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

// ValidateConfig rejects configurations the console cannot start with.
func ValidateConfig(cfg *config.AppConfig) error {
	if cfg == nil {
		return errors.New("config is required")
	}
	if cfg.Backend.BaseURL == "" {
		return errors.New("BACKEND_BASE_URL is required")
	}
	if cfg.Redis.UseSentinel && cfg.Redis.SentinelMasterName == "" {
		return errors.New("REDIS_SENTINEL_MASTER_NAME is required when REDIS_USE_SENTINEL is set")
	}
	return nil
}
