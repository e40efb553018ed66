package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/jhaverenterprises/uniform-admin/config"
)

// RunConfig contains what RunWithShutdown needs.
type RunConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	DB       *sql.DB
	Redis    redis.UniversalClient
	Logger   *slog.Logger
}

// RunWithShutdown starts the HTTP server and blocks until ctx is cancelled,
// SIGINT or SIGTERM arrives, or the listener fails.
func RunWithShutdown(ctx context.Context, cfg *RunConfig) error {
	if cfg == nil || cfg.Config == nil {
		return errors.New("run config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	errCh := make(chan error, 1)
	server, err := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Redis:    cfg.Redis,
		DB:       cfg.DB,
		Errors:   errCh,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	return waitForShutdown(ctx, server, errCh, logger)
}

func waitForShutdown(ctx context.Context, server *http.Server, errCh <-chan error, logger *slog.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		logger.Info("shutting down")
	case <-ctx.Done():
		logger.Info("shutting down", "reason", ctx.Err())
	case err := <-errCh:
		logger.Error("service error", "error", err)
		if stopErr := gracefulStop(server, logger); stopErr != nil {
			logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
	return gracefulStop(server, logger)
}

// gracefulStop drains in-flight requests. The parent context may already be
// cancelled, so the shutdown deadline hangs off a fresh one.
func gracefulStop(server *http.Server, logger *slog.Logger) error {
	return ShutdownHTTPServer(ShutdownConfig{
		Context: context.Background(),
		Server:  server,
		Logger:  logger,
	})
}
