package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhaverenterprises/uniform-admin/config"
	httpx "github.com/jhaverenterprises/uniform-admin/internal/http"
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	// Redis and DB feed /healthz. DB is nil when the audit trail is off.
	Redis redis.UniversalClient
	DB    *sql.DB
	// Errors receives a listener failure. Optional.
	Errors chan<- error
	Logger *slog.Logger
}

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) (*http.Server, error) {
	if cfg == nil {
		return nil, errors.New("start http server: config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	handler, err := httpx.NewRouter(routerServices(cfg, appCfg, logger))
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}
	if appCfg.HTTP.CompressionEnabled {
		logger.Info("HTTP compression enabled", "level", appCfg.HTTP.CompressionLevel)
	}

	return startServer(logger, handler, appCfg.HTTP.Addr, cfg.Errors), nil
}

func routerServices(cfg *HTTPServerConfig, appCfg *config.AppConfig, logger *slog.Logger) httpx.RouterServices {
	return httpx.RouterServices{
		Auth:             cfg.Services.Auth,
		Orders:           cfg.Services.Orders,
		Bills:            cfg.Services.Bills,
		Stores:           cfg.Services.Stores,
		Inventory:        cfg.Services.Inventory,
		Catalog:          cfg.Services.Catalog,
		HealthChecks:     healthChecks(cfg.Redis, cfg.DB),
		CookieDomain:     appCfg.HTTP.CookieDomain,
		LoginRateLimit:   appCfg.HTTP.LoginRateLimit,
		SSLRedirect:      appCfg.HTTP.SSLRedirect,
		Compression:      appCfg.HTTP.CompressionEnabled,
		CompressionLevel: appCfg.HTTP.CompressionLevel,
		IsDev:            appCfg.IsDev,
		Logger:           logger,
	}
}

func healthChecks(client redis.UniversalClient, db *sql.DB) map[string]httpx.HealthCheck {
	checks := map[string]httpx.HealthCheck{}
	if client != nil {
		checks["redis"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
	}
	if db != nil {
		checks["audit_db"] = db.PingContext
	}
	return checks
}

func startServer(logger *slog.Logger, handler http.Handler, addr string, errCh chan<- error) *http.Server {
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Exports and invoice PDFs stream from the backend.
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			if errCh != nil {
				errCh <- fmt.Errorf("http server: %w", err)
			}
		}
	}()

	return server
}

// ShutdownConfig contains dependencies for HTTP server shutdown.
type ShutdownConfig struct {
	Context context.Context
	Server  *http.Server
	Timeout time.Duration
	Logger  *slog.Logger
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(cfg ShutdownConfig) error {
	if cfg.Server == nil {
		return nil
	}
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := cfg.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("HTTP server stopped")
	}
	return nil
}
