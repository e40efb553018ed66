package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/jhaverenterprises/uniform-admin/config"
	"github.com/jhaverenterprises/uniform-admin/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	bootstrap.ApplyLogLevel(&cfg)

	if err = bootstrap.ValidateConfig(&cfg); err != nil {
		return err
	}
	logStartupInfo(ctx, logger, &cfg)

	redisClient, db, err := initInfrastructure(ctx, &cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := redisClient.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close redis failed", "error", cerr)
		}
	}()
	if db != nil {
		defer func() {
			if cerr := db.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close database failed", "error", cerr)
			}
		}()
	}

	adapters, err := bootstrap.BuildAdapters(bootstrap.AdapterDeps{
		Config: &cfg,
		DB:     db,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	services := bootstrap.NewServices(&bootstrap.ServiceDeps{
		Config:      &cfg,
		RedisClient: redisClient,
		Adapters:    adapters,
		Logger:      logger,
	})

	return bootstrap.RunWithShutdown(ctx, &bootstrap.RunConfig{
		Config:   &cfg,
		Services: services,
		DB:       db,
		Redis:    redisClient,
		Logger:   logger,
	})
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting uniform admin console",
		"addr", cfg.HTTP.Addr,
		"backend", cfg.Backend.BaseURL,
		"dev", cfg.IsDev,
		"audit_enabled", cfg.Audit.Enabled,
		"whatsapp_enabled", cfg.WhatsApp.Enabled)
}

// initInfrastructure connects the session store and, when the audit trail is
// enabled, the audit database.
//
//nolint:ireturn // returning redis.UniversalClient covers direct and sentinel clients.
func initInfrastructure(
	ctx context.Context,
	cfg *config.AppConfig,
	logger *slog.Logger,
) (redis.UniversalClient, *sql.DB, error) {
	dbCfg := bootstrap.DatabaseConfig{
		DBConfig:    cfg.Audit.Postgres,
		RedisConfig: cfg.Redis,
		Logger:      logger,
	}

	redisClient, err := bootstrap.ConnectRedis(ctx, dbCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	if !cfg.Audit.Enabled {
		return redisClient, nil, nil
	}

	db, err := bootstrap.ConnectDB(ctx, dbCfg)
	if err == nil && cfg.Audit.Postgres.RunMigrationsOnStart {
		err = bootstrap.RunMigrations(ctx, db, logger)
		if err != nil {
			err = errors.Join(err, db.Close())
		}
	} else if err == nil {
		logger.InfoContext(ctx, "skipping database migrations on startup", "reason", "disabled via config")
	}
	if err != nil {
		if cerr := redisClient.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close redis: %w", cerr))
		}
		return nil, nil, fmt.Errorf("connect audit database: %w", err)
	}
	return redisClient, db, nil
}
