// Command migrate applies the embedded schema migrations to the configured database.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"marketplace/config"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/persistence/migrations"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to build logger", slog.Any("error", err))
		os.Exit(1)
	}

	if cfg.Migration == nil || cfg.Migration.DSN == "" {
		logger.Error("Migration DSN is not configured")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Applying migrations")
	if err := migrations.Up(ctx, cfg.Migration.DSN); err != nil {
		logger.Error("Failed to apply migrations", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
	logger.Info("Migrations applied")
}
