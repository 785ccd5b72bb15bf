package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"library-backend/internal/handler/middleware"
	"library-backend/internal/infra/db"
	"library-backend/internal/pkg/config"

	"github.com/kelseyhightower/envconfig"
)

// Only the database and migration settings are read so the tool can run
// without the server's secrets.
type migrateConfig struct {
	DB        config.DBConfig
	Migration config.MigrationConfig
	Log       config.LogConfig
}

func main() {
	var cfg migrateConfig
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	if err := db.Migrate(ctx, cfg.DB, cfg.Migration, logger); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}
