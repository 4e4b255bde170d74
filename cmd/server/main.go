package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/msshishlin/shareit/config"
	_ "github.com/msshishlin/shareit/docs" // Swagger docs
	"github.com/msshishlin/shareit/internal/httpserver"
	"github.com/msshishlin/shareit/internal/storage"
	"github.com/msshishlin/shareit/pkg/log"
)

// @title       ShareIt API
// @description Peer-to-peer item rental: users, items, bookings, comments and item requests.
// @version     1
// @host        localhost:9090
// @schemes     http
func main() {
	// 1. Configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ShareIt server...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	srvCfg := httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
	}

	if cfg.Postgres.DSN != "" {
		db, dbErr := storage.OpenPostgres(ctx, cfg.Postgres.DSN)
		if dbErr != nil {
			logger.Error(ctx, "Failed to connect to PostgreSQL: ", dbErr)
			return
		}
		defer db.Close()

		logger.Info(ctx, "PostgreSQL storage initialized")
		srvCfg.DB = db
	} else {
		logger.Warn(ctx, "No database configured, using in-memory stores")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
