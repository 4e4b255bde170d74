package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/msshishlin/shareit/config"
	"github.com/msshishlin/shareit/internal/gateway"
	"github.com/msshishlin/shareit/internal/gateway/relay"
	"github.com/msshishlin/shareit/pkg/log"
)

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

	logger.Info(ctx, "Starting ShareIt gateway...")
	logger.Infof(ctx, "Forwarding to %s", cfg.Gateway.ServerURL)

	// 3. Gateway
	gw, err := gateway.New(gateway.Config{
		Logger:          logger,
		Port:            cfg.Gateway.Port,
		Mode:            cfg.HTTPServer.Mode,
		Relay:           relay.NewClient(cfg.Gateway.ServerURL),
		RateLimitPerMin: cfg.Gateway.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize gateway: ", err)
		return
	}

	// 4. Run
	if err := gw.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run gateway: ", err)
		return
	}

	logger.Info(ctx, "Gateway stopped gracefully")
}
