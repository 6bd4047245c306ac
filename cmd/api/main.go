package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"privassistant/config"
	_ "privassistant/docs" // Swagger docs
	"privassistant/internal/httpserver"
	"privassistant/internal/model"
	jsonfileRepo "privassistant/internal/scheduler/repository/jsonfile"
	"privassistant/pkg/log"
)

// @title       PrivAssistant Scheduler API
// @description Personal scheduling assistant backend: natural-language task extraction, task CRUD, and document export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
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

	logger.Info(ctx, "Starting PrivAssistant scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Task store: %s", cfg.Store.Path)

	// 3. Task store
	store := jsonfileRepo.New(logger, cfg.Store.Path)

	// 4. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   model.Environment(cfg.Environment.Name),
		Store:         store,
		RateLimPerMin: cfg.RateLimit.GeneratePerMin,
	})
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
