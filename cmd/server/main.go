package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/centralbjl/directory/api"
	dbfs "github.com/centralbjl/directory/db"
	"github.com/centralbjl/directory/internal/config"
	"github.com/centralbjl/directory/internal/db"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("starting server",
		slog.String("version", version),
		slog.String("build_time", buildTime),
	)

	ctx := context.Background()

	// Open database connection and bring the schema up to date
	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error("open db", slog.Any("err", err))
		os.Exit(1)
	}
	if err := db.Migrate(ctx, database, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		logger.Error("migrate db", slog.Any("err", err))
		os.Exit(1)
	}

	handler, limiter, err := api.SetupRoutes(cfg, version, buildTime, database, logger)
	if err != nil {
		logger.Error("setup routes", slog.Any("err", err))
		os.Exit(1)
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", slog.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", slog.Any("err", err))
	}

	limiter.Stop()

	// Close database connection
	if err := database.Close(); err != nil {
		logger.Error("close db", slog.Any("err", err))
	}

	logger.Info("server exited")
}
