package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/garnizeh/trivia/api"
	dbfs "github.com/garnizeh/trivia/db"
	"github.com/garnizeh/trivia/internal/config"
	"github.com/garnizeh/trivia/internal/db"
	"github.com/garnizeh/trivia/internal/repository/sqlrepo"
	"github.com/garnizeh/trivia/internal/schema"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)
	api.SetLogger(logger)

	logger.Info("starting trivia server",
		slog.String("version", version),
		slog.String("build_time", buildTime),
		slog.String("driver", cfg.DatabaseDriver),
		slog.Bool("strict_status", cfg.StrictStatus),
	)

	ctx := context.Background()

	// Open database connection
	database, err := db.New(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if cfg.Migrate {
		if err := db.Migrate(ctx, database, dbfs.Migrations, dbfs.SeedFiles); err != nil {
			log.Fatalf("Failed to migrate DB: %v", err)
		}
	}

	schemas, err := schema.NewLoader()
	if err != nil {
		log.Fatalf("Failed to load request schemas: %v", err)
	}

	store := sqlrepo.New(database, logger)
	handler := api.SetupRoutes(cfg, api.Options{Version: version, BuildTime: buildTime}, store, schemas)

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
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", slog.Any("err", err))
	}

	// Close database connection
	if err := database.Close(); err != nil {
		logger.Error("error closing DB", slog.Any("err", err))
	}

	logger.Info("server exited")
}
