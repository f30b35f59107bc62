package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"foodfund/internal/config"
	"foodfund/internal/db"
	"foodfund/internal/db/migrations"
	"foodfund/internal/logger"
	"foodfund/internal/routes"
)

// @title FoodFund Campaign API
// @version 1.0
// @description Campaign validation and storage for the FoodFund donation platform.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(logger.ForEnvironment(cfg.IsProduction(), cfg.LogLevel, cfg.LogFormat))
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	ctx := context.Background()

	if err := db.CreateDatabaseIfNotExists(ctx, cfg.DatabaseURL, zl); err != nil {
		zl.Fatal("failed to ensure database exists", zap.Error(err))
	}

	database, err := db.New(ctx, cfg.DatabaseURL, zl)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := migrations.RunMigrations(ctx, database.DB, zl); err != nil {
		zl.Fatal("failed to run migrations", zap.Error(err))
	}

	var s3Config *config.S3Config
	if cfg.CoverImageCheck {
		s3Config, err = config.NewS3Config(ctx)
		if err != nil {
			zl.Fatal("failed to configure S3", zap.Error(err))
		}
	}

	router, err := routes.SetupRoutes(database.DB, cfg, s3Config, zl)
	if err != nil {
		zl.Fatal("failed to set up routes", zap.Error(err))
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server starting", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down server")

	// Give in-flight requests 5 seconds to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zl.Fatal("server forced to shutdown", zap.Error(err))
	}

	zl.Info("server exiting")
}
