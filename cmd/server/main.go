// Package main is the entry point for the Watchtower watchlist analytics
// service. It exposes the metric and fundamentals computation engines over a
// REST API and persists the user's watchlist. Market-data retrieval happens
// upstream: requests carry already-assembled price series and raw
// fundamentals fields.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/aristath/watchtower/internal/config"
	"github.com/aristath/watchtower/internal/database"
	"github.com/aristath/watchtower/internal/modules/fundamentals"
	"github.com/aristath/watchtower/internal/modules/metrics"
	"github.com/aristath/watchtower/internal/modules/watchlist"
	"github.com/aristath/watchtower/internal/server"
	"github.com/aristath/watchtower/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting Watchtower")

	// Watchlist database
	watchlistDB, err := database.New(database.Config{
		Path: filepath.Join(cfg.DataDir, "watchlist.db"),
		Name: "watchlist",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open watchlist database")
	}
	defer watchlistDB.Close()

	watchlistRepo := watchlist.NewRepository(watchlistDB, log)
	if err := watchlistRepo.InitSchema(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize watchlist schema")
	}

	// Computation services and handlers
	metricsService := metrics.NewService(log)
	metricsHandlers := metrics.NewHandlers(metricsService, metrics.Defaults{
		Benchmark:    cfg.DefaultBenchmark,
		RiskFreeRate: cfg.RiskFreeRate,
	}, log)

	normalizer := fundamentals.NewNormalizer(log)
	fundamentalsHandlers := fundamentals.NewHandlers(normalizer, log)

	watchlistHandlers := watchlist.NewHandlers(watchlistRepo, log)

	srv := server.New(server.Config{
		Port:         cfg.Port,
		Log:          log,
		Metrics:      metricsHandlers,
		Fundamentals: fundamentalsHandlers,
		Watchlist:    watchlistHandlers,
	})

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
