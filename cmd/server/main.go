// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

// Package main is the entry point for the Sociolens server application.
//
// Sociolens is a self-hosted analytics dashboard for a static CSV of
// sentiment-annotated social media posts. It serves derived aggregate tables
// (top posts, sentiment distributions, platform engagement, country
// breakdowns, token frequencies) over a JSON REST API consumed by the
// dashboard frontend.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Dataset: Parse the sentiment CSV once into an immutable in-memory table
//  3. Cache: In-memory TTL cache for derived analytics tables
//  4. HTTP Server: REST API served through a Chi router
//  5. Supervisor Tree: Suture v4 supervision for the server and cache janitor
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Stops the cache janitor
//
// # Example Usage
//
// Development with a local CSV:
//
//	export DATASET_PATH=data/sentimentdataset.csv
//	export LOG_FORMAT=console
//	./sociolens
//
// Production:
//
//	export DATASET_PATH=/srv/sociolens/sentimentdataset.csv
//	export ENVIRONMENT=production
//	export SECURITY_CORS_ORIGINS=https://dashboard.example.com
//	./sociolens
//
// Docker:
//
//	docker run -d \
//	  -v ./data:/data:ro \
//	  -e DATASET_PATH=/data/sentimentdataset.csv \
//	  -p 8080:8080 \
//	  ghcr.io/arisvel/sociolens
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arisvel/sociolens/internal/api"
	"github.com/arisvel/sociolens/internal/cache"
	"github.com/arisvel/sociolens/internal/config"
	"github.com/arisvel/sociolens/internal/dataset"
	"github.com/arisvel/sociolens/internal/logging"
	"github.com/arisvel/sociolens/internal/metrics"
	"github.com/arisvel/sociolens/internal/supervisor"
	"github.com/arisvel/sociolens/internal/supervisor/services"
)

// version is stamped into the health payload and the Prometheus app info gauge.
const version = "1.0.0"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting Sociolens with supervisor tree")
	logging.Info().
		Str("dataset_path", cfg.Dataset.Path).
		Str("environment", cfg.Server.Environment).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Load the dataset once at startup. The table is immutable afterwards;
	// every analytics endpoint reads from this snapshot.
	loadStart := time.Now()
	data, err := dataset.Open(context.Background(), cfg.Dataset)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Dataset.Path).Msg("Failed to load dataset")
	}
	loadElapsed := time.Since(loadStart)
	metrics.RecordDatasetLoad(data.Len(), loadElapsed)
	metrics.SetAppInfo(version)
	logging.Info().
		Int("rows", data.Len()).
		Dur("elapsed", loadElapsed).
		Str("source", data.Source()).
		Msg("Dataset loaded")

	// Response cache for derived analytics tables
	var queryCache *cache.Cache
	if cfg.Cache.Enabled {
		queryCache = cache.New(cfg.Cache.TTL)
		logging.Info().
			Dur("ttl", cfg.Cache.TTL).
			Dur("cleanup_interval", cfg.Cache.CleanupInterval).
			Msg("Analytics cache enabled")
	} else {
		logging.Info().Msg("Analytics cache disabled (CACHE_ENABLED=false)")
	}

	handler := api.NewHandler(data, cfg, queryCache)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create structured logger for supervisor using our slog adapter
	// This bridges zerolog to slog for sutureslog compatibility
	slogLogger := logging.NewSlogLogger()

	// Create supervisor tree
	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	// Maintenance layer services
	if queryCache != nil {
		tree.AddMaintenanceService(services.NewCacheJanitorService(queryCache, cfg.Cache.CleanupInterval))
		logging.Info().Msg("Cache janitor added to supervisor tree")
	}

	// API layer services
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
