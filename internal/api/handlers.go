// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package api

import (
	"net/http"
	"time"

	"github.com/arisvel/sociolens/internal/cache"
	"github.com/arisvel/sociolens/internal/config"
	"github.com/arisvel/sociolens/internal/dataset"
	"github.com/arisvel/sociolens/internal/logging"
	"github.com/arisvel/sociolens/internal/middleware"
)

// appVersion is reported by the health endpoint and the build info metric.
const appVersion = "1.0.0"

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct, constructor, utility methods (this file)
//   - handlers_helpers.go: Shared helper functions
//   - handlers_health.go: Health/monitoring endpoints (3 methods)
//   - handlers_analytics.go: Analytics endpoints (11 methods)
//   - handlers_meta.go: Dataset metadata and operational stats (4 methods)
type Handler struct {
	data      *dataset.Dataset
	config    *config.Config
	cache     *cache.Cache
	perfMon   *middleware.PerformanceMonitor
	startTime time.Time
}

// NewHandler creates a new API handler with all required dependencies.
//
// Dependencies:
//   - ds: Loaded dataset for derived-table computations
//   - cfg: Application configuration
//   - queryCache: TTL cache for computed analytics tables (nil disables caching)
//
// The handler initializes with:
//   - Performance monitor tracking last 1000 requests
//   - Start time for uptime calculations
//
// Example:
//
//	handler := api.NewHandler(ds, cfg, cache.New(5*time.Minute))
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg))
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(ds *dataset.Dataset, cfg *config.Config, queryCache *cache.Cache) *Handler {
	return &Handler{
		data:      ds,
		config:    cfg,
		cache:     queryCache,
		perfMon:   middleware.NewPerformanceMonitor(1000), // Keep last 1000 requests
		startTime: time.Now(),
	}
}

// ClearCache invalidates all cached analytics tables.
//
// The dataset is static for the lifetime of the process, so this is only
// needed when operators swap the source file and restart loading, or in
// tests that reuse a handler across fixtures.
//
// Thread Safety: Safe for concurrent access.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Clear()
		logging.Info().Msg("Analytics cache cleared")
	}
}

// PerformanceMiddleware exposes the handler's request timing monitor as
// router middleware so the stats endpoint reports the same window the
// router records into.
func (h *Handler) PerformanceMiddleware() func(next http.Handler) http.Handler {
	return h.perfMon.Middleware
}

// GetCacheStats returns cache performance counters.
func (h *Handler) GetCacheStats() cache.Stats {
	if h.cache != nil {
		return h.cache.GetStats()
	}
	return cache.Stats{}
}

// GetPerformanceStats returns per-endpoint timing aggregates.
func (h *Handler) GetPerformanceStats() []middleware.EndpointStats {
	if h.perfMon != nil {
		return h.perfMon.GetStats()
	}
	return nil
}
