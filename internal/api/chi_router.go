// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arisvel/sociolens/internal/middleware"
)

// Router handles HTTP routing for the dashboard API.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a new router. A nil chiMw falls back to the secure
// middleware defaults (empty CORS origins, 100 req/min).
func NewRouter(handler *Handler, chiMw *ChiMiddleware) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}

	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
// This allows the HandlerFunc-based middleware (PrometheusMetrics, Compression)
// to work with Chi's r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(RequestIDWithLogging())      // Add X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	// ========================
	// Health Endpoints
	// ========================
	// Permissive rate limiting (1000/min) allows frequent monitoring
	// while preventing abuse
	r.Route("/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// ========================
	// Analytics Endpoints
	// ========================
	// Permissive rate limiting for cached derived tables: the dashboard
	// refreshes every chart on a filter change
	r.Route("/api/v1/analytics", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAnalytics())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))
		r.Use(router.handler.PerformanceMiddleware())

		r.Get("/top-posts", router.handler.AnalyticsTopPosts)
		r.Get("/top-posts/{platform}", router.handler.AnalyticsTopPostPlatform)
		r.Get("/sentiments/counts", router.handler.AnalyticsSentimentCounts)
		r.Get("/sentiments/likes", router.handler.AnalyticsSentimentLikes)
		r.Get("/platforms/counts", router.handler.AnalyticsPlatformCounts)
		r.Get("/platforms/likes", router.handler.AnalyticsPlatformLikes)
		r.Get("/sentiment-platform", router.handler.AnalyticsSentimentPlatform)
		r.Get("/countries", router.handler.AnalyticsCountries)
		// The static compare segment must be registered alongside the
		// country wildcard; chi matches static segments first.
		r.Get("/countries/compare", router.handler.AnalyticsCompareCountries)
		r.Get("/countries/{country}", router.handler.AnalyticsCountryBreakdown)
		r.Get("/tokens", router.handler.AnalyticsTokens)
	})

	// ========================
	// Dataset Metadata Endpoints
	// ========================
	r.Route("/api/v1/dataset", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(router.handler.PerformanceMiddleware())

		r.Get("/summary", router.handler.DatasetSummary)
		r.Get("/filters", router.handler.DatasetFilters)
	})

	// ========================
	// Operational Stats Endpoints
	// ========================
	r.Route("/api/v1/stats", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/cache", router.handler.CacheStats)
		r.Get("/performance", router.handler.PerformanceStats)
	})

	// ========================
	// Observability
	// ========================
	if router.handler.config == nil || router.handler.config.Metrics.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// ========================
	// Fallbacks
	// ========================
	// There is no static frontend in this process; unmatched routes get
	// the standard error envelope.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	return r
}
