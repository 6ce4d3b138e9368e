// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

/*
Package middleware provides HTTP middleware components for the application.

This package implements infrastructure middleware for compression, performance
monitoring, and Prometheus metrics integration. The components are written as
func(http.HandlerFunc) http.HandlerFunc and adapted into the chi router's
func(http.Handler) http.Handler form by the api package.

Key Components:

  - Compression: Gzip compression for JSON responses
  - Performance Monitor: Request latency tracking with percentile calculations
  - Prometheus Metrics: HTTP request/response instrumentation

Usage Example - Compression:

	import "github.com/arisvel/sociolens/internal/middleware"

	// Wrap handler with gzip compression
	handler := middleware.Compression(tokenFrequencyHandler)

	// Accept-Encoding: gzip header is required; 204/304 responses stay empty

Usage Example - Performance Monitoring:

	// Create performance monitor with a 1000-sample window
	perfMon := middleware.NewPerformanceMonitor(1000)

	// Wrap the router
	handler := perfMon.Middleware(router)

	// Get per-endpoint percentile statistics
	stats := perfMon.GetStats()

Usage Example - Prometheus Metrics:

	// Inside a chi route group
	r.Use(func(next http.Handler) http.Handler {
	    return middleware.PrometheusMetrics(next.ServeHTTP)
	})

Thread Safety:

All middleware components are thread-safe:
  - Compression pools gzip writers with sync.Pool
  - Performance monitor uses sync.RWMutex
  - Prometheus metrics use the client library's internal synchronization

See Also:

  - internal/api: HTTP handlers and the chi middleware stack
  - internal/metrics: Prometheus metrics definitions
*/
package middleware
