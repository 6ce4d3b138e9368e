// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the Sociolens server:
// - API endpoint latency and throughput
// - Analytics view computation vs cache serving
// - Cache efficiency
// - Dataset load characteristics

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Analytics View Metrics
	ViewComputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "view_compute_duration_seconds",
			Help:    "Duration of analytics view computations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"view"},
	)

	ViewRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_requests_total",
			Help: "Total number of analytics view requests by serving source",
		},
		[]string{"view", "source"}, // source: "cache", "computed"
	)

	ViewErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_errors_total",
			Help: "Total number of analytics view errors",
		},
		[]string{"view", "error_type"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of analytics cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of analytics cache misses",
		},
	)

	CacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached analytics views",
		},
	)

	// Dataset Metrics
	DatasetRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Number of posts in the loaded dataset",
		},
	)

	DatasetLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_load_duration_seconds",
			Help: "Time taken to load and parse the dataset",
		},
	)

	DatasetLoadedTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_loaded_timestamp",
			Help: "Unix timestamp of when the dataset was loaded",
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordViewServed records a view request and how it was served.
// Cache hits skip the compute histogram; only real computations are observed.
func RecordViewServed(view string, cached bool, duration time.Duration) {
	if cached {
		ViewRequestsTotal.WithLabelValues(view, "cache").Inc()
		CacheHits.Inc()
		return
	}
	ViewRequestsTotal.WithLabelValues(view, "computed").Inc()
	ViewComputeDuration.WithLabelValues(view).Observe(duration.Seconds())
	CacheMisses.Inc()
}

// RecordViewError records a failed view request
func RecordViewError(view, errorType string) {
	ViewErrors.WithLabelValues(view, errorType).Inc()
}

// UpdateCacheGauges refreshes the cache gauges after a janitor sweep
func UpdateCacheGauges(entries, evicted int64) {
	CacheEntries.Set(float64(entries))
	if evicted > 0 {
		CacheEvictions.Add(float64(evicted))
	}
}

// RecordDatasetLoad records dataset load characteristics at startup
func RecordDatasetLoad(rows int, duration time.Duration) {
	DatasetRows.Set(float64(rows))
	DatasetLoadDuration.Set(duration.Seconds())
	DatasetLoadedTimestamp.Set(float64(time.Now().Unix()))
}

// SetAppInfo publishes the build information gauge
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}
