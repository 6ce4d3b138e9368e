// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package instruments the Sociolens server using the Prometheus client
library, exposing metrics for request handling, analytics computation,
cache efficiency, and the loaded dataset.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Currently active requests (gauge)

Analytics View Metrics:
  - view_compute_duration_seconds: Time spent computing a view from the
    dataset, excluding cache hits (histogram)
    Labels: view
  - view_requests_total: View requests by serving source (counter)
    Labels: view, source (cache | computed)
  - view_errors_total: Failed view requests (counter)
    Labels: view, error_type

Cache Metrics:
  - cache_hits_total / cache_misses_total: Analytics cache efficiency (counters)
  - cache_evictions_total: Entries removed by TTL expiry (counter)
  - cache_entries: Current number of cached views (gauge)

Dataset Metrics:
  - dataset_rows: Posts in the loaded dataset (gauge)
  - dataset_load_duration_seconds: Startup load and parse time (gauge)
  - dataset_loaded_timestamp: Unix timestamp of the load (gauge)

# Usage

Metrics are recorded through package-level helpers:

	metrics.RecordAPIRequest("GET", "/api/v1/analytics/tokens", "200", duration)
	metrics.RecordViewServed("token_frequency", cached, duration)
	metrics.RecordDatasetLoad(rows, loadDuration)

Example PromQL queries:

	# Request rate
	rate(api_requests_total[5m])

	# p95 request latency
	histogram_quantile(0.95, rate(api_request_duration_seconds_bucket[5m]))

	# Cache hit rate
	rate(cache_hits_total[5m]) / (rate(cache_hits_total[5m]) + rate(cache_misses_total[5m]))

# Thread Safety

All recording helpers are safe for concurrent use; the Prometheus client
library handles synchronization internally.

# Cardinality

Endpoint labels use the routing pattern rather than the raw URL, and view
names come from a fixed set, so series counts stay small.
*/
package metrics
