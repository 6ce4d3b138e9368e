// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

/*
Package api provides the HTTP REST API layer for Sociolens.

This package serves the analytics dashboard: every chart on the frontend maps
to one endpoint here, backed by the in-memory dataset in internal/dataset.
There is no database; queries recompute derived tables from the loaded posts
and cache the results.

Key Components:

  - Router: Chi route configuration and middleware stack integration
  - Handler: Request handlers for analytics, dataset metadata, and health
  - Response formatting: Standardized JSON envelope with query metadata
  - Error handling: Consistent error codes with appropriate HTTP status codes
  - Rate limiting: Per-group request limits to prevent abuse
  - CORS: Cross-Origin Resource Sharing for the dashboard frontend

API Categories:

1. Health Endpoints (/health):
  - Overall health (dataset loaded, row count, uptime)
  - Liveness and readiness probes (health/live, health/ready)

2. Analytics Endpoints (/api/v1/analytics/):
  - Top post per platform, overall and per selected platform
  - Sentiment distributions (post counts, average likes)
  - Platform distributions (post counts, average likes)
  - Sentiment x platform pivot table
  - Country sentiment matrix, per-country breakdown, country comparison
  - Token frequency table over post text

3. Dataset Endpoints (/api/v1/dataset/):
  - Summary (source, row count, vocabulary sizes)
  - Filter bounds (distinct platforms, countries, months, year/day ranges)

4. Operational Endpoints (/api/v1/stats/, /metrics):
  - Cache counters and per-endpoint timing aggregates
  - Prometheus exposition

All analytics endpoints accept the optional filter query parameters
platform, country, year, month, and day. Filters combine with AND semantics;
values that match nothing yield empty tables rather than errors.

Usage Example:

	import (
	    "github.com/arisvel/sociolens/internal/api"
	    "github.com/arisvel/sociolens/internal/cache"
	    "github.com/arisvel/sociolens/internal/dataset"
	)

	ds, _ := dataset.Open(ctx, cfg.Dataset)
	queryCache := cache.New(cfg.Cache.TTL)

	handler := api.NewHandler(ds, cfg, queryCache)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg))

	http.ListenAndServe(":8080", router.SetupChi())

Performance Characteristics:

  - Response times: single-digit milliseconds for cached views
  - Caching: TTL cache keyed on view name + filter (default 5 minutes)
  - Compression: Gzip middleware on analytics responses
  - ETag: FNV-1a ETags with If-None-Match revalidation

Thread Safety:

All handlers are thread-safe and designed for concurrent request handling.
The dataset is immutable after load; the cache and performance monitor are
protected by their own synchronization primitives.

See Also:

  - internal/dataset: Loader and derived-table computations
  - internal/models: Response data structures
  - internal/middleware: HTTP middleware components
  - internal/validation: Request parameter validation
*/
package api
