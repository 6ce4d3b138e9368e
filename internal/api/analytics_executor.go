// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/arisvel/sociolens/internal/cache"
	"github.com/arisvel/sociolens/internal/dataset"
	"github.com/arisvel/sociolens/internal/metrics"
	"github.com/arisvel/sociolens/internal/models"
)

// AnalyticsQueryExecutor encapsulates the common pattern for analytics query handlers.
// It implements a cache-first execution flow:
//
//  1. Build filter from query parameters (platform, country, year, month, day)
//  2. Check cache for an existing table (TTL from configuration)
//  3. Compute the derived table on cache miss
//  4. Cache the result for subsequent requests
//  5. Respond with JSON including metadata (query time, cached status)
//
// Every analytics handler goes through this executor, so filter validation,
// error classification, and the per-view metrics are enforced in one place.
//
// Example usage:
//
//	executor := NewAnalyticsQueryExecutor(h)
//	executor.ExecuteSimple(w, r, "PlatformCounts", func(filter dataset.Filter) (interface{}, error) {
//	    return h.data.PlatformCounts(filter), nil
//	})
type AnalyticsQueryExecutor struct {
	handler *Handler
}

// NewAnalyticsQueryExecutor creates a new analytics query executor instance.
func NewAnalyticsQueryExecutor(h *Handler) *AnalyticsQueryExecutor {
	return &AnalyticsQueryExecutor{handler: h}
}

// AnalyticsQueryFunc computes one derived table for a filter. The result
// must be JSON-serializable as it will be cached and returned in an
// APIResponse wrapper with metadata. Queries run against the immutable
// in-memory dataset, so there is no context or cancellation to thread
// through.
type AnalyticsQueryFunc func(filter dataset.Filter) (interface{}, error)

// ExecuteSimple executes an analytics query that depends only on the shared
// filter parameters.
//
// Parameters:
//   - w: HTTP response writer
//   - r: HTTP request containing query parameters for filter building
//   - view: Unique identifier for this derived table (e.g., "PlatformCounts");
//     used as the cache key prefix and the metrics label
//   - queryFunc: Function that computes the derived table
//
// The method automatically:
//   - Builds a dataset.Filter from query parameters (rejecting malformed values)
//   - Returns cached data if available (with Cached: true in metadata)
//   - Executes queryFunc on cache miss and caches the result
//   - Classifies query errors onto the API error codes
//   - Responds with JSON including query time metrics
func (e *AnalyticsQueryExecutor) ExecuteSimple(
	w http.ResponseWriter,
	r *http.Request,
	view string,
	queryFunc AnalyticsQueryFunc,
) {
	e.execute(w, r, view, nil, queryFunc)
}

// ExecuteWithParam executes an analytics query that takes an additional
// parameter beyond the shared filter (e.g., a platform path segment or a
// token limit). The param is folded into the cache key so different values
// are cached separately.
//
// Example:
//
//	executor.ExecuteWithParam(w, r, "TokenFrequency", limit,
//	    func(filter dataset.Filter) (interface{}, error) {
//	        return h.data.TokenFrequency(filter, limit), nil
//	    })
func (e *AnalyticsQueryExecutor) ExecuteWithParam(
	w http.ResponseWriter,
	r *http.Request,
	view string,
	param interface{},
	queryFunc AnalyticsQueryFunc,
) {
	e.execute(w, r, view, param, queryFunc)
}

func (e *AnalyticsQueryExecutor) execute(
	w http.ResponseWriter,
	r *http.Request,
	view string,
	param interface{},
	queryFunc AnalyticsQueryFunc,
) {
	// Protects against nil pointer in queryFunc; readiness gating happens
	// at startup, so this only trips in misconstructed tests.
	if e.handler.data == nil {
		respondError(w, http.StatusServiceUnavailable, "DATA_UNAVAILABLE", "Dataset not loaded", nil)
		return
	}

	start := time.Now()

	filter, apiErr := e.handler.buildFilter(r)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	// Check cache first (only if cache is available)
	cacheKey := ""
	if e.handler.cache != nil {
		if param != nil {
			cacheKey = cache.GenerateKey(view, struct {
				Filter dataset.Filter
				Param  interface{}
			}{filter, param})
		} else {
			cacheKey = cache.GenerateKey(view, filter)
		}

		if cached, found := e.handler.cache.Get(cacheKey); found {
			metrics.RecordViewServed(view, true, 0)
			respondJSON(w, r, http.StatusOK, &models.APIResponse{
				Status: "success",
				Data:   cached,
				Metadata: models.Metadata{
					Timestamp:   time.Now(),
					QueryTimeMS: 0, // Cached
					Cached:      true,
				},
			})
			return
		}
	}

	// Compute the derived table
	data, err := queryFunc(filter)
	if err != nil {
		e.respondQueryError(w, view, err)
		return
	}

	elapsed := time.Since(start)
	metrics.RecordViewServed(view, false, elapsed)

	// Cache the result (only if cache is available)
	if cacheKey != "" {
		e.handler.cache.Set(cacheKey, data)
	}

	// Respond with data
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: elapsed.Milliseconds(),
		},
	})
}

// respondQueryError maps dataset error classes onto HTTP status and API
// error codes. Unclassified errors should not happen for in-memory
// computations and surface as 500s so they are visible.
func (e *AnalyticsQueryExecutor) respondQueryError(w http.ResponseWriter, view string, err error) {
	switch {
	case errors.Is(err, dataset.ErrEmptyResult):
		metrics.RecordViewError(view, "empty_result")
		respondError(w, http.StatusNotFound, "EMPTY_RESULT", "No posts match the requested selection", err)
	case errors.Is(err, dataset.ErrSelectionOutOfBounds):
		metrics.RecordViewError(view, "selection_out_of_bounds")
		respondError(w, http.StatusBadRequest, "SELECTION_OUT_OF_BOUNDS", "Too many countries selected for comparison", err)
	default:
		metrics.RecordViewError(view, "internal")
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute view: "+view, err)
	}
}
