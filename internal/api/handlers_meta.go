// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package api

import (
	"net/http"
	"time"

	"github.com/arisvel/sociolens/internal/middleware"
	"github.com/arisvel/sociolens/internal/models"
)

// DatasetSummary returns the loaded dataset's header facts: source path,
// row count, vocabulary sizes, and the observed year span.
//
// Method: GET
// Path: /api/v1/dataset/summary
//
// The summary describes the raw relation, so it takes no filter
// parameters and never changes while the process runs.
func (h *Handler) DatasetSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	if h.data == nil {
		respondError(w, http.StatusServiceUnavailable, "DATA_UNAVAILABLE", "Dataset not loaded", nil)
		return
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   h.data.Summary(),
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// DatasetFilters returns the distinct filter values present in the
// dataset. The frontend builds its filter controls from this response
// instead of hardcoding vocabularies, which is also why filter matching
// can be strict: every selectable label round-trips verbatim.
//
// Method: GET
// Path: /api/v1/dataset/filters
func (h *Handler) DatasetFilters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	if h.data == nil {
		respondError(w, http.StatusServiceUnavailable, "DATA_UNAVAILABLE", "Dataset not loaded", nil)
		return
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   h.data.FilterBounds(),
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// CacheStats returns the query cache counters.
//
// Method: GET
// Path: /api/v1/stats/cache
//
// With caching disabled the counters are all zero rather than an error,
// so dashboards can poll this endpoint unconditionally.
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	stats := h.GetCacheStats()

	data := models.CacheStats{
		Hits:        stats.Hits,
		Misses:      stats.Misses,
		Evictions:   stats.Evictions,
		Entries:     stats.TotalKeys,
		LastCleanup: stats.LastCleanup,
	}
	if h.cache != nil {
		data.Entries = h.cache.EntryCount()
		data.HitRate = h.cache.HitRate()
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// PerformanceStats returns per-endpoint request timing aggregates from the
// in-process sliding window monitor.
//
// Method: GET
// Path: /api/v1/stats/performance
func (h *Handler) PerformanceStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	stats := h.GetPerformanceStats()
	if stats == nil {
		stats = []middleware.EndpointStats{}
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   stats,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
