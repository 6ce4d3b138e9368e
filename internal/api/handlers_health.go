// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package api

import (
	"net/http"
	"time"

	"github.com/arisvel/sociolens/internal/models"
)

// Health handles health check requests
//
// Method: GET
// Path: /health
//
// Reports whether the dataset is loaded, how many rows it holds, the
// application version, and process uptime. The only dependency is the
// one-time dataset load, so status is "healthy" whenever rows are
// available and "degraded" otherwise.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	rows := 0
	if h.data != nil {
		rows = h.data.Len()
	}
	loaded := rows > 0

	status := "healthy"
	if !loaded {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:        status,
		Version:       appVersion,
		DatasetLoaded: loaded,
		DatasetRows:   rows,
		Uptime:        time.Since(h.startTime).Seconds(),
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// Method: GET
// Path: /health/live
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the service is ready to handle traffic
//
// Method: GET
// Path: /health/ready
//
// Ready means the dataset loaded with at least one row. Startup aborts
// on a failed load, so not-ready is only observable in tests or while a
// supervisor restart is in flight.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	rows := 0
	if h.data != nil {
		rows = h.data.Len()
	}
	ready := rows > 0

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, r, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"dataset_loaded": ready,
			"dataset_rows":   rows,
			"ready_to_serve": ready,
			"uptime":         time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
