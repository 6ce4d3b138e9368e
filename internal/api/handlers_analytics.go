// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/arisvel/sociolens/internal/dataset"
	"github.com/arisvel/sociolens/internal/models"
	"github.com/arisvel/sociolens/internal/validation"
)

// This file contains the analytics endpoints backing the dashboard charts.
// Each handler computes one derived table from the in-memory dataset via
// the AnalyticsQueryExecutor, which layers caching, filter validation, and
// error classification on top of the pure dataset queries.
//
// Analytics Endpoints (11 total):
//   - AnalyticsTopPosts: Highest-liked post per platform
//   - AnalyticsTopPostPlatform: Highest-liked post for one platform
//   - AnalyticsSentimentCounts: Post counts for the top-10 sentiments
//   - AnalyticsSentimentLikes: Average likes for the top-10 sentiments
//   - AnalyticsPlatformCounts: Post counts per platform
//   - AnalyticsPlatformLikes: Average likes per platform
//   - AnalyticsSentimentPlatform: Sentiment x platform pivot table
//   - AnalyticsCountries: Country x sentiment count matrix
//   - AnalyticsCountryBreakdown: One country's sentiment distribution
//   - AnalyticsCompareCountries: Side-by-side comparison of up to 5 countries
//   - AnalyticsTokens: Token frequency table over post text
//
// All endpoints accept the shared filter parameters (platform, country,
// year, month, day) and serve cached tables when available.

// AnalyticsTopPosts returns the highest-liked post per platform.
//
// Method: GET
// Path: /api/v1/analytics/top-posts
//
// One record per platform present in the filtered data, sorted by platform.
// Ties on the like count keep the earliest post in dataset order.
func (h *Handler) AnalyticsTopPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewAnalyticsQueryExecutor(h)
	executor.ExecuteSimple(w, r, "TopPosts", func(filter dataset.Filter) (interface{}, error) {
		return h.data.TopPosts(filter), nil
	})
}

// AnalyticsTopPostPlatform returns the highest-liked post for the platform
// named in the path.
//
// Method: GET
// Path: /api/v1/analytics/top-posts/{platform}
//
// The platform segment is case-insensitive ("twitter" and "Twitter" address
// the same group). Responds 404 EMPTY_RESULT when the filtered group has
// no posts.
func (h *Handler) AnalyticsTopPostPlatform(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	platform := chi.URLParam(r, "platform")

	executor := NewAnalyticsQueryExecutor(h)
	executor.ExecuteWithParam(w, r, "TopPost", dataset.NormalizePlatform(platform),
		func(filter dataset.Filter) (interface{}, error) {
			return h.data.TopPost(platform, filter)
		})
}

// AnalyticsSentimentCounts returns post counts for the ten most frequent
// sentiment labels.
//
// Method: GET
// Path: /api/v1/analytics/sentiments/counts
//
// Order is descending count with ties kept in first-appearance order; the
// same label set and order feed the sentiment likes endpoint so the two
// charts stay aligned.
func (h *Handler) AnalyticsSentimentCounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewAnalyticsQueryExecutor(h)
	executor.ExecuteSimple(w, r, "SentimentCounts", func(filter dataset.Filter) (interface{}, error) {
		return h.data.SentimentCounts(filter), nil
	})
}

// AnalyticsSentimentLikes returns average likes for the ten most frequent
// sentiment labels, in the same order as the counts endpoint.
//
// Method: GET
// Path: /api/v1/analytics/sentiments/likes
func (h *Handler) AnalyticsSentimentLikes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewAnalyticsQueryExecutor(h)
	executor.ExecuteSimple(w, r, "SentimentAvgLikes", func(filter dataset.Filter) (interface{}, error) {
		return h.data.SentimentAvgLikes(filter), nil
	})
}

// AnalyticsPlatformCounts returns the post count per platform in
// first-appearance order.
//
// Method: GET
// Path: /api/v1/analytics/platforms/counts
func (h *Handler) AnalyticsPlatformCounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewAnalyticsQueryExecutor(h)
	executor.ExecuteSimple(w, r, "PlatformCounts", func(filter dataset.Filter) (interface{}, error) {
		return h.data.PlatformCounts(filter), nil
	})
}

// AnalyticsPlatformLikes returns the mean likes per platform, sorted by
// platform.
//
// Method: GET
// Path: /api/v1/analytics/platforms/likes
func (h *Handler) AnalyticsPlatformLikes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewAnalyticsQueryExecutor(h)
	executor.ExecuteSimple(w, r, "PlatformAvgLikes", func(filter dataset.Filter) (interface{}, error) {
		return h.data.PlatformAvgLikes(filter), nil
	})
}

// AnalyticsSentimentPlatform returns the sentiment x platform pivot table:
// ordered platform rows, ordered sentiment columns, and a cell matrix of
// post counts with zeros for unobserved pairs.
//
// Method: GET
// Path: /api/v1/analytics/sentiment-platform
func (h *Handler) AnalyticsSentimentPlatform(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewAnalyticsQueryExecutor(h)
	executor.ExecuteSimple(w, r, "SentimentPlatformPivot", func(filter dataset.Filter) (interface{}, error) {
		return h.data.SentimentPlatformPivot(filter), nil
	})
}

// AnalyticsCountries returns the country x sentiment count matrix. Rows
// with an empty country cell are excluded; each row carries its post total
// and dominant sentiment.
//
// Method: GET
// Path: /api/v1/analytics/countries
func (h *Handler) AnalyticsCountries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewAnalyticsQueryExecutor(h)
	executor.ExecuteSimple(w, r, "CountrySentimentMatrix", func(filter dataset.Filter) (interface{}, error) {
		return h.data.CountrySentimentMatrix(filter), nil
	})
}

// AnalyticsCountryBreakdown returns the sentiment distribution for the
// country named in the path.
//
// Method: GET
// Path: /api/v1/analytics/countries/{country}
//
// The country label must match the dataset cell exactly (the frontend
// echoes labels from the filter bounds endpoint). Responds 404
// EMPTY_RESULT when the country is absent from the filtered data.
func (h *Handler) AnalyticsCountryBreakdown(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	country := chi.URLParam(r, "country")

	executor := NewAnalyticsQueryExecutor(h)
	executor.ExecuteWithParam(w, r, "CountryBreakdown", country,
		func(filter dataset.Filter) (interface{}, error) {
			return h.data.CountryBreakdown(country, filter)
		})
}

// AnalyticsCompareCountries returns the sentiment counts for up to five
// selected countries, melted for grouped-bar rendering.
//
// Method: GET
// Path: /api/v1/analytics/countries/compare?countries=A,B,C
//
// The selection bound is enforced before any computation: more than five
// countries is rejected with 400 SELECTION_OUT_OF_BOUNDS, an empty or
// missing selection with 400 VALIDATION_ERROR. Selections absent from the
// data contribute no rows; an empty intersection is a 200 with empty
// arrays, not an error.
func (h *Handler) AnalyticsCompareCountries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	countries := parseCommaSeparated(r.URL.Query().Get("countries"))

	req := compareCountriesRequest{Countries: countries}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		code := apiErr.Code
		// The slice-level max violation is the selection cap, not a
		// malformed value. Element-level errors report indexed fields
		// ("Countries[2]") and keep the generic code.
		for _, fieldErr := range verr.Errors() {
			if fieldErr.Field() == "Countries" && fieldErr.Tag() == "max" {
				code = "SELECTION_OUT_OF_BOUNDS"
				break
			}
		}
		respondAPIError(w, http.StatusBadRequest, &models.APIError{
			Code:    code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		})
		return
	}

	executor := NewAnalyticsQueryExecutor(h)
	executor.ExecuteWithParam(w, r, "CompareCountries", strings.Join(countries, ","),
		func(filter dataset.Filter) (interface{}, error) {
			return h.data.CompareCountries(countries, filter)
		})
}

// AnalyticsTokens returns token occurrence counts over the filtered posts'
// texts: whitespace-split, lower-cased, tokens longer than three runes.
//
// Method: GET
// Path: /api/v1/analytics/tokens?limit=N
//
// A positive limit truncates after ordering (descending count, ties by
// first appearance); absent or zero returns every token. Limits above the
// configured maximum are clamped rather than rejected.
func (h *Handler) AnalyticsTokens(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	limit := h.config.API.DefaultTokenLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondAPIError(w, http.StatusBadRequest, &models.APIError{
				Code:    "VALIDATION_ERROR",
				Message: "Invalid limit parameter",
				Details: map[string]interface{}{"field": "limit", "value": raw},
			})
			return
		}
		limit = n
	}

	req := tokensRequest{Limit: limit}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	if h.config.API.MaxTokenLimit > 0 && limit > h.config.API.MaxTokenLimit {
		limit = h.config.API.MaxTokenLimit
	}

	executor := NewAnalyticsQueryExecutor(h)
	executor.ExecuteWithParam(w, r, "TokenFrequency", limit,
		func(filter dataset.Filter) (interface{}, error) {
			return h.data.TokenFrequency(filter, limit), nil
		})
}
