// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package api

import (
	"net/http"
	"strconv"

	"github.com/arisvel/sociolens/internal/dataset"
	"github.com/arisvel/sociolens/internal/models"
)

// filterParams mirrors the filter query parameters shared by every
// analytics endpoint. The bounds guard against garbage input, not against
// the dataset's vocabulary: an in-range value that matches no rows yields
// an empty table, not an error.
type filterParams struct {
	Platform string `validate:"omitempty,max=64"`
	Country  string `validate:"omitempty,max=64"`
	Year     int    `validate:"omitempty,gte=1,lte=9999"`
	Month    string `validate:"omitempty,max=32"`
	Day      int    `validate:"omitempty,gte=1,lte=31"`
}

// tokensRequest bounds the optional limit on the token frequency endpoint.
type tokensRequest struct {
	Limit int `validate:"omitempty,gte=1,lte=10000"`
}

// compareCountriesRequest bounds the selection for the country comparison
// endpoint. The max tag mirrors dataset.MaxCompareCountries.
type compareCountriesRequest struct {
	Countries []string `validate:"required,min=1,max=5,dive,required,max=64"`
}

// buildFilter parses the shared filter parameters from the request query.
//
// Values are passed through verbatim: the dataset keeps categorical cells
// exactly as they appear in the source, and the frontend echoes labels from
// the filter bounds endpoint back here, so trimming or re-casing would
// break round-trips for padded labels. Platform is the one exception; the
// dataset normalizes its casing during matching.
//
// Returns a VALIDATION_ERROR when year or day do not parse as integers or
// any value falls outside its guard bounds.
func (h *Handler) buildFilter(r *http.Request) (dataset.Filter, *models.APIError) {
	q := r.URL.Query()

	params := filterParams{
		Platform: q.Get("platform"),
		Country:  q.Get("country"),
		Month:    q.Get("month"),
	}

	if raw := q.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return dataset.Filter{}, &models.APIError{
				Code:    "VALIDATION_ERROR",
				Message: "Invalid year parameter",
				Details: map[string]interface{}{"field": "year", "value": raw},
			}
		}
		params.Year = year
	}

	if raw := q.Get("day"); raw != "" {
		day, err := strconv.Atoi(raw)
		if err != nil {
			return dataset.Filter{}, &models.APIError{
				Code:    "VALIDATION_ERROR",
				Message: "Invalid day parameter",
				Details: map[string]interface{}{"field": "day", "value": raw},
			}
		}
		params.Day = day
	}

	if apiErr := validateRequest(&params); apiErr != nil {
		return dataset.Filter{}, apiErr
	}

	return dataset.Filter{
		Platform: params.Platform,
		Country:  params.Country,
		Year:     params.Year,
		Month:    params.Month,
		Day:      params.Day,
	}, nil
}
