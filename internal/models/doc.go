// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

/*
Package models defines data structures for the Sociolens application.

This package contains the API request/response structures and the derived-table
result types produced by the dataset query layer. It serves as the single source
of truth for data structure definitions shared between the dataset package and
the HTTP handlers.

Model Categories:

1. API Request/Response Models:
  - APIResponse: Standard response wrapper
  - APIError: Error details
  - Metadata: Response metadata (timestamp, query time, cache flag)

2. Analytics Result Models:
  - TopPost: Highest-liked post per platform
  - SentimentCount / SentimentLikes: Top-10 sentiment tables
  - PlatformCount / PlatformLikes: Platform tables
  - PivotTable: Sentiment x platform cross-tabulation
  - CountrySentimentRow / CountryComparison: Country matrices
  - TokenCount: Token frequency entries

3. Dataset Metadata Models:
  - DatasetSummary: Row counts and cardinalities for the dashboard header
  - FilterBounds: Distinct filter values the frontend builds its controls from

4. Operational Models:
  - HealthStatus: Health check response

Usage Example:

	import "github.com/arisvel/sociolens/internal/models"

	counts := []models.SentimentCount{
	    {Sentiment: "Joy", Count: 42},
	    {Sentiment: "Anger", Count: 17},
	}
	resp := models.APIResponse{
	    Status: "success",
	    Data:   counts,
	    Metadata: models.Metadata{
	        Timestamp:   time.Now().UTC(),
	        QueryTimeMS: 3,
	    },
	}

All models use JSON struct tags in snake_case for consistent wire format.
*/
package models
