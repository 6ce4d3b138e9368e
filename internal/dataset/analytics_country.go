// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package dataset

import (
	"fmt"

	"github.com/arisvel/sociolens/internal/models"
)

// MaxCompareCountries caps a country comparison selection.
const MaxCompareCountries = 5

// CountrySentimentMatrix returns the country x sentiment count matrix:
// one row per country (sorted, rows with an empty country excluded),
// one column per distinct sentiment observed in those rows (sorted).
// Each row carries its post total and dominant sentiment; on equal
// counts the first column in sorted order wins.
func (d *Dataset) CountrySentimentMatrix(filter Filter) *models.CountryMatrix {
	countrySet := make(map[string]bool)
	sentimentSet := make(map[string]bool)
	cells := make(map[string]map[string]int)
	for _, p := range d.filtered(filter) {
		if p.Country == "" {
			continue
		}
		countrySet[p.Country] = true
		sentimentSet[p.Sentiment] = true
		if cells[p.Country] == nil {
			cells[p.Country] = make(map[string]int)
		}
		cells[p.Country][p.Sentiment]++
	}

	countries := sortedKeys(countrySet)
	sentiments := sortedKeys(sentimentSet)

	rows := make([]models.CountrySentimentRow, 0, len(countries))
	for _, country := range countries {
		counts := make([]int, len(sentiments))
		total := 0
		dominant := ""
		dominantCount := -1
		for j, sentiment := range sentiments {
			n := cells[country][sentiment]
			counts[j] = n
			total += n
			if n > dominantCount {
				dominant = sentiment
				dominantCount = n
			}
		}
		rows = append(rows, models.CountrySentimentRow{
			Country:           country,
			Counts:            counts,
			TotalPosts:        total,
			DominantSentiment: dominant,
		})
	}

	return &models.CountryMatrix{Sentiments: sentiments, Rows: rows}
}

// CountryBreakdown returns the named country's matrix row melted to
// (sentiment, count) pairs in the matrix column order, zero cells
// included. Any country predicate in the filter is cleared: the row is
// selected from the full matrix so the column set stays comparable
// across countries. Returns an ErrEmptyResult-wrapped error when the
// country is absent from the filtered data.
func (d *Dataset) CountryBreakdown(country string, filter Filter) (*models.CountryBreakdown, error) {
	filter.Country = ""
	matrix := d.CountrySentimentMatrix(filter)

	for _, row := range matrix.Rows {
		if row.Country != country {
			continue
		}
		pairs := make([]models.SentimentCount, 0, len(matrix.Sentiments))
		for j, sentiment := range matrix.Sentiments {
			pairs = append(pairs, models.SentimentCount{Sentiment: sentiment, Count: row.Counts[j]})
		}
		return &models.CountryBreakdown{
			Country:           row.Country,
			Sentiments:        pairs,
			TotalPosts:        row.TotalPosts,
			DominantSentiment: row.DominantSentiment,
		}, nil
	}
	return nil, fmt.Errorf("%w: no posts for country %q", ErrEmptyResult, country)
}

// CompareCountries returns the matrix rows of the selected countries
// melted to (country, sentiment, count) triples for side-by-side
// comparison. At most MaxCompareCountries may be selected; violations
// return an ErrSelectionOutOfBounds-wrapped error before any
// computation. Selections absent from the data contribute no rows; an
// empty intersection yields an empty comparison, not an error.
func (d *Dataset) CompareCountries(countries []string, filter Filter) (*models.CountryComparison, error) {
	if len(countries) > MaxCompareCountries {
		return nil, fmt.Errorf("%w: at most %d countries may be compared, got %d",
			ErrSelectionOutOfBounds, MaxCompareCountries, len(countries))
	}

	selected := make(map[string]bool, len(countries))
	for _, c := range countries {
		selected[c] = true
	}

	filter.Country = ""
	matrix := d.CountrySentimentMatrix(filter)

	// Matrix rows are already sorted by country, so the melted output
	// keeps sorted country order.
	present := make([]string, 0, len(countries))
	counts := make([]models.CountrySentimentCount, 0, len(countries)*len(matrix.Sentiments))
	for _, row := range matrix.Rows {
		if !selected[row.Country] {
			continue
		}
		present = append(present, row.Country)
		for j, sentiment := range matrix.Sentiments {
			counts = append(counts, models.CountrySentimentCount{
				Country:   row.Country,
				Sentiment: sentiment,
				Count:     row.Counts[j],
			})
		}
	}

	sentiments := matrix.Sentiments
	if len(present) == 0 {
		sentiments = []string{}
	}

	return &models.CountryComparison{
		Countries:  present,
		Sentiments: sentiments,
		Counts:     counts,
	}, nil
}
