// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package dataset

import (
	"github.com/arisvel/sociolens/internal/models"
)

// Summary describes the loaded dataset for the dashboard header:
// row count, cardinalities, and year range over the whole relation.
func (d *Dataset) Summary() *models.DatasetSummary {
	platforms := make(map[string]bool)
	countries := make(map[string]bool)
	sentiments := make(map[string]bool)
	yearMin, yearMax := 0, 0
	for i := range d.posts {
		p := &d.posts[i]
		platforms[p.Platform] = true
		if p.Country != "" {
			countries[p.Country] = true
		}
		sentiments[p.Sentiment] = true
		if i == 0 || p.Year < yearMin {
			yearMin = p.Year
		}
		if i == 0 || p.Year > yearMax {
			yearMax = p.Year
		}
	}

	return &models.DatasetSummary{
		Source:     d.source,
		Rows:       len(d.posts),
		Platforms:  len(platforms),
		Countries:  len(countries),
		Sentiments: len(sentiments),
		YearMin:    yearMin,
		YearMax:    yearMax,
	}
}

// FilterBounds returns the distinct filter values of the raw relation,
// never of a filtered view: the dashboard builds its controls once.
// Platforms and countries are sorted (empty countries excluded), months
// keep first-appearance order, years span the observed range with the
// latest year as default, and days span 1..31 with 1 as default.
func (d *Dataset) FilterBounds() *models.FilterBounds {
	platformSet := make(map[string]bool)
	countrySet := make(map[string]bool)
	monthSeen := make(map[string]bool)
	var months []string
	yearMin, yearMax := 0, 0
	for i := range d.posts {
		p := &d.posts[i]
		platformSet[p.Platform] = true
		if p.Country != "" {
			countrySet[p.Country] = true
		}
		if !monthSeen[p.Month] {
			monthSeen[p.Month] = true
			months = append(months, p.Month)
		}
		if i == 0 || p.Year < yearMin {
			yearMin = p.Year
		}
		if i == 0 || p.Year > yearMax {
			yearMax = p.Year
		}
	}
	if months == nil {
		months = []string{}
	}

	return &models.FilterBounds{
		Platforms:   sortedKeys(platformSet),
		Countries:   sortedKeys(countrySet),
		Months:      months,
		YearMin:     yearMin,
		YearMax:     yearMax,
		YearDefault: yearMax,
		DayMin:      1,
		DayMax:      31,
		DayDefault:  1,
	}
}
