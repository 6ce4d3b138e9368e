// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package models

// DatasetSummary describes the loaded dataset for the dashboard header
type DatasetSummary struct {
	Source     string `json:"source"`
	Rows       int    `json:"rows"`
	Platforms  int    `json:"platforms"`
	Countries  int    `json:"countries"`
	Sentiments int    `json:"sentiments"`
	YearMin    int    `json:"year_min"`
	YearMax    int    `json:"year_max"`
}

// FilterBounds lists the distinct filter values present in the dataset.
// The frontend builds its filter controls from this instead of
// hardcoding vocabularies.
//
// Ordering:
//   - Platforms and Countries are sorted; null/empty countries are excluded
//   - Months keep their first-appearance order (labels, not necessarily
//     numeric-orderable)
//   - Years span YearMin..YearMax with YearDefault = YearMax
//   - Days span 1..31 with DayDefault = 1
type FilterBounds struct {
	Platforms   []string `json:"platforms"`
	Countries   []string `json:"countries"`
	Months      []string `json:"months"`
	YearMin     int      `json:"year_min"`
	YearMax     int      `json:"year_max"`
	YearDefault int      `json:"year_default"`
	DayMin      int      `json:"day_min"`
	DayMax      int      `json:"day_max"`
	DayDefault  int      `json:"day_default"`
}
