// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package models

// CountrySentimentRow represents one country's sentiment distribution.
// Counts is aligned with the sentiment column order of the enclosing
// matrix. DominantSentiment is the label with the highest count; on a
// tie the first label in column order wins.
type CountrySentimentRow struct {
	Country           string `json:"country"`
	Counts            []int  `json:"counts"`
	TotalPosts        int    `json:"total_posts"`
	DominantSentiment string `json:"dominant_sentiment"`
}

// CountryMatrix represents the full country x sentiment count matrix.
// Rows are sorted by country, Sentiments holds the column order.
type CountryMatrix struct {
	Sentiments []string              `json:"sentiments"`
	Rows       []CountrySentimentRow `json:"rows"`
}

// CountryBreakdown represents a single country's matrix row melted to
// (sentiment, count) pairs in column order.
type CountryBreakdown struct {
	Country           string           `json:"country"`
	Sentiments        []SentimentCount `json:"sentiments"`
	TotalPosts        int              `json:"total_posts"`
	DominantSentiment string           `json:"dominant_sentiment"`
}

// CountrySentimentCount is one (country, sentiment, count) triple of a
// country comparison.
type CountrySentimentCount struct {
	Country   string `json:"country"`
	Sentiment string `json:"sentiment"`
	Count     int    `json:"count"`
}

// CountryComparison represents the side-by-side sentiment distribution
// of the selected countries. Countries lists the selections present in
// the data (sorted); Counts is melted per country in that order.
type CountryComparison struct {
	Countries  []string                `json:"countries"`
	Sentiments []string                `json:"sentiments"`
	Counts     []CountrySentimentCount `json:"counts"`
}
