// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package models

// SentimentCount represents the post count for one sentiment label
type SentimentCount struct {
	Sentiment string `json:"sentiment"`
	Count     int    `json:"count"`
}

// SentimentLikes represents the mean likes per post for one sentiment label
type SentimentLikes struct {
	Sentiment string  `json:"sentiment"`
	AvgLikes  float64 `json:"avg_likes"`
}

// PivotTable represents the sentiment x platform cross-tabulation.
// Counts[i][j] is the number of posts for Platforms[i] with Sentiments[j];
// pairs absent from the data are 0.
type PivotTable struct {
	Platforms  []string `json:"platforms"`
	Sentiments []string `json:"sentiments"`
	Counts     [][]int  `json:"counts"`
}
