// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package models

// TopPost represents the highest-liked post of one platform.
// When several posts share the maximal like count the earliest row
// in dataset order is reported.
type TopPost struct {
	Platform  string  `json:"platform"`
	Likes     float64 `json:"likes"`
	Text      string  `json:"text"`
	User      string  `json:"user"`
	Sentiment string  `json:"sentiment"`
}

// PlatformCount represents the number of posts observed for a platform
type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

// PlatformLikes represents the mean likes per post for a platform
type PlatformLikes struct {
	Platform string  `json:"platform"`
	AvgLikes float64 `json:"avg_likes"`
}
