// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package models

// TokenCount represents one token and its occurrence count
type TokenCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// TokenFrequency represents the ordered token frequency table.
// Tokens is ordered by descending count, ties by first appearance.
// UniqueTokens counts distinct tokens before any limit truncation.
type TokenFrequency struct {
	TotalTokens  int          `json:"total_tokens"`
	UniqueTokens int          `json:"unique_tokens"`
	Tokens       []TokenCount `json:"tokens"`
}
