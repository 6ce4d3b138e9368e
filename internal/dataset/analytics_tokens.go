// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package dataset

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/arisvel/sociolens/internal/models"
)

// minTokenRunes is the exclusive length floor: only tokens longer than
// three runes are counted.
const minTokenRunes = 3

// TokenFrequency returns token occurrence counts over the filtered
// posts' texts. Tokens are whitespace-split, lower-cased, and kept when
// longer than three runes. Order is descending count, ties by first
// appearance. A positive limit truncates after ordering; limit <= 0
// returns every token.
func (d *Dataset) TokenFrequency(filter Filter, limit int) *models.TokenFrequency {
	counts := make(map[string]int)
	var order []string
	total := 0
	for _, p := range d.filtered(filter) {
		for _, token := range strings.Fields(p.Text) {
			token = strings.ToLower(token)
			if utf8.RuneCountInString(token) <= minTokenRunes {
				continue
			}
			if _, ok := counts[token]; !ok {
				order = append(order, token)
			}
			counts[token]++
			total++
		}
	}

	// Stable sort keeps first-appearance order within equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	unique := len(order)
	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}

	tokens := make([]models.TokenCount, 0, len(order))
	for _, token := range order {
		tokens = append(tokens, models.TokenCount{Token: token, Count: counts[token]})
	}

	return &models.TokenFrequency{
		TotalTokens:  total,
		UniqueTokens: unique,
		Tokens:       tokens,
	}
}
