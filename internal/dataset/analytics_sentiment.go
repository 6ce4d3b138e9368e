// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package dataset

import (
	"sort"

	"github.com/arisvel/sociolens/internal/models"
)

// topSentimentLimit bounds the sentiment tables to the most frequent
// labels; the dataset's sentiment vocabulary is open-ended.
const topSentimentLimit = 10

// topSentiments returns up to n sentiment labels with their counts,
// ordered by descending count, ties by first appearance in dataset
// order. This order is the fixed display order every top-N-scoped
// table reuses.
func topSentiments(rows []*Post, n int) []models.SentimentCount {
	counts := make(map[string]int)
	var order []string
	for _, p := range rows {
		if _, ok := counts[p.Sentiment]; !ok {
			order = append(order, p.Sentiment)
		}
		counts[p.Sentiment]++
	}

	// Stable sort keeps first-appearance order within equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}

	out := make([]models.SentimentCount, 0, len(order))
	for _, sentiment := range order {
		out = append(out, models.SentimentCount{Sentiment: sentiment, Count: counts[sentiment]})
	}
	return out
}

// SentimentCounts returns the post count for the ten most frequent
// sentiment labels, in the fixed top-10 order.
func (d *Dataset) SentimentCounts(filter Filter) []models.SentimentCount {
	return topSentiments(d.filtered(filter), topSentimentLimit)
}

// SentimentAvgLikes returns the mean likes per sentiment, restricted to
// the top-10 label set and presented in the fixed top-10 order.
func (d *Dataset) SentimentAvgLikes(filter Filter) []models.SentimentLikes {
	rows := d.filtered(filter)
	top := topSentiments(rows, topSentimentLimit)

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, p := range rows {
		sums[p.Sentiment] += p.Likes
		counts[p.Sentiment]++
	}

	out := make([]models.SentimentLikes, 0, len(top))
	for _, tc := range top {
		out = append(out, models.SentimentLikes{
			Sentiment: tc.Sentiment,
			AvgLikes:  sums[tc.Sentiment] / float64(counts[tc.Sentiment]),
		})
	}
	return out
}

// SentimentPlatformPivot returns the full cross-tabulation of post
// counts: rows are platforms, columns are sentiments, both sorted.
// Every distinct sentiment appears, not just the top 10; pairs absent
// from the data are 0.
func (d *Dataset) SentimentPlatformPivot(filter Filter) *models.PivotTable {
	rows := d.filtered(filter)

	platformSet := make(map[string]bool)
	sentimentSet := make(map[string]bool)
	cells := make(map[string]map[string]int)
	for _, p := range rows {
		platformSet[p.Platform] = true
		sentimentSet[p.Sentiment] = true
		if cells[p.Platform] == nil {
			cells[p.Platform] = make(map[string]int)
		}
		cells[p.Platform][p.Sentiment]++
	}

	platforms := sortedKeys(platformSet)
	sentiments := sortedKeys(sentimentSet)

	counts := make([][]int, 0, len(platforms))
	for _, platform := range platforms {
		row := make([]int, len(sentiments))
		for j, sentiment := range sentiments {
			row[j] = cells[platform][sentiment]
		}
		counts = append(counts, row)
	}

	return &models.PivotTable{
		Platforms:  platforms,
		Sentiments: sentiments,
		Counts:     counts,
	}
}

// sortedKeys returns the set's keys in lexicographic order.
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
