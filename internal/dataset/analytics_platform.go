// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package dataset

import (
	"fmt"
	"sort"

	"github.com/arisvel/sociolens/internal/models"
)

// TopPosts returns each platform's highest-liked post, one record per
// platform, sorted by platform. When several posts share the maximal
// like count the earliest row in dataset order wins.
func (d *Dataset) TopPosts(filter Filter) []models.TopPost {
	best := make(map[string]*Post)
	for _, p := range d.filtered(filter) {
		cur, ok := best[p.Platform]
		if !ok || p.Likes > cur.Likes {
			best[p.Platform] = p
		}
	}

	platforms := make([]string, 0, len(best))
	for platform := range best {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)

	out := make([]models.TopPost, 0, len(platforms))
	for _, platform := range platforms {
		out = append(out, toTopPost(platform, best[platform]))
	}
	return out
}

// TopPost returns the named platform's highest-liked post under the
// filter. The platform argument replaces any platform predicate in the
// filter and is normalized before matching. Returns an ErrEmptyResult-
// wrapped error when the group is empty.
func (d *Dataset) TopPost(platform string, filter Filter) (*models.TopPost, error) {
	filter.Platform = NormalizePlatform(platform)

	var best *Post
	for _, p := range d.filtered(filter) {
		if best == nil || p.Likes > best.Likes {
			best = p
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: no posts for platform %q", ErrEmptyResult, filter.Platform)
	}

	top := toTopPost(filter.Platform, best)
	return &top, nil
}

func toTopPost(platform string, p *Post) models.TopPost {
	return models.TopPost{
		Platform:  platform,
		Likes:     p.Likes,
		Text:      p.Text,
		User:      p.User,
		Sentiment: p.Sentiment,
	}
}

// PlatformCounts returns the post count per platform in first-appearance
// order.
func (d *Dataset) PlatformCounts(filter Filter) []models.PlatformCount {
	counts := make(map[string]int)
	var order []string
	for _, p := range d.filtered(filter) {
		if _, ok := counts[p.Platform]; !ok {
			order = append(order, p.Platform)
		}
		counts[p.Platform]++
	}

	out := make([]models.PlatformCount, 0, len(order))
	for _, platform := range order {
		out = append(out, models.PlatformCount{Platform: platform, Count: counts[platform]})
	}
	return out
}

// PlatformAvgLikes returns the mean likes per platform, sorted by
// platform. Groups exist only for observed rows, so no mean ever
// divides by zero.
func (d *Dataset) PlatformAvgLikes(filter Filter) []models.PlatformLikes {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, p := range d.filtered(filter) {
		sums[p.Platform] += p.Likes
		counts[p.Platform]++
	}

	platforms := make([]string, 0, len(counts))
	for platform := range counts {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)

	out := make([]models.PlatformLikes, 0, len(platforms))
	for _, platform := range platforms {
		out = append(out, models.PlatformLikes{
			Platform: platform,
			AvgLikes: sums[platform] / float64(counts[platform]),
		})
	}
	return out
}
