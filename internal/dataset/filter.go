// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package dataset

// Filter selects the subset of posts a derived table is computed over.
// All fields are optional and combine using AND logic. A zero-value
// field matches every row; a set field is strict equality. Platform is
// title-case normalized before matching so the filter addresses merged
// platform groups.
//
// Example - posts from Twitter in January 2023:
//
//	filter := dataset.Filter{Platform: "twitter", Year: 2023, Month: "January"}
//
// Thread Safety:
// Filter is a value type; queries never retain or mutate the caller's copy.
type Filter struct {
	Platform string
	Country  string
	Year     int
	Month    string
	Day      int
}

// matches reports whether the post passes every set predicate.
// Assumes the filter's Platform has already been normalized.
func (f *Filter) matches(p *Post) bool {
	if f.Platform != "" && p.Platform != f.Platform {
		return false
	}
	if f.Country != "" && p.Country != f.Country {
		return false
	}
	if f.Year != 0 && p.Year != f.Year {
		return false
	}
	if f.Month != "" && p.Month != f.Month {
		return false
	}
	if f.Day != 0 && p.Day != f.Day {
		return false
	}
	return true
}

// filtered returns the matching posts in dataset order. A linear scan
// is the intended design at this data scale.
func (d *Dataset) filtered(filter Filter) []*Post {
	filter.Platform = NormalizePlatform(filter.Platform)

	out := make([]*Post, 0, len(d.posts))
	for i := range d.posts {
		if filter.matches(&d.posts[i]) {
			out = append(out, &d.posts[i])
		}
	}
	return out
}
