// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

// Package dataset loads the sentiment posts CSV into an immutable
// in-memory relation and derives the analytics tables from it.
//
// The relation is loaded once per source path and cached for the
// process lifetime. Derived tables are pure functions of the relation
// and a Filter, so identical queries always produce identical results.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arisvel/sociolens/internal/config"
	"github.com/arisvel/sociolens/internal/logging"
)

// Post is one row of the source dataset. Fields mirror the required
// CSV columns; extra columns in the source are ignored.
type Post struct {
	Platform  string
	Country   string
	Year      int
	Month     string
	Day       int
	Sentiment string
	Likes     float64
	Text      string
	User      string
}

// Dataset is the immutable in-memory relation. Safe for concurrent
// reads; never mutated after Load returns.
type Dataset struct {
	source string
	posts  []Post
}

// Source returns the path the dataset was loaded from.
func (d *Dataset) Source() string { return d.source }

// Len returns the number of posts.
func (d *Dataset) Len() int { return len(d.posts) }

// Required column headers. Columns are located by name, so the order
// in the source file is irrelevant and extra columns are ignored.
var requiredColumns = []string{
	"Platform", "Country", "Year", "Month", "Day", "Sentiment", "Likes", "Text", "User",
}

// NormalizePlatform re-cases a platform label to title case so case
// variants ("twitter", "TWITTER", "Twitter") merge into one group.
// Surrounding whitespace is preserved, matching the source cells.
// A fresh caser is built per call; x/text casers are not safe for
// concurrent use.
func NormalizePlatform(s string) string {
	if s == "" {
		return ""
	}
	return cases.Title(language.Und).String(s)
}

// Load reads the source file once, without consulting the registry.
// It fails with an ErrDataUnavailable-wrapped error when the file
// cannot be opened or parsed; the error detail names the offending
// row where applicable.
func Load(ctx context.Context, cfg config.DatasetConfig) (*Dataset, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %s: %v", ErrDataUnavailable, cfg.Path, err)
	}
	defer f.Close()

	delimiter := ','
	if cfg.Delimiter != "" {
		delimiter = []rune(cfg.Delimiter)[0]
	}

	r := csv.NewReader(f)
	r.Comma = delimiter

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read header of %s: %v", ErrDataUnavailable, cfg.Path, err)
	}

	cols, err := locateColumns(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataUnavailable, cfg.Path, err)
	}

	caser := cases.Title(language.Und)

	var posts []Post
	row := 1 // header was row 1
	for {
		if row%1000 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDataUnavailable, cfg.Path, err)
		}
		row++

		post, err := parsePost(record, cols, caser)
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: %v", ErrDataUnavailable, cfg.Path, row, err)
		}
		posts = append(posts, post)
	}

	logger := logging.Logger()
	logger.Info().
		Str("source", cfg.Path).
		Int("rows", len(posts)).
		Msg("Dataset loaded")

	return &Dataset{source: cfg.Path, posts: posts}, nil
}

// columnIndex maps required column names to their position in the header.
type columnIndex map[string]int

// locateColumns finds the required columns in the header. Header cells
// are whitespace-trimmed and the first cell is stripped of a UTF-8 BOM
// before matching.
func locateColumns(header []string) (columnIndex, error) {
	cols := make(columnIndex, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		name = strings.TrimSpace(name)
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return cols, nil
}

// parsePost converts one CSV record into a Post. Numeric cells tolerate
// surrounding whitespace; categorical and text cells are kept verbatim
// except for the platform re-casing.
func parsePost(record []string, cols columnIndex, caser cases.Caser) (Post, error) {
	year, err := strconv.Atoi(strings.TrimSpace(record[cols["Year"]]))
	if err != nil {
		return Post{}, fmt.Errorf("invalid Year %q", record[cols["Year"]])
	}
	day, err := strconv.Atoi(strings.TrimSpace(record[cols["Day"]]))
	if err != nil {
		return Post{}, fmt.Errorf("invalid Day %q", record[cols["Day"]])
	}
	likes, err := strconv.ParseFloat(strings.TrimSpace(record[cols["Likes"]]), 64)
	if err != nil {
		return Post{}, fmt.Errorf("invalid Likes %q", record[cols["Likes"]])
	}

	return Post{
		Platform:  caser.String(record[cols["Platform"]]),
		Country:   record[cols["Country"]],
		Year:      year,
		Month:     record[cols["Month"]],
		Day:       day,
		Sentiment: record[cols["Sentiment"]],
		Likes:     likes,
		Text:      record[cols["Text"]],
		User:      record[cols["User"]],
	}, nil
}

// registryEntry guards one path's load. The once ensures concurrent
// first requests share a single load.
type registryEntry struct {
	once sync.Once
	ds   *Dataset
	err  error
}

var (
	registryMu sync.Mutex
	registry   = make(map[string]*registryEntry)
)

// Open returns the process-wide dataset for cfg.Path, loading it on
// first use. Concurrent first calls share one load. Failed loads are
// not retained, so a later call retries.
func Open(ctx context.Context, cfg config.DatasetConfig) (*Dataset, error) {
	registryMu.Lock()
	entry, ok := registry[cfg.Path]
	if !ok {
		entry = &registryEntry{}
		registry[cfg.Path] = entry
	}
	registryMu.Unlock()

	entry.once.Do(func() {
		entry.ds, entry.err = Load(ctx, cfg)
	})

	if entry.err != nil {
		registryMu.Lock()
		if registry[cfg.Path] == entry {
			delete(registry, cfg.Path)
		}
		registryMu.Unlock()
		return nil, entry.err
	}
	return entry.ds, nil
}

// resetRegistry clears the memoized datasets. Test use only.
func resetRegistry() {
	registryMu.Lock()
	registry = make(map[string]*registryEntry)
	registryMu.Unlock()
}
