// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/arisvel/sociolens/internal/config"
)

// fixtureCSV is the five-post dataset most query tests run against.
// It contains a platform case variant ("twitter"), a like-count spread
// per platform, and two countries.
const fixtureCSV = `Platform,Country,Year,Month,Day,Sentiment,Likes,Text,User
Twitter,US,2023,Jan,1,Joy,10,morning coffee thoughts,alice
twitter,US,2023,Jan,1,Joy,50,launch day excitement builds,bob
Facebook,UK,2023,Feb,2,Anger,5,delayed trains again today,carol
Facebook,UK,2023,Feb,2,Joy,20,weekend plans finally settled,dave
Instagram,US,2023,Jan,1,Joy,1,sunset over the bridge,erin
`

// writeDataset writes CSV content to a temp file and returns its path.
func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posts.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write dataset file: %v", err)
	}
	return path
}

// loadDataset runs content through the real loader.
func loadDataset(t *testing.T, content string) *Dataset {
	t.Helper()
	cfg := config.DatasetConfig{Path: writeDataset(t, content), Delimiter: ","}
	ds, err := Load(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return ds
}

// fixtureDataset loads the shared five-post fixture.
func fixtureDataset(t *testing.T) *Dataset {
	t.Helper()
	return loadDataset(t, fixtureCSV)
}

// testDataset wraps rows in a Dataset without touching the loader.
// Rows are assumed pre-normalized.
func testDataset(posts []Post) *Dataset {
	return &Dataset{source: "test", posts: posts}
}

func TestLoad_ParsesRows(t *testing.T) {
	t.Parallel()

	ds := fixtureDataset(t)

	if ds.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", ds.Len())
	}

	first := ds.posts[0]
	if first.Platform != "Twitter" {
		t.Errorf("posts[0].Platform = %q, want Twitter", first.Platform)
	}
	if first.Country != "US" || first.Year != 2023 || first.Month != "Jan" || first.Day != 1 {
		t.Errorf("posts[0] date fields = %q/%d/%q/%d, want US/2023/Jan/1",
			first.Country, first.Year, first.Month, first.Day)
	}
	if first.Likes != 10 {
		t.Errorf("posts[0].Likes = %v, want 10", first.Likes)
	}
	if first.User != "alice" {
		t.Errorf("posts[0].User = %q, want alice", first.User)
	}

	// The lower-cased platform in row 2 is re-cased on load.
	if ds.posts[1].Platform != "Twitter" {
		t.Errorf("posts[1].Platform = %q, want Twitter (re-cased)", ds.posts[1].Platform)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	cfg := config.DatasetConfig{Path: filepath.Join(t.TempDir(), "absent.csv"), Delimiter: ","}
	_, err := Load(context.Background(), cfg)
	if err == nil {
		t.Fatal("Load() expected error for missing file, got nil")
	}
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("Load() error = %v, want ErrDataUnavailable", err)
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	t.Parallel()

	content := "Platform,Country,Year,Month,Day,Likes,Text,User\nTwitter,US,2023,Jan,1,10,hi,alice\n"
	cfg := config.DatasetConfig{Path: writeDataset(t, content), Delimiter: ","}
	_, err := Load(context.Background(), cfg)
	if err == nil {
		t.Fatal("Load() expected error for missing column, got nil")
	}
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("Load() error = %v, want ErrDataUnavailable", err)
	}
	if !strings.Contains(err.Error(), "Sentiment") {
		t.Errorf("Load() error = %q, want mention of the missing column", err.Error())
	}
}

func TestLoad_MalformedNumericCell(t *testing.T) {
	t.Parallel()

	content := fixtureCSV + "Twitter,US,2023,Jan,1,Joy,many,bad row,frank\n"
	cfg := config.DatasetConfig{Path: writeDataset(t, content), Delimiter: ","}
	_, err := Load(context.Background(), cfg)
	if err == nil {
		t.Fatal("Load() expected error for malformed Likes cell, got nil")
	}
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("Load() error = %v, want ErrDataUnavailable", err)
	}
	// The failing row is row 7 (header is row 1).
	if !strings.Contains(err.Error(), "row 7") {
		t.Errorf("Load() error = %q, want mention of row 7", err.Error())
	}
}

func TestLoad_HeaderOnly(t *testing.T) {
	t.Parallel()

	ds := loadDataset(t, "Platform,Country,Year,Month,Day,Sentiment,Likes,Text,User\n")
	if ds.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ds.Len())
	}
}

func TestLoad_ColumnsLocatedByName(t *testing.T) {
	t.Parallel()

	// Shuffled column order plus an extra column the loader must ignore.
	content := `User,Likes,Platform,Extra,Sentiment,Country,Day,Month,Year
alice,42,Twitter,ignored,Joy,US,3,Mar,2022
`
	ds := loadDataset(t, content)
	if ds.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", ds.Len())
	}
	p := ds.posts[0]
	if p.Platform != "Twitter" || p.Likes != 42 || p.Year != 2022 || p.Month != "Mar" || p.Day != 3 {
		t.Errorf("parsed post = %+v, want column values matched by header name", p)
	}
}

func TestLoad_DelimiterOverride(t *testing.T) {
	t.Parallel()

	content := "Platform;Country;Year;Month;Day;Sentiment;Likes;Text;User\nTwitter;US;2023;Jan;1;Joy;10;hello there;alice\n"
	cfg := config.DatasetConfig{Path: writeDataset(t, content), Delimiter: ";"}
	ds, err := Load(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ds.Len() != 1 || ds.posts[0].Platform != "Twitter" {
		t.Errorf("semicolon-delimited load = %+v, want one Twitter post", ds.posts)
	}
}

func TestLoad_NumericPaddingTolerated(t *testing.T) {
	t.Parallel()

	content := "Platform,Country,Year,Month,Day,Sentiment,Likes,Text,User\nTwitter,US, 2023 ,Jan, 1 ,Joy, 30.5 ,padded numbers,alice\n"
	ds := loadDataset(t, content)
	p := ds.posts[0]
	if p.Year != 2023 || p.Day != 1 || p.Likes != 30.5 {
		t.Errorf("padded numeric cells parsed to %d/%d/%v, want 2023/1/30.5", p.Year, p.Day, p.Likes)
	}
}

func TestLoad_CategoricalCellsKeptVerbatim(t *testing.T) {
	t.Parallel()

	// Padded categorical cells stay padded; only the platform is re-cased.
	content := "Platform,Country,Year,Month,Day,Sentiment,Likes,Text,User\n twitter , US ,2023,Jan,1, Joy ,10,text,alice\n"
	ds := loadDataset(t, content)
	p := ds.posts[0]
	if p.Platform != " Twitter " {
		t.Errorf("Platform = %q, want %q (re-cased, padding preserved)", p.Platform, " Twitter ")
	}
	if p.Country != " US " {
		t.Errorf("Country = %q, want %q (verbatim)", p.Country, " US ")
	}
	if p.Sentiment != " Joy " {
		t.Errorf("Sentiment = %q, want %q (verbatim)", p.Sentiment, " Joy ")
	}
}

func TestNormalizePlatform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"twitter", "Twitter"},
		{"TWITTER", "Twitter"},
		{"tWiTtEr", "Twitter"},
		{"Twitter", "Twitter"},
		{"", ""},
		{" twitter ", " Twitter "},
		{"twitter x", "Twitter X"},
	}

	for _, tt := range tests {
		if got := NormalizePlatform(tt.input); got != tt.expected {
			t.Errorf("NormalizePlatform(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestOpen_MemoizesByPath(t *testing.T) {
	resetRegistry()
	t.Cleanup(resetRegistry)

	cfg := config.DatasetConfig{Path: writeDataset(t, fixtureCSV), Delimiter: ","}

	first, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	second, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open() second call error = %v", err)
	}
	if first != second {
		t.Error("Open() returned different datasets for the same path, want memoized instance")
	}
}

func TestOpen_FailedLoadNotMemoized(t *testing.T) {
	resetRegistry()
	t.Cleanup(resetRegistry)

	path := filepath.Join(t.TempDir(), "late.csv")
	cfg := config.DatasetConfig{Path: path, Delimiter: ","}

	if _, err := Open(context.Background(), cfg); !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("Open() error = %v, want ErrDataUnavailable", err)
	}

	// The file appears after the failed attempt; a retry must succeed.
	if err := os.WriteFile(path, []byte(fixtureCSV), 0o644); err != nil {
		t.Fatalf("Failed to write dataset file: %v", err)
	}
	ds, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open() retry error = %v", err)
	}
	if ds.Len() != 5 {
		t.Errorf("Len() = %d, want 5", ds.Len())
	}
}

func TestOpen_ConcurrentFirstUse(t *testing.T) {
	resetRegistry()
	t.Cleanup(resetRegistry)

	cfg := config.DatasetConfig{Path: writeDataset(t, fixtureCSV), Delimiter: ","}

	const goroutines = 16
	results := make([]*Dataset, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Open(context.Background(), cfg)
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		if errs[i] != nil {
			t.Fatalf("Open() goroutine %d error = %v", i, errs[i])
		}
		if results[i] != results[0] {
			t.Fatalf("Open() goroutine %d got a different dataset instance", i)
		}
	}
}

// TestQueriesAreIdempotent verifies that identical (relation, filter)
// inputs produce identical outputs with no hidden state.
func TestQueriesAreIdempotent(t *testing.T) {
	t.Parallel()

	ds := fixtureDataset(t)
	filter := Filter{Country: "US"}

	if a, b := ds.TopPosts(filter), ds.TopPosts(filter); !reflect.DeepEqual(a, b) {
		t.Errorf("TopPosts() not idempotent: %+v vs %+v", a, b)
	}
	if a, b := ds.SentimentCounts(filter), ds.SentimentCounts(filter); !reflect.DeepEqual(a, b) {
		t.Errorf("SentimentCounts() not idempotent: %+v vs %+v", a, b)
	}
	if a, b := ds.PlatformAvgLikes(filter), ds.PlatformAvgLikes(filter); !reflect.DeepEqual(a, b) {
		t.Errorf("PlatformAvgLikes() not idempotent: %+v vs %+v", a, b)
	}
	if a, b := ds.SentimentPlatformPivot(filter), ds.SentimentPlatformPivot(filter); !reflect.DeepEqual(a, b) {
		t.Errorf("SentimentPlatformPivot() not idempotent: %+v vs %+v", a, b)
	}
	if a, b := ds.CountrySentimentMatrix(filter), ds.CountrySentimentMatrix(filter); !reflect.DeepEqual(a, b) {
		t.Errorf("CountrySentimentMatrix() not idempotent: %+v vs %+v", a, b)
	}
	if a, b := ds.TokenFrequency(filter, 0), ds.TokenFrequency(filter, 0); !reflect.DeepEqual(a, b) {
		t.Errorf("TokenFrequency() not idempotent: %+v vs %+v", a, b)
	}
}
