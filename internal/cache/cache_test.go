// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package cache

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestCacheBasicOperations(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	_, exists = c.Get("key2")
	if exists {
		t.Error("Expected key2 to not exist")
	}
}

func TestCacheExpiration(t *testing.T) {
	c := New(100 * time.Millisecond)

	c.Set("key1", "value1")

	_, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist immediately after set")
	}

	time.Sleep(150 * time.Millisecond)

	_, exists = c.Get("key1")
	if exists {
		t.Error("Expected key1 to be expired")
	}
}

func TestCacheDelete(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	c.Delete("key1")

	_, exists := c.Get("key1")
	if exists {
		t.Error("Expected key1 to be deleted")
	}
}

func TestCacheClear(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Set("key3", "value3")

	c.Clear()

	for _, key := range []string{"key1", "key2", "key3"} {
		_, exists := c.Get(key)
		if exists {
			t.Errorf("Expected %s to be cleared", key)
		}
	}
}

func TestCacheStats(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	c.Get("key1") // hit
	c.Get("key2") // miss
	c.Get("key1") // hit

	stats := c.GetStats()

	if stats.Hits != 2 {
		t.Errorf("Expected 2 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Expected 1 miss, got %d", stats.Misses)
	}

	hitRate := c.HitRate()
	expectedHitRate := 66.66666666666667 // 2/3 * 100
	if hitRate < expectedHitRate-0.01 || hitRate > expectedHitRate+0.01 {
		t.Errorf("Expected hit rate around %.2f%%, got %.2f%%", expectedHitRate, hitRate)
	}
}

func TestCacheSetWithTTL(t *testing.T) {
	c := New(1 * time.Minute)

	c.SetWithTTL("key1", "value1", 100*time.Millisecond)

	_, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}

	time.Sleep(150 * time.Millisecond)

	_, exists = c.Get("key1")
	if exists {
		t.Error("Expected key1 to be expired")
	}
}

func TestGenerateKey(t *testing.T) {
	type viewParams struct {
		Platform string
		Year     int
	}

	params1 := viewParams{Platform: "Twitter", Year: 2021}
	params2 := viewParams{Platform: "Twitter", Year: 2021}
	params3 := viewParams{Platform: "Instagram", Year: 2021}

	key1 := GenerateKey("sentiment_counts", params1)
	key2 := GenerateKey("sentiment_counts", params2)
	key3 := GenerateKey("sentiment_counts", params3)

	if key1 != key2 {
		t.Error("Expected same params to generate same key")
	}

	if key1 == key3 {
		t.Error("Expected different params to generate different key")
	}

	if !strings.HasPrefix(key1, "sentiment_counts:") {
		t.Errorf("Expected key to carry the view name prefix, got: %s", key1)
	}
}

func TestGenerateKeyDistinguishesViews(t *testing.T) {
	type viewParams struct {
		Platform string
	}

	params := viewParams{Platform: "Reddit"}

	key1 := GenerateKey("platform_counts", params)
	key2 := GenerateKey("platform_likes", params)

	if key1 == key2 {
		t.Error("Expected different views with identical params to generate different keys")
	}
}

func TestGenerateKeyUnmarshalable(t *testing.T) {
	// Channels cannot be marshaled to JSON, forcing the fallback path.
	type unmarshalableParams struct {
		Ch chan int
	}

	params := unmarshalableParams{
		Ch: make(chan int),
	}

	key := GenerateKey("token_frequency", params)

	if key == "" {
		t.Error("Expected non-empty key even with unmarshalable data")
	}

	if !strings.HasPrefix(key, "token_frequency:") {
		t.Errorf("Expected key to carry the view name prefix, got: %s", key)
	}
}

func TestGenerateKeyNilParams(t *testing.T) {
	key := GenerateKey("dataset_summary", nil)

	if key == "" {
		t.Error("Expected non-empty key with nil params")
	}

	if !strings.HasPrefix(key, "dataset_summary:") {
		t.Errorf("Expected key to carry the view name prefix, got: %s", key)
	}
}

func TestCacheConcurrency(t *testing.T) {
	c := New(1 * time.Minute)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			for j := 0; j < 100; j++ {
				key := "key"
				c.Set(key, id)
				c.Get(key)
				if j%10 == 0 {
					c.Delete(key)
				}
			}
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	stats := c.GetStats()
	if stats.Hits == 0 && stats.Misses == 0 {
		t.Error("Expected some cache activity from concurrent operations")
	}
}

func TestCacheCleanup(t *testing.T) {
	c := New(50 * time.Millisecond)

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Set("key3", "value3")

	if _, exists := c.Get("key1"); !exists {
		t.Error("Expected key1 to exist")
	}

	time.Sleep(100 * time.Millisecond)

	evicted := c.Cleanup()
	if evicted != 3 {
		t.Errorf("Expected Cleanup to evict 3 entries, got %d", evicted)
	}

	stats := c.GetStats()
	if stats.TotalKeys != 0 {
		t.Errorf("Expected 0 total keys after cleanup, got %d", stats.TotalKeys)
	}

	if stats.LastCleanup.IsZero() {
		t.Error("Expected LastCleanup to be set")
	}
}

func TestCacheCleanupPartialExpiration(t *testing.T) {
	c := New(100 * time.Millisecond)

	c.SetWithTTL("short-lived", "value1", 50*time.Millisecond)
	c.SetWithTTL("long-lived", "value2", 200*time.Millisecond)

	time.Sleep(75 * time.Millisecond)

	evicted := c.Cleanup()
	if evicted != 1 {
		t.Errorf("Expected Cleanup to evict 1 entry, got %d", evicted)
	}

	if _, exists := c.Get("short-lived"); exists {
		t.Error("Expected short-lived key to be cleaned up")
	}

	if _, exists := c.Get("long-lived"); !exists {
		t.Error("Expected long-lived key to still exist")
	}

	stats := c.GetStats()
	if stats.TotalKeys != 1 {
		t.Errorf("Expected 1 total key, got %d", stats.TotalKeys)
	}
}

func TestCacheCleanupEmptyCache(t *testing.T) {
	c := New(1 * time.Minute)

	evicted := c.Cleanup()
	if evicted != 0 {
		t.Errorf("Expected no evictions on empty cache, got %d", evicted)
	}
}

func TestCacheZeroTTL(t *testing.T) {
	c := New(0)

	c.Set("key1", "value1")

	// With zero or negative TTL, items expire immediately.
	_, exists := c.Get("key1")
	if exists {
		t.Error("Expected key with zero TTL to be expired immediately")
	}
}

func TestCacheStatsCopy(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	c.Get("key1")

	stats1 := c.GetStats()
	originalHits := stats1.Hits

	c.Get("key1")
	c.Get("key2")

	if stats1.Hits != originalHits {
		t.Error("GetStats should return a copy, not a reference")
	}

	stats2 := c.GetStats()
	if stats2.Hits == originalHits {
		t.Error("Expected new stats to reflect updated hits")
	}
}

func TestCacheHitRateZeroOperations(t *testing.T) {
	c := New(1 * time.Minute)

	hitRate := c.HitRate()
	if hitRate != 0.0 {
		t.Errorf("Expected 0%% hit rate with no operations, got %.2f%%", hitRate)
	}
}

func TestCacheEvictionCounterOnClear(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Set("key3", "value3")

	initialStats := c.GetStats()

	c.Clear()

	stats := c.GetStats()
	expectedEvictions := initialStats.Evictions + 3
	if stats.Evictions != expectedEvictions {
		t.Errorf("Expected %d evictions, got %d", expectedEvictions, stats.Evictions)
	}

	if stats.TotalKeys != 0 {
		t.Errorf("Expected 0 total keys after clear, got %d", stats.TotalKeys)
	}
}

func TestCacheTotalKeysCounter(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	stats := c.GetStats()
	if stats.TotalKeys != 1 {
		t.Errorf("Expected 1 total key, got %d", stats.TotalKeys)
	}

	c.Set("key2", "value2")
	stats = c.GetStats()
	if stats.TotalKeys != 2 {
		t.Errorf("Expected 2 total keys, got %d", stats.TotalKeys)
	}

	// Overwriting an existing key should not increase the count.
	c.Set("key1", "new-value1")
	stats = c.GetStats()
	if stats.TotalKeys != 2 {
		t.Errorf("Expected 2 total keys after overwrite, got %d", stats.TotalKeys)
	}
}

func TestCacheEntryCount(t *testing.T) {
	c := New(50 * time.Millisecond)

	if c.EntryCount() != 0 {
		t.Errorf("Expected 0 entries in a fresh cache, got %d", c.EntryCount())
	}

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	if c.EntryCount() != 2 {
		t.Errorf("Expected 2 entries, got %d", c.EntryCount())
	}

	// Expired entries still count until swept.
	time.Sleep(100 * time.Millisecond)
	if c.EntryCount() != 2 {
		t.Errorf("Expected 2 entries before cleanup, got %d", c.EntryCount())
	}

	c.Cleanup()
	if c.EntryCount() != 0 {
		t.Errorf("Expected 0 entries after cleanup, got %d", c.EntryCount())
	}
}

func TestCacheEntryOverwriteResetsExpiration(t *testing.T) {
	c := New(200 * time.Millisecond)

	c.Set("key1", "value1")

	time.Sleep(50 * time.Millisecond)

	// Overwrite resets the deadline to now + TTL.
	c.Set("key1", "value2")

	time.Sleep(100 * time.Millisecond)

	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected overwritten key to have reset expiration")
	}

	if value != "value2" {
		t.Errorf("Expected value2, got %v", value)
	}
}

func BenchmarkCacheSet(b *testing.B) {
	c := New(1 * time.Minute)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set("key", "value")
	}
}

func BenchmarkCacheGet(b *testing.B) {
	c := New(1 * time.Minute)
	c.Set("key", "value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("key")
	}
}

func BenchmarkGenerateKey(b *testing.B) {
	type viewParams struct {
		Platform string
		Country  string
		Year     int
	}

	params := viewParams{Platform: "Twitter", Country: "UK", Year: 2021}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateKey("top_posts", params)
	}
}

func BenchmarkCacheCleanup(b *testing.B) {
	c := New(1 * time.Millisecond)

	for i := 0; i < 1000; i++ {
		c.Set(fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i))
	}

	time.Sleep(10 * time.Millisecond)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Cleanup()
	}
}
