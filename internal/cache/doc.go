// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

/*
Package cache provides a thread-safe in-memory TTL cache for computed
analytics tables.

Every analytics endpoint derives its response from the immutable in-memory
dataset. The computations are cheap but not free, and the dashboard requests
the same tables for the same filters over and over, so the API layer caches
each computed table keyed by view name and filter parameters.

# Overview

The cache provides:
  - Thread-safe concurrent access (sync.RWMutex)
  - Time-to-live expiration bounding memory for rare filter combinations
  - Lazy expiration on Get plus bulk sweeps via Cleanup
  - Hit/miss/eviction counters surfaced by the stats endpoint
  - Deterministic key generation from view name and parameters

Because the dataset never changes while the process runs, entries are never
stale in the usual sense. The TTL exists purely to bound memory: a filter
combination requested once should not occupy space forever.

# Usage Example

Basic caching:

	import "github.com/arisvel/sociolens/internal/cache"

	// Create cache with 5-minute default TTL
	c := cache.New(5 * time.Minute)

	// Store a computed table
	key := cache.GenerateKey("PlatformCounts", filter)
	c.Set(key, counts)

	// Retrieve it
	if value, ok := c.Get(key); ok {
	    counts := value.([]models.PlatformCount)
	    // Serve from cache
	}

The analytics executor wraps this pattern for every endpoint:

	cacheKey := cache.GenerateKey(view, filter)
	if cached, found := h.cache.Get(cacheKey); found {
	    respondJSON(w, r, http.StatusOK, envelope(cached, true))
	    return
	}
	data, err := queryFunc(filter)
	...
	h.cache.Set(cacheKey, data)

# Key Generation

GenerateKey serializes the parameters to JSON and hashes them with SHA-256,
so structurally equal filters always map to the same key:

	cache.GenerateKey("TopPosts", dataset.Filter{Platform: "Twitter"})
	// "TopPosts:3f2a..."

Endpoints with extra parameters beyond the shared filter (a platform path
segment, a token limit) fold them into the hashed value so each variant is
cached separately.

# Expiration

Expired entries are removed in two ways:

 1. Lazily on Get: an expired entry reads as a miss and is deleted.
 2. In bulk by Cleanup: the supervised cache janitor calls Cleanup on a
    fixed interval (CACHE_CLEANUP_INTERVAL, default 10 minutes) and logs
    the eviction count.

There is no size cap and no LRU policy. The key space is bounded by the
filter vocabulary of a static dataset, so memory stays small in practice.

# Statistics

GetStats returns a copy of the counters; HitRate reports hits as a
percentage of all lookups. The /api/v1/stats/cache endpoint exposes both,
and the janitor publishes entry and eviction gauges to Prometheus after
each sweep.

# Thread Safety

All methods are safe for concurrent use. Get takes a read lock; Set,
Delete, Clear, and Cleanup take the write lock. Counter updates use a
separate lock so hot reads do not contend with stats reporting.

# See Also

  - internal/api: analytics executor that populates and reads this cache
  - internal/supervisor/services: the janitor service driving Cleanup
*/
package cache
