// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package services

import (
	"context"
	"time"

	"github.com/arisvel/sociolens/internal/logging"
	"github.com/arisvel/sociolens/internal/metrics"
)

// CleanableCache interface matches the cache methods the janitor needs.
//
// This interface allows the CacheJanitorService to work with the query cache
// without direct dependency, enabling testing with mocks.
//
// Satisfied by *cache.Cache from internal/cache:
//   - Cleanup() int64
//   - EntryCount() int64
type CleanableCache interface {
	Cleanup() int64
	EntryCount() int64
}

// CacheJanitorService sweeps expired cache entries on a fixed interval.
//
// The cache itself starts no goroutines; expired entries are otherwise only
// reclaimed lazily on access. This service owns the periodic sweep so the
// supervisor tree controls its lifecycle and restart policy:
//
//  1. Ticks at the configured interval
//  2. Runs Cleanup() on each tick and publishes cache gauges
//  3. Exits when the context is canceled
//
// Example usage:
//
//	svc := services.NewCacheJanitorService(queryCache, 10*time.Minute)
//	tree.AddMaintenanceService(svc)
type CacheJanitorService struct {
	cache    CleanableCache
	interval time.Duration
	name     string
}

// NewCacheJanitorService creates a new cache janitor service.
//
// The interval determines how often expired entries are swept. A typical
// value is a small multiple of the cache TTL, such as 10 minutes for a
// 5 minute TTL.
func NewCacheJanitorService(c CleanableCache, interval time.Duration) *CacheJanitorService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &CacheJanitorService{
		cache:    c,
		interval: interval,
		name:     "cache-janitor",
	}
}

// Serve implements suture.Service.
//
// The loop runs Cleanup on every tick and records the resulting entry and
// eviction counts as Prometheus gauges. Returns ctx.Err() when the context
// is canceled so suture treats the exit as a normal shutdown.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			evicted := s.cache.Cleanup()
			metrics.UpdateCacheGauges(s.cache.EntryCount(), evicted)
			if evicted > 0 {
				logging.Debug().Int64("evicted", evicted).Msg("Cache janitor swept expired entries")
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// String implements fmt.Stringer for logging.
// Suture uses this to identify the service in log messages.
func (s *CacheJanitorService) String() string {
	return s.name
}
