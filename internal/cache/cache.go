// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache memoizes catalog fetches in memory. Entries are keyed by the
// canonical serialization of the query, live for a fixed TTL measured from
// insertion, and are evicted least-recently-used once capacity is reached.
package cache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/pdiddy/paper-proxy/pkg/types"
)

const (
	DefaultCapacity = 1000
	DefaultTTL      = time.Hour
)

// Fetcher produces one page of results for a query.
type Fetcher interface {
	Fetch(ctx context.Context, q types.QueryParams) (types.SearchResult, error)
}

// Stats counts cache activity since construction.
type Stats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Fetches int64 `json:"fetches"`
	Entries int   `json:"entries"`
}

// Cache wraps a Fetcher with a bounded, expiring memo. It is safe for
// concurrent use. Concurrent misses on the same key share one fetch.
// Failed fetches are never stored.
type Cache struct {
	fetcher Fetcher
	lru     *expirable.LRU[string, types.SearchResult]
	group   singleflight.Group
	logger  *zerolog.Logger

	hits    atomic.Int64
	misses  atomic.Int64
	fetches atomic.Int64
}

// New wraps fetcher with a cache built from cfg. Zero fields fall back to
// DefaultCapacity and DefaultTTL. The underlying expirable LRU starts a
// sweeper goroutine that runs for the life of the process.
func New(fetcher Fetcher, cfg types.CacheConfig, logger *zerolog.Logger) *Cache {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Cache{
		fetcher: fetcher,
		lru:     expirable.NewLRU[string, types.SearchResult](capacity, nil, ttl),
		logger:  logger,
	}
}

// Fetch returns the cached result for q, or fetches, stores and returns it.
// An expired entry counts as a miss and is overwritten by the new result.
//
// If ctx ends while waiting on a shared fetch, Fetch returns ctx.Err(); the
// fetch itself keeps running for the other waiters.
func (c *Cache) Fetch(ctx context.Context, q types.QueryParams) (types.SearchResult, error) {
	key := q.CacheKey()
	if res, ok := c.lru.Get(key); ok {
		c.hits.Add(1)
		c.logger.Debug().Str("key", key).Msg("Cache hit")
		return res, nil
	}
	c.misses.Add(1)

	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		// A flight that finished between our Get and DoChan already stored it.
		if res, ok := c.lru.Peek(key); ok {
			return res, nil
		}
		c.fetches.Add(1)
		res, err := c.fetcher.Fetch(fetchCtx, q)
		if err != nil {
			return nil, err
		}
		c.lru.Add(key, res)
		c.logger.Debug().Str("key", key).Int("papers", len(res.Papers)).Msg("Cached catalog result")
		return res, nil
	})

	select {
	case <-ctx.Done():
		return types.SearchResult{}, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return types.SearchResult{}, r.Err
		}
		if r.Shared {
			c.logger.Debug().Str("key", key).Msg("Shared in-flight fetch")
		}
		return r.Val.(types.SearchResult), nil
	}
}

// Contains reports whether a live entry exists for q without touching its
// recency.
func (c *Cache) Contains(q types.QueryParams) bool {
	_, ok := c.lru.Peek(q.CacheKey())
	return ok
}

// Len returns the number of stored entries, including any expired entries
// not yet swept.
func (c *Cache) Len() int { return c.lru.Len() }

// Purge drops every entry.
func (c *Cache) Purge() { c.lru.Purge() }

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Fetches: c.fetches.Load(),
		Entries: c.lru.Len(),
	}
}
