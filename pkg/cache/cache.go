// Package cache provides an LRU cache of candidate lookups keyed by raw
// input string, with hit/miss counters for diagnostics.
package cache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a generic LRU cache over V, keyed by string.
type Cache[V any] struct {
	inner    *lru.Cache[string, V]
	hits     atomic.Uint64
	misses   atomic.Uint64
	capacity int
}

// New creates a cache with the given capacity, floored at 1.
func New[V any](capacity int) *Cache[V] {
	if capacity < 1 {
		capacity = 1
	}
	inner, _ := lru.New[string, V](capacity)
	return &Cache[V]{inner: inner, capacity: capacity}
}

// Get looks up key, recording a hit or miss.
func (c *Cache[V]) Get(key string) (V, bool) {
	v, ok := c.inner.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Put inserts or updates key's value.
func (c *Cache[V]) Put(key string, value V) {
	c.inner.Add(key, value)
}

// Clear empties the cache without resetting hit/miss counters.
func (c *Cache[V]) Clear() {
	c.inner.Purge()
}

// Len returns the number of entries currently cached.
func (c *Cache[V]) Len() int {
	return c.inner.Len()
}

// Stats is a hit/miss/capacity snapshot for diagnostics.
type Stats struct {
	Hits     uint64
	Misses   uint64
	Len      int
	Capacity int
}

// Stats returns the cache's current hit/miss counters and occupancy.
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
		Len:      c.inner.Len(),
		Capacity: c.capacity,
	}
}
