// Package cache holds resolved card lookups for the lifetime of the process.
package cache

import (
	"sync"

	"github.com/im-sticky/mtg-card-seer/internal/card"
)

// Cache memoizes card lookups keyed by normalized query keys. It is unbounded
// and never evicts; entries live until the process exits. Writes are
// last-write-wins and concurrent duplicate fetches for the same key are not
// deduplicated here.
//
// Production wires a single shared instance; tests construct fresh ones.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]card.Card
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]card.Card),
	}
}

// Has reports whether a value is cached under key.
func (c *Cache) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key]
	return ok
}

// Get retrieves the cached value for key.
func (c *Cache) Get(key string) (card.Card, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Set stores a value under key, replacing any previous value.
func (c *Cache) Set(key string, value card.Card) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
