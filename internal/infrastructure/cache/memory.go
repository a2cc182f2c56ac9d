// Package cache provides a small in-memory TTL cache used for the
// exchange rate. Mutex-guarded; stale reads are acceptable for this
// data, so there is no singleflight around refreshes.
package cache

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

type entry struct {
	value     decimal.Decimal
	expiresAt time.Time
}

// Memory is a thread-safe in-memory decimal cache with per-entry TTL.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry

	// now is injectable for expiry tests
	now func() time.Time
}

// NewMemory creates an empty cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached value if present and not expired.
func (c *Memory) Get(key string) (decimal.Decimal, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expiresAt) {
		return decimal.Zero, false
	}
	return e.value, true
}

// Set stores a value with the given TTL.
func (c *Memory) Set(key string, value decimal.Decimal, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
	c.mu.Unlock()
}

// Delete removes a key.
func (c *Memory) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Purge removes all expired entries.
func (c *Memory) Purge() {
	now := c.now()
	c.mu.Lock()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()
}
