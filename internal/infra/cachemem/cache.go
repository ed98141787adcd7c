// Package cachemem is a small in-process TTL cache for derived read-side
// values such as attendee counts. Authorization decisions never pass
// through it.
package cachemem

import (
	"context"
	"sync"
	"time"

	"insightd/internal/usecase"
)

type Cache struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value     int64
	expiresAt time.Time
	hasExpiry bool
}

func New() *Cache {
	return NewWithClock(time.Now)
}

func NewWithClock(now func() time.Time) *Cache {
	return &Cache{
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *Cache) Get(_ context.Context, key string) (int64, bool, error) {
	if c == nil {
		return 0, false, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return 0, false, nil
	}
	if entry.hasExpiry && c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return 0, false, nil
	}
	return entry.value, true, nil
}

func (c *Cache) Put(_ context.Context, key string, value int64, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entry := cacheEntry{value: value}
	if ttl > 0 {
		entry.hasExpiry = true
		entry.expiresAt = c.now().Add(ttl)
	}
	c.entries[key] = entry
	return nil
}

var _ usecase.SummaryCache = (*Cache)(nil)
