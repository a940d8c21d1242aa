package completion

import (
	"time"

	"github.com/dshills/notelex/internal/pattern"
)

type cacheKey struct {
	typ   pattern.Type
	query string
}

type cacheEntry struct {
	result    *Result
	createdAt time.Time
	expiresAt time.Time
}

// cache holds recent completion results keyed by (type, query). Not
// goroutine-safe on its own; the engine's mutex guards it.
type cache struct {
	entries  map[cacheKey]cacheEntry
	capacity int
	ttl      time.Duration
}

func newCache(capacity int, ttl time.Duration) *cache {
	return &cache{
		entries:  make(map[cacheKey]cacheEntry, capacity),
		capacity: capacity,
		ttl:      ttl,
	}
}

// get returns the cached result for key if it is unexpired and its span
// still brackets the cursor. A stale span means the user moved to another
// occurrence of the same query, so the anchor offsets cannot be reused.
func (c *cache) get(key cacheKey, now time.Time, cursor int) (*Result, bool) {
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !now.Before(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	if cursor <= entry.result.Start || cursor > entry.result.End {
		return nil, false
	}
	return entry.result, true
}

// put stores a result, evicting one entry when at capacity: an expired
// entry if any exists, otherwise the oldest.
func (c *cache) put(key cacheKey, result *Result, now time.Time) {
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		c.evict(now)
	}
	c.entries[key] = cacheEntry{
		result:    result,
		createdAt: now,
		expiresAt: now.Add(c.ttl),
	}
}

func (c *cache) evict(now time.Time) {
	var oldest cacheKey
	var oldestAt time.Time
	first := true
	for key, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, key)
			return
		}
		if first || entry.createdAt.Before(oldestAt) {
			oldest, oldestAt, first = key, entry.createdAt, false
		}
	}
	if !first {
		delete(c.entries, oldest)
	}
}

func (c *cache) clear() {
	c.entries = make(map[cacheKey]cacheEntry, c.capacity)
}

func (c *cache) len() int {
	return len(c.entries)
}
