package geocode

import (
	"strings"
	"sync"
	"time"
)

const defaultCacheTTL = 7 * 24 * time.Hour

// Cache holds resolved locations keyed by normalized course name and state,
// with a TTL so stale directory data eventually refreshes.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*Location
	cachedAt map[string]time.Time
	ttl      time.Duration
}

// NewCache creates a cache with the default 7-day TTL.
func NewCache() *Cache {
	return &Cache{
		entries:  make(map[string]*Location),
		cachedAt: make(map[string]time.Time),
		ttl:      defaultCacheTTL,
	}
}

// Get returns the cached location or nil if absent or expired.
func (c *Cache) Get(course, state string) *Location {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(course, state)
	loc, exists := c.entries[key]
	if !exists {
		return nil
	}

	if when, ok := c.cachedAt[key]; !ok || time.Since(when) > c.ttl {
		delete(c.entries, key)
		delete(c.cachedAt, key)
		return nil
	}

	return loc
}

// Set stores a location for a course and state.
func (c *Cache) Set(course, state string, loc *Location) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(course, state)
	c.entries[key] = loc
	c.cachedAt[key] = time.Now()
}

// Size returns the number of cached entries.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func cacheKey(course, state string) string {
	return normalizeCourse(course) + "|" + strings.ToUpper(state)
}

// normalizeCourse lowercases a course name and drops common venue suffixes
// so "Oakmont Country Club" and "oakmont country club" share an entry.
func normalizeCourse(course string) string {
	normalized := strings.ToLower(strings.TrimSpace(course))
	for _, suffix := range []string{
		" golf links", " golf club", " golf course",
		" country club", " c.c.", " g.c.", " cc", " gc",
	} {
		normalized = strings.TrimSuffix(normalized, suffix)
	}
	return strings.TrimSpace(normalized)
}
