package memory

import (
	"context"
	"sync"
	"time"

	"github.com/prakan/go-content-admin/pkg/interfaces"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is a TTL-bound in-process cache for paged content summaries. Expired
// entries read as misses and are dropped lazily.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	clock   func() time.Time
}

var _ interfaces.CacheProvider = (*Cache)(nil)

// NewCache constructs an empty in-memory cache.
func NewCache() *Cache {
	return &Cache{
		entries: map[string]entry{},
		clock:   time.Now,
	}
}

// NewCacheWithClock overrides the clock, used by tests to drive expiry.
func NewCacheWithClock(clock func() time.Time) *Cache {
	cache := NewCache()
	if clock != nil {
		cache.clock = clock
	}
	return cache
}

func (c *Cache) Get(_ context.Context, key string) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	if !item.expiresAt.IsZero() && c.clock().After(item.expiresAt) {
		delete(c.entries, key)
		return nil, nil
	}
	return item.value, nil
}

func (c *Cache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := entry{value: value}
	if ttl > 0 {
		item.expiresAt = c.clock().Add(ttl)
	}
	c.entries[key] = item
	return nil
}

func (c *Cache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

func (c *Cache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = map[string]entry{}
	return nil
}
