package repository

import (
	"context"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"phonelink_backend/internal/phonelink/domain"
)

const cacheKey = "settings"

// Cached wraps a Repository with a read-through TTL cache. Only successful
// reads are cached. A read that started before a Save is never cached.
type Cached struct {
	next  Repository
	cache *ttlcache.Cache[string, domain.Settings]

	// mu orders cache writes against gen; gen counts Save calls.
	mu  sync.Mutex
	gen uint64
}

// NewCached wraps next with a cache holding entries for ttl.
func NewCached(next Repository, ttl time.Duration) *Cached {
	return &Cached{
		next: next,
		cache: ttlcache.New[string, domain.Settings](
			ttlcache.WithTTL[string, domain.Settings](ttl),
			ttlcache.WithDisableTouchOnHit[string, domain.Settings](),
		),
	}
}

var _ Repository = (*Cached)(nil)

func (c *Cached) Get(ctx context.Context) (domain.Settings, error) {
	var (
		loaded  domain.Settings
		loadErr error
	)
	loader := ttlcache.LoaderFunc[string, domain.Settings](
		func(cache *ttlcache.Cache[string, domain.Settings], key string) *ttlcache.Item[string, domain.Settings] {
			start := c.generation()
			loaded, loadErr = c.next.Get(ctx)
			if loadErr != nil {
				return nil
			}

			c.mu.Lock()
			defer c.mu.Unlock()
			if c.gen != start {
				return nil
			}
			return cache.Set(key, loaded, ttlcache.DefaultTTL)
		},
	)

	item := c.cache.Get(cacheKey, ttlcache.WithLoader[string, domain.Settings](loader))
	if item == nil {
		return loaded, loadErr
	}
	return item.Value(), nil
}

// Save writes through and caches the written record.
func (c *Cached) Save(ctx context.Context, settings domain.Settings) error {
	c.invalidate()
	if err := c.next.Save(ctx, settings); err != nil {
		c.invalidate()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.cache.Set(cacheKey, settings, ttlcache.DefaultTTL)
	return nil
}

func (c *Cached) Ping(ctx context.Context) error {
	return c.next.Ping(ctx)
}

func (c *Cached) generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

func (c *Cached) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.cache.Delete(cacheKey)
}
