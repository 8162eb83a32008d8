package cache

import (
	"context"
	"strings"
	"time"

	"github.com/routepay/gatewaycore/internal/config"
	"github.com/routepay/gatewaycore/internal/logger"
	goCache "github.com/patrickmn/go-cache"
)

// DefaultCleanupInterval is how often expired items are removed from the cache.
const DefaultCleanupInterval = 1 * time.Hour

// InMemoryCache implements Cache using github.com/patrickmn/go-cache. It backs
// both the GSM lookup cache and the card-testing blocked-attempts counter
// (§5 "a bounded shared cache keyed by fingerprint").
type InMemoryCache struct {
	cache *goCache.Cache
	cfg   *config.Configuration
	log   *logger.Logger
}

// NewInMemoryCache constructs a cache from explicit configuration. Unlike the
// host application's global-singleton convenience, this core always takes its
// dependencies by constructor injection.
func NewInMemoryCache(cfg *config.Configuration, log *logger.Logger) *InMemoryCache {
	return &InMemoryCache{
		cache: goCache.New(cfg.Cache.DefaultTTL, DefaultCleanupInterval),
		cfg:   cfg,
		log:   log,
	}
}

// Get retrieves a value from the cache.
func (c *InMemoryCache) Get(_ context.Context, key string) (interface{}, bool) {
	if !c.cfg.Cache.Enabled {
		return nil, false
	}
	return c.cache.Get(key)
}

// Set adds a value to the cache with the specified expiration. A zero
// expiration uses the cache's configured default TTL.
func (c *InMemoryCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) {
	if !c.cfg.Cache.Enabled {
		return
	}
	c.cache.Set(key, value, expiration)
}

// Delete removes a key from the cache.
func (c *InMemoryCache) Delete(_ context.Context, key string) {
	if !c.cfg.Cache.Enabled {
		return
	}
	c.cache.Delete(key)
}

// DeleteByPrefix removes all keys with the given prefix, used to invalidate
// an entire connector's GSM entries in one call.
func (c *InMemoryCache) DeleteByPrefix(_ context.Context, prefix string) {
	if !c.cfg.Cache.Enabled {
		return
	}
	for k := range c.cache.Items() {
		if strings.HasPrefix(k, prefix) {
			c.cache.Delete(k)
		}
	}
}

// IncrementInt64 atomically increments an int64 counter, creating it with
// the given expiration if absent. This is the "cache backend's own atomic
// operations" the card-testing guard relies on (§5) instead of a
// read-modify-write race.
func (c *InMemoryCache) IncrementInt64(_ context.Context, key string, delta int64, expiration time.Duration) (int64, error) {
	if !c.cfg.Cache.Enabled {
		return delta, nil
	}
	// Add is a no-op (returning an error) when the key already exists, so
	// concurrent first increments cannot reset each other's counter.
	_ = c.cache.Add(key, int64(0), expiration)
	return c.cache.IncrementInt64(key, delta)
}

// Flush removes all items from the cache.
func (c *InMemoryCache) Flush(_ context.Context) {
	if !c.cfg.Cache.Enabled {
		return
	}
	c.cache.Flush()
}
