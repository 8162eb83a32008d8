package cache

import (
	"context"
	"time"

	"github.com/routepay/gatewaycore/internal/domain/payment"
)

// PrefixCardTesting and PrefixGSM are the key prefixes for the two
// connector-core-specific caches backed by InMemoryCache (§4.6.1 step 4,
// step 10).
const (
	PrefixCardTesting = "cardtesting:v1:"
	PrefixGSM         = "gsm:v1:"

	// cardTestingWindow is how long a fingerprint's blocked-attempt count is
	// retained before resetting (§5 "a bounded shared cache").
	cardTestingWindow = 1 * time.Hour
)

// CardTestingGuard implements payment.CardTestingGuard over the shared
// in-process cache's atomic counter (§4.6.1 step 10).
type CardTestingGuard struct {
	cache Cache
}

// NewCardTestingGuard constructs a guard over the given cache.
func NewCardTestingGuard(c Cache) *CardTestingGuard {
	return &CardTestingGuard{cache: c}
}

// RecordFailure increments the fingerprint's blocked-attempt counter.
func (g *CardTestingGuard) RecordFailure(ctx context.Context, fingerprint string) error {
	inc, ok := g.cache.(interface {
		IncrementInt64(ctx context.Context, key string, delta int64, expiration time.Duration) (int64, error)
	})
	if !ok {
		return nil
	}
	_, err := inc.IncrementInt64(ctx, GenerateKey(PrefixCardTesting, fingerprint), 1, cardTestingWindow)
	return err
}

// GSMCache is a read-through cache in front of a GSMRepository, keyed on the
// full §4.6.1 step 4 lookup tuple.
type GSMCache struct {
	cache Cache
	repo  payment.GSMRepository
}

// NewGSMCache constructs a cache-aside wrapper around repo.
func NewGSMCache(c Cache, repo payment.GSMRepository) *GSMCache {
	return &GSMCache{cache: c, repo: repo}
}

// Lookup implements payment.GSMRepository, consulting the cache before
// falling through to the backing repository.
func (g *GSMCache) Lookup(key payment.GSMKey) (*payment.GSMRecord, bool, error) {
	ctx := context.Background()
	cacheKey := GenerateKey(PrefixGSM, key.Connector, key.Flow, key.SubFlow, key.ErrorCode, key.ErrorMessage, key.NetworkDeclineCode, key.CardNetwork)

	if cached, ok := g.cache.Get(ctx, cacheKey); ok {
		record, ok := cached.(*payment.GSMRecord)
		return record, ok, nil
	}

	record, found, err := g.repo.Lookup(key)
	if err != nil {
		return nil, false, err
	}
	if found {
		g.cache.Set(ctx, cacheKey, record, 0)
	}
	return record, found, nil
}
