package memory

import (
	"context"
	"time"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

// PriceCache implements domain.PriceCache over an in-process TTL store.
// Values are cloned on both Set and Get so callers never alias cached maps.
type PriceCache struct {
	store *Store[domain.PriceMap]
}

// NewPriceCache creates a PriceCache with the given sweep interval.
func NewPriceCache(sweepInterval time.Duration) *PriceCache {
	return &PriceCache{store: NewStore[domain.PriceMap](sweepInterval)}
}

// Get returns the cached price map for pair, or domain.ErrNotFound on a miss
// or expiry.
func (c *PriceCache) Get(_ context.Context, pair domain.TradingPair) (domain.PriceMap, error) {
	m, ok := c.store.Get(pair.String())
	if !ok {
		return nil, domain.ErrNotFound
	}
	return m.Clone(), nil
}

// Set stores the price map for pair with the given ttl.
func (c *PriceCache) Set(_ context.Context, pair domain.TradingPair, prices domain.PriceMap, ttl time.Duration) error {
	c.store.Set(pair.String(), prices.Clone(), ttl)
	return nil
}

// Close stops the background sweep.
func (c *PriceCache) Close() { c.store.Close() }

var _ domain.PriceCache = (*PriceCache)(nil)
