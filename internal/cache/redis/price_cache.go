package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

// PriceCache implements domain.PriceCache. Each pair's price map is stored
// as a JSON string at key "price:{BASE/QUOTE}" with Redis handling the TTL
// expiry, so a logically stale entry is simply gone.
type PriceCache struct {
	rdb *redis.Client
}

// NewPriceCache creates a PriceCache backed by the given Client.
func NewPriceCache(c *Client) *PriceCache {
	return &PriceCache{rdb: c.Underlying()}
}

func priceKey(pair domain.TradingPair) string {
	return "price:" + pair.String()
}

// Get returns the cached price map for pair, or domain.ErrNotFound when the
// key is absent or expired.
func (pc *PriceCache) Get(ctx context.Context, pair domain.TradingPair) (domain.PriceMap, error) {
	raw, err := pc.rdb.Get(ctx, priceKey(pair)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis: get prices %s: %w", pair, err)
	}

	var prices domain.PriceMap
	if err := json.Unmarshal(raw, &prices); err != nil {
		return nil, fmt.Errorf("redis: decode prices %s: %w", pair, err)
	}
	return prices, nil
}

// Set stores the price map for pair with the given ttl.
func (pc *PriceCache) Set(ctx context.Context, pair domain.TradingPair, prices domain.PriceMap, ttl time.Duration) error {
	raw, err := json.Marshal(prices)
	if err != nil {
		return fmt.Errorf("redis: encode prices %s: %w", pair, err)
	}
	if err := pc.rdb.Set(ctx, priceKey(pair), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set prices %s: %w", pair, err)
	}
	return nil
}

// Compile-time interface check.
var _ domain.PriceCache = (*PriceCache)(nil)
