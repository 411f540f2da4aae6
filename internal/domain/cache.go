package domain

import (
	"context"
	"time"
)

// PriceCache absorbs repeated fetches for a pair within a short freshness
// window. Get returns ErrNotFound both on absence and on logical expiry.
// A Set always fully replaces the entry; entries are never partially updated.
type PriceCache interface {
	Get(ctx context.Context, pair TradingPair) (PriceMap, error)
	Set(ctx context.Context, pair TradingPair, prices PriceMap, ttl time.Duration) error
}

// ScanCache caches full scan results keyed by the effective pair limit, so
// identical requests within the freshness window skip recomputation.
type ScanCache interface {
	Get(ctx context.Context, key string) (*ScanResult, error)
	Set(ctx context.Context, key string, result *ScanResult, ttl time.Duration) error
}

// RateLimiter limits requests per key within a sliding window. Used by the
// HTTP middleware for per-client limiting.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
