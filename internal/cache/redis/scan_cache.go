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

// ScanCache implements domain.ScanCache with JSON values at
// "scan:{limit}" keys and native TTL expiry.
type ScanCache struct {
	rdb *redis.Client
}

// NewScanCache creates a ScanCache backed by the given Client.
func NewScanCache(c *Client) *ScanCache {
	return &ScanCache{rdb: c.Underlying()}
}

func scanKey(key string) string {
	return "scan:" + key
}

// Get returns the cached scan result, or domain.ErrNotFound.
func (sc *ScanCache) Get(ctx context.Context, key string) (*domain.ScanResult, error) {
	raw, err := sc.rdb.Get(ctx, scanKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis: get scan %s: %w", key, err)
	}

	var result domain.ScanResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("redis: decode scan %s: %w", key, err)
	}
	return &result, nil
}

// Set stores the scan result under key with the given ttl.
func (sc *ScanCache) Set(ctx context.Context, key string, result *domain.ScanResult, ttl time.Duration) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("redis: encode scan %s: %w", key, err)
	}
	if err := sc.rdb.Set(ctx, scanKey(key), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set scan %s: %w", key, err)
	}
	return nil
}

// Compile-time interface check.
var _ domain.ScanCache = (*ScanCache)(nil)
