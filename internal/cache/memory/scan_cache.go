package memory

import (
	"context"
	"time"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

// ScanCache implements domain.ScanCache over an in-process TTL store. Scan
// results are treated as immutable once stored; the pointer is shared, not
// copied, and no caller mutates a returned result.
type ScanCache struct {
	store *Store[*domain.ScanResult]
}

// NewScanCache creates a ScanCache with the given sweep interval.
func NewScanCache(sweepInterval time.Duration) *ScanCache {
	return &ScanCache{store: NewStore[*domain.ScanResult](sweepInterval)}
}

// Get returns the cached result for key, or domain.ErrNotFound.
func (c *ScanCache) Get(_ context.Context, key string) (*domain.ScanResult, error) {
	r, ok := c.store.Get(key)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// Set stores the result under key with the given ttl.
func (c *ScanCache) Set(_ context.Context, key string, result *domain.ScanResult, ttl time.Duration) error {
	c.store.Set(key, result, ttl)
	return nil
}

// Close stops the background sweep.
func (c *ScanCache) Close() { c.store.Close() }

var _ domain.ScanCache = (*ScanCache)(nil)
