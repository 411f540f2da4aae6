package memory

import (
	"context"
	"sync"
	"time"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

// RateLimiter implements domain.RateLimiter with a per-key sliding window of
// request timestamps. Old timestamps are pruned on every call, so a key's
// slice is bounded by its limit. A periodic sweep drops keys whose window
// has fully drained, so the map does not grow with every client IP ever seen.
type RateLimiter struct {
	mu         sync.Mutex
	hits       map[string][]time.Time
	lastSweep  time.Time
	sweepEvery time.Duration
}

// NewRateLimiter creates an empty in-process rate limiter.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		hits:       make(map[string][]time.Time),
		sweepEvery: time.Minute,
	}
}

// Allow reports whether a request for key fits within limit requests per
// window, counting the request when it does.
func (rl *RateLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now()
	cutoff := now.Add(-window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweep(now, cutoff)

	recent := rl.hits[key][:0]
	for _, t := range rl.hits[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= limit {
		rl.hits[key] = recent
		return false, nil
	}

	rl.hits[key] = append(recent, now)
	return true, nil
}

// sweep deletes keys with no hits after cutoff. Runs at most once per
// sweepEvery; the caller must hold mu.
func (rl *RateLimiter) sweep(now, cutoff time.Time) {
	if now.Sub(rl.lastSweep) < rl.sweepEvery {
		return
	}
	rl.lastSweep = now
	for key, times := range rl.hits {
		live := false
		for _, t := range times {
			if t.After(cutoff) {
				live = true
				break
			}
		}
		if !live {
			delete(rl.hits, key)
		}
	}
}

var _ domain.RateLimiter = (*RateLimiter)(nil)
