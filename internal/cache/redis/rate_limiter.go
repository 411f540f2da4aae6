package redis

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

//go:embed scripts/sliding_window.lua
var slidingWindowScript string

// RateLimiter implements a sliding-window limiter backed by a Redis
// sorted set. The window logic runs server side in a Lua script so
// concurrent callers across processes see a consistent count.
type RateLimiter struct {
	client *Client
	script *redis.Script
	prefix string
}

func NewRateLimiter(client *Client) *RateLimiter {
	return &RateLimiter{
		client: client,
		script: redis.NewScript(slidingWindowScript),
		prefix: "ratelimit:",
	}
}

func (l *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now().UnixMicro()
	res, err := l.script.Run(ctx, l.client.rdb, []string{l.prefix + key},
		now, window.Microseconds(), limit).Slice()
	if err != nil {
		return false, fmt.Errorf("rate limit %s: %w", key, err)
	}
	if len(res) == 0 {
		return false, fmt.Errorf("rate limit %s: empty script reply", key)
	}
	allowed, ok := res[0].(int64)
	if !ok {
		return false, fmt.Errorf("rate limit %s: unexpected script reply %T", key, res[0])
	}
	return allowed == 1, nil
}

var _ domain.RateLimiter = (*RateLimiter)(nil)
