package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

func TestStoreGetSet(t *testing.T) {
	s := NewStore[int](time.Minute)
	defer s.Close()

	if _, ok := s.Get("missing"); ok {
		t.Error("Get on empty store reported a hit")
	}

	s.Set("a", 1, time.Minute)
	v, ok := s.Get("a")
	if !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v; want 1, true", v, ok)
	}

	s.Set("a", 2, time.Minute)
	if v, _ := s.Get("a"); v != 2 {
		t.Errorf("Get(a) after replace = %v, want 2", v)
	}
}

func TestStoreExpiry(t *testing.T) {
	s := NewStore[string](time.Minute)
	defer s.Close()

	s.Set("k", "v", 10*time.Millisecond)
	if _, ok := s.Get("k"); !ok {
		t.Fatal("fresh entry reported as miss")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := s.Get("k"); ok {
		t.Error("expired entry reported as hit")
	}
	// The expired read deletes in place.
	if n := s.Len(); n != 0 {
		t.Errorf("Len() = %d after lazy delete, want 0", n)
	}
}

func TestStoreSweep(t *testing.T) {
	s := NewStore[string](10 * time.Millisecond)
	defer s.Close()

	s.Set("k", "v", 5*time.Millisecond)

	deadline := time.Now().Add(time.Second)
	for s.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("sweep did not remove expired entry")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPriceCacheCloning(t *testing.T) {
	c := NewPriceCache(time.Minute)
	defer c.Close()
	ctx := context.Background()
	pair := domain.TradingPair{Base: "BTC", Quote: "USDT"}

	if _, err := c.Get(ctx, pair); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("miss error = %v, want ErrNotFound", err)
	}

	prices := domain.PriceMap{"binance": 100}
	if err := c.Set(ctx, pair, prices, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	prices["binance"] = 999 // caller keeps mutating its own map

	got, err := c.Get(ctx, pair)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got["binance"] != 100 {
		t.Errorf("cached price = %v, want 100 (set must clone)", got["binance"])
	}

	got["binance"] = -1
	again, _ := c.Get(ctx, pair)
	if again["binance"] != 100 {
		t.Errorf("cached price = %v after mutating a read, want 100 (get must clone)", again["binance"])
	}
}

func TestScanCache(t *testing.T) {
	c := NewScanCache(time.Minute)
	defer c.Close()
	ctx := context.Background()

	if _, err := c.Get(ctx, "arbitrage:100"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("miss error = %v, want ErrNotFound", err)
	}

	want := &domain.ScanResult{TotalPairs: 390, ProcessedPairs: 100}
	if err := c.Set(ctx, "arbitrage:100", want, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := c.Get(ctx, "arbitrage:100")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != want {
		t.Error("Get returned a different result pointer")
	}
}

func TestRateLimiterWindow(t *testing.T) {
	rl := NewRateLimiter()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := rl.Allow(ctx, "ip", 3, 50*time.Millisecond)
		if err != nil || !ok {
			t.Fatalf("request %d: allow = %v, %v; want true, nil", i+1, ok, err)
		}
	}
	if ok, _ := rl.Allow(ctx, "ip", 3, 50*time.Millisecond); ok {
		t.Error("4th request within window allowed")
	}

	// A different key has its own window.
	if ok, _ := rl.Allow(ctx, "other", 3, 50*time.Millisecond); !ok {
		t.Error("independent key denied")
	}

	time.Sleep(60 * time.Millisecond)
	if ok, _ := rl.Allow(ctx, "ip", 3, 50*time.Millisecond); !ok {
		t.Error("request after window expiry denied")
	}
}

func TestRateLimiterSweepsDrainedKeys(t *testing.T) {
	rl := NewRateLimiter()
	rl.sweepEvery = 0 // sweep on every call
	ctx := context.Background()

	if ok, _ := rl.Allow(ctx, "stale", 3, 20*time.Millisecond); !ok {
		t.Fatal("first request denied")
	}

	time.Sleep(30 * time.Millisecond)
	if ok, _ := rl.Allow(ctx, "fresh", 3, 20*time.Millisecond); !ok {
		t.Fatal("request on second key denied")
	}

	rl.mu.Lock()
	_, stale := rl.hits["stale"]
	_, fresh := rl.hits["fresh"]
	rl.mu.Unlock()
	if stale {
		t.Error("drained key still present after sweep")
	}
	if !fresh {
		t.Error("active key removed by sweep")
	}
}
