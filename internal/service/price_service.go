package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alanyoungcy/arbscan/internal/domain"
	"github.com/alanyoungcy/arbscan/internal/exchange"
)

// PriceService aggregates spot prices for a trading pair across every
// registered exchange. Results are cached briefly so bursts of requests
// for the same pair hit the upstream APIs once.
type PriceService struct {
	registry *exchange.Registry
	cache    domain.PriceCache
	ttl      time.Duration
	logger   *slog.Logger
}

// NewPriceService creates a PriceService. ttl bounds how long an
// aggregated price map stays valid in the cache.
func NewPriceService(
	registry *exchange.Registry,
	cache domain.PriceCache,
	ttl time.Duration,
	logger *slog.Logger,
) *PriceService {
	return &PriceService{
		registry: registry,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

// GetAllPrices queries every registered exchange for the pair concurrently
// and returns the prices of the exchanges that answered with a valid quote.
// Exchanges that do not list the pair or fail to respond are simply absent
// from the result. With useCache set, a fresh cached map is returned
// without touching the upstream APIs.
func (s *PriceService) GetAllPrices(ctx context.Context, pair domain.TradingPair, useCache bool) (domain.PriceMap, error) {
	if pair.IsZero() {
		return nil, fmt.Errorf("price_service: get all prices: %w", domain.ErrInvalidPair)
	}

	if useCache {
		cached, err := s.cache.Get(ctx, pair)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "price_service: price cache read failed",
				slog.String("pair", pair.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	prices := make(domain.PriceMap)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, f := range s.registry.Fetchers() {
		g.Go(func() error {
			price, err := f.FetchPrice(gctx, pair)
			if err != nil {
				s.logFetchError(gctx, f, pair, err)
				return nil
			}
			mu.Lock()
			prices[f.ID()] = price
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("price_service: fetch %s: %w", pair, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("price_service: fetch %s: %w", pair, err)
	}

	if len(prices) > 0 {
		if err := s.cache.Set(ctx, pair, prices, s.ttl); err != nil {
			s.logger.WarnContext(ctx, "price_service: price cache write failed",
				slog.String("pair", pair.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return prices, nil
}

// logFetchError keeps per-exchange fetch noise proportional to how
// actionable it is. A pair most venues do not list produces ErrNoQuote
// on every scan, so those stay at debug.
func (s *PriceService) logFetchError(ctx context.Context, f exchange.Fetcher, pair domain.TradingPair, err error) {
	attrs := []any{
		slog.String("exchange", string(f.ID())),
		slog.String("pair", pair.String()),
		slog.String("error", err.Error()),
	}
	switch {
	case errors.Is(err, domain.ErrNoQuote):
		s.logger.DebugContext(ctx, "price_service: no quote", attrs...)
	case errors.Is(err, domain.ErrRateLimited):
		s.logger.WarnContext(ctx, "price_service: rate limited", attrs...)
	default:
		s.logger.WarnContext(ctx, "price_service: fetch failed", attrs...)
	}
}
