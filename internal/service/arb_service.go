package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/alanyoungcy/arbscan/internal/arbitrage"
	"github.com/alanyoungcy/arbscan/internal/domain"
)

// ArbitrageService orchestrates full-universe scans: it drives the price
// aggregator pair by pair, feeds each price map through the calculator,
// and merges the results into one globally sorted list. Finished scans
// are cached keyed by the pair limit so repeated requests inside the TTL
// window cost nothing upstream.
type ArbitrageService struct {
	prices *PriceService
	calc   *arbitrage.Calculator
	scans  domain.ScanCache
	pairs  []domain.TradingPair
	ttl    time.Duration
	logger *slog.Logger
}

// NewArbitrageService creates an ArbitrageService scanning the given pair
// universe. The universe is deduplicated once here; its order decides
// which pairs a limited scan covers.
func NewArbitrageService(
	prices *PriceService,
	calc *arbitrage.Calculator,
	scans domain.ScanCache,
	pairs []domain.TradingPair,
	ttl time.Duration,
	logger *slog.Logger,
) *ArbitrageService {
	return &ArbitrageService{
		prices: prices,
		calc:   calc,
		scans:  scans,
		pairs:  domain.DedupePairs(pairs),
		ttl:    ttl,
		logger: logger,
	}
}

// Pairs returns the configured trading-pair universe.
func (s *ArbitrageService) Pairs() []domain.TradingPair {
	out := make([]domain.TradingPair, len(s.pairs))
	copy(out, s.pairs)
	return out
}

// ComputeArbitrage scans the first limit pairs of the universe and returns
// every profitable opportunity found, sorted by real profit percent
// descending. A pair whose fetches all fail contributes nothing and never
// aborts the scan.
func (s *ArbitrageService) ComputeArbitrage(ctx context.Context, limit int) (*domain.ScanResult, error) {
	key := fmt.Sprintf("arbitrage:%d", limit)
	if cached, err := s.scans.Get(ctx, key); err == nil {
		return cached, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		s.logger.WarnContext(ctx, "arb_service: scan cache read failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}

	pairs := s.scanWindow(limit)
	started := time.Now()

	var (
		mu   sync.Mutex
		opps []domain.Opportunity
	)
	err := s.forEachPair(ctx, pairs, func(ctx context.Context, pair domain.TradingPair) {
		prices, err := s.prices.GetAllPrices(ctx, pair, true)
		if err != nil {
			s.logger.WarnContext(ctx, "arb_service: pair scan failed",
				slog.String("pair", pair.String()),
				slog.String("error", err.Error()),
			)
			return
		}
		found := s.calc.Calculate(prices, pair)
		if len(found) == 0 {
			return
		}
		mu.Lock()
		opps = append(opps, found...)
		mu.Unlock()
	})
	if err != nil {
		return nil, fmt.Errorf("arb_service: compute arbitrage: %w", err)
	}

	arbitrage.SortByProfit(opps)

	result := &domain.ScanResult{
		Opportunities:  opps,
		TotalPairs:     len(s.pairs),
		ProcessedPairs: len(pairs),
		Timestamp:      time.Now().UTC(),
	}

	if err := s.scans.Set(ctx, key, result, s.ttl); err != nil {
		s.logger.WarnContext(ctx, "arb_service: scan cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "arb_service: scan complete",
		slog.Int("pairs", len(pairs)),
		slog.Int("opportunities", len(opps)),
		slog.Duration("elapsed", time.Since(started)),
	)

	return result, nil
}

// CollectPrices aggregates prices for the first limit pairs of the universe
// and returns them as one snapshot. Pairs with no quotes are omitted.
func (s *ArbitrageService) CollectPrices(ctx context.Context, limit int) (*domain.PriceSnapshot, error) {
	pairs := s.scanWindow(limit)

	var (
		mu       sync.Mutex
		snapshot = make(map[string]domain.PriceMap, len(pairs))
	)
	err := s.forEachPair(ctx, pairs, func(ctx context.Context, pair domain.TradingPair) {
		prices, err := s.prices.GetAllPrices(ctx, pair, true)
		if err != nil || len(prices) == 0 {
			return
		}
		mu.Lock()
		snapshot[pair.String()] = prices
		mu.Unlock()
	})
	if err != nil {
		return nil, fmt.Errorf("arb_service: collect prices: %w", err)
	}

	return &domain.PriceSnapshot{
		Prices:         snapshot,
		TotalPairs:     len(s.pairs),
		ProcessedPairs: len(pairs),
		Timestamp:      time.Now().UTC(),
	}, nil
}

// scanWindow returns the leading slice of the universe covered by limit.
func (s *ArbitrageService) scanWindow(limit int) []domain.TradingPair {
	if limit <= 0 || limit > len(s.pairs) {
		return s.pairs
	}
	return s.pairs[:limit]
}

// forEachPair runs fn for every pair with concurrency bounded by the batch
// size for this window. Each pair already fans out to every exchange, so
// the batch size caps total in-flight upstream requests at roughly
// batch x exchange count.
func (s *ArbitrageService) forEachPair(ctx context.Context, pairs []domain.TradingPair, fn func(context.Context, domain.TradingPair)) error {
	sem := semaphore.NewWeighted(int64(batchSize(len(pairs))))
	g, gctx := errgroup.WithContext(ctx)
	for _, pair := range pairs {
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			fn(gctx, pair)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// batchSize scales concurrency with the window so large scans finish in
// roughly constant wall-clock time without opening unbounded connections.
func batchSize(window int) int {
	switch {
	case window > 400:
		return 50
	case window > 300:
		return 40
	case window > 200:
		return 35
	case window > 100:
		return 30
	default:
		return 25
	}
}
