package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alanyoungcy/arbscan/internal/arbitrage"
	"github.com/alanyoungcy/arbscan/internal/cache/memory"
	"github.com/alanyoungcy/arbscan/internal/cache/redis"
	"github.com/alanyoungcy/arbscan/internal/config"
	"github.com/alanyoungcy/arbscan/internal/domain"
	"github.com/alanyoungcy/arbscan/internal/exchange"
	"github.com/alanyoungcy/arbscan/internal/notify"
	"github.com/alanyoungcy/arbscan/internal/service"
)

// Dependencies bundles everything the application modes need to operate. It
// is constructed by Wire and torn down by the returned cleanup function.
type Dependencies struct {
	Registry *exchange.Registry

	PriceCache  domain.PriceCache
	ScanCache   domain.ScanCache
	RateLimiter domain.RateLimiter

	PriceService *service.PriceService
	ArbService   *service.ArbitrageService

	Notifier *notify.Notifier
}

// Wire constructs all concrete dependency implementations from the given
// configuration and returns them together with a cleanup function that
// should be called on shutdown to release resources.
func Wire(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	deps := &Dependencies{}

	// --- Exchange fetchers ---
	client := exchange.NewClient(exchange.ClientConfig{
		Timeout:         cfg.Exchange.Timeout.Duration,
		MaxIdleConns:    cfg.Exchange.MaxIdleConns,
		IdleConnTimeout: cfg.Exchange.IdleConnTimeout.Duration,
	})
	deps.Registry = exchange.NewRegistry(client)

	// --- Caches ---
	switch strings.ToLower(cfg.Cache.Backend) {
	case "redis":
		redisClient, err := redis.New(ctx, redis.ClientConfig{
			Addr:       cfg.Redis.Addr,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
			PoolSize:   cfg.Redis.PoolSize,
			MaxRetries: cfg.Redis.MaxRetries,
			TLSEnabled: cfg.Redis.TLSEnabled,
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("wire: redis: %w", err)
		}
		closers = append(closers, func() { _ = redisClient.Close() })

		deps.PriceCache = redis.NewPriceCache(redisClient)
		deps.ScanCache = redis.NewScanCache(redisClient)
		deps.RateLimiter = redis.NewRateLimiter(redisClient)
	default:
		priceCache := memory.NewPriceCache(time.Minute)
		scanCache := memory.NewScanCache(time.Minute)
		closers = append(closers, priceCache.Close, scanCache.Close)

		deps.PriceCache = priceCache
		deps.ScanCache = scanCache
		deps.RateLimiter = memory.NewRateLimiter()
	}

	// --- Pair universe ---
	pairs := domain.DefaultUniverse()
	if len(cfg.Pairs) > 0 {
		pairs = pairs[:0]
		for _, sym := range cfg.Pairs {
			p, err := domain.ParsePair(sym)
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("wire: pairs: %w", err)
			}
			pairs = append(pairs, p)
		}
	}

	// --- Services ---
	calc := arbitrage.NewCalculator(arbitrage.Config{
		TheoreticalFloorPercent: cfg.Arbitrage.TheoreticalFloorPercent,
		MinProfitPercent:        cfg.Arbitrage.MinProfitPercent,
		DefaultTakerFee:         cfg.Arbitrage.DefaultTakerFee,
	}, arbitrage.FeeSourceFunc(exchange.TakerFee))

	deps.PriceService = service.NewPriceService(
		deps.Registry, deps.PriceCache, cfg.Cache.PriceTTL.Duration, logger,
	)
	deps.ArbService = service.NewArbitrageService(
		deps.PriceService, calc, deps.ScanCache, pairs, cfg.Cache.ScanTTL.Duration, logger,
	)

	// --- Notifications ---
	var senders []notify.Sender
	if cfg.Notify.TelegramToken != "" && cfg.Notify.TelegramChatID != "" {
		senders = append(senders, notify.NewTelegramSender(
			cfg.Notify.TelegramToken,
			cfg.Notify.TelegramChatID,
		))
	}
	if cfg.Notify.DiscordWebhookURL != "" {
		senders = append(senders, notify.NewDiscordSender(cfg.Notify.DiscordWebhookURL))
	}
	deps.Notifier = notify.NewNotifier(senders, cfg.Notify.Events, logger)

	return deps, cleanup, nil
}
