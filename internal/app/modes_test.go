package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alanyoungcy/arbscan/internal/arbitrage"
	"github.com/alanyoungcy/arbscan/internal/cache/memory"
	"github.com/alanyoungcy/arbscan/internal/config"
	"github.com/alanyoungcy/arbscan/internal/domain"
	"github.com/alanyoungcy/arbscan/internal/exchange"
	"github.com/alanyoungcy/arbscan/internal/notify"
	"github.com/alanyoungcy/arbscan/internal/service"
)

var discard = slog.New(slog.DiscardHandler)

type stubFetcher struct {
	id    domain.ExchangeID
	price float64
}

func (f *stubFetcher) ID() domain.ExchangeID { return f.id }
func (f *stubFetcher) Name() string          { return string(f.id) }

func (f *stubFetcher) FetchPrice(context.Context, domain.TradingPair) (float64, error) {
	return f.price, nil
}

type recordingSender struct {
	titles []string
}

func (s *recordingSender) Name() string { return "recording" }

func (s *recordingSender) Send(_ context.Context, title, _ string) error {
	s.titles = append(s.titles, title)
	return nil
}

func TestAlertThrottle(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	throttle := newAlertThrottle(10 * time.Minute)

	if !throttle.take("BTC/USDT", base) {
		t.Fatal("first take should be allowed")
	}
	if throttle.take("BTC/USDT", base.Add(time.Minute)) {
		t.Error("take within the cooldown should be suppressed")
	}
	if !throttle.take("ETH/USDT", base.Add(time.Minute)) {
		t.Error("a different pair should not share the cooldown")
	}
	if !throttle.take("BTC/USDT", base.Add(10*time.Minute)) {
		t.Error("take after the cooldown elapsed should be allowed")
	}
	if throttle.take("BTC/USDT", base.Add(11*time.Minute)) {
		t.Error("the allowed take should restart the cooldown")
	}
}

func TestAlertThrottleDisabled(t *testing.T) {
	throttle := newAlertThrottle(0)
	now := time.Now()
	for i := 0; i < 3; i++ {
		if !throttle.take("BTC/USDT", now) {
			t.Fatalf("take %d should be allowed with a zero cooldown", i)
		}
	}
}

func newMonitorTestDeps(t *testing.T, sender notify.Sender) *Dependencies {
	t.Helper()
	priceCache := memory.NewPriceCache(time.Minute)
	t.Cleanup(priceCache.Close)
	scanCache := memory.NewScanCache(time.Minute)
	t.Cleanup(scanCache.Close)

	registry := exchange.NewRegistryFrom(
		&stubFetcher{id: "binance", price: 100},
		&stubFetcher{id: "kraken", price: 110},
	)
	prices := service.NewPriceService(registry, priceCache, time.Minute, discard)
	calc := arbitrage.NewCalculator(arbitrage.Config{MinProfitPercent: 0.01}, arbitrage.FeeSourceFunc(
		func(domain.ExchangeID) (float64, bool) { return 0.001, true },
	))
	arb := service.NewArbitrageService(prices, calc, scanCache,
		[]domain.TradingPair{{Base: "BTC", Quote: "USDT"}}, time.Minute, discard)

	return &Dependencies{
		Registry:     registry,
		PriceCache:   priceCache,
		ScanCache:    scanCache,
		PriceService: prices,
		ArbService:   arb,
		Notifier:     notify.NewNotifier([]notify.Sender{sender}, nil, discard),
	}
}

func TestMonitorScanRepeatAlertSuppressed(t *testing.T) {
	cfg := config.Defaults()
	cfg.Mode = "monitor"
	cfg.Monitor.PairLimit = 1
	cfg.Monitor.MinAlertProfitPercent = 0.5
	cfg.Monitor.AlertCooldown.Duration = 10 * time.Minute

	sender := &recordingSender{}
	deps := newMonitorTestDeps(t, sender)
	app := New(&cfg, discard)
	throttle := newAlertThrottle(cfg.Monitor.AlertCooldown.Duration)

	ctx := context.Background()
	app.runMonitorScan(ctx, deps, throttle)
	if len(sender.titles) != 1 {
		t.Fatalf("first scan: got %d alerts, want 1", len(sender.titles))
	}

	// The spread persists; a second scan inside the cooldown stays quiet.
	app.runMonitorScan(ctx, deps, throttle)
	if len(sender.titles) != 1 {
		t.Fatalf("second scan within cooldown: got %d alerts, want 1", len(sender.titles))
	}
}

func TestMonitorScanZeroCooldownAlertsEveryScan(t *testing.T) {
	cfg := config.Defaults()
	cfg.Mode = "monitor"
	cfg.Monitor.PairLimit = 1
	cfg.Monitor.MinAlertProfitPercent = 0.5
	cfg.Monitor.AlertCooldown.Duration = 0

	sender := &recordingSender{}
	deps := newMonitorTestDeps(t, sender)
	app := New(&cfg, discard)
	throttle := newAlertThrottle(0)

	ctx := context.Background()
	app.runMonitorScan(ctx, deps, throttle)
	app.runMonitorScan(ctx, deps, throttle)
	if len(sender.titles) != 2 {
		t.Fatalf("got %d alerts, want 2", len(sender.titles))
	}
}
