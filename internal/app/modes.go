package app

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alanyoungcy/arbscan/internal/domain"
	"github.com/alanyoungcy/arbscan/internal/notify"
	"github.com/alanyoungcy/arbscan/internal/server"
	"github.com/alanyoungcy/arbscan/internal/server/handler"
)

// ServerMode runs the JSON API until the context is cancelled.
func (a *App) ServerMode(ctx context.Context, deps *Dependencies) error {
	a.logger.InfoContext(ctx, "starting server mode",
		slog.Int("port", a.cfg.Server.Port),
		slog.Int("exchanges", deps.Registry.Len()),
		slog.Int("pairs", len(deps.ArbService.Pairs())),
	)

	production := a.cfg.Production()
	handlers := server.Handlers{
		Health: handler.NewHealthHandler(time.Now().UTC()),
		Arb: handler.NewArbHandler(
			deps.ArbService,
			a.cfg.Server.ArbitrageDefaultLimit,
			a.cfg.Server.ArbitrageMaxLimit,
			production,
			a.logger,
		),
		Prices: handler.NewPriceHandler(
			deps.ArbService,
			deps.PriceService,
			a.cfg.Server.PricesDefaultLimit,
			a.cfg.Server.PricesMaxLimit,
			production,
			a.logger,
		),
		Meta: handler.NewMetaHandler(deps.ArbService, deps.Registry),
	}

	srv := server.NewServer(server.Config{
		Port:        a.cfg.Server.Port,
		CORSOrigins: a.cfg.Server.CORSOrigins,
		Production:  production,
		RateLimit:   a.cfg.Server.RateLimit,
		RateWindow:  a.cfg.Server.RateWindow.Duration,
	}, handlers, deps.RateLimiter, a.logger)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(srv.Start)

	g.Go(func() error {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	return g.Wait()
}

// MonitorMode runs periodic scans and pushes the strongest opportunities to
// the configured notification channels. No HTTP server is started.
func (a *App) MonitorMode(ctx context.Context, deps *Dependencies) error {
	interval := a.cfg.Monitor.Interval.Duration
	a.logger.InfoContext(ctx, "starting monitor mode",
		slog.Duration("interval", interval),
		slog.Int("pair_limit", a.cfg.Monitor.PairLimit),
		slog.Float64("min_alert_profit_percent", a.cfg.Monitor.MinAlertProfitPercent),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	throttle := newAlertThrottle(a.cfg.Monitor.AlertCooldown.Duration)

	for {
		a.runMonitorScan(ctx, deps, throttle)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// alertThrottle suppresses repeat alerts for a pair inside the cooldown
// window. A spread that persists across ticks alerts once per window, not
// once per tick. Monitor mode is a single process, so in-process state
// suffices even when the cache backend is redis.
type alertThrottle struct {
	cooldown time.Duration
	last     map[string]time.Time
}

func newAlertThrottle(cooldown time.Duration) *alertThrottle {
	return &alertThrottle{
		cooldown: cooldown,
		last:     make(map[string]time.Time),
	}
}

// take reports whether the pair may alert at now, recording now when it may.
// A non-positive cooldown always allows.
func (t *alertThrottle) take(symbol string, now time.Time) bool {
	if t.cooldown <= 0 {
		return true
	}
	if last, ok := t.last[symbol]; ok && now.Sub(last) < t.cooldown {
		return false
	}
	t.last[symbol] = now
	return true
}

// runMonitorScan performs one scan and dispatches an alert when at least one
// opportunity clears the alert threshold and its pair is off cooldown.
func (a *App) runMonitorScan(ctx context.Context, deps *Dependencies, throttle *alertThrottle) {
	result, err := deps.ArbService.ComputeArbitrage(ctx, a.cfg.Monitor.PairLimit)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		a.logger.ErrorContext(ctx, "monitor scan failed",
			slog.String("error", err.Error()),
		)
		_ = deps.Notifier.Notify(ctx, notify.EventError, "scan failed", err.Error())
		return
	}

	// Opportunities are sorted; cut at the alert threshold.
	strong := result.Opportunities
	for i, o := range strong {
		if o.RealProfitPercent < a.cfg.Monitor.MinAlertProfitPercent {
			strong = strong[:i]
			break
		}
	}
	if len(strong) == 0 {
		a.logger.DebugContext(ctx, "monitor scan: no opportunities above threshold",
			slog.Int("total", len(result.Opportunities)),
		)
		return
	}

	// strong aliases the cached scan result, so filter into a fresh slice.
	now := time.Now()
	alertable := make([]domain.Opportunity, 0, len(strong))
	for _, o := range strong {
		if throttle.take(o.Symbol, now) {
			alertable = append(alertable, o)
		}
	}
	if len(alertable) == 0 {
		a.logger.DebugContext(ctx, "monitor scan: all pairs on alert cooldown",
			slog.Int("suppressed", len(strong)),
		)
		return
	}

	if err := deps.Notifier.NotifyOpportunities(ctx, alertable); err != nil {
		a.logger.WarnContext(ctx, "monitor alert delivery failed",
			slog.String("error", err.Error()),
		)
	}
}
