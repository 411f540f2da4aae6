// Package arbitrage computes fee-adjusted cross-exchange opportunities from
// a single pair's price map. The calculator is pure: no I/O, no clock other
// than the observation timestamp it stamps on emitted opportunities.
package arbitrage

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

// Config holds the calculator thresholds. All values are percentages except
// DefaultTakerFee, which is a fractional rate.
type Config struct {
	// TheoreticalFloorPercent is the cheap early-exit: exchange pairs whose
	// raw spread is below this never reach fee computation.
	TheoreticalFloorPercent float64
	// MinProfitPercent is the minimum fee-adjusted profit percent an
	// opportunity must clear to be emitted.
	MinProfitPercent float64
	// DefaultTakerFee is the conservative fractional fee applied to
	// exchanges with no configured schedule.
	DefaultTakerFee float64
}

// FeeSource resolves an exchange's fractional taker fee. The second return
// reports whether a schedule exists; callers fall back to DefaultTakerFee.
type FeeSource interface {
	TakerFee(id domain.ExchangeID) (float64, bool)
}

// FeeSourceFunc adapts a function to the FeeSource interface.
type FeeSourceFunc func(id domain.ExchangeID) (float64, bool)

// TakerFee implements FeeSource.
func (f FeeSourceFunc) TakerFee(id domain.ExchangeID) (float64, bool) { return f(id) }

// Calculator enumerates profitable buy/sell exchange pairs for one pair's
// quotes.
type Calculator struct {
	cfg  Config
	fees FeeSource
}

// NewCalculator creates a Calculator. Zero thresholds keep their natural
// meaning (no floor); a non-positive default fee falls back to 0.2%.
func NewCalculator(cfg Config, fees FeeSource) *Calculator {
	if cfg.DefaultTakerFee <= 0 {
		cfg.DefaultTakerFee = 0.002
	}
	return &Calculator{cfg: cfg, fees: fees}
}

type validQuote struct {
	exchange domain.ExchangeID
	price    float64
}

// Calculate returns every opportunity in the price map that survives the
// theoretical floor, fee adjustment, and minimum-profit threshold, sorted
// descending by real profit percent. Fewer than two valid quotes yield an
// empty result. Only finite positive prices participate; anything else is
// discarded before enumeration.
func (c *Calculator) Calculate(prices domain.PriceMap, pair domain.TradingPair) []domain.Opportunity {
	if len(prices) < 2 {
		return nil
	}

	valid := make([]validQuote, 0, len(prices))
	for ex, price := range prices {
		if domain.ValidPrice(price) {
			valid = append(valid, validQuote{exchange: ex, price: price})
		}
	}
	if len(valid) < 2 {
		return nil
	}
	// Stable iteration regardless of map order; output order is fixed by the
	// final sort anyway, but IDs and ties stay deterministic this way.
	sort.Slice(valid, func(i, j int) bool { return valid[i].exchange < valid[j].exchange })

	now := time.Now().UTC()
	var opportunities []domain.Opportunity

	for i := 0; i < len(valid); i++ {
		for j := i + 1; j < len(valid); j++ {
			buy, sell := valid[i], valid[j]
			if sell.price < buy.price {
				buy, sell = sell, buy
			}

			spread := sell.price - buy.price
			theoreticalPct := spread / buy.price * 100
			if theoreticalPct < c.cfg.TheoreticalFloorPercent {
				continue
			}

			buyFee := c.takerFee(buy.exchange)
			sellFee := c.takerFee(sell.exchange)

			realBuy := buy.price * (1 + buyFee)
			realSell := sell.price * (1 - sellFee)
			realProfit := realSell - realBuy
			realPct := realProfit / realBuy * 100

			if realProfit <= 0 || realPct <= c.cfg.MinProfitPercent {
				continue
			}

			opportunities = append(opportunities, domain.Opportunity{
				ID:                       uuid.NewString(),
				Pair:                     pair,
				Symbol:                   pair.String(),
				BuyExchange:              buy.exchange,
				SellExchange:             sell.exchange,
				BuyPrice:                 buy.price,
				SellPrice:                sell.price,
				TheoreticalProfit:        spread,
				TheoreticalProfitPercent: theoreticalPct,
				BuyFeePercent:            buyFee * 100,
				SellFeePercent:           sellFee * 100,
				RealBuyPrice:             realBuy,
				RealSellPrice:            realSell,
				RealProfit:               realProfit,
				RealProfitPercent:        realPct,
				ObservedAt:               now,
			})
		}
	}

	SortByProfit(opportunities)
	return opportunities
}

func (c *Calculator) takerFee(id domain.ExchangeID) float64 {
	if fee, ok := c.fees.TakerFee(id); ok {
		return fee
	}
	return c.cfg.DefaultTakerFee
}

// SortByProfit orders opportunities descending by real profit percent. This
// is the ranking contract exposed to clients.
func SortByProfit(opps []domain.Opportunity) {
	sort.SliceStable(opps, func(i, j int) bool {
		return opps[i].RealProfitPercent > opps[j].RealProfitPercent
	})
}
