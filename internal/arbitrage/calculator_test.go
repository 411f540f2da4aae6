package arbitrage

import (
	"math"
	"testing"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

var btcUSDT = domain.TradingPair{Base: "BTC", Quote: "USDT"}

func flatFees(rate float64) FeeSource {
	return FeeSourceFunc(func(domain.ExchangeID) (float64, bool) { return rate, true })
}

func TestCalculateSingleOpportunity(t *testing.T) {
	calc := NewCalculator(Config{TheoreticalFloorPercent: 0.05, MinProfitPercent: 0.01}, flatFees(0.001))

	opps := calc.Calculate(domain.PriceMap{
		"binance": 100,
		"kraken":  101,
	}, btcUSDT)
	if len(opps) != 1 {
		t.Fatalf("got %d opportunities, want 1", len(opps))
	}

	o := opps[0]
	if o.BuyExchange != "binance" || o.SellExchange != "kraken" {
		t.Errorf("direction = buy %s / sell %s, want buy binance / sell kraken", o.BuyExchange, o.SellExchange)
	}
	if o.TheoreticalProfitPercent != 1.0 {
		t.Errorf("theoretical profit = %v%%, want 1%%", o.TheoreticalProfitPercent)
	}
	// realBuy = 100*1.001 = 100.1, realSell = 101*0.999 = 100.899,
	// realPct = 0.799/100.1*100
	wantPct := (101*0.999 - 100*1.001) / (100 * 1.001) * 100
	if math.Abs(o.RealProfitPercent-wantPct) > 1e-9 {
		t.Errorf("real profit = %v%%, want %v%%", o.RealProfitPercent, wantPct)
	}
	if o.Symbol != "BTC/USDT" {
		t.Errorf("symbol = %q, want BTC/USDT", o.Symbol)
	}
	if o.ID == "" {
		t.Error("opportunity ID is empty")
	}
	if o.ObservedAt.IsZero() {
		t.Error("ObservedAt not stamped")
	}
}

func TestCalculateFeesEatSpread(t *testing.T) {
	// 0.3% raw spread, 0.26% fee on each leg: the net is negative.
	calc := NewCalculator(Config{MinProfitPercent: 0.01}, flatFees(0.0026))

	opps := calc.Calculate(domain.PriceMap{
		"binance": 100,
		"kraken":  100.3,
	}, btcUSDT)
	if len(opps) != 0 {
		t.Fatalf("got %d opportunities, want 0", len(opps))
	}
}

func TestCalculateTheoreticalFloor(t *testing.T) {
	calc := NewCalculator(Config{TheoreticalFloorPercent: 0.05}, flatFees(0))

	opps := calc.Calculate(domain.PriceMap{
		"binance": 100,
		"kraken":  100.01, // 0.01% spread, below the 0.05% floor
	}, btcUSDT)
	if len(opps) != 0 {
		t.Fatalf("got %d opportunities, want 0", len(opps))
	}
}

func TestCalculateFewerThanTwoQuotes(t *testing.T) {
	calc := NewCalculator(Config{}, flatFees(0))

	if opps := calc.Calculate(domain.PriceMap{"binance": 100}, btcUSDT); opps != nil {
		t.Errorf("single quote: got %v, want nil", opps)
	}
	// Invalid prices are dropped before enumeration.
	opps := calc.Calculate(domain.PriceMap{
		"binance": 100,
		"kraken":  0,
		"okx":     math.NaN(),
	}, btcUSDT)
	if opps != nil {
		t.Errorf("one valid quote: got %v, want nil", opps)
	}
}

func TestCalculateSortedByRealProfit(t *testing.T) {
	calc := NewCalculator(Config{MinProfitPercent: 0.01}, flatFees(0))

	opps := calc.Calculate(domain.PriceMap{
		"binance": 100,
		"kraken":  101,
		"okx":     103,
	}, btcUSDT)
	if len(opps) != 3 {
		t.Fatalf("got %d opportunities, want 3", len(opps))
	}
	for i := 1; i < len(opps); i++ {
		if opps[i].RealProfitPercent > opps[i-1].RealProfitPercent {
			t.Fatalf("opportunities not sorted: %v%% before %v%%",
				opps[i-1].RealProfitPercent, opps[i].RealProfitPercent)
		}
	}
	if opps[0].BuyExchange != "binance" || opps[0].SellExchange != "okx" {
		t.Errorf("top = buy %s / sell %s, want buy binance / sell okx",
			opps[0].BuyExchange, opps[0].SellExchange)
	}
}

func TestDefaultTakerFeeApplied(t *testing.T) {
	noSchedule := FeeSourceFunc(func(domain.ExchangeID) (float64, bool) { return 0, false })
	calc := NewCalculator(Config{MinProfitPercent: 0.01}, noSchedule)

	opps := calc.Calculate(domain.PriceMap{
		"binance": 100,
		"kraken":  102,
	}, btcUSDT)
	if len(opps) != 1 {
		t.Fatalf("got %d opportunities, want 1", len(opps))
	}
	if opps[0].BuyFeePercent != 0.2 || opps[0].SellFeePercent != 0.2 {
		t.Errorf("fees = %v%%/%v%%, want 0.2%%/0.2%% default",
			opps[0].BuyFeePercent, opps[0].SellFeePercent)
	}
}

func TestSortByProfit(t *testing.T) {
	opps := []domain.Opportunity{
		{RealProfitPercent: 0.3},
		{RealProfitPercent: 1.2},
		{RealProfitPercent: 0.7},
	}
	SortByProfit(opps)
	want := []float64{1.2, 0.7, 0.3}
	for i, w := range want {
		if opps[i].RealProfitPercent != w {
			t.Errorf("opps[%d] = %v, want %v", i, opps[i].RealProfitPercent, w)
		}
	}
}
