package exchange

import (
	"testing"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

func TestNormalizeSymbol(t *testing.T) {
	btcUsdt := domain.TradingPair{Base: "BTC", Quote: "USDT"}
	btcUsd := domain.TradingPair{Base: "BTC", Quote: "USD"}
	ethBtc := domain.TradingPair{Base: "ETH", Quote: "BTC"}

	cases := []struct {
		pair domain.TradingPair
		ex   domain.ExchangeID
		want string
	}{
		{btcUsdt, Binance, "BTCUSDT"},
		{btcUsdt, Bybit, "BTCUSDT"},
		{btcUsdt, Coinbase, "BTC-USDT"},
		{btcUsdt, OKX, "BTC-USDT"},
		{btcUsdt, GateIO, "BTC_USDT"},
		{btcUsdt, Poloniex, "BTC_USDT"},
		{btcUsdt, Huobi, "btcusdt"},
		{btcUsdt, Gemini, "btcusdt"},
		{btcUsd, Bitfinex, "tBTCUSD"},
		{btcUsd, Kraken, "XBTZUSD"},
		{btcUsdt, Kraken, "XBTUSDT"},
		{ethBtc, Kraken, "ETHBTC"},
		{btcUsdt, TelegramWallet, "bitcoin"},
		{domain.TradingPair{Base: "SOL", Quote: "USDT"}, TelegramCryptoBot, "solana"},
		{domain.TradingPair{Base: "WIF", Quote: "USDT"}, TelegramWallet, "wif"},
	}
	for _, c := range cases {
		got, ok := NormalizeSymbol(c.pair, c.ex)
		if !ok {
			t.Errorf("NormalizeSymbol(%s, %s) not ok", c.pair, c.ex)
			continue
		}
		if got != c.want {
			t.Errorf("NormalizeSymbol(%s, %s) = %q, want %q", c.pair, c.ex, got, c.want)
		}
	}
}

func TestNormalizeSymbolRejects(t *testing.T) {
	if _, ok := NormalizeSymbol(domain.TradingPair{}, Binance); ok {
		t.Error("zero pair should not normalize")
	}
	if _, ok := NormalizeSymbol(domain.TradingPair{Base: "BTC"}, Binance); ok {
		t.Error("missing quote should not normalize")
	}
	if _, ok := NormalizeSymbol(domain.TradingPair{Base: "BTC", Quote: "USDT"}, domain.ExchangeID("nope")); ok {
		t.Error("unknown exchange should not normalize")
	}
}

func TestGeckoVsCurrency(t *testing.T) {
	if got := geckoVsCurrency("USDT"); got != "usd" {
		t.Errorf("geckoVsCurrency(USDT) = %q, want usd", got)
	}
	if got := geckoVsCurrency("EUR"); got != "eur" {
		t.Errorf("geckoVsCurrency(EUR) = %q, want eur", got)
	}
}

func TestTakerFee(t *testing.T) {
	fee, ok := TakerFee(Kraken)
	if !ok || fee != 0.0026 {
		t.Errorf("TakerFee(kraken) = %v, %v", fee, ok)
	}
	fee, ok = TakerFee(TelegramWallet)
	if !ok || fee != 0 {
		t.Errorf("TakerFee(telegramwallet) = %v, %v", fee, ok)
	}
	if _, ok := TakerFee(domain.ExchangeID("nope")); ok {
		t.Error("unknown exchange should have no fee schedule")
	}
}
