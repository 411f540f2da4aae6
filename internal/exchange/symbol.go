package exchange

import (
	"strings"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

// symbolStyle enumerates the wire symbol formats used across venues.
type symbolStyle int

const (
	joinedUpper     symbolStyle = iota // BTCUSDT
	dashUpper                          // BTC-USDT
	underscoreUpper                    // BTC_USDT
	joinedLower                        // btcusdt
	tPrefixUpper                       // tBTCUSD (Bitfinex)
	krakenStyle                        // XBTZUSD (currency aliasing)
	geckoStyle                         // CoinGecko coin id, quote passed separately
)

var symbolStyles = map[domain.ExchangeID]symbolStyle{
	Binance:           joinedUpper,
	Bybit:             joinedUpper,
	Bitget:            joinedUpper,
	MEXC:              joinedUpper,
	Coinbase:          dashUpper,
	KuCoin:            dashUpper,
	OKX:               dashUpper,
	Bittrex:           dashUpper,
	GateIO:            underscoreUpper,
	BitMart:           underscoreUpper,
	WhiteBIT:          underscoreUpper,
	P2PB2B:            underscoreUpper,
	CryptoCom:         underscoreUpper,
	Poloniex:          underscoreUpper,
	Huobi:             joinedLower,
	Bitstamp:          joinedLower,
	Gemini:            joinedLower,
	Bitfinex:          tPrefixUpper,
	Kraken:            krakenStyle,
	TelegramWallet:    geckoStyle,
	TelegramCryptoBot: geckoStyle,
}

// NormalizeSymbol maps a canonical pair to the exchange's native symbol.
// It reports false for malformed pairs (empty base or quote) and for
// exchanges without a defined rule, so callers can skip gracefully.
func NormalizeSymbol(pair domain.TradingPair, ex domain.ExchangeID) (string, bool) {
	if pair.Base == "" || pair.Quote == "" {
		return "", false
	}
	style, ok := symbolStyles[ex]
	if !ok {
		return "", false
	}

	base := strings.ToUpper(pair.Base)
	quote := strings.ToUpper(pair.Quote)

	switch style {
	case joinedUpper:
		return base + quote, true
	case dashUpper:
		return base + "-" + quote, true
	case underscoreUpper:
		return base + "_" + quote, true
	case joinedLower:
		return strings.ToLower(base + quote), true
	case tPrefixUpper:
		return "t" + base + quote, true
	case krakenStyle:
		return krakenBase(base) + krakenQuote(quote), true
	case geckoStyle:
		return geckoCoinID(base), true
	}
	return "", false
}

// Kraken renames a handful of currency codes internally.
func krakenBase(base string) string {
	if base == "BTC" {
		return "XBT"
	}
	return base
}

func krakenQuote(quote string) string {
	if quote == "USD" {
		return "ZUSD"
	}
	return quote
}

// geckoCoinMapping translates ticker codes to CoinGecko coin ids for the
// majors; anything unmapped falls back to the lowercased code.
var geckoCoinMapping = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"USDT":  "tether",
	"BNB":   "binancecoin",
	"SOL":   "solana",
	"XRP":   "ripple",
	"ADA":   "cardano",
	"DOGE":  "dogecoin",
	"DOT":   "polkadot",
	"MATIC": "matic-network",
	"AVAX":  "avalanche-2",
	"LINK":  "chainlink",
	"LTC":   "litecoin",
	"BCH":   "bitcoin-cash",
	"XLM":   "stellar",
	"ATOM":  "cosmos",
	"ETC":   "ethereum-classic",
	"XMR":   "monero",
	"TRX":   "tron",
}

func geckoCoinID(base string) string {
	if id, ok := geckoCoinMapping[strings.ToUpper(base)]; ok {
		return id
	}
	return strings.ToLower(base)
}

// geckoVsCurrency maps the quote side to a CoinGecko vs_currency. CoinGecko
// has no USDT quote; USD is the accepted stand-in.
func geckoVsCurrency(quote string) string {
	q := strings.ToLower(quote)
	if q == "usdt" {
		return "usd"
	}
	return q
}
