// Package exchange implements one price fetcher per supported exchange.
// Every fetcher performs a single bounded-timeout GET against its venue's
// public ticker endpoint, decodes that venue's response shape, and validates
// the extracted price at the boundary. Fetchers never panic and never return
// partial results: a call yields either a finite positive price or a
// classified error.
package exchange

import (
	"context"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

// Supported exchange identifiers. The set is closed; adding a venue means
// adding a Fetcher implementation and registering it in NewRegistry.
const (
	Binance           domain.ExchangeID = "binance"
	Coinbase          domain.ExchangeID = "coinbase"
	Kraken            domain.ExchangeID = "kraken"
	KuCoin            domain.ExchangeID = "kucoin"
	Bybit             domain.ExchangeID = "bybit"
	OKX               domain.ExchangeID = "okx"
	GateIO            domain.ExchangeID = "gateio"
	Huobi             domain.ExchangeID = "huobi"
	Bitfinex          domain.ExchangeID = "bitfinex"
	Bitstamp          domain.ExchangeID = "bitstamp"
	Gemini            domain.ExchangeID = "gemini"
	Bitget            domain.ExchangeID = "bitget"
	MEXC              domain.ExchangeID = "mexc"
	BitMart           domain.ExchangeID = "bitmart"
	WhiteBIT          domain.ExchangeID = "whitebit"
	P2PB2B            domain.ExchangeID = "p2pb2b"
	CryptoCom         domain.ExchangeID = "cryptocom"
	Poloniex          domain.ExchangeID = "poloniex"
	Bittrex           domain.ExchangeID = "bittrex"
	TelegramWallet    domain.ExchangeID = "telegramwallet"
	TelegramCryptoBot domain.ExchangeID = "telegramcryptobot"
)

// FeeSchedule holds an exchange's fractional maker and taker rates
// (0.001 = 0.1%).
type FeeSchedule struct {
	Maker float64
	Taker float64
}

// fees is the static per-exchange fee schedule. Taker rates are the basis
// for arbitrage math since execution is assumed immediate.
var fees = map[domain.ExchangeID]FeeSchedule{
	Binance:           {Maker: 0.001, Taker: 0.001},
	Coinbase:          {Maker: 0.005, Taker: 0.005},
	Kraken:            {Maker: 0.0016, Taker: 0.0026},
	KuCoin:            {Maker: 0.001, Taker: 0.001},
	Bybit:             {Maker: 0.001, Taker: 0.001},
	OKX:               {Maker: 0.0008, Taker: 0.001},
	GateIO:            {Maker: 0.002, Taker: 0.002},
	Huobi:             {Maker: 0.002, Taker: 0.002},
	Bitfinex:          {Maker: 0.001, Taker: 0.002},
	Bitstamp:          {Maker: 0.005, Taker: 0.005},
	Gemini:            {Maker: 0.0025, Taker: 0.0035},
	Bitget:            {Maker: 0.001, Taker: 0.001},
	MEXC:              {Maker: 0.002, Taker: 0.002},
	BitMart:           {Maker: 0.0025, Taker: 0.0025},
	WhiteBIT:          {Maker: 0.001, Taker: 0.001},
	P2PB2B:            {Maker: 0.002, Taker: 0.002},
	CryptoCom:         {Maker: 0.004, Taker: 0.004},
	Poloniex:          {Maker: 0.0015, Taker: 0.0015},
	Bittrex:           {Maker: 0.0025, Taker: 0.0025},
	TelegramWallet:    {Maker: 0, Taker: 0}, // P2P, no trading fee
	TelegramCryptoBot: {Maker: 0, Taker: 0},
}

// TakerFee returns the taker rate for the exchange and whether a schedule is
// configured for it.
func TakerFee(id domain.ExchangeID) (float64, bool) {
	f, ok := fees[id]
	return f.Taker, ok
}

// Fetcher is the contract every exchange adapter implements. FetchPrice
// returns the last-traded price for the pair, or one of the domain sentinel
// errors: ErrNoQuote for expected misses (bad symbol, 4xx, unparsable
// body), ErrRateLimited for 429s, ErrUpstream for 5xx/network/timeout.
type Fetcher interface {
	ID() domain.ExchangeID
	Name() string
	FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error)
}

// Info describes an exchange for the /api/exchanges listing.
type Info struct {
	ID   domain.ExchangeID `json:"id"`
	Name string            `json:"name"`
}

// Registry holds the fixed set of fetchers in a stable order. Ordering puts
// the historically fastest venues first; it affects only scheduling, not
// results, since the price map is keyed by exchange.
type Registry struct {
	order    []domain.ExchangeID
	fetchers map[domain.ExchangeID]Fetcher
}

// NewRegistry constructs every supported fetcher on the shared HTTP client.
func NewRegistry(client *Client) *Registry {
	all := []Fetcher{
		newBinance(client),
		newBybit(client),
		newOKX(client),
		newKuCoin(client),
		newGateIO(client),
		newBitget(client),
		newMEXC(client),
		newCoinbase(client),
		newKraken(client),
		newWhiteBIT(client),
		newHuobi(client),
		newBitfinex(client),
		newBitstamp(client),
		newGemini(client),
		newBitMart(client),
		newP2PB2B(client),
		newCryptoCom(client),
		newPoloniex(client),
		newBittrex(client),
		newCoinGecko(client, TelegramWallet, "Telegram Wallet"),
		newCoinGecko(client, TelegramCryptoBot, "Telegram CryptoBot"),
	}

	r := &Registry{
		order:    make([]domain.ExchangeID, 0, len(all)),
		fetchers: make(map[domain.ExchangeID]Fetcher, len(all)),
	}
	for _, f := range all {
		r.order = append(r.order, f.ID())
		r.fetchers[f.ID()] = f
	}
	return r
}

// NewRegistryFrom builds a registry over an explicit fetcher set, preserving
// argument order. Later duplicates of an exchange ID replace earlier ones.
func NewRegistryFrom(fetchers ...Fetcher) *Registry {
	r := &Registry{
		fetchers: make(map[domain.ExchangeID]Fetcher, len(fetchers)),
	}
	for _, f := range fetchers {
		if _, seen := r.fetchers[f.ID()]; !seen {
			r.order = append(r.order, f.ID())
		}
		r.fetchers[f.ID()] = f
	}
	return r
}

// Fetchers returns every registered fetcher in registry order.
func (r *Registry) Fetchers() []Fetcher {
	out := make([]Fetcher, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.fetchers[id])
	}
	return out
}

// Get returns the fetcher for the given exchange.
func (r *Registry) Get(id domain.ExchangeID) (Fetcher, bool) {
	f, ok := r.fetchers[id]
	return f, ok
}

// List returns exchange metadata in registry order.
func (r *Registry) List() []Info {
	out := make([]Info, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, Info{ID: id, Name: r.fetchers[id].Name()})
	}
	return out
}

// Len returns the number of registered exchanges.
func (r *Registry) Len() int {
	return len(r.order)
}
