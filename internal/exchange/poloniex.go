package exchange

import (
	"context"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type poloniexFetcher struct {
	client  *Client
	baseURL string
}

func newPoloniex(c *Client) *poloniexFetcher {
	return &poloniexFetcher{client: c, baseURL: "https://api.poloniex.com"}
}

func (f *poloniexFetcher) ID() domain.ExchangeID { return Poloniex }
func (f *poloniexFetcher) Name() string          { return "Poloniex" }

// Poloniex only exposes an all-markets 24h ticker; the wanted symbol is
// picked out of the array.
func (f *poloniexFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, Poloniex)
	if !ok {
		return 0, domain.ErrNoQuote
	}

	var resp []struct {
		Symbol string    `json:"symbol"`
		Close  jsonFloat `json:"close"`
	}
	err := f.client.getJSON(ctx, f.baseURL+"/markets/ticker24h", nil, &resp)
	if err != nil {
		return 0, err
	}
	for _, t := range resp {
		if t.Symbol == sym {
			return checkPrice(float64(t.Close))
		}
	}
	return 0, domain.ErrNoQuote
}
