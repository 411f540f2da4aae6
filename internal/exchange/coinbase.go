package exchange

import (
	"context"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type coinbaseFetcher struct {
	client  *Client
	baseURL string
}

func newCoinbase(c *Client) *coinbaseFetcher {
	return &coinbaseFetcher{client: c, baseURL: "https://api.exchange.coinbase.com"}
}

func (f *coinbaseFetcher) ID() domain.ExchangeID { return Coinbase }
func (f *coinbaseFetcher) Name() string          { return "Coinbase Pro" }

func (f *coinbaseFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, Coinbase)
	if !ok {
		return 0, domain.ErrNoQuote
	}

	var resp struct {
		Price jsonFloat `json:"price"`
	}
	err := f.client.getJSON(ctx, f.baseURL+"/products/"+sym+"/ticker", nil, &resp)
	if err != nil {
		return 0, err
	}
	return checkPrice(float64(resp.Price))
}
