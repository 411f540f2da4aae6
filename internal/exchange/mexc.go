package exchange

import (
	"context"
	"net/url"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type mexcFetcher struct {
	client  *Client
	baseURL string
}

func newMEXC(c *Client) *mexcFetcher {
	return &mexcFetcher{client: c, baseURL: "https://api.mexc.com"}
}

func (f *mexcFetcher) ID() domain.ExchangeID { return MEXC }
func (f *mexcFetcher) Name() string          { return "MEXC" }

func (f *mexcFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, MEXC)
	if !ok {
		return 0, domain.ErrNoQuote
	}

	var resp struct {
		Price jsonFloat `json:"price"`
	}
	err := f.client.getJSON(ctx, f.baseURL+"/api/v3/ticker/price", url.Values{"symbol": {sym}}, &resp)
	if err != nil {
		return 0, err
	}
	return checkPrice(float64(resp.Price))
}
