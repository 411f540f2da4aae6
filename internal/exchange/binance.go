package exchange

import (
	"context"
	"net/url"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type binanceFetcher struct {
	client  *Client
	baseURL string
}

func newBinance(c *Client) *binanceFetcher {
	return &binanceFetcher{client: c, baseURL: "https://api.binance.com"}
}

func (f *binanceFetcher) ID() domain.ExchangeID { return Binance }
func (f *binanceFetcher) Name() string          { return "Binance" }

func (f *binanceFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, Binance)
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
