package exchange

import (
	"context"
	"net/url"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type bitgetFetcher struct {
	client  *Client
	baseURL string
}

func newBitget(c *Client) *bitgetFetcher {
	return &bitgetFetcher{client: c, baseURL: "https://api.bitget.com"}
}

func (f *bitgetFetcher) ID() domain.ExchangeID { return Bitget }
func (f *bitgetFetcher) Name() string          { return "Bitget" }

func (f *bitgetFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, Bitget)
	if !ok {
		return 0, domain.ErrNoQuote
	}

	var resp struct {
		Data struct {
			Close jsonFloat `json:"close"`
		} `json:"data"`
	}
	err := f.client.getJSON(ctx, f.baseURL+"/api/spot/v1/market/ticker", url.Values{"symbol": {sym}}, &resp)
	if err != nil {
		return 0, err
	}
	return checkPrice(float64(resp.Data.Close))
}
