package exchange

import (
	"context"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type bitstampFetcher struct {
	client  *Client
	baseURL string
}

func newBitstamp(c *Client) *bitstampFetcher {
	return &bitstampFetcher{client: c, baseURL: "https://www.bitstamp.net"}
}

func (f *bitstampFetcher) ID() domain.ExchangeID { return Bitstamp }
func (f *bitstampFetcher) Name() string          { return "Bitstamp" }

func (f *bitstampFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, Bitstamp)
	if !ok {
		return 0, domain.ErrNoQuote
	}

	var resp struct {
		Last jsonFloat `json:"last"`
	}
	err := f.client.getJSON(ctx, f.baseURL+"/api/v2/ticker/"+sym, nil, &resp)
	if err != nil {
		return 0, err
	}
	return checkPrice(float64(resp.Last))
}
