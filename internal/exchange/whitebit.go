package exchange

import (
	"context"
	"net/url"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type whitebitFetcher struct {
	client  *Client
	baseURL string
}

func newWhiteBIT(c *Client) *whitebitFetcher {
	return &whitebitFetcher{client: c, baseURL: "https://whitebit.com"}
}

func (f *whitebitFetcher) ID() domain.ExchangeID { return WhiteBIT }
func (f *whitebitFetcher) Name() string          { return "WhiteBIT" }

func (f *whitebitFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, WhiteBIT)
	if !ok {
		return 0, domain.ErrNoQuote
	}

	var resp struct {
		Result struct {
			LastPrice jsonFloat `json:"last_price"`
			Last      jsonFloat `json:"last"`
		} `json:"result"`
	}
	err := f.client.getJSON(ctx, f.baseURL+"/api/v4/public/ticker", url.Values{"market": {sym}}, &resp)
	if err != nil {
		return 0, err
	}
	if resp.Result.LastPrice > 0 {
		return checkPrice(float64(resp.Result.LastPrice))
	}
	return checkPrice(float64(resp.Result.Last))
}
