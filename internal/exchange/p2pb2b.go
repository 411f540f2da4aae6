package exchange

import (
	"context"
	"net/url"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type p2pb2bFetcher struct {
	client  *Client
	baseURL string
}

func newP2PB2B(c *Client) *p2pb2bFetcher {
	return &p2pb2bFetcher{client: c, baseURL: "https://api.p2pb2b.io"}
}

func (f *p2pb2bFetcher) ID() domain.ExchangeID { return P2PB2B }
func (f *p2pb2bFetcher) Name() string          { return "P2PB2B" }

func (f *p2pb2bFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, P2PB2B)
	if !ok {
		return 0, domain.ErrNoQuote
	}

	var resp struct {
		Result struct {
			Last      jsonFloat `json:"last"`
			LastPrice jsonFloat `json:"last_price"`
		} `json:"result"`
	}
	err := f.client.getJSON(ctx, f.baseURL+"/api/v2/public/ticker", url.Values{"market": {sym}}, &resp)
	if err != nil {
		return 0, err
	}
	if resp.Result.Last > 0 {
		return checkPrice(float64(resp.Result.Last))
	}
	return checkPrice(float64(resp.Result.LastPrice))
}
