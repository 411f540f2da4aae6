package exchange

import (
	"context"
	"net/url"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type okxFetcher struct {
	client  *Client
	baseURL string
}

func newOKX(c *Client) *okxFetcher {
	return &okxFetcher{client: c, baseURL: "https://www.okx.com"}
}

func (f *okxFetcher) ID() domain.ExchangeID { return OKX }
func (f *okxFetcher) Name() string          { return "OKX" }

func (f *okxFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, OKX)
	if !ok {
		return 0, domain.ErrNoQuote
	}

	var resp struct {
		Data []struct {
			Last jsonFloat `json:"last"`
		} `json:"data"`
	}
	err := f.client.getJSON(ctx, f.baseURL+"/api/v5/market/ticker", url.Values{"instId": {sym}}, &resp)
	if err != nil {
		return 0, err
	}
	if len(resp.Data) == 0 {
		return 0, domain.ErrNoQuote
	}
	return checkPrice(float64(resp.Data[0].Last))
}
