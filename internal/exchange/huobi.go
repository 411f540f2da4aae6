package exchange

import (
	"context"
	"net/url"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type huobiFetcher struct {
	client  *Client
	baseURL string
}

func newHuobi(c *Client) *huobiFetcher {
	return &huobiFetcher{client: c, baseURL: "https://api.huobi.pro"}
}

func (f *huobiFetcher) ID() domain.ExchangeID { return Huobi }
func (f *huobiFetcher) Name() string          { return "Huobi" }

func (f *huobiFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, Huobi)
	if !ok {
		return 0, domain.ErrNoQuote
	}

	var resp struct {
		Tick struct {
			Close jsonFloat `json:"close"`
		} `json:"tick"`
	}
	err := f.client.getJSON(ctx, f.baseURL+"/market/detail/merged", url.Values{"symbol": {sym}}, &resp)
	if err != nil {
		return 0, err
	}
	return checkPrice(float64(resp.Tick.Close))
}
