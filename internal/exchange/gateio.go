package exchange

import (
	"context"
	"net/url"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type gateioFetcher struct {
	client  *Client
	baseURL string
}

func newGateIO(c *Client) *gateioFetcher {
	return &gateioFetcher{client: c, baseURL: "https://api.gateio.ws"}
}

func (f *gateioFetcher) ID() domain.ExchangeID { return GateIO }
func (f *gateioFetcher) Name() string          { return "Gate.io" }

func (f *gateioFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, GateIO)
	if !ok {
		return 0, domain.ErrNoQuote
	}

	var resp []struct {
		Last jsonFloat `json:"last"`
	}
	err := f.client.getJSON(ctx, f.baseURL+"/api/v4/spot/tickers", url.Values{"currency_pair": {sym}}, &resp)
	if err != nil {
		return 0, err
	}
	if len(resp) == 0 {
		return 0, domain.ErrNoQuote
	}
	return checkPrice(float64(resp[0].Last))
}
