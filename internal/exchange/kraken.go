package exchange

import (
	"context"
	"net/url"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type krakenFetcher struct {
	client  *Client
	baseURL string
}

func newKraken(c *Client) *krakenFetcher {
	return &krakenFetcher{client: c, baseURL: "https://api.kraken.com"}
}

func (f *krakenFetcher) ID() domain.ExchangeID { return Kraken }
func (f *krakenFetcher) Name() string          { return "Kraken" }

// Kraken keys the result object by its own (sometimes historical) pair name,
// so the response is decoded as a map and the first entry wins. The last
// trade price is c[0].
func (f *krakenFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, Kraken)
	if !ok {
		return 0, domain.ErrNoQuote
	}

	var resp struct {
		Error  []string `json:"error"`
		Result map[string]struct {
			C []jsonFloat `json:"c"`
		} `json:"result"`
	}
	err := f.client.getJSON(ctx, f.baseURL+"/0/public/Ticker", url.Values{"pair": {sym}}, &resp)
	if err != nil {
		return 0, err
	}
	if len(resp.Error) > 0 {
		return 0, domain.ErrNoQuote
	}
	for _, ticker := range resp.Result {
		if len(ticker.C) > 0 {
			return checkPrice(float64(ticker.C[0]))
		}
	}
	return 0, domain.ErrNoQuote
}
