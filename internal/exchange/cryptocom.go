package exchange

import (
	"context"
	"net/url"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type cryptocomFetcher struct {
	client  *Client
	baseURL string
}

func newCryptoCom(c *Client) *cryptocomFetcher {
	return &cryptocomFetcher{client: c, baseURL: "https://api.crypto.com"}
}

func (f *cryptocomFetcher) ID() domain.ExchangeID { return CryptoCom }
func (f *cryptocomFetcher) Name() string          { return "Crypto.com" }

func (f *cryptocomFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, CryptoCom)
	if !ok {
		return 0, domain.ErrNoQuote
	}

	var resp struct {
		Result struct {
			Data struct {
				A         jsonFloat `json:"a"`
				LastPrice jsonFloat `json:"last_price"`
			} `json:"data"`
		} `json:"result"`
	}
	err := f.client.getJSON(ctx, f.baseURL+"/v2/public/get-ticker", url.Values{"instrument_name": {sym}}, &resp)
	if err != nil {
		return 0, err
	}
	// "a" is the latest trade price in the v2 ticker payload.
	if resp.Result.Data.A > 0 {
		return checkPrice(float64(resp.Result.Data.A))
	}
	return checkPrice(float64(resp.Result.Data.LastPrice))
}
