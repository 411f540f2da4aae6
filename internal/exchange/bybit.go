package exchange

import (
	"context"
	"net/url"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type bybitFetcher struct {
	client  *Client
	baseURL string
}

func newBybit(c *Client) *bybitFetcher {
	return &bybitFetcher{client: c, baseURL: "https://api.bybit.com"}
}

func (f *bybitFetcher) ID() domain.ExchangeID { return Bybit }
func (f *bybitFetcher) Name() string          { return "Bybit" }

// bybitRetCodeOK is the v5 API success code; any other retCode means the
// symbol is unavailable or the request was rejected.
const bybitRetCodeOK = 0

func (f *bybitFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, Bybit)
	if !ok {
		return 0, domain.ErrNoQuote
	}

	var resp struct {
		RetCode int `json:"retCode"`
		Result  struct {
			List []struct {
				LastPrice jsonFloat `json:"lastPrice"`
			} `json:"list"`
		} `json:"result"`
	}
	err := f.client.getJSON(ctx, f.baseURL+"/v5/market/tickers", url.Values{
		"category": {"spot"},
		"symbol":   {sym},
	}, &resp)
	if err != nil {
		return 0, err
	}
	if resp.RetCode != bybitRetCodeOK || len(resp.Result.List) == 0 {
		return 0, domain.ErrNoQuote
	}
	return checkPrice(float64(resp.Result.List[0].LastPrice))
}
