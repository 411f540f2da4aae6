package exchange

import (
	"context"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type bittrexFetcher struct {
	client  *Client
	baseURL string
}

func newBittrex(c *Client) *bittrexFetcher {
	return &bittrexFetcher{client: c, baseURL: "https://api.bittrex.com"}
}

func (f *bittrexFetcher) ID() domain.ExchangeID { return Bittrex }
func (f *bittrexFetcher) Name() string          { return "Bittrex" }

func (f *bittrexFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, Bittrex)
	if !ok {
		return 0, domain.ErrNoQuote
	}

	var resp struct {
		LastTradeRate jsonFloat `json:"lastTradeRate"`
	}
	err := f.client.getJSON(ctx, f.baseURL+"/v3/markets/tickers/"+sym, nil, &resp)
	if err != nil {
		return 0, err
	}
	return checkPrice(float64(resp.LastTradeRate))
}
