package exchange

import (
	"context"
	"net/url"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type bitmartFetcher struct {
	client  *Client
	baseURL string
}

func newBitMart(c *Client) *bitmartFetcher {
	return &bitmartFetcher{client: c, baseURL: "https://api-cloud.bitmart.com"}
}

func (f *bitmartFetcher) ID() domain.ExchangeID { return BitMart }
func (f *bitmartFetcher) Name() string          { return "BitMart" }

func (f *bitmartFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, BitMart)
	if !ok {
		return 0, domain.ErrNoQuote
	}

	var resp struct {
		Data struct {
			Tickers []struct {
				Symbol    string    `json:"symbol"`
				LastPrice jsonFloat `json:"last_price"`
			} `json:"tickers"`
		} `json:"data"`
	}
	err := f.client.getJSON(ctx, f.baseURL+"/spot/v1/ticker", url.Values{"symbol": {sym}}, &resp)
	if err != nil {
		return 0, err
	}
	for _, t := range resp.Data.Tickers {
		if t.Symbol == sym {
			return checkPrice(float64(t.LastPrice))
		}
	}
	return 0, domain.ErrNoQuote
}
