package exchange

import (
	"context"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type kucoinFetcher struct {
	client  *Client
	baseURL string
}

func newKuCoin(c *Client) *kucoinFetcher {
	return &kucoinFetcher{client: c, baseURL: "https://api.kucoin.com"}
}

func (f *kucoinFetcher) ID() domain.ExchangeID { return KuCoin }
func (f *kucoinFetcher) Name() string          { return "KuCoin" }

// KuCoin's public ticker endpoint returns every market at once; the wanted
// symbol is picked out of the list.
func (f *kucoinFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, KuCoin)
	if !ok {
		return 0, domain.ErrNoQuote
	}

	var resp struct {
		Data struct {
			Ticker []struct {
				Symbol string    `json:"symbol"`
				Last   jsonFloat `json:"last"`
			} `json:"ticker"`
		} `json:"data"`
	}
	err := f.client.getJSON(ctx, f.baseURL+"/api/v1/market/allTickers", nil, &resp)
	if err != nil {
		return 0, err
	}
	for _, t := range resp.Data.Ticker {
		if t.Symbol == sym {
			return checkPrice(float64(t.Last))
		}
	}
	return 0, domain.ErrNoQuote
}
