package exchange

import (
	"context"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type geminiFetcher struct {
	client  *Client
	baseURL string
}

func newGemini(c *Client) *geminiFetcher {
	return &geminiFetcher{client: c, baseURL: "https://api.gemini.com"}
}

func (f *geminiFetcher) ID() domain.ExchangeID { return Gemini }
func (f *geminiFetcher) Name() string          { return "Gemini" }

func (f *geminiFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, Gemini)
	if !ok {
		return 0, domain.ErrNoQuote
	}

	var resp struct {
		Last jsonFloat `json:"last"`
	}
	err := f.client.getJSON(ctx, f.baseURL+"/v1/pubticker/"+sym, nil, &resp)
	if err != nil {
		return 0, err
	}
	return checkPrice(float64(resp.Last))
}
