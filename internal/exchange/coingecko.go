package exchange

import (
	"context"
	"net/url"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

// coingeckoFetcher prices the Telegram P2P venues, which trade at market
// rates and publish no ticker API of their own. CoinGecko's simple/price
// endpoint stands in as the rate source, with USDT quoted as USD.
type coingeckoFetcher struct {
	client  *Client
	baseURL string
	id      domain.ExchangeID
	name    string
}

func newCoinGecko(c *Client, id domain.ExchangeID, name string) *coingeckoFetcher {
	return &coingeckoFetcher{
		client:  c,
		baseURL: "https://api.coingecko.com",
		id:      id,
		name:    name,
	}
}

func (f *coingeckoFetcher) ID() domain.ExchangeID { return f.id }
func (f *coingeckoFetcher) Name() string          { return f.name }

func (f *coingeckoFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	coinID, ok := NormalizeSymbol(pair, f.id)
	if !ok {
		return 0, domain.ErrNoQuote
	}
	vs := geckoVsCurrency(pair.Quote)

	var resp map[string]map[string]jsonFloat
	err := f.client.getJSON(ctx, f.baseURL+"/api/v3/simple/price", url.Values{
		"ids":           {coinID},
		"vs_currencies": {vs},
	}, &resp)
	if err != nil {
		return 0, err
	}
	quotes, ok := resp[coinID]
	if !ok {
		return 0, domain.ErrNoQuote
	}
	price, ok := quotes[vs]
	if !ok {
		return 0, domain.ErrNoQuote
	}
	return checkPrice(float64(price))
}
