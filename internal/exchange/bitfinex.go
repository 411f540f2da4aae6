package exchange

import (
	"context"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

type bitfinexFetcher struct {
	client  *Client
	baseURL string
}

func newBitfinex(c *Client) *bitfinexFetcher {
	return &bitfinexFetcher{client: c, baseURL: "https://api-pub.bitfinex.com"}
}

func (f *bitfinexFetcher) ID() domain.ExchangeID { return Bitfinex }
func (f *bitfinexFetcher) Name() string          { return "Bitfinex" }

// bitfinexLastPriceIndex is the position of LAST_PRICE in the v2 ticker
// array [BID, BID_SIZE, ASK, ASK_SIZE, DAILY_CHANGE, DAILY_CHANGE_RELATIVE,
// LAST_PRICE, ...].
const bitfinexLastPriceIndex = 6

func (f *bitfinexFetcher) FetchPrice(ctx context.Context, pair domain.TradingPair) (float64, error) {
	sym, ok := NormalizeSymbol(pair, Bitfinex)
	if !ok {
		return 0, domain.ErrNoQuote
	}

	var resp []jsonFloat
	err := f.client.getJSON(ctx, f.baseURL+"/v2/ticker/"+sym, nil, &resp)
	if err != nil {
		return 0, err
	}
	if len(resp) <= bitfinexLastPriceIndex {
		return 0, domain.ErrNoQuote
	}
	return checkPrice(float64(resp[bitfinexLastPriceIndex]))
}
