package domain

import (
	"math"
	"time"
)

// ExchangeID identifies one of the fixed set of supported exchanges. It is
// used as a map key throughout the engine.
type ExchangeID string

// PriceMap holds one fetch cycle's quotes for a single pair, keyed by
// exchange. The map is partial by construction: an absent exchange means "no
// quote obtained this cycle", never "price is zero".
type PriceMap map[ExchangeID]float64

// Clone returns a copy of the map so cached values are never aliased by
// callers.
func (m PriceMap) Clone() PriceMap {
	out := make(PriceMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ValidPrice reports whether v is a usable quote: finite and strictly
// positive. Zero, negative, NaN, and infinite values all mean "no quote".
func ValidPrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// PriceSnapshot is the aggregate returned for the /api/prices batch path.
type PriceSnapshot struct {
	Prices         map[string]PriceMap `json:"prices"`
	TotalPairs     int                 `json:"totalPairs"`
	ProcessedPairs int                 `json:"processedPairs"`
	Timestamp      time.Time           `json:"timestamp"`
}
