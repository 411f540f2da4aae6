// Package domain defines the core value types shared across the arbscan
// engine: trading pairs, price maps, arbitrage opportunities, and the cache
// interfaces that the memory and redis backends implement.
package domain

import (
	"fmt"
	"strings"
)

// TradingPair is an immutable base/quote currency combination, rendered
// canonically as "BASE/QUOTE" (e.g. "BTC/USDT").
type TradingPair struct {
	Base  string
	Quote string
}

// ParsePair parses a canonical "BASE/QUOTE" string. It returns ErrInvalidPair
// when the separator is missing or either side is empty.
func ParsePair(s string) (TradingPair, error) {
	base, quote, ok := strings.Cut(s, "/")
	if !ok || base == "" || quote == "" {
		return TradingPair{}, fmt.Errorf("%w: %q", ErrInvalidPair, s)
	}
	return TradingPair{
		Base:  strings.ToUpper(base),
		Quote: strings.ToUpper(quote),
	}, nil
}

// String renders the pair in canonical form.
func (p TradingPair) String() string {
	return p.Base + "/" + p.Quote
}

// IsZero reports whether the pair is the zero value.
func (p TradingPair) IsZero() bool {
	return p.Base == "" && p.Quote == ""
}

// DedupePairs returns the universe with duplicates removed, preserving the
// first occurrence order. Universe order affects only batch scheduling.
func DedupePairs(pairs []TradingPair) []TradingPair {
	seen := make(map[TradingPair]bool, len(pairs))
	out := make([]TradingPair, 0, len(pairs))
	for _, p := range pairs {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
