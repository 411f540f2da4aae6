package domain

import (
	"errors"
	"math"
	"testing"
)

func TestParsePair(t *testing.T) {
	p, err := ParsePair("btc/usdt")
	if err != nil {
		t.Fatalf("ParsePair: %v", err)
	}
	if p.Base != "BTC" || p.Quote != "USDT" {
		t.Errorf("unexpected pair: %+v", p)
	}
	if got := p.String(); got != "BTC/USDT" {
		t.Errorf("String() = %q, want %q", got, "BTC/USDT")
	}
}

func TestParsePairInvalid(t *testing.T) {
	for _, s := range []string{"", "BTC", "/USDT", "BTC/", "/"} {
		if _, err := ParsePair(s); !errors.Is(err, ErrInvalidPair) {
			t.Errorf("ParsePair(%q) error = %v, want ErrInvalidPair", s, err)
		}
	}
}

func TestDedupePairs(t *testing.T) {
	btc := TradingPair{Base: "BTC", Quote: "USDT"}
	eth := TradingPair{Base: "ETH", Quote: "USDT"}

	out := DedupePairs([]TradingPair{btc, eth, btc, eth, btc})
	if len(out) != 2 {
		t.Fatalf("got %d pairs, want 2", len(out))
	}
	if out[0] != btc || out[1] != eth {
		t.Errorf("order not preserved: %v", out)
	}
}

func TestDefaultUniverse(t *testing.T) {
	pairs := DefaultUniverse()
	if len(pairs) == 0 {
		t.Fatal("empty universe")
	}

	seen := make(map[TradingPair]bool, len(pairs))
	for _, p := range pairs {
		if seen[p] {
			t.Errorf("duplicate pair %s", p)
		}
		seen[p] = true
	}
	if pairs[0] != (TradingPair{Base: "BTC", Quote: "USDT"}) {
		t.Errorf("universe should lead with BTC/USDT, got %s", pairs[0])
	}
}

func TestValidPrice(t *testing.T) {
	cases := []struct {
		v    float64
		want bool
	}{
		{100.5, true},
		{0.00000001, true},
		{0, false},
		{-1, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}
	for _, c := range cases {
		if got := ValidPrice(c.v); got != c.want {
			t.Errorf("ValidPrice(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}
