package domain

import "time"

// Opportunity is one fee-adjusted cross-exchange arbitrage opportunity,
// derived fresh from a PriceMap snapshot and never mutated afterwards.
// By construction BuyPrice <= SellPrice: the buy side is always assigned
// from whichever exchange quoted the cheaper price.
type Opportunity struct {
	ID           string      `json:"id"`
	Pair         TradingPair `json:"-"`
	Symbol       string      `json:"symbol"`
	BuyExchange  ExchangeID  `json:"buyExchange"`
	SellExchange ExchangeID  `json:"sellExchange"`
	BuyPrice     float64     `json:"buyPrice"`
	SellPrice    float64     `json:"sellPrice"`

	TheoreticalProfit        float64 `json:"theoreticalProfit"`
	TheoreticalProfitPercent float64 `json:"theoreticalProfitPercent"`

	// Fee fields carry the taker rates as percentages on the wire
	// (0.1 means 0.1%), matching the public JSON contract.
	BuyFeePercent  float64 `json:"buyFee"`
	SellFeePercent float64 `json:"sellFee"`

	RealBuyPrice      float64 `json:"realBuyPrice"`
	RealSellPrice     float64 `json:"realSellPrice"`
	RealProfit        float64 `json:"realProfit"`
	RealProfitPercent float64 `json:"realProfitPercent"`

	ObservedAt time.Time `json:"timestamp"`
}

// ScanResult is the outcome of one full universe scan: every opportunity
// found across the processed pairs, globally sorted descending by real
// profit percent.
type ScanResult struct {
	Opportunities  []Opportunity `json:"opportunities"`
	TotalPairs     int           `json:"totalPairs"`
	ProcessedPairs int           `json:"processedPairs"`
	Timestamp      time.Time     `json:"timestamp"`
}
