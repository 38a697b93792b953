package domain

import (
	"github.com/shopspring/decimal"
)

// Signal is the trading hint attached to a market quote.
type Signal string

const (
	Buy  Signal = "BUY"
	Sell Signal = "SELL"
	Hold Signal = "HOLD"
)

var (
	hundred       = decimal.NewFromInt(100)
	buyThreshold  = decimal.NewFromInt(2)
	sellThreshold = decimal.NewFromInt(-2)
)

// MarketInfo is the latest quote for a ticker.
// Change is the absolute delta applied on the last tick.
type MarketInfo struct {
	Price  decimal.Decimal `json:"price"`
	Change decimal.Decimal `json:"change"`
	Signal Signal          `json:"signal"`
}

// MarketData maps tickers to their latest quote.
type MarketData map[string]MarketInfo

// Clone returns a shallow copy of the map.
func (m MarketData) Clone() MarketData {
	out := make(MarketData, len(m))
	for ticker, info := range m {
		out[ticker] = info
	}
	return out
}

// Merge copies every entry of patch into m, overwriting existing tickers.
func (m MarketData) Merge(patch MarketData) {
	for ticker, info := range patch {
		m[ticker] = info
	}
}

// ChangePercent returns change relative to the pre-change price (price − change), in
// percentage points. A zero pre-change price yields zero.
func ChangePercent(price, change decimal.Decimal) decimal.Decimal {
	previous := price.Sub(change)
	if previous.IsZero() {
		return decimal.Zero
	}
	return change.Div(previous).Mul(hundred)
}

// SignalFor derives the trading signal for a quote: BUY above +2%, SELL below -2%,
// HOLD otherwise (including the exact boundaries and a zero pre-change price).
func SignalFor(price, change decimal.Decimal) Signal {
	if price.Sub(change).IsZero() {
		return Hold
	}
	pct := ChangePercent(price, change)
	switch {
	case pct.GreaterThan(buyThreshold):
		return Buy
	case pct.LessThan(sellThreshold):
		return Sell
	default:
		return Hold
	}
}

// Mover is a quote ranked by its percentage change.
type Mover struct {
	Ticker        string          `json:"ticker"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"changePercent"`
	Signal        Signal          `json:"signal"`
}
