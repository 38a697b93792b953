package marketdata

import (
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

type referenceQuote struct {
	ticker string
	price  string
	change string
	signal domain.Signal
}

// referenceQuotes seeds the simulated market. Signals are the published ones and are only
// recomputed once a ticker moves.
var referenceQuotes = []referenceQuote{
	// B3
	{"PETR4", "38.15", "0.5", domain.Hold},
	{"VALE3", "61.50", "-0.8", domain.Hold},
	{"ITUB4", "32.20", "0.1", domain.Hold},
	{"BBDC4", "13.50", "-0.2", domain.Sell},
	{"MGLU3", "12.80", "1.2", domain.Buy},
	{"WEGE3", "35.70", "0.4", domain.Hold},
	{"ABEV3", "14.10", "0.05", domain.Hold},
	{"MXRF11", "10.80", "0.05", domain.Hold},
	{"HGLG11", "165.40", "1.1", domain.Buy},
	{"KNCR11", "102.30", "-0.1", domain.Hold},
	// International
	{"AAPL", "172.50", "-1.2", domain.Hold},
	{"GOOGL", "175.30", "2.1", domain.Buy},
	{"MSFT", "420.70", "1.5", domain.Buy},
	{"AMZN", "185.00", "-0.5", domain.Hold},
	{"TSLA", "180.20", "-5.6", domain.Sell},
	{"O", "62.45", "-0.25", domain.Hold},
	{"SPG", "150.80", "0.9", domain.Hold},
	// Crypto
	{"BTC", "68500.00", "1200", domain.Buy},
	{"ETH", "3500.00", "-50", domain.Sell},
	{"SOL", "170.00", "15", domain.Buy},
}

func newReferenceTable() map[string]domain.MarketInfo {
	table := make(map[string]domain.MarketInfo, len(referenceQuotes))
	for _, q := range referenceQuotes {
		table[q.ticker] = domain.MarketInfo{
			Price:  decimal.RequireFromString(q.price),
			Change: decimal.RequireFromString(q.change),
			Signal: q.signal,
		}
	}
	return table
}
