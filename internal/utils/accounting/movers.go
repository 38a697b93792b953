package accounting

import (
	"sort"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// RankMovers orders quotes by percentage change, largest first, and keeps at most limit.
// A non-positive limit keeps everything.
func RankMovers(data domain.MarketData, limit int) []domain.Mover {
	movers := make([]domain.Mover, 0, len(data))
	for ticker, info := range data {
		movers = append(movers, domain.Mover{
			Ticker:        ticker,
			Price:         info.Price,
			Change:        info.Change,
			ChangePercent: domain.ChangePercent(info.Price, info.Change),
			Signal:        info.Signal,
		})
	}
	sort.Slice(movers, func(i, j int) bool {
		if !movers[i].ChangePercent.Equal(movers[j].ChangePercent) {
			return movers[i].ChangePercent.GreaterThan(movers[j].ChangePercent)
		}
		return movers[i].Ticker < movers[j].Ticker
	})
	if limit > 0 && len(movers) > limit {
		movers = movers[:limit]
	}
	return movers
}
