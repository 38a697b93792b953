package services

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// MarketDataFeed is the source of quotes. Implementations own their ticking timer.
type MarketDataFeed interface {
	// FetchPrices returns a quote for every requested ticker.
	FetchPrices(ctx context.Context, tickers []string) (domain.MarketData, error)

	// TopMovers returns the full reference table, unranked.
	TopMovers(ctx context.Context) (domain.MarketData, error)

	// Subscribe starts periodic updates delivered to callback as incremental patches,
	// replacing any previous subscription. The returned func stops them and is idempotent.
	Subscribe(tickers []string, callback func(domain.MarketData)) (unsubscribe func())
}

// MarketSvcFacade keeps the cached quotes for the current holdings up to date.
type MarketSvcFacade interface {
	// Start fetches the initial prices for the holdings and subscribes to updates.
	Start(ctx context.Context) error

	// Stop unsubscribes from the feed. Late updates are dropped.
	Stop()

	// Prices returns a copy of the cached quotes and the version they were read at.
	Prices() (domain.MarketData, uint64)

	// TopMovers returns reference quotes ranked by percentage change, at most limit.
	TopMovers(ctx context.Context, limit int) ([]domain.Mover, error)
}
