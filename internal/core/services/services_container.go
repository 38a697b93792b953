package services

import (
	"log/slog"

	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/platform/config"
)

// NewServiceContainer wires the ledger, the market cache and the dashboard views.
// The market service is returned idle; the caller starts and stops it.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, feed portssvc.MarketDataFeed, logger *slog.Logger) *portssvc.ServiceContainer {
	ledger := NewLedgerService(repos)

	market := NewMarketService(feed, ledger,
		WithTopMoversLimit(cfg.TopMoversLimit),
		WithMarketLogger(logger),
	)

	dashboard := NewDashboardService(ledger, market)

	return &portssvc.ServiceContainer{
		Ledger:    ledger,
		Market:    market,
		Dashboard: dashboard,
	}
}
