package services

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// DashboardSvcFacade assembles the read-only views. Results are memoized and only
// recomputed when the ledger or market version (or the calendar day) changes.
type DashboardSvcFacade interface {
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
	MonthlyOverview(ctx context.Context) (*domain.MonthlyOverview, error)
	CashFlow(ctx context.Context) ([]domain.CashFlowDay, error)
	Portfolio(ctx context.Context) (*domain.PortfolioView, error)
}
