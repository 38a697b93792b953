package repositories

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// InvestmentRepositoryFacade persists variable-income positions.
// Listings are in creation order. Deleting an absent id is not an error.
type InvestmentRepositoryFacade interface {
	FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error)
	ListInvestments(ctx context.Context) ([]domain.Investment, error)
	SaveInvestment(ctx context.Context, inv domain.Investment) error
	UpdateInvestment(ctx context.Context, inv domain.Investment) error
	DeleteInvestment(ctx context.Context, investmentID string) error
}

// FixedIncomeRepositoryFacade persists fixed-income holdings, with the same conventions
// as InvestmentRepositoryFacade.
type FixedIncomeRepositoryFacade interface {
	FindFixedIncomeByID(ctx context.Context, investmentID string) (*domain.FixedIncomeInvestment, error)
	ListFixedIncome(ctx context.Context) ([]domain.FixedIncomeInvestment, error)
	SaveFixedIncome(ctx context.Context, fi domain.FixedIncomeInvestment) error
	UpdateFixedIncome(ctx context.Context, fi domain.FixedIncomeInvestment) error
	DeleteFixedIncome(ctx context.Context, investmentID string) error
}
