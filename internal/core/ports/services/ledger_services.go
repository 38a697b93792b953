package services

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/SscSPs/finance_dashboard/internal/dto"
)

// LedgerReaderSvc defines read operations over the ledger collections
type LedgerReaderSvc interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)

	// ListTransactions returns a page of transactions in display order and the token of
	// the next page, nil on the last page.
	ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error)
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)

	ListInvestments(ctx context.Context) ([]domain.Investment, error)
	GetInvestment(ctx context.Context, investmentID string) (*domain.Investment, error)

	ListFixedIncome(ctx context.Context) ([]domain.FixedIncomeInvestment, error)
	GetFixedIncome(ctx context.Context, investmentID string) (*domain.FixedIncomeInvestment, error)

	// ListCategories returns every category, or only those of categoryType when non-nil.
	ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error)

	// Snapshot returns a consistent copy of every collection at the current version.
	Snapshot(ctx context.Context) (domain.LedgerSnapshot, error)

	// Version returns the counter bumped by every successful mutation.
	Version() uint64
}

// LedgerWriterSvc defines the mutations of the ledger. Updates merge the non-nil fields of
// the request and fail with apperrors.ErrNotFound for unknown ids; deletes are idempotent.
type LedgerWriterSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error

	CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest) (*domain.Investment, error)
	UpdateInvestment(ctx context.Context, investmentID string, req dto.UpdateInvestmentRequest) (*domain.Investment, error)
	DeleteInvestment(ctx context.Context, investmentID string) error

	CreateFixedIncome(ctx context.Context, req dto.CreateFixedIncomeRequest) (*domain.FixedIncomeInvestment, error)
	UpdateFixedIncome(ctx context.Context, investmentID string, req dto.UpdateFixedIncomeRequest) (*domain.FixedIncomeInvestment, error)
	DeleteFixedIncome(ctx context.Context, investmentID string) error

	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

// LedgerNotifierSvc lets other components react to ledger mutations.
type LedgerNotifierSvc interface {
	// Subscribe registers listener for every future change and returns a func that
	// removes it. Listeners run synchronously after the mutation is committed and must
	// not call back into the ledger's write methods.
	Subscribe(listener func(domain.LedgerChange)) (cancel func())
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
	LedgerNotifierSvc
}
