package repositories

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
// Listings are always in display order: date descending, ties by insertion sequence.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves every transaction.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsPage retrieves at most limit transactions after the position encoded
	// in nextToken. It returns the transactions, a token for the next page (nil on the last
	// page), and an error.
	ListTransactionsPage(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// MaxSequence returns the highest insertion sequence stored, or 0 when empty.
	MaxSequence(ctx context.Context) (int64, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction. Deleting an absent id is not an error.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
