package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard/internal/utils/accounting"
	"github.com/SscSPs/finance_dashboard/internal/utils/pagination"
)

type transactionRepository struct {
	store *Store
}

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

func transactionID(t domain.Transaction) string { return t.TransactionID }

func (r *transactionRepository) FindTransactionByID(_ context.Context, id string) (*domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := indexOf(r.store.transactions, transactionID, id)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}
	txn := r.store.transactions[i]
	return &txn, nil
}

// sorted returns a copy in display order. Callers must hold the read lock.
func (r *transactionRepository) sorted() []domain.Transaction {
	out := cloneSlice(r.store.transactions)
	accounting.SortForDisplay(out)
	return out
}

func (r *transactionRepository) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.sorted(), nil
}

func (r *transactionRepository) ListTransactionsPage(_ context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		return nil, nil, fmt.Errorf("%w: limit must be positive", apperrors.ErrValidation)
	}

	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &c
	}

	r.store.mu.RLock()
	all := r.sorted()
	r.store.mu.RUnlock()

	start := 0
	if cursor != nil {
		start = len(all)
		for i, txn := range all {
			if cursor.After(txn.Date, txn.Sequence) {
				start = i
				break
			}
		}
	}

	end := start + limit
	if end >= len(all) {
		return all[start:], nil, nil
	}
	page := all[start:end]
	last := page[len(page)-1]
	token := pagination.EncodeToken(last.Date, last.Sequence)
	return page, &token, nil
}

func (r *transactionRepository) MaxSequence(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var maxSeq int64
	for _, txn := range r.store.transactions {
		if txn.Sequence > maxSeq {
			maxSeq = txn.Sequence
		}
	}
	return maxSeq, nil
}

func (r *transactionRepository) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if indexOf(r.store.transactions, transactionID, txn.TransactionID) >= 0 {
		return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, txn.TransactionID)
	}
	r.store.transactions = append(r.store.transactions, txn)
	return nil
}

func (r *transactionRepository) UpdateTransaction(_ context.Context, txn domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := indexOf(r.store.transactions, transactionID, txn.TransactionID)
	if i < 0 {
		return apperrors.ErrNotFound
	}
	r.store.transactions[i] = txn
	return nil
}

func (r *transactionRepository) DeleteTransaction(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if i := indexOf(r.store.transactions, transactionID, id); i >= 0 {
		r.store.transactions = removeAt(r.store.transactions, i)
	}
	return nil
}
