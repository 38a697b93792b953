// Package memory implements the repository ports on top of process memory.
// It is the default storage; nothing survives a restart.
package memory

import (
	"sync"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
)

// Store holds every collection behind a single lock. Collections keep creation order.
type Store struct {
	mu           sync.RWMutex
	accounts     []domain.Account
	transactions []domain.Transaction
	investments  []domain.Investment
	fixedIncome  []domain.FixedIncomeInvestment
	categories   []domain.Category
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// NewRepositoryProvider exposes a store through the repository ports.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     &accountRepository{store: store},
		TransactionRepo: &transactionRepository{store: store},
		InvestmentRepo:  &investmentRepository{store: store},
		FixedIncomeRepo: &fixedIncomeRepository{store: store},
		CategoryRepo:    &categoryRepository{store: store},
	}
}

func indexOf[T any](items []T, id func(T) string, want string) int {
	for i, item := range items {
		if id(item) == want {
			return i
		}
	}
	return -1
}

func removeAt[T any](items []T, i int) []T {
	return append(items[:i:i], items[i+1:]...)
}

func cloneSlice[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
