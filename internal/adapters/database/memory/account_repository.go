package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
)

type accountRepository struct {
	store *Store
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

func accountID(a domain.Account) string { return a.AccountID }

func (r *accountRepository) FindAccountByID(_ context.Context, id string) (*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := indexOf(r.store.accounts, accountID, id)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}
	acc := r.store.accounts[i]
	return &acc, nil
}

func (r *accountRepository) ListAccounts(_ context.Context) ([]domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneSlice(r.store.accounts), nil
}

func (r *accountRepository) SaveAccount(_ context.Context, account domain.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if indexOf(r.store.accounts, accountID, account.AccountID) >= 0 {
		return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, account.AccountID)
	}
	r.store.accounts = append(r.store.accounts, account)
	return nil
}

func (r *accountRepository) UpdateAccount(_ context.Context, account domain.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := indexOf(r.store.accounts, accountID, account.AccountID)
	if i < 0 {
		return apperrors.ErrNotFound
	}
	r.store.accounts[i] = account
	return nil
}
