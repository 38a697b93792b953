package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
)

type investmentRepository struct {
	store *Store
}

var _ portsrepo.InvestmentRepositoryFacade = (*investmentRepository)(nil)

func investmentID(i domain.Investment) string { return i.InvestmentID }

func (r *investmentRepository) FindInvestmentByID(_ context.Context, id string) (*domain.Investment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := indexOf(r.store.investments, investmentID, id)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}
	inv := r.store.investments[i]
	return &inv, nil
}

func (r *investmentRepository) ListInvestments(_ context.Context) ([]domain.Investment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneSlice(r.store.investments), nil
}

func (r *investmentRepository) SaveInvestment(_ context.Context, inv domain.Investment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if indexOf(r.store.investments, investmentID, inv.InvestmentID) >= 0 {
		return fmt.Errorf("%w: investment with ID %s already exists", apperrors.ErrDuplicate, inv.InvestmentID)
	}
	r.store.investments = append(r.store.investments, inv)
	return nil
}

func (r *investmentRepository) UpdateInvestment(_ context.Context, inv domain.Investment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := indexOf(r.store.investments, investmentID, inv.InvestmentID)
	if i < 0 {
		return apperrors.ErrNotFound
	}
	r.store.investments[i] = inv
	return nil
}

func (r *investmentRepository) DeleteInvestment(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if i := indexOf(r.store.investments, investmentID, id); i >= 0 {
		r.store.investments = removeAt(r.store.investments, i)
	}
	return nil
}

type fixedIncomeRepository struct {
	store *Store
}

var _ portsrepo.FixedIncomeRepositoryFacade = (*fixedIncomeRepository)(nil)

func fixedIncomeID(f domain.FixedIncomeInvestment) string { return f.InvestmentID }

func (r *fixedIncomeRepository) FindFixedIncomeByID(_ context.Context, id string) (*domain.FixedIncomeInvestment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := indexOf(r.store.fixedIncome, fixedIncomeID, id)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}
	fi := r.store.fixedIncome[i]
	return &fi, nil
}

func (r *fixedIncomeRepository) ListFixedIncome(_ context.Context) ([]domain.FixedIncomeInvestment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneSlice(r.store.fixedIncome), nil
}

func (r *fixedIncomeRepository) SaveFixedIncome(_ context.Context, fi domain.FixedIncomeInvestment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if indexOf(r.store.fixedIncome, fixedIncomeID, fi.InvestmentID) >= 0 {
		return fmt.Errorf("%w: fixed income with ID %s already exists", apperrors.ErrDuplicate, fi.InvestmentID)
	}
	r.store.fixedIncome = append(r.store.fixedIncome, fi)
	return nil
}

func (r *fixedIncomeRepository) UpdateFixedIncome(_ context.Context, fi domain.FixedIncomeInvestment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := indexOf(r.store.fixedIncome, fixedIncomeID, fi.InvestmentID)
	if i < 0 {
		return apperrors.ErrNotFound
	}
	r.store.fixedIncome[i] = fi
	return nil
}

func (r *fixedIncomeRepository) DeleteFixedIncome(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if i := indexOf(r.store.fixedIncome, fixedIncomeID, id); i >= 0 {
		r.store.fixedIncome = removeAt(r.store.fixedIncome, i)
	}
	return nil
}
