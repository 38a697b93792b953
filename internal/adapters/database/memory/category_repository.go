package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
)

type categoryRepository struct {
	store *Store
}

var _ portsrepo.CategoryRepositoryFacade = (*categoryRepository)(nil)

func categoryID(c domain.Category) string { return c.CategoryID }

func (r *categoryRepository) FindCategoryByID(_ context.Context, id string) (*domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := indexOf(r.store.categories, categoryID, id)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}
	cat := r.store.categories[i]
	return &cat, nil
}

func (r *categoryRepository) ListCategories(_ context.Context, categoryType *domain.CategoryType) ([]domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Category, 0, len(r.store.categories))
	for _, cat := range r.store.categories {
		if categoryType != nil && cat.CategoryType != *categoryType {
			continue
		}
		out = append(out, cat)
	}
	return out, nil
}

func (r *categoryRepository) SaveCategory(_ context.Context, category domain.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if indexOf(r.store.categories, categoryID, category.CategoryID) >= 0 {
		return fmt.Errorf("%w: category with ID %s already exists", apperrors.ErrDuplicate, category.CategoryID)
	}
	r.store.categories = append(r.store.categories, category)
	return nil
}

func (r *categoryRepository) UpdateCategory(_ context.Context, category domain.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := indexOf(r.store.categories, categoryID, category.CategoryID)
	if i < 0 {
		return apperrors.ErrNotFound
	}
	r.store.categories[i] = category
	return nil
}

func (r *categoryRepository) DeleteCategory(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if i := indexOf(r.store.categories, categoryID, id); i >= 0 {
		r.store.categories = removeAt(r.store.categories, i)
	}
	return nil
}
