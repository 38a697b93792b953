package repositories

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// CategoryRepositoryFacade persists transaction categories.
type CategoryRepositoryFacade interface {
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories returns categories in creation order, restricted to categoryType when non-nil.
	ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error)

	SaveCategory(ctx context.Context, category domain.Category) error
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category. Deleting an absent id is not an error.
	DeleteCategory(ctx context.Context, categoryID string) error
}
