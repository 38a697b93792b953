package dto

import "github.com/SscSPs/finance_dashboard/internal/core/domain"

// CreateCategoryRequest defines a new transaction category.
type CreateCategoryRequest struct {
	Name         string              `json:"name" binding:"required"`
	CategoryType domain.CategoryType `json:"categoryType" binding:"required,oneof=INCOME EXPENSE"`
}

// UpdateCategoryRequest renames or retypes a category. Transactions keep the old label.
type UpdateCategoryRequest struct {
	Name         *string              `json:"name" binding:"omitempty,min=1"`
	CategoryType *domain.CategoryType `json:"categoryType" binding:"omitempty,oneof=INCOME EXPENSE"`
}

// ListCategoriesParams filters the category listing.
type ListCategoriesParams struct {
	Type *domain.CategoryType `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
}

// ListCategoriesResponse wraps the categories.
type ListCategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}
