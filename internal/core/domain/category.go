package domain

import (
	"fmt"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
)

// CategoryType restricts which transactions a category is offered for.
type CategoryType string

const (
	IncomeCategory  CategoryType = "INCOME"
	ExpenseCategory CategoryType = "EXPENSE"
)

// Category tags transactions. Transactions store the category name, so renaming or
// deleting a category leaves historical transactions with the old label.
type Category struct {
	CategoryID   string       `json:"categoryID"`
	Name         string       `json:"name"`
	CategoryType CategoryType `json:"categoryType"`
	AuditFields
}

// Validate checks that the category has a name and a known type.
func (c Category) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
	}
	if c.CategoryType != IncomeCategory && c.CategoryType != ExpenseCategory {
		return fmt.Errorf("%w: unknown category type '%s'", apperrors.ErrValidation, c.CategoryType)
	}
	return nil
}
