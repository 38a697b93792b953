package domain

import (
	"fmt"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Account represents a bank account tracked by the dashboard.
// Balance is never persisted; it is always derived from InitialBalance and the
// transaction log by the balance engine.
type Account struct {
	AccountID      string          `json:"accountID"`      // Primary Key (UUID)
	Name           string          `json:"name"`           // User-defined name
	Bank           string          `json:"bank"`           // Institution holding the account
	InitialBalance decimal.Decimal `json:"initialBalance"` // Opening balance before any transaction
	Balance        decimal.Decimal `json:"balance"`        // Derived, filled in by read views only
	AuditFields
}

// Validate checks that the account can be stored.
func (a Account) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	return nil
}
