package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType indicates how a transaction moves money.
type TransactionType string

const (
	Income   TransactionType = "INCOME"
	Expense  TransactionType = "EXPENSE"
	Transfer TransactionType = "TRANSFER"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case Income, Expense, Transfer:
		return true
	}
	return false
}

// Transaction is a single cash movement on an account.
// Amount is always a non-negative magnitude; the direction comes from TransactionType.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`         // Primary Key (UUID)
	Date            time.Time       `json:"date"`                  // When the movement happened
	AccountID       string          `json:"accountID"`             // Source account
	TransactionType TransactionType `json:"transactionType"`       // INCOME, EXPENSE or TRANSFER
	Category        string          `json:"category"`              // Category name, not ID
	Description     string          `json:"description"`           // Free text
	Amount          decimal.Decimal `json:"amount"`                // Positive magnitude
	PaymentMethod   string          `json:"paymentMethod"`         // e.g. PIX, debit card
	ToAccountID     *string         `json:"toAccountID,omitempty"` // Destination, transfers only
	Sequence        int64           `json:"-"`                     // Insertion ordinal, breaks date ties
	AuditFields
}

// IsTransfer reports whether the transaction moves money between two accounts.
func (t Transaction) IsTransfer() bool {
	return t.TransactionType == Transfer
}

// Validate checks the invariants every stored transaction must satisfy.
func (t Transaction) Validate() error {
	if t.AccountID == "" {
		return fmt.Errorf("%w: account ID is required", apperrors.ErrValidation)
	}
	if !t.TransactionType.IsValid() {
		return fmt.Errorf("%w: unknown transaction type '%s'", apperrors.ErrValidation, t.TransactionType)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: transaction date is required", apperrors.ErrValidation)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	if t.IsTransfer() {
		if t.ToAccountID == nil || *t.ToAccountID == "" {
			return fmt.Errorf("%w: destination account is required for transfers", apperrors.ErrValidation)
		}
		if *t.ToAccountID == t.AccountID {
			return fmt.Errorf("%w: transfer destination must differ from source account", apperrors.ErrValidation)
		}
	} else if t.ToAccountID != nil {
		return fmt.Errorf("%w: destination account is only allowed for transfers", apperrors.ErrValidation)
	}
	return nil
}
