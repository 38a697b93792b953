package dto

import (
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required"`
	Bank           string          `json:"bank"`
	InitialBalance decimal.Decimal `json:"initialBalance"` // May be zero or negative (overdraft)
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name           *string          `json:"name" binding:"omitempty,min=1"`
	Bank           *string          `json:"bank"`
	InitialBalance *decimal.Decimal `json:"initialBalance"`
}

// AccountResponse defines the data returned for an account.
// Balance is derived from the transaction log at the time of the request.
type AccountResponse struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	Bank           string          `json:"bank"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Balance        decimal.Decimal `json:"balance"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		Bank:           acc.Bank,
		InitialBalance: acc.InitialBalance,
		Balance:        acc.Balance,
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
