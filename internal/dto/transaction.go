package dto

import (
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a cash movement.
// ToAccountID must be set for transfers and omitted otherwise.
type CreateTransactionRequest struct {
	Date            time.Time              `json:"date" binding:"required"`
	AccountID       string                 `json:"accountID" binding:"required"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=INCOME EXPENSE TRANSFER"`
	Category        string                 `json:"category"`
	Description     string                 `json:"description"`
	Amount          decimal.Decimal        `json:"amount" binding:"required,gt=0"`
	PaymentMethod   string                 `json:"paymentMethod"`
	ToAccountID     *string                `json:"toAccountID"`
}

// UpdateTransactionRequest carries a partial update. Nil fields are left unchanged.
// An empty ToAccountID clears the destination, which is needed when a transfer is
// turned into an income or expense.
type UpdateTransactionRequest struct {
	Date            *time.Time              `json:"date"`
	AccountID       *string                 `json:"accountID" binding:"omitempty,min=1"`
	TransactionType *domain.TransactionType `json:"transactionType" binding:"omitempty,oneof=INCOME EXPENSE TRANSFER"`
	Category        *string                 `json:"category"`
	Description     *string                 `json:"description"`
	Amount          *decimal.Decimal        `json:"amount" binding:"omitempty,gt=0"`
	PaymentMethod   *string                 `json:"paymentMethod"`
	ToAccountID     *string                 `json:"toAccountID"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	Date            time.Time              `json:"date"`
	AccountID       string                 `json:"accountID"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Category        string                 `json:"category"`
	Description     string                 `json:"description"`
	Amount          decimal.Decimal        `json:"amount"`
	PaymentMethod   string                 `json:"paymentMethod"`
	ToAccountID     *string                `json:"toAccountID,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	LastUpdatedAt   time.Time              `json:"lastUpdatedAt"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		Date:            txn.Date,
		AccountID:       txn.AccountID,
		TransactionType: txn.TransactionType,
		Category:        txn.Category,
		Description:     txn.Description,
		Amount:          txn.Amount,
		PaymentMethod:   txn.PaymentMethod,
		ToAccountID:     txn.ToAccountID,
		CreatedAt:       txn.CreatedAt,
		LastUpdatedAt:   txn.LastUpdatedAt,
	}
}

// ToListTransactionResponse converts transactions, preserving order.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
