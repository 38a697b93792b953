package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_IsTransfer(t *testing.T) {
	tests := []struct {
		name        string
		transaction domain.Transaction
		want        bool
	}{
		{
			name:        "income",
			transaction: domain.Transaction{TransactionType: domain.Income},
			want:        false,
		},
		{
			name:        "expense",
			transaction: domain.Transaction{TransactionType: domain.Expense},
			want:        false,
		},
		{
			name:        "transfer",
			transaction: domain.Transaction{TransactionType: domain.Transfer, ToAccountID: stringPtr("acc_2")},
			want:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.transaction.IsTransfer())
		})
	}
}

func TestTransaction_Validate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		tx      domain.Transaction
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid income",
			tx: domain.Transaction{
				TransactionID:   "txn_123",
				Date:            now,
				AccountID:       "acc_123",
				TransactionType: domain.Income,
				Category:        "Salary",
				Amount:          decimal.NewFromFloat(100.00),
			},
			wantErr: false,
		},
		{
			name: "valid transfer",
			tx: domain.Transaction{
				TransactionID:   "txn_123",
				Date:            now,
				AccountID:       "acc_123",
				TransactionType: domain.Transfer,
				Amount:          decimal.NewFromFloat(85.00),
				ToAccountID:     stringPtr("acc_456"),
			},
			wantErr: false,
		},
		{
			name: "transfer without destination",
			tx: domain.Transaction{
				Date:            now,
				AccountID:       "acc_123",
				TransactionType: domain.Transfer,
				Amount:          decimal.NewFromFloat(85.00),
			},
			wantErr: true,
			errMsg:  "destination account is required for transfers",
		},
		{
			name: "transfer to same account",
			tx: domain.Transaction{
				Date:            now,
				AccountID:       "acc_123",
				TransactionType: domain.Transfer,
				Amount:          decimal.NewFromFloat(85.00),
				ToAccountID:     stringPtr("acc_123"),
			},
			wantErr: true,
			errMsg:  "must differ from source account",
		},
		{
			name: "expense with destination",
			tx: domain.Transaction{
				Date:            now,
				AccountID:       "acc_123",
				TransactionType: domain.Expense,
				Amount:          decimal.NewFromFloat(10),
				ToAccountID:     stringPtr("acc_456"),
			},
			wantErr: true,
			errMsg:  "only allowed for transfers",
		},
		{
			name: "zero amount",
			tx: domain.Transaction{
				Date:            now,
				AccountID:       "acc_123",
				TransactionType: domain.Expense,
				Amount:          decimal.Zero,
			},
			wantErr: true,
			errMsg:  "amount must be positive",
		},
		{
			name: "unknown type",
			tx: domain.Transaction{
				Date:            now,
				AccountID:       "acc_123",
				TransactionType: "REFUND",
				Amount:          decimal.NewFromInt(1),
			},
			wantErr: true,
			errMsg:  "unknown transaction type",
		},
		{
			name: "missing date",
			tx: domain.Transaction{
				AccountID:       "acc_123",
				TransactionType: domain.Income,
				Amount:          decimal.NewFromInt(1),
			},
			wantErr: true,
			errMsg:  "date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInvestment_Validate(t *testing.T) {
	valid := domain.Investment{
		AssetType:     domain.Stock,
		Ticker:        "PETR4",
		Quantity:      decimal.NewFromInt(100),
		PurchasePrice: decimal.NewFromFloat(30.5),
	}
	assert.NoError(t, valid.Validate())
	assert.True(t, valid.CostBasis().Equal(decimal.NewFromInt(3050)))

	fixedType := valid
	fixedType.AssetType = domain.FixedIncome
	assert.ErrorIs(t, fixedType.Validate(), apperrors.ErrValidation)

	noQuantity := valid
	noQuantity.Quantity = decimal.NewFromInt(-1)
	assert.ErrorContains(t, noQuantity.Validate(), "quantity must be positive")

	noTicker := valid
	noTicker.Ticker = ""
	assert.ErrorContains(t, noTicker.Validate(), "ticker is required")
}

func TestFixedIncomeInvestment_Validate(t *testing.T) {
	valid := domain.FixedIncomeInvestment{
		AssetType:      domain.FixedIncome,
		Name:           "CDB Liquidez Diaria",
		Issuer:         "Banco Inter",
		AmountInvested: decimal.NewFromInt(10000),
		YieldRate:      "100% CDI",
	}
	assert.NoError(t, valid.Validate())

	zero := valid
	zero.AmountInvested = decimal.Zero
	assert.ErrorContains(t, zero.Validate(), "amount invested must be positive")

	wrongType := valid
	wrongType.AssetType = domain.Stock
	assert.ErrorIs(t, wrongType.Validate(), apperrors.ErrValidation)
}

// Helper functions
func stringPtr(s string) *string {
	return &s
}
