package dto

import (
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest defines a new variable-income position.
type CreateInvestmentRequest struct {
	AssetType     domain.AssetType `json:"assetType" binding:"required,oneof=STOCK REAL_ESTATE_FUND CRYPTO INTERNATIONAL_STOCK REIT"`
	Ticker        string           `json:"ticker" binding:"required"`
	Quantity      decimal.Decimal  `json:"quantity" binding:"required,gt=0"`
	PurchasePrice decimal.Decimal  `json:"purchasePrice" binding:"required,gt=0"`
	PurchaseDate  time.Time        `json:"purchaseDate" binding:"required"`
}

// UpdateInvestmentRequest carries a partial update. Nil fields are left unchanged.
type UpdateInvestmentRequest struct {
	AssetType     *domain.AssetType `json:"assetType" binding:"omitempty,oneof=STOCK REAL_ESTATE_FUND CRYPTO INTERNATIONAL_STOCK REIT"`
	Ticker        *string           `json:"ticker" binding:"omitempty,min=1"`
	Quantity      *decimal.Decimal  `json:"quantity" binding:"omitempty,gt=0"`
	PurchasePrice *decimal.Decimal  `json:"purchasePrice" binding:"omitempty,gt=0"`
	PurchaseDate  *time.Time        `json:"purchaseDate"`
}

// CreateFixedIncomeRequest defines a new fixed-income holding.
type CreateFixedIncomeRequest struct {
	Name           string          `json:"name" binding:"required"`
	Issuer         string          `json:"issuer"`
	AmountInvested decimal.Decimal `json:"amountInvested" binding:"required,gt=0"`
	YieldRate      string          `json:"yieldRate"`
	PurchaseDate   time.Time       `json:"purchaseDate" binding:"required"`
	MaturityDate   time.Time       `json:"maturityDate"`
}

// UpdateFixedIncomeRequest carries a partial update. Nil fields are left unchanged.
type UpdateFixedIncomeRequest struct {
	Name           *string          `json:"name" binding:"omitempty,min=1"`
	Issuer         *string          `json:"issuer"`
	AmountInvested *decimal.Decimal `json:"amountInvested" binding:"omitempty,gt=0"`
	YieldRate      *string          `json:"yieldRate"`
	PurchaseDate   *time.Time       `json:"purchaseDate"`
	MaturityDate   *time.Time       `json:"maturityDate"`
}

// ListInvestmentsResponse wraps the variable-income positions.
type ListInvestmentsResponse struct {
	Investments []domain.Investment `json:"investments"`
}

// ListFixedIncomeResponse wraps the fixed-income holdings.
type ListFixedIncomeResponse struct {
	FixedIncome []domain.FixedIncomeInvestment `json:"fixedIncome"`
}
