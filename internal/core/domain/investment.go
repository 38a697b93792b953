package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AssetType classifies a holding.
type AssetType string

const (
	FixedIncome        AssetType = "FIXED_INCOME"
	Stock              AssetType = "STOCK"
	RealEstateFund     AssetType = "REAL_ESTATE_FUND"
	Crypto             AssetType = "CRYPTO"
	InternationalStock AssetType = "INTERNATIONAL_STOCK"
	REIT               AssetType = "REIT"
)

// IsVariableIncome reports whether the asset type is valued from market prices.
func (a AssetType) IsVariableIncome() bool {
	switch a {
	case Stock, RealEstateFund, Crypto, InternationalStock, REIT:
		return true
	}
	return false
}

// Investment is a variable-income position valued from the market price of its ticker.
type Investment struct {
	InvestmentID  string          `json:"investmentID"`  // Primary Key (UUID)
	AssetType     AssetType       `json:"assetType"`     // Never FIXED_INCOME
	Ticker        string          `json:"ticker"`        // e.g. PETR4, AAPL, BTC
	Quantity      decimal.Decimal `json:"quantity"`      // Units held, > 0
	PurchasePrice decimal.Decimal `json:"purchasePrice"` // Unit cost, > 0
	PurchaseDate  time.Time       `json:"purchaseDate"`
	AuditFields
}

// CostBasis returns PurchasePrice × Quantity.
func (i Investment) CostBasis() decimal.Decimal {
	return i.PurchasePrice.Mul(i.Quantity)
}

// Validate checks the invariants of a variable-income position.
func (i Investment) Validate() error {
	if !i.AssetType.IsVariableIncome() {
		return fmt.Errorf("%w: asset type '%s' is not a variable income type", apperrors.ErrValidation, i.AssetType)
	}
	if i.Ticker == "" {
		return fmt.Errorf("%w: ticker is required", apperrors.ErrValidation)
	}
	if !i.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if !i.PurchasePrice.IsPositive() {
		return fmt.Errorf("%w: purchase price must be positive", apperrors.ErrValidation)
	}
	return nil
}

// FixedIncomeInvestment is a fixed-income holding valued at cost.
// YieldRate is descriptive only (e.g. "110% CDI"); no yield is accrued.
type FixedIncomeInvestment struct {
	InvestmentID   string          `json:"investmentID"` // Primary Key (UUID)
	AssetType      AssetType       `json:"assetType"`    // Always FIXED_INCOME
	Name           string          `json:"name"`
	Issuer         string          `json:"issuer"`
	AmountInvested decimal.Decimal `json:"amountInvested"` // > 0
	YieldRate      string          `json:"yieldRate"`
	PurchaseDate   time.Time       `json:"purchaseDate"`
	MaturityDate   time.Time       `json:"maturityDate"`
	AuditFields
}

// Validate checks the invariants of a fixed-income holding.
func (f FixedIncomeInvestment) Validate() error {
	if f.AssetType != FixedIncome {
		return fmt.Errorf("%w: asset type must be %s", apperrors.ErrValidation, FixedIncome)
	}
	if f.Name == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if !f.AmountInvested.IsPositive() {
		return fmt.Errorf("%w: amount invested must be positive", apperrors.ErrValidation)
	}
	return nil
}
