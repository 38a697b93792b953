package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Investment is the investments table row.
type Investment struct {
	InvestmentID  string          `db:"investment_id"`
	AssetType     string          `db:"asset_type"`
	Ticker        string          `db:"ticker"`
	Quantity      decimal.Decimal `db:"quantity"`
	PurchasePrice decimal.Decimal `db:"purchase_price"`
	PurchaseDate  time.Time       `db:"purchase_date"`
	AuditFields
}

// FixedIncome is the fixed_income table row. A zero maturity date is stored as NULL.
type FixedIncome struct {
	InvestmentID   string          `db:"investment_id"`
	Name           string          `db:"name"`
	Issuer         string          `db:"issuer"`
	AmountInvested decimal.Decimal `db:"amount_invested"`
	YieldRate      string          `db:"yield_rate"`
	PurchaseDate   time.Time       `db:"purchase_date"`
	MaturityDate   sql.NullTime    `db:"maturity_date"`
	AuditFields
}
