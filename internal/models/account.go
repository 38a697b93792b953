package models

import (
	"github.com/shopspring/decimal"
)

// Account is the accounts table row. The current balance is never stored.
type Account struct {
	AccountID      string          `db:"account_id"`
	Name           string          `db:"name"`
	Bank           string          `db:"bank"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	AuditFields
}

// Category is the categories table row.
type Category struct {
	CategoryID   string `db:"category_id"`
	Name         string `db:"name"`
	CategoryType string `db:"category_type"`
	AuditFields
}
