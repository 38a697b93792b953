package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the transactions table row.
// Sequence is a bigint assigned by the service, used to order rows sharing a date.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	Sequence        int64           `db:"sequence"`
	Date            time.Time       `db:"transaction_date"`
	AccountID       string          `db:"account_id"`
	TransactionType string          `db:"transaction_type"`
	Category        string          `db:"category"`
	Description     string          `db:"description"`
	Amount          decimal.Decimal `db:"amount"`
	PaymentMethod   string          `db:"payment_method"`
	ToAccountID     sql.NullString  `db:"to_account_id"` // Nullable, transfers only
	AuditFields
}
