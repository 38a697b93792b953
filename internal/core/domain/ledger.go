package domain

// LedgerEntity names the collection a ledger mutation touched.
type LedgerEntity string

const (
	AccountEntity     LedgerEntity = "ACCOUNT"
	TransactionEntity LedgerEntity = "TRANSACTION"
	InvestmentEntity  LedgerEntity = "INVESTMENT"
	FixedIncomeEntity LedgerEntity = "FIXED_INCOME"
	CategoryEntity    LedgerEntity = "CATEGORY"
)

// LedgerOp is the kind of mutation applied.
type LedgerOp string

const (
	OpCreate LedgerOp = "CREATE"
	OpUpdate LedgerOp = "UPDATE"
	OpDelete LedgerOp = "DELETE"
)

// LedgerChange is emitted to ledger listeners after every successful mutation.
type LedgerChange struct {
	Entity  LedgerEntity
	Op      LedgerOp
	ID      string
	Version uint64
}

// LedgerSnapshot is a consistent copy of every collection at a given version.
// Transactions are ordered by date descending, ties by insertion order.
type LedgerSnapshot struct {
	Version      uint64
	Accounts     []Account
	Transactions []Transaction
	Investments  []Investment
	FixedIncome  []FixedIncomeInvestment
	Categories   []Category
}

// Tickers returns the distinct tickers of the variable-income holdings, in holding order.
func (s LedgerSnapshot) Tickers() []string {
	seen := make(map[string]bool, len(s.Investments))
	tickers := make([]string, 0, len(s.Investments))
	for _, inv := range s.Investments {
		if seen[inv.Ticker] {
			continue
		}
		seen[inv.Ticker] = true
		tickers = append(tickers, inv.Ticker)
	}
	return tickers
}
