package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HoldingValuation is a variable-income position marked to the latest market price.
// PLPercent is expressed in percentage points and is zero when the cost basis is zero.
type HoldingValuation struct {
	Investment
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	MarketValue  decimal.Decimal `json:"marketValue"`
	CostBasis    decimal.Decimal `json:"costBasis"`
	PL           decimal.Decimal `json:"pl"`
	PLPercent    decimal.Decimal `json:"plPercent"`
	Signal       Signal          `json:"signal,omitempty"` // empty when no quote is known
	Quoted       bool            `json:"quoted"`           // false when valued at purchase price
}

// PortfolioSummary aggregates every holding against the latest prices.
type PortfolioSummary struct {
	TotalInvested  decimal.Decimal         `json:"totalInvested"`
	PortfolioValue decimal.Decimal         `json:"portfolioValue"`
	PortfolioPL    decimal.Decimal         `json:"portfolioPL"`
	PLPercent      decimal.Decimal         `json:"plPercent"`
	Holdings       []HoldingValuation      `json:"holdings"`
	BestPerformer  *HoldingValuation       `json:"bestPerformer,omitempty"`
	FixedIncome    []FixedIncomeInvestment `json:"fixedIncome"`
}

// PortfolioGroups splits holdings the way the portfolio screen lists them.
type PortfolioGroups struct {
	Domestic      []HoldingValuation      `json:"domestic"`      // STOCK and REAL_ESTATE_FUND
	International []HoldingValuation      `json:"international"` // INTERNATIONAL_STOCK and REIT
	Crypto        []HoldingValuation      `json:"crypto"`
	FixedIncome   []FixedIncomeInvestment `json:"fixedIncome"`
}

// DashboardSummary is the read-only aggregate exposed to presentation.
type DashboardSummary struct {
	LedgerVersion   uint64                     `json:"ledgerVersion"`
	MarketVersion   uint64                     `json:"marketVersion"`
	Accounts        []Account                  `json:"accounts"` // Balance filled in
	AccountBalances map[string]decimal.Decimal `json:"accountBalances"`
	TotalBalance    decimal.Decimal            `json:"totalBalance"`
	Portfolio       PortfolioSummary           `json:"portfolio"`
}

// CategoryAmount is the total spent under a category name.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// DailyFlow is the income and expense booked on one day.
type DailyFlow struct {
	Day     time.Time       `json:"day"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlyOverview summarizes the current month, transfers excluded.
type MonthlyOverview struct {
	MonthStart         time.Time        `json:"monthStart"`
	Income             decimal.Decimal  `json:"income"`
	Expense            decimal.Decimal  `json:"expense"`
	Net                decimal.Decimal  `json:"net"`
	SavingsRate        decimal.Decimal  `json:"savingsRate"` // percentage points, 0 without income
	ExpenseByCategory  []CategoryAmount `json:"expenseByCategory"`
	Daily              []DailyFlow      `json:"daily"`
	RecentTransactions []Transaction    `json:"recentTransactions"`
}

// CashFlowDay groups the transactions of one day with the total balance at its close.
type CashFlowDay struct {
	Day          time.Time       `json:"day"`
	ClosingTotal decimal.Decimal `json:"closingTotal"`
	Transactions []Transaction   `json:"transactions"`
}

// PortfolioView pairs the portfolio aggregate with its screen groupings.
type PortfolioView struct {
	Summary PortfolioSummary `json:"summary"`
	Groups  PortfolioGroups  `json:"groups"`
}
