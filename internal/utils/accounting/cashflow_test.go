package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withCategory(t domain.Transaction, category string) domain.Transaction {
	t.Category = category
	return t
}

func TestMonthlyOverview(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	transactions := []domain.Transaction{
		withCategory(txn(1, -2, "A", domain.Income, "9999"), "Salary"), // February
		withCategory(txn(2, 0, "A", domain.Income, "1000"), "Salary"),
		withCategory(txn(3, 1, "A", domain.Expense, "200"), "Food"),
		withCategory(txn(4, 4, "A", domain.Expense, "50"), "Transport"),
		withCategory(txn(5, 4, "A", domain.Expense, "100"), "Food"),
		transfer(6, 5, "A", "B", "300"),
	}

	overview := MonthlyOverview(transactions, now)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), overview.MonthStart)
	assertDecimal(t, "1000", overview.Income)
	assertDecimal(t, "350", overview.Expense)
	assertDecimal(t, "650", overview.Net)
	assertDecimal(t, "65", overview.SavingsRate)

	require.Len(t, overview.ExpenseByCategory, 2)
	assert.Equal(t, "Food", overview.ExpenseByCategory[0].Category)
	assertDecimal(t, "300", overview.ExpenseByCategory[0].Amount)
	assert.Equal(t, "Transport", overview.ExpenseByCategory[1].Category)

	require.Len(t, overview.Daily, 10)
	assertDecimal(t, "1000", overview.Daily[0].Income)
	assertDecimal(t, "200", overview.Daily[1].Expense)
	assertDecimal(t, "150", overview.Daily[4].Expense)
	assertDecimal(t, "0", overview.Daily[5].Expense, "transfers are not expenses")

	require.Len(t, overview.RecentTransactions, 5)
	assert.Equal(t, int64(6), overview.RecentTransactions[0].Sequence)
	assert.Equal(t, int64(4), overview.RecentTransactions[1].Sequence)
	assert.Equal(t, int64(5), overview.RecentTransactions[2].Sequence)
}

func TestMonthlyOverview_NoIncome(t *testing.T) {
	now := time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC)
	overview := MonthlyOverview([]domain.Transaction{txn(1, 0, "A", domain.Expense, "40")}, now)

	assertDecimal(t, "0", overview.SavingsRate)
	assertDecimal(t, "-40", overview.Net)
	assert.Len(t, overview.Daily, 3)
}

func TestCashFlowDays_WalksBackwardsFromTotal(t *testing.T) {
	transactions := []domain.Transaction{
		txn(1, 1, "A", domain.Income, "500"),
		txn(2, 2, "A", domain.Expense, "200"),
		transfer(3, 2, "A", "B", "300"),
	}

	days := CashFlowDays(transactions, dec("1300"))

	require.Len(t, days, 2)
	assert.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), days[0].Day)
	assertDecimal(t, "1300", days[0].ClosingTotal)
	assert.Len(t, days[0].Transactions, 2)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), days[1].Day)
	assertDecimal(t, "1500", days[1].ClosingTotal)
}

func TestCashFlowDays_Empty(t *testing.T) {
	days := CashFlowDays(nil, dec("10"))

	assert.NotNil(t, days)
	assert.Empty(t, days)
}
