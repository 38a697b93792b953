package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

const recentTransactionsLimit = 5

// StartOfMonth returns midnight of the first day of now's month, in now's location.
func StartOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// MonthlyOverview summarizes the month containing now. Transfers are excluded from every
// figure. The daily series covers day 1 up to and including today.
func MonthlyOverview(transactions []domain.Transaction, now time.Time) domain.MonthlyOverview {
	loc := now.Location()
	monthStart := StartOfMonth(now)

	income := decimal.Zero
	expense := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)

	daily := make([]domain.DailyFlow, now.Day())
	for i := range daily {
		daily[i] = domain.DailyFlow{
			Day:     monthStart.AddDate(0, 0, i),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
	}

	for _, txn := range transactions {
		if txn.IsTransfer() || txn.Date.Before(monthStart) {
			continue
		}

		dayIdx := -1
		day := startOfDay(txn.Date, loc)
		if day.Year() == monthStart.Year() && day.Month() == monthStart.Month() && day.Day() <= len(daily) {
			dayIdx = day.Day() - 1
		}

		switch txn.TransactionType {
		case domain.Income:
			income = income.Add(txn.Amount)
			if dayIdx >= 0 {
				daily[dayIdx].Income = daily[dayIdx].Income.Add(txn.Amount)
			}
		case domain.Expense:
			expense = expense.Add(txn.Amount)
			byCategory[txn.Category] = byCategory[txn.Category].Add(txn.Amount)
			if dayIdx >= 0 {
				daily[dayIdx].Expense = daily[dayIdx].Expense.Add(txn.Amount)
			}
		}
	}

	net := income.Sub(expense)
	savingsRate := decimal.Zero
	if income.IsPositive() {
		savingsRate = net.Div(income).Mul(hundred)
	}

	return domain.MonthlyOverview{
		MonthStart:         monthStart,
		Income:             income,
		Expense:            expense,
		Net:                net,
		SavingsRate:        savingsRate,
		ExpenseByCategory:  rankCategories(byCategory),
		Daily:              daily,
		RecentTransactions: recent(transactions, recentTransactionsLimit),
	}
}

func rankCategories(byCategory map[string]decimal.Decimal) []domain.CategoryAmount {
	out := make([]domain.CategoryAmount, 0, len(byCategory))
	for name, amount := range byCategory {
		out = append(out, domain.CategoryAmount{Category: name, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func recent(transactions []domain.Transaction, limit int) []domain.Transaction {
	sorted := make([]domain.Transaction, len(transactions))
	copy(sorted, transactions)
	SortForDisplay(sorted)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// CashFlowDays groups transactions by UTC day, newest first, and walks the combined
// balance backwards from totalBalance: each day's ClosingTotal is the total after that
// day's movements, and the previous day closes at that value minus the day's net effect.
func CashFlowDays(transactions []domain.Transaction, totalBalance decimal.Decimal) []domain.CashFlowDay {
	sorted := make([]domain.Transaction, len(transactions))
	copy(sorted, transactions)
	SortForDisplay(sorted)

	var days []domain.CashFlowDay
	index := make(map[time.Time]int)
	for _, txn := range sorted {
		day := startOfDay(txn.Date, time.UTC)
		i, ok := index[day]
		if !ok {
			i = len(days)
			index[day] = i
			days = append(days, domain.CashFlowDay{Day: day})
		}
		days[i].Transactions = append(days[i].Transactions, txn)
	}

	sort.SliceStable(days, func(i, j int) bool { return days[i].Day.After(days[j].Day) })

	running := totalBalance
	for i := range days {
		days[i].ClosingTotal = running
		delta := decimal.Zero
		for _, txn := range days[i].Transactions {
			delta = delta.Add(NetEffect(txn))
		}
		running = running.Sub(delta)
	}
	if days == nil {
		days = []domain.CashFlowDay{}
	}
	return days
}
