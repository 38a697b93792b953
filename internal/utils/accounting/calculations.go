package accounting

import (
	"sort"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NetEffect returns how a transaction changes the combined balance of all accounts.
// Transfers between accounts move nothing at that level.
func NetEffect(txn domain.Transaction) decimal.Decimal {
	switch txn.TransactionType {
	case domain.Income:
		return txn.Amount
	case domain.Expense:
		return txn.Amount.Neg()
	default:
		return decimal.Zero
	}
}

// SortChronologically returns a copy of transactions in ascending date order.
// Equal dates keep insertion order (Sequence).
func SortChronologically(transactions []domain.Transaction) []domain.Transaction {
	sorted := make([]domain.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].Sequence < sorted[j].Sequence
	})
	return sorted
}

// SortForDisplay orders transactions in place by date descending, ties by insertion order.
func SortForDisplay(transactions []domain.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		if !transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].Date.After(transactions[j].Date)
		}
		return transactions[i].Sequence < transactions[j].Sequence
	})
}

// AccountBalances derives the running balance of every account from its initial balance
// and the transaction log, replayed in chronological order regardless of storage order.
//
// Transactions whose source account is unknown are skipped entirely; a transfer to an
// unknown destination still debits its known source. Money is therefore not conserved
// for dangling references.
func AccountBalances(accounts []domain.Account, transactions []domain.Transaction) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal, len(accounts))
	for _, acc := range accounts {
		balances[acc.AccountID] = acc.InitialBalance
	}

	for _, txn := range SortChronologically(transactions) {
		current, ok := balances[txn.AccountID]
		if !ok {
			continue
		}
		switch txn.TransactionType {
		case domain.Income:
			balances[txn.AccountID] = current.Add(txn.Amount)
		case domain.Expense:
			balances[txn.AccountID] = current.Sub(txn.Amount)
		case domain.Transfer:
			balances[txn.AccountID] = current.Sub(txn.Amount)
			if txn.ToAccountID == nil {
				continue
			}
			if dest, ok := balances[*txn.ToAccountID]; ok {
				balances[*txn.ToAccountID] = dest.Add(txn.Amount)
			}
		}
	}
	return balances
}

// TotalBalance sums all account balances.
func TotalBalance(balances map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b)
	}
	return total
}

// WithBalances returns copies of accounts with Balance filled from balances,
// falling back to the initial balance.
func WithBalances(accounts []domain.Account, balances map[string]decimal.Decimal) []domain.Account {
	out := make([]domain.Account, len(accounts))
	for i, acc := range accounts {
		acc.Balance = acc.InitialBalance
		if b, ok := balances[acc.AccountID]; ok {
			acc.Balance = b
		}
		out[i] = acc
	}
	return out
}
