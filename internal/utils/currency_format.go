package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney renders amount in the given ISO currency, e.g. 1234.5 BRL -> "R$1.234,50".
// Amounts are rounded to the currency's minor unit. Unknown codes fall back to two decimals.
func FormatMoney(amount decimal.Decimal, currencyCode string) string {
	cur := money.GetCurrency(currencyCode)
	if cur == nil {
		return amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), cur.Code).Display()
}

// FormatPercent renders percentage points with two decimals, e.g. 20 -> "20.00%".
func FormatPercent(pct decimal.Decimal) string {
	return pct.StringFixed(2) + "%"
}
