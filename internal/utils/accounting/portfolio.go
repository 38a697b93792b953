package accounting

import (
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CurrentPrice returns the market price of the investment's ticker, or its purchase
// price when the ticker has no quote. The second result reports whether a quote was used.
func CurrentPrice(inv domain.Investment, prices domain.MarketData) (decimal.Decimal, bool) {
	if info, ok := prices[inv.Ticker]; ok {
		return info.Price, true
	}
	return inv.PurchasePrice, false
}

// TotalInvested is the cost of every variable-income position plus every fixed-income amount.
func TotalInvested(investments []domain.Investment, fixed []domain.FixedIncomeInvestment) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range investments {
		total = total.Add(inv.CostBasis())
	}
	for _, fi := range fixed {
		total = total.Add(fi.AmountInvested)
	}
	return total
}

// PortfolioValue marks variable-income positions to market and values fixed income at cost.
func PortfolioValue(investments []domain.Investment, fixed []domain.FixedIncomeInvestment, prices domain.MarketData) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range investments {
		price, _ := CurrentPrice(inv, prices)
		total = total.Add(price.Mul(inv.Quantity))
	}
	for _, fi := range fixed {
		total = total.Add(fi.AmountInvested)
	}
	return total
}

// PortfolioPL is PortfolioValue minus TotalInvested.
func PortfolioPL(investments []domain.Investment, fixed []domain.FixedIncomeInvestment, prices domain.MarketData) decimal.Decimal {
	return PortfolioValue(investments, fixed, prices).Sub(TotalInvested(investments, fixed))
}

// PLPercent expresses pl relative to invested in percentage points.
// It is zero when nothing was invested.
func PLPercent(pl, invested decimal.Decimal) decimal.Decimal {
	if !invested.IsPositive() {
		return decimal.Zero
	}
	return pl.Div(invested).Mul(hundred)
}

// ValueHolding marks a single position to the latest price.
func ValueHolding(inv domain.Investment, prices domain.MarketData) domain.HoldingValuation {
	price, quoted := CurrentPrice(inv, prices)
	cost := inv.CostBasis()
	value := price.Mul(inv.Quantity)
	pl := price.Sub(inv.PurchasePrice).Mul(inv.Quantity)

	hv := domain.HoldingValuation{
		Investment:   inv,
		CurrentPrice: price,
		MarketValue:  value,
		CostBasis:    cost,
		PL:           pl,
		PLPercent:    decimal.Zero,
		Quoted:       quoted,
	}
	if !cost.IsZero() {
		hv.PLPercent = pl.Div(cost).Mul(hundred)
	}
	if quoted {
		hv.Signal = prices[inv.Ticker].Signal
	}
	return hv
}

// ValueHoldings marks every position, preserving order.
func ValueHoldings(investments []domain.Investment, prices domain.MarketData) []domain.HoldingValuation {
	out := make([]domain.HoldingValuation, 0, len(investments))
	for _, inv := range investments {
		out = append(out, ValueHolding(inv, prices))
	}
	return out
}

// BestPerformer returns the holding with the largest P/L in currency terms (signed); the
// first one wins ties.
// It returns nil for an empty portfolio.
func BestPerformer(holdings []domain.HoldingValuation) *domain.HoldingValuation {
	if len(holdings) == 0 {
		return nil
	}
	best := holdings[0]
	for _, h := range holdings[1:] {
		if h.PL.GreaterThan(best.PL) {
			best = h
		}
	}
	return &best
}

// Summarize builds the full portfolio aggregate from the holdings and the latest prices.
func Summarize(investments []domain.Investment, fixed []domain.FixedIncomeInvestment, prices domain.MarketData) domain.PortfolioSummary {
	holdings := ValueHoldings(investments, prices)
	invested := TotalInvested(investments, fixed)
	value := PortfolioValue(investments, fixed, prices)
	pl := value.Sub(invested)

	fixedCopy := make([]domain.FixedIncomeInvestment, len(fixed))
	copy(fixedCopy, fixed)

	return domain.PortfolioSummary{
		TotalInvested:  invested,
		PortfolioValue: value,
		PortfolioPL:    pl,
		PLPercent:      PLPercent(pl, invested),
		Holdings:       holdings,
		BestPerformer:  BestPerformer(holdings),
		FixedIncome:    fixedCopy,
	}
}

// GroupHoldings splits valued holdings into the portfolio screen sections.
func GroupHoldings(holdings []domain.HoldingValuation, fixed []domain.FixedIncomeInvestment) domain.PortfolioGroups {
	groups := domain.PortfolioGroups{
		Domestic:      []domain.HoldingValuation{},
		International: []domain.HoldingValuation{},
		Crypto:        []domain.HoldingValuation{},
		FixedIncome:   fixed,
	}
	if groups.FixedIncome == nil {
		groups.FixedIncome = []domain.FixedIncomeInvestment{}
	}
	for _, h := range holdings {
		switch h.AssetType {
		case domain.Stock, domain.RealEstateFund:
			groups.Domestic = append(groups.Domestic, h)
		case domain.InternationalStock, domain.REIT:
			groups.International = append(groups.International, h)
		case domain.Crypto:
			groups.Crypto = append(groups.Crypto, h)
		}
	}
	return groups
}
