package accounting

import (
	"testing"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func holding(ticker string, assetType domain.AssetType, qty, price string) domain.Investment {
	return domain.Investment{
		InvestmentID:  "inv-" + ticker,
		AssetType:     assetType,
		Ticker:        ticker,
		Quantity:      dec(qty),
		PurchasePrice: dec(price),
		PurchaseDate:  day0,
	}
}

func fixedIncome(name, amount string) domain.FixedIncomeInvestment {
	return domain.FixedIncomeInvestment{
		InvestmentID:   "fi-" + name,
		AssetType:      domain.FixedIncome,
		Name:           name,
		Issuer:         "Tesouro",
		AmountInvested: dec(amount),
		YieldRate:      "IPCA + 5%",
		PurchaseDate:   day0,
		MaturityDate:   day0.AddDate(5, 0, 0),
	}
}

func quote(price, change string) domain.MarketInfo {
	return domain.MarketInfo{Price: dec(price), Change: dec(change), Signal: domain.SignalFor(dec(price), dec(change))}
}

func TestValueHolding_ProfitAndPercent(t *testing.T) {
	inv := holding("PETR4", domain.Stock, "10", "100")
	prices := domain.MarketData{"PETR4": quote("120", "1")}

	hv := ValueHolding(inv, prices)

	assert.True(t, hv.Quoted)
	assertDecimal(t, "120", hv.CurrentPrice)
	assertDecimal(t, "1200", hv.MarketValue)
	assertDecimal(t, "1000", hv.CostBasis)
	assertDecimal(t, "200", hv.PL)
	assert.Equal(t, "20.00", hv.PLPercent.StringFixed(2))
	assert.Equal(t, domain.Hold, hv.Signal)
}

func TestValueHolding_FallsBackToPurchasePrice(t *testing.T) {
	inv := holding("UNKNOWN11", domain.RealEstateFund, "3", "95.5")

	hv := ValueHolding(inv, domain.MarketData{})

	assert.False(t, hv.Quoted)
	assertDecimal(t, "286.5", hv.MarketValue)
	assertDecimal(t, "0", hv.PL)
	assertDecimal(t, "0", hv.PLPercent)
	assert.Empty(t, hv.Signal)
}

func TestPortfolioValue_FallbackContributesCost(t *testing.T) {
	investments := []domain.Investment{holding("NOPE", domain.Crypto, "2", "50")}

	assertDecimal(t, "100", PortfolioValue(investments, nil, nil))
	assertDecimal(t, "0", PortfolioPL(investments, nil, nil))
}

func TestPortfolioValue_FixedIncomeValuedAtCost(t *testing.T) {
	fixed := []domain.FixedIncomeInvestment{fixedIncome("CDB", "5000"), fixedIncome("LCI", "1234.56")}
	// A quote that happens to share the holding's name must not move its value.
	prices := domain.MarketData{"CDB": quote("9999", "100")}

	assertDecimal(t, "6234.56", PortfolioValue(nil, fixed, prices))
	assertDecimal(t, "6234.56", TotalInvested(nil, fixed))
	assertDecimal(t, "0", PortfolioPL(nil, fixed, prices))
}

func TestPLPercent_ZeroInvestment(t *testing.T) {
	assertDecimal(t, "0", PLPercent(dec("10"), dec("0")))
	assertDecimal(t, "0", PLPercent(dec("10"), dec("-5")))
	assertDecimal(t, "-50", PLPercent(dec("-50"), dec("100")))
}

func TestSummarize_MixedPortfolio(t *testing.T) {
	investments := []domain.Investment{
		holding("AAPL", domain.InternationalStock, "10", "100"),
		holding("BTC", domain.Crypto, "0.5", "60000"),
	}
	fixed := []domain.FixedIncomeInvestment{fixedIncome("CDB", "1000")}
	prices := domain.MarketData{
		"AAPL": quote("120", "2"),
		"BTC":  quote("59000", "-500"),
	}

	summary := Summarize(investments, fixed, prices)

	assertDecimal(t, "32000", summary.TotalInvested)
	assertDecimal(t, "31700", summary.PortfolioValue)
	assertDecimal(t, "-300", summary.PortfolioPL)
	require.Len(t, summary.Holdings, 2)
	require.NotNil(t, summary.BestPerformer)
	assert.Equal(t, "AAPL", summary.BestPerformer.Ticker)
	assert.Len(t, summary.FixedIncome, 1)
}

func TestSummarize_EmptyPortfolio(t *testing.T) {
	summary := Summarize(nil, nil, nil)

	assertDecimal(t, "0", summary.TotalInvested)
	assertDecimal(t, "0", summary.PLPercent)
	assert.Nil(t, summary.BestPerformer)
	assert.NotNil(t, summary.Holdings)
	assert.NotNil(t, summary.FixedIncome)
}

func TestBestPerformer_FirstWinsTies(t *testing.T) {
	holdings := ValueHoldings([]domain.Investment{
		holding("A", domain.Stock, "1", "10"),
		holding("B", domain.Stock, "2", "10"),
		holding("C", domain.Stock, "1", "10"),
	}, domain.MarketData{
		"A": quote("15", "0"),
		"B": quote("12.5", "0"),
		"C": quote("15", "0"),
	})

	best := BestPerformer(holdings)

	require.NotNil(t, best)
	assert.Equal(t, "A", best.Ticker)
}

func TestGroupHoldings(t *testing.T) {
	holdings := ValueHoldings([]domain.Investment{
		holding("PETR4", domain.Stock, "1", "1"),
		holding("MXRF11", domain.RealEstateFund, "1", "1"),
		holding("AAPL", domain.InternationalStock, "1", "1"),
		holding("O", domain.REIT, "1", "1"),
		holding("ETH", domain.Crypto, "1", "1"),
	}, nil)

	groups := GroupHoldings(holdings, nil)

	assert.Len(t, groups.Domestic, 2)
	assert.Len(t, groups.International, 2)
	assert.Len(t, groups.Crypto, 1)
	assert.NotNil(t, groups.FixedIncome)
	assert.Empty(t, groups.FixedIncome)
}
