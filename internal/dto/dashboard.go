package dto

import (
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/SscSPs/finance_dashboard/internal/utils"
	"github.com/shopspring/decimal"
)

// FormattedTotals carries display strings for the headline figures, rendered in the
// configured display currency.
type FormattedTotals struct {
	TotalBalance   string `json:"totalBalance,omitempty"`
	TotalInvested  string `json:"totalInvested"`
	PortfolioValue string `json:"portfolioValue"`
	PortfolioPL    string `json:"portfolioPL"`
	PLPercent      string `json:"plPercent"`
}

// DashboardSummaryResponse is the summary aggregate plus its display strings.
type DashboardSummaryResponse struct {
	*domain.DashboardSummary
	Currency  string          `json:"currency"`
	Formatted FormattedTotals `json:"formatted"`
}

// ToDashboardSummaryResponse decorates a summary with figures formatted in currency.
func ToDashboardSummaryResponse(s *domain.DashboardSummary, currency string) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		DashboardSummary: s,
		Currency:         currency,
		Formatted: FormattedTotals{
			TotalBalance:   utils.FormatMoney(s.TotalBalance, currency),
			TotalInvested:  utils.FormatMoney(s.Portfolio.TotalInvested, currency),
			PortfolioValue: utils.FormatMoney(s.Portfolio.PortfolioValue, currency),
			PortfolioPL:    utils.FormatMoney(s.Portfolio.PortfolioPL, currency),
			PLPercent:      utils.FormatPercent(s.Portfolio.PLPercent),
		},
	}
}

// MonthlyOverviewResponse is the month-to-date overview plus its display strings.
type MonthlyOverviewResponse struct {
	*domain.MonthlyOverview
	Currency  string `json:"currency"`
	Formatted struct {
		Income      string `json:"income"`
		Expense     string `json:"expense"`
		Net         string `json:"net"`
		SavingsRate string `json:"savingsRate"`
	} `json:"formatted"`
}

// ToMonthlyOverviewResponse decorates an overview with figures formatted in currency.
func ToMonthlyOverviewResponse(o *domain.MonthlyOverview, currency string) MonthlyOverviewResponse {
	res := MonthlyOverviewResponse{MonthlyOverview: o, Currency: currency}
	res.Formatted.Income = utils.FormatMoney(o.Income, currency)
	res.Formatted.Expense = utils.FormatMoney(o.Expense, currency)
	res.Formatted.Net = utils.FormatMoney(o.Net, currency)
	res.Formatted.SavingsRate = utils.FormatPercent(o.SavingsRate)
	return res
}

// CashFlowResponse wraps the per-day cash flow, newest day first.
type CashFlowResponse struct {
	Days []domain.CashFlowDay `json:"days"`
}

// PortfolioResponse is the grouped portfolio plus headline totals.
type PortfolioResponse struct {
	Groups         domain.PortfolioGroups   `json:"groups"`
	TotalInvested  decimal.Decimal          `json:"totalInvested"`
	PortfolioValue decimal.Decimal          `json:"portfolioValue"`
	PortfolioPL    decimal.Decimal          `json:"portfolioPL"`
	PLPercent      decimal.Decimal          `json:"plPercent"`
	BestPerformer  *domain.HoldingValuation `json:"bestPerformer,omitempty"`
	Currency       string                   `json:"currency"`
	Formatted      FormattedTotals          `json:"formatted"`
}

// ToPortfolioResponse flattens a portfolio view for presentation.
func ToPortfolioResponse(v *domain.PortfolioView, currency string) PortfolioResponse {
	return PortfolioResponse{
		Groups:         v.Groups,
		TotalInvested:  v.Summary.TotalInvested,
		PortfolioValue: v.Summary.PortfolioValue,
		PortfolioPL:    v.Summary.PortfolioPL,
		PLPercent:      v.Summary.PLPercent,
		BestPerformer:  v.Summary.BestPerformer,
		Currency:       currency,
		Formatted: FormattedTotals{
			TotalInvested:  utils.FormatMoney(v.Summary.TotalInvested, currency),
			PortfolioValue: utils.FormatMoney(v.Summary.PortfolioValue, currency),
			PortfolioPL:    utils.FormatMoney(v.Summary.PortfolioPL, currency),
			PLPercent:      utils.FormatPercent(v.Summary.PLPercent),
		},
	}
}
