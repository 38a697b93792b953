package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/shopspring/decimal"
)

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func isoDate(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedDemoData loads a small demo ledger: two accounts, the default categories, five
// transactions dated in the month of now, six holdings and two fixed-income bonds.
// It does nothing when the ledger already has accounts.
func SeedDemoData(ctx context.Context, ledger portssvc.LedgerSvcFacade, now time.Time) error {
	accounts, err := ledger.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing accounts: %w", err)
	}
	if len(accounts) > 0 {
		middleware.GetLoggerFromCtx(ctx).Info("Ledger already has data, skipping demo seed", slog.Int("accounts", len(accounts)))
		return nil
	}

	checking, err := ledger.CreateAccount(ctx, dto.CreateAccountRequest{Name: "Itaú Corrente", Bank: "Itaú", InitialBalance: mustDecimal("5000")})
	if err != nil {
		return fmt.Errorf("failed to seed accounts: %w", err)
	}
	digital, err := ledger.CreateAccount(ctx, dto.CreateAccountRequest{Name: "Nubank NuConta", Bank: "Nubank", InitialBalance: mustDecimal("1500")})
	if err != nil {
		return fmt.Errorf("failed to seed accounts: %w", err)
	}

	categories := []dto.CreateCategoryRequest{
		{Name: "Salário", CategoryType: domain.IncomeCategory},
		{Name: "Freelance", CategoryType: domain.IncomeCategory},
		{Name: "Moradia", CategoryType: domain.ExpenseCategory},
		{Name: "Alimentação", CategoryType: domain.ExpenseCategory},
		{Name: "Transporte", CategoryType: domain.ExpenseCategory},
		{Name: "Lazer", CategoryType: domain.ExpenseCategory},
	}
	for _, req := range categories {
		if _, err := ledger.CreateCategory(ctx, req); err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
	}

	dayOfMonth := func(day int) time.Time {
		return time.Date(now.Year(), now.Month(), day, now.Hour(), now.Minute(), 0, 0, now.Location())
	}
	toDigital := digital.AccountID
	transactions := []dto.CreateTransactionRequest{
		{Date: dayOfMonth(1), AccountID: checking.AccountID, TransactionType: domain.Income, Category: "Salário", Description: "Salário Mensal", Amount: mustDecimal("7500"), PaymentMethod: "Transferência Bancária"},
		{Date: dayOfMonth(2), AccountID: checking.AccountID, TransactionType: domain.Expense, Category: "Moradia", Description: "Aluguel", Amount: mustDecimal("2000"), PaymentMethod: "Débito Automático"},
		{Date: dayOfMonth(5), AccountID: digital.AccountID, TransactionType: domain.Expense, Category: "Alimentação", Description: "Supermercado", Amount: mustDecimal("600"), PaymentMethod: "Cartão de Débito"},
		{Date: dayOfMonth(10), AccountID: checking.AccountID, TransactionType: domain.Transfer, Category: "Transferência", Description: "Transf. para Nubank", Amount: mustDecimal("1000"), PaymentMethod: "PIX", ToAccountID: &toDigital},
		{Date: dayOfMonth(12), AccountID: digital.AccountID, TransactionType: domain.Income, Category: "Freelance", Description: "Projeto X", Amount: mustDecimal("800"), PaymentMethod: "PIX"},
	}
	for _, req := range transactions {
		if _, err := ledger.CreateTransaction(ctx, req); err != nil {
			return fmt.Errorf("failed to seed transactions: %w", err)
		}
	}

	investments := []dto.CreateInvestmentRequest{
		{AssetType: domain.Stock, Ticker: "PETR4", Quantity: mustDecimal("100"), PurchasePrice: mustDecimal("30.50"), PurchaseDate: isoDate("2023-05-10")},
		{AssetType: domain.InternationalStock, Ticker: "AAPL", Quantity: mustDecimal("10"), PurchasePrice: mustDecimal("150.00"), PurchaseDate: isoDate("2023-01-15")},
		{AssetType: domain.Crypto, Ticker: "BTC", Quantity: mustDecimal("0.05"), PurchasePrice: mustDecimal("45000.00"), PurchaseDate: isoDate("2023-08-20")},
		{AssetType: domain.RealEstateFund, Ticker: "MXRF11", Quantity: mustDecimal("200"), PurchasePrice: mustDecimal("10.50"), PurchaseDate: isoDate("2023-03-22")},
		{AssetType: domain.InternationalStock, Ticker: "GOOGL", Quantity: mustDecimal("5"), PurchasePrice: mustDecimal("130.00"), PurchaseDate: isoDate("2023-09-01")},
		{AssetType: domain.REIT, Ticker: "O", Quantity: mustDecimal("50"), PurchasePrice: mustDecimal("60.00"), PurchaseDate: isoDate("2023-02-10")},
	}
	for _, req := range investments {
		if _, err := ledger.CreateInvestment(ctx, req); err != nil {
			return fmt.Errorf("failed to seed investments: %w", err)
		}
	}

	bonds := []dto.CreateFixedIncomeRequest{
		{Name: "CDB Liquidez Diária", Issuer: "Banco Inter", AmountInvested: mustDecimal("10000"), YieldRate: "100% CDI", PurchaseDate: isoDate("2023-10-01"), MaturityDate: isoDate("2025-10-01")},
		{Name: "Tesouro IPCA+ 2029", Issuer: "Tesouro Nacional", AmountInvested: mustDecimal("5000"), YieldRate: "IPCA + 5.8%", PurchaseDate: isoDate("2023-11-15"), MaturityDate: isoDate("2029-05-15")},
	}
	for _, req := range bonds {
		if _, err := ledger.CreateFixedIncome(ctx, req); err != nil {
			return fmt.Errorf("failed to seed fixed income: %w", err)
		}
	}

	middleware.GetLoggerFromCtx(ctx).Info("Demo data seeded",
		slog.Int("accounts", 2),
		slog.Int("transactions", len(transactions)),
		slog.Int("investments", len(investments)),
		slog.Int("fixed_income", len(bonds)))
	return nil
}
