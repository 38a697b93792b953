package pgsql

import (
	"context"
	"database/sql"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard/internal/models"
)

// --- Variable income ---

type PgxInvestmentRepository struct {
	BaseRepository
}

var _ portsrepo.InvestmentRepositoryFacade = (*PgxInvestmentRepository)(nil)

const investmentColumns = `investment_id, asset_type, ticker, quantity, purchase_price, purchase_date, created_at, last_updated_at`

func toDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID:  m.InvestmentID,
		AssetType:     domain.AssetType(m.AssetType),
		Ticker:        m.Ticker,
		Quantity:      m.Quantity,
		PurchasePrice: m.PurchasePrice,
		PurchaseDate:  m.PurchaseDate,
		AuditFields:   domain.AuditFields{CreatedAt: m.CreatedAt, LastUpdatedAt: m.LastUpdatedAt},
	}
}

func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	m, err := selectOne[models.Investment](ctx, &r.BaseRepository, "investment", investmentID,
		`SELECT `+investmentColumns+` FROM investments WHERE investment_id = $1;`)
	if err != nil {
		return nil, err
	}
	inv := toDomainInvestment(*m)
	return &inv, nil
}

func (r *PgxInvestmentRepository) ListInvestments(ctx context.Context) ([]domain.Investment, error) {
	rows, err := selectAll[models.Investment](ctx, &r.BaseRepository, "investments",
		`SELECT `+investmentColumns+` FROM investments ORDER BY created_at, investment_id;`)
	if err != nil {
		return nil, err
	}
	investments := make([]domain.Investment, len(rows))
	for i, m := range rows {
		investments[i] = toDomainInvestment(m)
	}
	return investments, nil
}

func (r *PgxInvestmentRepository) SaveInvestment(ctx context.Context, inv domain.Investment) error {
	return r.insert(ctx, "investment", inv.InvestmentID,
		`INSERT INTO investments (`+investmentColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		inv.InvestmentID, string(inv.AssetType), inv.Ticker, inv.Quantity, inv.PurchasePrice,
		inv.PurchaseDate, inv.CreatedAt, inv.LastUpdatedAt)
}

func (r *PgxInvestmentRepository) UpdateInvestment(ctx context.Context, inv domain.Investment) error {
	return r.update(ctx, "investment", inv.InvestmentID,
		`UPDATE investments SET asset_type = $2, ticker = $3, quantity = $4, purchase_price = $5,
			purchase_date = $6, last_updated_at = $7 WHERE investment_id = $1;`,
		inv.InvestmentID, string(inv.AssetType), inv.Ticker, inv.Quantity, inv.PurchasePrice,
		inv.PurchaseDate, inv.LastUpdatedAt)
}

func (r *PgxInvestmentRepository) DeleteInvestment(ctx context.Context, investmentID string) error {
	return r.remove(ctx, "investment", investmentID, `DELETE FROM investments WHERE investment_id = $1;`)
}

// --- Fixed income ---

type PgxFixedIncomeRepository struct {
	BaseRepository
}

var _ portsrepo.FixedIncomeRepositoryFacade = (*PgxFixedIncomeRepository)(nil)

const fixedIncomeColumns = `investment_id, name, issuer, amount_invested, yield_rate, purchase_date, maturity_date, created_at, last_updated_at`

func toModelFixedIncome(d domain.FixedIncomeInvestment) models.FixedIncome {
	return models.FixedIncome{
		InvestmentID:   d.InvestmentID,
		Name:           d.Name,
		Issuer:         d.Issuer,
		AmountInvested: d.AmountInvested,
		YieldRate:      d.YieldRate,
		PurchaseDate:   d.PurchaseDate,
		MaturityDate:   sql.NullTime{Time: d.MaturityDate, Valid: !d.MaturityDate.IsZero()},
		AuditFields:    models.AuditFields{CreatedAt: d.CreatedAt, LastUpdatedAt: d.LastUpdatedAt},
	}
}

func toDomainFixedIncome(m models.FixedIncome) domain.FixedIncomeInvestment {
	fi := domain.FixedIncomeInvestment{
		InvestmentID:   m.InvestmentID,
		AssetType:      domain.FixedIncome,
		Name:           m.Name,
		Issuer:         m.Issuer,
		AmountInvested: m.AmountInvested,
		YieldRate:      m.YieldRate,
		PurchaseDate:   m.PurchaseDate,
		AuditFields:    domain.AuditFields{CreatedAt: m.CreatedAt, LastUpdatedAt: m.LastUpdatedAt},
	}
	if m.MaturityDate.Valid {
		fi.MaturityDate = m.MaturityDate.Time
	}
	return fi
}

func (r *PgxFixedIncomeRepository) FindFixedIncomeByID(ctx context.Context, investmentID string) (*domain.FixedIncomeInvestment, error) {
	m, err := selectOne[models.FixedIncome](ctx, &r.BaseRepository, "fixed income", investmentID,
		`SELECT `+fixedIncomeColumns+` FROM fixed_income WHERE investment_id = $1;`)
	if err != nil {
		return nil, err
	}
	fi := toDomainFixedIncome(*m)
	return &fi, nil
}

func (r *PgxFixedIncomeRepository) ListFixedIncome(ctx context.Context) ([]domain.FixedIncomeInvestment, error) {
	rows, err := selectAll[models.FixedIncome](ctx, &r.BaseRepository, "fixed income",
		`SELECT `+fixedIncomeColumns+` FROM fixed_income ORDER BY created_at, investment_id;`)
	if err != nil {
		return nil, err
	}
	holdings := make([]domain.FixedIncomeInvestment, len(rows))
	for i, m := range rows {
		holdings[i] = toDomainFixedIncome(m)
	}
	return holdings, nil
}

func (r *PgxFixedIncomeRepository) SaveFixedIncome(ctx context.Context, fi domain.FixedIncomeInvestment) error {
	m := toModelFixedIncome(fi)
	return r.insert(ctx, "fixed income", m.InvestmentID,
		`INSERT INTO fixed_income (`+fixedIncomeColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		m.InvestmentID, m.Name, m.Issuer, m.AmountInvested, m.YieldRate, m.PurchaseDate, m.MaturityDate,
		m.CreatedAt, m.LastUpdatedAt)
}

func (r *PgxFixedIncomeRepository) UpdateFixedIncome(ctx context.Context, fi domain.FixedIncomeInvestment) error {
	m := toModelFixedIncome(fi)
	return r.update(ctx, "fixed income", m.InvestmentID,
		`UPDATE fixed_income SET name = $2, issuer = $3, amount_invested = $4, yield_rate = $5,
			purchase_date = $6, maturity_date = $7, last_updated_at = $8 WHERE investment_id = $1;`,
		m.InvestmentID, m.Name, m.Issuer, m.AmountInvested, m.YieldRate, m.PurchaseDate, m.MaturityDate,
		m.LastUpdatedAt)
}

func (r *PgxFixedIncomeRepository) DeleteFixedIncome(ctx context.Context, investmentID string) error {
	return r.remove(ctx, "fixed income", investmentID, `DELETE FROM fixed_income WHERE investment_id = $1;`)
}
