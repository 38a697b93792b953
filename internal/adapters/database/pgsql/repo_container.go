package pgsql

import (
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every repository on top of one connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	base := BaseRepository{Pool: dbPool}

	return portsrepo.RepositoryProvider{
		AccountRepo:     &PgxAccountRepository{BaseRepository: base},
		TransactionRepo: &PgxTransactionRepository{BaseRepository: base},
		InvestmentRepo:  &PgxInvestmentRepository{BaseRepository: base},
		FixedIncomeRepo: &PgxFixedIncomeRepository{BaseRepository: base},
		CategoryRepo:    &PgxCategoryRepository{BaseRepository: base},
	}
}
