package pgsql

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard/internal/models"
)

type PgxAccountRepository struct {
	BaseRepository
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, name, bank, initial_balance, created_at, last_updated_at`

// Helper to convert domain.Account to models.Account for DB storage
func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		Name:           d.Name,
		Bank:           d.Bank,
		InitialBalance: d.InitialBalance,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// Helper to convert models.Account from DB to domain.Account
func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Name:           m.Name,
		Bank:           m.Bank,
		InitialBalance: m.InitialBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)
	query := `INSERT INTO accounts (` + accountColumns + `) VALUES ($1, $2, $3, $4, $5, $6);`
	return r.insert(ctx, "account", m.AccountID, query,
		m.AccountID, m.Name, m.Bank, m.InitialBalance, m.CreatedAt, m.LastUpdatedAt)
}

// UpdateAccount replaces the editable columns of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)
	query := `UPDATE accounts SET name = $2, bank = $3, initial_balance = $4, last_updated_at = $5 WHERE account_id = $1;`
	return r.update(ctx, "account", m.AccountID, query,
		m.AccountID, m.Name, m.Bank, m.InitialBalance, m.LastUpdatedAt)
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	m, err := selectOne[models.Account](ctx, &r.BaseRepository, "account", accountID,
		`SELECT `+accountColumns+` FROM accounts WHERE account_id = $1;`)
	if err != nil {
		return nil, err
	}
	acc := toDomainAccount(*m)
	return &acc, nil
}

// ListAccounts retrieves every account in creation order.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := selectAll[models.Account](ctx, &r.BaseRepository, "accounts",
		`SELECT `+accountColumns+` FROM accounts ORDER BY created_at, account_id;`)
	if err != nil {
		return nil, err
	}
	accounts := make([]domain.Account, len(rows))
	for i, m := range rows {
		accounts[i] = toDomainAccount(m)
	}
	return accounts, nil
}
