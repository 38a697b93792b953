package pgsql

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard/internal/models"
	"github.com/SscSPs/finance_dashboard/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, sequence, transaction_date, account_id, transaction_type, category,
	description, amount, payment_method, to_account_id, created_at, last_updated_at`

// Ordering must be stable: date DESC, ties in insertion order.
const transactionOrder = `ORDER BY transaction_date DESC, sequence ASC`

func toModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:   d.TransactionID,
		Sequence:        d.Sequence,
		Date:            d.Date,
		AccountID:       d.AccountID,
		TransactionType: string(d.TransactionType),
		Category:        d.Category,
		Description:     d.Description,
		Amount:          d.Amount,
		PaymentMethod:   d.PaymentMethod,
		AuditFields:     models.AuditFields{CreatedAt: d.CreatedAt, LastUpdatedAt: d.LastUpdatedAt},
	}
	if d.ToAccountID != nil {
		m.ToAccountID = sql.NullString{String: *d.ToAccountID, Valid: true}
	}
	return m
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID:   m.TransactionID,
		Sequence:        m.Sequence,
		Date:            m.Date,
		AccountID:       m.AccountID,
		TransactionType: domain.TransactionType(m.TransactionType),
		Category:        m.Category,
		Description:     m.Description,
		Amount:          m.Amount,
		PaymentMethod:   m.PaymentMethod,
		AuditFields:     domain.AuditFields{CreatedAt: m.CreatedAt, LastUpdatedAt: m.LastUpdatedAt},
	}
	if m.ToAccountID.Valid {
		to := m.ToAccountID.String
		d.ToAccountID = &to
	}
	return d
}

func toDomainTransactions(rows []models.Transaction) []domain.Transaction {
	txns := make([]domain.Transaction, len(rows))
	for i, m := range rows {
		txns[i] = toDomainTransaction(m)
	}
	return txns
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	m, err := selectOne[models.Transaction](ctx, &r.BaseRepository, "transaction", transactionID,
		`SELECT `+transactionColumns+` FROM transactions WHERE transaction_id = $1;`)
	if err != nil {
		return nil, err
	}
	txn := toDomainTransaction(*m)
	return &txn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := selectAll[models.Transaction](ctx, &r.BaseRepository, "transactions",
		`SELECT `+transactionColumns+` FROM transactions `+transactionOrder+`;`)
	if err != nil {
		return nil, err
	}
	return toDomainTransactions(rows), nil
}

// ListTransactionsPage uses keyset pagination on (transaction_date, sequence).
func (r *PgxTransactionRepository) ListTransactionsPage(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		return nil, nil, fmt.Errorf("%w: limit must be positive", apperrors.ErrValidation)
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	var args []any
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += ` WHERE transaction_date < $1 OR (transaction_date = $1 AND sequence > $2)`
		args = append(args, cursor.Date, cursor.Sequence)
	}
	query += ` ` + transactionOrder + ` LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := selectAll[models.Transaction](ctx, &r.BaseRepository, "transactions", query, args...)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) <= limit {
		return toDomainTransactions(rows), nil, nil
	}
	page := rows[:limit]
	last := page[limit-1]
	token := pagination.EncodeToken(last.Date, last.Sequence)
	return toDomainTransactions(page), &token, nil
}

func (r *PgxTransactionRepository) MaxSequence(ctx context.Context) (int64, error) {
	var maxSeq int64
	if err := r.Pool.QueryRow(ctx, `SELECT COALESCE(MAX(sequence), 0) FROM transactions;`).Scan(&maxSeq); err != nil {
		return 0, apperrors.NewAppError(500, "failed to read max transaction sequence", err)
	}
	return maxSeq, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	return r.insert(ctx, "transaction", m.TransactionID,
		`INSERT INTO transactions (`+transactionColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
		m.TransactionID, m.Sequence, m.Date, m.AccountID, m.TransactionType, m.Category,
		m.Description, m.Amount, m.PaymentMethod, m.ToAccountID, m.CreatedAt, m.LastUpdatedAt)
}

// UpdateTransaction replaces every mutable column. The sequence never changes.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	return r.update(ctx, "transaction", m.TransactionID,
		`UPDATE transactions SET transaction_date = $2, account_id = $3, transaction_type = $4, category = $5,
			description = $6, amount = $7, payment_method = $8, to_account_id = $9, last_updated_at = $10
		WHERE transaction_id = $1;`,
		m.TransactionID, m.Date, m.AccountID, m.TransactionType, m.Category,
		m.Description, m.Amount, m.PaymentMethod, m.ToAccountID, m.LastUpdatedAt)
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	return r.remove(ctx, "transaction", transactionID, `DELETE FROM transactions WHERE transaction_id = $1;`)
}
