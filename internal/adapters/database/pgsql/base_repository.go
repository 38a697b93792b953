package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// insert runs an INSERT, reporting a primary key clash as apperrors.ErrDuplicate.
func (r *BaseRepository) insert(ctx context.Context, entity, id, query string, args ...any) error {
	if _, err := r.Pool.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s with ID %s already exists", apperrors.ErrDuplicate, entity, id)
		}
		return apperrors.NewAppError(500, "failed to save "+entity+" "+id, err)
	}
	return nil
}

// update runs an UPDATE that must touch exactly one row; zero rows is apperrors.ErrNotFound.
func (r *BaseRepository) update(ctx context.Context, entity, id, query string, args ...any) error {
	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update "+entity+" "+id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// remove runs a DELETE. Deleting an absent row is not an error.
func (r *BaseRepository) remove(ctx context.Context, entity, id, query string) error {
	if _, err := r.Pool.Exec(ctx, query, id); err != nil {
		return apperrors.NewAppError(500, "failed to delete "+entity+" "+id, err)
	}
	return nil
}

// selectAll scans every row of query into T by column name.
func selectAll[T any](ctx context.Context, r *BaseRepository, entity, query string, args ...any) ([]T, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query "+entity, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan "+entity+" rows", err)
	}
	return items, nil
}

// selectOne scans the single row of query into T, mapping no rows to apperrors.ErrNotFound.
func selectOne[T any](ctx context.Context, r *BaseRepository, entity, id, query string) (*T, error) {
	rows, err := r.Pool.Query(ctx, query, id)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find "+entity+" "+id, err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan "+entity+" "+id, err)
	}
	return &item, nil
}
