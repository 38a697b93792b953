package pgsql

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard/internal/models"
)

type PgxCategoryRepository struct {
	BaseRepository
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, name, category_type, created_at, last_updated_at`

func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		CategoryType: domain.CategoryType(m.CategoryType),
		AuditFields:  domain.AuditFields{CreatedAt: m.CreatedAt, LastUpdatedAt: m.LastUpdatedAt},
	}
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	m, err := selectOne[models.Category](ctx, &r.BaseRepository, "category", categoryID,
		`SELECT `+categoryColumns+` FROM categories WHERE category_id = $1;`)
	if err != nil {
		return nil, err
	}
	c := toDomainCategory(*m)
	return &c, nil
}

// ListCategories returns categories in creation order, filtered by type when requested.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories`
	var args []any
	if categoryType != nil {
		query += ` WHERE category_type = $1`
		args = append(args, string(*categoryType))
	}
	query += ` ORDER BY created_at, category_id;`

	rows, err := selectAll[models.Category](ctx, &r.BaseRepository, "categories", query, args...)
	if err != nil {
		return nil, err
	}
	categories := make([]domain.Category, len(rows))
	for i, m := range rows {
		categories[i] = toDomainCategory(m)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, c domain.Category) error {
	return r.insert(ctx, "category", c.CategoryID,
		`INSERT INTO categories (`+categoryColumns+`) VALUES ($1, $2, $3, $4, $5);`,
		c.CategoryID, c.Name, string(c.CategoryType), c.CreatedAt, c.LastUpdatedAt)
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, c domain.Category) error {
	return r.update(ctx, "category", c.CategoryID,
		`UPDATE categories SET name = $2, category_type = $3, last_updated_at = $4 WHERE category_id = $1;`,
		c.CategoryID, c.Name, string(c.CategoryType), c.LastUpdatedAt)
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	return r.remove(ctx, "category", categoryID, `DELETE FROM categories WHERE category_id = $1;`)
}
