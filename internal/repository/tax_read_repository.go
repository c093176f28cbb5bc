package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eaglebank/transactions/shared/errs"
	"github.com/eaglebank/transactions/shared/models"
)

const taxViewKeyPrefix = "tax:view:"

var ErrTaxNotFound = errs.NewNotFound("Tax is not found")

type taxViewCache interface {
	Get(ctx context.Context, key string) (*models.TaxView, bool)
	Set(ctx context.Context, key string, value *models.TaxView)
}

// TaxReadRepository serves tax rates from Redis, falling back to PostgreSQL.
type TaxReadRepository struct {
	db    *sql.DB
	cache taxViewCache
}

func NewTaxReadRepository(db *sql.DB, cache taxViewCache) *TaxReadRepository {
	return &TaxReadRepository{db: db, cache: cache}
}

func (r *TaxReadRepository) GetByCategory(ctx context.Context, category string) (*models.TaxView, error) {
	if view, ok := r.cache.Get(ctx, taxViewKeyPrefix+category); ok {
		return view, nil
	}

	query := `
		SELECT tax_category, tax_value, created_at, updated_at
		FROM taxes
		WHERE tax_category = $1
	`
	var view models.TaxView
	err := r.db.QueryRowContext(ctx, query, category).Scan(
		&view.Category, &view.Value, &view.CreatedAt, &view.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaxNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tax: %w", err)
	}

	r.CacheTaxView(ctx, &view)
	return &view, nil
}

// ListAll returns every tax rate ordered by category.
func (r *TaxReadRepository) ListAll(ctx context.Context) ([]models.TaxView, error) {
	query := `
		SELECT tax_category, tax_value, created_at, updated_at
		FROM taxes
		ORDER BY tax_category
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list taxes: %w", err)
	}
	defer rows.Close()

	views := make([]models.TaxView, 0)
	for rows.Next() {
		var view models.TaxView
		if err := rows.Scan(&view.Category, &view.Value, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tax: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list taxes: %w", err)
	}
	return views, nil
}

func (r *TaxReadRepository) CacheTaxView(ctx context.Context, view *models.TaxView) {
	r.cache.Set(ctx, taxViewKeyPrefix+view.Category, view)
}
