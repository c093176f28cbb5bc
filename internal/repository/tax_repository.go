package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/eaglebank/transactions/shared/models"
)

// TaxWriteRepository persists tax rates to PostgreSQL.
type TaxWriteRepository struct {
	db *sql.DB
}

func NewTaxWriteRepository(db *sql.DB) *TaxWriteRepository {
	return &TaxWriteRepository{db: db}
}

// Upsert stores the rate for a category, replacing any previous rate. The
// stored created/updated timestamps are written back into tax.
func (r *TaxWriteRepository) Upsert(ctx context.Context, tax *models.Tax) error {
	query := `
		INSERT INTO taxes (tax_category, tax_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (tax_category)
		DO UPDATE SET tax_value = EXCLUDED.tax_value, updated_at = EXCLUDED.updated_at
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		tax.Category, tax.Value, tax.CreatedAt, tax.UpdatedAt,
	).Scan(&tax.CreatedAt, &tax.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert tax: %w", err)
	}
	return nil
}
