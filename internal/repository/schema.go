package repository

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS taxes (
	tax_category TEXT PRIMARY KEY,
	tax_value    NUMERIC(10, 4) NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
	transaction_id TEXT PRIMARY KEY,
	amount         NUMERIC(19, 4) NOT NULL,
	payment_method TEXT NOT NULL,
	goods_type     TEXT NOT NULL,
	tax_category   TEXT NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL
);
`

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
