package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/eaglebank/transactions/shared/models"
)

// TransactionWriteRepository handles all state-mutating operations for transactions.
// It operates exclusively against the PostgreSQL write store (source of truth).
type TransactionWriteRepository struct {
	db *sql.DB
}

func NewTransactionWriteRepository(db *sql.DB) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db}
}

// Create inserts a transaction. A duplicate transaction id surfaces as the
// driver's unique violation error.
func (r *TransactionWriteRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, amount, payment_method, goods_type, tax_category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		transaction.ID, transaction.Amount, string(transaction.PaymentMethod),
		transaction.GoodsType, transaction.TaxCategory, transaction.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}
