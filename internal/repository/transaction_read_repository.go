package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eaglebank/transactions/shared/errs"
	"github.com/eaglebank/transactions/shared/models"
)

const transactionViewKeyPrefix = "transaction:view:"

// ErrTransactionNotFound is returned by GetByID when no row matches.
var ErrTransactionNotFound = errs.NewNotFound("Transaction is not found")

type transactionViewCache interface {
	Get(ctx context.Context, key string) (*models.TransactionView, bool)
	Set(ctx context.Context, key string, value *models.TransactionView)
}

// TransactionReadRepository handles all read operations for transactions.
// It uses Redis as the primary read store, falling back to PostgreSQL on a miss.
type TransactionReadRepository struct {
	db    *sql.DB
	cache transactionViewCache
}

func NewTransactionReadRepository(db *sql.DB, cache transactionViewCache) *TransactionReadRepository {
	return &TransactionReadRepository{db: db, cache: cache}
}

// GetByID returns a TransactionView by attempting Redis first, then PostgreSQL.
func (r *TransactionReadRepository) GetByID(ctx context.Context, id string) (*models.TransactionView, error) {
	if view, ok := r.cache.Get(ctx, transactionViewKeyPrefix+id); ok {
		return view, nil
	}

	query := `
		SELECT transaction_id, amount, payment_method, goods_type, tax_category, created_at
		FROM transactions
		WHERE transaction_id = $1
	`
	var view models.TransactionView
	var paymentMethod string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&view.ID, &view.Amount, &paymentMethod,
		&view.GoodsType, &view.TaxCategory, &view.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	view.PaymentMethod = models.PaymentMethod(paymentMethod)

	// Warm the cache
	r.CacheTransactionView(ctx, &view)
	return &view, nil
}

// ListAll returns every TransactionView from PostgreSQL, newest first. An empty
// table yields an empty, non-nil slice.
func (r *TransactionReadRepository) ListAll(ctx context.Context) ([]models.TransactionView, error) {
	query := `
		SELECT transaction_id, amount, payment_method, goods_type, tax_category, created_at
		FROM transactions
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	views := make([]models.TransactionView, 0)
	for rows.Next() {
		var view models.TransactionView
		var paymentMethod string

		if err := rows.Scan(
			&view.ID, &view.Amount, &paymentMethod,
			&view.GoodsType, &view.TaxCategory, &view.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		view.PaymentMethod = models.PaymentMethod(paymentMethod)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return views, nil
}

// CacheTransactionView stores the read model for a transaction in Redis.
func (r *TransactionReadRepository) CacheTransactionView(ctx context.Context, view *models.TransactionView) {
	r.cache.Set(ctx, transactionViewKeyPrefix+view.ID, view)
}
