package cqrs

import (
	"github.com/eaglebank/transactions/shared/models"
	"github.com/shopspring/decimal"
)

// SubmitTransactionCommand carries an already validated transaction submission.
type SubmitTransactionCommand struct {
	TransactionID string
	Amount        decimal.Decimal
	PaymentMethod models.PaymentMethod
	GoodsType     string
	TaxCategory   string
}

type SubmitTaxCommand struct {
	TaxCategory string
	TaxValue    decimal.Decimal
}
