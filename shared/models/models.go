package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the write model persisted by the transaction write repository.
type Transaction struct {
	ID            string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	GoodsType     string          `json:"goodsType"`
	TaxCategory   string          `json:"taxCategory"`
	CreatedAt     time.Time       `json:"createdTimestamp"`
}

// Tax is a tax rate keyed by its category.
type Tax struct {
	Category  string          `json:"taxCategory"`
	Value     decimal.Decimal `json:"taxValue"`
	CreatedAt time.Time       `json:"createdTimestamp"`
	UpdatedAt time.Time       `json:"updatedTimestamp"`
}
