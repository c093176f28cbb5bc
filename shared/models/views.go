package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionView is the read-optimised projection of a transaction.
type TransactionView struct {
	ID            string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	GoodsType     string          `json:"goodsType"`
	TaxCategory   string          `json:"taxCategory"`
	CreatedAt     time.Time       `json:"createdTimestamp"`
}

// TaxView is the read-optimised projection of a tax rate.
type TaxView struct {
	Category  string          `json:"taxCategory"`
	Value     decimal.Decimal `json:"taxValue"`
	CreatedAt time.Time       `json:"createdTimestamp"`
	UpdatedAt time.Time       `json:"updatedTimestamp"`
}
