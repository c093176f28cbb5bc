package events

import (
	"encoding/json"
	"time"

	"github.com/eaglebank/transactions/shared/models"
	"github.com/shopspring/decimal"
)

// Event types
const (
	TransactionSubmitted = "transaction.submitted"
	TaxSubmitted         = "tax.submitted"
)

// Stream names
const (
	TransactionEventsStream = "transaction.events"
	TaxEventsStream         = "tax.events"
)

// Event is the envelope written to every stream entry. Data holds the
// JSON-encoded payload so consumers can decode it into the concrete type.
type Event struct {
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// Decode unmarshals the payload into v.
func (e Event) Decode(v any) error {
	return json.Unmarshal(e.Data, v)
}

type TransactionSubmittedEvent struct {
	TransactionID string               `json:"transactionId"`
	Amount        decimal.Decimal      `json:"amount"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	GoodsType     string               `json:"goodsType"`
	TaxCategory   string               `json:"taxCategory"`
	CreatedAt     time.Time            `json:"createdTimestamp"`
}

type TaxSubmittedEvent struct {
	TaxCategory string          `json:"taxCategory"`
	TaxValue    decimal.Decimal `json:"taxValue"`
	CreatedAt   time.Time       `json:"createdTimestamp"`
	UpdatedAt   time.Time       `json:"updatedTimestamp"`
}
