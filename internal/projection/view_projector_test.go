package projection

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/eaglebank/transactions/shared/events"
	"github.com/eaglebank/transactions/shared/models"
	"github.com/shopspring/decimal"
)

type recordingWriter struct {
	transactions []*models.TransactionView
	taxes        []*models.TaxView
}

func (r *recordingWriter) CacheTransactionView(ctx context.Context, view *models.TransactionView) {
	r.transactions = append(r.transactions, view)
}

func (r *recordingWriter) CacheTaxView(ctx context.Context, view *models.TaxView) {
	r.taxes = append(r.taxes, view)
}

func newEvent(t *testing.T, eventType string, payload any) events.Event {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	return events.Event{Type: eventType, Timestamp: time.Now().UTC(), Data: data}
}

func TestHandleTransactionEvent(t *testing.T) {
	w := &recordingWriter{}
	p := NewViewProjector(w, w)

	err := p.HandleTransactionEvent(context.Background(), newEvent(t, events.TransactionSubmitted, events.TransactionSubmittedEvent{
		TransactionID: "tx-1",
		Amount:        decimal.RequireFromString("12.50"),
		PaymentMethod: models.PaymentMethodPix,
		GoodsType:     "FOOD",
		TaxCategory:   "REDUCED",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.transactions) != 1 {
		t.Fatalf("expected one cached view, got %d", len(w.transactions))
	}
	view := w.transactions[0]
	if view.ID != "tx-1" || view.PaymentMethod != models.PaymentMethodPix || !view.Amount.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("unexpected view %+v", view)
	}
}

func TestHandleTaxEvent(t *testing.T) {
	w := &recordingWriter{}
	p := NewViewProjector(w, w)

	err := p.HandleTaxEvent(context.Background(), newEvent(t, events.TaxSubmitted, events.TaxSubmittedEvent{
		TaxCategory: "STD",
		TaxValue:    decimal.RequireFromString("0.2"),
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.taxes) != 1 || w.taxes[0].Category != "STD" {
		t.Fatalf("unexpected cached taxes %+v", w.taxes)
	}
}

func TestProjectorIgnoresUnknownEvents(t *testing.T) {
	w := &recordingWriter{}
	p := NewViewProjector(w, w)

	if err := p.HandleTransactionEvent(context.Background(), newEvent(t, "transaction.voided", map[string]string{})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.transactions) != 0 {
		t.Errorf("expected no views for unknown event types")
	}
}

func TestProjectorRejectsUndecodablePayload(t *testing.T) {
	w := &recordingWriter{}
	p := NewViewProjector(w, w)

	event := events.Event{Type: events.TaxSubmitted, Data: json.RawMessage(`{"taxValue":"not-a-number"}`)}
	if err := p.HandleTaxEvent(context.Background(), event); err == nil {
		t.Errorf("expected decode error so the message stays pending")
	}
}
