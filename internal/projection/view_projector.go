// Package projection keeps the Redis read model in step with the event streams.
package projection

import (
	"context"
	"fmt"

	"github.com/eaglebank/transactions/shared/events"
	"github.com/eaglebank/transactions/shared/models"
	"github.com/rs/zerolog/log"
)

type TransactionViewWriter interface {
	CacheTransactionView(ctx context.Context, view *models.TransactionView)
}

type TaxViewWriter interface {
	CacheTaxView(ctx context.Context, view *models.TaxView)
}

// ViewProjector turns submitted events into cached views.
type ViewProjector struct {
	transactions TransactionViewWriter
	taxes        TaxViewWriter
}

func NewViewProjector(transactions TransactionViewWriter, taxes TaxViewWriter) *ViewProjector {
	return &ViewProjector{transactions: transactions, taxes: taxes}
}

// HandleTransactionEvent is an events.Handler for the transaction stream.
func (p *ViewProjector) HandleTransactionEvent(ctx context.Context, event events.Event) error {
	if event.Type != events.TransactionSubmitted {
		log.Debug().Str("type", event.Type).Msg("projector: ignoring event")
		return nil
	}

	var payload events.TransactionSubmittedEvent
	if err := event.Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode %s: %w", event.Type, err)
	}

	p.transactions.CacheTransactionView(ctx, &models.TransactionView{
		ID:            payload.TransactionID,
		Amount:        payload.Amount,
		PaymentMethod: payload.PaymentMethod,
		GoodsType:     payload.GoodsType,
		TaxCategory:   payload.TaxCategory,
		CreatedAt:     payload.CreatedAt,
	})
	return nil
}

// HandleTaxEvent is an events.Handler for the tax stream.
func (p *ViewProjector) HandleTaxEvent(ctx context.Context, event events.Event) error {
	if event.Type != events.TaxSubmitted {
		log.Debug().Str("type", event.Type).Msg("projector: ignoring event")
		return nil
	}

	var payload events.TaxSubmittedEvent
	if err := event.Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode %s: %w", event.Type, err)
	}

	p.taxes.CacheTaxView(ctx, &models.TaxView{
		Category:  payload.TaxCategory,
		Value:     payload.TaxValue,
		CreatedAt: payload.CreatedAt,
		UpdatedAt: payload.UpdatedAt,
	})
	return nil
}
