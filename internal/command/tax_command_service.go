package command

import (
	"context"
	"time"

	"github.com/eaglebank/transactions/shared/cqrs"
	"github.com/eaglebank/transactions/shared/errs"
	"github.com/eaglebank/transactions/shared/events"
	"github.com/eaglebank/transactions/shared/models"
	"github.com/rs/zerolog"
)

type TaxWriter interface {
	Upsert(ctx context.Context, tax *models.Tax) error
}

// TaxViewCacher refreshes the cached read view of a tax rate.
type TaxViewCacher interface {
	CacheTaxView(ctx context.Context, view *models.TaxView)
}

// TaxCommandService stores tax rates. Re-submitting a category replaces its rate.
type TaxCommandService struct {
	writeRepo TaxWriter
	views     TaxViewCacher
	publisher EventPublisher
	now       func() time.Time
}

func NewTaxCommandService(writeRepo TaxWriter, views TaxViewCacher, publisher EventPublisher) *TaxCommandService {
	return &TaxCommandService{
		writeRepo: writeRepo,
		views:     views,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *TaxCommandService) SubmitTax(ctx context.Context, cmd cqrs.SubmitTaxCommand) error {
	now := s.now()
	tax := &models.Tax{
		Category:  cmd.TaxCategory,
		Value:     cmd.TaxValue,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.writeRepo.Upsert(ctx, tax); err != nil {
		return errs.NewInternal(err)
	}

	// the stored rate replaces any cached view before the event goes out
	s.views.CacheTaxView(ctx, &models.TaxView{
		Category:  tax.Category,
		Value:     tax.Value,
		CreatedAt: tax.CreatedAt,
		UpdatedAt: tax.UpdatedAt,
	})

	if err := s.publisher.Publish(ctx, events.TaxEventsStream, events.TaxSubmitted, events.TaxSubmittedEvent{
		TaxCategory: tax.Category,
		TaxValue:    tax.Value,
		CreatedAt:   tax.CreatedAt,
		UpdatedAt:   tax.UpdatedAt,
	}); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("tax_category", tax.Category).Msg("failed to publish tax.submitted event")
	}
	return nil
}
