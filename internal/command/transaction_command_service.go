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

// TransactionWriter is the write store for transactions.
type TransactionWriter interface {
	Create(ctx context.Context, transaction *models.Transaction) error
}

// EventPublisher appends an event to a stream.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// TransactionCommandService persists submitted transactions and announces them
// on the transaction event stream.
type TransactionCommandService struct {
	writeRepo TransactionWriter
	publisher EventPublisher
	now       func() time.Time
}

func NewTransactionCommandService(writeRepo TransactionWriter, publisher EventPublisher) *TransactionCommandService {
	return &TransactionCommandService{
		writeRepo: writeRepo,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SubmitTransaction stores a validated submission. Any store failure is
// reported as an internal failure; duplicate ids are left to the store.
func (s *TransactionCommandService) SubmitTransaction(ctx context.Context, cmd cqrs.SubmitTransactionCommand) error {
	transaction := &models.Transaction{
		ID:            cmd.TransactionID,
		Amount:        cmd.Amount,
		PaymentMethod: cmd.PaymentMethod,
		GoodsType:     cmd.GoodsType,
		TaxCategory:   cmd.TaxCategory,
		CreatedAt:     s.now(),
	}
	if err := s.writeRepo.Create(ctx, transaction); err != nil {
		return errs.NewInternal(err)
	}

	if err := s.publisher.Publish(ctx, events.TransactionEventsStream, events.TransactionSubmitted, events.TransactionSubmittedEvent{
		TransactionID: transaction.ID,
		Amount:        transaction.Amount,
		PaymentMethod: transaction.PaymentMethod,
		GoodsType:     transaction.GoodsType,
		TaxCategory:   transaction.TaxCategory,
		CreatedAt:     transaction.CreatedAt,
	}); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("transaction_id", transaction.ID).Msg("failed to publish transaction.submitted event")
	}
	return nil
}
