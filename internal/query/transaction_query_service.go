package query

import (
	"context"

	"github.com/eaglebank/transactions/shared/cqrs"
	"github.com/eaglebank/transactions/shared/errs"
	"github.com/eaglebank/transactions/shared/models"
)

// TransactionReader is the read store for transactions. GetByID signals a
// missing record with an errs.KindNotFound error or a nil view.
type TransactionReader interface {
	GetByID(ctx context.Context, id string) (*models.TransactionView, error)
	ListAll(ctx context.Context) ([]models.TransactionView, error)
}

// TransactionQueryService serves transaction reads.
type TransactionQueryService struct {
	readRepo TransactionReader
}

func NewTransactionQueryService(readRepo TransactionReader) *TransactionQueryService {
	return &TransactionQueryService{readRepo: readRepo}
}

func (s *TransactionQueryService) GetTransaction(ctx context.Context, q cqrs.GetTransactionQuery) (*models.TransactionView, error) {
	if q.TransactionID == "" {
		return nil, errs.NewInvalidRequest("Transaction Id is not informed")
	}

	view, err := s.readRepo.GetByID(ctx, q.TransactionID)
	if err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return nil, err
		}
		return nil, errs.NewInternal(err)
	}
	if view == nil {
		return nil, errs.NewNotFound("Transaction is not found")
	}
	return view, nil
}

// ListTransactions returns every transaction. A nil result from the store is
// reported as not found; an empty list is a valid answer.
func (s *TransactionQueryService) ListTransactions(ctx context.Context, _ cqrs.ListTransactionsQuery) ([]models.TransactionView, error) {
	views, err := s.readRepo.ListAll(ctx)
	if err != nil {
		return nil, errs.NewInternal(err)
	}
	if views == nil {
		return nil, errs.NewNotFound("Transaction is not found")
	}
	return views, nil
}
