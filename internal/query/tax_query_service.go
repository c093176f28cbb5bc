package query

import (
	"context"

	"github.com/eaglebank/transactions/shared/cqrs"
	"github.com/eaglebank/transactions/shared/errs"
	"github.com/eaglebank/transactions/shared/models"
)

type TaxReader interface {
	GetByCategory(ctx context.Context, category string) (*models.TaxView, error)
	ListAll(ctx context.Context) ([]models.TaxView, error)
}

// TaxQueryService serves tax rate reads.
type TaxQueryService struct {
	readRepo TaxReader
}

func NewTaxQueryService(readRepo TaxReader) *TaxQueryService {
	return &TaxQueryService{readRepo: readRepo}
}

// GetTax looks a rate up by category. The category is passed to the store
// as-is, including the empty string; a store not-found error is returned
// unchanged.
func (s *TaxQueryService) GetTax(ctx context.Context, q cqrs.GetTaxQuery) (*models.TaxView, error) {
	view, err := s.readRepo.GetByCategory(ctx, q.TaxCategory)
	if err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return nil, err
		}
		return nil, errs.NewInternal(err)
	}
	if view == nil {
		return nil, errs.NewNotFound("Tax is not found")
	}
	return view, nil
}

// ListTaxes returns every tax rate; an empty store yields an empty list.
func (s *TaxQueryService) ListTaxes(ctx context.Context, _ cqrs.ListTaxesQuery) ([]models.TaxView, error) {
	views, err := s.readRepo.ListAll(ctx)
	if err != nil {
		return nil, errs.NewInternal(err)
	}
	if views == nil {
		views = []models.TaxView{}
	}
	return views, nil
}
