package queries

import (
	"context"

	"github.com/google/uuid"

	"rv-portal/internal/domain/checkout"
	"rv-portal/internal/infra"
	"rv-portal/internal/pkg/errs"
	"rv-portal/internal/usecase/shared"
)

var (
	ErrOrderNotFound     = errs.New("order not found")
	ErrOrdersUnavailable = errs.New("orders unavailable")
)

const (
	DefaultOrderListLimit = 20
	MaxOrderListLimit     = 100
)

type OrderQueries interface {
	// Get only returns orders placed by email; other customers' orders read as not found.
	Get(ctx context.Context, email string, id uuid.UUID) (*shared.OrderRecord, error)
	ListMine(ctx context.Context, email string, limit int) ([]*shared.OrderRecord, error)
	Catalog(ctx context.Context) *checkout.Catalog
}

type orderQueriesImpl struct {
	store   OrderReadStore
	catalog *checkout.Catalog
}

func NewOrderQueries(store OrderReadStore, catalog *checkout.Catalog) OrderQueries {
	return &orderQueriesImpl{store: store, catalog: catalog}
}

func (q *orderQueriesImpl) Get(ctx context.Context, email string, id uuid.UUID) (*shared.OrderRecord, error) {
	rec, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, errs.Mark(err, ErrOrdersUnavailable)
	}
	if rec.CustomerEmail != email {
		return nil, ErrOrderNotFound
	}
	return rec, nil
}

func (q *orderQueriesImpl) ListMine(ctx context.Context, email string, limit int) ([]*shared.OrderRecord, error) {
	if limit <= 0 {
		limit = DefaultOrderListLimit
	}
	if limit > MaxOrderListLimit {
		limit = MaxOrderListLimit
	}
	recs, err := q.store.ListByEmail(ctx, email, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrOrdersUnavailable)
	}
	return recs, nil
}

func (q *orderQueriesImpl) Catalog(_ context.Context) *checkout.Catalog {
	return q.catalog
}
