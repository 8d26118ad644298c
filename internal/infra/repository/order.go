package repository

import (
	"context"
	"encoding/json"

	"rv-portal/internal/domain/checkout"
	"rv-portal/internal/infra"
	"rv-portal/internal/infra/query"
	"rv-portal/internal/pkg/pgconv"
	"rv-portal/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db query.DBTX, arg query.CreateOrderParams) error
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

func (r *OrderRepository) Create(ctx context.Context, tx query.DBTX, order *checkout.Order) error {
	params, err := toCreateOrderParams(order)
	if err != nil {
		return infra.WrapRepoErr("failed to encode order", err, infra.KindInvalidData)
	}
	if err := r.queries.CreateOrder(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func toCreateOrderParams(o *checkout.Order) (query.CreateOrderParams, error) {
	accessories := make([]shared.OrderAccessory, 0, len(o.Accessories()))
	for _, a := range o.Accessories() {
		accessories = append(accessories, shared.OrderAccessory{
			Code:      a.Code,
			Name:      a.Name,
			Quantity:  a.Quantity,
			UnitPrice: a.Price,
		})
	}
	accessoriesJSON, err := json.Marshal(accessories)
	if err != nil {
		return query.CreateOrderParams{}, err
	}

	unit := o.Unit()
	f := o.Fulfillment()
	sig := o.Signature()
	sum := o.Summary()

	params := query.CreateOrderParams{
		ID:                pgconv.UUIDToPgtype(o.ID()),
		CustomerEmail:     o.Email(),
		StockNumber:       unit.StockNumber,
		UnitTitle:         unit.Title,
		ListPrice:         pgconv.NumericFromDecimal(unit.ListPrice),
		PartnerPrice:      pgconv.NumericFromDecimal(unit.PartnerPrice),
		Accessories:       accessoriesJSON,
		ProtectionCode:    o.Protection().Code,
		ProtectionPrice:   pgconv.NumericFromDecimal(o.Protection().Price),
		FulfillmentMethod: string(f.Method),
		DestinationZip:    pgconv.StringOrNull(f.DestinationZip),
		DeliveryFee:       pgconv.NumericFromDecimal(f.Fee),
		SignerName:        sig.SignerName,
		SignedAt:          pgconv.TimeToPgtype(sig.SignedAt),
		SignatureKey:      pgconv.StringOrNull(sig.StorageKey),
		Subtotal:          pgconv.NumericFromDecimal(sum.Subtotal),
		Total:             pgconv.NumericFromDecimal(sum.Total),
		MonthlyEstimate:   pgconv.NumericFromDecimal(sum.MonthlyEstimate),
		CreatedAt:         pgconv.TimeToPgtype(o.CreatedAt()),
	}
	switch f.Method {
	case checkout.MethodPickup:
		params.PickupLocationID = pgconv.Int4ToPgtype(int32(f.PickupLocationID)) // #nosec G115 -- cmf ids are small
	case checkout.MethodDelivery:
		params.DeliveryMiles = pgtype.Int4{Int32: int32(f.Miles), Valid: true} // #nosec G115 -- bounded by the catalog
	}
	return params, nil
}
