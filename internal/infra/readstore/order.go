package readstore

import (
	"context"
	"encoding/json"

	"rv-portal/internal/infra"
	"rv-portal/internal/infra/query"
	"rv-portal/internal/pkg/pgconv"
	"rv-portal/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type OrderReadQueries interface {
	GetOrder(ctx context.Context, db query.DBTX, id pgtype.UUID) (query.PortalOrder, error)
	ListOrdersByEmail(ctx context.Context, db query.DBTX, email string, limit int32) ([]query.PortalOrder, error)
	StockHasOpenOrder(ctx context.Context, db query.DBTX, stockNumber string) (bool, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      query.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db query.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.OrderRecord, error) {
	row, err := r.queries.GetOrder(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	rec, err := toOrderRecord(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid order row", err, infra.KindInvalidData)
	}
	return rec, nil
}

func (r *OrderReadStore) ListByEmail(ctx context.Context, email string, limit int) ([]*shared.OrderRecord, error) {
	rows, err := r.queries.ListOrdersByEmail(ctx, r.db, email, int32(limit)) // #nosec G115 -- bounded by the handler
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}

	result := make([]*shared.OrderRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := toOrderRecord(row)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid order row", err, infra.KindInvalidData)
		}
		result = append(result, rec)
	}
	return result, nil
}

func (r *OrderReadStore) StockHasOpenOrder(ctx context.Context, stockNumber string) (bool, error) {
	exists, err := r.queries.StockHasOpenOrder(ctx, r.db, stockNumber)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check open orders", err)
	}
	return exists, nil
}

func toOrderRecord(row query.PortalOrder) (*shared.OrderRecord, error) {
	var accessories []shared.OrderAccessory
	if len(row.Accessories) > 0 {
		if err := json.Unmarshal(row.Accessories, &accessories); err != nil {
			return nil, err
		}
	}

	amounts := make([]decimal.Decimal, 7)
	for i, n := range []pgtype.Numeric{
		row.ListPrice, row.PartnerPrice, row.ProtectionPrice, row.DeliveryFee,
		row.Subtotal, row.Total, row.MonthlyEstimate,
	} {
		d, err := pgconv.DecimalFromNumeric(n)
		if err != nil {
			return nil, err
		}
		amounts[i] = d
	}

	rec := &shared.OrderRecord{
		ID:                uuid.UUID(row.ID.Bytes),
		CustomerEmail:     row.CustomerEmail,
		StockNumber:       row.StockNumber,
		UnitTitle:         row.UnitTitle,
		ListPrice:         amounts[0],
		PartnerPrice:      amounts[1],
		Accessories:       accessories,
		ProtectionCode:    row.ProtectionCode,
		ProtectionPrice:   amounts[2],
		FulfillmentMethod: row.FulfillmentMethod,
		DestinationZip:    pgconv.StringFromPgtype(row.DestinationZip),
		DeliveryFee:       amounts[3],
		SignerName:        row.SignerName,
		SignedAt:          pgconv.TimeFromPgtype(row.SignedAt),
		SignatureKey:      pgconv.StringFromPgtype(row.SignatureKey),
		Subtotal:          amounts[4],
		Total:             amounts[5],
		MonthlyEstimate:   amounts[6],
		Status:            row.Status,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
	}
	if row.PickupLocationID.Valid {
		id := int(row.PickupLocationID.Int32)
		rec.PickupLocationID = &id
	}
	if row.DeliveryMiles.Valid {
		miles := int(row.DeliveryMiles.Int32)
		rec.DeliveryMiles = &miles
	}
	return rec, nil
}
