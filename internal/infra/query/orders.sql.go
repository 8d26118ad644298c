package query

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createOrder = `
INSERT INTO portal.orders (
    id, customer_email, stock_number, unit_title, list_price, partner_price, accessories,
    protection_code, protection_price, fulfillment_method, pickup_location_id, destination_zip,
    delivery_miles, delivery_fee, signer_name, signed_at, signature_key, subtotal, total,
    monthly_estimate, created_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21
)
`

func (q *Queries) CreateOrder(ctx context.Context, db DBTX, arg CreateOrderParams) error {
	_, err := db.Exec(ctx, createOrder,
		arg.ID,
		arg.CustomerEmail,
		arg.StockNumber,
		arg.UnitTitle,
		arg.ListPrice,
		arg.PartnerPrice,
		arg.Accessories,
		arg.ProtectionCode,
		arg.ProtectionPrice,
		arg.FulfillmentMethod,
		arg.PickupLocationID,
		arg.DestinationZip,
		arg.DeliveryMiles,
		arg.DeliveryFee,
		arg.SignerName,
		arg.SignedAt,
		arg.SignatureKey,
		arg.Subtotal,
		arg.Total,
		arg.MonthlyEstimate,
		arg.CreatedAt,
	)
	return err
}

const orderColumns = `
id, customer_email, stock_number, unit_title, list_price, partner_price, accessories,
protection_code, protection_price, fulfillment_method, pickup_location_id, destination_zip,
delivery_miles, delivery_fee, signer_name, signed_at, signature_key, subtotal, total,
monthly_estimate, status, created_at
`

const getOrder = `SELECT ` + orderColumns + ` FROM portal.orders WHERE id = $1`

func (q *Queries) GetOrder(ctx context.Context, db DBTX, id pgtype.UUID) (PortalOrder, error) {
	rows, err := db.Query(ctx, getOrder, id)
	if err != nil {
		return PortalOrder{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[PortalOrder])
}

const listOrdersByEmail = `SELECT ` + orderColumns + `
FROM portal.orders
WHERE customer_email = $1
ORDER BY created_at DESC, id
LIMIT $2
`

func (q *Queries) ListOrdersByEmail(ctx context.Context, db DBTX, email string, limit int32) ([]PortalOrder, error) {
	rows, err := db.Query(ctx, listOrdersByEmail, email, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[PortalOrder])
}

const stockHasOpenOrder = `
SELECT EXISTS (SELECT 1 FROM portal.orders WHERE stock_number = $1 AND status = 'submitted')
`

func (q *Queries) StockHasOpenOrder(ctx context.Context, db DBTX, stockNumber string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, stockHasOpenOrder, stockNumber).Scan(&exists)
	return exists, err
}
