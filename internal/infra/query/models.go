package query

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type UnitLocation struct {
	Cmf          int32         `db:"cmf"`
	LocationCode pgtype.Text   `db:"location_code"`
	StoreName    pgtype.Text   `db:"store_name"`
	Address      pgtype.Text   `db:"address"`
	City         pgtype.Text   `db:"city"`
	State        pgtype.Text   `db:"state"`
	Zip          pgtype.Text   `db:"zip"`
	Latitude     pgtype.Float8 `db:"latitude"`
	Longitude    pgtype.Float8 `db:"longitude"`
}

type UnitClass struct {
	ID          int32       `db:"id"`
	Code        pgtype.Text `db:"code"`
	Description pgtype.Text `db:"description"`
}

// GetInventoryRow is the projection this service reads from unit.get_inventory.
type GetInventoryRow struct {
	StockNumber      pgtype.Text    `db:"stock_number"`
	Vin              pgtype.Text    `db:"vin"`
	Manufacturer     pgtype.Text    `db:"manufacturer"`
	Make             pgtype.Text    `db:"make"`
	Model            pgtype.Text    `db:"model"`
	ModelYear        pgtype.Int4    `db:"model_year"`
	Condition        pgtype.Text    `db:"condition"`
	ClassCode        pgtype.Text    `db:"class_code"`
	ClassDescription pgtype.Text    `db:"class_description"`
	ListPrice        pgtype.Numeric `db:"list_price"`
	LengthFt         pgtype.Float8  `db:"length_ft"`
	DryWeightLbs     pgtype.Int4    `db:"dry_weight_lbs"`
	Sleeps           pgtype.Int4    `db:"sleeps"`
	FreshWaterGal    pgtype.Int4    `db:"fresh_water_gal"`
	GreyWaterGal     pgtype.Int4    `db:"grey_water_gal"`
	BlackWaterGal    pgtype.Int4    `db:"black_water_gal"`
	LocationCmf      pgtype.Int4    `db:"location_cmf"`
	LocationCode     pgtype.Text    `db:"location_code"`
	LocationName     pgtype.Text    `db:"location_name"`
	LocationZip      pgtype.Text    `db:"location_zip"`
	Latitude         pgtype.Float8  `db:"latitude"`
	Longitude        pgtype.Float8  `db:"longitude"`
}

// GetInventoryParams are the 17 positional arguments of unit.get_inventory, in order.
// Nil slices and pointers are sent as NULL, which the procedure treats as "any".
type GetInventoryParams struct {
	LocationIds   []int32
	ClassNames    []string
	Manufacturers []string
	Makes         []string
	Models        []string
	MinYear       pgtype.Int4
	MaxYear       pgtype.Int4
	MinPrice      pgtype.Numeric
	MaxPrice      pgtype.Numeric
	MinLength     pgtype.Float8
	MaxLength     pgtype.Float8
	MinSleeps     pgtype.Int4
	StockNumber   pgtype.Text
	Search        pgtype.Text
	Condition     pgtype.Text
	Limit         pgtype.Int4
	Offset        pgtype.Int4
}

type PortalOrder struct {
	ID                pgtype.UUID        `db:"id"`
	CustomerEmail     string             `db:"customer_email"`
	StockNumber       string             `db:"stock_number"`
	UnitTitle         string             `db:"unit_title"`
	ListPrice         pgtype.Numeric     `db:"list_price"`
	PartnerPrice      pgtype.Numeric     `db:"partner_price"`
	Accessories       []byte             `db:"accessories"`
	ProtectionCode    string             `db:"protection_code"`
	ProtectionPrice   pgtype.Numeric     `db:"protection_price"`
	FulfillmentMethod string             `db:"fulfillment_method"`
	PickupLocationID  pgtype.Int4        `db:"pickup_location_id"`
	DestinationZip    pgtype.Text        `db:"destination_zip"`
	DeliveryMiles     pgtype.Int4        `db:"delivery_miles"`
	DeliveryFee       pgtype.Numeric     `db:"delivery_fee"`
	SignerName        string             `db:"signer_name"`
	SignedAt          pgtype.Timestamptz `db:"signed_at"`
	SignatureKey      pgtype.Text        `db:"signature_key"`
	Subtotal          pgtype.Numeric     `db:"subtotal"`
	Total             pgtype.Numeric     `db:"total"`
	MonthlyEstimate   pgtype.Numeric     `db:"monthly_estimate"`
	Status            string             `db:"status"`
	CreatedAt         pgtype.Timestamptz `db:"created_at"`
}

type CreateOrderParams struct {
	ID                pgtype.UUID
	CustomerEmail     string
	StockNumber       string
	UnitTitle         string
	ListPrice         pgtype.Numeric
	PartnerPrice      pgtype.Numeric
	Accessories       []byte
	ProtectionCode    string
	ProtectionPrice   pgtype.Numeric
	FulfillmentMethod string
	PickupLocationID  pgtype.Int4
	DestinationZip    pgtype.Text
	DeliveryMiles     pgtype.Int4
	DeliveryFee       pgtype.Numeric
	SignerName        string
	SignedAt          pgtype.Timestamptz
	SignatureKey      pgtype.Text
	Subtotal          pgtype.Numeric
	Total             pgtype.Numeric
	MonthlyEstimate   pgtype.Numeric
	CreatedAt         pgtype.Timestamptz
}
