package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventorySearch is the server-side narrowing pushed into unit.get_inventory.
// Empty values mean "any".
type InventorySearch struct {
	LocationIDs   []int
	ClassNames    []string
	Manufacturers []string
	Makes         []string
	Models        []string
	MinYear       *int
	MaxYear       *int
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	MinLength     *float64
	MaxLength     *float64
	MinSleeps     *int
	StockNumber   string
	Search        string
	Condition     string
	Limit         int
	Offset        int
}

// OrderRecord is the persisted shape of a submitted order.
type OrderRecord struct {
	ID                uuid.UUID
	CustomerEmail     string
	StockNumber       string
	UnitTitle         string
	ListPrice         decimal.Decimal
	PartnerPrice      decimal.Decimal
	Accessories       []OrderAccessory
	ProtectionCode    string
	ProtectionPrice   decimal.Decimal
	FulfillmentMethod string
	PickupLocationID  *int
	DestinationZip    string
	DeliveryMiles     *int
	DeliveryFee       decimal.Decimal
	SignerName        string
	SignedAt          time.Time
	SignatureKey      string
	Subtotal          decimal.Decimal
	Total             decimal.Decimal
	MonthlyEstimate   decimal.Decimal
	Status            string
	CreatedAt         time.Time
}

type OrderAccessory struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// DrivingDistance is one origin→destination leg from the driving-distance API.
type DrivingDistance struct {
	Destination     string
	Address         string
	Miles           float64
	DurationMinutes int
	// Status is the API's per-element status, "OK" when the leg was routable.
	Status string
}

func (d DrivingDistance) OK() bool { return d.Status == "OK" }
