//go:build unit || e2e

package builder

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"time"

	"rv-portal/internal/domain/checkout"
	"rv-portal/internal/domain/pricing"
	reqdto "rv-portal/internal/handler/dto/request"
	"rv-portal/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	ID             uuid.UUID
	Email          string
	Unit           *UnitBuilder
	Accessories    []checkout.AccessoryRequest
	ProtectionCode string
	Method         string
	DestinationZip string
	Miles          int
	SignerName     string
	SignedAt       time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:             uuid.New(),
		Email:          "buyer@partner.example.com",
		Unit:           NewUnitBuilder(),
		Accessories:    []checkout.AccessoryRequest{{Code: "HITCH-WD", Quantity: 1}},
		ProtectionCode: "ESP-3",
		Method:         string(checkout.MethodPickup),
		SignerName:     "Pat Partner",
		SignedAt:       time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

// SignatureDataURL is a small valid signature pad capture.
func SignatureDataURL() string {
	img := image.NewGray(image.Rect(0, 0, 8, 4))
	img.Set(2, 2, color.White)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return checkout.SignatureDataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func (b *OrderBuilder) BuildRequestDTO() reqdto.OrderRequest {
	items := make([]reqdto.AccessoryItem, len(b.Accessories))
	for i, a := range b.Accessories {
		items[i] = reqdto.AccessoryItem{Code: a.Code, Quantity: a.Quantity}
	}
	plan := b.ProtectionCode
	return reqdto.OrderRequest{
		StockNumber:    b.Unit.StockNumber,
		Accessories:    &items,
		ProtectionCode: &plan,
		Fulfillment: &reqdto.FulfillmentInput{
			Method:         b.Method,
			DestinationZip: b.DestinationZip,
		},
		Signature: &reqdto.SignatureInput{
			SignerName: b.SignerName,
			DataURL:    SignatureDataURL(),
		},
	}
}

// BuildDraft walks every wizard step with the default catalog.
func (b *OrderBuilder) BuildDraft(terms pricing.Terms) (*checkout.Draft, error) {
	catalog, err := checkout.DefaultCatalog()
	if err != nil {
		return nil, err
	}
	sel, err := b.Unit.BuildSelection(terms)
	if err != nil {
		return nil, err
	}
	sig, err := checkout.NewSignature(b.SignerName, SignatureDataURL(), b.SignedAt)
	if err != nil {
		return nil, err
	}

	d := checkout.NewDraft(catalog, terms)
	steps := []func() error{
		func() error { return d.SelectUnit(sel) },
		func() error { return d.SetAccessories(b.Accessories) },
		func() error { return d.ChooseProtection(b.ProtectionCode) },
		func() error {
			return d.SetFulfillment(checkout.Fulfillment{
				Method:         checkout.FulfillmentMethod(b.Method),
				DestinationZip: b.DestinationZip,
				Miles:          b.Miles,
			})
		},
		func() error { return d.Sign(sig) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (b *OrderBuilder) BuildOrder(terms pricing.Terms) (*checkout.Order, error) {
	d, err := b.BuildDraft(terms)
	if err != nil {
		return nil, err
	}
	return checkout.NewOrder(b.Email, d, b.SignedAt)
}

func (b *OrderBuilder) BuildSummary(terms pricing.Terms) (checkout.Summary, error) {
	d, err := b.BuildDraft(terms)
	if err != nil {
		return checkout.Summary{}, err
	}
	return d.Summary()
}

// BuildRecord is the persisted view of the order as the read store returns it.
func (b *OrderBuilder) BuildRecord() *shared.OrderRecord {
	loc := b.Unit.LocationID
	return &shared.OrderRecord{
		ID:                b.ID,
		CustomerEmail:     b.Email,
		StockNumber:       b.Unit.StockNumber,
		UnitTitle:         "2024 Thor Four Winds 28Z",
		ListPrice:         b.Unit.ListPrice,
		PartnerPrice:      decimal.NewFromInt(47500),
		Accessories:       []shared.OrderAccessory{{Code: "HITCH-WD", Name: "Weight distribution hitch", Quantity: 1, UnitPrice: decimal.RequireFromString("749.00")}},
		ProtectionCode:    b.ProtectionCode,
		ProtectionPrice:   decimal.RequireFromString("2495.00"),
		FulfillmentMethod: b.Method,
		PickupLocationID:  &loc,
		SignerName:        b.SignerName,
		SignedAt:          b.SignedAt,
		Subtotal:          decimal.RequireFromString("50744.00"),
		Total:             decimal.RequireFromString("50744.00"),
		MonthlyEstimate:   decimal.RequireFromString("484.95"),
		Status:            "submitted",
		CreatedAt:         b.SignedAt,
	}
}
