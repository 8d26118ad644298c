//go:build unit || e2e

package builder

import (
	"rv-portal/internal/domain/checkout"
	"rv-portal/internal/domain/inventory"
	"rv-portal/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

type UnitBuilder struct {
	StockNumber  string
	VIN          string
	Manufacturer string
	Make         string
	Model        string
	Year         int
	Condition    string
	ClassCode    string
	ClassName    string
	ListPrice    decimal.Decimal
	LengthFeet   float64
	Sleeps       int
	LocationID   int
	LocationCode string
	LocationName string
	LocationZip  string
	Latitude     float64
	Longitude    float64
	ImageURL     string
}

func NewUnitBuilder() *UnitBuilder {
	return &UnitBuilder{
		StockNumber:  "S100",
		VIN:          "1FTEW1E50JFA00001",
		Manufacturer: "Thor",
		Make:         "Four Winds",
		Model:        "28Z",
		Year:         2024,
		Condition:    "new",
		ClassCode:    "C",
		ClassName:    "Class C",
		ListPrice:    decimal.NewFromInt(50000),
		LengthFeet:   30.5,
		Sleeps:       6,
		LocationID:   101,
		LocationCode: "AUS",
		LocationName: "Austin",
		LocationZip:  "78701",
		Latitude:     30.2672,
		Longitude:    -97.7431,
		ImageURL:     "/images/units/S100.jpg",
	}
}

func (b *UnitBuilder) With(mutate func(*UnitBuilder)) *UnitBuilder {
	mutate(b)
	return b
}

func (b *UnitBuilder) BuildRow() inventory.Row {
	return inventory.Row{
		StockNumber:      b.StockNumber,
		VIN:              b.VIN,
		Manufacturer:     b.Manufacturer,
		Make:             b.Make,
		Model:            b.Model,
		ModelYear:        b.Year,
		Condition:        b.Condition,
		ClassCode:        b.ClassCode,
		ClassDescription: b.ClassName,
		ListPrice:        b.ListPrice,
		LengthFeet:       b.LengthFeet,
		Sleeps:           b.Sleeps,
		LocationID:       b.LocationID,
		LocationCode:     b.LocationCode,
		LocationName:     b.LocationName,
		LocationZip:      b.LocationZip,
		Latitude:         b.Latitude,
		Longitude:        b.Longitude,
	}
}

// BuildRV prices the unit with terms the same way the inventory queries do.
func (b *UnitBuilder) BuildRV(terms pricing.Terms) (inventory.RV, error) {
	return inventory.Transform(b.BuildRow(), terms, b.ImageURL)
}

func (b *UnitBuilder) BuildSelection(terms pricing.Terms) (checkout.UnitSelection, error) {
	rv, err := b.BuildRV(terms)
	if err != nil {
		return checkout.UnitSelection{}, err
	}
	return checkout.UnitSelection{
		StockNumber:  rv.StockNumber,
		Title:        rv.Title,
		ListPrice:    rv.ListPrice,
		PartnerPrice: rv.PartnerPrice,
		LocationID:   rv.Location.ID,
	}, nil
}
