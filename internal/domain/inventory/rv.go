package inventory

import (
	"errors"
	"fmt"
	"strings"

	"rv-portal/internal/domain/geo"
	"rv-portal/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

var ErrMissingStockNumber = errors.New("inventory row has no stock number")

// UnitClass is an RV category such as "Class A" or "Travel Trailer".
type UnitClass struct {
	ID          int
	Code        string
	Description string
}

// Row is one record returned by unit.get_inventory, already decoded from pgtypes.
type Row struct {
	StockNumber      string
	VIN              string
	Manufacturer     string
	Make             string
	Model            string
	ModelYear        int
	Condition        string
	ClassCode        string
	ClassDescription string
	ListPrice        decimal.Decimal
	LengthFeet       float64
	DryWeightLbs     int
	Sleeps           int
	FreshWaterGal    int
	GreyWaterGal     int
	BlackWaterGal    int
	LocationID       int
	LocationCode     string
	LocationName     string
	LocationZip      string
	Latitude         float64
	Longitude        float64
}

type Tanks struct {
	FreshWaterGal int
	GreyWaterGal  int
	BlackWaterGal int
}

type LocationRef struct {
	ID     int
	Code   string
	Name   string
	Zip    string
	Coords geo.Coordinates
}

// RV is the flat, UI-facing view of one physical unit.
type RV struct {
	StockNumber    string
	VIN            string
	Title          string
	Manufacturer   string
	Make           string
	Model          string
	Year           int
	Condition      string
	ClassCode      string
	ClassName      string
	ListPrice      decimal.Decimal
	PartnerPrice   decimal.Decimal
	Savings        decimal.Decimal
	MonthlyPayment decimal.Decimal
	LengthFeet     float64
	DryWeightLbs   int
	Sleeps         int
	Tanks          Tanks
	Location       LocationRef
	ImageURL       string
}

// Transform flattens a raw row into the view model and prices it with terms.
func Transform(row Row, terms pricing.Terms, imageURL string) (RV, error) {
	stock := strings.TrimSpace(row.StockNumber)
	if stock == "" {
		return RV{}, ErrMissingStockNumber
	}

	quote, err := terms.Quote(row.ListPrice)
	if err != nil {
		return RV{}, fmt.Errorf("pricing stock %s: %w", stock, err)
	}

	return RV{
		StockNumber:    stock,
		VIN:            strings.TrimSpace(row.VIN),
		Title:          title(row),
		Manufacturer:   strings.TrimSpace(row.Manufacturer),
		Make:           strings.TrimSpace(row.Make),
		Model:          strings.TrimSpace(row.Model),
		Year:           row.ModelYear,
		Condition:      normalizeCondition(row.Condition),
		ClassCode:      row.ClassCode,
		ClassName:      row.ClassDescription,
		ListPrice:      quote.ListPrice,
		PartnerPrice:   quote.PartnerPrice,
		Savings:        quote.Savings,
		MonthlyPayment: quote.MonthlyPayment,
		LengthFeet:     row.LengthFeet,
		DryWeightLbs:   row.DryWeightLbs,
		Sleeps:         row.Sleeps,
		Tanks: Tanks{
			FreshWaterGal: row.FreshWaterGal,
			GreyWaterGal:  row.GreyWaterGal,
			BlackWaterGal: row.BlackWaterGal,
		},
		Location: LocationRef{
			ID:     row.LocationID,
			Code:   row.LocationCode,
			Name:   row.LocationName,
			Zip:    row.LocationZip,
			Coords: geo.Coordinates{Latitude: row.Latitude, Longitude: row.Longitude},
		},
		ImageURL: imageURL,
	}, nil
}

func title(row Row) string {
	parts := make([]string, 0, 4)
	if row.ModelYear > 0 {
		parts = append(parts, fmt.Sprintf("%d", row.ModelYear))
	}
	for _, p := range []string{row.Manufacturer, row.Make, row.Model} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

const (
	ConditionNew  = "new"
	ConditionUsed = "used"
)

func normalizeCondition(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "new":
		return ConditionNew
	case "u", "used", "pre-owned":
		return ConditionUsed
	default:
		return strings.ToLower(strings.TrimSpace(s))
	}
}
