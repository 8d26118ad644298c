package response

import (
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"rv-portal/internal/domain/geo"
	"rv-portal/internal/domain/inventory"
	"rv-portal/internal/domain/location"
	"rv-portal/internal/usecase/queries"
)

type UnitClassResponse struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

type LocationResponse struct {
	CMF       int     `json:"cmf"`
	Code      string  `json:"code"`
	StoreName string  `json:"storeName"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Zip       string  `json:"zip"`
	Latitude  float64 `json:"latitude" copier:"-"`
	Longitude float64 `json:"longitude" copier:"-"`
	Miles     *int    `json:"miles,omitempty" copier:"-"`
}

type InitResponse struct {
	Locations   []LocationResponse  `json:"locations"`
	UnitClasses []UnitClassResponse `json:"unitClasses"`
}

type TanksResponse struct {
	FreshWaterGal int `json:"freshWaterGal"`
	GreyWaterGal  int `json:"greyWaterGal"`
	BlackWaterGal int `json:"blackWaterGal"`
}

type UnitLocationResponse struct {
	ID        int     `json:"id"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Zip       string  `json:"zip"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type RVResponse struct {
	StockNumber    string               `json:"stockNumber"`
	VIN            string               `json:"vin"`
	Title          string               `json:"title"`
	Manufacturer   string               `json:"manufacturer"`
	Make           string               `json:"make"`
	Model          string               `json:"model"`
	Year           int                  `json:"year"`
	Condition      string               `json:"condition"`
	ClassCode      string               `json:"classCode"`
	ClassName      string               `json:"className"`
	ListPrice      decimal.Decimal      `json:"listPrice"`
	PartnerPrice   decimal.Decimal      `json:"partnerPrice"`
	Savings        decimal.Decimal      `json:"savings"`
	MonthlyPayment decimal.Decimal      `json:"monthlyPayment"`
	LengthFeet     float64              `json:"lengthFeet"`
	DryWeightLbs   int                  `json:"dryWeightLbs"`
	Sleeps         int                  `json:"sleeps"`
	Tanks          TanksResponse        `json:"tanks" copier:"-"`
	Location       UnitLocationResponse `json:"location" copier:"-"`
	ImageURL       string               `json:"imageUrl"`
	DistanceMiles  *int                 `json:"distanceMiles,omitempty" copier:"-"`
}

type GroupResponse struct {
	Manufacturer       string          `json:"manufacturer"`
	Make               string          `json:"make"`
	Model              string          `json:"model"`
	Year               int             `json:"year"`
	Title              string          `json:"title"`
	Quantity           int             `json:"quantity"`
	MultipleLocations  bool            `json:"multipleLocations"`
	LowestListPrice    decimal.Decimal `json:"lowestListPrice"`
	LowestPartnerPrice decimal.Decimal `json:"lowestPartnerPrice"`
	Units              []RVResponse    `json:"units"`
}

type InventoryResponse struct {
	Count   int             `json:"count"`
	Fetched int             `json:"fetched"`
	Matched int             `json:"matched"`
	Sort    string          `json:"sort"`
	Units   []RVResponse    `json:"units"`
	Groups  []GroupResponse `json:"groups,omitempty"`
}

func FromUnitClasses(classes []inventory.UnitClass) []UnitClassResponse {
	out := make([]UnitClassResponse, 0, len(classes))
	_ = copier.Copy(&out, &classes)
	return out
}

func FromLocation(l location.Location) LocationResponse {
	var res LocationResponse
	_ = copier.Copy(&res, &l)
	res.Latitude = l.Coords.Latitude
	res.Longitude = l.Coords.Longitude
	return res
}

func FromLocations(locs []location.WithDistance, withMiles bool) []LocationResponse {
	out := make([]LocationResponse, len(locs))
	for i, l := range locs {
		out[i] = FromLocation(l.Location)
		if withMiles {
			miles := l.Miles
			out[i].Miles = &miles
		}
	}
	return out
}

func FromInitData(d *queries.InitData) InitResponse {
	locs := make([]LocationResponse, len(d.Locations))
	for i, l := range d.Locations {
		locs[i] = FromLocation(l)
	}
	return InitResponse{Locations: locs, UnitClasses: FromUnitClasses(d.UnitClasses)}
}

// FromRV adds the great-circle distance to the unit's lot when origin is set.
func FromRV(rv inventory.RV, origin *geo.Coordinates) RVResponse {
	var res RVResponse
	_ = copier.Copy(&res, &rv)
	res.Tanks = TanksResponse{
		FreshWaterGal: rv.Tanks.FreshWaterGal,
		GreyWaterGal:  rv.Tanks.GreyWaterGal,
		BlackWaterGal: rv.Tanks.BlackWaterGal,
	}
	res.Location = UnitLocationResponse{
		ID:        rv.Location.ID,
		Code:      rv.Location.Code,
		Name:      rv.Location.Name,
		Zip:       rv.Location.Zip,
		Latitude:  rv.Location.Coords.Latitude,
		Longitude: rv.Location.Coords.Longitude,
	}
	if origin != nil && !rv.Location.Coords.IsZero() {
		miles := geo.DistanceMiles(*origin, rv.Location.Coords)
		res.DistanceMiles = &miles
	}
	return res
}

func FromRVs(units []inventory.RV, origin *geo.Coordinates) []RVResponse {
	out := make([]RVResponse, len(units))
	for i, u := range units {
		out[i] = FromRV(u, origin)
	}
	return out
}

func FromInventoryResult(r *queries.InventoryResult, origin *geo.Coordinates) InventoryResponse {
	res := InventoryResponse{
		Count:   len(r.Units),
		Fetched: r.Fetched,
		Matched: r.Matched,
		Sort:    string(r.Sort),
		Units:   FromRVs(r.Units, origin),
	}
	if r.Groups != nil {
		res.Groups = make([]GroupResponse, len(r.Groups))
		for i, g := range r.Groups {
			res.Groups[i] = GroupResponse{
				Manufacturer:       g.Manufacturer,
				Make:               g.Make,
				Model:              g.Model,
				Year:               g.Year,
				Title:              g.Title,
				Quantity:           g.Quantity,
				MultipleLocations:  g.MultipleLocations,
				LowestListPrice:    g.LowestListPrice,
				LowestPartnerPrice: g.LowestPartnerPrice,
				Units:              FromRVs(g.Units, origin),
			}
		}
	}
	return res
}
