package request

import (
	"strconv"
	"strings"

	"rv-portal/internal/domain/geo"
	"rv-portal/internal/domain/inventory"
	"rv-portal/internal/pkg/errs"
	"rv-portal/internal/usecase/queries"
	"rv-portal/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

var ErrInvalidQuery = errs.New("invalid query parameters")

// InventoryQuery binds GET /api/inventory. List parameters are comma separated.
type InventoryQuery struct {
	LocationIDs   string   `form:"locationIds"`
	ClassNames    string   `form:"classNames"`
	Manufacturers string   `form:"manufacturers"`
	Condition     string   `form:"condition" binding:"omitempty,oneof=new used"`
	MinPrice      string   `form:"minPrice"`
	MaxPrice      string   `form:"maxPrice"`
	MinYear       *int     `form:"minYear" binding:"omitempty,min=1900,max=2100"`
	MaxYear       *int     `form:"maxYear" binding:"omitempty,min=1900,max=2100"`
	MinSleeps     *int     `form:"minSleeps" binding:"omitempty,min=0,max=20"`
	MinLength     *float64 `form:"minLength" binding:"omitempty,min=0"`
	MaxLength     *float64 `form:"maxLength" binding:"omitempty,min=0"`
	Search        string   `form:"search" binding:"max=200"`
	Sort          string   `form:"sort"`
	Group         bool     `form:"group"`
	Lat           *float64 `form:"lat"`
	Lng           *float64 `form:"lng"`
	Limit         int      `form:"limit" binding:"omitempty,min=1,max=2000"`
}

// ToQuery pushes locations and classes down to the stored procedure and keeps every
// filter as an in-memory criterion as well.
func (q *InventoryQuery) ToQuery() (queries.InventoryQuery, error) {
	locationIDs, err := SplitInts(q.LocationIDs)
	if err != nil {
		return queries.InventoryQuery{}, errs.Mark(errs.Wrap(err, "locationIds"), ErrInvalidQuery)
	}
	classNames := SplitList(q.ClassNames, ",")

	minPrice, err := parseMoney(q.MinPrice)
	if err != nil {
		return queries.InventoryQuery{}, errs.Mark(errs.Wrap(err, "minPrice"), ErrInvalidQuery)
	}
	maxPrice, err := parseMoney(q.MaxPrice)
	if err != nil {
		return queries.InventoryQuery{}, errs.Mark(errs.Wrap(err, "maxPrice"), ErrInvalidQuery)
	}

	origin, err := Origin(q.Lat, q.Lng)
	if err != nil {
		return queries.InventoryQuery{}, err
	}

	return queries.InventoryQuery{
		Search: shared.InventorySearch{
			LocationIDs: locationIDs,
			ClassNames:  classNames,
		},
		Criteria: inventory.Criteria{
			LocationIDs:   locationIDs,
			ClassNames:    classNames,
			Manufacturers: SplitList(q.Manufacturers, ","),
			Condition:     q.Condition,
			MinPrice:      minPrice,
			MaxPrice:      maxPrice,
			MinYear:       q.MinYear,
			MaxYear:       q.MaxYear,
			MinSleeps:     q.MinSleeps,
			MinLength:     q.MinLength,
			MaxLength:     q.MaxLength,
			Search:        strings.TrimSpace(q.Search),
		},
		Sort:   q.Sort,
		Origin: origin,
		Group:  q.Group,
		Limit:  q.Limit,
	}, nil
}

// Origin requires lat and lng together; neither means no origin.
func Origin(lat, lng *float64) (*geo.Coordinates, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, errs.Mark(errs.New("lat and lng must be given together"), ErrInvalidQuery)
	}
	c, err := geo.NewCoordinates(*lat, *lng)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuery)
	}
	return &c, nil
}

func SplitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func SplitInts(s string) ([]int, error) {
	parts := SplitList(s, ",")
	if len(parts) == 0 {
		return nil, nil
	}
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func parseMoney(s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	if d.IsNegative() {
		return nil, errs.New("must not be negative")
	}
	return &d, nil
}
