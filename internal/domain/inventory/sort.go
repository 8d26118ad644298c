package inventory

import (
	"errors"
	"sort"

	"rv-portal/internal/domain/geo"
)

type SortKey string

const (
	SortPriceAsc    SortKey = "price_asc"
	SortPriceDesc   SortKey = "price_desc"
	SortYearDesc    SortKey = "year_desc"
	SortYearAsc     SortKey = "year_asc"
	SortLengthAsc   SortKey = "length_asc"
	SortLengthDesc  SortKey = "length_desc"
	SortSleepsDesc  SortKey = "sleeps_desc"
	SortDistanceAsc SortKey = "distance_asc"
)

var (
	ErrUnknownSortKey  = errors.New("unknown sort key")
	ErrSortNeedsOrigin = errors.New("distance sort needs an origin")
)

func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortPriceAsc, SortPriceDesc, SortYearDesc, SortYearAsc,
		SortLengthAsc, SortLengthDesc, SortSleepsDesc, SortDistanceAsc:
		return k, nil
	case "":
		return SortPriceAsc, nil
	default:
		return "", ErrUnknownSortKey
	}
}

// Sort returns a sorted copy of units. Ties break on
// stock number so equal keys always come back in the same order.
func Sort(units []RV, key SortKey, origin *geo.Coordinates) ([]RV, error) {
	if key == SortDistanceAsc && origin == nil {
		return nil, ErrSortNeedsOrigin
	}

	var less func(a, b RV) int
	switch key {
	case SortPriceAsc:
		less = func(a, b RV) int { return a.ListPrice.Cmp(b.ListPrice) }
	case SortPriceDesc:
		less = func(a, b RV) int { return b.ListPrice.Cmp(a.ListPrice) }
	case SortYearDesc:
		less = func(a, b RV) int { return b.Year - a.Year }
	case SortYearAsc:
		less = func(a, b RV) int { return a.Year - b.Year }
	case SortLengthAsc:
		less = func(a, b RV) int { return cmpFloat(a.LengthFeet, b.LengthFeet) }
	case SortLengthDesc:
		less = func(a, b RV) int { return cmpFloat(b.LengthFeet, a.LengthFeet) }
	case SortSleepsDesc:
		less = func(a, b RV) int { return b.Sleeps - a.Sleeps }
	case SortDistanceAsc:
		o := *origin
		less = func(a, b RV) int {
			return cmpFloat(geo.Haversine(o, a.Location.Coords), geo.Haversine(o, b.Location.Coords))
		}
	default:
		return nil, ErrUnknownSortKey
	}

	out := make([]RV, len(units))
	copy(out, units)
	sort.SliceStable(out, func(i, j int) bool {
		if c := less(out[i], out[j]); c != 0 {
			return c < 0
		}
		return out[i].StockNumber < out[j].StockNumber
	})
	return out, nil
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
