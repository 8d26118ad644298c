package location

import (
	"sort"

	"rv-portal/internal/domain/geo"
)

// Location is a dealership site. CMF is the dealer's numeric site identifier.
type Location struct {
	CMF       int
	Code      string
	StoreName string
	Address   string
	City      string
	State     string
	Zip       string
	Coords    geo.Coordinates
}

// WithDistance pairs a location with its great-circle distance from an origin.
type WithDistance struct {
	Location
	Miles int
}

// SortByDistance orders locations nearest first. Locations without coordinates
// sort last; ties fall back to CMF so the order is deterministic.
func SortByDistance(locs []Location, origin geo.Coordinates) []WithDistance {
	out := make([]WithDistance, 0, len(locs))
	for _, l := range locs {
		out = append(out, WithDistance{Location: l, Miles: geo.DistanceMiles(origin, l.Coords)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		zi, zj := out[i].Coords.IsZero(), out[j].Coords.IsZero()
		if zi != zj {
			return zj
		}
		if out[i].Miles != out[j].Miles {
			return out[i].Miles < out[j].Miles
		}
		return out[i].CMF < out[j].CMF
	})
	return out
}

func IndexByCMF(locs []Location) map[int]Location {
	m := make(map[int]Location, len(locs))
	for _, l := range locs {
		m[l.CMF] = l
	}
	return m
}
