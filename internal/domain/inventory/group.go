package inventory

import "github.com/shopspring/decimal"

// GroupKey identifies units that collapse into one card. Matching is exact and case-sensitive.
type GroupKey struct {
	Manufacturer string
	Make         string
	Model        string
	Year         int
}

func KeyOf(u RV) GroupKey {
	return GroupKey{Manufacturer: u.Manufacturer, Make: u.Make, Model: u.Model, Year: u.Year}
}

type GroupedRV struct {
	GroupKey
	Title              string
	Quantity           int
	Units              []RV
	MultipleLocations  bool
	LowestListPrice    decimal.Decimal
	LowestPartnerPrice decimal.Decimal
}

// Group collapses units sharing a GroupKey. Groups keep first-appearance order and
// units keep their input order inside a group, so Group(Flatten(Group(x))) == Group(x).
func Group(units []RV) []GroupedRV {
	index := make(map[GroupKey]int)
	var groups []GroupedRV
	for _, u := range units {
		k := KeyOf(u)
		i, ok := index[k]
		if !ok {
			index[k] = len(groups)
			groups = append(groups, GroupedRV{
				GroupKey:           k,
				Title:              u.Title,
				LowestListPrice:    u.ListPrice,
				LowestPartnerPrice: u.PartnerPrice,
			})
			i = len(groups) - 1
		}
		g := &groups[i]
		g.Units = append(g.Units, u)
		g.Quantity++
		if u.ListPrice.LessThan(g.LowestListPrice) {
			g.LowestListPrice = u.ListPrice
		}
		if u.PartnerPrice.LessThan(g.LowestPartnerPrice) {
			g.LowestPartnerPrice = u.PartnerPrice
		}
		if u.Location.ID != g.Units[0].Location.ID {
			g.MultipleLocations = true
		}
	}
	return groups
}

func Flatten(groups []GroupedRV) []RV {
	var out []RV
	for _, g := range groups {
		out = append(out, g.Units...)
	}
	return out
}

// Regroup groups the units of an already grouped list again.
func Regroup(groups []GroupedRV) []GroupedRV {
	return Group(Flatten(groups))
}
