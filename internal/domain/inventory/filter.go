package inventory

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Predicate keeps a unit when it returns true.
type Predicate func(RV) bool

// Apply keeps the units that satisfy every predicate. Predicates are independent,
// so the result does not depend on their order.
func Apply(units []RV, preds ...Predicate) []RV {
	out := make([]RV, 0, len(units))
outer:
	for _, u := range units {
		for _, p := range preds {
			if !p(u) {
				continue outer
			}
		}
		out = append(out, u)
	}
	return out
}

// Criteria is the filter state a shopper builds up in the portal.
// Zero values mean "no constraint".
type Criteria struct {
	LocationIDs   []int
	ClassNames    []string
	Manufacturers []string
	Condition     string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	MinYear       *int
	MaxYear       *int
	MinSleeps     *int
	MinLength     *float64
	MaxLength     *float64
	Search        string
}

func (c Criteria) Predicates() []Predicate {
	var preds []Predicate
	if len(c.LocationIDs) > 0 {
		preds = append(preds, AtLocations(c.LocationIDs...))
	}
	if len(c.ClassNames) > 0 {
		preds = append(preds, InClasses(c.ClassNames...))
	}
	if len(c.Manufacturers) > 0 {
		preds = append(preds, ByManufacturers(c.Manufacturers...))
	}
	if c.Condition != "" {
		preds = append(preds, WithCondition(c.Condition))
	}
	if c.MinPrice != nil || c.MaxPrice != nil {
		preds = append(preds, PriceBetween(c.MinPrice, c.MaxPrice))
	}
	if c.MinYear != nil || c.MaxYear != nil {
		preds = append(preds, YearBetween(c.MinYear, c.MaxYear))
	}
	if c.MinSleeps != nil {
		preds = append(preds, SleepsAtLeast(*c.MinSleeps))
	}
	if c.MinLength != nil || c.MaxLength != nil {
		preds = append(preds, LengthBetween(c.MinLength, c.MaxLength))
	}
	if strings.TrimSpace(c.Search) != "" {
		preds = append(preds, Matching(c.Search))
	}
	return preds
}

func AtLocations(ids ...int) Predicate {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return func(u RV) bool {
		_, ok := set[u.Location.ID]
		return ok
	}
}

// InClasses matches the class description or code, ignoring case.
func InClasses(names ...string) Predicate {
	set := foldedSet(names)
	return func(u RV) bool {
		_, byName := set[strings.ToLower(u.ClassName)]
		_, byCode := set[strings.ToLower(u.ClassCode)]
		return byName || byCode
	}
}

func ByManufacturers(names ...string) Predicate {
	set := foldedSet(names)
	return func(u RV) bool {
		_, ok := set[strings.ToLower(u.Manufacturer)]
		return ok
	}
}

func WithCondition(condition string) Predicate {
	want := normalizeCondition(condition)
	return func(u RV) bool { return u.Condition == want }
}

// PriceBetween bounds the list price, inclusive on both ends.
func PriceBetween(minPrice, maxPrice *decimal.Decimal) Predicate {
	return func(u RV) bool {
		if minPrice != nil && u.ListPrice.LessThan(*minPrice) {
			return false
		}
		if maxPrice != nil && u.ListPrice.GreaterThan(*maxPrice) {
			return false
		}
		return true
	}
}

func YearBetween(minYear, maxYear *int) Predicate {
	return func(u RV) bool {
		if minYear != nil && u.Year < *minYear {
			return false
		}
		if maxYear != nil && u.Year > *maxYear {
			return false
		}
		return true
	}
}

func SleepsAtLeast(n int) Predicate {
	return func(u RV) bool { return u.Sleeps >= n }
}

func LengthBetween(minLength, maxLength *float64) Predicate {
	return func(u RV) bool {
		if minLength != nil && u.LengthFeet < *minLength {
			return false
		}
		if maxLength != nil && u.LengthFeet > *maxLength {
			return false
		}
		return true
	}
}

// Matching is a case-insensitive substring search over stock number, title and class.
// Every whitespace-separated term must match somewhere.
func Matching(query string) Predicate {
	terms := strings.Fields(strings.ToLower(query))
	return func(u RV) bool {
		haystack := strings.ToLower(strings.Join([]string{u.StockNumber, u.Title, u.ClassName}, " "))
		for _, t := range terms {
			if !strings.Contains(haystack, t) {
				return false
			}
		}
		return true
	}
}

func foldedSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			set[strings.ToLower(v)] = struct{}{}
		}
	}
	return set
}
