package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDiscountRate = errors.New("discount rate must be in [0, 1)")
	ErrInvalidAPR          = errors.New("apr cannot be negative")
	ErrInvalidTerm         = errors.New("term must be at least one month")
	ErrNegativeAmount      = errors.New("amount cannot be negative")
)

var monthsPerYear = decimal.NewFromInt(12)

// Discounted returns round(list × (1 − rate)) in whole dollars.
// A positive rate on a positive list always lands strictly below list;
// when rounding would reach list the result is floored instead.
func Discounted(list decimal.Decimal, rate decimal.Decimal) (decimal.Decimal, error) {
	if list.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Zero, ErrInvalidDiscountRate
	}
	exact := list.Mul(decimal.NewFromInt(1).Sub(rate))
	p := exact.Round(0)
	if rate.IsPositive() && list.IsPositive() && p.GreaterThanOrEqual(list) {
		p = exact.Floor()
	}
	return p, nil
}

// MonthlyPayment amortizes principal over termMonths at the given APR and rounds to cents.
// A zero APR is straight division.
func MonthlyPayment(principal decimal.Decimal, apr decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	if principal.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	if apr.IsNegative() {
		return decimal.Zero, ErrInvalidAPR
	}
	if termMonths < 1 {
		return decimal.Zero, ErrInvalidTerm
	}

	n := decimal.NewFromInt(int64(termMonths))
	if apr.IsZero() {
		return principal.Div(n).Round(2), nil
	}

	// P·r / (1 − (1+r)^−n)
	r := apr.Div(monthsPerYear)
	growth := decimal.NewFromInt(1).Add(r).Pow(n)
	factor := r.Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
	return principal.Mul(factor).Round(2), nil
}

// Terms are the partner pricing inputs applied to every unit.
type Terms struct {
	DiscountRate decimal.Decimal
	APR          decimal.Decimal
	TermMonths   int
}

func NewTerms(discountRate, apr float64, termMonths int) (Terms, error) {
	t := Terms{
		DiscountRate: decimal.NewFromFloat(discountRate),
		APR:          decimal.NewFromFloat(apr),
		TermMonths:   termMonths,
	}
	if t.DiscountRate.IsNegative() || t.DiscountRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return Terms{}, ErrInvalidDiscountRate
	}
	if t.APR.IsNegative() {
		return Terms{}, ErrInvalidAPR
	}
	if t.TermMonths < 1 {
		return Terms{}, ErrInvalidTerm
	}
	return t, nil
}

// Quote is the partner view of a list price.
type Quote struct {
	ListPrice      decimal.Decimal
	PartnerPrice   decimal.Decimal
	Savings        decimal.Decimal
	MonthlyPayment decimal.Decimal
}

func (t Terms) Quote(list decimal.Decimal) (Quote, error) {
	partner, err := Discounted(list, t.DiscountRate)
	if err != nil {
		return Quote{}, err
	}
	monthly, err := t.Monthly(partner)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		ListPrice:      list,
		PartnerPrice:   partner,
		Savings:        list.Sub(partner),
		MonthlyPayment: monthly,
	}, nil
}

func (t Terms) Monthly(principal decimal.Decimal) (decimal.Decimal, error) {
	return MonthlyPayment(principal, t.APR, t.TermMonths)
}
