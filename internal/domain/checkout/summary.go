package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type LineKind string

const (
	LineUnit       LineKind = "unit"
	LineAccessory  LineKind = "accessory"
	LineProtection LineKind = "protection"
	LineDelivery   LineKind = "delivery"
)

type Line struct {
	Kind        LineKind
	Code        string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}

type Summary struct {
	Lines           []Line
	ListPrice       decimal.Decimal
	PartnerSavings  decimal.Decimal
	Subtotal        decimal.Decimal
	DeliveryFee     decimal.Decimal
	Total           decimal.Decimal
	MonthlyEstimate decimal.Decimal
	NextStep        Step
}

// Summary totals whatever steps are complete so far. The unit is charged at the
// partner price and the monthly estimate is on the total.
func (d *Draft) Summary() (Summary, error) {
	s := Summary{NextStep: d.NextStep()}
	done := func(st Step) bool { return d.completed > st.index() }

	if done(StepUnit) {
		s.ListPrice = d.unit.ListPrice
		s.PartnerSavings = d.unit.ListPrice.Sub(d.unit.PartnerPrice)
		s.Lines = append(s.Lines, Line{
			Kind:        LineUnit,
			Code:        d.unit.StockNumber,
			Description: d.unit.Title,
			Quantity:    1,
			UnitPrice:   d.unit.PartnerPrice,
			Amount:      d.unit.PartnerPrice,
		})
	}
	if done(StepAccessories) {
		for _, a := range d.accessories {
			s.Lines = append(s.Lines, Line{
				Kind:        LineAccessory,
				Code:        a.Code,
				Description: a.Name,
				Quantity:    a.Quantity,
				UnitPrice:   a.Price,
				Amount:      a.Price.Mul(decimal.NewFromInt(int64(a.Quantity))),
			})
		}
	}
	if done(StepProtection) && d.protection.Code != PlanNone {
		s.Lines = append(s.Lines, Line{
			Kind:        LineProtection,
			Code:        d.protection.Code,
			Description: d.protection.Name,
			Quantity:    1,
			UnitPrice:   d.protection.Price,
			Amount:      d.protection.Price,
		})
	}

	s.Subtotal = decimal.Zero
	for _, l := range s.Lines {
		s.Subtotal = s.Subtotal.Add(l.Amount)
	}

	s.DeliveryFee = decimal.Zero
	if done(StepFulfillment) && d.fulfillment.Method == MethodDelivery {
		s.DeliveryFee = d.fulfillment.Fee
		s.Lines = append(s.Lines, Line{
			Kind:        LineDelivery,
			Code:        string(MethodDelivery),
			Description: fmt.Sprintf("Delivery to %s (%d mi)", d.fulfillment.DestinationZip, d.fulfillment.Miles),
			Quantity:    1,
			UnitPrice:   d.fulfillment.Fee,
			Amount:      d.fulfillment.Fee,
		})
	}

	s.Total = s.Subtotal.Add(s.DeliveryFee).Round(2)
	s.Subtotal = s.Subtotal.Round(2)

	monthly, err := d.terms.Monthly(s.Total)
	if err != nil {
		return Summary{}, err
	}
	s.MonthlyEstimate = monthly
	return s, nil
}
