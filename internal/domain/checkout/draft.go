package checkout

import (
	"errors"
	"fmt"
	"strings"

	"rv-portal/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

type Step string

const (
	StepUnit        Step = "unit"
	StepAccessories Step = "accessories"
	StepProtection  Step = "protection"
	StepFulfillment Step = "fulfillment"
	StepSignature   Step = "signature"
	StepReview      Step = "review"
)

// Steps lists the wizard in the only order it can be completed.
var Steps = []Step{StepUnit, StepAccessories, StepProtection, StepFulfillment, StepSignature, StepReview}

var (
	ErrStepOutOfOrder  = errors.New("checkout step applied out of order")
	ErrUnitRequired    = errors.New("unit selection is required")
	ErrInvalidMethod   = errors.New("fulfillment method must be pickup or delivery")
	ErrPickupLocation  = errors.New("pickup needs a location")
	ErrDeliveryZip     = errors.New("delivery needs a destination zip")
	ErrDraftIncomplete = errors.New("checkout is not complete")
)

func (s Step) index() int {
	for i, st := range Steps {
		if st == s {
			return i
		}
	}
	return -1
}

type UnitSelection struct {
	StockNumber  string
	Title        string
	LocationID   int
	ListPrice    decimal.Decimal
	PartnerPrice decimal.Decimal
}

type AccessoryLine struct {
	Accessory
	Quantity int
}

type FulfillmentMethod string

const (
	MethodPickup   FulfillmentMethod = "pickup"
	MethodDelivery FulfillmentMethod = "delivery"
)

type Fulfillment struct {
	Method           FulfillmentMethod
	PickupLocationID int
	DestinationZip   string
	Miles            int
	Fee              decimal.Decimal
}

// Draft is the in-progress configuration. Each setter is one wizard step; applying a
// step again clears every step after it.
type Draft struct {
	catalog *Catalog
	terms   pricing.Terms

	completed   int
	unit        UnitSelection
	accessories []AccessoryLine
	protection  ProtectionPlan
	fulfillment Fulfillment
	signature   Signature
}

func NewDraft(catalog *Catalog, terms pricing.Terms) *Draft {
	return &Draft{catalog: catalog, terms: terms}
}

func (d *Draft) Unit() UnitSelection          { return d.unit }
func (d *Draft) Accessories() []AccessoryLine { return d.accessories }
func (d *Draft) Protection() ProtectionPlan   { return d.protection }
func (d *Draft) Fulfillment() Fulfillment     { return d.fulfillment }
func (d *Draft) Signature() Signature         { return d.signature }

// NextStep is the first step not yet completed; StepReview once everything is filled in.
func (d *Draft) NextStep() Step {
	return Steps[d.completed]
}

func (d *Draft) Complete() bool {
	return d.NextStep() == StepReview
}

func (d *Draft) enter(s Step) error {
	i := s.index()
	if i < 0 || i > d.completed {
		return fmt.Errorf("%w: %s before %s", ErrStepOutOfOrder, s, d.NextStep())
	}
	d.completed = i
	for _, later := range Steps[i:] {
		d.reset(later)
	}
	return nil
}

func (d *Draft) reset(s Step) {
	switch s {
	case StepUnit:
		d.unit = UnitSelection{}
	case StepAccessories:
		d.accessories = nil
	case StepProtection:
		d.protection = ProtectionPlan{}
	case StepFulfillment:
		d.fulfillment = Fulfillment{}
	case StepSignature:
		d.signature = Signature{}
	}
}

func (d *Draft) SelectUnit(u UnitSelection) error {
	if strings.TrimSpace(u.StockNumber) == "" {
		return ErrUnitRequired
	}
	if err := d.enter(StepUnit); err != nil {
		return err
	}
	d.unit = u
	d.completed = StepAccessories.index()
	return nil
}

type AccessoryRequest struct {
	Code     string
	Quantity int
}

// SetAccessories prices the requested catalog items. Zero quantities are dropped and
// repeated codes are summed; an empty list is a valid choice.
func (d *Draft) SetAccessories(reqs []AccessoryRequest) error {
	var lines []AccessoryLine
	seen := make(map[string]int)
	for _, r := range reqs {
		if r.Quantity == 0 {
			continue
		}
		acc, err := d.catalog.Accessory(r.Code)
		if err != nil {
			return err
		}
		if i, ok := seen[acc.Code]; ok {
			lines[i].Quantity += r.Quantity
		} else {
			seen[acc.Code] = len(lines)
			lines = append(lines, AccessoryLine{Accessory: acc, Quantity: r.Quantity})
		}
	}
	for _, l := range lines {
		if l.Quantity < 1 || l.Quantity > l.MaxQuantity {
			return fmt.Errorf("%w: %s x%d (max %d)", ErrAccessoryQuantity, l.Code, l.Quantity, l.MaxQuantity)
		}
	}
	if err := d.enter(StepAccessories); err != nil {
		return err
	}
	d.accessories = lines
	d.completed = StepProtection.index()
	return nil
}

// ChooseProtection accepts a catalog plan code; empty means PlanNone.
func (d *Draft) ChooseProtection(code string) error {
	if strings.TrimSpace(code) == "" {
		code = PlanNone
	}
	plan, err := d.catalog.ProtectionPlan(code)
	if err != nil {
		return err
	}
	if err := d.enter(StepProtection); err != nil {
		return err
	}
	d.protection = plan
	d.completed = StepFulfillment.index()
	return nil
}

// SetFulfillment prices the delivery leg. Miles is only read for delivery.
func (d *Draft) SetFulfillment(f Fulfillment) error {
	switch f.Method {
	case MethodPickup:
		if f.PickupLocationID == 0 {
			f.PickupLocationID = d.unit.LocationID
		}
		if f.PickupLocationID == 0 {
			return ErrPickupLocation
		}
		f.DestinationZip, f.Miles, f.Fee = "", 0, decimal.Zero
	case MethodDelivery:
		f.DestinationZip = strings.TrimSpace(f.DestinationZip)
		if f.DestinationZip == "" {
			return ErrDeliveryZip
		}
		fee, err := d.catalog.Delivery.Fee(f.Miles)
		if err != nil {
			return err
		}
		f.PickupLocationID, f.Fee = 0, fee
	default:
		return ErrInvalidMethod
	}
	if err := d.enter(StepFulfillment); err != nil {
		return err
	}
	d.fulfillment = f
	d.completed = StepSignature.index()
	return nil
}

func (d *Draft) Sign(sig Signature) error {
	if strings.TrimSpace(sig.SignerName) == "" {
		return ErrSignerRequired
	}
	if err := d.enter(StepSignature); err != nil {
		return err
	}
	d.signature = sig
	d.completed = StepReview.index()
	return nil
}
