package checkout

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidCatalog     = errors.New("invalid catalog")
	ErrUnknownAccessory   = errors.New("unknown accessory")
	ErrUnknownProtection  = errors.New("unknown protection plan")
	ErrAccessoryQuantity  = errors.New("accessory quantity out of range")
	ErrDeliveryOutOfRange = errors.New("delivery distance out of range")
)

//go:embed catalog.yaml
var defaultCatalog []byte

// PlanNone is the protection plan code for declining coverage.
const PlanNone = "NONE"

type Accessory struct {
	Code        string
	Name        string
	Price       decimal.Decimal
	MaxQuantity int
}

type ProtectionPlan struct {
	Code       string
	Name       string
	Price      decimal.Decimal
	TermMonths int
}

type DeliveryRates struct {
	PerMile  decimal.Decimal
	Minimum  decimal.Decimal
	MaxMiles int
}

// Fee is max(minimum, perMile × miles) rounded to cents.
func (r DeliveryRates) Fee(miles int) (decimal.Decimal, error) {
	if miles < 0 || (r.MaxMiles > 0 && miles > r.MaxMiles) {
		return decimal.Zero, ErrDeliveryOutOfRange
	}
	fee := r.PerMile.Mul(decimal.NewFromInt(int64(miles))).Round(2)
	if fee.LessThan(r.Minimum) {
		return r.Minimum, nil
	}
	return fee, nil
}

type Catalog struct {
	Accessories     []Accessory
	ProtectionPlans []ProtectionPlan
	Delivery        DeliveryRates

	accessories map[string]Accessory
	plans       map[string]ProtectionPlan
}

func (c *Catalog) Accessory(code string) (Accessory, error) {
	a, ok := c.accessories[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Accessory{}, fmt.Errorf("%w: %s", ErrUnknownAccessory, code)
	}
	return a, nil
}

func (c *Catalog) ProtectionPlan(code string) (ProtectionPlan, error) {
	p, ok := c.plans[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return ProtectionPlan{}, fmt.Errorf("%w: %s", ErrUnknownProtection, code)
	}
	return p, nil
}

type catalogFile struct {
	Accessories []struct {
		Code        string `yaml:"code"`
		Name        string `yaml:"name"`
		Price       string `yaml:"price"`
		MaxQuantity int    `yaml:"max_quantity"`
	} `yaml:"accessories"`
	ProtectionPlans []struct {
		Code       string `yaml:"code"`
		Name       string `yaml:"name"`
		Price      string `yaml:"price"`
		TermMonths int    `yaml:"term_months"`
	} `yaml:"protection_plans"`
	Delivery struct {
		PerMile  string `yaml:"per_mile"`
		Minimum  string `yaml:"minimum"`
		MaxMiles int    `yaml:"max_miles"`
	} `yaml:"delivery"`
}

// LoadCatalog reads the catalog at path, or the embedded default when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return ParseCatalog(defaultCatalog)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalog(raw)
}

func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

func ParseCatalog(raw []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		accessories: make(map[string]Accessory, len(f.Accessories)),
		plans:       make(map[string]ProtectionPlan, len(f.ProtectionPlans)),
	}

	for _, a := range f.Accessories {
		code := strings.ToUpper(strings.TrimSpace(a.Code))
		price, err := parseMoney(a.Price)
		if err != nil || code == "" {
			return nil, fmt.Errorf("%w: accessory %q", ErrInvalidCatalog, a.Code)
		}
		if _, dup := c.accessories[code]; dup {
			return nil, fmt.Errorf("%w: duplicate accessory %q", ErrInvalidCatalog, code)
		}
		acc := Accessory{Code: code, Name: a.Name, Price: price, MaxQuantity: max(a.MaxQuantity, 1)}
		c.accessories[code] = acc
		c.Accessories = append(c.Accessories, acc)
	}

	for _, p := range f.ProtectionPlans {
		code := strings.ToUpper(strings.TrimSpace(p.Code))
		price, err := parseMoney(p.Price)
		if err != nil || code == "" {
			return nil, fmt.Errorf("%w: protection plan %q", ErrInvalidCatalog, p.Code)
		}
		if _, dup := c.plans[code]; dup {
			return nil, fmt.Errorf("%w: duplicate protection plan %q", ErrInvalidCatalog, code)
		}
		plan := ProtectionPlan{Code: code, Name: p.Name, Price: price, TermMonths: p.TermMonths}
		c.plans[code] = plan
		c.ProtectionPlans = append(c.ProtectionPlans, plan)
	}
	if _, ok := c.plans[PlanNone]; !ok {
		none := ProtectionPlan{Code: PlanNone, Name: "No protection plan", Price: decimal.Zero}
		c.plans[PlanNone] = none
		c.ProtectionPlans = append([]ProtectionPlan{none}, c.ProtectionPlans...)
	}

	perMile, err := parseMoney(f.Delivery.PerMile)
	if err != nil {
		return nil, fmt.Errorf("%w: delivery per_mile", ErrInvalidCatalog)
	}
	minimum, err := parseMoney(f.Delivery.Minimum)
	if err != nil {
		return nil, fmt.Errorf("%w: delivery minimum", ErrInvalidCatalog)
	}
	c.Delivery = DeliveryRates{PerMile: perMile, Minimum: minimum, MaxMiles: f.Delivery.MaxMiles}

	return c, nil
}

func parseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, errors.New("negative amount")
	}
	return d, nil
}
