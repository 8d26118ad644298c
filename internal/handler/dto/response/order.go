package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"rv-portal/internal/domain/checkout"
	"rv-portal/internal/usecase/shared"
)

type AccessoryResponse struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	MaxQuantity int             `json:"maxQuantity"`
}

type ProtectionPlanResponse struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	TermMonths int             `json:"termMonths"`
}

type DeliveryRatesResponse struct {
	PerMile  decimal.Decimal `json:"perMile"`
	Minimum  decimal.Decimal `json:"minimum"`
	MaxMiles int             `json:"maxMiles"`
}

type CatalogResponse struct {
	Accessories     []AccessoryResponse      `json:"accessories"`
	ProtectionPlans []ProtectionPlanResponse `json:"protectionPlans"`
	Delivery        DeliveryRatesResponse    `json:"delivery"`
}

type SummaryLineResponse struct {
	Kind        string          `json:"kind"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

type SummaryResponse struct {
	Lines           []SummaryLineResponse `json:"lines"`
	ListPrice       decimal.Decimal       `json:"listPrice"`
	PartnerSavings  decimal.Decimal       `json:"partnerSavings"`
	Subtotal        decimal.Decimal       `json:"subtotal"`
	DeliveryFee     decimal.Decimal       `json:"deliveryFee"`
	Total           decimal.Decimal       `json:"total"`
	MonthlyEstimate decimal.Decimal       `json:"monthlyEstimate"`
	NextStep        string                `json:"nextStep"`
	Complete        bool                  `json:"complete"`
}

type OrderAccessoryResponse struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type OrderResponse struct {
	ID                uuid.UUID                `json:"id"`
	CustomerEmail     string                   `json:"customerEmail"`
	StockNumber       string                   `json:"stockNumber"`
	UnitTitle         string                   `json:"unitTitle"`
	ListPrice         decimal.Decimal          `json:"listPrice"`
	PartnerPrice      decimal.Decimal          `json:"partnerPrice"`
	Accessories       []OrderAccessoryResponse `json:"accessories"`
	ProtectionCode    string                   `json:"protectionCode"`
	ProtectionPrice   decimal.Decimal          `json:"protectionPrice"`
	FulfillmentMethod string                   `json:"fulfillmentMethod"`
	PickupLocationID  *int                     `json:"pickupLocationId,omitempty"`
	DestinationZip    string                   `json:"destinationZip,omitempty"`
	DeliveryMiles     *int                     `json:"deliveryMiles,omitempty"`
	DeliveryFee       decimal.Decimal          `json:"deliveryFee"`
	SignerName        string                   `json:"signerName"`
	SignedAt          time.Time                `json:"signedAt"`
	SignatureKey      string                   `json:"signatureKey,omitempty"`
	Subtotal          decimal.Decimal          `json:"subtotal"`
	Total             decimal.Decimal          `json:"total"`
	MonthlyEstimate   decimal.Decimal          `json:"monthlyEstimate"`
	Status            string                   `json:"status"`
	CreatedAt         time.Time                `json:"createdAt"`
}

type SubmitOrderResponse struct {
	ID        uuid.UUID       `json:"id"`
	Status    string          `json:"status"`
	Summary   SummaryResponse `json:"summary"`
	CreatedAt time.Time       `json:"createdAt"`
}

func FromCatalog(c *checkout.Catalog) CatalogResponse {
	var res CatalogResponse
	_ = copier.Copy(&res.Accessories, &c.Accessories)
	_ = copier.Copy(&res.ProtectionPlans, &c.ProtectionPlans)
	_ = copier.Copy(&res.Delivery, &c.Delivery)
	return res
}

func FromSummary(s checkout.Summary) SummaryResponse {
	res := SummaryResponse{
		Lines:           make([]SummaryLineResponse, len(s.Lines)),
		ListPrice:       s.ListPrice,
		PartnerSavings:  s.PartnerSavings,
		Subtotal:        s.Subtotal,
		DeliveryFee:     s.DeliveryFee,
		Total:           s.Total,
		MonthlyEstimate: s.MonthlyEstimate,
		NextStep:        string(s.NextStep),
		Complete:        s.NextStep == checkout.StepReview,
	}
	for i, l := range s.Lines {
		res.Lines[i] = SummaryLineResponse{
			Kind:        string(l.Kind),
			Code:        l.Code,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Amount:      l.Amount,
		}
	}
	return res
}

func FromOrder(o *checkout.Order) SubmitOrderResponse {
	return SubmitOrderResponse{
		ID:        o.ID(),
		Status:    "submitted",
		Summary:   FromSummary(o.Summary()),
		CreatedAt: o.CreatedAt(),
	}
}

func FromOrderRecord(r *shared.OrderRecord) OrderResponse {
	var res OrderResponse
	_ = copier.Copy(&res, r)
	if res.Accessories == nil {
		res.Accessories = []OrderAccessoryResponse{}
	}
	return res
}

func FromOrderRecords(recs []*shared.OrderRecord) []OrderResponse {
	out := make([]OrderResponse, len(recs))
	for i, r := range recs {
		out[i] = FromOrderRecord(r)
	}
	return out
}
