package request

import (
	"rv-portal/internal/domain/checkout"
	"rv-portal/internal/usecase/commands"
)

type AccessoryItem struct {
	Code     string `json:"code" binding:"required"`
	Quantity int    `json:"quantity" binding:"min=0"`
}

type FulfillmentInput struct {
	Method           string `json:"method" binding:"required,oneof=pickup delivery"`
	PickupLocationID int    `json:"pickupLocationId"`
	DestinationZip   string `json:"destinationZip" binding:"max=10"`
}

type SignatureInput struct {
	SignerName string `json:"signerName" binding:"required,max=200"`
	DataURL    string `json:"dataUrl" binding:"required"`
}

// OrderRequest is a partial or complete wizard configuration. Omitted steps are left open.
type OrderRequest struct {
	StockNumber    string            `json:"stockNumber" binding:"max=64"`
	Accessories    *[]AccessoryItem  `json:"accessories" binding:"omitempty,dive"`
	ProtectionCode *string           `json:"protectionCode"`
	Fulfillment    *FulfillmentInput `json:"fulfillment"`
	Signature      *SignatureInput   `json:"signature"`
}

func (r *OrderRequest) ToCommand() commands.OrderRequest {
	cmd := commands.OrderRequest{
		StockNumber:    r.StockNumber,
		ProtectionCode: r.ProtectionCode,
	}
	if r.Accessories != nil {
		reqs := make([]checkout.AccessoryRequest, len(*r.Accessories))
		for i, a := range *r.Accessories {
			reqs[i] = checkout.AccessoryRequest{Code: a.Code, Quantity: a.Quantity}
		}
		cmd.Accessories = &reqs
	}
	if r.Fulfillment != nil {
		cmd.Fulfillment = &commands.FulfillmentRequest{
			Method:           r.Fulfillment.Method,
			PickupLocationID: r.Fulfillment.PickupLocationID,
			DestinationZip:   r.Fulfillment.DestinationZip,
		}
	}
	if r.Signature != nil {
		cmd.Signature = &commands.SignatureRequest{
			SignerName: r.Signature.SignerName,
			DataURL:    r.Signature.DataURL,
		}
	}
	return cmd
}

type ListOrdersQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}
