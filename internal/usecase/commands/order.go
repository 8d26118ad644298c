package commands

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"rv-portal/internal/domain/checkout"
	"rv-portal/internal/domain/inventory"
	"rv-portal/internal/domain/pricing"
	"rv-portal/internal/infra"
	"rv-portal/internal/pkg/clock"
	"rv-portal/internal/pkg/errs"
	"rv-portal/internal/usecase/shared"
)

var (
	ErrInvalidOrder       = errs.New("invalid order configuration")
	ErrOrderIncomplete    = errs.New("order configuration incomplete")
	ErrUnitAlreadyOrdered = errs.New("unit already has an open order")
	ErrDeliveryUnroutable = errs.New("delivery destination could not be routed")
	ErrOrderFailed        = errs.New("order could not be placed")
)

// OrderRequest is a wizard configuration. Nil steps are not applied; a step given
// without its predecessors fails with checkout.ErrStepOutOfOrder.
type OrderRequest struct {
	StockNumber    string
	Accessories    *[]checkout.AccessoryRequest
	ProtectionCode *string
	Fulfillment    *FulfillmentRequest
	Signature      *SignatureRequest
}

type FulfillmentRequest struct {
	Method           string
	PickupLocationID int
	DestinationZip   string
}

type SignatureRequest struct {
	SignerName string
	DataURL    string
}

type OrderCommands interface {
	Quote(ctx context.Context, req OrderRequest) (*checkout.Summary, error)
	Submit(ctx context.Context, email string, req OrderRequest) (*checkout.Order, error)
}

type orderCommandsImpl struct {
	uow        shared.UnitOfWork
	catalog    *checkout.Catalog
	terms      pricing.Terms
	locations  LocationLookup
	distances  RouteDistances
	signatures SignatureStore
	clock      clock.Clock
}

func NewOrderCommands(
	uow shared.UnitOfWork,
	catalog *checkout.Catalog,
	terms pricing.Terms,
	locations LocationLookup,
	distances RouteDistances,
	signatures SignatureStore,
	clk clock.Clock,
) OrderCommands {
	return &orderCommandsImpl{
		uow:        uow,
		catalog:    catalog,
		terms:      terms,
		locations:  locations,
		distances:  distances,
		signatures: signatures,
		clock:      clk,
	}
}

func (o *orderCommandsImpl) Quote(ctx context.Context, req OrderRequest) (*checkout.Summary, error) {
	d, err := o.buildDraft(ctx, o.uow.CommandReads(), req)
	if err != nil {
		return nil, err
	}
	summary, err := d.Summary()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOrder)
	}
	return &summary, nil
}

func (o *orderCommandsImpl) Submit(ctx context.Context, email string, req OrderRequest) (*checkout.Order, error) {
	reads := o.uow.CommandReads()
	d, err := o.buildDraft(ctx, reads, req)
	if err != nil {
		return nil, err
	}
	if !d.Complete() {
		return nil, errs.Mark(errs.Wrapf(checkout.ErrDraftIncomplete, "next step %s", d.NextStep()), ErrOrderIncomplete)
	}

	open, err := reads.StockHasOpenOrder(ctx, d.Unit().StockNumber)
	if err != nil {
		return nil, errs.Mark(err, ErrOrderFailed)
	}
	if open {
		return nil, ErrUnitAlreadyOrdered
	}

	order, err := checkout.NewOrder(email, d, o.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrOrderIncomplete)
	}

	key, err := o.signatures.PutSignature(ctx, order.SignatureKey(), order.Signature().PNG)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "store signature"), errs.ErrUpstreamUnavailable)
	}
	order.AttachSignatureKey(key)

	err = o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		open, err := tx.Reads().StockHasOpenOrder(ctx, order.Unit().StockNumber)
		if err != nil {
			return err
		}
		if open {
			return ErrUnitAlreadyOrdered
		}
		return tx.Orders().Create(ctx, tx.DB(), order)
	})
	if err != nil {
		o.discardSignature(ctx, key)
		if errs.Is(err, ErrUnitAlreadyOrdered) || infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrUnitAlreadyOrdered)
		}
		return nil, errs.Mark(err, ErrOrderFailed)
	}

	slog.InfoContext(ctx, "order submitted",
		"order_id", order.ID().String(),
		"stock_number", order.Unit().StockNumber,
		"total", order.Summary().Total.StringFixed(2))
	return order, nil
}

// discardSignature removes an upload whose order was never persisted.
func (o *orderCommandsImpl) discardSignature(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := o.signatures.DeleteSignature(context.WithoutCancel(ctx), key); err != nil {
		slog.WarnContext(ctx, "failed to discard signature", "key", key, "error", err.Error())
	}
}

// buildDraft applies every provided step in wizard order.
func (o *orderCommandsImpl) buildDraft(ctx context.Context, reads shared.CommandReads, req OrderRequest) (*checkout.Draft, error) {
	d := checkout.NewDraft(o.catalog, o.terms)

	var unit inventory.RV
	if stock := strings.TrimSpace(req.StockNumber); stock != "" {
		row, err := reads.UnitByStock(ctx, stock)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, errs.ErrUnitNotFound)
			}
			return nil, errs.Mark(err, ErrOrderFailed)
		}
		unit, err = inventory.Transform(*row, o.terms, "")
		if err != nil {
			return nil, errs.Mark(err, ErrOrderFailed)
		}
		err = d.SelectUnit(checkout.UnitSelection{
			StockNumber:  unit.StockNumber,
			Title:        unit.Title,
			LocationID:   unit.Location.ID,
			ListPrice:    unit.ListPrice,
			PartnerPrice: unit.PartnerPrice,
		})
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidOrder)
		}
	}

	if req.Accessories != nil {
		if err := d.SetAccessories(*req.Accessories); err != nil {
			return nil, errs.Mark(err, ErrInvalidOrder)
		}
	}

	if req.ProtectionCode != nil {
		if err := d.ChooseProtection(*req.ProtectionCode); err != nil {
			return nil, errs.Mark(err, ErrInvalidOrder)
		}
	}

	if req.Fulfillment != nil {
		f, err := o.resolveFulfillment(ctx, unit, *req.Fulfillment)
		if err != nil {
			return nil, err
		}
		if err := d.SetFulfillment(f); err != nil {
			return nil, errs.Mark(err, ErrInvalidOrder)
		}
	}

	if req.Signature != nil {
		sig, err := checkout.NewSignature(req.Signature.SignerName, req.Signature.DataURL, o.clock.Now())
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidOrder)
		}
		if err := d.Sign(sig); err != nil {
			return nil, errs.Mark(err, ErrInvalidOrder)
		}
	}

	return d, nil
}

func (o *orderCommandsImpl) resolveFulfillment(ctx context.Context, unit inventory.RV, req FulfillmentRequest) (checkout.Fulfillment, error) {
	f := checkout.Fulfillment{
		Method:           checkout.FulfillmentMethod(strings.ToLower(strings.TrimSpace(req.Method))),
		PickupLocationID: req.PickupLocationID,
		DestinationZip:   strings.TrimSpace(req.DestinationZip),
	}

	switch f.Method {
	case checkout.MethodPickup:
		if f.PickupLocationID != 0 && f.PickupLocationID != unit.Location.ID {
			if _, err := o.locations.FindByCMF(ctx, f.PickupLocationID); err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return f, errs.Mark(errs.Mark(err, errs.ErrLocationNotFound), ErrInvalidOrder)
				}
				return f, errs.Mark(err, ErrOrderFailed)
			}
		}
	case checkout.MethodDelivery:
		if f.DestinationZip == "" || unit.StockNumber == "" {
			// the draft reports the precise reason
			return f, nil
		}
		miles, err := o.deliveryMiles(ctx, unit, f.DestinationZip)
		if err != nil {
			return f, err
		}
		f.Miles = miles
	}
	return f, nil
}

func (o *orderCommandsImpl) deliveryMiles(ctx context.Context, unit inventory.RV, zip string) (int, error) {
	origin := unit.Location.Zip
	if origin == "" && !unit.Location.Coords.IsZero() {
		origin = fmt.Sprintf("%f,%f", unit.Location.Coords.Latitude, unit.Location.Coords.Longitude)
	}
	if origin == "" {
		return 0, errs.Mark(errs.Newf("unit %s has no location to deliver from", unit.StockNumber), ErrDeliveryUnroutable)
	}

	legs, err := o.distances.Distances(ctx, origin, []string{zip})
	if err != nil {
		return 0, errs.Mark(errs.Wrap(err, "delivery distance"), errs.ErrUpstreamUnavailable)
	}
	if len(legs) == 0 || !legs[0].OK() {
		return 0, errs.Mark(errs.Newf("no route from %s to %s", origin, zip), ErrDeliveryUnroutable)
	}
	return int(math.Round(legs[0].Miles)), nil
}
