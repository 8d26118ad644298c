package checkout

import (
	"time"

	"github.com/google/uuid"
)

// Order is a completed, signed checkout ready to persist.
type Order struct {
	id          uuid.UUID
	email       string
	unit        UnitSelection
	accessories []AccessoryLine
	protection  ProtectionPlan
	fulfillment Fulfillment
	signature   Signature
	summary     Summary
	createdAt   time.Time
}

func NewOrder(email string, d *Draft, now time.Time) (*Order, error) {
	if !d.Complete() {
		return nil, ErrDraftIncomplete
	}
	summary, err := d.Summary()
	if err != nil {
		return nil, err
	}
	return &Order{
		id:          uuid.New(),
		email:       email,
		unit:        d.unit,
		accessories: d.accessories,
		protection:  d.protection,
		fulfillment: d.fulfillment,
		signature:   d.signature,
		summary:     summary,
		createdAt:   now,
	}, nil
}

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) Email() string                { return o.email }
func (o *Order) Unit() UnitSelection          { return o.unit }
func (o *Order) Accessories() []AccessoryLine { return o.accessories }
func (o *Order) Protection() ProtectionPlan   { return o.protection }
func (o *Order) Fulfillment() Fulfillment     { return o.fulfillment }
func (o *Order) Signature() Signature         { return o.signature }
func (o *Order) Summary() Summary             { return o.summary }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }

// SignatureKey is the object key the signature image is stored under.
func (o *Order) SignatureKey() string {
	return "signatures/" + o.id.String() + ".png"
}

func (o *Order) AttachSignatureKey(key string) {
	o.signature.StorageKey = key
}
