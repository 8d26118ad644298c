//go:build unit

package readstore

import (
	"context"
	"math/big"
	"testing"
	"time"

	"rv-portal/internal/infra"
	"rv-portal/internal/infra/query"
	"rv-portal/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReadQueries struct {
	mock.Mock
}

func (m *MockOrderReadQueries) GetOrder(ctx context.Context, db query.DBTX, id pgtype.UUID) (query.PortalOrder, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.PortalOrder), args.Error(1)
}

func (m *MockOrderReadQueries) ListOrdersByEmail(ctx context.Context, db query.DBTX, email string, limit int32) ([]query.PortalOrder, error) {
	args := m.Called(ctx, db, email, limit)
	rows, _ := args.Get(0).([]query.PortalOrder)
	return rows, args.Error(1)
}

func (m *MockOrderReadQueries) StockHasOpenOrder(ctx context.Context, db query.DBTX, stockNumber string) (bool, error) {
	args := m.Called(ctx, db, stockNumber)
	return args.Bool(0), args.Error(1)
}

func cents(c int64) pgtype.Numeric {
	return pgtype.Numeric{Int: big.NewInt(c), Exp: -2, Valid: true}
}

func portalOrder(id uuid.UUID) query.PortalOrder {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return query.PortalOrder{
		ID:                pgconv.UUIDToPgtype(id),
		CustomerEmail:     "jane@partner.example.com",
		StockNumber:       "S1",
		UnitTitle:         "2024 Thor Ace 30.4",
		ListPrice:         cents(15000000),
		PartnerPrice:      cents(14250000),
		Accessories:       []byte(`[{"code":"SOLAR-200","name":"Solar","quantity":1,"unit_price":"1899.00"}]`),
		ProtectionCode:    "NONE",
		ProtectionPrice:   cents(0),
		FulfillmentMethod: "delivery",
		DestinationZip:    text("75001"),
		DeliveryMiles:     int4(120),
		DeliveryFee:       cents(27000),
		SignerName:        "Jane Doe",
		SignedAt:          pgconv.TimeToPgtype(created),
		Subtotal:          cents(14439900),
		Total:             cents(14466900),
		MonthlyEstimate:   cents(138200),
		Status:            "submitted",
		CreatedAt:         pgconv.TimeToPgtype(created),
	}
}

func TestOrderReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		q := new(MockOrderReadQueries)
		q.On("GetOrder", ctx, nil, pgconv.UUIDToPgtype(id)).Return(portalOrder(id), nil)

		rec, err := NewOrderReadStore(q, nil).FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, rec.ID)
		assert.Equal(t, "144669", rec.Total.String())
		require.Len(t, rec.Accessories, 1)
		assert.Equal(t, "SOLAR-200", rec.Accessories[0].Code)
		assert.Equal(t, "1899", rec.Accessories[0].UnitPrice.String())
		require.NotNil(t, rec.DeliveryMiles)
		assert.Equal(t, 120, *rec.DeliveryMiles)
		assert.Nil(t, rec.PickupLocationID)
	})

	t.Run("not found", func(t *testing.T) {
		q := new(MockOrderReadQueries)
		q.On("GetOrder", ctx, nil, mock.Anything).Return(query.PortalOrder{}, pgx.ErrNoRows)

		_, err := NewOrderReadStore(q, nil).FindByID(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("corrupt accessories", func(t *testing.T) {
		q := new(MockOrderReadQueries)
		bad := portalOrder(id)
		bad.Accessories = []byte(`{`)
		q.On("GetOrder", ctx, nil, mock.Anything).Return(bad, nil)

		_, err := NewOrderReadStore(q, nil).FindByID(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindInvalidData))
	})
}

func TestOrderReadStore_ListByEmail(t *testing.T) {
	ctx := context.Background()
	q := new(MockOrderReadQueries)
	q.On("ListOrdersByEmail", ctx, nil, "jane@partner.example.com", int32(20)).
		Return([]query.PortalOrder{portalOrder(uuid.New()), portalOrder(uuid.New())}, nil)

	recs, err := NewOrderReadStore(q, nil).ListByEmail(ctx, "jane@partner.example.com", 20)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
	q.AssertExpectations(t)
}
