//go:build unit

package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rv-portal/internal/domain/checkout"
	"rv-portal/internal/domain/geo"
	"rv-portal/internal/domain/inventory"
	"rv-portal/internal/domain/location"
	"rv-portal/internal/domain/pricing"
	"rv-portal/internal/infra"
	"rv-portal/internal/infra/memstore"
	"rv-portal/internal/pkg/clock"
	"rv-portal/internal/pkg/errs"
	"rv-portal/internal/usecase/shared"
)

type mockInventoryStore struct{ mock.Mock }

func (m *mockInventoryStore) Search(ctx context.Context, s shared.InventorySearch) ([]inventory.Row, error) {
	args := m.Called(ctx, s)
	rows, _ := args.Get(0).([]inventory.Row)
	return rows, args.Error(1)
}

func (m *mockInventoryStore) FindByStock(ctx context.Context, stockNumber string) (*inventory.Row, error) {
	args := m.Called(ctx, stockNumber)
	row, _ := args.Get(0).(*inventory.Row)
	return row, args.Error(1)
}

func (m *mockInventoryStore) UnitClasses(ctx context.Context) ([]inventory.UnitClass, error) {
	args := m.Called(ctx)
	classes, _ := args.Get(0).([]inventory.UnitClass)
	return classes, args.Error(1)
}

type mockLocationStore struct{ mock.Mock }

func (m *mockLocationStore) FindAll(ctx context.Context) ([]location.Location, error) {
	args := m.Called(ctx)
	locs, _ := args.Get(0).([]location.Location)
	return locs, args.Error(1)
}

type mockOrderStore struct{ mock.Mock }

func (m *mockOrderStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.OrderRecord, error) {
	args := m.Called(ctx, id)
	rec, _ := args.Get(0).(*shared.OrderRecord)
	return rec, args.Error(1)
}

func (m *mockOrderStore) ListByEmail(ctx context.Context, email string, limit int) ([]*shared.OrderRecord, error) {
	args := m.Called(ctx, email, limit)
	recs, _ := args.Get(0).([]*shared.OrderRecord)
	return recs, args.Error(1)
}

type mockDistance struct{ mock.Mock }

func (m *mockDistance) Distances(ctx context.Context, origin string, destinations []string) ([]shared.DrivingDistance, error) {
	args := m.Called(ctx, origin, destinations)
	legs, _ := args.Get(0).([]shared.DrivingDistance)
	return legs, args.Error(1)
}

type staticImages struct{}

func (staticImages) ImageURL(_ context.Context, stock string) string { return "/img/" + stock + ".jpg" }

type fakePINs struct{ statuses []memstore.PINStatus }

func (f fakePINs) Len() int                                  { return len(f.statuses) }
func (f fakePINs) Snapshot(_ time.Time) []memstore.PINStatus { return f.statuses }

type fakeEmails []string

func (f fakeEmails) List() []string { return f }

type nilPool struct{}

func (nilPool) Stat() *pgxpool.Stat { return nil }

func testTerms(t *testing.T) pricing.Terms {
	t.Helper()
	terms, err := pricing.NewTerms(0.05, 0, 100)
	require.NoError(t, err)
	return terms
}

func row(stock, mfr string, year int, list int64, loc int) inventory.Row {
	return inventory.Row{
		StockNumber:      stock,
		Manufacturer:     mfr,
		Make:             "Ace",
		Model:            "30.4",
		ModelYear:        year,
		Condition:        "N",
		ClassCode:        "A",
		ClassDescription: "Class A",
		ListPrice:        decimal.NewFromInt(list),
		Sleeps:           6,
		LocationID:       loc,
	}
}

func TestInventoryQueries_InitData(t *testing.T) {
	ctx := context.Background()

	t.Run("loads locations and classes", func(t *testing.T) {
		units, locs := new(mockInventoryStore), new(mockLocationStore)
		locs.On("FindAll", mock.Anything).Return([]location.Location{{CMF: 12, Code: "DAL"}}, nil)
		units.On("UnitClasses", mock.Anything).Return([]inventory.UnitClass{{ID: 1, Code: "A", Description: "Class A"}}, nil)

		q := NewInventoryQueries(units, locs, staticImages{}, testTerms(t))
		data, err := q.InitData(ctx)

		require.NoError(t, err)
		assert.Len(t, data.Locations, 1)
		assert.Equal(t, "Class A", data.UnitClasses[0].Description)
	})

	t.Run("either failure fails the whole call", func(t *testing.T) {
		units, locs := new(mockInventoryStore), new(mockLocationStore)
		locs.On("FindAll", mock.Anything).Return(nil, errors.New("boom"))
		units.On("UnitClasses", mock.Anything).Return([]inventory.UnitClass{}, nil)

		q := NewInventoryQueries(units, locs, staticImages{}, testTerms(t))
		_, err := q.InitData(ctx)

		require.Error(t, err)
		assert.True(t, errs.Is(err, ErrInventoryUnavailable))
	})
}

func TestInventoryQueries_Search(t *testing.T) {
	ctx := context.Background()
	rows := []inventory.Row{
		row("S3", "Thor", 2023, 90000, 12),
		row("S1", "Thor", 2024, 150000, 12),
		row("", "Ghost", 2024, 1, 12),
		row("S2", "Winnebago", 2022, 60000, 14),
		row("S4", "Thor", 2024, 140000, 14),
	}
	search := shared.InventorySearch{LocationIDs: []int{12, 14}}

	t.Run("transforms filters sorts and groups", func(t *testing.T) {
		units := new(mockInventoryStore)
		units.On("Search", ctx, search).Return(rows, nil)
		minYear := 2023

		q := NewInventoryQueries(units, new(mockLocationStore), staticImages{}, testTerms(t))
		res, err := q.Search(ctx, InventoryQuery{
			Search:   search,
			Criteria: inventory.Criteria{Manufacturers: []string{"thor"}, MinYear: &minYear},
			Sort:     "price_desc",
			Group:    true,
		})

		require.NoError(t, err)
		assert.Equal(t, 5, res.Fetched)
		assert.Equal(t, inventory.SortPriceDesc, res.Sort)
		stocks := make([]string, len(res.Units))
		for i, u := range res.Units {
			stocks[i] = u.StockNumber
		}
		assert.Equal(t, []string{"S1", "S4", "S3"}, stocks)
		assert.Equal(t, "/img/S1.jpg", res.Units[0].ImageURL)
		assert.True(t, decimal.NewFromInt(142500).Equal(res.Units[0].PartnerPrice))

		require.Len(t, res.Groups, 2)
		assert.Equal(t, 2, res.Groups[0].Quantity)
		assert.True(t, res.Groups[0].MultipleLocations)
	})

	t.Run("default sort without grouping", func(t *testing.T) {
		units := new(mockInventoryStore)
		units.On("Search", ctx, search).Return(rows, nil)

		q := NewInventoryQueries(units, new(mockLocationStore), staticImages{}, testTerms(t))
		res, err := q.Search(ctx, InventoryQuery{Search: search})

		require.NoError(t, err)
		assert.Nil(t, res.Groups)
		assert.Equal(t, inventory.SortPriceAsc, res.Sort)
		assert.Equal(t, "S2", res.Units[0].StockNumber)
	})

	t.Run("limit applies after filtering and sorting", func(t *testing.T) {
		units := new(mockInventoryStore)
		units.On("Search", ctx, search).Return(rows, nil)
		minPrice := decimal.NewFromInt(70000)

		q := NewInventoryQueries(units, new(mockLocationStore), staticImages{}, testTerms(t))
		res, err := q.Search(ctx, InventoryQuery{
			Search:   search,
			Criteria: inventory.Criteria{MinPrice: &minPrice},
			Sort:     "price_asc",
			Group:    true,
			Limit:    2,
		})

		require.NoError(t, err)
		units.AssertExpectations(t)
		assert.Equal(t, 5, res.Fetched)
		assert.Equal(t, 3, res.Matched)
		require.Len(t, res.Units, 2)
		assert.Equal(t, "S3", res.Units[0].StockNumber)
		assert.Equal(t, "S4", res.Units[1].StockNumber)
		require.Len(t, res.Groups, 2)
	})

	t.Run("invalid sort key", func(t *testing.T) {
		q := NewInventoryQueries(new(mockInventoryStore), new(mockLocationStore), staticImages{}, testTerms(t))
		_, err := q.Search(ctx, InventoryQuery{Sort: "cheapest"})
		assert.True(t, errs.Is(err, ErrInvalidInventoryQuery))
	})

	t.Run("distance sort without origin", func(t *testing.T) {
		q := NewInventoryQueries(new(mockInventoryStore), new(mockLocationStore), staticImages{}, testTerms(t))
		_, err := q.Search(ctx, InventoryQuery{Sort: "distance_asc"})
		assert.True(t, errs.Is(err, ErrInvalidInventoryQuery))
	})

	t.Run("store failure", func(t *testing.T) {
		units := new(mockInventoryStore)
		units.On("Search", ctx, search).Return(nil, infra.WrapRepoErr("failed", errors.New("conn reset")))

		q := NewInventoryQueries(units, new(mockLocationStore), staticImages{}, testTerms(t))
		_, err := q.Search(ctx, InventoryQuery{Search: search})
		assert.True(t, errs.Is(err, ErrInventoryUnavailable))
	})
}

func TestInventoryQueries_GetUnit(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		units := new(mockInventoryStore)
		r := row("S1", "Thor", 2024, 150000, 12)
		units.On("FindByStock", ctx, "S1").Return(&r, nil)

		q := NewInventoryQueries(units, new(mockLocationStore), staticImages{}, testTerms(t))
		rv, err := q.GetUnit(ctx, "S1")

		require.NoError(t, err)
		assert.Equal(t, "2024 Thor Ace 30.4", rv.Title)
		assert.Equal(t, inventory.ConditionNew, rv.Condition)
	})

	t.Run("not found", func(t *testing.T) {
		units := new(mockInventoryStore)
		units.On("FindByStock", ctx, "NOPE").Return(nil, infra.WrapRepoErr("unit not found", nil, infra.KindNotFound))

		q := NewInventoryQueries(units, new(mockLocationStore), staticImages{}, testTerms(t))
		_, err := q.GetUnit(ctx, "NOPE")
		assert.True(t, errs.Is(err, errs.ErrUnitNotFound))
	})
}

func TestLocationQueries_List(t *testing.T) {
	ctx := context.Background()
	dallas := location.Location{CMF: 1, Code: "DAL", Coords: geo.Coordinates{Latitude: 32.7767, Longitude: -96.797}}
	houston := location.Location{CMF: 2, Code: "HOU", Coords: geo.Coordinates{Latitude: 29.7604, Longitude: -95.3698}}

	store := new(mockLocationStore)
	store.On("FindAll", ctx).Return([]location.Location{dallas, houston}, nil)
	q := NewLocationQueries(store, new(mockDistance))

	t.Run("without origin keeps store order", func(t *testing.T) {
		out, err := q.List(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, "DAL", out[0].Code)
		assert.Zero(t, out[0].Miles)
	})

	t.Run("with origin sorts nearest first", func(t *testing.T) {
		origin := geo.Coordinates{Latitude: 29.95, Longitude: -95.5}
		out, err := q.List(ctx, &origin)
		require.NoError(t, err)
		assert.Equal(t, "HOU", out[0].Code)
		assert.Less(t, out[0].Miles, out[1].Miles)
	})
}

func TestLocationQueries_DrivingDistances(t *testing.T) {
	ctx := context.Background()

	t.Run("trims and forwards destinations", func(t *testing.T) {
		dist := new(mockDistance)
		dist.On("Distances", ctx, "75201", []string{"77002", "78701"}).
			Return([]shared.DrivingDistance{{Destination: "77002", Miles: 239.4, Status: "OK"}, {Destination: "78701", Status: "NOT_FOUND"}}, nil)

		q := NewLocationQueries(new(mockLocationStore), dist)
		legs, err := q.DrivingDistances(ctx, " 75201 ", []string{"77002", " ", "78701"})

		require.NoError(t, err)
		require.Len(t, legs, 2)
		assert.True(t, legs[0].OK())
		assert.False(t, legs[1].OK())
	})

	t.Run("validation", func(t *testing.T) {
		q := NewLocationQueries(new(mockLocationStore), new(mockDistance))

		_, err := q.DrivingDistances(ctx, "", []string{"77002"})
		assert.True(t, errs.Is(err, ErrInvalidDistanceQuery))

		_, err = q.DrivingDistances(ctx, "75201", nil)
		assert.True(t, errs.Is(err, ErrInvalidDistanceQuery))

		many := make([]string, MaxDistanceDestinations+1)
		for i := range many {
			many[i] = "77002"
		}
		_, err = q.DrivingDistances(ctx, "75201", many)
		assert.True(t, errs.Is(err, ErrInvalidDistanceQuery))
	})

	t.Run("upstream failure", func(t *testing.T) {
		dist := new(mockDistance)
		dist.On("Distances", ctx, "75201", []string{"77002"}).Return(nil, errors.New("timeout"))

		q := NewLocationQueries(new(mockLocationStore), dist)
		_, err := q.DrivingDistances(ctx, "75201", []string{"77002"})
		assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
	})
}

func TestOrderQueries(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	mine := &shared.OrderRecord{ID: id, CustomerEmail: "pat@partner.example.com"}

	t.Run("get own order", func(t *testing.T) {
		store := new(mockOrderStore)
		store.On("FindByID", ctx, id).Return(mine, nil)

		rec, err := NewOrderQueries(store, nil).Get(ctx, "pat@partner.example.com", id)
		require.NoError(t, err)
		assert.Equal(t, id, rec.ID)
	})

	t.Run("another customer's order reads as not found", func(t *testing.T) {
		store := new(mockOrderStore)
		store.On("FindByID", ctx, id).Return(mine, nil)

		_, err := NewOrderQueries(store, nil).Get(ctx, "sam@partner.example.com", id)
		assert.True(t, errs.Is(err, ErrOrderNotFound))
	})

	t.Run("missing order", func(t *testing.T) {
		store := new(mockOrderStore)
		store.On("FindByID", ctx, id).Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

		_, err := NewOrderQueries(store, nil).Get(ctx, "pat@partner.example.com", id)
		assert.True(t, errs.Is(err, ErrOrderNotFound))
	})

	t.Run("list clamps the limit", func(t *testing.T) {
		store := new(mockOrderStore)
		store.On("ListByEmail", ctx, "pat@partner.example.com", DefaultOrderListLimit).Return([]*shared.OrderRecord{mine}, nil).Once()
		store.On("ListByEmail", ctx, "pat@partner.example.com", MaxOrderListLimit).Return([]*shared.OrderRecord{}, nil).Once()
		q := NewOrderQueries(store, nil)

		recs, err := q.ListMine(ctx, "pat@partner.example.com", 0)
		require.NoError(t, err)
		assert.Len(t, recs, 1)

		_, err = q.ListMine(ctx, "pat@partner.example.com", 5000)
		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("catalog", func(t *testing.T) {
		cat, err := checkout.DefaultCatalog()
		require.NoError(t, err)
		assert.Same(t, cat, NewOrderQueries(new(mockOrderStore), cat).Catalog(ctx))
	})
}

func TestDebugQueries_Snapshot(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pins := fakePINs{statuses: []memstore.PINStatus{{Email: "pat@partner.example.com", ExpiresAt: now.Add(time.Minute)}}}

	info := NewDebugQueries(pins, fakeEmails{"sam@partner.example.com"}, nilPool{}, clock.NewMockClock(now)).Snapshot(context.Background())

	assert.Equal(t, now, info.Now)
	assert.Equal(t, 1, info.PendingPINs)
	assert.Equal(t, []string{"sam@partner.example.com"}, info.VerifiedEmails)
	assert.Nil(t, info.Pool)
}
