//go:build unit

package readstore

import (
	"context"
	"testing"

	"rv-portal/internal/infra"
	"rv-portal/internal/infra/query"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLocationReadQueries struct {
	mock.Mock
}

func (m *MockLocationReadQueries) ListLocations(ctx context.Context, db query.DBTX) ([]query.UnitLocation, error) {
	args := m.Called(ctx, db)
	rows, _ := args.Get(0).([]query.UnitLocation)
	return rows, args.Error(1)
}

func (m *MockLocationReadQueries) GetLocation(ctx context.Context, db query.DBTX, cmf int32) (query.UnitLocation, error) {
	args := m.Called(ctx, db, cmf)
	return args.Get(0).(query.UnitLocation), args.Error(1)
}

func TestLocationReadStore(t *testing.T) {
	ctx := context.Background()
	dallas := query.UnitLocation{
		Cmf:          12,
		LocationCode: text("DAL"),
		StoreName:    text("Dallas RV Center"),
		Zip:          text("75201"),
		Latitude:     f8(32.7767),
		Longitude:    f8(-96.797),
	}

	t.Run("FindAll", func(t *testing.T) {
		q := new(MockLocationReadQueries)
		q.On("ListLocations", ctx, nil).Return([]query.UnitLocation{dallas}, nil)

		locs, err := NewLocationReadStore(q, nil).FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, locs, 1)
		assert.Equal(t, 12, locs[0].CMF)
		assert.Equal(t, "Dallas RV Center", locs[0].StoreName)
		assert.Equal(t, 32.7767, locs[0].Coords.Latitude)
	})

	t.Run("FindByCMF not found", func(t *testing.T) {
		q := new(MockLocationReadQueries)
		q.On("GetLocation", ctx, nil, int32(99)).Return(query.UnitLocation{}, pgx.ErrNoRows)

		_, err := NewLocationReadStore(q, nil).FindByCMF(ctx, 99)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("FindByCMF database error", func(t *testing.T) {
		q := new(MockLocationReadQueries)
		q.On("GetLocation", ctx, nil, int32(12)).Return(query.UnitLocation{}, assert.AnError)

		_, err := NewLocationReadStore(q, nil).FindByCMF(ctx, 12)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
