package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"rv-portal/internal/domain/inventory"
	"rv-portal/internal/domain/location"
	"rv-portal/internal/infra/memstore"
	"rv-portal/internal/usecase/shared"
)

// Read-side ports. Implementations live in internal/infra.

type InventoryReadStore interface {
	Search(ctx context.Context, s shared.InventorySearch) ([]inventory.Row, error)
	FindByStock(ctx context.Context, stockNumber string) (*inventory.Row, error)
	UnitClasses(ctx context.Context) ([]inventory.UnitClass, error)
}

type LocationReadStore interface {
	FindAll(ctx context.Context) ([]location.Location, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.OrderRecord, error)
	ListByEmail(ctx context.Context, email string, limit int) ([]*shared.OrderRecord, error)
}

type DistanceClient interface {
	Distances(ctx context.Context, origin string, destinations []string) ([]shared.DrivingDistance, error)
}

type ImageResolver interface {
	ImageURL(ctx context.Context, stockNumber string) string
}

type PINInspector interface {
	Len() int
	Snapshot(now time.Time) []memstore.PINStatus
}

type EmailLister interface {
	List() []string
}

type PoolStatter interface {
	Stat() *pgxpool.Stat
}
