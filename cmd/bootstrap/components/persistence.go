package components

import (
	"rv-portal/internal/infra/query"
	"rv-portal/internal/infra/readstore"
	"rv-portal/internal/usecase/commands"
	"rv-portal/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	NewPoolStatter,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Inventory
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.InventoryReadQueries)),
		),
		fx.Annotate(
			readstore.NewInventoryReadStore,
			fx.As(new(queries.InventoryReadStore)),
		),
		// Location
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LocationReadQueries)),
		),
		fx.Annotate(
			readstore.NewLocationReadStore,
			fx.As(new(queries.LocationReadStore)),
			fx.As(new(commands.LocationLookup)),
		),
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderReadQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}

func NewPoolStatter(pool *pgxpool.Pool) queries.PoolStatter {
	return pool
}
