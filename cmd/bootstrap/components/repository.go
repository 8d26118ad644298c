package components

import (
	"rv-portal/internal/infra/uow"

	"go.uber.org/fx"
)

// RepositoryModule provides the write side. Order repositories are created per
// transaction by the unit of work.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)
