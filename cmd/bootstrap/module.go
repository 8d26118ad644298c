package bootstrap

import (
	"rv-portal/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.RepositoryModule,
	components.ServiceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
