package components

import (
	"rv-portal/internal/domain/signup"
	"rv-portal/internal/pkg/clock"
	"rv-portal/internal/pkg/config"
	"rv-portal/internal/usecase/commands"
	"rv-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewSignupCommands,
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewInventoryQueries,
		queries.NewLocationQueries,
		queries.NewOrderQueries,
		queries.NewDebugQueries,
	),
)

func NewSignupCommands(
	cfg config.Config,
	policy signup.DomainPolicy,
	pins commands.PINStore,
	emails commands.EmailRegistry,
	hasher commands.PINHasher,
	mailer commands.Mailer,
	sessions commands.SessionIssuer,
	clk clock.Clock,
) commands.SignupCommands {
	return commands.NewSignupCommands(policy, pins, emails, hasher, mailer, sessions, clk, commands.SignupOptions{
		TTL:       cfg.Signup.PINTTL,
		ExposePIN: ExposePIN(cfg) && gin.Mode() == gin.DebugMode,
	})
}
