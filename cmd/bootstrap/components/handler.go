package components

import (
	"rv-portal/internal/handler"
	"rv-portal/internal/handler/api"
	"rv-portal/internal/handler/middleware"
	"rv-portal/internal/pkg/config"
	"rv-portal/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewInventoryHandler,
		api.NewLocationHandler,
		NewSignupHandler,
		api.NewOrderHandler,
		api.NewDebugHandler,
		middleware.NewSessionMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewSignupHandler(cmds commands.SignupCommands, cfg config.Config) *api.SignupHandler {
	return api.NewSignupHandler(cmds, cfg.Session)
}

type HandlersIn struct {
	fx.In

	Inventory *api.InventoryHandler
	Location  *api.LocationHandler
	Signup    *api.SignupHandler
	Order     *api.OrderHandler
	Debug     *api.DebugHandler
}

func NewHandlers(in HandlersIn) handler.Handlers {
	return handler.Handlers{
		Inventory: in.Inventory,
		Location:  in.Location,
		Signup:    in.Signup,
		Order:     in.Order,
		Debug:     in.Debug,
	}
}
