package bootstrap

import (
	"log/slog"

	"rv-portal/internal/handler/middleware"
	"rv-portal/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

// NewSlogLogger also installs the logger as the process default so packages logging via slog share its handler.
func NewSlogLogger(logger *middleware.Logger) *slog.Logger {
	l := logger.GetSlogLogger()
	slog.SetDefault(l)
	return l
}
