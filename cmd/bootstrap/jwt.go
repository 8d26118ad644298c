package bootstrap

import (
	"rv-portal/internal/pkg/config"
	"rv-portal/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.Session.Secret == "" {
		panic("SESSION_SECRET must not be empty")
	}
	return jwt.NewService(cfg.Session.Secret, cfg.Session.Duration)
}
