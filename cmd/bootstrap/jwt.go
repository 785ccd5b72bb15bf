package bootstrap

import (
	"library-backend/internal/handler/middleware"
	"library-backend/internal/pkg/clock"
	"library-backend/internal/pkg/config"
	"library-backend/internal/pkg/jwt"
	"library-backend/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(new(commands.TokenIssuer)),
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	if cfg.JWT.Secret == "" {
		panic("JWT_SECRET must not be empty")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Lifetime(), clk)
}
