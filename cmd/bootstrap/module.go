package bootstrap

import (
	"library-backend/cmd/bootstrap/components"
	"library-backend/internal/pkg/clock"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	fx.Provide(clock.NewRealClock),
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	SeedModule,
)
