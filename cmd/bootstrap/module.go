package bootstrap

import (
	"nuzlocke-tracker/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
