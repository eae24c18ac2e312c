package bootstrap

import (
	"treesync/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	ResilienceModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
