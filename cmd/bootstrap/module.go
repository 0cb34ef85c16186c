package bootstrap

import (
	"support-console/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	SessionTokenModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
