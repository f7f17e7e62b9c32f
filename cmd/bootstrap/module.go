package bootstrap

import (
	"hotel-core/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires everything except the HTTP listener, so e2e tests can reuse
// it with their own engine and database.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	FxLogger,
	DBModule,
	JWTModule,
	SeedModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
