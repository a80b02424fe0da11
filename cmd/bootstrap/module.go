package bootstrap

import (
	"sweethomes-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	UpstreamModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
