package bootstrap

import (
	"seminar-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	GateModule,
	components.RepositoryModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
