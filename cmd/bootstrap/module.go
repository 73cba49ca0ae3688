package bootstrap

import (
	"coshare-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule wires everything the one-shot jobs need.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

// ServerModule adds token validation and the HTTP layer.
var ServerModule = fx.Options(
	CoreModule,
	JWTModule,
	components.AuthModule,
	components.HandlerModule,
)
