package bootstrap

import (
	"pix-funnel/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	JWTModule,
	components.CoreModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.LifecycleModule,
)
