package bootstrap

import (
	"github.com/cagegit/hotel-front-desk-agent/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	BackendsModule,
	components.UseCaseModule,
	components.HandlerModule,
)
