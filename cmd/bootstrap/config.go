package bootstrap

import (
	"github.com/cagegit/hotel-front-desk-agent/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
