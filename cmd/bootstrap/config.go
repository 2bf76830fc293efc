package bootstrap

import (
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
