package bootstrap

import (
	"github.com/juliocnc19/mvp-tigrito-web-sub000/cmd/bootstrap/components"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/metrics"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	fx.Invoke(metrics.Init),
	components.PersistenceModule,
	components.UseCaseModule,
	components.WorkerModule,
	components.HandlerModule,
)
