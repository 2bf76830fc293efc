package bootstrap

import (
	"log/slog"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/middleware"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// The request logger is also installed as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
