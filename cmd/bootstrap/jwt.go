package bootstrap

import (
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/config"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer)
}
