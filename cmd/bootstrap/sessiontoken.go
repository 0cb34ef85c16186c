package bootstrap

import (
	"support-console/internal/pkg/config"
	"support-console/internal/pkg/sessiontoken"

	"go.uber.org/fx"
)

var SessionTokenModule = fx.Module("sessiontoken",
	fx.Provide(
		NewSessionTokenService,
	),
)

func NewSessionTokenService(cfg config.Config) *sessiontoken.Service {
	return sessiontoken.NewService(cfg.Session.Secret, cfg.Session.Duration)
}
