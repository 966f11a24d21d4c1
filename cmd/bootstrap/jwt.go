package bootstrap

import (
	"time"

	"pix-funnel/internal/handler/middleware"
	"pix-funnel/internal/pkg/config"
	"pix-funnel/internal/pkg/jwt"

	"go.uber.org/fx"
)

// AdminTokenDuration bounds tokens minted by cmd/admintoken.
const AdminTokenDuration = 12 * time.Hour

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Auth.AdminJWTSecret, AdminTokenDuration)
}
