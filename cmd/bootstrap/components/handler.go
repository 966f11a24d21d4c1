package components

import (
	"log/slog"

	"pix-funnel/internal/handler"
	"pix-funnel/internal/handler/api"
	"pix-funnel/internal/handler/middleware"
	"pix-funnel/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWebhookHandler,
		api.NewQueryHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(registerRoutes),
)

func registerRoutes(
	engine *gin.Engine,
	cfg config.Config,
	slogger *slog.Logger,
	webhooks *api.WebhookHandler,
	queryHandler *api.QueryHandler,
	auth *middleware.AuthMiddleware,
) {
	handler.NewRouter(engine, handler.RouterParams{
		Config:         cfg,
		Logger:         slogger,
		Webhooks:       webhooks,
		Queries:        queryHandler,
		AuthMiddleware: auth,
	})
}
