package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pix-funnel/internal/handler/api"
	"pix-funnel/internal/handler/middleware"
	"pix-funnel/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	Config         config.Config
	Logger         *slog.Logger
	Webhooks       *api.WebhookHandler
	Queries        *api.QueryHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, p RouterParams) {
	setupMiddleware(engine, p.Config, p.Logger)
	setupRoutes(engine, p.Webhooks, p.Queries, p.AuthMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, slogger *slog.Logger) {
	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, slogger))
	engine.Use(middleware.LoggingMiddleware(slogger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, webhooks *api.WebhookHandler, queryHandler *api.QueryHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	webhook := engine.Group("/webhook")
	{
		addRoutes(webhook, []route{
			{Method: http.MethodPost, Path: "/payment", Handler: webhooks.Payment},
			{Method: http.MethodPost, Path: "/reply", Handler: webhooks.Reply},
			{Method: http.MethodPost, Path: "/confirmation", Handler: webhooks.Confirmation},
		})
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAdmin())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/payments/:orderReference/status", Handler: queryHandler.PaymentStatus},
			{Method: http.MethodGet, Path: "/contacts/stats", Handler: queryHandler.ContactStats},
			{Method: http.MethodGet, Path: "/contacts/export", Handler: queryHandler.ExportContacts, Mw: []gin.HandlerFunc{middleware.NoStore()}},
			{Method: http.MethodPost, Path: "/contacts/archive", Handler: queryHandler.ArchiveContacts},
			{Method: http.MethodGet, Path: "/dashboard/snapshot", Handler: queryHandler.DashboardSnapshot, Mw: []gin.HandlerFunc{middleware.NoStore()}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
