package middleware

import (
	"log/slog"
	"slices"

	"pix-funnel/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware serves the dashboard's browser calls to /api. A "*"
// origin allows every origin and turns credentials off, which browsers
// would reject anyway.
func NewCORSMiddleware(cfg config.CORSConfig, slogger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    slices.Clone(cfg.ExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	if !slices.Contains(corsCfg.ExposeHeaders, "Content-Disposition") {
		corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, "Content-Disposition")
	}

	if slogger == nil {
		slogger = slog.Default()
	}
	slogger.Info("CORS middleware initialized",
		slog.Any("allow_origins", cfg.AllowOrigins),
		slog.Bool("allow_all_origins", corsCfg.AllowAllOrigins))
	return cors.New(corsCfg)
}
