package bootstrap

import (
	"log/slog"

	"pix-funnel/internal/handler/middleware"
	"pix-funnel/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	slogger := middleware.NewLogger(cfg.Log).GetSlogLogger()
	slog.SetDefault(slogger)
	return slogger
}
