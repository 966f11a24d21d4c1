package components

import (
	"context"
	"log/slog"

	"pix-funnel/internal/infra/memstore"
	"pix-funnel/internal/infra/mirror"
	"pix-funnel/internal/pkg/tasks"
	"pix-funnel/internal/usecase/commands"

	"go.uber.org/fx"
)

var LifecycleModule = fx.Module("lifecycle",
	fx.Invoke(registerLifecycle),
)

// registerLifecycle starts the mirror before warming so that timeouts
// re-armed during warm-up are replicated. Shutdown runs in reverse and
// drains the mirror last.
func registerLifecycle(
	lc fx.Lifecycle,
	writer *mirror.Writer,
	store *memstore.Store,
	warmer *commands.Warmer,
	sweeper *commands.Sweeper,
	group *tasks.Group,
	slogger *slog.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			writer.Start()

			loaded, err := warmer.Warm(ctx)
			if err != nil {
				// start cold
				slogger.Error("failed to warm conversation store", slog.String("error", err.Error()))
			} else {
				slogger.Info("conversation store warmed", slog.Int("loaded", loaded))
			}

			sweeper.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := sweeper.Stop(ctx); err != nil {
				slogger.Warn("sweeper did not stop in time", slog.String("error", err.Error()))
			}
			store.DisarmAll()
			if err := group.Shutdown(ctx); err != nil {
				slogger.Warn("background tasks cancelled", slog.String("error", err.Error()))
			}
			return writer.Stop(ctx)
		},
	})
}
