package components

import (
	"log/slog"

	"pix-funnel/internal/infra/automation"
	"pix-funnel/internal/infra/memstore"
	"pix-funnel/internal/infra/mirror"
	"pix-funnel/internal/pkg/clock"
	"pix-funnel/internal/pkg/config"
	"pix-funnel/internal/pkg/keymutex"
	"pix-funnel/internal/pkg/tasks"
	"pix-funnel/internal/usecase/shared"

	"go.uber.org/fx"
)

// CoreModule holds the process-wide state: the conversation store, its
// durable mirror, the automation dispatcher and the background task group.
var CoreModule = fx.Module("core",
	fx.Provide(
		clock.NewRealClock,
		keymutex.New,
		tasks.NewGroup,
		NewMirrorWriter,
		NewConversationStore,
		NewDispatcher,
	),
)

func NewMirrorWriter(cfg config.Config, durable shared.Durable, slogger *slog.Logger) *mirror.Writer {
	return mirror.NewWriter(durable.Conversations(), cfg.Store.QueueSize, slogger)
}

func NewConversationStore(locks *keymutex.Map, writer *mirror.Writer, slogger *slog.Logger) *memstore.Store {
	return memstore.NewStore(locks, writer, slogger)
}

func NewDispatcher(cfg config.Config, durable shared.Durable, clk clock.Clock, slogger *slog.Logger) *automation.Dispatcher {
	if cfg.Dispatcher.WebhookURL == "" {
		slogger.Warn("AUTOMATION_WEBHOOK_URL is not set; every dispatch will be journaled as failed")
	}
	transport := automation.NewHTTPTransport(cfg.Dispatcher.WebhookURL, cfg.Dispatcher.Token, cfg.Dispatcher.Timeout)
	return automation.NewDispatcher(automation.DispatcherParams{
		Transport:   transport,
		Journal:     durable.Dispatches(),
		Clock:       clk,
		Location:    cfg.Funnel.Location(),
		MaxAttempts: cfg.Dispatcher.MaxAttempts,
		BaseDelay:   cfg.Dispatcher.BaseDelay,
		Logger:      slogger,
	})
}
