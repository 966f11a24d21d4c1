package components

import (
	"log/slog"

	"pix-funnel/internal/infra/automation"
	"pix-funnel/internal/infra/gateway"
	"pix-funnel/internal/infra/memstore"
	"pix-funnel/internal/infra/mirror"
	"pix-funnel/internal/pkg/clock"
	"pix-funnel/internal/pkg/config"
	"pix-funnel/internal/pkg/tasks"
	"pix-funnel/internal/usecase/affinity"
	"pix-funnel/internal/usecase/commands"
	"pix-funnel/internal/usecase/queries"
	"pix-funnel/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewAssigner,
		NewWatchdog,
		NewFunnel,
		NewSweeper,
		NewWarmer,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewPaymentQueries,
		NewContactQueries,
		queries.NewContactArchiver,
		NewDashboardQueries,
	),
)

func NewAssigner(cfg config.Config, store *memstore.Store, durable shared.Durable, slogger *slog.Logger) *affinity.Assigner {
	return affinity.NewAssigner(store, durable.Affinity(), cfg.Funnel.InstancePool, cfg.Funnel.DefaultInstance, slogger)
}

func NewWatchdog(clk clock.Clock, store *memstore.Store, dispatcher *automation.Dispatcher, group *tasks.Group, slogger *slog.Logger) *commands.Watchdog {
	return commands.NewWatchdog(clk, store, dispatcher, group, slogger)
}

type FunnelDeps struct {
	fx.In

	Config     config.Config
	Clock      clock.Clock
	Store      *memstore.Store
	Durable    shared.Durable
	Assigner   *affinity.Assigner
	Watchdog   *commands.Watchdog
	Dispatcher *automation.Dispatcher
	Tasks      *tasks.Group
	Logger     *slog.Logger
}

func NewFunnel(d FunnelDeps) commands.FunnelCommands {
	return commands.NewFunnelUseCase(commands.FunnelParams{
		Store:        d.Store,
		Assigner:     d.Assigner,
		Watchdog:     d.Watchdog,
		Dispatcher:   d.Dispatcher,
		Contacts:     commands.NewContactRecorder(d.Durable.Contacts(), d.Clock, d.Config.Funnel.Location(), d.Logger),
		Oracle:       newPaymentOracle(d.Config, d.Durable, d.Logger),
		Ledger:       d.Durable.Payments(),
		Tasks:        d.Tasks,
		Clock:        d.Clock,
		ProductCodes: d.Config.Funnel.ProductCodes,
		PixTimeout:   d.Config.Funnel.PixTimeout,
		Logger:       d.Logger,
	})
}

// newPaymentOracle prefers the gateway's live status. Without PAYMENT_STATUS_URL
// only the ledger is consulted.
func newPaymentOracle(cfg config.Config, durable shared.Durable, slogger *slog.Logger) commands.PaymentOracle {
	ledger := commands.NewLedgerOracle(durable.Payments())
	client := gateway.NewStatusClient(cfg.Gateway.StatusURL, cfg.Gateway.StatusToken, cfg.Gateway.StatusTimeout)
	if !client.Enabled() {
		slogger.Warn("PAYMENT_STATUS_URL is not set; reply-time payment checks use the ledger only")
		return ledger
	}
	return commands.NewFallbackOracle(client, ledger, slogger)
}

func NewSweeper(cfg config.Config, clk clock.Clock, store *memstore.Store, assigner *affinity.Assigner, slogger *slog.Logger) *commands.Sweeper {
	policy := commands.SweepPolicy{
		Interval:        cfg.Sweeper.Interval,
		RetentionWindow: cfg.Sweeper.RetentionWindow,
		TerminalGrace:   cfg.Sweeper.TerminalGrace,
	}
	return commands.NewSweeper(store, clk, policy, assigner.Forget, slogger)
}

func NewWarmer(clk clock.Clock, store *memstore.Store, durable shared.Durable, watchdog *commands.Watchdog, slogger *slog.Logger) *commands.Warmer {
	return commands.NewWarmer(durable.Conversations(), store, watchdog, clk, slogger)
}

func NewPaymentQueries(store *memstore.Store, durable shared.Durable) queries.PaymentQueries {
	return queries.NewPaymentQueries(store, durable.Payments())
}

func NewContactQueries(cfg config.Config, clk clock.Clock, durable shared.Durable) queries.ContactQueries {
	return queries.NewContactQueries(durable.Contacts(), clk, cfg.Funnel.Location())
}

func NewDashboardQueries(clk clock.Clock, store *memstore.Store, dispatcher *automation.Dispatcher, writer *mirror.Writer) queries.DashboardQueries {
	return queries.NewDashboardQueries(queries.DashboardParams{
		Conversations: store,
		Dispatch:      dispatcher,
		Mirror:        writer,
		Clock:         clk,
		StartedAt:     clk.Now(),
	})
}
