package commands

import (
	"context"
	"log/slog"
	"time"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/event"
	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/pkg/clock"
	"pix-funnel/internal/pkg/errs"
)

var ErrConversationNotFound = errs.New("conversation not found")

// Watchdog expires pending payments that were not confirmed in time.
type Watchdog struct {
	clock      clock.Clock
	store      ConversationStore
	dispatcher Dispatcher
	tasks      TaskRunner
	slogger    *slog.Logger
}

func NewWatchdog(clk clock.Clock, store ConversationStore, dispatcher Dispatcher, tasks TaskRunner, slogger *slog.Logger) *Watchdog {
	return &Watchdog{
		clock:      clk,
		store:      store,
		dispatcher: dispatcher,
		tasks:      tasks,
		slogger:    slogger,
	}
}

type timerHandle struct {
	timer clock.Timer
}

func (h timerHandle) Cancel() {
	h.timer.Stop()
}

// Schedule returns the cancellation handle; the caller stores it on the
// conversation so that a later schedule for the same record replaces it.
func (w *Watchdog) Schedule(orderReference string, key identity.Key, delay time.Duration) conversation.TimeoutHandle {
	if delay < 0 {
		delay = 0
	}
	t := w.clock.AfterFunc(delay, func() {
		w.fire(orderReference, key)
	})
	return timerHandle{timer: t}
}

func (w *Watchdog) fire(orderReference string, key identity.Key) {
	ctx := context.Background()
	now := w.clock.Now()

	snap, err := w.store.Mutate(ctx, key, func(cur *conversation.Conversation) (*conversation.Conversation, error) {
		if cur == nil {
			return nil, ErrConversationNotFound
		}
		if err := cur.Expire(orderReference, now); err != nil {
			return nil, err
		}
		return cur, nil
	})
	if err != nil {
		w.slogger.Debug("payment timeout skipped",
			slog.String("identity", key.String()),
			slog.String("order_reference", orderReference),
			slog.String("reason", err.Error()))
		return
	}

	w.slogger.Info("payment timed out",
		slog.String("identity", key.String()),
		slog.String("order_reference", orderReference))

	ev := event.FromConversation(event.KindPixTimeout, snap, now)
	w.tasks.Go("dispatch pix_timeout", func(ctx context.Context) {
		w.dispatcher.Send(ctx, ev)
	})
}
