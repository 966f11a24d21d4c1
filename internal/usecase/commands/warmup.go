package commands

import (
	"context"
	"log/slog"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/pkg/clock"
	"pix-funnel/internal/usecase/shared"
)

type WarmStore interface {
	ConversationStore
	Load(snaps []conversation.Snapshot) int
}

// Warmer restores mirrored conversations on start and re-arms the timeouts
// of those still waiting for payment.
type Warmer struct {
	mirror   shared.ConversationMirror
	store    WarmStore
	watchdog TimeoutScheduler
	clock    clock.Clock
	slogger  *slog.Logger
}

func NewWarmer(mirror shared.ConversationMirror, store WarmStore, watchdog TimeoutScheduler, clk clock.Clock, slogger *slog.Logger) *Warmer {
	return &Warmer{mirror: mirror, store: store, watchdog: watchdog, clock: clk, slogger: slogger}
}

func (w *Warmer) Warm(ctx context.Context) (int, error) {
	snaps, err := w.mirror.ListActive(ctx)
	if err != nil {
		return 0, err
	}
	loaded := w.store.Load(snaps)

	rearmed := 0
	for _, snap := range snaps {
		if snap.Status != conversation.StatusPixPending {
			continue
		}
		orderRef := snap.OrderReference
		armed := false
		_, err := w.store.Mutate(ctx, snap.Identity, func(cur *conversation.Conversation) (*conversation.Conversation, error) {
			if cur == nil || cur.Status() != conversation.StatusPixPending || cur.OrderReference() != orderRef || cur.TimeoutHandle() != nil {
				return nil, nil
			}
			deadline := cur.TimeoutAt()
			now := w.clock.Now()
			if deadline.IsZero() {
				deadline = now
			}
			cur.ArmTimeout(w.watchdog.Schedule(orderRef, cur.Identity(), deadline.Sub(now)), deadline)
			armed = true
			return cur, nil
		})
		if err != nil {
			w.slogger.Warn("failed to re-arm payment timeout",
				slog.String("identity", snap.Identity.String()),
				slog.Any("error", err))
			continue
		}
		if armed {
			rearmed++
		}
	}

	w.slogger.Info("conversation store warmed",
		slog.Int("mirrored", len(snaps)),
		slog.Int("loaded", loaded),
		slog.Int("timeouts_rearmed", rearmed))
	return loaded, nil
}
