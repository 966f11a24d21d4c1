//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/event"
	"pix-funnel/internal/infra/memstore"
	"pix-funnel/internal/pkg/clock"
	"pix-funnel/internal/pkg/keymutex"
	"pix-funnel/internal/pkg/tasks"
	"pix-funnel/internal/usecase/commands"
	commandsmock "pix-funnel/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seedPending(t *testing.T, store *memstore.Store, orderRef string) {
	t.Helper()
	_, err := store.Mutate(context.Background(), customer, func(*conversation.Conversation) (*conversation.Conversation, error) {
		return conversation.New(conversation.NewParams{
			Identity:       customer,
			OrderReference: orderRef,
			Product:        "FAB",
			Status:         conversation.StatusPixPending,
		}, start)
	})
	require.NoError(t, err)
}

func TestWatchdog_Fire(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	testCases := []struct {
		name       string
		prepare    func(t *testing.T, store *memstore.Store)
		orderRef   string
		wantStatus conversation.Status
		wantSend   bool
	}{
		{
			name:       "pending order expires",
			prepare:    func(t *testing.T, store *memstore.Store) { seedPending(t, store, "ORD1") },
			orderRef:   "ORD1",
			wantStatus: conversation.StatusTimeout,
			wantSend:   true,
		},
		{
			name: "approved order is left alone",
			prepare: func(t *testing.T, store *memstore.Store) {
				seedPending(t, store, "ORD1")
				_, err := store.Mutate(context.Background(), customer, func(cur *conversation.Conversation) (*conversation.Conversation, error) {
					return cur, cur.MarkApproved(conversation.PaymentDetails{}, start)
				})
				require.NoError(t, err)
			},
			orderRef:   "ORD1",
			wantStatus: conversation.StatusApproved,
		},
		{
			name:       "timer for a replaced order",
			prepare:    func(t *testing.T, store *memstore.Store) { seedPending(t, store, "ORD2") },
			orderRef:   "ORD1",
			wantStatus: conversation.StatusPixPending,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dispatcher := commandsmock.NewMockDispatcher(ctrl)
			clk := clock.NewMockClock(start)
			store := memstore.NewStore(keymutex.New(), memstore.NopReplicator(), logger)
			group := tasks.NewGroup(logger)
			watchdog := commands.NewWatchdog(clk, store, dispatcher, group, logger)

			tc.prepare(t, store)

			if tc.wantSend {
				dispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e event.Event) bool {
					assert.Equal(t, event.KindPixTimeout, e.Kind)
					assert.Equal(t, tc.orderRef, e.OrderReference)
					assert.Equal(t, "FAB", e.Product)
					return true
				}).Times(1)
			}

			watchdog.Schedule(tc.orderRef, customer, time.Minute)
			clk.Add(time.Minute)
			group.Wait()

			snap, ok := store.Get(customer)
			require.True(t, ok)
			assert.Equal(t, tc.wantStatus, snap.Status)
		})
	}
}

func TestWatchdog_CancelledBeforeDeadline(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctrl := gomock.NewController(t)
	dispatcher := commandsmock.NewMockDispatcher(ctrl)
	clk := clock.NewMockClock(start)
	store := memstore.NewStore(keymutex.New(), memstore.NopReplicator(), logger)
	watchdog := commands.NewWatchdog(clk, store, dispatcher, tasks.NewGroup(logger), logger)
	seedPending(t, store, "ORD1")

	h := watchdog.Schedule("ORD1", customer, time.Minute)
	h.Cancel()
	h.Cancel()
	clk.Add(time.Hour)

	snap, _ := store.Get(customer)
	assert.Equal(t, conversation.StatusPixPending, snap.Status)
	assert.Equal(t, 0, clk.PendingTimers())
}

func TestWatchdog_NegativeDelayFiresImmediately(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctrl := gomock.NewController(t)
	dispatcher := commandsmock.NewMockDispatcher(ctrl)
	dispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).Return(true).Times(1)

	clk := clock.NewMockClock(start)
	store := memstore.NewStore(keymutex.New(), memstore.NopReplicator(), logger)
	group := tasks.NewGroup(logger)
	watchdog := commands.NewWatchdog(clk, store, dispatcher, group, logger)
	seedPending(t, store, "ORD1")

	watchdog.Schedule("ORD1", customer, -time.Minute)
	clk.Add(0)
	group.Wait()

	snap, _ := store.Get(customer)
	assert.Equal(t, conversation.StatusTimeout, snap.Status)
}
