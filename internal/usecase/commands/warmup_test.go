//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/infra/memstore"
	"pix-funnel/internal/pkg/clock"
	"pix-funnel/internal/pkg/keymutex"
	"pix-funnel/internal/pkg/tasks"
	"pix-funnel/internal/usecase/commands"
	sharedmock "pix-funnel/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWarmer_Warm(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	durable := memstore.NewDurable()
	ctx := context.Background()

	// A previous process left three conversations behind.
	mirrored := []conversation.Snapshot{
		{Identity: "5511900000001", OrderReference: "ORD1", Status: conversation.StatusPixPending, CreatedAt: start, LastActivityAt: start, TimeoutAt: start.Add(15 * time.Minute), Version: 2},
		{Identity: "5511900000002", OrderReference: "ORD2", Status: conversation.StatusPixPending, CreatedAt: start, LastActivityAt: start, TimeoutAt: start.Add(-time.Minute), Version: 1},
		{Identity: "5511900000003", OrderReference: "ORD3", Status: conversation.StatusApproved, CreatedAt: start, LastActivityAt: start, ResponsesSent: 2, Version: 5},
	}
	for _, s := range mirrored {
		require.NoError(t, durable.Conversations().Save(ctx, s))
	}

	clk := clock.NewMockClock(start.Add(5 * time.Minute))
	store := memstore.NewStore(keymutex.New(), memstore.NopReplicator(), logger)
	dispatcher := &recordingDispatcher{}
	group := tasks.NewGroup(logger)
	watchdog := commands.NewWatchdog(clk, store, dispatcher, group, logger)
	warmer := commands.NewWarmer(durable.Conversations(), store, watchdog, clk, logger)

	loaded, err := warmer.Warm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded)
	assert.Equal(t, 2, clk.PendingTimers())

	snap, ok := store.Get("5511900000003")
	require.True(t, ok)
	assert.Equal(t, 2, snap.ResponsesSent)
	assert.False(t, snap.TimeoutArmed)

	// The overdue order expires as soon as the clock is consulted.
	clk.Add(0)
	group.Wait()
	snap, _ = store.Get("5511900000002")
	assert.Equal(t, conversation.StatusTimeout, snap.Status)

	snap, _ = store.Get("5511900000001")
	assert.True(t, snap.TimeoutArmed)
	assert.Equal(t, start.Add(15*time.Minute), snap.TimeoutAt)
	clk.Set(start.Add(15 * time.Minute))
	group.Wait()
	snap, _ = store.Get("5511900000001")
	assert.Equal(t, conversation.StatusTimeout, snap.Status)

	t.Run("warming twice arms nothing new", func(t *testing.T) {
		_, err := warmer.Warm(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, clk.PendingTimers())
	})
}

func TestWarmer_MirrorFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctrl := gomock.NewController(t)
	mirror := sharedmock.NewMockConversationMirror(ctrl)
	mirror.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("table missing"))

	store := memstore.NewStore(keymutex.New(), memstore.NopReplicator(), logger)
	clk := clock.NewMockClock(start)
	warmer := commands.NewWarmer(mirror, store, commands.NewWatchdog(clk, store, &recordingDispatcher{}, tasks.NewGroup(logger), logger), clk, logger)

	_, err := warmer.Warm(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, store.Len())
}
