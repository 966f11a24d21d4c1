//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/infra/memstore"
	"pix-funnel/internal/pkg/clock"
	"pix-funnel/internal/pkg/keymutex"
	"pix-funnel/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, store *memstore.Store, key identity.Key, status conversation.Status, at time.Time) {
	t.Helper()
	_, err := store.Mutate(context.Background(), key, func(*conversation.Conversation) (*conversation.Conversation, error) {
		return conversation.New(conversation.NewParams{
			Identity:       key,
			OrderReference: "ORD-" + key.String(),
			Status:         status,
		}, at)
	})
	require.NoError(t, err)
}

func TestSweeper_Sweep(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	policy := commands.SweepPolicy{RetentionWindow: 48 * time.Hour, TerminalGrace: time.Hour}

	locks := keymutex.New()
	store := memstore.NewStore(locks, memstore.NopReplicator(), logger)
	clk := clock.NewMockClock(start.Add(72 * time.Hour))

	seed(t, store, "5511900000001", conversation.StatusApproved, start)                      // idle past retention
	seed(t, store, "5511900000002", conversation.StatusPixPending, start.Add(70*time.Hour)) // active
	seed(t, store, "5511900000003", conversation.StatusPixPending, start.Add(60*time.Hour)) // expired below, idle 12h
	seed(t, store, "5511900000004", conversation.StatusApproved, start.Add(71*time.Hour+30*time.Minute))
	seed(t, store, "5511900000005", conversation.StatusApproved, start) // locked during the sweep

	_, err := store.Mutate(context.Background(), "5511900000003", func(cur *conversation.Conversation) (*conversation.Conversation, error) {
		return cur, cur.Expire(cur.OrderReference(), start.Add(60*time.Hour))
	})
	require.NoError(t, err)

	var evicted []identity.Key
	sweeper := commands.NewSweeper(store, clk, policy, func(k identity.Key) { evicted = append(evicted, k) }, logger)

	unlock := locks.Lock("5511900000005")
	res := sweeper.Sweep(context.Background())
	unlock()

	assert.Equal(t, commands.SweepResult{Scanned: 5, Evicted: 2, Busy: 1}, res)
	assert.ElementsMatch(t, []identity.Key{"5511900000001", "5511900000003"}, evicted)
	assert.Equal(t, 3, store.Len())

	res = sweeper.Sweep(context.Background())
	assert.Equal(t, 1, res.Evicted, "busy identity is retried on the next round")
	assert.Equal(t, 2, store.Len())
}

func TestSweeper_RechecksUnderLock(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memstore.NewStore(keymutex.New(), memstore.NopReplicator(), logger)
	clk := clock.NewMockClock(start.Add(3 * time.Hour))
	seed(t, store, customer, conversation.StatusApproved, start)

	racing := &racingSweepStore{Store: store, touch: func() {
		_, err := store.Mutate(context.Background(), customer, func(cur *conversation.Conversation) (*conversation.Conversation, error) {
			cur.Touch(clk.Now())
			return cur, nil
		})
		require.NoError(t, err)
	}}
	sweeper := commands.NewSweeper(racing, clk, commands.SweepPolicy{RetentionWindow: time.Hour}, nil, logger)

	res := sweeper.Sweep(context.Background())
	assert.Equal(t, 0, res.Evicted)
	assert.Equal(t, 1, store.Len())
}

// racingSweepStore touches the record between the list and the eviction.
type racingSweepStore struct {
	*memstore.Store
	touch func()
}

func (s *racingSweepStore) List() []conversation.Snapshot {
	list := s.Store.List()
	s.touch()
	return list
}

func TestSweeper_StartStop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memstore.NewStore(keymutex.New(), memstore.NopReplicator(), logger)
	sweeper := commands.NewSweeper(store, clock.NewRealClock(), commands.SweepPolicy{Interval: time.Millisecond}, nil, logger)

	sweeper.Start()
	sweeper.Start()
	time.Sleep(5 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, sweeper.Stop(ctx))
	require.NoError(t, sweeper.Stop(ctx))
}
