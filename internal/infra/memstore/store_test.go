//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/infra/memstore"
	"pix-funnel/internal/pkg/keymutex"
	"pix-funnel/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingReplicator struct {
	mu      sync.Mutex
	saved   []conversation.Snapshot
	deleted []identity.Key
}

func (r *recordingReplicator) Save(s conversation.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, s)
}

func (r *recordingReplicator) Delete(key identity.Key) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted = append(r.deleted, key)
}

type countingHandle struct {
	mu        sync.Mutex
	cancelled int
}

func (h *countingHandle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cancelled++
}

func newStore(t *testing.T) (*memstore.Store, *recordingReplicator) {
	t.Helper()
	rep := &recordingReplicator{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return memstore.NewStore(keymutex.New(), rep, logger), rep
}

func insert(t *testing.T, s *memstore.Store, b *builder.ConversationBuilder) conversation.Snapshot {
	t.Helper()
	snap, err := s.Mutate(context.Background(), b.Identity, func(*conversation.Conversation) (*conversation.Conversation, error) {
		return b.BuildDomain()
	})
	require.NoError(t, err)
	return snap
}

func TestStore_Mutate(t *testing.T) {
	ctx := context.Background()

	t.Run("commit replicates and bumps version", func(t *testing.T) {
		s, rep := newStore(t)
		first := insert(t, s, builder.NewConversationBuilder())
		assert.Equal(t, uint64(1), first.Version)

		second, err := s.Mutate(ctx, first.Identity, func(cur *conversation.Conversation) (*conversation.Conversation, error) {
			_, err := cur.BeginAdvance(time.Now())
			return cur, err
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), second.Version)
		assert.True(t, second.AdvancementInFlight)
		require.Len(t, rep.saved, 2)
	})

	t.Run("error discards the working copy", func(t *testing.T) {
		s, rep := newStore(t)
		first := insert(t, s, builder.NewConversationBuilder())

		_, err := s.Mutate(ctx, first.Identity, func(cur *conversation.Conversation) (*conversation.Conversation, error) {
			_, _ = cur.BeginAdvance(time.Now())
			return nil, conversation.ErrAdvanceLocked
		})
		require.ErrorIs(t, err, conversation.ErrAdvanceLocked)

		got, ok := s.Get(first.Identity)
		require.True(t, ok)
		assert.False(t, got.AdvancementInFlight)
		assert.Len(t, rep.saved, 1)
	})

	t.Run("nil result commits nothing", func(t *testing.T) {
		s, rep := newStore(t)
		snap, err := s.Mutate(ctx, "5511988887777", func(cur *conversation.Conversation) (*conversation.Conversation, error) {
			assert.Nil(t, cur)
			return nil, nil
		})
		require.NoError(t, err)
		assert.True(t, snap.Identity.IsZero())
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, rep.saved)
	})

	t.Run("foreign identity is rejected", func(t *testing.T) {
		s, _ := newStore(t)
		_, err := s.Mutate(ctx, "5511900000000", func(*conversation.Conversation) (*conversation.Conversation, error) {
			return builder.NewConversationBuilder().BuildDomain()
		})
		require.ErrorIs(t, err, memstore.ErrIdentityMismatch)
	})

	t.Run("overwrite keeps versions increasing", func(t *testing.T) {
		s, _ := newStore(t)
		b := builder.NewConversationBuilder()
		insert(t, s, b)
		insert(t, s, b)
		again := insert(t, s, b.WithOrderReference("ORD2"))
		assert.Equal(t, uint64(3), again.Version)

		_, ok := s.FindByOrder("ORD1")
		assert.False(t, ok)
		found, ok := s.FindByOrder("ORD2")
		require.True(t, ok)
		assert.Equal(t, b.Identity, found.Identity)
	})
}

func TestStore_ConcurrentMutationsAreSerialized(t *testing.T) {
	s, _ := newStore(t)
	snap := insert(t, s, builder.NewConversationBuilder())

	const workers = 50
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		advanced int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Mutate(context.Background(), snap.Identity, func(cur *conversation.Conversation) (*conversation.Conversation, error) {
				if _, err := cur.BeginAdvance(time.Now()); err != nil {
					return nil, err
				}
				return cur, nil
			})
			if err == nil {
				mu.Lock()
				advanced++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, advanced)
	got, _ := s.Get(snap.Identity)
	assert.Equal(t, 1, got.PendingStep)
	assert.Equal(t, uint64(2), got.Version)
}

func TestStore_DisarmAllWhileMutating(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	deadline := time.Now().Add(15 * time.Minute)

	keys := []identity.Key{"5511911110001", "5511911110002", "5511911110003"}
	handles := make([]*countingHandle, len(keys))
	for i, key := range keys {
		handles[i] = &countingHandle{}
		b := builder.NewConversationBuilder().WithIdentity(key).WithOrderReference("ORD-" + key.String())
		insert(t, s, b)
		_, err := s.Mutate(ctx, key, func(cur *conversation.Conversation) (*conversation.Conversation, error) {
			cur.ArmTimeout(handles[i], deadline)
			return cur, nil
		})
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for _, key := range keys {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				_, _ = s.Mutate(ctx, key, func(cur *conversation.Conversation) (*conversation.Conversation, error) {
					cur.Touch(time.Now())
					return cur, nil
				})
			}
		}()
	}
	s.DisarmAll()
	wg.Wait()

	for i, key := range keys {
		got, ok := s.Get(key)
		require.True(t, ok)
		assert.True(t, got.TimeoutAt.IsZero())
		assert.GreaterOrEqual(t, handles[i].cancelled, 1)
	}
}

func TestStore_OrderReferenceHasOneOwner(t *testing.T) {
	s, rep := newStore(t)
	h := &countingHandle{}

	first := builder.NewConversationBuilder()
	_, err := s.Mutate(context.Background(), first.Identity, func(*conversation.Conversation) (*conversation.Conversation, error) {
		c, err := first.BuildDomain()
		if err != nil {
			return nil, err
		}
		c.ArmTimeout(h, c.CreatedAt().Add(15*time.Minute))
		return c, nil
	})
	require.NoError(t, err)

	// Same order arrives for a different phone.
	insert(t, s, builder.NewConversationBuilder().WithIdentity("5521977776666"))

	_, ok := s.Get(first.Identity)
	assert.False(t, ok, "displaced identity is evicted")
	owner, ok := s.FindByOrder("ORD1")
	require.True(t, ok)
	assert.Equal(t, identity.Key("5521977776666"), owner.Identity)
	assert.Equal(t, 1, h.cancelled)
	assert.Equal(t, []identity.Key{first.Identity}, rep.deleted)
}

func TestStore_Evict(t *testing.T) {
	ctx := context.Background()

	t.Run("predicate guards eviction", func(t *testing.T) {
		s, rep := newStore(t)
		snap := insert(t, s, builder.NewConversationBuilder())

		evicted := s.EvictIf(ctx, snap.Identity, func(c *conversation.Conversation) bool {
			return c.Status() == conversation.StatusCompleted
		})
		assert.False(t, evicted)
		assert.Equal(t, 1, s.Len())

		evicted = s.EvictIf(ctx, snap.Identity, nil)
		assert.True(t, evicted)
		assert.Equal(t, 0, s.Len())
		_, ok := s.FindByOrder(snap.OrderReference)
		assert.False(t, ok)
		assert.Equal(t, []identity.Key{snap.Identity}, rep.deleted)
	})

	t.Run("busy identity is skipped", func(t *testing.T) {
		s, _ := newStore(t)
		snap := insert(t, s, builder.NewConversationBuilder())

		entered := make(chan struct{})
		release := make(chan struct{})
		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = s.Mutate(ctx, snap.Identity, func(cur *conversation.Conversation) (*conversation.Conversation, error) {
				close(entered)
				<-release
				return nil, errors.New("abort")
			})
		}()
		<-entered

		evicted, busy := s.TryEvictIf(ctx, snap.Identity, nil)
		assert.False(t, evicted)
		assert.True(t, busy)

		close(release)
		<-done

		evicted, busy = s.TryEvictIf(ctx, snap.Identity, nil)
		assert.True(t, evicted)
		assert.False(t, busy)
	})
}

func TestStore_Load(t *testing.T) {
	s, rep := newStore(t)
	live := insert(t, s, builder.NewConversationBuilder())

	stale := live
	stale.Status = conversation.StatusTimeout
	other, err := builder.NewConversationBuilder().WithIdentity("5521977776666").WithOrderReference("ORD9").BuildDomain()
	require.NoError(t, err)

	loaded := s.Load([]conversation.Snapshot{stale, other.Snapshot(), {}})
	assert.Equal(t, 1, loaded)

	got, _ := s.Get(live.Identity)
	assert.Equal(t, conversation.StatusPixPending, got.Status, "in-memory record wins")
	_, ok := s.FindByOrder("ORD9")
	assert.True(t, ok)
	assert.Len(t, rep.saved, 1, "loaded records are not replicated again")
}

func TestStore_List(t *testing.T) {
	s, _ := newStore(t)
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	insert(t, s, builder.NewConversationBuilder().WithIdentity("5521977776666").WithOrderReference("B").WithCreatedAt(base.Add(time.Minute)))
	insert(t, s, builder.NewConversationBuilder().WithOrderReference("A").WithCreatedAt(base))

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].OrderReference)
	assert.Equal(t, "B", list[1].OrderReference)
}
