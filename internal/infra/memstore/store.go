// Package memstore holds the authoritative in-process conversation table and
// the in-memory durable driver used by tests and local runs.
package memstore

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/pkg/errs"
	"pix-funnel/internal/pkg/keymutex"
)

var ErrIdentityMismatch = errs.New("mutation returned a conversation for another identity")

// Replicator receives every committed change. Implementations must not block.
type Replicator interface {
	Save(s conversation.Snapshot)
	Delete(key identity.Key)
}

type nopReplicator struct{}

func (nopReplicator) Save(conversation.Snapshot) {}
func (nopReplicator) Delete(identity.Key)        {}

func NopReplicator() Replicator { return nopReplicator{} }

// MutateFunc receives a private copy of the current record (nil if absent).
// Returning a non-nil conversation commits it; returning nil commits nothing.
// Any error discards the copy.
type MutateFunc = func(cur *conversation.Conversation) (*conversation.Conversation, error)

type Store struct {
	mu      sync.RWMutex
	records map[identity.Key]*conversation.Conversation
	byOrder map[string]identity.Key

	locks   *keymutex.Map
	mirror  Replicator
	slogger *slog.Logger
}

func NewStore(locks *keymutex.Map, mirror Replicator, slogger *slog.Logger) *Store {
	if mirror == nil {
		mirror = NopReplicator()
	}
	return &Store{
		records: make(map[identity.Key]*conversation.Conversation),
		byOrder: make(map[string]identity.Key),
		locks:   locks,
		mirror:  mirror,
		slogger: slogger,
	}
}

func (s *Store) Get(key identity.Key) (conversation.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.records[key]
	if !ok {
		return conversation.Snapshot{}, false
	}
	return c.Snapshot(), true
}

func (s *Store) FindByOrder(orderReference string) (conversation.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok := s.byOrder[orderReference]
	if !ok {
		return conversation.Snapshot{}, false
	}
	c, ok := s.records[key]
	if !ok {
		return conversation.Snapshot{}, false
	}
	return c.Snapshot(), true
}

// List returns all records ordered by creation time.
func (s *Store) List() []conversation.Snapshot {
	s.mu.RLock()
	out := make([]conversation.Snapshot, 0, len(s.records))
	for _, c := range s.records {
		out = append(out, c.Snapshot())
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Identity < out[j].Identity
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Mutate runs fn under the identity lock and commits its result. It returns
// the committed snapshot, or the zero snapshot when nothing was committed.
func (s *Store) Mutate(ctx context.Context, key identity.Key, fn MutateFunc) (conversation.Snapshot, error) {
	unlock := s.locks.Lock(key.String())
	snap, displaced, err := s.mutateLocked(key, fn)
	unlock()
	if err != nil {
		return conversation.Snapshot{}, err
	}

	// The displaced identity is evicted under its own lock, never while holding ours.
	if !displaced.IsZero() {
		s.EvictIf(ctx, displaced, func(c *conversation.Conversation) bool {
			return c.OrderReference() == snap.OrderReference
		})
	}
	return snap, nil
}

func (s *Store) mutateLocked(key identity.Key, fn MutateFunc) (conversation.Snapshot, identity.Key, error) {
	s.mu.RLock()
	cur, exists := s.records[key]
	s.mu.RUnlock()

	var working *conversation.Conversation
	if exists {
		working = cur.Clone()
	}

	next, err := fn(working)
	if err != nil {
		return conversation.Snapshot{}, "", err
	}
	if next == nil {
		return conversation.Snapshot{}, "", nil
	}
	if next.Identity() != key {
		return conversation.Snapshot{}, "", ErrIdentityMismatch
	}
	var prev uint64
	if exists {
		prev = cur.Version()
	}
	next.CommitVersion(prev)

	var displaced identity.Key
	s.mu.Lock()
	if exists && cur.OrderReference() != next.OrderReference() {
		if owner, ok := s.byOrder[cur.OrderReference()]; ok && owner == key {
			delete(s.byOrder, cur.OrderReference())
		}
	}
	if owner, ok := s.byOrder[next.OrderReference()]; ok && owner != key {
		displaced = owner
	}
	s.records[key] = next
	s.byOrder[next.OrderReference()] = key
	s.mu.Unlock()

	snap := next.Snapshot()
	s.mirror.Save(snap)
	return snap, displaced, nil
}

// EvictIf removes key when pred holds, cancelling its armed timeout.
func (s *Store) EvictIf(ctx context.Context, key identity.Key, pred func(*conversation.Conversation) bool) bool {
	unlock := s.locks.Lock(key.String())
	defer unlock()
	return s.evictLocked(key, pred)
}

// TryEvictIf is EvictIf that skips keys currently locked by another caller.
func (s *Store) TryEvictIf(ctx context.Context, key identity.Key, pred func(*conversation.Conversation) bool) (evicted, busy bool) {
	unlock, ok := s.locks.TryLock(key.String())
	if !ok {
		return false, true
	}
	defer unlock()
	return s.evictLocked(key, pred), false
}

func (s *Store) evictLocked(key identity.Key, pred func(*conversation.Conversation) bool) bool {
	s.mu.Lock()
	c, ok := s.records[key]
	if !ok || (pred != nil && !pred(c)) {
		s.mu.Unlock()
		return false
	}
	delete(s.records, key)
	if owner, ok := s.byOrder[c.OrderReference()]; ok && owner == key {
		delete(s.byOrder, c.OrderReference())
	}
	s.mu.Unlock()

	c.DisarmTimeout()
	s.mirror.Delete(key)
	s.slogger.Debug("conversation evicted",
		slog.String("identity", key.String()),
		slog.String("order_reference", c.OrderReference()))
	return true
}

// Load inserts records read back from the durable mirror without replicating
// them again. Existing in-memory records win.
func (s *Store) Load(snaps []conversation.Snapshot) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded := 0
	for _, snap := range snaps {
		if snap.Identity.IsZero() {
			continue
		}
		if _, ok := s.records[snap.Identity]; ok {
			continue
		}
		s.records[snap.Identity] = conversation.Reconstruct(snap)
		if _, taken := s.byOrder[snap.OrderReference]; !taken {
			s.byOrder[snap.OrderReference] = snap.Identity
		}
		loaded++
	}
	return loaded
}

// DisarmAll cancels every armed timeout. Called on shutdown. Each record is
// disarmed under its identity lock so no Mutate is cloning it meanwhile.
func (s *Store) DisarmAll() {
	s.mu.RLock()
	keys := make([]identity.Key, 0, len(s.records))
	for key := range s.records {
		keys = append(keys, key)
	}
	s.mu.RUnlock()

	for _, key := range keys {
		unlock := s.locks.Lock(key.String())
		s.mu.Lock()
		if c, ok := s.records[key]; ok {
			c.DisarmTimeout()
		}
		s.mu.Unlock()
		unlock()
	}
}
