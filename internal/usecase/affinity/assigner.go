// Package affinity binds each identity to one worker instance for the
// lifetime of its funnel.
package affinity

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/infra"
	"pix-funnel/internal/usecase/shared"
)

type ConversationLookup interface {
	Get(key identity.Key) (conversation.Snapshot, bool)
}

type Assigner struct {
	store    ConversationLookup
	repo     shared.AffinityRepository
	pool     []string
	fallback string
	counter  atomic.Uint64
	slogger  *slog.Logger

	mu    sync.RWMutex
	cache map[identity.Key]string
}

func NewAssigner(store ConversationLookup, repo shared.AffinityRepository, pool []string, fallback string, slogger *slog.Logger) *Assigner {
	if fallback == "" && len(pool) > 0 {
		fallback = pool[0]
	}
	return &Assigner{
		store:    store,
		repo:     repo,
		pool:     append([]string(nil), pool...),
		fallback: fallback,
		slogger:  slogger,
		cache:    make(map[identity.Key]string),
	}
}

// Assign never fails; any internal problem degrades to the default instance.
func (a *Assigner) Assign(ctx context.Context, key identity.Key) string {
	if key.IsZero() {
		return a.fallback
	}

	if snap, ok := a.store.Get(key); ok && snap.AssignedInstance != "" {
		return a.remember(key, snap.AssignedInstance)
	}

	a.mu.RLock()
	cached, ok := a.cache[key]
	a.mu.RUnlock()
	if ok {
		return cached
	}

	if a.repo != nil {
		instance, err := a.repo.Find(ctx, key)
		switch {
		case err == nil && instance != "":
			return a.remember(key, instance)
		case err != nil && !infra.IsNotFound(err):
			a.slogger.Warn("affinity lookup failed, assigning fresh",
				slog.String("identity", key.String()),
				slog.Any("error", err))
		}
	}

	candidate := a.next()
	if a.repo != nil {
		winner, err := a.repo.Remember(ctx, key, candidate)
		if err != nil {
			a.slogger.Warn("failed to persist affinity",
				slog.String("identity", key.String()),
				slog.String("instance", candidate),
				slog.Any("error", err))
		} else if winner != "" {
			candidate = winner
		}
	}
	return a.remember(key, candidate)
}

func (a *Assigner) next() string {
	if len(a.pool) == 0 {
		return a.fallback
	}
	n := a.counter.Add(1) - 1
	return a.pool[n%uint64(len(a.pool))]
}

// remember caches instance unless another caller bound key first.
func (a *Assigner) remember(key identity.Key, instance string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if existing, ok := a.cache[key]; ok {
		return existing
	}
	a.cache[key] = instance
	return instance
}

// Forget drops the cached binding, used when a conversation is evicted.
func (a *Assigner) Forget(key identity.Key) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.cache, key)
}
