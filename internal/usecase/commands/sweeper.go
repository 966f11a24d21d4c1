package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/pkg/clock"
)

type SweepStore interface {
	List() []conversation.Snapshot
	TryEvictIf(ctx context.Context, key identity.Key, pred func(*conversation.Conversation) bool) (evicted, busy bool)
}

type SweepPolicy struct {
	Interval        time.Duration
	RetentionWindow time.Duration
	TerminalGrace   time.Duration
}

type SweepResult struct {
	Scanned int
	Evicted int
	Busy    int
}

// Sweeper evicts idle and finished conversations. Each eviction is decided
// again under the identity lock; identities busy at sweep time wait for the
// next round.
type Sweeper struct {
	store   SweepStore
	clock   clock.Clock
	policy  SweepPolicy
	onEvict func(identity.Key)
	slogger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(store SweepStore, clk clock.Clock, policy SweepPolicy, onEvict func(identity.Key), slogger *slog.Logger) *Sweeper {
	return &Sweeper{
		store:   store,
		clock:   clk,
		policy:  policy,
		onEvict: onEvict,
		slogger: slogger,
	}
}

func (s *Sweeper) expired(status conversation.Status, lastActivity, now time.Time) bool {
	idle := now.Sub(lastActivity)
	if s.policy.RetentionWindow > 0 && idle > s.policy.RetentionWindow {
		return true
	}
	return status.IsTerminal() && s.policy.TerminalGrace > 0 && idle > s.policy.TerminalGrace
}

func (s *Sweeper) Sweep(ctx context.Context) SweepResult {
	now := s.clock.Now()
	var res SweepResult

	for _, snap := range s.store.List() {
		res.Scanned++
		if !s.expired(snap.Status, snap.LastActivityAt, now) {
			continue
		}
		evicted, busy := s.store.TryEvictIf(ctx, snap.Identity, func(c *conversation.Conversation) bool {
			return s.expired(c.Status(), c.LastActivityAt(), now)
		})
		if busy {
			res.Busy++
			continue
		}
		if evicted {
			res.Evicted++
			if s.onEvict != nil {
				s.onEvict(snap.Identity)
			}
		}
	}

	if res.Evicted > 0 || res.Busy > 0 {
		s.slogger.Info("retention sweep",
			slog.Int("scanned", res.Scanned),
			slog.Int("evicted", res.Evicted),
			slog.Int("busy", res.Busy))
	}
	return res
}

// Start runs Sweep every policy.Interval until Stop.
func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil || s.policy.Interval <= 0 {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.policy.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()
}

func (s *Sweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
