// Package automation delivers funnel events to the automation webhook.
package automation

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"
	"time"

	"pix-funnel/internal/domain/event"
	"pix-funnel/internal/pkg/clock"
	"pix-funnel/internal/usecase/shared"

	"github.com/google/uuid"
)

const journalTimeout = 3 * time.Second

type Stats struct {
	Succeeded int64
	Failed    int64
}

type Dispatcher struct {
	transport   Transport
	journal     shared.DispatchJournal
	clock       clock.Clock
	loc         *time.Location
	maxAttempts int
	baseDelay   time.Duration
	wait        func(ctx context.Context, d time.Duration) error
	slogger     *slog.Logger

	succeeded atomic.Int64
	failed    atomic.Int64
}

type DispatcherParams struct {
	Transport   Transport
	Journal     shared.DispatchJournal
	Clock       clock.Clock
	Location    *time.Location
	MaxAttempts int
	BaseDelay   time.Duration
	Logger      *slog.Logger
}

func NewDispatcher(p DispatcherParams) *Dispatcher {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Dispatcher{
		transport:   p.Transport,
		journal:     p.Journal,
		clock:       p.Clock,
		loc:         p.Location,
		maxAttempts: maxAttempts,
		baseDelay:   p.BaseDelay,
		wait:        sleepCtx,
		slogger:     p.Logger,
	}
}

// WithWaiter replaces the backoff sleep. Used by tests to observe delays.
func (d *Dispatcher) WithWaiter(wait func(ctx context.Context, d time.Duration) error) *Dispatcher {
	d.wait = wait
	return d
}

// Send delivers e with up to maxAttempts tries. The first try is immediate.
// After failed attempt k it waits k*baseDelay, so the wait before attempt k
// is (k-1)*baseDelay: 0, base, 2*base, ...
func (d *Dispatcher) Send(ctx context.Context, e event.Event) bool {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = d.clock.Now()
	}

	body, err := json.Marshal(NewPayload(e, d.loc))
	if err != nil {
		d.failed.Add(1)
		d.slogger.Error("failed to encode automation payload", slog.Any("error", err))
		return false
	}

	attempt := 0
	var lastErr error
	for attempt < d.maxAttempts {
		attempt++
		lastErr = d.transport.Deliver(ctx, body)
		if lastErr == nil {
			break
		}

		d.slogger.Warn("automation delivery failed",
			slog.String("event", string(e.Kind)),
			slog.String("identity", e.Identity.String()),
			slog.Int("attempt", attempt),
			slog.Any("error", lastErr))

		if attempt == d.maxAttempts {
			break
		}
		if werr := d.wait(ctx, time.Duration(attempt)*d.baseDelay); werr != nil {
			lastErr = werr
			break
		}
	}

	ok := lastErr == nil
	if ok {
		d.succeeded.Add(1)
	} else {
		d.failed.Add(1)
		d.slogger.Error("automation delivery gave up",
			slog.String("event", string(e.Kind)),
			slog.String("identity", e.Identity.String()),
			slog.String("order_reference", e.OrderReference),
			slog.Int("attempts", attempt))
	}

	d.record(ctx, e, body, attempt, lastErr)
	return ok
}

func (d *Dispatcher) Stats() Stats {
	return Stats{Succeeded: d.succeeded.Load(), Failed: d.failed.Load()}
}

func (d *Dispatcher) record(ctx context.Context, e event.Event, body []byte, attempts int, lastErr error) {
	if d.journal == nil {
		return
	}
	entry := shared.DispatchEntry{
		ID:             e.ID,
		Kind:           string(e.Kind),
		Identity:       e.Identity,
		OrderReference: e.OrderReference,
		Payload:        body,
		Attempts:       attempts,
		Status:         shared.DispatchDelivered,
		CreatedAt:      d.clock.Now(),
	}
	if lastErr != nil {
		entry.Status = shared.DispatchFailed
		entry.LastError = lastErr.Error()
	}

	jctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalTimeout)
	defer cancel()
	if err := d.journal.Append(jctx, entry); err != nil {
		d.slogger.Warn("failed to journal dispatch", slog.String("event_id", e.ID.String()), slog.Any("error", err))
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
