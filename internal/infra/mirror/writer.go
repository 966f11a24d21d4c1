// Package mirror replicates committed conversation changes to the durable
// store on a single background writer.
package mirror

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/usecase/shared"
)

const writeTimeout = 5 * time.Second

type opKind int

const (
	opSave opKind = iota
	opDelete
)

type op struct {
	kind opKind
	snap conversation.Snapshot
	key  identity.Key
}

// Writer is a memstore.Replicator. Writes are applied in enqueue order; a full
// queue drops the write, which the next mutation of that identity overwrites.
type Writer struct {
	target  shared.ConversationMirror
	slogger *slog.Logger

	mu      sync.RWMutex
	closed  bool
	queue   chan op
	done    chan struct{}
	started atomic.Bool

	dropped atomic.Int64
	failed  atomic.Int64
}

func NewWriter(target shared.ConversationMirror, queueSize int, slogger *slog.Logger) *Writer {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Writer{
		target:  target,
		slogger: slogger,
		queue:   make(chan op, queueSize),
		done:    make(chan struct{}),
	}
}

func (w *Writer) Start() {
	if !w.started.CompareAndSwap(false, true) {
		return
	}
	go w.run()
}

func (w *Writer) Save(s conversation.Snapshot) {
	w.enqueue(op{kind: opSave, snap: s, key: s.Identity})
}

func (w *Writer) Delete(key identity.Key) {
	w.enqueue(op{kind: opDelete, key: key})
}

func (w *Writer) enqueue(o op) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return
	}
	select {
	case w.queue <- o:
	default:
		w.dropped.Add(1)
		w.slogger.Warn("mirror queue full, dropping write",
			slog.String("identity", o.key.String()))
	}
}

// Stop closes the queue and waits until pending writes are flushed or ctx ends.
func (w *Writer) Stop(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.queue)
	}
	w.mu.Unlock()

	if !w.started.Load() {
		return nil
	}
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Writer) Dropped() int64 { return w.dropped.Load() }
func (w *Writer) Failed() int64  { return w.failed.Load() }

func (w *Writer) run() {
	defer close(w.done)
	for o := range w.queue {
		w.apply(o)
	}
}

func (w *Writer) apply(o op) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	var err error
	switch o.kind {
	case opSave:
		err = w.target.Save(ctx, o.snap)
	case opDelete:
		err = w.target.Delete(ctx, o.key)
	}
	if err != nil {
		w.failed.Add(1)
		w.slogger.Error("mirror write failed",
			slog.String("identity", o.key.String()),
			slog.Any("error", err))
	}
}
