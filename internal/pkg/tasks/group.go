// Package tasks tracks fire-and-forget work so shutdown can wait for it.
package tasks

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
)

type Group struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool

	slogger *slog.Logger
}

func NewGroup(slogger *slog.Logger) *Group {
	ctx, cancel := context.WithCancel(context.Background())
	return &Group{ctx: ctx, cancel: cancel, slogger: slogger}
}

// Go runs fn on its own goroutine with the group's context. It reports false
// once the group is closing.
func (g *Group) Go(name string, fn func(ctx context.Context)) bool {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		g.slogger.Warn("task rejected during shutdown", slog.String("task", name))
		return false
	}
	g.wg.Add(1)
	g.mu.Unlock()

	go func() {
		defer g.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				g.slogger.Error("task panicked",
					slog.String("task", name),
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())))
			}
		}()
		fn(g.ctx)
	}()
	return true
}

// Wait blocks until every started task returns.
func (g *Group) Wait() {
	g.wg.Wait()
}

// Shutdown stops accepting tasks and waits for running ones. When ctx ends
// first, running tasks are cancelled and ctx's error is returned.
func (g *Group) Shutdown(ctx context.Context) error {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()

	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		g.cancel()
		return nil
	case <-ctx.Done():
		g.cancel()
		<-done
		return ctx.Err()
	}
}
