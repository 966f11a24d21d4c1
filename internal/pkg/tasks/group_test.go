//go:build unit

package tasks_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"pix-funnel/internal/pkg/tasks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGroup() *tasks.Group {
	return tasks.NewGroup(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGroup_ShutdownDrains(t *testing.T) {
	g := newGroup()
	var done atomic.Int32
	for i := 0; i < 10; i++ {
		g.Go("work", func(context.Context) {
			time.Sleep(time.Millisecond)
			done.Add(1)
		})
	}

	require.NoError(t, g.Shutdown(context.Background()))
	assert.Equal(t, int32(10), done.Load())
	assert.False(t, g.Go("late", func(context.Context) {}))
}

func TestGroup_ShutdownDeadlineCancelsTasks(t *testing.T) {
	g := newGroup()
	g.Go("blocked", func(ctx context.Context) {
		<-ctx.Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := g.Shutdown(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGroup_RecoversPanics(t *testing.T) {
	g := newGroup()
	g.Go("panics", func(context.Context) { panic("boom") })
	g.Wait()
}
