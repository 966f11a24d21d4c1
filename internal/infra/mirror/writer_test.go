//go:build unit

package mirror_test

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
	"pix-funnel/internal/infra/mirror"
	"pix-funnel/tests/common/builder"
	sharedmock "pix-funnel/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWriter_AppliesInOrderAndFlushesOnStop(t *testing.T) {
	durable := memstore.NewDurable()
	w := mirror.NewWriter(durable.Conversations(), 16, discardLogger())
	w.Start()

	c := builder.NewConversationBuilder().MustBuild()
	c.CommitVersion(0)
	w.Save(c.Snapshot())
	c.Touch(c.CreatedAt().Add(time.Minute))
	c.CommitVersion(0)
	w.Save(c.Snapshot())
	w.Delete("5521977776666")

	require.NoError(t, w.Stop(context.Background()))

	list, err := durable.Conversations().ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, uint64(2), list[0].Version)

	// Writes after Stop are ignored.
	w.Save(c.Snapshot())
	assert.Equal(t, int64(0), w.Dropped())
}

func TestWriter_DropsWhenFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := sharedmock.NewMockConversationMirror(ctrl)

	block := make(chan struct{})
	var once sync.Once
	started := make(chan struct{})
	target.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, conversation.Snapshot) error {
		once.Do(func() { close(started) })
		<-block
		return nil
	}).Times(2)

	w := mirror.NewWriter(target, 1, discardLogger())
	w.Start()

	snap := builder.NewConversationBuilder().MustBuild().Snapshot()
	w.Save(snap) // taken by the worker
	<-started
	w.Save(snap) // fills the queue
	w.Save(snap) // dropped

	assert.Equal(t, int64(1), w.Dropped())
	close(block)
	require.NoError(t, w.Stop(context.Background()))
}

func TestWriter_CountsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := sharedmock.NewMockConversationMirror(ctrl)
	target.EXPECT().Delete(gomock.Any(), identity.Key("5511988887777")).Return(errors.New("connection refused"))

	w := mirror.NewWriter(target, 4, discardLogger())
	w.Start()
	w.Delete("5511988887777")
	require.NoError(t, w.Stop(context.Background()))

	assert.Equal(t, int64(1), w.Failed())
}
