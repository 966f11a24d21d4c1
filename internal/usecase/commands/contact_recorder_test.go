//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"pix-funnel/internal/domain/contact"
	"pix-funnel/internal/infra/memstore"
	"pix-funnel/internal/pkg/clock"
	"pix-funnel/internal/usecase/commands"
	sharedmock "pix-funnel/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestContactRecorder_Record(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	testCases := []struct {
		name    string
		message string
		want    bool
	}{
		{name: "regular message", message: "boa tarde, ainda dá tempo?", want: true},
		{name: "opt-out word", message: "por favor PARE de mandar", want: false},
		{name: "opt-out phrase", message: "não quero mais", want: false},
		{name: "single character", message: "k", want: false},
		{name: "opt-out as part of a word", message: "separei o dinheiro", want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			durable := memstore.NewDurable()
			clk := clock.NewMockClock(start)
			recorder := commands.NewContactRecorder(durable.Contacts(), clk, saoPaulo, slog.New(slog.NewTextHandler(io.Discard, nil)))

			saved, err := recorder.Record(context.Background(), commands.ContactInput{
				Identity: customer, Instance: "instance-1", Product: "FAB", OrderReference: "ORD1", Message: tc.message,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, saved)
		})
	}
}

func TestContactRecorder_OncePerDay(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	durable := memstore.NewDurable()
	// 23:30 in São Paulo, 02:30 UTC on the next calendar day.
	clk := clock.NewMockClock(time.Date(2025, 3, 11, 2, 30, 0, 0, time.UTC))
	recorder := commands.NewContactRecorder(durable.Contacts(), clk, saoPaulo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	in := commands.ContactInput{Identity: customer, Instance: "instance-1", Message: "olá"}

	saved, err := recorder.Record(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = recorder.Record(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, saved)

	clk.Add(time.Hour)
	saved, err = recorder.Record(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, saved, "a new business day starts at local midnight")

	list, err := durable.Contacts().List(context.Background(), "2025-03-10", "2025-03-11")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2025-03-10", list[0].Day())
	assert.Equal(t, "2025-03-11", list[1].Day())
}

func TestContactRecorder_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := sharedmock.NewMockContactRepository(ctrl)
	recorder := commands.NewContactRecorder(repo, clock.NewMockClock(start), time.UTC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	in := commands.ContactInput{Identity: customer, Instance: "instance-1", Message: "oi"}

	gomock.InOrder(
		repo.EXPECT().TryInsert(gomock.Any(), gomock.Any()).Return(false, errors.New("connection reset")),
		repo.EXPECT().TryInsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *contact.Contact) (bool, error) {
			assert.Equal(t, customer, c.Identity())
			assert.Equal(t, "2025-03-10", c.Day())
			return true, nil
		}),
	)

	_, err := recorder.Record(context.Background(), in)
	require.Error(t, err)

	saved, err := recorder.Record(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, saved, "a failed insert does not consume the day")
}

func TestContactRecorder_StoreAlreadyHasContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := sharedmock.NewMockContactRepository(ctrl)
	recorder := commands.NewContactRecorder(repo, clock.NewMockClock(start), time.UTC, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Another replica inserted first.
	repo.EXPECT().TryInsert(gomock.Any(), gomock.Any()).Return(false, nil).Times(1)

	for i := 0; i < 3; i++ {
		saved, err := recorder.Record(context.Background(), commands.ContactInput{Identity: customer, Message: "oi"})
		require.NoError(t, err)
		assert.False(t, saved)
	}
}
