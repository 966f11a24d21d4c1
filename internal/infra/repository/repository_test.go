//go:build unit

package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pix-funnel/internal/domain/contact"
	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/infra"
	sqlc "pix-funnel/internal/infra/sqlc/generated"
	"pix-funnel/internal/pkg/pgconv"
	"pix-funnel/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	testTime   = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
)

// MockQueries stands in for *sqlc.Queries and for the DBTX handed to it.
type MockQueries struct {
	mock.Mock
}

func (m *MockQueries) UpsertConversation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertConversationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) DeleteConversation(ctx context.Context, db sqlc.DBTX, identity string) error {
	return m.Called(ctx, db, identity).Error(0)
}

func (m *MockQueries) ListConversations(ctx context.Context, db sqlc.DBTX) ([]sqlc.Conversations, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Conversations), args.Error(1)
}

func (m *MockQueries) FindAffinity(ctx context.Context, db sqlc.DBTX, identity string) (string, error) {
	args := m.Called(ctx, db, identity)
	return args.String(0), args.Error(1)
}

func (m *MockQueries) InsertAffinity(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAffinityParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) InsertContact(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertContactParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) ListContactsByDay(ctx context.Context, db sqlc.DBTX, arg sqlc.ListContactsByDayParams) ([]sqlc.Contacts, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Contacts), args.Error(1)
}

func (m *MockQueries) CountContactsByInstance(ctx context.Context, db sqlc.DBTX, arg sqlc.CountContactsByInstanceParams) ([]sqlc.CountContactsByInstanceRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.CountContactsByInstanceRow), args.Error(1)
}

func (m *MockQueries) UpsertPaymentEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPaymentEventParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockQueries) GetPaymentEvent(ctx context.Context, db sqlc.DBTX, orderReference string) (sqlc.PaymentEvents, error) {
	args := m.Called(ctx, db, orderReference)
	return args.Get(0).(sqlc.PaymentEvents), args.Error(1)
}

func (m *MockQueries) InsertDispatchLog(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertDispatchLogParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	return m.Called(ctx, query, args).Get(0).(pgx.Row)
}

// directTx runs fn against the same DBTX without a real transaction.
type directTx struct{ db sqlc.DBTX }

func (d directTx) Within(ctx context.Context, fn func(ctx context.Context, tx sqlc.DBTX) error) error {
	return fn(ctx, d.db)
}

func TestConversationRepository_Save(t *testing.T) {
	q := new(MockQueries)
	repo := NewConversationRepository(q, q, testLogger)

	snap := conversation.Snapshot{
		Identity:             "5511988887777",
		OrderReference:       "ORD1",
		Product:              "FAB",
		Status:               conversation.StatusPixPending,
		AssignedInstance:     "instance-1",
		Amount:               9700,
		ResponsesSent:        1,
		AwaitingConfirmation: true,
		PendingStep:          2,
		CreatedAt:            testTime,
		LastActivityAt:       testTime.Add(time.Minute),
		Version:              4,
	}

	q.On("UpsertConversation", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.UpsertConversationParams) bool {
		return arg.Identity == "5511988887777" &&
			arg.Status == "pix_pending" &&
			arg.AmountCents == 9700 &&
			arg.PendingStep == 2 &&
			arg.Version == 4 &&
			!arg.TimeoutAt.Valid
	})).Return(int64(0), nil)

	require.NoError(t, repo.Save(context.Background(), snap), "a stale write affecting no rows is not an error")
	q.AssertExpectations(t)
}

func TestConversationRepository_ListActive(t *testing.T) {
	q := new(MockQueries)
	repo := NewConversationRepository(q, q, testLogger)

	q.On("ListConversations", mock.Anything, mock.Anything).Return([]sqlc.Conversations{
		{
			Identity:       "5511988887777",
			OrderReference: "ORD1",
			Product:        "FAB",
			Status:         "pix_pending",
			AmountCents:    9700,
			PendingStep:    1,
			TimeoutAt:      pgconv.TimeToPgtype(testTime.Add(15 * time.Minute)),
			Version:        3,
			CreatedAt:      pgconv.TimeToPgtype(testTime),
			LastActivityAt: pgconv.TimeToPgtype(testTime),
		},
		{Identity: "5511900000000", Status: "legacy_status"},
	}, nil)

	got, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, identity.Key("5511988887777"), got[0].Identity)
	assert.Equal(t, conversation.StatusPixPending, got[0].Status)
	assert.Equal(t, conversation.Money(9700), got[0].Amount)
	assert.Equal(t, testTime.Add(15*time.Minute), got[0].TimeoutAt)
	assert.Equal(t, uint64(3), got[0].Version)
	assert.False(t, got[0].TimeoutArmed)
}

func TestAffinityRepository(t *testing.T) {
	t.Run("find miss is not found", func(t *testing.T) {
		q := new(MockQueries)
		repo := NewAffinityRepository(q, q, directTx{q}, testLogger)
		q.On("FindAffinity", mock.Anything, mock.Anything, "5511988887777").Return("", pgx.ErrNoRows)

		_, err := repo.Find(context.Background(), "5511988887777")
		assert.True(t, infra.IsNotFound(err))
	})

	t.Run("find failure is a db failure", func(t *testing.T) {
		q := new(MockQueries)
		repo := NewAffinityRepository(q, q, directTx{q}, testLogger)
		q.On("FindAffinity", mock.Anything, mock.Anything, "5511988887777").Return("", assert.AnError)

		_, err := repo.Find(context.Background(), "5511988887777")
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("remember inserts", func(t *testing.T) {
		q := new(MockQueries)
		repo := NewAffinityRepository(q, q, directTx{q}, testLogger)
		q.On("InsertAffinity", mock.Anything, mock.Anything, sqlc.InsertAffinityParams{Identity: "5511988887777", Instance: "instance-2"}).Return(int64(1), nil)

		got, err := repo.Remember(context.Background(), "5511988887777", "instance-2")
		require.NoError(t, err)
		assert.Equal(t, "instance-2", got)
		q.AssertNotCalled(t, "FindAffinity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("remember loses the race", func(t *testing.T) {
		q := new(MockQueries)
		repo := NewAffinityRepository(q, q, directTx{q}, testLogger)
		q.On("InsertAffinity", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)
		q.On("FindAffinity", mock.Anything, mock.Anything, "5511988887777").Return("instance-1", nil)

		got, err := repo.Remember(context.Background(), "5511988887777", "instance-2")
		require.NoError(t, err)
		assert.Equal(t, "instance-1", got)
	})
}

func TestContactRepository(t *testing.T) {
	c, err := contact.New(contact.NewParams{Identity: "5511988887777", Instance: "instance-1"}, testTime, time.UTC)
	require.NoError(t, err)

	t.Run("insert reports duplicates as false", func(t *testing.T) {
		q := new(MockQueries)
		repo := NewContactRepository(q, q, testLogger)
		q.On("InsertContact", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.InsertContactParams) bool {
			return arg.ID == c.ID() && arg.Day.Time.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
		})).Return(int64(0), nil)

		saved, err := repo.TryInsert(context.Background(), c)
		require.NoError(t, err)
		assert.False(t, saved)
	})

	t.Run("list maps rows", func(t *testing.T) {
		q := new(MockQueries)
		repo := NewContactRepository(q, q, testLogger)
		id := uuid.New()
		q.On("ListContactsByDay", mock.Anything, mock.Anything, mock.Anything).Return([]sqlc.Contacts{
			{ID: id, Identity: "5511988887777", Day: pgtype.Date{Time: testTime, Valid: true}, Instance: "instance-1", SavedAt: pgconv.TimeToPgtype(testTime)},
		}, nil)

		got, err := repo.List(context.Background(), "2025-03-01", "2025-03-31")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, id, got[0].ID())
		assert.Equal(t, "2025-03-10", got[0].Day())
	})

	t.Run("invalid day never reaches the database", func(t *testing.T) {
		q := new(MockQueries)
		repo := NewContactRepository(q, q, testLogger)

		_, err := repo.CountByInstance(context.Background(), "march", "2025-03-31")
		assert.ErrorIs(t, err, pgconv.ErrInvalidDay)
		q.AssertNotCalled(t, "CountContactsByInstance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("count by instance", func(t *testing.T) {
		q := new(MockQueries)
		repo := NewContactRepository(q, q, testLogger)
		q.On("CountContactsByInstance", mock.Anything, mock.Anything, mock.Anything).Return([]sqlc.CountContactsByInstanceRow{
			{Instance: "instance-1", Total: 3},
			{Instance: "instance-2", Total: 1},
		}, nil)

		got, err := repo.CountByInstance(context.Background(), "2025-03-01", "2025-03-31")
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"instance-1": 3, "instance-2": 1}, got)
	})
}

func TestPaymentRepository_Latest(t *testing.T) {
	q := new(MockQueries)
	repo := NewPaymentRepository(q, q, testLogger)
	q.On("GetPaymentEvent", mock.Anything, mock.Anything, "ORD1").Return(sqlc.PaymentEvents{
		OrderReference: "ORD1", Status: "paid", Identity: "5511988887777", ReceivedAt: pgconv.TimeToPgtype(testTime),
	}, nil)
	q.On("GetPaymentEvent", mock.Anything, mock.Anything, "NOPE").Return(sqlc.PaymentEvents{}, pgx.ErrNoRows)

	got, err := repo.Latest(context.Background(), "ORD1")
	require.NoError(t, err)
	assert.Equal(t, &shared.PaymentEntry{OrderReference: "ORD1", Status: shared.PaymentPaid, Identity: "5511988887777", ReceivedAt: testTime}, got)

	_, err = repo.Latest(context.Background(), "NOPE")
	assert.True(t, infra.IsNotFound(err))
}

func TestDispatchRepository_Append(t *testing.T) {
	tests := []struct {
		name     string
		dbErr    error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "duplicate id", dbErr: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "database error", dbErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockQueries)
			repo := NewDispatchRepository(q, q, testLogger)
			q.On("InsertDispatchLog", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.InsertDispatchLogParams) bool {
				return arg.Kind == "approved_sale" && arg.Status == "failed" && arg.LastError.String == "HTTP 502"
			})).Return(tt.dbErr)

			err := repo.Append(context.Background(), shared.DispatchEntry{
				ID:        uuid.New(),
				Kind:      "approved_sale",
				Identity:  "5511988887777",
				Payload:   []byte(`{}`),
				Attempts:  3,
				Status:    shared.DispatchFailed,
				LastError: "HTTP 502",
				CreatedAt: testTime,
			})

			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tt.wantKind))
		})
	}
}
