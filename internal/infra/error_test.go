//go:build unit

package infra_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"pix-funnel/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgKind(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: infra.KindConflict},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: infra.KindConflict},
		{name: "other pg code", err: &pgconn.PgError{Code: "42P01"}, want: infra.KindDBFailure},
		{name: "not a pg error", err: errors.New("conn reset"), want: infra.KindDBFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, infra.PgKind(tc.err))
		})
	}
}

func TestWrapRepoErr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cause := errors.New("conn reset")

	err := infra.WrapRepoErr(logger, infra.KindDBFailure, "failed to save conversation", cause)

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.False(t, infra.IsNotFound(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to save conversation")

	assert.True(t, infra.IsNotFound(infra.NewNotFound("payment ORD1")))
}
