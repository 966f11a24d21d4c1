package infra

import (
	"context"
	"errors"
	"log/slog"

	"pix-funnel/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
	// KindConflict is a transient write conflict; the statement may be retried.
	KindConflict RepositoryErrorKind = "CONFLICT"
)

const (
	pgCodeUniqueViolation      = "23505"
	pgCodeSerializationFailure = "40001"
	pgCodeDeadlockDetected     = "40P01"
)

// RepositoryError is what every durable driver returns, whichever backend
// produced the underlying failure.
type RepositoryError struct {
	Kind RepositoryErrorKind
	op   string
	err  error
}

func (e RepositoryError) Error() string {
	if e.err == nil {
		return e.op + " (" + string(e.Kind) + ")"
	}
	return e.op + " (" + string(e.Kind) + "): " + e.err.Error()
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs and wraps a driver failure. Duplicate keys are expected
// on idempotent writes and only logged at warn.
func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, op string, err error) error {
	level := slog.LevelError
	if kind == KindDuplicateKey {
		level = slog.LevelWarn
	}
	attrs := []any{slog.String("kind", string(kind))}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		err = errs.Wrap(err, op)
	}
	if slogger == nil {
		slogger = slog.Default()
	}
	slogger.Log(context.Background(), level, "Repository error: "+op, attrs...)

	return RepositoryError{Kind: kind, op: op, err: err}
}

// NewNotFound is not logged: a miss is an expected outcome for lookups.
func NewNotFound(op string) error {
	return RepositoryError{Kind: KindNotFound, op: op}
}

// PgKind maps a Postgres error code onto a repository error kind.
func PgKind(err error) RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure
	}
	switch pgErr.Code {
	case pgCodeUniqueViolation:
		return KindDuplicateKey
	case pgCodeSerializationFailure, pgCodeDeadlockDetected:
		return KindConflict
	default:
		return KindDBFailure
	}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}
