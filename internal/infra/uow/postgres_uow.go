package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"pix-funnel/internal/infra"
	sqlc "pix-funnel/internal/infra/sqlc/generated"
	"pix-funnel/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	slogger    *slog.Logger
	maxRetries int
	base       time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, slogger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:       pool,
		slogger:    slogger,
		maxRetries: 3,
		base:       50 * time.Millisecond,
	}
}

// DB is used for single statements that need no transaction.
func (u *PostgresUoW) DB() sqlc.DBTX {
	return u.pool
}

// Within runs fn in a READ COMMITTED transaction, retrying serialization
// failures and deadlocks with exponential backoff.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx sqlc.DBTX) error) error {
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		err := u.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return err
		}
		if attempt == u.maxRetries {
			u.slogger.Error("transaction failed after max retries",
				slog.Int("attempts", attempt+1),
				slog.String("error", err.Error()))
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := calculateBackoff(attempt, u.base)
		u.slogger.Warn("retrying transaction due to retryable error",
			slog.Int("attempt", attempt+1),
			slog.Int64("wait_ms", wait.Milliseconds()),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return errMaxRetriesExceeded
}

// runOnce keeps the rollback defer scoped to a single attempt.
func (u *PostgresUoW) runOnce(ctx context.Context, fn func(ctx context.Context, tx sqlc.DBTX) error) error {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			u.slogger.Warn("rollback failed", slog.String("error", rbErr.Error()))
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	wait := time.Duration(1<<attempt) * base
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter))
	}
	return wait
}

func isRetryableError(err error) bool {
	return infra.PgKind(err) == infra.KindConflict
}
