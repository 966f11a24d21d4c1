package repository

import (
	"context"
	"log/slog"

	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/infra"
	sqlc "pix-funnel/internal/infra/sqlc/generated"
	"pix-funnel/internal/pkg/pgconv"
	"pix-funnel/internal/usecase/shared"
)

type AffinityQueries interface {
	FindAffinity(ctx context.Context, db sqlc.DBTX, identity string) (string, error)
	InsertAffinity(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAffinityParams) (int64, error)
}

// TxRunner runs fn inside one transaction.
type TxRunner interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx sqlc.DBTX) error) error
}

type AffinityRepository struct {
	queries AffinityQueries
	db      sqlc.DBTX
	tx      TxRunner
	slogger *slog.Logger
}

var _ shared.AffinityRepository = (*AffinityRepository)(nil)

func NewAffinityRepository(queries AffinityQueries, db sqlc.DBTX, tx TxRunner, slogger *slog.Logger) *AffinityRepository {
	return &AffinityRepository{queries: queries, db: db, tx: tx, slogger: slogger}
}

func (r *AffinityRepository) Find(ctx context.Context, key identity.Key) (string, error) {
	instance, err := r.queries.FindAffinity(ctx, r.db, key.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.NewNotFound("affinity not found")
		}
		return "", infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to find affinity", err)
	}
	return instance, nil
}

// Remember inserts the binding unless another replica won the race, in which
// case the existing instance is returned.
func (r *AffinityRepository) Remember(ctx context.Context, key identity.Key, instance string) (string, error) {
	winner := instance
	err := r.tx.Within(ctx, func(ctx context.Context, tx sqlc.DBTX) error {
		inserted, err := r.queries.InsertAffinity(ctx, tx, sqlc.InsertAffinityParams{
			Identity: key.String(),
			Instance: instance,
		})
		if err != nil {
			return err
		}
		if inserted > 0 {
			return nil
		}
		existing, err := r.queries.FindAffinity(ctx, tx, key.String())
		if err != nil {
			return err
		}
		winner = existing
		return nil
	})
	if err != nil {
		return "", infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to remember affinity", err)
	}
	return winner, nil
}
