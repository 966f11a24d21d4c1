package repository

import (
	"context"
	"log/slog"

	"pix-funnel/internal/infra"
	sqlc "pix-funnel/internal/infra/sqlc/generated"
	"pix-funnel/internal/pkg/pgconv"
	"pix-funnel/internal/usecase/shared"
)

type DispatchQueries interface {
	InsertDispatchLog(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertDispatchLogParams) error
}

type DispatchRepository struct {
	queries DispatchQueries
	db      sqlc.DBTX
	slogger *slog.Logger
}

var _ shared.DispatchJournal = (*DispatchRepository)(nil)

func NewDispatchRepository(queries DispatchQueries, db sqlc.DBTX, slogger *slog.Logger) *DispatchRepository {
	return &DispatchRepository{queries: queries, db: db, slogger: slogger}
}

func (r *DispatchRepository) Append(ctx context.Context, entry shared.DispatchEntry) error {
	err := r.queries.InsertDispatchLog(ctx, r.db, sqlc.InsertDispatchLogParams{
		ID:             entry.ID,
		Kind:           entry.Kind,
		Identity:       entry.Identity.String(),
		OrderReference: entry.OrderReference,
		Payload:        entry.Payload,
		Attempts:       int32(entry.Attempts),
		Status:         string(entry.Status),
		LastError:      pgconv.OptionalStringToPgtype(entry.LastError),
		CreatedAt:      pgconv.TimeToPgtype(entry.CreatedAt),
	})
	if err != nil {
		if infra.PgKind(err) == infra.KindDuplicateKey {
			return infra.WrapRepoErr(r.slogger, infra.KindDuplicateKey, "dispatch already journaled", err)
		}
		return infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to journal dispatch", err)
	}
	return nil
}
