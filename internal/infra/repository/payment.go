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

type PaymentQueries interface {
	UpsertPaymentEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPaymentEventParams) error
	GetPaymentEvent(ctx context.Context, db sqlc.DBTX, orderReference string) (sqlc.PaymentEvents, error)
}

// PaymentRepository keeps the latest gateway status per order.
type PaymentRepository struct {
	queries PaymentQueries
	db      sqlc.DBTX
	slogger *slog.Logger
}

var _ shared.PaymentLedger = (*PaymentRepository)(nil)

func NewPaymentRepository(queries PaymentQueries, db sqlc.DBTX, slogger *slog.Logger) *PaymentRepository {
	return &PaymentRepository{queries: queries, db: db, slogger: slogger}
}

func (r *PaymentRepository) Record(ctx context.Context, entry shared.PaymentEntry) error {
	err := r.queries.UpsertPaymentEvent(ctx, r.db, sqlc.UpsertPaymentEventParams{
		OrderReference: entry.OrderReference,
		Status:         string(entry.Status),
		Identity:       entry.Identity.String(),
		ReceivedAt:     pgconv.TimeToPgtype(entry.ReceivedAt),
	})
	if err != nil {
		return infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to record payment", err)
	}
	return nil
}

func (r *PaymentRepository) Latest(ctx context.Context, orderReference string) (*shared.PaymentEntry, error) {
	row, err := r.queries.GetPaymentEvent(ctx, r.db, orderReference)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewNotFound("payment not found")
		}
		return nil, infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to get payment", err)
	}
	return &shared.PaymentEntry{
		OrderReference: row.OrderReference,
		Status:         shared.PaymentStatus(row.Status),
		Identity:       identity.Key(row.Identity),
		ReceivedAt:     pgconv.TimeFromPgtype(row.ReceivedAt),
	}, nil
}
