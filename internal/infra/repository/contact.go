package repository

import (
	"context"
	"log/slog"

	"pix-funnel/internal/domain/contact"
	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/infra"
	sqlc "pix-funnel/internal/infra/sqlc/generated"
	"pix-funnel/internal/pkg/pgconv"
	"pix-funnel/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type ContactQueries interface {
	InsertContact(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertContactParams) (int64, error)
	ListContactsByDay(ctx context.Context, db sqlc.DBTX, arg sqlc.ListContactsByDayParams) ([]sqlc.Contacts, error)
	CountContactsByInstance(ctx context.Context, db sqlc.DBTX, arg sqlc.CountContactsByInstanceParams) ([]sqlc.CountContactsByInstanceRow, error)
}

type ContactRepository struct {
	queries ContactQueries
	db      sqlc.DBTX
	slogger *slog.Logger
}

var _ shared.ContactRepository = (*ContactRepository)(nil)

func NewContactRepository(queries ContactQueries, db sqlc.DBTX, slogger *slog.Logger) *ContactRepository {
	return &ContactRepository{queries: queries, db: db, slogger: slogger}
}

func (r *ContactRepository) TryInsert(ctx context.Context, c *contact.Contact) (bool, error) {
	day, err := pgconv.DayToPgtype(c.Day())
	if err != nil {
		return false, err
	}
	n, err := r.queries.InsertContact(ctx, r.db, sqlc.InsertContactParams{
		ID:             c.ID(),
		Identity:       c.Identity().String(),
		Day:            day,
		Instance:       c.Instance(),
		Product:        c.Product(),
		OrderReference: c.OrderReference(),
		SavedAt:        pgconv.TimeToPgtype(c.SavedAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to insert contact", err)
	}
	return n > 0, nil
}

func (r *ContactRepository) List(ctx context.Context, fromDay, toDay string) ([]*contact.Contact, error) {
	from, to, err := dayRange(fromDay, toDay)
	if err != nil {
		return nil, err
	}
	rows, err := r.queries.ListContactsByDay(ctx, r.db, sqlc.ListContactsByDayParams{FromDay: from, ToDay: to})
	if err != nil {
		return nil, infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to list contacts", err)
	}

	out := make([]*contact.Contact, 0, len(rows))
	for _, row := range rows {
		out = append(out, contact.Reconstruct(
			row.ID,
			identity.Key(row.Identity),
			pgconv.DayFromPgtype(row.Day),
			row.Instance,
			row.Product,
			row.OrderReference,
			pgconv.TimeFromPgtype(row.SavedAt),
		))
	}
	return out, nil
}

func (r *ContactRepository) CountByInstance(ctx context.Context, fromDay, toDay string) (map[string]int64, error) {
	from, to, err := dayRange(fromDay, toDay)
	if err != nil {
		return nil, err
	}
	rows, err := r.queries.CountContactsByInstance(ctx, r.db, sqlc.CountContactsByInstanceParams{FromDay: from, ToDay: to})
	if err != nil {
		return nil, infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to count contacts", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Instance] = row.Total
	}
	return counts, nil
}

func dayRange(fromDay, toDay string) (pgtype.Date, pgtype.Date, error) {
	from, err := pgconv.DayToPgtype(fromDay)
	if err != nil {
		return pgtype.Date{}, pgtype.Date{}, err
	}
	to, err := pgconv.DayToPgtype(toDay)
	if err != nil {
		return pgtype.Date{}, pgtype.Date{}, err
	}
	return from, to, nil
}
