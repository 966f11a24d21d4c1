package uow

import (
	"log/slog"

	"pix-funnel/internal/infra/repository"
	sqlc "pix-funnel/internal/infra/sqlc/generated"
	"pix-funnel/internal/usecase/shared"
)

// PostgresDurable is the Postgres store driver.
type PostgresDurable struct {
	conversations *repository.ConversationRepository
	affinity      *repository.AffinityRepository
	contacts      *repository.ContactRepository
	payments      *repository.PaymentRepository
	dispatches    *repository.DispatchRepository
}

var _ shared.Durable = (*PostgresDurable)(nil)

func NewPostgresDurable(u *PostgresUoW, q *sqlc.Queries, slogger *slog.Logger) *PostgresDurable {
	db := u.DB()
	return &PostgresDurable{
		conversations: repository.NewConversationRepository(q, db, slogger),
		affinity:      repository.NewAffinityRepository(q, db, u, slogger),
		contacts:      repository.NewContactRepository(q, db, slogger),
		payments:      repository.NewPaymentRepository(q, db, slogger),
		dispatches:    repository.NewDispatchRepository(q, db, slogger),
	}
}

func (d *PostgresDurable) Conversations() shared.ConversationMirror { return d.conversations }
func (d *PostgresDurable) Affinity() shared.AffinityRepository      { return d.affinity }
func (d *PostgresDurable) Contacts() shared.ContactRepository       { return d.contacts }
func (d *PostgresDurable) Payments() shared.PaymentLedger           { return d.payments }
func (d *PostgresDurable) Dispatches() shared.DispatchJournal       { return d.dispatches }
