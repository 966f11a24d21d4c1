package repository

import (
	"context"
	"log/slog"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/infra"
	sqlc "pix-funnel/internal/infra/sqlc/generated"
	"pix-funnel/internal/pkg/pgconv"
	"pix-funnel/internal/usecase/shared"
)

type ConversationQueries interface {
	UpsertConversation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertConversationParams) (int64, error)
	DeleteConversation(ctx context.Context, db sqlc.DBTX, identity string) error
	ListConversations(ctx context.Context, db sqlc.DBTX) ([]sqlc.Conversations, error)
}

type ConversationRepository struct {
	queries ConversationQueries
	db      sqlc.DBTX
	slogger *slog.Logger
}

var _ shared.ConversationMirror = (*ConversationRepository)(nil)

func NewConversationRepository(queries ConversationQueries, db sqlc.DBTX, slogger *slog.Logger) *ConversationRepository {
	return &ConversationRepository{queries: queries, db: db, slogger: slogger}
}

// Save upserts the snapshot. Rows holding a newer version are left alone, so
// out-of-order writes are harmless.
func (r *ConversationRepository) Save(ctx context.Context, s conversation.Snapshot) error {
	_, err := r.queries.UpsertConversation(ctx, r.db, sqlc.UpsertConversationParams{
		Identity:             s.Identity.String(),
		UnrecognizedIdentity: s.UnrecognizedIdentity,
		OrderReference:       s.OrderReference,
		Product:              s.Product,
		Status:               string(s.Status),
		AssignedInstance:     s.AssignedInstance,
		AmountCents:          s.Amount.Cents(),
		ClientName:           s.ClientName,
		PaymentLinkUrl:       s.PaymentLinkURL,
		ResponsesSent:        int32(s.ResponsesSent),
		RepliesReceived:      int32(s.RepliesReceived),
		AwaitingConfirmation: s.AwaitingConfirmation,
		AdvancementInFlight:  s.AdvancementInFlight,
		PendingStep:          int32(s.PendingStep),
		TimeoutAt:            pgconv.OptionalTimeToPgtype(s.TimeoutAt),
		Version:              int64(s.Version),
		CreatedAt:            pgconv.TimeToPgtype(s.CreatedAt),
		LastActivityAt:       pgconv.TimeToPgtype(s.LastActivityAt),
	})
	if err != nil {
		return infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to save conversation", err)
	}
	return nil
}

func (r *ConversationRepository) Delete(ctx context.Context, key identity.Key) error {
	if err := r.queries.DeleteConversation(ctx, r.db, key.String()); err != nil {
		return infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to delete conversation", err)
	}
	return nil
}

func (r *ConversationRepository) ListActive(ctx context.Context) ([]conversation.Snapshot, error) {
	rows, err := r.queries.ListConversations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to list conversations", err)
	}

	out := make([]conversation.Snapshot, 0, len(rows))
	for _, row := range rows {
		s := toSnapshot(row)
		if !s.Status.IsValid() {
			r.slogger.Warn("skipping mirrored conversation with unknown status",
				slog.String("identity", row.Identity),
				slog.String("status", row.Status))
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func toSnapshot(row sqlc.Conversations) conversation.Snapshot {
	return conversation.Snapshot{
		Identity:             identity.Key(row.Identity),
		UnrecognizedIdentity: row.UnrecognizedIdentity,
		OrderReference:       row.OrderReference,
		Product:              row.Product,
		Status:               conversation.Status(row.Status),
		AssignedInstance:     row.AssignedInstance,
		Amount:               conversation.Money(row.AmountCents),
		ClientName:           row.ClientName,
		PaymentLinkURL:       row.PaymentLinkUrl,
		ResponsesSent:        int(row.ResponsesSent),
		RepliesReceived:      int(row.RepliesReceived),
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
		LastActivityAt:       pgconv.TimeFromPgtype(row.LastActivityAt),
		AwaitingConfirmation: row.AwaitingConfirmation,
		AdvancementInFlight:  row.AdvancementInFlight,
		PendingStep:          int(row.PendingStep),
		TimeoutAt:            pgconv.TimeFromPgtype(row.TimeoutAt),
		Version:              uint64(row.Version),
	}
}
