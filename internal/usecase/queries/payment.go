package queries

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/queries/payment_mock.go -package=queriesmock

import (
	"context"
	"time"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/infra"
	"pix-funnel/internal/usecase/shared"
)

type PaymentSource string

const (
	SourceConversation PaymentSource = "conversation"
	SourceLedger       PaymentSource = "ledger"
)

type PaymentStatusView struct {
	OrderReference string               `json:"order_reference"`
	Status         shared.PaymentStatus `json:"status"`
	Source         PaymentSource        `json:"source"`
	Phone          string               `json:"phone,omitempty"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// ConversationReader is the read side of the conversation store.
type ConversationReader interface {
	FindByOrder(orderReference string) (conversation.Snapshot, bool)
	List() []conversation.Snapshot
}

type PaymentQueries interface {
	PaymentStatus(ctx context.Context, orderReference string) (*PaymentStatusView, error)
}

type paymentQueriesImpl struct {
	conversations ConversationReader
	ledger        shared.PaymentLedger
}

func NewPaymentQueries(conversations ConversationReader, ledger shared.PaymentLedger) PaymentQueries {
	return &paymentQueriesImpl{conversations: conversations, ledger: ledger}
}

// PaymentStatus prefers a live conversation that already knows the order is
// paid, then the ledger, then whatever the conversation says.
func (q *paymentQueriesImpl) PaymentStatus(ctx context.Context, orderReference string) (*PaymentStatusView, error) {
	if orderReference == "" {
		return nil, ErrPaymentNotFound
	}

	snap, live := q.conversations.FindByOrder(orderReference)
	if live && snap.Status.IsPaid() {
		return fromConversation(snap, shared.PaymentPaid), nil
	}

	entry, err := q.ledger.Latest(ctx, orderReference)
	switch {
	case err == nil:
		return &PaymentStatusView{
			OrderReference: entry.OrderReference,
			Status:         entry.Status,
			Source:         SourceLedger,
			Phone:          entry.Identity.String(),
			UpdatedAt:      entry.ReceivedAt,
		}, nil
	case !infra.IsNotFound(err):
		return nil, err
	}

	if live {
		return fromConversation(snap, shared.PaymentPending), nil
	}
	return nil, ErrPaymentNotFound
}

func fromConversation(snap conversation.Snapshot, status shared.PaymentStatus) *PaymentStatusView {
	return &PaymentStatusView{
		OrderReference: snap.OrderReference,
		Status:         status,
		Source:         SourceConversation,
		Phone:          snap.Identity.String(),
		UpdatedAt:      snap.LastActivityAt,
	}
}
