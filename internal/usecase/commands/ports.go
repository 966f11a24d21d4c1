package commands

import (
	"context"
	"time"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/event"
	"pix-funnel/internal/domain/identity"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// ConversationStore is the authoritative per-identity table. Mutate runs fn
// under the identity's lock; see memstore.Store.
type ConversationStore interface {
	Get(key identity.Key) (conversation.Snapshot, bool)
	FindByOrder(orderReference string) (conversation.Snapshot, bool)
	Mutate(ctx context.Context, key identity.Key, fn func(cur *conversation.Conversation) (*conversation.Conversation, error)) (conversation.Snapshot, error)
}

type Dispatcher interface {
	Send(ctx context.Context, e event.Event) bool
}

type AffinityAssigner interface {
	Assign(ctx context.Context, key identity.Key) string
}

// TimeoutScheduler arms the payment-timeout watchdog for one order.
type TimeoutScheduler interface {
	Schedule(orderReference string, key identity.Key, delay time.Duration) conversation.TimeoutHandle
}

type PaymentOracle interface {
	IsPaid(ctx context.Context, orderReference string) (bool, error)
}

type ContactRecorder interface {
	Record(ctx context.Context, in ContactInput) (bool, error)
}

// TaskRunner runs post-commit side effects outside the identity lock.
type TaskRunner interface {
	Go(name string, fn func(ctx context.Context)) bool
}
