package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

import (
	"context"
	"time"

	"pix-funnel/internal/domain/contact"
	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/identity"

	"github.com/google/uuid"
)

// Durable-side ports. Every implementation is a best-effort replica; the
// in-memory conversation store stays authoritative.

type ConversationMirror interface {
	Save(ctx context.Context, s conversation.Snapshot) error
	Delete(ctx context.Context, key identity.Key) error
	// ListActive returns every mirrored conversation, used to warm the store on start.
	ListActive(ctx context.Context) ([]conversation.Snapshot, error)
}

type AffinityRepository interface {
	// Find returns an infra NOT_FOUND error when the identity was never assigned.
	Find(ctx context.Context, key identity.Key) (string, error)
	// Remember stores instance unless a binding already exists, and returns the winner.
	Remember(ctx context.Context, key identity.Key, instance string) (string, error)
}

type ContactRepository interface {
	// TryInsert reports false when (identity, day) is already recorded.
	TryInsert(ctx context.Context, c *contact.Contact) (bool, error)
	// List returns contacts whose day is within [fromDay, toDay], ordered by savedAt.
	List(ctx context.Context, fromDay, toDay string) ([]*contact.Contact, error)
	CountByInstance(ctx context.Context, fromDay, toDay string) (map[string]int64, error)
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

type PaymentEntry struct {
	OrderReference string
	Status         PaymentStatus
	Identity       identity.Key
	ReceivedAt     time.Time
}

type PaymentLedger interface {
	Record(ctx context.Context, entry PaymentEntry) error
	// Latest returns an infra NOT_FOUND error for unknown orders.
	Latest(ctx context.Context, orderReference string) (*PaymentEntry, error)
}

type DispatchStatus string

const (
	DispatchDelivered DispatchStatus = "delivered"
	DispatchFailed    DispatchStatus = "failed"
)

type DispatchEntry struct {
	ID             uuid.UUID
	Kind           string
	Identity       identity.Key
	OrderReference string
	Payload        []byte
	Attempts       int
	Status         DispatchStatus
	LastError      string
	CreatedAt      time.Time
}

type DispatchJournal interface {
	Append(ctx context.Context, entry DispatchEntry) error
}

// Durable bundles the ports a store driver provides.
type Durable interface {
	Conversations() ConversationMirror
	Affinity() AffinityRepository
	Contacts() ContactRepository
	Payments() PaymentLedger
	Dispatches() DispatchJournal
}
