package dynamo

import (
	"time"

	"pix-funnel/internal/domain/contact"
	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/usecase/shared"

	"github.com/google/uuid"
)

// Timestamps are stored as unix nanoseconds so condition expressions can
// compare them numerically.

type conversationItem struct {
	PK                   string `dynamodbav:"PK"`
	SK                   string `dynamodbav:"SK"`
	Identity             string `dynamodbav:"identity"`
	UnrecognizedIdentity bool   `dynamodbav:"unrecognizedIdentity"`
	OrderReference       string `dynamodbav:"orderReference"`
	Product              string `dynamodbav:"product"`
	Status               string `dynamodbav:"status"`
	AssignedInstance     string `dynamodbav:"assignedInstance"`
	AmountCents          int64  `dynamodbav:"amountCents"`
	ClientName           string `dynamodbav:"clientName,omitempty"`
	PaymentLinkURL       string `dynamodbav:"paymentLinkUrl,omitempty"`
	ResponsesSent        int    `dynamodbav:"responsesSent"`
	RepliesReceived      int    `dynamodbav:"repliesReceived"`
	AwaitingConfirmation bool   `dynamodbav:"awaitingConfirmation"`
	AdvancementInFlight  bool   `dynamodbav:"advancementInFlight"`
	PendingStep          int    `dynamodbav:"pendingStep"`
	TimeoutAt            int64  `dynamodbav:"timeoutAt,omitempty"`
	Version              uint64 `dynamodbav:"version"`
	CreatedAt            int64  `dynamodbav:"createdAt"`
	LastActivityAt       int64  `dynamodbav:"lastActivityAt"`
}

func toConversationItem(s conversation.Snapshot) conversationItem {
	return conversationItem{
		PK:                   pkConversation + s.Identity.String(),
		SK:                   skMeta,
		Identity:             s.Identity.String(),
		UnrecognizedIdentity: s.UnrecognizedIdentity,
		OrderReference:       s.OrderReference,
		Product:              s.Product,
		Status:               string(s.Status),
		AssignedInstance:     s.AssignedInstance,
		AmountCents:          s.Amount.Cents(),
		ClientName:           s.ClientName,
		PaymentLinkURL:       s.PaymentLinkURL,
		ResponsesSent:        s.ResponsesSent,
		RepliesReceived:      s.RepliesReceived,
		AwaitingConfirmation: s.AwaitingConfirmation,
		AdvancementInFlight:  s.AdvancementInFlight,
		PendingStep:          s.PendingStep,
		TimeoutAt:            toNanos(s.TimeoutAt),
		Version:              s.Version,
		CreatedAt:            toNanos(s.CreatedAt),
		LastActivityAt:       toNanos(s.LastActivityAt),
	}
}

func (it conversationItem) snapshot() conversation.Snapshot {
	return conversation.Snapshot{
		Identity:             identity.Key(it.Identity),
		UnrecognizedIdentity: it.UnrecognizedIdentity,
		OrderReference:       it.OrderReference,
		Product:              it.Product,
		Status:               conversation.Status(it.Status),
		AssignedInstance:     it.AssignedInstance,
		Amount:               conversation.Money(it.AmountCents),
		ClientName:           it.ClientName,
		PaymentLinkURL:       it.PaymentLinkURL,
		ResponsesSent:        it.ResponsesSent,
		RepliesReceived:      it.RepliesReceived,
		CreatedAt:            fromNanos(it.CreatedAt),
		LastActivityAt:       fromNanos(it.LastActivityAt),
		AwaitingConfirmation: it.AwaitingConfirmation,
		AdvancementInFlight:  it.AdvancementInFlight,
		PendingStep:          it.PendingStep,
		TimeoutAt:            fromNanos(it.TimeoutAt),
		Version:              it.Version,
	}
}

type affinityItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	Instance   string `dynamodbav:"instance"`
	AssignedAt int64  `dynamodbav:"assignedAt"`
}

// contactItem is partitioned by day; the sort key is the identity, which
// makes (identity, day) the primary key.
type contactItem struct {
	PK             string `dynamodbav:"PK"`
	SK             string `dynamodbav:"SK"`
	ID             string `dynamodbav:"id"`
	Day            string `dynamodbav:"day"`
	Instance       string `dynamodbav:"instance"`
	Product        string `dynamodbav:"product,omitempty"`
	OrderReference string `dynamodbav:"orderReference,omitempty"`
	SavedAt        int64  `dynamodbav:"savedAt"`
}

func toContactItem(c *contact.Contact) contactItem {
	return contactItem{
		PK:             pkContactDay + c.Day(),
		SK:             c.Identity().String(),
		ID:             c.ID().String(),
		Day:            c.Day(),
		Instance:       c.Instance(),
		Product:        c.Product(),
		OrderReference: c.OrderReference(),
		SavedAt:        toNanos(c.SavedAt()),
	}
}

func (it contactItem) contact() (*contact.Contact, error) {
	id, err := uuid.Parse(it.ID)
	if err != nil {
		return nil, err
	}
	return contact.Reconstruct(id, identity.Key(it.SK), it.Day, it.Instance, it.Product, it.OrderReference, fromNanos(it.SavedAt)), nil
}

type paymentItem struct {
	PK             string `dynamodbav:"PK"`
	SK             string `dynamodbav:"SK"`
	OrderReference string `dynamodbav:"orderReference"`
	Status         string `dynamodbav:"status"`
	Identity       string `dynamodbav:"identity,omitempty"`
	ReceivedAt     int64  `dynamodbav:"receivedAt"`
}

func (it paymentItem) entry() *shared.PaymentEntry {
	return &shared.PaymentEntry{
		OrderReference: it.OrderReference,
		Status:         shared.PaymentStatus(it.Status),
		Identity:       identity.Key(it.Identity),
		ReceivedAt:     fromNanos(it.ReceivedAt),
	}
}

type dispatchItem struct {
	PK             string `dynamodbav:"PK"`
	SK             string `dynamodbav:"SK"`
	Kind           string `dynamodbav:"kind"`
	Identity       string `dynamodbav:"identity"`
	OrderReference string `dynamodbav:"orderReference,omitempty"`
	Payload        string `dynamodbav:"payload"`
	Attempts       int    `dynamodbav:"attempts"`
	Status         string `dynamodbav:"status"`
	LastError      string `dynamodbav:"lastError,omitempty"`
	CreatedAt      int64  `dynamodbav:"createdAt"`
}

func toNanos(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromNanos(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}
