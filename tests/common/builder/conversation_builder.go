//go:build unit || e2e

package builder

import (
	"time"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/identity"
)

type ConversationBuilder struct {
	Identity       identity.Key
	OrderReference string
	Product        string
	Status         conversation.Status
	Instance       string
	Amount         conversation.Money
	ClientName     string
	PaymentLinkURL string
	CreatedAt      time.Time
}

func NewConversationBuilder() *ConversationBuilder {
	return &ConversationBuilder{
		Identity:       "5511988887777",
		OrderReference: "ORD1",
		Product:        "FAB",
		Status:         conversation.StatusPixPending,
		Instance:       "instance-1",
		Amount:         9700,
		ClientName:     "Maria Silva",
		PaymentLinkURL: "https://pay.example.com/pix/ORD1",
		CreatedAt:      time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ConversationBuilder) With(mutate func(*ConversationBuilder)) *ConversationBuilder {
	mutate(b)
	return b
}

func (b *ConversationBuilder) WithIdentity(id identity.Key) *ConversationBuilder {
	b.Identity = id
	return b
}

func (b *ConversationBuilder) WithOrderReference(ref string) *ConversationBuilder {
	b.OrderReference = ref
	return b
}

func (b *ConversationBuilder) WithStatus(s conversation.Status) *ConversationBuilder {
	b.Status = s
	return b
}

func (b *ConversationBuilder) WithCreatedAt(t time.Time) *ConversationBuilder {
	b.CreatedAt = t
	return b
}

func (b *ConversationBuilder) Params() conversation.NewParams {
	return conversation.NewParams{
		Identity:         b.Identity,
		OrderReference:   b.OrderReference,
		Product:          b.Product,
		Status:           b.Status,
		AssignedInstance: b.Instance,
		Amount:           b.Amount,
		ClientName:       b.ClientName,
		PaymentLinkURL:   b.PaymentLinkURL,
	}
}

func (b *ConversationBuilder) BuildDomain() (*conversation.Conversation, error) {
	return conversation.New(b.Params(), b.CreatedAt)
}

// MustBuild is BuildDomain for fixtures whose params are known to be valid.
func (b *ConversationBuilder) MustBuild() *conversation.Conversation {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}
