package event

import (
	"fmt"
	"time"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/identity"

	"github.com/google/uuid"
)

type Kind string

const (
	KindApprovedSale Kind = "approved_sale"
	KindPixTimeout   Kind = "pix_timeout"
	KindConverted    Kind = "converted"
)

func StepKind(step int) Kind {
	return Kind(fmt.Sprintf("step_%d", step))
}

// Event is what the dispatcher delivers to the automation webhook.
type Event struct {
	ID             uuid.UUID
	Kind           Kind
	Product        string
	Instance       string
	Identity       identity.Key
	ClientName     string
	OrderReference string
	Amount         conversation.Money
	PaymentLinkURL string
	Message        string
	Step           int
	OccurredAt     time.Time
}

// FromConversation fills the common fields from a conversation snapshot.
func FromConversation(kind Kind, s conversation.Snapshot, at time.Time) Event {
	return Event{
		ID:             uuid.New(),
		Kind:           kind,
		Product:        s.Product,
		Instance:       s.AssignedInstance,
		Identity:       s.Identity,
		ClientName:     s.ClientName,
		OrderReference: s.OrderReference,
		Amount:         s.Amount,
		PaymentLinkURL: s.PaymentLinkURL,
		OccurredAt:     at,
	}
}

func NewStep(step int, message string, s conversation.Snapshot, at time.Time) Event {
	e := FromConversation(StepKind(step), s, at)
	e.Step = step
	e.Message = message
	return e
}
