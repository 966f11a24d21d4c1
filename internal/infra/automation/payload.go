package automation

import (
	"time"

	"pix-funnel/internal/domain/event"
)

const displayLayout = "02/01/2006 15:04:05"

// Payload is the JSON body posted to the automation webhook.
type Payload struct {
	EventID          string  `json:"event_id"`
	Event            string  `json:"event"`
	Product          string  `json:"product"`
	Instance         string  `json:"instance"`
	Phone            string  `json:"phone"`
	ClientName       string  `json:"client_name"`
	OrderReference   string  `json:"order_reference"`
	Amount           float64 `json:"amount"`
	PaymentLink      string  `json:"payment_link,omitempty"`
	Message          string  `json:"message,omitempty"`
	Step             int     `json:"step,omitempty"`
	Timestamp        string  `json:"timestamp"`
	TimestampDisplay string  `json:"timestamp_display"`
}

func NewPayload(e event.Event, loc *time.Location) Payload {
	if loc == nil {
		loc = time.UTC
	}
	return Payload{
		EventID:          e.ID.String(),
		Event:            string(e.Kind),
		Product:          e.Product,
		Instance:         e.Instance,
		Phone:            e.Identity.String(),
		ClientName:       e.ClientName,
		OrderReference:   e.OrderReference,
		Amount:           e.Amount.Float64(),
		PaymentLink:      e.PaymentLinkURL,
		Message:          e.Message,
		Step:             e.Step,
		Timestamp:        e.OccurredAt.UTC().Format(time.RFC3339),
		TimestampDisplay: e.OccurredAt.In(loc).Format(displayLayout),
	}
}
