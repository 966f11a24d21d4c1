// Package event holds the decoded inbound triggers and the outbound automation event.
package event

import (
	"time"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/identity"
)

// PaymentApproved and PaymentPending are decoded from the payment webhook;
// statuses other than these two never leave the transport layer.
type PaymentApproved struct {
	Payment
}

type PaymentPending struct {
	Payment
}

type Payment struct {
	OrderReference       string
	ProductCode          string
	CustomerName         string
	Identity             identity.Key
	UnrecognizedIdentity bool
	Amount               conversation.Money
	PaymentLinkURL       string
	ReceivedAt           time.Time
}

type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

type Reply struct {
	Identity             identity.Key
	UnrecognizedIdentity bool
	Direction            Direction
	Message              string
	OriginInstance       string
	ReceivedAt           time.Time
}

func (r Reply) Inbound() bool { return r.Direction != DirectionOutbound }

type Confirmation struct {
	Kind       string
	Identity   identity.Key
	Instance   string
	Completed  bool
	ReceivedAt time.Time
}
