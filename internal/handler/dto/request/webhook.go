package request

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/event"
	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/pkg/errs"
)

var (
	ErrUnsupportedStatus = errs.New("payment status is neither approved nor pending")
	ErrInvalidAmount     = errs.New("amount is not a number")
)

// Text accepts a JSON string or number; gateways are inconsistent about ids
// and phones.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string { return string(t) }

// Flag accepts a JSON boolean, 0/1, or one of the usual yes/no spellings in
// English and Portuguese.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	var raw Text
	if err := raw.UnmarshalJSON(b); err != nil {
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = Flag(v)
		return nil
	}
	switch strings.ToLower(raw.String()) {
	case "true", "1", "yes", "sim", "y", "s":
		*f = true
	default:
		*f = false
	}
	return nil
}

type PhoneParts struct {
	Country Text `json:"country"`
	Area    Text `json:"area"`
	Number  Text `json:"number"`
}

func (p PhoneParts) Join() string {
	return p.Country.String() + p.Area.String() + p.Number.String()
}

type Customer struct {
	Name       string      `json:"name"`
	Phone      Text        `json:"phone"`
	PhoneParts *PhoneParts `json:"phone_parts"`
}

// PaymentWebhookRequest is the payment gateway callback. Several spellings of
// the same field are accepted.
type PaymentWebhookRequest struct {
	OrderReference Text     `json:"order_reference"`
	OrderID        Text     `json:"order_id"`
	SaleID         Text     `json:"sale_id"`
	Status         string   `json:"status"`
	ProductCode    Text     `json:"product_code"`
	ProductID      Text     `json:"product_id"`
	Customer       Customer `json:"customer"`
	Amount         Text     `json:"amount"`
	PaymentLink    string   `json:"payment_link"`
	PixURL         string   `json:"pix_url"`
}

type PaymentKind int

const (
	PaymentOther PaymentKind = iota
	PaymentApproved
	PaymentPending
)

func (r PaymentWebhookRequest) Kind() PaymentKind {
	switch strings.ToLower(strings.TrimSpace(r.Status)) {
	case "approved", "paid", "sale_approved":
		return PaymentApproved
	case "pending", "waiting_payment", "pix_generated":
		return PaymentPending
	default:
		return PaymentOther
	}
}

// ToEvent decodes the request into event.PaymentApproved or
// event.PaymentPending.
func (r PaymentWebhookRequest) ToEvent(receivedAt time.Time) (any, error) {
	kind := r.Kind()
	if kind == PaymentOther {
		return nil, ErrUnsupportedStatus
	}

	amount, err := conversation.ParseMoney(r.Amount.String())
	if err != nil {
		return nil, errs.Wrap(ErrInvalidAmount, r.Amount.String())
	}

	rawPhone := r.Customer.Phone.String()
	if rawPhone == "" && r.Customer.PhoneParts != nil {
		rawPhone = r.Customer.PhoneParts.Join()
	}
	key, recognized := identity.Normalize(rawPhone)

	p := event.Payment{
		OrderReference:       firstNonEmpty(r.OrderReference.String(), r.OrderID.String(), r.SaleID.String()),
		ProductCode:          firstNonEmpty(r.ProductCode.String(), r.ProductID.String()),
		CustomerName:         strings.TrimSpace(r.Customer.Name),
		Identity:             key,
		UnrecognizedIdentity: !recognized && !key.IsZero(),
		Amount:               amount,
		PaymentLinkURL:       firstNonEmpty(strings.TrimSpace(r.PaymentLink), strings.TrimSpace(r.PixURL)),
		ReceivedAt:           receivedAt,
	}
	if kind == PaymentApproved {
		return event.PaymentApproved{Payment: p}, nil
	}
	return event.PaymentPending{Payment: p}, nil
}

// ReplyWebhookRequest is a message seen by the messaging gateway, in either
// direction.
type ReplyWebhookRequest struct {
	Sender    Text   `json:"sender"`
	Phone     Text   `json:"phone"`
	Direction string `json:"direction"`
	FromMe    *Flag  `json:"from_me"`
	Message   string `json:"message"`
	Instance  string `json:"instance"`
}

func (r ReplyWebhookRequest) ToEvent(receivedAt time.Time) event.Reply {
	key, recognized := identity.Normalize(firstNonEmpty(r.Sender.String(), r.Phone.String()))

	direction := event.DirectionInbound
	switch {
	case strings.EqualFold(strings.TrimSpace(r.Direction), string(event.DirectionOutbound)):
		direction = event.DirectionOutbound
	case r.Direction == "" && r.FromMe != nil && bool(*r.FromMe):
		direction = event.DirectionOutbound
	}

	return event.Reply{
		Identity:             key,
		UnrecognizedIdentity: !recognized && !key.IsZero(),
		Direction:            direction,
		Message:              r.Message,
		OriginInstance:       strings.TrimSpace(r.Instance),
		ReceivedAt:           receivedAt,
	}
}

// ConfirmationWebhookRequest is the automation's report that a step finished.
type ConfirmationWebhookRequest struct {
	Event     string `json:"event"`
	Phone     Text   `json:"phone"`
	Instance  string `json:"instance"`
	Completed Flag   `json:"completed"`
}

func (r ConfirmationWebhookRequest) ToEvent(receivedAt time.Time) event.Confirmation {
	return event.Confirmation{
		Kind:       strings.TrimSpace(r.Event),
		Identity:   identity.MustNormalize(r.Phone.String()),
		Instance:   strings.TrimSpace(r.Instance),
		Completed:  bool(r.Completed),
		ReceivedAt: receivedAt,
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
