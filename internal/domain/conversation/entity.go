package conversation

import (
	"time"

	"pix-funnel/internal/domain/identity"
)

// TimeoutHandle cancels an armed payment-timeout. Cancel must be safe to call
// more than once and after the timeout has already fired.
type TimeoutHandle interface {
	Cancel()
}

type Conversation struct {
	identity             identity.Key
	unrecognizedIdentity bool
	orderReference       string
	product              string
	status               Status
	assignedInstance     string
	amount               Money
	clientName           string
	paymentLinkURL       string
	responsesSent        int
	repliesReceived      int
	createdAt            time.Time
	lastActivityAt       time.Time
	awaitingConfirmation bool
	advancementInFlight  bool
	pendingStep          int
	timeoutAt            time.Time
	version              uint64

	timeout TimeoutHandle
}

type NewParams struct {
	Identity             identity.Key
	UnrecognizedIdentity bool
	OrderReference       string
	Product              string
	Status               Status
	AssignedInstance     string
	Amount               Money
	ClientName           string
	PaymentLinkURL       string
}

func New(p NewParams, now time.Time) (*Conversation, error) {
	if p.Identity.IsZero() {
		return nil, ErrIdentityRequired
	}
	if p.OrderReference == "" {
		return nil, ErrOrderReferenceRequired
	}
	if p.Status != StatusApproved && p.Status != StatusPixPending {
		return nil, ErrInvalidStatus
	}
	product := p.Product
	if product == "" {
		product = UnknownProduct
	}

	return &Conversation{
		identity:             p.Identity,
		unrecognizedIdentity: p.UnrecognizedIdentity,
		orderReference:       p.OrderReference,
		product:              product,
		status:               p.Status,
		assignedInstance:     p.AssignedInstance,
		amount:               p.Amount,
		clientName:           p.ClientName,
		paymentLinkURL:       p.PaymentLinkURL,
		createdAt:            now,
		lastActivityAt:       now,
	}, nil
}

// Reconstruct rebuilds a conversation from a persisted snapshot. No timeout is armed.
func Reconstruct(s Snapshot) *Conversation {
	return &Conversation{
		identity:             s.Identity,
		unrecognizedIdentity: s.UnrecognizedIdentity,
		orderReference:       s.OrderReference,
		product:              s.Product,
		status:               s.Status,
		assignedInstance:     s.AssignedInstance,
		amount:               s.Amount,
		clientName:           s.ClientName,
		paymentLinkURL:       s.PaymentLinkURL,
		responsesSent:        s.ResponsesSent,
		repliesReceived:      s.RepliesReceived,
		createdAt:            s.CreatedAt,
		lastActivityAt:       s.LastActivityAt,
		awaitingConfirmation: s.AwaitingConfirmation,
		advancementInFlight:  s.AdvancementInFlight,
		pendingStep:          s.PendingStep,
		timeoutAt:            s.TimeoutAt,
		version:              s.Version,
	}
}

func (c *Conversation) Identity() identity.Key       { return c.identity }
func (c *Conversation) UnrecognizedIdentity() bool   { return c.unrecognizedIdentity }
func (c *Conversation) OrderReference() string       { return c.orderReference }
func (c *Conversation) Product() string              { return c.product }
func (c *Conversation) Status() Status               { return c.status }
func (c *Conversation) AssignedInstance() string     { return c.assignedInstance }
func (c *Conversation) Amount() Money                { return c.amount }
func (c *Conversation) ClientName() string           { return c.clientName }
func (c *Conversation) PaymentLinkURL() string       { return c.paymentLinkURL }
func (c *Conversation) ResponsesSent() int           { return c.responsesSent }
func (c *Conversation) RepliesReceived() int         { return c.repliesReceived }
func (c *Conversation) CreatedAt() time.Time         { return c.createdAt }
func (c *Conversation) LastActivityAt() time.Time    { return c.lastActivityAt }
func (c *Conversation) AwaitingConfirmation() bool   { return c.awaitingConfirmation }
func (c *Conversation) AdvancementInFlight() bool    { return c.advancementInFlight }
func (c *Conversation) PendingStep() int             { return c.pendingStep }
func (c *Conversation) TimeoutAt() time.Time         { return c.timeoutAt }
func (c *Conversation) Version() uint64              { return c.version }
func (c *Conversation) TimeoutHandle() TimeoutHandle { return c.timeout }

// Locked reports whether either half of the double lock is held.
func (c *Conversation) Locked() bool {
	return c.awaitingConfirmation || c.advancementInFlight
}

func (c *Conversation) Touch(now time.Time) {
	if now.After(c.lastActivityAt) {
		c.lastActivityAt = now
	}
}

// RecordReply counts an inbound reply and reports whether it was the first one.
func (c *Conversation) RecordReply(now time.Time) bool {
	c.repliesReceived++
	c.Touch(now)
	return c.repliesReceived == 1
}

// BeginAdvance takes the double lock for the next step and returns that step.
func (c *Conversation) BeginAdvance(now time.Time) (int, error) {
	if c.Locked() {
		return 0, ErrAdvanceLocked
	}
	next := c.responsesSent + 1
	if next > MaxSteps {
		return 0, ErrFunnelExhausted
	}

	c.awaitingConfirmation = true
	c.advancementInFlight = true
	c.pendingStep = next
	c.Touch(now)
	return next, nil
}

// ConfirmStep applies a confirmation callback. A negative confirmation only
// refreshes activity; the lock stays held. It returns the confirmed step.
func (c *Conversation) ConfirmStep(completed bool, now time.Time) (int, error) {
	c.Touch(now)
	if !completed {
		return 0, nil
	}
	if c.pendingStep == 0 {
		return 0, ErrNoPendingStep
	}

	step := c.pendingStep
	c.responsesSent = step
	c.clearLock()
	if c.responsesSent >= MaxSteps {
		c.status = StatusCompleted
		c.DisarmTimeout()
	}
	return step, nil
}

// ReleaseAdvance drops the lock taken for step when its dispatch failed.
// It is a no-op error if that step is no longer the pending one.
func (c *Conversation) ReleaseAdvance(step int, now time.Time) error {
	if c.pendingStep == 0 || c.pendingStep != step {
		return ErrNoPendingStep
	}
	c.clearLock()
	c.Touch(now)
	return nil
}

func (c *Conversation) Convert(now time.Time) error {
	if c.status != StatusPixPending && c.status != StatusTimeout {
		return ErrNotConvertible
	}
	c.status = StatusConverted
	c.DisarmTimeout()
	c.Touch(now)
	return nil
}

// Expire moves a pending conversation to timeout. orderReference guards
// against a timer armed for an order that has since been replaced.
func (c *Conversation) Expire(orderReference string, now time.Time) error {
	if c.status != StatusPixPending || c.orderReference != orderReference {
		return ErrNotPending
	}
	c.status = StatusTimeout
	c.timeout = nil
	c.timeoutAt = time.Time{}
	c.Touch(now)
	return nil
}

// PaymentDetails are the fields a repeated payment event may refresh.
type PaymentDetails struct {
	Product        string
	ClientName     string
	PaymentLinkURL string
	Amount         Money
}

// MarkApproved applies an approval for the same order. A conversation that is
// already paid is left untouched.
func (c *Conversation) MarkApproved(d PaymentDetails, now time.Time) error {
	if c.status.IsPaid() {
		return ErrAlreadyPaid
	}
	c.refresh(d)
	c.status = StatusApproved
	c.DisarmTimeout()
	c.Touch(now)
	return nil
}

// MarkPending applies a pending payment for the same order, reopening an
// expired or completed conversation. The caller re-arms the timeout.
func (c *Conversation) MarkPending(d PaymentDetails, now time.Time) error {
	if c.status.IsPaid() {
		return ErrAlreadyPaid
	}
	c.refresh(d)
	c.status = StatusPixPending
	c.Touch(now)
	return nil
}

func (c *Conversation) refresh(d PaymentDetails) {
	if d.Product != "" && d.Product != UnknownProduct {
		c.product = d.Product
	}
	if d.ClientName != "" {
		c.clientName = d.ClientName
	}
	if d.PaymentLinkURL != "" {
		c.paymentLinkURL = d.PaymentLinkURL
	}
	if d.Amount > 0 {
		c.amount = d.Amount
	}
}

// ArmTimeout stores h, due at deadline, cancelling any previously armed handle.
func (c *Conversation) ArmTimeout(h TimeoutHandle, deadline time.Time) {
	c.DisarmTimeout()
	c.timeout = h
	c.timeoutAt = deadline
}

func (c *Conversation) DisarmTimeout() {
	if c.timeout != nil {
		c.timeout.Cancel()
		c.timeout = nil
	}
	c.timeoutAt = time.Time{}
}

// CommitVersion is called by the store when a mutation commits. prev is the
// version of the record being replaced, so versions keep increasing across
// overwrites.
func (c *Conversation) CommitVersion(prev uint64) uint64 {
	if prev > c.version {
		c.version = prev
	}
	c.version++
	return c.version
}

// Clone returns a copy sharing the timeout handle.
func (c *Conversation) Clone() *Conversation {
	cp := *c
	return &cp
}

func (c *Conversation) clearLock() {
	c.awaitingConfirmation = false
	c.advancementInFlight = false
	c.pendingStep = 0
}

type Snapshot struct {
	Identity             identity.Key
	UnrecognizedIdentity bool
	OrderReference       string
	Product              string
	Status               Status
	AssignedInstance     string
	Amount               Money
	ClientName           string
	PaymentLinkURL       string
	ResponsesSent        int
	RepliesReceived      int
	CreatedAt            time.Time
	LastActivityAt       time.Time
	AwaitingConfirmation bool
	AdvancementInFlight  bool
	PendingStep          int
	TimeoutAt            time.Time
	Version              uint64
	TimeoutArmed         bool
}

func (c *Conversation) Snapshot() Snapshot {
	return Snapshot{
		Identity:             c.identity,
		UnrecognizedIdentity: c.unrecognizedIdentity,
		OrderReference:       c.orderReference,
		Product:              c.product,
		Status:               c.status,
		AssignedInstance:     c.assignedInstance,
		Amount:               c.amount,
		ClientName:           c.clientName,
		PaymentLinkURL:       c.paymentLinkURL,
		ResponsesSent:        c.responsesSent,
		RepliesReceived:      c.repliesReceived,
		CreatedAt:            c.createdAt,
		LastActivityAt:       c.lastActivityAt,
		AwaitingConfirmation: c.awaitingConfirmation,
		AdvancementInFlight:  c.advancementInFlight,
		PendingStep:          c.pendingStep,
		TimeoutAt:            c.timeoutAt,
		Version:              c.version,
		TimeoutArmed:         c.timeout != nil,
	}
}
