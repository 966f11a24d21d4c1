package commands

//go:generate mockgen -source=funnel.go -destination=../../../tests/mock/commands/funnel_mock.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/event"
	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/pkg/clock"
	"pix-funnel/internal/usecase/shared"
)

// Outcome is what a trigger did; webhook handlers echo it back as the status.
type Outcome string

const (
	OutcomeCreated     Outcome = "created"
	OutcomeUpdated     Outcome = "updated"
	OutcomeDuplicate   Outcome = "duplicate"
	OutcomeIgnored     Outcome = "ignored"
	OutcomeAdvanced    Outcome = "advanced"
	OutcomeConverted   Outcome = "converted"
	OutcomeLocked      Outcome = "locked"
	OutcomeExhausted   Outcome = "exhausted"
	OutcomeTouched     Outcome = "touched"
	OutcomeConfirmed   Outcome = "confirmed"
	OutcomeCompleted   Outcome = "completed"
	OutcomeNoPending   Outcome = "no_pending_step"
	OutcomeUnknownLead Outcome = "unknown_conversation"
)

type FunnelCommands interface {
	HandlePaymentApproved(ctx context.Context, ev event.PaymentApproved) (Outcome, error)
	HandlePaymentPending(ctx context.Context, ev event.PaymentPending) (Outcome, error)
	HandleReply(ctx context.Context, ev event.Reply) (Outcome, error)
	HandleConfirmation(ctx context.Context, ev event.Confirmation) (Outcome, error)
}

type FunnelParams struct {
	Store        ConversationStore
	Assigner     AffinityAssigner
	Watchdog     TimeoutScheduler
	Dispatcher   Dispatcher
	Contacts     ContactRecorder
	Oracle       PaymentOracle
	Ledger       shared.PaymentLedger
	Tasks        TaskRunner
	Clock        clock.Clock
	ProductCodes map[string]string
	PixTimeout   time.Duration
	Logger       *slog.Logger
}

type funnelUseCaseImpl struct {
	store      ConversationStore
	assigner   AffinityAssigner
	watchdog   TimeoutScheduler
	dispatcher Dispatcher
	contacts   ContactRecorder
	oracle     PaymentOracle
	ledger     shared.PaymentLedger
	tasks      TaskRunner
	clock      clock.Clock
	products   map[string]string
	pixTimeout time.Duration
	slogger    *slog.Logger
}

func NewFunnelUseCase(p FunnelParams) FunnelCommands {
	products := make(map[string]string, len(p.ProductCodes))
	for k, v := range p.ProductCodes {
		products[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return &funnelUseCaseImpl{
		store:      p.Store,
		assigner:   p.Assigner,
		watchdog:   p.Watchdog,
		dispatcher: p.Dispatcher,
		contacts:   p.Contacts,
		oracle:     p.Oracle,
		ledger:     p.Ledger,
		tasks:      p.Tasks,
		clock:      p.Clock,
		products:   products,
		pixTimeout: p.PixTimeout,
		slogger:    p.Logger,
	}
}

func (uc *funnelUseCaseImpl) HandlePaymentApproved(ctx context.Context, ev event.PaymentApproved) (Outcome, error) {
	if err := validatePayment(ev.Payment); err != nil {
		return OutcomeIgnored, err
	}
	now := uc.clock.Now()
	instance := uc.assigner.Assign(ctx, ev.Identity)
	outcome := OutcomeCreated

	snap, err := uc.store.Mutate(ctx, ev.Identity, func(cur *conversation.Conversation) (*conversation.Conversation, error) {
		if cur != nil && cur.OrderReference() == ev.OrderReference {
			if err := cur.MarkApproved(uc.details(ev.Payment), now); err != nil {
				return nil, err
			}
			outcome = OutcomeUpdated
			return cur, nil
		}
		if cur != nil {
			cur.DisarmTimeout()
		}
		return conversation.New(uc.newParams(ev.Payment, conversation.StatusApproved, instance), now)
	})
	if errors.Is(err, conversation.ErrAlreadyPaid) {
		return OutcomeDuplicate, nil
	}
	if err != nil {
		return OutcomeIgnored, err
	}
	uc.recordPayment(ctx, ev.Payment, shared.PaymentPaid)

	uc.slogger.Info("payment approved",
		slog.String("identity", snap.Identity.String()),
		slog.String("order_reference", snap.OrderReference),
		slog.String("instance", snap.AssignedInstance))

	uc.dispatch(event.FromConversation(event.KindApprovedSale, snap, now))
	return outcome, nil
}

func (uc *funnelUseCaseImpl) HandlePaymentPending(ctx context.Context, ev event.PaymentPending) (Outcome, error) {
	if err := validatePayment(ev.Payment); err != nil {
		return OutcomeIgnored, err
	}
	now := uc.clock.Now()
	instance := uc.assigner.Assign(ctx, ev.Identity)
	outcome := OutcomeCreated

	snap, err := uc.store.Mutate(ctx, ev.Identity, func(cur *conversation.Conversation) (*conversation.Conversation, error) {
		next := cur
		if cur != nil && cur.OrderReference() == ev.OrderReference {
			if err := cur.MarkPending(uc.details(ev.Payment), now); err != nil {
				return nil, err
			}
			outcome = OutcomeUpdated
		} else {
			if cur != nil {
				cur.DisarmTimeout()
			}
			created, err := conversation.New(uc.newParams(ev.Payment, conversation.StatusPixPending, instance), now)
			if err != nil {
				return nil, err
			}
			next = created
		}
		next.ArmTimeout(uc.watchdog.Schedule(ev.OrderReference, ev.Identity, uc.pixTimeout), now.Add(uc.pixTimeout))
		return next, nil
	})
	if errors.Is(err, conversation.ErrAlreadyPaid) {
		return OutcomeDuplicate, nil
	}
	if err != nil {
		return OutcomeIgnored, err
	}
	uc.recordPayment(ctx, ev.Payment, shared.PaymentPending)

	uc.slogger.Info("payment pending",
		slog.String("identity", snap.Identity.String()),
		slog.String("order_reference", snap.OrderReference),
		slog.Time("timeout_at", snap.TimeoutAt))
	return outcome, nil
}

func (uc *funnelUseCaseImpl) HandleReply(ctx context.Context, ev event.Reply) (Outcome, error) {
	if ev.Identity.IsZero() {
		return OutcomeIgnored, ErrMissingIdentity
	}
	now := uc.clock.Now()

	if !ev.Inbound() {
		snap, err := uc.store.Mutate(ctx, ev.Identity, func(cur *conversation.Conversation) (*conversation.Conversation, error) {
			if cur == nil {
				return nil, nil
			}
			cur.Touch(now)
			return cur, nil
		})
		if err != nil || snap.Identity.IsZero() {
			return OutcomeUnknownLead, err
		}
		return OutcomeTouched, nil
	}

	paid := uc.paidBeforeReply(ctx, ev.Identity)

	var (
		outcome    Outcome
		step       int
		firstReply bool
	)
	snap, err := uc.store.Mutate(ctx, ev.Identity, func(cur *conversation.Conversation) (*conversation.Conversation, error) {
		if cur == nil {
			return nil, ErrConversationNotFound
		}
		firstReply = cur.RecordReply(now)

		if paid && (cur.Status() == conversation.StatusPixPending || cur.Status() == conversation.StatusTimeout) {
			if err := cur.Convert(now); err != nil {
				return nil, err
			}
			outcome = OutcomeConverted
			return cur, nil
		}

		next, err := cur.BeginAdvance(now)
		if err != nil {
			return nil, err
		}
		step = next
		outcome = OutcomeAdvanced
		return cur, nil
	})

	switch {
	case errors.Is(err, ErrConversationNotFound):
		uc.recordContact(ContactInput{Identity: ev.Identity, Instance: ev.OriginInstance, Product: conversation.UnknownProduct, Message: ev.Message})
		return OutcomeUnknownLead, nil
	case errors.Is(err, conversation.ErrAdvanceLocked):
		uc.slogger.Debug("reply dropped while advancement in flight", slog.String("identity", ev.Identity.String()))
		return OutcomeLocked, nil
	case errors.Is(err, conversation.ErrFunnelExhausted):
		return OutcomeExhausted, nil
	case err != nil:
		return OutcomeIgnored, err
	}

	if firstReply {
		uc.recordContact(contactFor(snap, ev.Message))
	}

	if outcome == OutcomeConverted {
		uc.slogger.Info("pending payment converted on reply",
			slog.String("identity", snap.Identity.String()),
			slog.String("order_reference", snap.OrderReference))
		uc.dispatch(event.FromConversation(event.KindConverted, snap, now))
		return outcome, nil
	}

	if !uc.advance(step, ev.Message, snap, now) {
		return OutcomeIgnored, nil
	}
	return outcome, nil
}

func (uc *funnelUseCaseImpl) HandleConfirmation(ctx context.Context, ev event.Confirmation) (Outcome, error) {
	if ev.Identity.IsZero() {
		return OutcomeIgnored, ErrMissingIdentity
	}
	now := uc.clock.Now()

	var confirmed int
	snap, err := uc.store.Mutate(ctx, ev.Identity, func(cur *conversation.Conversation) (*conversation.Conversation, error) {
		if cur == nil {
			return nil, ErrConversationNotFound
		}
		step, err := cur.ConfirmStep(ev.Completed, now)
		if err != nil {
			return nil, err
		}
		confirmed = step
		return cur, nil
	})
	switch {
	case errors.Is(err, ErrConversationNotFound):
		return OutcomeUnknownLead, nil
	case errors.Is(err, conversation.ErrNoPendingStep):
		return OutcomeNoPending, nil
	case err != nil:
		return OutcomeIgnored, err
	}

	if !ev.Completed {
		return OutcomeTouched, nil
	}
	uc.slogger.Info("step confirmed",
		slog.String("identity", snap.Identity.String()),
		slog.Int("step", confirmed),
		slog.Int("responses_sent", snap.ResponsesSent))
	if snap.Status == conversation.StatusCompleted {
		return OutcomeCompleted, nil
	}
	return OutcomeConfirmed, nil
}

// advance dispatches the step taken under the lock. A failed delivery
// releases the lock, otherwise no confirmation would ever clear it. It reports
// false when the task group refused the dispatch; the lock is released then too.
func (uc *funnelUseCaseImpl) advance(step int, message string, snap conversation.Snapshot, now time.Time) bool {
	ev := event.NewStep(step, message, snap, now)
	key := snap.Identity

	started := uc.tasks.Go("dispatch "+string(ev.Kind), func(ctx context.Context) {
		if uc.dispatcher.Send(ctx, ev) {
			if step == 1 {
				if _, err := uc.contacts.Record(ctx, contactFor(snap, message)); err != nil {
					uc.slogger.Warn("failed to record contact", slog.String("identity", key.String()), slog.Any("error", err))
				}
			}
			return
		}
		if uc.releaseAdvance(ctx, key, step) {
			uc.slogger.Warn("step dispatch failed, lock released", slog.String("identity", key.String()), slog.Int("step", step))
		}
	})
	if started {
		return true
	}

	uc.releaseAdvance(context.Background(), key, step)
	uc.slogger.Warn("step dispatch rejected during shutdown, lock released", slog.String("identity", key.String()), slog.Int("step", step))
	return false
}

// releaseAdvance clears the lock taken for step, if it is still held.
func (uc *funnelUseCaseImpl) releaseAdvance(ctx context.Context, key identity.Key, step int) bool {
	_, err := uc.store.Mutate(ctx, key, func(cur *conversation.Conversation) (*conversation.Conversation, error) {
		if cur == nil {
			return nil, nil
		}
		if err := cur.ReleaseAdvance(step, uc.clock.Now()); err != nil {
			return nil, err
		}
		return cur, nil
	})
	if err != nil {
		uc.slogger.Debug("advance lock already released", slog.String("identity", key.String()), slog.Int("step", step))
		return false
	}
	return true
}

func (uc *funnelUseCaseImpl) dispatch(ev event.Event) {
	uc.tasks.Go("dispatch "+string(ev.Kind), func(ctx context.Context) {
		uc.dispatcher.Send(ctx, ev)
	})
}

func (uc *funnelUseCaseImpl) recordContact(in ContactInput) {
	uc.tasks.Go("record contact", func(ctx context.Context) {
		if _, err := uc.contacts.Record(ctx, in); err != nil {
			uc.slogger.Warn("failed to record contact", slog.String("identity", in.Identity.String()), slog.Any("error", err))
		}
	})
}

// paidBeforeReply asks the oracle only when the conversation could convert.
// The status is re-checked under the lock.
func (uc *funnelUseCaseImpl) paidBeforeReply(ctx context.Context, key identity.Key) bool {
	snap, ok := uc.store.Get(key)
	if !ok || uc.oracle == nil {
		return false
	}
	if snap.Status != conversation.StatusPixPending && snap.Status != conversation.StatusTimeout {
		return false
	}
	paid, err := uc.oracle.IsPaid(ctx, snap.OrderReference)
	if err != nil {
		uc.slogger.Warn("payment oracle failed",
			slog.String("order_reference", snap.OrderReference),
			slog.Any("error", err))
		return false
	}
	return paid
}

func (uc *funnelUseCaseImpl) recordPayment(ctx context.Context, p event.Payment, status shared.PaymentStatus) {
	if uc.ledger == nil {
		return
	}
	err := uc.ledger.Record(ctx, shared.PaymentEntry{
		OrderReference: p.OrderReference,
		Status:         status,
		Identity:       p.Identity,
		ReceivedAt:     uc.clock.Now(),
	})
	if err != nil {
		uc.slogger.Warn("failed to record payment", slog.String("order_reference", p.OrderReference), slog.Any("error", err))
	}
}

func (uc *funnelUseCaseImpl) productFor(code string) string {
	if short, ok := uc.products[strings.ToLower(strings.TrimSpace(code))]; ok && short != "" {
		return short
	}
	return conversation.UnknownProduct
}

func (uc *funnelUseCaseImpl) details(p event.Payment) conversation.PaymentDetails {
	return conversation.PaymentDetails{
		Product:        uc.productFor(p.ProductCode),
		ClientName:     p.CustomerName,
		PaymentLinkURL: p.PaymentLinkURL,
		Amount:         p.Amount,
	}
}

func (uc *funnelUseCaseImpl) newParams(p event.Payment, status conversation.Status, instance string) conversation.NewParams {
	return conversation.NewParams{
		Identity:             p.Identity,
		UnrecognizedIdentity: p.UnrecognizedIdentity,
		OrderReference:       p.OrderReference,
		Product:              uc.productFor(p.ProductCode),
		Status:               status,
		AssignedInstance:     instance,
		Amount:               p.Amount,
		ClientName:           p.CustomerName,
		PaymentLinkURL:       p.PaymentLinkURL,
	}
}

func contactFor(snap conversation.Snapshot, message string) ContactInput {
	return ContactInput{
		Identity:       snap.Identity,
		Instance:       snap.AssignedInstance,
		Product:        snap.Product,
		OrderReference: snap.OrderReference,
		Message:        message,
	}
}

func validatePayment(p event.Payment) error {
	if p.Identity.IsZero() {
		return ErrMissingIdentity
	}
	if strings.TrimSpace(p.OrderReference) == "" {
		return ErrMissingOrderReference
	}
	return nil
}
