package memstore

import (
	"context"
	"sort"
	"sync"

	"pix-funnel/internal/domain/contact"
	"pix-funnel/internal/domain/conversation"
	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/infra"
	"pix-funnel/internal/usecase/shared"
)

// Durable is the memory store driver. It keeps every durable-side table in
// process and is safe for concurrent use.
type Durable struct {
	mu            sync.RWMutex
	conversations map[identity.Key]conversation.Snapshot
	affinity      map[identity.Key]string
	contacts      map[string]*contact.Contact
	payments      map[string]shared.PaymentEntry
	dispatches    []shared.DispatchEntry
}

var _ shared.Durable = (*Durable)(nil)

func NewDurable() *Durable {
	return &Durable{
		conversations: make(map[identity.Key]conversation.Snapshot),
		affinity:      make(map[identity.Key]string),
		contacts:      make(map[string]*contact.Contact),
		payments:      make(map[string]shared.PaymentEntry),
	}
}

func (d *Durable) Conversations() shared.ConversationMirror { return conversationTable{d} }
func (d *Durable) Affinity() shared.AffinityRepository      { return affinityTable{d} }
func (d *Durable) Contacts() shared.ContactRepository       { return contactTable{d} }
func (d *Durable) Payments() shared.PaymentLedger           { return paymentTable{d} }
func (d *Durable) Dispatches() shared.DispatchJournal       { return dispatchTable{d} }

// DispatchEntries returns a copy of the journal.
func (d *Durable) DispatchEntries() []shared.DispatchEntry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]shared.DispatchEntry(nil), d.dispatches...)
}

type conversationTable struct{ d *Durable }

func (t conversationTable) Save(_ context.Context, s conversation.Snapshot) error {
	t.d.mu.Lock()
	defer t.d.mu.Unlock()
	if old, ok := t.d.conversations[s.Identity]; ok && old.Version >= s.Version {
		return nil
	}
	s.TimeoutArmed = false
	t.d.conversations[s.Identity] = s
	return nil
}

func (t conversationTable) Delete(_ context.Context, key identity.Key) error {
	t.d.mu.Lock()
	defer t.d.mu.Unlock()
	delete(t.d.conversations, key)
	return nil
}

func (t conversationTable) ListActive(_ context.Context) ([]conversation.Snapshot, error) {
	t.d.mu.RLock()
	defer t.d.mu.RUnlock()
	out := make([]conversation.Snapshot, 0, len(t.d.conversations))
	for _, s := range t.d.conversations {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type affinityTable struct{ d *Durable }

func (t affinityTable) Find(_ context.Context, key identity.Key) (string, error) {
	t.d.mu.RLock()
	defer t.d.mu.RUnlock()
	instance, ok := t.d.affinity[key]
	if !ok {
		return "", infra.NewNotFound("affinity not found")
	}
	return instance, nil
}

func (t affinityTable) Remember(_ context.Context, key identity.Key, instance string) (string, error) {
	t.d.mu.Lock()
	defer t.d.mu.Unlock()
	if existing, ok := t.d.affinity[key]; ok {
		return existing, nil
	}
	t.d.affinity[key] = instance
	return instance, nil
}

type contactTable struct{ d *Durable }

func (t contactTable) TryInsert(_ context.Context, c *contact.Contact) (bool, error) {
	t.d.mu.Lock()
	defer t.d.mu.Unlock()
	if _, ok := t.d.contacts[c.DedupKey()]; ok {
		return false, nil
	}
	t.d.contacts[c.DedupKey()] = c
	return true, nil
}

func (t contactTable) List(_ context.Context, fromDay, toDay string) ([]*contact.Contact, error) {
	t.d.mu.RLock()
	defer t.d.mu.RUnlock()
	var out []*contact.Contact
	for _, c := range t.d.contacts {
		if c.Day() >= fromDay && c.Day() <= toDay {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SavedAt().Before(out[j].SavedAt()) })
	return out, nil
}

func (t contactTable) CountByInstance(ctx context.Context, fromDay, toDay string) (map[string]int64, error) {
	list, _ := t.List(ctx, fromDay, toDay)
	counts := make(map[string]int64)
	for _, c := range list {
		counts[c.Instance()]++
	}
	return counts, nil
}

type paymentTable struct{ d *Durable }

func (t paymentTable) Record(_ context.Context, entry shared.PaymentEntry) error {
	t.d.mu.Lock()
	defer t.d.mu.Unlock()
	if prev, ok := t.d.payments[entry.OrderReference]; ok && prev.ReceivedAt.After(entry.ReceivedAt) {
		return nil
	}
	t.d.payments[entry.OrderReference] = entry
	return nil
}

func (t paymentTable) Latest(_ context.Context, orderReference string) (*shared.PaymentEntry, error) {
	t.d.mu.RLock()
	defer t.d.mu.RUnlock()
	entry, ok := t.d.payments[orderReference]
	if !ok {
		return nil, infra.NewNotFound("payment not found")
	}
	return &entry, nil
}

type dispatchTable struct{ d *Durable }

func (t dispatchTable) Append(_ context.Context, entry shared.DispatchEntry) error {
	t.d.mu.Lock()
	defer t.d.mu.Unlock()
	t.d.dispatches = append(t.d.dispatches, entry)
	return nil
}
