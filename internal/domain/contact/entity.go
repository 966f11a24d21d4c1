package contact

import (
	"time"

	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOptOut          = errs.New("message is an opt-out")
	ErrMessageTooShort = errs.New("message too short")
	ErrDuplicate       = errs.New("contact already recorded for the day")
)

// DayLayout formats the (identity, day) dedup key.
const DayLayout = "2006-01-02"

type Contact struct {
	id             uuid.UUID
	identity       identity.Key
	day            string
	instance       string
	product        string
	orderReference string
	savedAt        time.Time
}

type NewParams struct {
	Identity       identity.Key
	Instance       string
	Product        string
	OrderReference string
}

// New builds a contact whose day is savedAt's calendar day in loc.
func New(p NewParams, savedAt time.Time, loc *time.Location) (*Contact, error) {
	if p.Identity.IsZero() {
		return nil, errs.New("contact identity is required")
	}
	return &Contact{
		id:             uuid.New(),
		identity:       p.Identity,
		day:            DayOf(savedAt, loc),
		instance:       p.Instance,
		product:        p.Product,
		orderReference: p.OrderReference,
		savedAt:        savedAt,
	}, nil
}

func Reconstruct(id uuid.UUID, key identity.Key, day, instance, product, orderReference string, savedAt time.Time) *Contact {
	return &Contact{
		id:             id,
		identity:       key,
		day:            day,
		instance:       instance,
		product:        product,
		orderReference: orderReference,
		savedAt:        savedAt,
	}
}

func DayOf(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DayLayout)
}

func (c *Contact) ID() uuid.UUID          { return c.id }
func (c *Contact) Identity() identity.Key { return c.identity }
func (c *Contact) Day() string            { return c.day }
func (c *Contact) Instance() string       { return c.instance }
func (c *Contact) Product() string        { return c.product }
func (c *Contact) OrderReference() string { return c.orderReference }
func (c *Contact) SavedAt() time.Time     { return c.savedAt }
func (c *Contact) DedupKey() string       { return c.identity.String() + "|" + c.day }
