package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pix-funnel/internal/domain/contact"
	"pix-funnel/internal/domain/identity"
	"pix-funnel/internal/pkg/clock"
	"pix-funnel/internal/usecase/shared"
)

type ContactInput struct {
	Identity       identity.Key
	Instance       string
	Product        string
	OrderReference string
	Message        string
}

// ContactRecorderService keeps one contact per identity per business day.
type ContactRecorderService struct {
	repo    shared.ContactRepository
	clock   clock.Clock
	loc     *time.Location
	slogger *slog.Logger

	mu   sync.Mutex
	day  string
	seen map[identity.Key]struct{}
}

func NewContactRecorder(repo shared.ContactRepository, clk clock.Clock, loc *time.Location, slogger *slog.Logger) *ContactRecorderService {
	return &ContactRecorderService{
		repo:    repo,
		clock:   clk,
		loc:     loc,
		slogger: slogger,
		seen:    make(map[identity.Key]struct{}),
	}
}

// Record reports whether a new contact was stored. Opt-outs, short messages
// and repeats within the day are not errors.
func (r *ContactRecorderService) Record(ctx context.Context, in ContactInput) (bool, error) {
	if err := contact.Eligible(in.Message); err != nil {
		r.slogger.Debug("contact skipped",
			slog.String("identity", in.Identity.String()),
			slog.String("reason", err.Error()))
		return false, nil
	}

	c, err := contact.New(contact.NewParams{
		Identity:       in.Identity,
		Instance:       in.Instance,
		Product:        in.Product,
		OrderReference: in.OrderReference,
	}, r.clock.Now(), r.loc)
	if err != nil {
		return false, err
	}

	if !r.claim(c) {
		return false, nil
	}

	saved, err := r.repo.TryInsert(ctx, c)
	if err != nil {
		r.release(c)
		return false, err
	}
	if saved {
		r.slogger.Info("contact recorded",
			slog.String("identity", c.Identity().String()),
			slog.String("instance", c.Instance()),
			slog.String("day", c.Day()))
	}
	return saved, nil
}

func (r *ContactRecorderService) claim(c *contact.Contact) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.day != c.Day() {
		r.day = c.Day()
		r.seen = make(map[identity.Key]struct{})
	}
	if _, ok := r.seen[c.Identity()]; ok {
		return false
	}
	r.seen[c.Identity()] = struct{}{}
	return true
}

func (r *ContactRecorderService) release(c *contact.Contact) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.day == c.Day() {
		delete(r.seen, c.Identity())
	}
}
