package queries

//go:generate mockgen -source=contacts.go -destination=../../../tests/mock/queries/contacts_mock.go -package=queriesmock

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"pix-funnel/internal/domain/contact"
	"pix-funnel/internal/pkg/clock"
	"pix-funnel/internal/pkg/errs"
	"pix-funnel/internal/usecase/shared"
)

// ExportHeader is the first row of a contact export.
var ExportHeader = []string{"telefone", "instancia", "observacoes"}

type DayRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type InstanceCount struct {
	Instance string `json:"instance"`
	Count    int64  `json:"count"`
}

type ContactStatsView struct {
	Range      DayRange        `json:"range"`
	Total      int64           `json:"total"`
	ByInstance []InstanceCount `json:"by_instance"`
}

type ContactQueries interface {
	ContactStats(ctx context.Context, from, to string) (*ContactStatsView, error)
	ExportContacts(ctx context.Context, from, to string, w io.Writer) (int, error)
	// ResolveRange fills empty bounds with the current business day.
	ResolveRange(from, to string) (DayRange, error)
}

type contactQueriesImpl struct {
	repo  shared.ContactRepository
	clock clock.Clock
	loc   *time.Location
}

func NewContactQueries(repo shared.ContactRepository, clk clock.Clock, loc *time.Location) ContactQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &contactQueriesImpl{repo: repo, clock: clk, loc: loc}
}

func (q *contactQueriesImpl) ResolveRange(from, to string) (DayRange, error) {
	today := contact.DayOf(q.clock.Now(), q.loc)
	r := DayRange{From: strings.TrimSpace(from), To: strings.TrimSpace(to)}
	if r.From == "" {
		r.From = today
	}
	if r.To == "" {
		r.To = today
	}
	for _, d := range []string{r.From, r.To} {
		if _, err := time.ParseInLocation(contact.DayLayout, d, q.loc); err != nil {
			return DayRange{}, errs.Wrap(ErrInvalidDay, d)
		}
	}
	if r.From > r.To {
		return DayRange{}, ErrInvalidRange
	}
	return r, nil
}

func (q *contactQueriesImpl) ContactStats(ctx context.Context, from, to string) (*ContactStatsView, error) {
	r, err := q.ResolveRange(from, to)
	if err != nil {
		return nil, err
	}
	counts, err := q.repo.CountByInstance(ctx, r.From, r.To)
	if err != nil {
		return nil, err
	}

	view := &ContactStatsView{Range: r, ByInstance: make([]InstanceCount, 0, len(counts))}
	for instance, n := range counts {
		view.ByInstance = append(view.ByInstance, InstanceCount{Instance: instance, Count: n})
		view.Total += n
	}
	sort.Slice(view.ByInstance, func(i, j int) bool {
		if view.ByInstance[i].Count == view.ByInstance[j].Count {
			return view.ByInstance[i].Instance < view.ByInstance[j].Instance
		}
		return view.ByInstance[i].Count > view.ByInstance[j].Count
	})
	return view, nil
}

// ExportContacts writes the contacts of the range as CSV and returns the
// number of data rows written.
func (q *contactQueriesImpl) ExportContacts(ctx context.Context, from, to string, w io.Writer) (int, error) {
	r, err := q.ResolveRange(from, to)
	if err != nil {
		return 0, err
	}
	list, err := q.repo.List(ctx, r.From, r.To)
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return 0, errs.Wrap(err, "failed to write export header")
	}
	for _, c := range list {
		if err := cw.Write([]string{c.Identity().String(), c.Instance(), notes(c)}); err != nil {
			return 0, errs.Wrap(err, "failed to write export row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, errs.Wrap(err, "failed to flush export")
	}
	return len(list), nil
}

func notes(c *contact.Contact) string {
	parts := []string{"dia " + c.Day()}
	if c.Product() != "" {
		parts = append(parts, "produto "+c.Product())
	}
	if c.OrderReference() != "" {
		parts = append(parts, fmt.Sprintf("pedido %s", c.OrderReference()))
	}
	return strings.Join(parts, "; ")
}
