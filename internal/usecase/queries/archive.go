package queries

//go:generate mockgen -source=archive.go -destination=../../../tests/mock/queries/archive_mock.go -package=queriesmock

import (
	"bytes"
	"context"
	"fmt"

	"pix-funnel/internal/pkg/errs"
)

const exportContentType = "text/csv; charset=utf-8"

// ObjectStore keeps contact exports outside the database.
type ObjectStore interface {
	Put(ctx context.Context, name string, body []byte, contentType string) (string, error)
}

type ArchiveView struct {
	Range DayRange `json:"range"`
	Key   string   `json:"key"`
	Rows  int      `json:"rows"`
}

type ContactArchiver interface {
	Archive(ctx context.Context, from, to string) (*ArchiveView, error)
}

type contactArchiverImpl struct {
	contacts ContactQueries
	store    ObjectStore
}

// NewContactArchiver returns an archiver that answers ErrArchiveDisabled
// when store is nil.
func NewContactArchiver(contacts ContactQueries, store ObjectStore) ContactArchiver {
	return &contactArchiverImpl{contacts: contacts, store: store}
}

// ExportFileName is the attachment and object name of a contact export.
func ExportFileName(r DayRange) string {
	return fmt.Sprintf("contatos_%s_%s.csv", r.From, r.To)
}

func (a *contactArchiverImpl) Archive(ctx context.Context, from, to string) (*ArchiveView, error) {
	if a.store == nil {
		return nil, ErrArchiveDisabled
	}
	r, err := a.contacts.ResolveRange(from, to)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	rows, err := a.contacts.ExportContacts(ctx, r.From, r.To, &buf)
	if err != nil {
		return nil, err
	}
	key, err := a.store.Put(ctx, ExportFileName(r), buf.Bytes(), exportContentType)
	if err != nil {
		return nil, errs.Wrap(err, "failed to archive contacts")
	}
	return &ArchiveView{Range: r, Key: key, Rows: rows}, nil
}
