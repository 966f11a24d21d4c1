package pgconv

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// DayLayout matches the DATE text representation.
const DayLayout = "2006-01-02"

var ErrInvalidDay = errors.New("invalid day, expected YYYY-MM-DD")

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// OptionalTimeToPgtype maps the zero time to NULL.
func OptionalTimeToPgtype(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// TimeFromPgtype maps NULL to the zero time.
func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	if !pt.Valid {
		return time.Time{}
	}
	return pt.Time
}

func DayToPgtype(day string) (pgtype.Date, error) {
	t, err := time.Parse(DayLayout, day)
	if err != nil {
		return pgtype.Date{}, ErrInvalidDay
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}

func DayFromPgtype(pd pgtype.Date) string {
	if !pd.Valid {
		return ""
	}
	return pd.Time.Format(DayLayout)
}

func OptionalStringToPgtype(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

func StringFromPgtype(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
