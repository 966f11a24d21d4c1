//go:build unit || e2e

package dbtest

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is the minimal surface the fixtures need.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var funnelTables = []string{
	"conversations",
	"instance_affinity",
	"contacts",
	"payment_events",
	"dispatch_log",
}

// ResetDB empties every funnel table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(funnelTables, ", ")+" CASCADE;")
	return err
}

// CountRows counts rows of table matching where (without the WHERE keyword).
func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	q := "SELECT count(*) FROM " + table
	if where != "" {
		q += " WHERE " + where
	}
	var n int
	err := db.QueryRow(context.Background(), q, args...).Scan(&n)
	require.NoError(t, err)
	return n
}

// ConversationStatus reads the mirrored status of identity, or "" if absent.
func ConversationStatus(t *testing.T, db DBLike, identity string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM conversations WHERE identity = $1", identity).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return ""
	}
	require.NoError(t, err)
	return status
}
