//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx, so fixtures can be written inside a test transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestResource(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	resourceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO resources (id, name, is_active) VALUES ($1, $2, true)", resourceID, name)
	require.NoError(t, err)

	return resourceID
}

// fractions must sum to 1 for the resource to accept bookings
func AddTestStakeholder(t *testing.T, db DBLike, resourceID, userID uuid.UUID, fraction float64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO stakeholders (resource_id, user_id, ownership_fraction) VALUES ($1, $2, $3)",
		resourceID, userID, fraction)
	require.NoError(t, err)
}

func SetTestUsage(t *testing.T, db DBLike, resourceID, userID uuid.UUID, periodStart time.Time, hours float64) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO stakeholder_usage (resource_id, user_id, period_start, hours, booking_count)
		VALUES ($1, $2, $3, $4, 1)
		ON CONFLICT (resource_id, user_id, period_start) DO UPDATE SET hours = EXCLUDED.hours`,
		resourceID, userID, periodStart, hours)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
