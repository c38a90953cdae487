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

	"booking-registry/internal/domain/booking"
	"booking-registry/internal/infra/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CountEvents returns how many events are stored for a booking.
func CountEvents(t *testing.T, db DBLike, id booking.ID, eventType booking.EventType) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM booking_events WHERE booking_id = $1 AND type = $2",
		int64(id), string(eventType)).Scan(&n)
	require.NoError(t, err)
	return n
}

// BookingStatus reads the stored status column directly.
func BookingStatus(t *testing.T, db DBLike, id booking.ID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", int64(id)).Scan(&status)
	require.NoError(t, err)
	return status
}

// SeedReferenceData writes the registry settings row every test starts from.
func SeedReferenceData(pool *pgxpool.Pool, settings booking.Settings) error {
	return repository.NewSettingsRepository(pool).EnsureSeeded(context.Background(), settings)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool, settings booking.Settings) error {
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool, settings)
}
