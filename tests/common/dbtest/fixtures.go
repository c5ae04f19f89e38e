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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestExperience(t *testing.T, db DBLike, title string, pricePerPerson string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO experiences (title, location, description, price_per_person, image_url)
		 VALUES ($1, 'Test Location', 'Test description', $2::numeric, 'https://example.com/image.jpg')
		 RETURNING id`,
		title, pricePerPerson).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestSlot(t *testing.T, db DBLike, experienceID int64, slotID, date, timeslot string, capacity int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO slots (experience_id, slot_id, date, timeslot, capacity) VALUES ($1, $2, $3::date, $4, $5)`,
		experienceID, slotID, date, timeslot, capacity)
	require.NoError(t, err)
}

func SlotCapacity(t *testing.T, db DBLike, experienceID int64, slotID string) int {
	t.Helper()

	var capacity int
	err := db.QueryRow(context.Background(),
		"SELECT capacity FROM slots WHERE experience_id = $1 AND slot_id = $2",
		experienceID, slotID).Scan(&capacity)
	require.NoError(t, err)
	return capacity
}

func CountBookings(t *testing.T, db DBLike, experienceID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM bookings WHERE experience_id = $1", experienceID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and restarts identities
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
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
