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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultHotelID is reseeded after every reset: 12% GST, 5% service tax,
// base occupancy 2.
var DefaultHotelID = uuid.MustParse("6f1c1c62-3b1e-4f5e-9a51-6a3d1f0c2a10")

type HotelFixture struct {
	GSTRate        string
	ServiceTaxRate string
	BaseOccupancy  *int
	Holidays       []time.Time
}

func CreateTestHotel(t *testing.T, db DBLike, f HotelFixture) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	holidays := f.Holidays
	if holidays == nil {
		holidays = []time.Time{}
	}
	_, err := db.Exec(context.Background(),
		`INSERT INTO hotels (id, owner_id, name, gst_rate, service_tax_rate, base_occupancy, holidays)
		 VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6, $7)`,
		hotelID, uuid.New(), "Hotel "+hotelID.String()[:8], f.GSTRate, f.ServiceTaxRate, f.BaseOccupancy, holidays)
	require.NoError(t, err)
	return hotelID
}

func CreateTestRoom(t *testing.T, db DBLike, hotelID uuid.UUID, number string, maxOccupancy int, basePrice int64) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO rooms (id, hotel_id, room_number, room_type, adults, max_occupancy, base_price)
		 VALUES ($1, $2, $3, 'deluxe', 1, $4, $5)`,
		roomID, hotelID, number, maxOccupancy, basePrice)
	require.NoError(t, err)
	return roomID
}

// CreateTestOffer inserts an active percentage offer valid for the next year.
func CreateTestOffer(t *testing.T, db DBLike, hotelID uuid.UUID, code string, percent int, totalBookings *int) uuid.UUID {
	t.Helper()

	offerID := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(),
		`INSERT INTO offers (id, hotel_id, code, title, discount_type, discount_value,
		                     start_date, end_date, total_bookings, status, approved_at)
		 VALUES ($1, $2, $3, $4, 'percentage', $5, $6, $7, $8, 'active', $9)`,
		offerID, hotelID, code, code+" offer", percent, now.AddDate(0, 0, -1), now.AddDate(1, 0, 0), totalBookings, now)
	require.NoError(t, err)
	return offerID
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO hotels (id, owner_id, name, gst_rate, service_tax_rate, base_occupancy)
		VALUES ($1, gen_random_uuid(), 'Default Hotel', 12, 5, 2)
		ON CONFLICT (id) DO NOTHING;
	`, DefaultHotelID)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
