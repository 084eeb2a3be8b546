//go:build e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertSeminar writes a seminar row directly, bypassing the admin API.
func InsertSeminar(t *testing.T, pool *pgxpool.Pool, title string, capacity, bookedCount int32, priceJPY int64, zoomURL string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	start := time.Now().Add(24 * time.Hour)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO seminars (id, title, start_at, end_at, capacity, booked_count, zoom_url, price_jpy, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, '')`,
		id, title, start, start.Add(2*time.Hour), capacity, bookedCount, zoomURL, priceJPY)
	require.NoError(t, err)

	return id
}

// BookedCount reads the current booked_count of one seminar.
func BookedCount(t *testing.T, pool *pgxpool.Pool, seminarID uuid.UUID) int32 {
	t.Helper()

	var count int32
	err := pool.QueryRow(context.Background(),
		"SELECT booked_count FROM seminars WHERE id = $1", seminarID).Scan(&count)
	require.NoError(t, err)
	return count
}

// BookingStatus reads the current status of one booking.
func BookingStatus(t *testing.T, pool *pgxpool.Pool, bookingID uuid.UUID) string {
	t.Helper()

	var status string
	err := pool.QueryRow(context.Background(),
		"SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
}

// ResetDB truncates all mutable tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), "TRUNCATE bookings, seminars CASCADE")
	return err
}
