package readstore

import (
	"context"
	"errors"

	"seminar-booking/internal/domain/booking"
	"seminar-booking/internal/infra"
	"seminar-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindViewByToken(ctx context.Context, token string) (*queries.MyPageView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT b.id, s.title, s.start_at, s.end_at, s.zoom_url,
		       b.name, b.email, b.date_of_birth, b.status, b.created_at
		FROM bookings b
		JOIN seminars s ON s.id = b.seminar_id
		WHERE b.token = $1`, token)

	var (
		v       queries.MyPageView
		zoomURL string
	)
	err := row.Scan(&v.BookingID, &v.SeminarTitle, &v.StartAt, &v.EndAt, &zoomURL,
		&v.Name, &v.Email, &v.DateOfBirth, &v.Status, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found for token", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by token", err)
	}

	// 参加URLは支払い完了後のみ開示する
	if v.Status == booking.StatusPaid.String() {
		v.ZoomURL = zoomURL
	}

	return &v, nil
}

func (r *BookingReadStore) FindBySeminarID(ctx context.Context, seminarID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, seminar_id, name, email, status, square_order_id, created_at
		FROM bookings
		WHERE seminar_id = $1
		ORDER BY created_at`, seminarID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by seminar", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(&item.ID, &item.SeminarID, &item.Name, &item.Email,
			&item.Status, &item.SquareOrderID, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return items, nil
}
