package repository

import (
	"context"
	"errors"
	"time"

	"seminar-booking/internal/domain/booking"
	"seminar-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	attendee := b.Attendee()
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (id, seminar_id, name, email, date_of_birth, status, token, square_order_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID(), b.SeminarID(), attendee.Name(), attendee.Email(), attendee.DateOfBirth(),
		b.Status().String(), b.Token(), b.SquareOrderID())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeUniqueViolation:
				return infra.WrapRepoErr("booking already exists", err, infra.KindDuplicateKey)
			case pgErrCodeForeignKeyViolation:
				return infra.WrapRepoErr("seminar does not exist", err, infra.KindForeignKeyViolated)
			}
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, selectBooking+` WHERE id = $1`, id)
	return r.scanOne(row, "failed to find booking by id")
}

func (r *BookingRepository) FindByOrderID(ctx context.Context, orderID string) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, selectBooking+` WHERE square_order_id = $1`, orderID)
	return r.scanOne(row, "failed to find booking by order id")
}

func (r *BookingRepository) UpdateOrderID(ctx context.Context, id uuid.UUID, orderID string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings SET square_order_id = $2, updated_at = now()
		WHERE id = $1`, id, orderID)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking order id", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// MarkPaid is conditional on the current status so that redelivered
// completion events cannot transition a booking twice.
func (r *BookingRepository) MarkPaid(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings SET status = $2, updated_at = now()
		WHERE id = $1 AND status = $3`,
		id, booking.StatusPaid.String(), booking.StatusPending.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark booking paid", err)
	}
	return tag.RowsAffected() > 0, nil
}

const selectBooking = `
	SELECT id, seminar_id, name, email, date_of_birth, status, token, square_order_id,
	       created_at, updated_at
	FROM bookings`

func (r *BookingRepository) scanOne(row pgx.Row, msg string) (*booking.Booking, error) {
	var (
		id, seminarID        uuid.UUID
		name, email, dob     string
		statusStr, token     string
		squareOrderID        *string
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &seminarID, &name, &email, &dob, &statusStr, &token,
		&squareOrderID, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(msg, err)
	}

	status, err := booking.NewStatus(statusStr)
	if err != nil {
		return nil, infra.WrapRepoErr("booking row has invalid status", err)
	}

	attendee := booking.ReconstructAttendee(name, email, dob)
	return booking.ReconstructBooking(id, seminarID, attendee, status, token,
		squareOrderID, createdAt, updatedAt), nil
}
