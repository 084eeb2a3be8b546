package repository

import (
	"context"
	"errors"
	"time"

	"seminar-booking/internal/domain/seminar"
	"seminar-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SeminarRepository struct {
	db *pgxpool.Pool
}

func NewSeminarRepository(db *pgxpool.Pool) *SeminarRepository {
	return &SeminarRepository{db: db}
}

// FindByID reads the current row every call; the reservation coordinator
// depends on this being a fresh read, never a cached value.
func (r *SeminarRepository) FindByID(ctx context.Context, id uuid.UUID) (*seminar.Seminar, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, title, start_at, end_at, capacity, booked_count,
		       zoom_url, price_jpy, description, created_at, updated_at
		FROM seminars
		WHERE id = $1`, id)

	sem, err := scanSeminar(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("seminar not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find seminar by id", err)
	}
	return sem, nil
}

func (r *SeminarRepository) Create(ctx context.Context, s *seminar.Seminar) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO seminars (id, title, start_at, end_at, capacity, booked_count,
		                      zoom_url, price_jpy, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID(), s.Title(), s.StartAt(), s.EndAt(), s.Capacity(), s.BookedCount(),
		s.ZoomURL(), s.PriceJPY(), s.Description())
	if err != nil {
		return infra.WrapRepoErr("failed to create seminar", err)
	}
	return nil
}

// IncrementBookedCount bumps booked_count by exactly 1. The predicate
// booked_count < capacity is a second line of defence; correctness comes
// from the reservation gate serializing all increments.
func (r *SeminarRepository) IncrementBookedCount(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE seminars
		SET booked_count = booked_count + 1, updated_at = now()
		WHERE id = $1 AND booked_count < capacity`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment booked count", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booked count increment rejected", nil)
	}
	return nil
}

func scanSeminar(row pgx.Row) (*seminar.Seminar, error) {
	var (
		id                          uuid.UUID
		title, zoomURL, description string
		startAt, endAt              time.Time
		capacity, bookedCount       int32
		priceJPY                    int64
		createdAt, updatedAt        time.Time
	)
	err := row.Scan(&id, &title, &startAt, &endAt, &capacity, &bookedCount,
		&zoomURL, &priceJPY, &description, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	return seminar.ReconstructSeminar(id, title, startAt, endAt,
		capacity, bookedCount, zoomURL, priceJPY, description,
		createdAt, updatedAt)
}
