package seminar

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTitle    = errors.New("title must not be empty")
	ErrInvalidSchedule = errors.New("start time must be before end time")
	ErrInvalidCapacity = errors.New("capacity cannot be negative")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrOverbooked      = errors.New("booked count exceeds capacity")
)

// Seminar is a bookable event. booked_count is mutated only through the
// reservation path; it never decreases (no cancellation flow).
type Seminar struct {
	id          uuid.UUID
	title       string
	startAt     time.Time
	endAt       time.Time
	capacity    int32
	bookedCount int32
	zoomURL     string
	priceJPY    int64
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSeminar(title string, startAt, endAt time.Time, capacity int32, zoomURL string, priceJPY int64, description string) (*Seminar, error) {
	if title == "" {
		return nil, ErrInvalidTitle
	}
	if !startAt.Before(endAt) {
		return nil, ErrInvalidSchedule
	}
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if priceJPY < 0 {
		return nil, ErrNegativePrice
	}

	return &Seminar{
		id:          uuid.New(),
		title:       title,
		startAt:     startAt,
		endAt:       endAt,
		capacity:    capacity,
		bookedCount: 0,
		zoomURL:     zoomURL,
		priceJPY:    priceJPY,
		description: description,
	}, nil
}

func ReconstructSeminar(
	id uuid.UUID,
	title string,
	startAt, endAt time.Time,
	capacity, bookedCount int32,
	zoomURL string,
	priceJPY int64,
	description string,
	createdAt, updatedAt time.Time,
) (*Seminar, error) {
	if bookedCount > capacity {
		return nil, ErrOverbooked
	}
	return &Seminar{
		id:          id,
		title:       title,
		startAt:     startAt,
		endAt:       endAt,
		capacity:    capacity,
		bookedCount: bookedCount,
		zoomURL:     zoomURL,
		priceJPY:    priceJPY,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *Seminar) Remaining() int32 {
	return s.capacity - s.bookedCount
}

func (s *Seminar) IsFull() bool {
	return s.bookedCount >= s.capacity
}

func (s *Seminar) HasEnded(now time.Time) bool {
	return now.After(s.endAt)
}

func (s *Seminar) ID() uuid.UUID       { return s.id }
func (s *Seminar) Title() string       { return s.title }
func (s *Seminar) StartAt() time.Time  { return s.startAt }
func (s *Seminar) EndAt() time.Time    { return s.endAt }
func (s *Seminar) Capacity() int32     { return s.capacity }
func (s *Seminar) BookedCount() int32  { return s.bookedCount }
func (s *Seminar) ZoomURL() string     { return s.zoomURL }
func (s *Seminar) PriceJPY() int64     { return s.priceJPY }
func (s *Seminar) Description() string { return s.description }
func (s *Seminar) CreatedAt() time.Time { return s.createdAt }
func (s *Seminar) UpdatedAt() time.Time { return s.updatedAt }
