package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type SeminarView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Capacity    int32     `json:"capacity"`
	Remaining   int32     `json:"remaining"`
	PriceJPY    int64     `json:"price_jpy"`
	Description string    `json:"description,omitempty"`
}

// MyPageView joins a booking with its seminar for the token status page.
// ZoomURL is populated only for PAID bookings.
type MyPageView struct {
	BookingID    uuid.UUID `json:"booking_id"`
	SeminarTitle string    `json:"seminar_title"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	DateOfBirth  string    `json:"date_of_birth"`
	Status       string    `json:"status"`
	ZoomURL      string    `json:"zoom_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	SeminarID     uuid.UUID `json:"seminar_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Status        string    `json:"status"`
	SquareOrderID *string   `json:"square_order_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
