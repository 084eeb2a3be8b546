//go:build unit || e2e

package builder

import (
	"time"

	dombooking "seminar-booking/internal/domain/booking"
	reqdto "seminar-booking/internal/handler/dto/request"
	"seminar-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	SeminarID     uuid.UUID
	Name          string
	Email         string
	DateOfBirth   string
	Status        dombooking.Status
	Token         string
	SquareOrderID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:          uuid.New(),
		SeminarID:   uuid.New(),
		Name:        "山田太郎",
		Email:       "taro@example.com",
		DateOfBirth: "1990-04-01",
		Status:      dombooking.StatusPending,
		Token:       "test-booking-token-0123456789abcdef",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *BookingBuilder) WithSeminarID(id uuid.UUID) *BookingBuilder {
	b.SeminarID = id
	return b
}

func (b *BookingBuilder) WithName(name string) *BookingBuilder {
	b.Name = name
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithDateOfBirth(dob string) *BookingBuilder {
	b.DateOfBirth = dob
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithToken(token string) *BookingBuilder {
	b.Token = token
	return b
}

func (b *BookingBuilder) WithOrderID(orderID string) *BookingBuilder {
	b.SquareOrderID = &orderID
	return b
}

func (b *BookingBuilder) BuildAttendee() (dombooking.Attendee, error) {
	return dombooking.NewAttendee(b.Name, b.Email, b.DateOfBirth)
}

// BuildDomain runs the creation path: new PENDING booking with a fresh ID.
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	attendee, err := b.BuildAttendee()
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.SeminarID, attendee, b.Token)
}

// BuildReconstructed rebuilds the entity as the repository would from a row.
func (b *BookingBuilder) BuildReconstructed() *dombooking.Booking {
	attendee := dombooking.ReconstructAttendee(b.Name, b.Email, b.DateOfBirth)
	return dombooking.ReconstructBooking(b.ID, b.SeminarID, attendee, b.Status,
		b.Token, b.SquareOrderID, b.CreatedAt, b.UpdatedAt)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		SeminarID:   b.SeminarID.String(),
		Name:        b.Name,
		Email:       b.Email,
		DateOfBirth: b.DateOfBirth,
	}
}

func (b *BookingBuilder) BuildMyPageView() *queries.MyPageView {
	return &queries.MyPageView{
		BookingID:    b.ID,
		SeminarTitle: "Go実践入門セミナー",
		StartAt:      time.Now().Add(24 * time.Hour),
		EndAt:        time.Now().Add(26 * time.Hour),
		Name:         b.Name,
		Email:        b.Email,
		DateOfBirth:  b.DateOfBirth,
		Status:       b.Status.String(),
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:            b.ID,
		SeminarID:     b.SeminarID,
		Name:          b.Name,
		Email:         b.Email,
		Status:        b.Status.String(),
		SquareOrderID: b.SquareOrderID,
		CreatedAt:     b.CreatedAt,
	}
}
