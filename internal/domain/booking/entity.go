package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyToken       = errors.New("booking token must not be empty")
	ErrNotPending       = errors.New("booking is not pending")
	ErrOrderIDAlreadySet = errors.New("payment order id already set")
)

// Booking is one claimed seat. The only modeled transition is
// PENDING -> PAID, driven by payment reconciliation.
type Booking struct {
	id            uuid.UUID
	seminarID     uuid.UUID
	attendee      Attendee
	status        Status
	token         string
	squareOrderID *string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(seminarID uuid.UUID, attendee Attendee, token string) (*Booking, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}
	return &Booking{
		id:        uuid.New(),
		seminarID: seminarID,
		attendee:  attendee,
		status:    StatusPending,
		token:     token,
	}, nil
}

func ReconstructBooking(
	id, seminarID uuid.UUID,
	attendee Attendee,
	status Status,
	token string,
	squareOrderID *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		seminarID:     seminarID,
		attendee:      attendee,
		status:        status,
		token:         token,
		squareOrderID: squareOrderID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// MarkPaid performs the one-way PENDING -> PAID transition.
func (b *Booking) MarkPaid() error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusPaid
	return nil
}

// AttachOrderID links the booking to the payment order created for it.
// The order id is the only field reconciliation matches on.
func (b *Booking) AttachOrderID(orderID string) error {
	if b.squareOrderID != nil {
		return ErrOrderIDAlreadySet
	}
	b.squareOrderID = &orderID
	return nil
}

func (b *Booking) IsPaid() bool    { return b.status == StatusPaid }
func (b *Booking) IsPending() bool { return b.status == StatusPending }

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) SeminarID() uuid.UUID   { return b.seminarID }
func (b *Booking) Attendee() Attendee     { return b.attendee }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) Token() string          { return b.token }
func (b *Booking) SquareOrderID() *string { return b.squareOrderID }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
