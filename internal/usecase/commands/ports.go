package commands

import (
	"context"

	"seminar-booking/internal/domain/booking"
	"seminar-booking/internal/domain/seminar"

	"github.com/google/uuid"
)

// Write-side ports. The core has no compile-time dependency on any
// particular storage, payment provider, or mail transport.

type SeminarRepository interface {
	// FindByID must hit the store every call; the coordinator relies on a
	// fresh read inside the reservation gate.
	FindByID(ctx context.Context, id uuid.UUID) (*seminar.Seminar, error)
	Create(ctx context.Context, s *seminar.Seminar) error
	IncrementBookedCount(ctx context.Context, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByOrderID(ctx context.Context, orderID string) (*booking.Booking, error)
	UpdateOrderID(ctx context.Context, id uuid.UUID, orderID string) error
	// MarkPaid transitions PENDING -> PAID as a single conditional write.
	// Returns false when the booking was not PENDING anymore.
	MarkPaid(ctx context.Context, id uuid.UUID) (bool, error)
}

type PaymentLinkRequest struct {
	SeminarID  uuid.UUID
	BookingID  uuid.UUID
	Title      string
	AmountJPY  int64
	BuyerEmail string
}

type PaymentLink struct {
	URL     string
	OrderID string
}

// Event field values follow the gateway's webhook vocabulary.
const (
	EventPaymentUpdated = "payment.updated"
	SettlementCompleted = "COMPLETED"
)

type PaymentEvent struct {
	Type             string
	OrderID          string
	SettlementStatus string
}

func (e PaymentEvent) IsSettledPayment() bool {
	return e.Type == EventPaymentUpdated && e.SettlementStatus == SettlementCompleted
}

type PaymentGateway interface {
	CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (*PaymentLink, error)
	VerifyWebhookSignature(body []byte, signature string) bool
	DecodeEvent(body []byte) (*PaymentEvent, error)
}

type Notifier interface {
	SendPaymentLink(ctx context.Context, toEmail, seminarTitle, paymentLink string) error
	SendConfirmation(ctx context.Context, toEmail, seminarTitle, zoomURL, bookingToken string) error
}
