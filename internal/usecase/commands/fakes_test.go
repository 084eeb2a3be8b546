//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"sync"

	"seminar-booking/internal/domain/booking"
	"seminar-booking/internal/domain/seminar"
	"seminar-booking/internal/infra"
	"seminar-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// In-memory port implementations. State is guarded by a mutex so the
// concurrency tests exercise the reservation gate, not data races here.

type fakeSeminarRepo struct {
	mu       sync.Mutex
	seminars map[uuid.UUID]*seminar.Seminar
	findErr  error
}

func newFakeSeminarRepo() *fakeSeminarRepo {
	return &fakeSeminarRepo{seminars: make(map[uuid.UUID]*seminar.Seminar)}
}

func (f *fakeSeminarRepo) put(s *seminar.Seminar) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seminars[s.ID()] = s
}

func (f *fakeSeminarRepo) FindByID(_ context.Context, id uuid.UUID) (*seminar.Seminar, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	s, ok := f.seminars[id]
	if !ok {
		return nil, infra.WrapRepoErr("seminar not found", nil, infra.KindNotFound)
	}
	return s, nil
}

func (f *fakeSeminarRepo) Create(_ context.Context, s *seminar.Seminar) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seminars[s.ID()] = s
	return nil
}

func (f *fakeSeminarRepo) IncrementBookedCount(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.seminars[id]
	if !ok {
		return infra.WrapRepoErr("seminar not found", nil, infra.KindNotFound)
	}
	if s.BookedCount() >= s.Capacity() {
		return infra.WrapRepoErr("booked count increment rejected", nil)
	}
	updated, err := seminar.ReconstructSeminar(s.ID(), s.Title(), s.StartAt(), s.EndAt(),
		s.Capacity(), s.BookedCount()+1, s.ZoomURL(), s.PriceJPY(), s.Description(),
		s.CreatedAt(), s.UpdatedAt())
	if err != nil {
		return err
	}
	f.seminars[id] = updated
	return nil
}

type fakeBookingRepo struct {
	mu        sync.Mutex
	bookings  map[uuid.UUID]*booking.Booking
	byOrderID map[string]uuid.UUID
	createErr error
	orderErr  error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings:  make(map[uuid.UUID]*booking.Booking),
		byOrderID: make(map[string]uuid.UUID),
	}
}

func (f *fakeBookingRepo) put(b *booking.Booking) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings[b.ID()] = b
	if b.SquareOrderID() != nil {
		f.byOrderID[*b.SquareOrderID()] = b.ID()
	}
}

func (f *fakeBookingRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

func (f *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.bookings[b.ID()] = b
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return b, nil
}

func (f *fakeBookingRepo) FindByOrderID(_ context.Context, orderID string) (*booking.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byOrderID[orderID]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) UpdateOrderID(_ context.Context, id uuid.UUID, orderID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.orderErr != nil {
		return f.orderErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	updated := booking.ReconstructBooking(b.ID(), b.SeminarID(), b.Attendee(), b.Status(),
		b.Token(), &orderID, b.CreatedAt(), b.UpdatedAt())
	f.bookings[id] = updated
	f.byOrderID[orderID] = id
	return nil
}

func (f *fakeBookingRepo) MarkPaid(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return false, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if !b.IsPending() {
		return false, nil
	}
	updated := booking.ReconstructBooking(b.ID(), b.SeminarID(), b.Attendee(), booking.StatusPaid,
		b.Token(), b.SquareOrderID(), b.CreatedAt(), b.UpdatedAt())
	f.bookings[id] = updated
	return true, nil
}

type fakeGateway struct {
	mu          sync.Mutex
	linkCalls   int
	linkErr     error
	validSig    bool
	decodeEvent *commands.PaymentEvent
	decodeErr   error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{validSig: true}
}

func (f *fakeGateway) CreatePaymentLink(_ context.Context, req commands.PaymentLinkRequest) (*commands.PaymentLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.linkCalls++
	if f.linkErr != nil {
		return nil, f.linkErr
	}
	return &commands.PaymentLink{
		URL:     fmt.Sprintf("https://pay.example.com/%s", req.BookingID),
		OrderID: fmt.Sprintf("order-%s", req.BookingID),
	}, nil
}

func (f *fakeGateway) VerifyWebhookSignature(_ []byte, _ string) bool {
	return f.validSig
}

func (f *fakeGateway) DecodeEvent(_ []byte) (*commands.PaymentEvent, error) {
	if f.decodeErr != nil {
		return nil, f.decodeErr
	}
	return f.decodeEvent, nil
}

func (f *fakeGateway) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.linkCalls
}

type sentMail struct {
	kind    string // "link" or "confirmation"
	toEmail string
	zoomURL string
}

type fakeNotifier struct {
	mu      sync.Mutex
	sent    []sentMail
	sendErr error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{}
}

func (f *fakeNotifier) SendPaymentLink(_ context.Context, toEmail, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{kind: "link", toEmail: toEmail})
	return nil
}

func (f *fakeNotifier) SendConfirmation(_ context.Context, toEmail, _, zoomURL, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{kind: "confirmation", toEmail: toEmail, zoomURL: zoomURL})
	return nil
}

func (f *fakeNotifier) sentMails() []sentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]sentMail, len(f.sent))
	copy(out, f.sent)
	return out
}
