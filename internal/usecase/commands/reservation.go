package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"seminar-booking/internal/domain/booking"
	"seminar-booking/internal/infra"
	"seminar-booking/internal/pkg/clock"
	"seminar-booking/internal/pkg/errs"
	"seminar-booking/internal/pkg/gate"
	"seminar-booking/internal/pkg/token"

	"github.com/google/uuid"
)

var (
	ErrSeminarNotFound         = errs.New("seminar not found")
	ErrSeminarEnded            = errs.New("seminar has already ended")
	ErrSeminarFull             = errs.New("seminar is fully booked")
	ErrReservationBusy         = errs.New("reservation is busy, retry later")
	ErrPaymentGatewayFailed    = errs.New("payment link creation failed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ReserveResult struct {
	BookingID   uuid.UUID
	Token       string
	PaymentLink string
}

type ReservationCommands interface {
	Reserve(ctx context.Context, seminarID uuid.UUID, attendee booking.Attendee) (*ReserveResult, error)
}

type reservationUseCaseImpl struct {
	seminarRepo SeminarRepository
	bookingRepo BookingRepository
	gateway     PaymentGateway
	notifier    Notifier
	gate        *gate.Gate
	clock       clock.Clock
	lockWait    time.Duration
}

func NewReservationUseCase(
	seminarRepo SeminarRepository,
	bookingRepo BookingRepository,
	gateway PaymentGateway,
	notifier Notifier,
	g *gate.Gate,
	clk clock.Clock,
	lockWait time.Duration,
) ReservationCommands {
	return &reservationUseCaseImpl{
		seminarRepo: seminarRepo,
		bookingRepo: bookingRepo,
		gateway:     gateway,
		notifier:    notifier,
		gate:        g,
		clock:       clk,
		lockWait:    lockWait,
	}
}

// Reserve claims a seat under the process-wide reservation gate:
// fresh capacity read, append PENDING booking, increment booked_count,
// then request the payment link and mail it. booked_count is written only
// here, so the plain increment is safe while the gate serializes callers.
func (r *reservationUseCaseImpl) Reserve(
	ctx context.Context,
	seminarID uuid.UUID,
	attendee booking.Attendee,
) (*ReserveResult, error) {
	if err := r.gate.Acquire(ctx, r.lockWait); err != nil {
		if errors.Is(err, gate.ErrAcquireTimeout) {
			return nil, ErrReservationBusy
		}
		return nil, errs.Mark(err, ErrReservationBusy)
	}
	defer r.gate.Release()

	sem, err := r.seminarRepo.FindByID(ctx, seminarID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSeminarNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if sem.HasEnded(r.clock.Now()) {
		return nil, ErrSeminarEnded
	}

	if sem.IsFull() {
		return nil, ErrSeminarFull
	}

	bookingToken, err := token.NewBookingToken()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	bookingEntity, err := booking.NewBooking(sem.ID(), attendee, bookingToken)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := r.bookingRepo.Create(ctx, bookingEntity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := r.seminarRepo.IncrementBookedCount(ctx, sem.ID()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// 決済リンク作成に失敗しても予約行は残す（補償トランザクションなし）。
	// 管理者がリンクを再送して回復する運用。
	link, err := r.gateway.CreatePaymentLink(ctx, PaymentLinkRequest{
		SeminarID:  sem.ID(),
		BookingID:  bookingEntity.ID(),
		Title:      sem.Title(),
		AmountJPY:  sem.PriceJPY(),
		BuyerEmail: attendee.Email(),
	})
	if err != nil {
		slog.Error("payment link creation failed, booking kept PENDING",
			"booking_id", bookingEntity.ID(),
			"seminar_id", sem.ID(),
			"error", err.Error())
		return nil, errs.Mark(err, ErrPaymentGatewayFailed)
	}

	if err := r.bookingRepo.UpdateOrderID(ctx, bookingEntity.ID(), link.OrderID); err != nil {
		// Payment can still settle; reconciliation will miss the order id
		// until an admin resends the link.
		slog.Warn("failed to store payment order id",
			"booking_id", bookingEntity.ID(),
			"order_id", link.OrderID,
			"error", err.Error())
	}

	// メール失敗は致命的ではない。リンクは呼び出し元にも返る。
	if err := r.notifier.SendPaymentLink(ctx, attendee.Email(), sem.Title(), link.URL); err != nil {
		slog.Warn("failed to send payment link mail",
			"booking_id", bookingEntity.ID(),
			"error", err.Error())
	}

	return &ReserveResult{
		BookingID:   bookingEntity.ID(),
		Token:       bookingEntity.Token(),
		PaymentLink: link.URL,
	}, nil
}
