package commands

import (
	"context"
	"log/slog"

	"seminar-booking/internal/infra"
	"seminar-booking/internal/pkg/errs"
)

var (
	ErrWebhookSignatureInvalid = errs.New("webhook signature verification failed")
	ErrWebhookPayloadMalformed = errs.New("webhook payload malformed")
)

type ReconcileCommands interface {
	// OnPaymentEvent consumes one inbound webhook delivery. Only signature
	// and parse failures surface as errors so the gateway retries them;
	// every condition the reconciler can safely ignore is a no-op.
	OnPaymentEvent(ctx context.Context, rawBody []byte, signature string) error
}

type reconcileUseCaseImpl struct {
	seminarRepo SeminarRepository
	bookingRepo BookingRepository
	gateway     PaymentGateway
	notifier    Notifier
}

func NewReconcileUseCase(
	seminarRepo SeminarRepository,
	bookingRepo BookingRepository,
	gateway PaymentGateway,
	notifier Notifier,
) ReconcileCommands {
	return &reconcileUseCaseImpl{
		seminarRepo: seminarRepo,
		bookingRepo: bookingRepo,
		gateway:     gateway,
		notifier:    notifier,
	}
}

// Reconciliation never touches capacity or booked_count, so it runs
// without the reservation gate; the conditional MarkPaid write is the
// only serialization it needs.
func (r *reconcileUseCaseImpl) OnPaymentEvent(ctx context.Context, rawBody []byte, signature string) error {
	if !r.gateway.VerifyWebhookSignature(rawBody, signature) {
		return ErrWebhookSignatureInvalid
	}

	event, err := r.gateway.DecodeEvent(rawBody)
	if err != nil {
		return errs.Mark(err, ErrWebhookPayloadMalformed)
	}

	if !event.IsSettledPayment() {
		slog.Debug("ignoring payment event", "type", event.Type, "status", event.SettlementStatus)
		return nil
	}

	bookingEntity, err := r.bookingRepo.FindByOrderID(ctx, event.OrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// 重複配信・順序逆転、またはオーダーID未紐付けの予約。
			slog.Info("no booking matches payment order, ignoring", "order_id", event.OrderID)
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !bookingEntity.IsPending() {
		// Redelivery after the transition: no second confirmation mail.
		slog.Info("booking already settled, ignoring redelivery",
			"booking_id", bookingEntity.ID(), "status", bookingEntity.Status())
		return nil
	}

	transitioned, err := r.bookingRepo.MarkPaid(ctx, bookingEntity.ID())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !transitioned {
		// A concurrent delivery won the conditional write.
		return nil
	}

	sem, err := r.seminarRepo.FindByID(ctx, bookingEntity.SeminarID())
	if err != nil {
		slog.Error("booking paid but seminar lookup failed, confirmation mail skipped",
			"booking_id", bookingEntity.ID(), "error", err.Error())
		return nil
	}

	if err := r.notifier.SendConfirmation(
		ctx,
		bookingEntity.Attendee().Email(),
		sem.Title(),
		sem.ZoomURL(),
		bookingEntity.Token(),
	); err != nil {
		slog.Warn("failed to send confirmation mail",
			"booking_id", bookingEntity.ID(), "error", err.Error())
	}

	return nil
}
