package commands

import (
	"context"
	"log/slog"
	"time"

	"seminar-booking/internal/domain/seminar"
	"seminar-booking/internal/infra"
	"seminar-booking/internal/pkg/errs"
	"seminar-booking/internal/pkg/jwt"
	"seminar-booking/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrInvalidAdminPassword = errs.New("invalid admin password")
	ErrBookingNotFound      = errs.New("booking not found")
	ErrBookingNotPending    = errs.New("booking is not pending payment")
)

type CreateSeminarCommand struct {
	Title       string
	StartAt     time.Time
	EndAt       time.Time
	Capacity    int32
	ZoomURL     string
	PriceJPY    int64
	Description string
}

type AdminCommands interface {
	Login(password string) (string, error)
	CreateSeminar(ctx context.Context, cmd CreateSeminarCommand) (uuid.UUID, error)
	// ResendPaymentLink is the remediation path for a PENDING booking whose
	// payment link creation failed during reservation.
	ResendPaymentLink(ctx context.Context, bookingID uuid.UUID) (string, error)
}

type adminUseCaseImpl struct {
	seminarRepo       SeminarRepository
	bookingRepo       BookingRepository
	gateway           PaymentGateway
	notifier          Notifier
	jwtService        *jwt.Service
	adminPasswordHash string
}

func NewAdminUseCase(
	seminarRepo SeminarRepository,
	bookingRepo BookingRepository,
	gateway PaymentGateway,
	notifier Notifier,
	jwtService *jwt.Service,
	adminPasswordHash string,
) AdminCommands {
	return &adminUseCaseImpl{
		seminarRepo:       seminarRepo,
		bookingRepo:       bookingRepo,
		gateway:           gateway,
		notifier:          notifier,
		jwtService:        jwtService,
		adminPasswordHash: adminPasswordHash,
	}
}

func (a *adminUseCaseImpl) Login(plainPassword string) (string, error) {
	if err := password.ComparePassword(a.adminPasswordHash, plainPassword); err != nil {
		return "", ErrInvalidAdminPassword
	}

	tokenString, err := a.jwtService.GenerateAdminToken()
	if err != nil {
		return "", errs.Wrap(err, "failed to issue admin token")
	}
	return tokenString, nil
}

func (a *adminUseCaseImpl) CreateSeminar(ctx context.Context, cmd CreateSeminarCommand) (uuid.UUID, error) {
	sem, err := seminar.NewSeminar(
		cmd.Title,
		cmd.StartAt,
		cmd.EndAt,
		cmd.Capacity,
		cmd.ZoomURL,
		cmd.PriceJPY,
		cmd.Description,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := a.seminarRepo.Create(ctx, sem); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return sem.ID(), nil
}

func (a *adminUseCaseImpl) ResendPaymentLink(ctx context.Context, bookingID uuid.UUID) (string, error) {
	bookingEntity, err := a.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrBookingNotFound
		}
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !bookingEntity.IsPending() {
		return "", ErrBookingNotPending
	}

	sem, err := a.seminarRepo.FindByID(ctx, bookingEntity.SeminarID())
	if err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	link, err := a.gateway.CreatePaymentLink(ctx, PaymentLinkRequest{
		SeminarID:  sem.ID(),
		BookingID:  bookingEntity.ID(),
		Title:      sem.Title(),
		AmountJPY:  sem.PriceJPY(),
		BuyerEmail: bookingEntity.Attendee().Email(),
	})
	if err != nil {
		return "", errs.Mark(err, ErrPaymentGatewayFailed)
	}

	// 旧リンクの注文IDは新しいリンクのもので置き換える。
	if err := a.bookingRepo.UpdateOrderID(ctx, bookingEntity.ID(), link.OrderID); err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := a.notifier.SendPaymentLink(ctx, bookingEntity.Attendee().Email(), sem.Title(), link.URL); err != nil {
		slog.Warn("failed to resend payment link mail",
			"booking_id", bookingEntity.ID(), "error", err.Error())
	}

	return link.URL, nil
}
