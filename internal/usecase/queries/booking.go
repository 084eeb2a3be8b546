package queries

import (
	"context"

	"seminar-booking/internal/infra"
	"seminar-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingQueries interface {
	// GetByToken resolves the attendee-facing status page. Possession of
	// the token is the only credential.
	GetByToken(ctx context.Context, token string) (*MyPageView, error)
	ListBySeminar(ctx context.Context, seminarID uuid.UUID) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindViewByToken(ctx context.Context, token string) (*MyPageView, error)
	FindBySeminarID(ctx context.Context, seminarID uuid.UUID) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByToken(ctx context.Context, token string) (*MyPageView, error) {
	if token == "" {
		return nil, ErrBookingNotFound
	}

	view, err := q.repo.FindViewByToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrBookingNotFound)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListBySeminar(ctx context.Context, seminarID uuid.UUID) ([]*BookingListItem, error) {
	return q.repo.FindBySeminarID(ctx, seminarID)
}
