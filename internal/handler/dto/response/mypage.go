package response

import (
	"time"

	"seminar-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type MyPageResponse struct {
	BookingID    uuid.UUID `json:"booking_id"`
	SeminarTitle string    `json:"seminar_title"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	DateOfBirth  string    `json:"date_of_birth"`
	Status       string    `json:"status"`
	ZoomURL      string    `json:"zoom_url,omitempty"`
}

func FromMyPageView(view *queries.MyPageView) *MyPageResponse {
	return &MyPageResponse{
		BookingID:    view.BookingID,
		SeminarTitle: view.SeminarTitle,
		StartAt:      view.StartAt,
		EndAt:        view.EndAt,
		Name:         view.Name,
		Email:        view.Email,
		DateOfBirth:  view.DateOfBirth,
		Status:       view.Status,
		ZoomURL:      view.ZoomURL,
	}
}
