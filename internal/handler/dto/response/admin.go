package response

import (
	"time"

	"seminar-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AdminLoginResponse struct {
	Token string `json:"token"`
}

type CreateSeminarResponse struct {
	ID uuid.UUID `json:"id"`
}

type ResendLinkResponse struct {
	PaymentLink string `json:"payment_link"`
}

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	SeminarID     uuid.UUID `json:"seminar_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Status        string    `json:"status"`
	SquareOrderID *string   `json:"square_order_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:            item.ID,
		SeminarID:     item.SeminarID,
		Name:          item.Name,
		Email:         item.Email,
		Status:        item.Status,
		SquareOrderID: item.SquareOrderID,
		CreatedAt:     item.CreatedAt,
	}
}
