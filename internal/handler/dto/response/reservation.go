package response

import (
	"seminar-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	BookingID   uuid.UUID `json:"booking_id"`
	Token       string    `json:"token"`
	PaymentLink string    `json:"payment_link"`
}

func FromReserveResult(result *commands.ReserveResult) *ReservationResponse {
	return &ReservationResponse{
		BookingID:   result.BookingID,
		Token:       result.Token,
		PaymentLink: result.PaymentLink,
	}
}
