package request

import (
	"seminar-booking/internal/domain/booking"
)

type CreateReservationRequest struct {
	SeminarID   string `json:"seminar_id" binding:"required,uuid"`
	Name        string `json:"name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	DateOfBirth string `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
}

func (r CreateReservationRequest) ToDomain() (booking.Attendee, error) {
	return booking.NewAttendee(r.Name, r.Email, r.DateOfBirth)
}
