package api

import (
	"errors"
	"net/http"

	reqdto "seminar-booking/internal/handler/dto/request"
	resdto "seminar-booking/internal/handler/dto/response"
	"seminar-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
}

func NewReservationHandler(reservationCommands commands.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
	}
}

// @Summary Reserve a seat
// @Description Reserve a seat on a seminar and receive a payment link
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	seminarID, err := uuid.Parse(req.SeminarID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid seminar ID format",
		})
		return
	}

	attendee, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid attendee data",
		})
		return
	}

	result, err := h.reservationCommands.Reserve(c.Request.Context(), seminarID, attendee)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSeminarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Seminar not found",
			})
		case errors.Is(err, commands.ErrSeminarEnded):
			c.JSON(http.StatusGone, gin.H{
				"error": "Seminar has already ended",
			})
		case errors.Is(err, commands.ErrSeminarFull):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Seminar is fully booked",
			})
		case errors.Is(err, commands.ErrReservationBusy):
			c.Header("Retry-After", "5")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Server is busy. Please try again.",
			})
		case errors.Is(err, commands.ErrPaymentGatewayFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment link creation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReserveResult(result))
}
