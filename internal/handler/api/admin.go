package api

import (
	"errors"
	"net/http"

	reqdto "seminar-booking/internal/handler/dto/request"
	resdto "seminar-booking/internal/handler/dto/response"
	"seminar-booking/internal/usecase/commands"
	"seminar-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminCommands  commands.AdminCommands
	bookingQueries queries.BookingQueries
}

func NewAdminHandler(adminCommands commands.AdminCommands, bookingQueries queries.BookingQueries) *AdminHandler {
	return &AdminHandler{
		adminCommands:  adminCommands,
		bookingQueries: bookingQueries,
	}
}

// @Summary Admin login
// @Description Exchange the admin password for a session token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Login request"
// @Success 200 {object} resdto.AdminLoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, err := h.adminCommands.Login(req.Password)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidAdminPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.AdminLoginResponse{Token: token})
}

// @Summary Create seminar
// @Description Create a new seminar listing
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSeminarRequest true "Seminar definition"
// @Success 201 {object} resdto.CreateSeminarResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/admin/seminars [post]
func (h *AdminHandler) CreateSeminar(c *gin.Context) {
	var req reqdto.CreateSeminarRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.adminCommands.CreateSeminar(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Seminar validation failed",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateSeminarResponse{ID: id})
}

// @Summary List seminar bookings
// @Description List all bookings of one seminar
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Seminar ID"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/admin/seminars/{id}/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	seminarID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid seminar ID format",
		})
		return
	}

	items, err := h.bookingQueries.ListBySeminar(c.Request.Context(), seminarID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Resend payment link
// @Description Create a fresh payment link for a pending booking and re-send the mail
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.ResendLinkResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/admin/bookings/{id}/resend-link [post]
func (h *AdminHandler) ResendPaymentLink(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	link, err := h.adminCommands.ResendPaymentLink(c.Request.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrBookingNotPending):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is not pending payment",
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

	c.JSON(http.StatusOK, resdto.ResendLinkResponse{PaymentLink: link})
}
