package api

import (
	"errors"
	"net/http"

	resdto "seminar-booking/internal/handler/dto/response"
	"seminar-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MyPageHandler struct {
	bookingQueries queries.BookingQueries
}

func NewMyPageHandler(bookingQueries queries.BookingQueries) *MyPageHandler {
	return &MyPageHandler{
		bookingQueries: bookingQueries,
	}
}

// @Summary Booking status page
// @Description Resolve a booking and its seminar by access token
// @Tags mypage
// @Produce json
// @Param token path string true "Booking access token"
// @Success 200 {object} resdto.MyPageResponse
// @Failure 404 {object} map[string]string
// @Router /api/mypage/{token} [get]
func (h *MyPageHandler) Get(c *gin.Context) {
	token := c.Param("token")

	view, err := h.bookingQueries.GetByToken(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			// トークンの存在有無を漏らさないよう一律の応答にする
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invalid link",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMyPageView(view))
}
