package api

import (
	"net/http"

	resdto "seminar-booking/internal/handler/dto/response"
	"seminar-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SeminarHandler struct {
	seminarQueries queries.SeminarQueries
}

func NewSeminarHandler(seminarQueries queries.SeminarQueries) *SeminarHandler {
	return &SeminarHandler{
		seminarQueries: seminarQueries,
	}
}

// @Summary List seminars
// @Description List seminars with remaining seat counts
// @Tags seminars
// @Produce json
// @Success 200 {array} resdto.SeminarResponse
// @Router /api/seminars [get]
func (h *SeminarHandler) List(c *gin.Context) {
	views, err := h.seminarQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSeminarViews(views))
}
