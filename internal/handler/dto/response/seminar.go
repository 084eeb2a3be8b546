package response

import (
	"log/slog"
	"time"

	"seminar-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SeminarResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Capacity    int32     `json:"capacity"`
	Remaining   int32     `json:"remaining"`
	PriceJPY    int64     `json:"price_jpy"`
	Description string    `json:"description,omitempty"`
}

func FromSeminarView(view *queries.SeminarView) *SeminarResponse {
	var resp SeminarResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to convert seminar view", "error", err.Error())
		return &SeminarResponse{}
	}
	return &resp
}

func FromSeminarViews(views []*queries.SeminarView) []*SeminarResponse {
	resps := make([]*SeminarResponse, len(views))
	for i, v := range views {
		resps[i] = FromSeminarView(v)
	}
	return resps
}
