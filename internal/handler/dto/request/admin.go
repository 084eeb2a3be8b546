package request

import (
	"time"

	"seminar-booking/internal/usecase/commands"
)

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type CreateSeminarRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	StartAt     time.Time `json:"start_at" binding:"required"`
	EndAt       time.Time `json:"end_at" binding:"required"`
	Capacity    int32     `json:"capacity" binding:"gte=0"`
	ZoomURL     string    `json:"zoom_url" binding:"omitempty,url"`
	PriceJPY    int64     `json:"price_jpy" binding:"gte=0"`
	Description string    `json:"description" binding:"max=2000"`
}

func (r CreateSeminarRequest) ToCommand() commands.CreateSeminarCommand {
	return commands.CreateSeminarCommand{
		Title:       r.Title,
		StartAt:     r.StartAt,
		EndAt:       r.EndAt,
		Capacity:    r.Capacity,
		ZoomURL:     r.ZoomURL,
		PriceJPY:    r.PriceJPY,
		Description: r.Description,
	}
}
