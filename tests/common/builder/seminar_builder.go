//go:build unit || e2e

package builder

import (
	"time"

	domseminar "seminar-booking/internal/domain/seminar"
	reqdto "seminar-booking/internal/handler/dto/request"
	"seminar-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SeminarBuilder struct {
	ID          uuid.UUID
	Title       string
	StartAt     time.Time
	EndAt       time.Time
	Capacity    int32
	BookedCount int32
	ZoomURL     string
	PriceJPY    int64
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewSeminarBuilder() *SeminarBuilder {
	now := time.Now()
	start := now.Add(24 * time.Hour)
	return &SeminarBuilder{
		ID:          uuid.New(),
		Title:       "Go実践入門セミナー",
		StartAt:     start,
		EndAt:       start.Add(2 * time.Hour),
		Capacity:    10,
		BookedCount: 0,
		ZoomURL:     "https://zoom.example.com/j/12345",
		PriceJPY:    5000,
		Description: "実務で使えるGoの書き方を学ぶ",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *SeminarBuilder) WithTitle(title string) *SeminarBuilder {
	b.Title = title
	return b
}

func (b *SeminarBuilder) WithSchedule(startAt, endAt time.Time) *SeminarBuilder {
	b.StartAt = startAt
	b.EndAt = endAt
	return b
}

func (b *SeminarBuilder) WithCapacity(capacity int32) *SeminarBuilder {
	b.Capacity = capacity
	return b
}

func (b *SeminarBuilder) WithBookedCount(bookedCount int32) *SeminarBuilder {
	b.BookedCount = bookedCount
	return b
}

func (b *SeminarBuilder) WithPriceJPY(price int64) *SeminarBuilder {
	b.PriceJPY = price
	return b
}

// BuildDomain runs creation-time validation, like the admin create path.
func (b *SeminarBuilder) BuildDomain() (*domseminar.Seminar, error) {
	return domseminar.NewSeminar(b.Title, b.StartAt, b.EndAt, b.Capacity, b.ZoomURL, b.PriceJPY, b.Description)
}

// BuildReconstructed rebuilds the entity as the repository would from a row.
func (b *SeminarBuilder) BuildReconstructed() (*domseminar.Seminar, error) {
	return domseminar.ReconstructSeminar(b.ID, b.Title, b.StartAt, b.EndAt,
		b.Capacity, b.BookedCount, b.ZoomURL, b.PriceJPY, b.Description,
		b.CreatedAt, b.UpdatedAt)
}

func (b *SeminarBuilder) BuildCreateRequestDTO() reqdto.CreateSeminarRequest {
	return reqdto.CreateSeminarRequest{
		Title:       b.Title,
		StartAt:     b.StartAt,
		EndAt:       b.EndAt,
		Capacity:    b.Capacity,
		ZoomURL:     b.ZoomURL,
		PriceJPY:    b.PriceJPY,
		Description: b.Description,
	}
}

func (b *SeminarBuilder) BuildView() *queries.SeminarView {
	return &queries.SeminarView{
		ID:          b.ID,
		Title:       b.Title,
		StartAt:     b.StartAt,
		EndAt:       b.EndAt,
		Capacity:    b.Capacity,
		Remaining:   b.Capacity - b.BookedCount,
		PriceJPY:    b.PriceJPY,
		Description: b.Description,
	}
}
