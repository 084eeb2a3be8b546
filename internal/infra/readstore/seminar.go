package readstore

import (
	"context"

	"seminar-booking/internal/infra"
	"seminar-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SeminarReadStore struct {
	db *pgxpool.Pool
}

func NewSeminarReadStore(db *pgxpool.Pool) *SeminarReadStore {
	return &SeminarReadStore{db: db}
}

func (r *SeminarReadStore) FindAll(ctx context.Context) ([]*queries.SeminarView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, start_at, end_at, capacity, capacity - booked_count AS remaining,
		       price_jpy, description
		FROM seminars
		ORDER BY start_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list seminars", err)
	}
	defer rows.Close()

	var views []*queries.SeminarView
	for rows.Next() {
		var v queries.SeminarView
		if err := rows.Scan(&v.ID, &v.Title, &v.StartAt, &v.EndAt,
			&v.Capacity, &v.Remaining, &v.PriceJPY, &v.Description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan seminar row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate seminar rows", err)
	}

	return views, nil
}
