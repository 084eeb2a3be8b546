package queries

import (
	"context"
)

type SeminarQueries interface {
	List(ctx context.Context) ([]*SeminarView, error)
}

type SeminarViewRepo interface {
	FindAll(ctx context.Context) ([]*SeminarView, error)
}

type seminarQueriesImpl struct {
	repo SeminarViewRepo
}

func NewSeminarQueries(repo SeminarViewRepo) SeminarQueries {
	return &seminarQueriesImpl{repo: repo}
}

func (q *seminarQueriesImpl) List(ctx context.Context) ([]*SeminarView, error) {
	return q.repo.FindAll(ctx)
}
