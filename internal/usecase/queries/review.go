package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	ListByProfessional(ctx context.Context, professionalID uuid.UUID, after *Keyset, limit int32) ([]*ReviewView, error)
	RatingSummary(ctx context.Context, professionalID uuid.UUID) (*RatingSummary, error)
}

type ReviewQueries interface {
	ListByProfessional(ctx context.Context, professionalID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
	GetRatingSummary(ctx context.Context, professionalID uuid.UUID) (*RatingSummary, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) ListByProfessional(ctx context.Context, professionalID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.store.ListByProfessional(ctx, professionalID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := pageOf(rows, limit, func(v *ReviewView) Keyset {
		return Keyset{CreatedAt: v.CreatedAt, ID: v.ID}
	})
	return page, next, nil
}

func (q *reviewQueriesImpl) GetRatingSummary(ctx context.Context, professionalID uuid.UUID) (*RatingSummary, error) {
	return q.store.RatingSummary(ctx, professionalID)
}
