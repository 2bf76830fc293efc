package readstore

import (
	"context"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewReadStore struct {
	db shared.DBTX
}

func NewReviewReadStore(db shared.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: db}
}

func (r *ReviewReadStore) ListByProfessional(ctx context.Context, professionalID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.ReviewView, error) {
	afterAt, afterID := keysetArgs(after)
	rows, err := r.db.Query(ctx, `
		SELECT id, transaction_id, reviewer_id, professional_id, rating, comment, created_at
		FROM reviews
		WHERE professional_id = $1
		  AND ($2::timestamptz IS NULL OR (created_at, id) < ($2, $3::uuid))
		ORDER BY created_at DESC, id DESC
		LIMIT $4`,
		professionalID, afterAt, afterID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var out []*queries.ReviewView
	for rows.Next() {
		var v queries.ReviewView
		if err := rows.Scan(&v.ID, &v.TransactionID, &v.ReviewerID, &v.ProfessionalID, &v.Rating, &v.Comment, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reviews", err)
	}
	return out, nil
}

func (r *ReviewReadStore) RatingSummary(ctx context.Context, professionalID uuid.UUID) (*queries.RatingSummary, error) {
	s := queries.RatingSummary{ProfessionalID: professionalID}
	err := r.db.QueryRow(ctx, `
		SELECT count(*)::int, COALESCE(avg(rating), 0)::float8
		FROM reviews WHERE professional_id = $1`, professionalID,
	).Scan(&s.TotalReviews, &s.AverageRating)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get rating summary", err)
	}
	return &s, nil
}
