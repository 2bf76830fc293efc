package repository

import (
	"context"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/review"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"
)

type ReviewRepository struct {
	db shared.DBTX
}

func NewReviewRepository(db shared.DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reviews (id, transaction_id, reviewer_id, professional_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rev.ID(), rev.TransactionID(), rev.ReviewerID(), rev.ProfessionalID(),
		rev.Rating().Value(), rev.Comment().String(), rev.CreatedAt(), rev.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}
