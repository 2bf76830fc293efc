//go:build unit || e2e

package builder

import (
	"time"

	domreview "github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/review"
	reqdto "github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/dto/request"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	TransactionID  uuid.UUID
	ClientID       uuid.UUID
	ReviewerID     uuid.UUID
	ProfessionalID uuid.UUID
	Completed      bool
	Rating         int
	Comment        string
	CreatedAt      time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	clientID := uuid.New()
	return &ReviewBuilder{
		TransactionID:  uuid.New(),
		ClientID:       clientID,
		ReviewerID:     clientID,
		ProfessionalID: uuid.New(),
		Completed:      true,
		Rating:         5,
		Comment:        "Excellent service!",
		CreatedAt:      time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) BuildEligibility() domreview.Eligibility {
	return domreview.Eligibility{
		TransactionID:  r.TransactionID,
		ClientID:       r.ClientID,
		ProfessionalID: r.ProfessionalID,
		Completed:      r.Completed,
	}
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	e := r.BuildEligibility()
	return domreview.NewReview(e, r.ReviewerID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:             uuid.New(),
		TransactionID:  r.TransactionID,
		ReviewerID:     r.ReviewerID,
		ProfessionalID: r.ProfessionalID,
		Rating:         int32(r.Rating),
		Comment:        r.Comment,
		CreatedAt:      r.CreatedAt,
	}
}
