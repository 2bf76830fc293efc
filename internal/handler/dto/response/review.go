package response

import (
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"
)

type ReviewResponse struct {
	ID             string `json:"id"`
	TransactionID  string `json:"transaction_id"`
	ReviewerID     string `json:"reviewer_id"`
	ProfessionalID string `json:"professional_id"`
	Rating         int32  `json:"rating"`
	Comment        string `json:"comment"`
	CreatedAt      int64  `json:"created_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:             v.ID.String(),
		TransactionID:  v.TransactionID.String(),
		ReviewerID:     v.ReviewerID.String(),
		ProfessionalID: v.ProfessionalID.String(),
		Rating:         v.Rating,
		Comment:        v.Comment,
		CreatedAt:      v.CreatedAt.Unix(),
	}
}

func FromReviewList(items []*queries.ReviewView) []*ReviewResponse {
	res := make([]*ReviewResponse, len(items))
	for i, it := range items {
		res[i] = FromReviewView(it)
	}
	return res
}

type RatingSummaryResponse struct {
	ProfessionalID string  `json:"professional_id"`
	TotalReviews   int32   `json:"total_reviews"`
	AverageRating  float64 `json:"average_rating"`
}

func FromRatingSummary(s *queries.RatingSummary) *RatingSummaryResponse {
	return &RatingSummaryResponse{
		ProfessionalID: s.ProfessionalID.String(),
		TotalReviews:   s.TotalReviews,
		AverageRating:  s.AverageRating,
	}
}
