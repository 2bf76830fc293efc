package review

import (
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

// Review is the client's rating of the professional for one completed
// transaction.
type Review struct {
	id             uuid.UUID
	transactionID  uuid.UUID
	reviewerID     uuid.UUID
	professionalID uuid.UUID
	rating         Rating
	comment        Comment
	createdAt      time.Time
	updatedAt      time.Time
}

// Eligibility is the slice of the reviewed transaction the review needs.
type Eligibility struct {
	TransactionID  uuid.UUID
	ClientID       uuid.UUID
	ProfessionalID uuid.UUID
	Completed      bool
}

func NewReview(e Eligibility, reviewerID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	if reviewerID != e.ClientID {
		return nil, errs.Wrap(errs.ErrForbidden, "only the client can review this transaction")
	}
	if !e.Completed {
		return nil, errs.Wrapf(errs.ErrInvalidState, "transaction %s is not completed", e.TransactionID)
	}

	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}
	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:             uuid.New(),
		transactionID:  e.TransactionID,
		reviewerID:     reviewerID,
		professionalID: e.ProfessionalID,
		rating:         rating,
		comment:        comment,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func (r *Review) ID() uuid.UUID             { return r.id }
func (r *Review) TransactionID() uuid.UUID  { return r.transactionID }
func (r *Review) ReviewerID() uuid.UUID     { return r.reviewerID }
func (r *Review) ProfessionalID() uuid.UUID { return r.professionalID }
func (r *Review) Rating() Rating            { return r.rating }
func (r *Review) Comment() Comment          { return r.comment }
func (r *Review) CreatedAt() time.Time      { return r.createdAt }
func (r *Review) UpdatedAt() time.Time      { return r.updatedAt }
