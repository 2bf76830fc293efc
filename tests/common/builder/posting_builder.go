//go:build unit || e2e

package builder

import (
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/posting"
	reqdto "github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/dto/request"

	"github.com/google/uuid"
)

type PostingBuilder struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	Title       string
	Description string
	Category    string
	PriceMin    *money.Money
	PriceMax    *money.Money
	Status      posting.Status
	ExpiresAt   *time.Time
	CreatedAt   time.Time
}

func NewPostingBuilder() *PostingBuilder {
	now := time.Now()
	lo, hi := money.Money(20000), money.Money(50000)
	return &PostingBuilder{
		ID:          uuid.New(),
		ClientID:    uuid.New(),
		Title:       "Reparar fuga en baño",
		Description: "Fuga debajo del lavamanos",
		Category:    "plomería",
		PriceMin:    &lo,
		PriceMax:    &hi,
		Status:      posting.StatusOpen,
		CreatedAt:   now,
	}
}

func (b *PostingBuilder) With(mutate func(*PostingBuilder)) *PostingBuilder {
	mutate(b)
	return b
}

func (b *PostingBuilder) WithClientID(id uuid.UUID) *PostingBuilder {
	b.ClientID = id
	return b
}

func (b *PostingBuilder) WithStatus(s posting.Status) *PostingBuilder {
	b.Status = s
	return b
}

func (b *PostingBuilder) WithExpiresAt(t time.Time) *PostingBuilder {
	b.ExpiresAt = &t
	return b
}

func (b *PostingBuilder) BuildNewParams() posting.NewPostingParams {
	return posting.NewPostingParams{
		ClientID:    b.ClientID,
		Title:       b.Title,
		Description: b.Description,
		Category:    b.Category,
		PriceMin:    b.PriceMin,
		PriceMax:    b.PriceMax,
		ExpiresAt:   b.ExpiresAt,
	}
}

func (b *PostingBuilder) BuildDomain() *posting.Posting {
	return posting.ReconstructPosting(
		b.ID, b.ClientID, b.Title, b.Description, b.Category,
		b.PriceMin, b.PriceMax, b.Status, b.ExpiresAt, b.CreatedAt, b.CreatedAt,
	)
}

func (b *PostingBuilder) BuildOffer(professionalID uuid.UUID, price money.Money, status posting.OfferStatus) *posting.Offer {
	return posting.ReconstructOffer(uuid.New(), b.ID, professionalID, price, "", status, b.CreatedAt, b.CreatedAt)
}

func (b *PostingBuilder) BuildCreateRequestDTO() reqdto.CreatePostingRequest {
	req := reqdto.CreatePostingRequest{
		Title:       b.Title,
		Description: b.Description,
		Category:    b.Category,
		ExpiresAt:   b.ExpiresAt,
	}
	if b.PriceMin != nil {
		v := b.PriceMin.Cents()
		req.PriceMinCents = &v
	}
	if b.PriceMax != nil {
		v := b.PriceMax.Cents()
		req.PriceMaxCents = &v
	}
	return req
}
