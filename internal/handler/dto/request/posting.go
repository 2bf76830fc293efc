package request

import (
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/patch"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"
)

type CreatePostingRequest struct {
	Title         string     `json:"title" binding:"required,max=200"`
	Description   string     `json:"description" binding:"max=5000"`
	Category      string     `json:"category" binding:"required,max=100"`
	PriceMinCents *int64     `json:"price_min_cents" binding:"omitempty,min=0"`
	PriceMaxCents *int64     `json:"price_max_cents" binding:"omitempty,min=0"`
	ExpiresAt     *time.Time `json:"expires_at"`
}

func (r *CreatePostingRequest) ToCommand() (commands.CreatePostingRequest, error) {
	lo, err := patch.Convert(r.PriceMinCents, money.New)
	if err != nil {
		return commands.CreatePostingRequest{}, err
	}
	hi, err := patch.Convert(r.PriceMaxCents, money.New)
	if err != nil {
		return commands.CreatePostingRequest{}, err
	}
	return commands.CreatePostingRequest{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		PriceMin:    lo,
		PriceMax:    hi,
		ExpiresAt:   r.ExpiresAt,
	}, nil
}

type SubmitOfferRequest struct {
	PriceCents int64  `json:"price_cents" binding:"required,gt=0"`
	Message    string `json:"message" binding:"max=1000"`
}

func (r *SubmitOfferRequest) ToCommand() (commands.SubmitOfferRequest, error) {
	price, err := money.New(r.PriceCents)
	if err != nil {
		return commands.SubmitOfferRequest{}, err
	}
	return commands.SubmitOfferRequest{Price: price, Message: r.Message}, nil
}

type AcceptOfferRequest struct {
	PromoCode     string     `json:"promo_code" binding:"max=50"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Notes         string     `json:"notes" binding:"max=2000"`
}

func (r *AcceptOfferRequest) ToCommand() commands.AcceptOfferRequest {
	return commands.AcceptOfferRequest{
		PromoCode:     r.PromoCode,
		ScheduledDate: r.ScheduledDate,
		Notes:         r.Notes,
	}
}
