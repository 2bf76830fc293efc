package response

import (
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"
)

type OfferResponse struct {
	ID             string `json:"id"`
	ProfessionalID string `json:"professional_id"`
	PriceCents     int64  `json:"price_cents"`
	Message        string `json:"message"`
	Status         string `json:"status"`
	CreatedAt      int64  `json:"created_at"`
}

type PostingResponse struct {
	ID            string           `json:"id"`
	ClientID      string           `json:"client_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	PriceMinCents *int64           `json:"price_min_cents,omitempty"`
	PriceMaxCents *int64           `json:"price_max_cents,omitempty"`
	Status        string           `json:"status"`
	ExpiresAt     *int64           `json:"expires_at,omitempty"`
	Offers        []*OfferResponse `json:"offers,omitempty"`
	CreatedAt     int64            `json:"created_at"`
}

func FromPostingView(v *queries.PostingView) *PostingResponse {
	resp := &PostingResponse{
		ID:            v.ID.String(),
		ClientID:      v.ClientID.String(),
		Title:         v.Title,
		Description:   v.Description,
		Category:      v.Category,
		PriceMinCents: v.PriceMinCents,
		PriceMaxCents: v.PriceMaxCents,
		Status:        v.Status,
		ExpiresAt:     optionalUnix(v.ExpiresAt),
		CreatedAt:     v.CreatedAt.Unix(),
	}
	for _, o := range v.Offers {
		resp.Offers = append(resp.Offers, &OfferResponse{
			ID:             o.ID.String(),
			ProfessionalID: o.ProfessionalID.String(),
			PriceCents:     o.PriceCents,
			Message:        o.Message,
			Status:         o.Status,
			CreatedAt:      o.CreatedAt.Unix(),
		})
	}
	return resp
}

func FromPostingList(items []*queries.PostingView) []*PostingResponse {
	res := make([]*PostingResponse, len(items))
	for i, it := range items {
		res[i] = FromPostingView(it)
	}
	return res
}

type AcceptOfferResponse struct {
	TransactionID       string   `json:"transaction_id"`
	OfferID             string   `json:"offer_id"`
	RejectedOfferIDs    []string `json:"rejected_offer_ids"`
	DiscountAmountCents int64    `json:"discount_amount_cents"`
	EscrowAmountCents   int64    `json:"escrow_amount_cents"`
	PlatformFeeCents    int64    `json:"platform_fee_cents"`
	Status              string   `json:"status"`
}

func FromAcceptOfferResult(r *commands.AcceptOfferResult) *AcceptOfferResponse {
	rejected := make([]string, len(r.RejectedOffers))
	for i, id := range r.RejectedOffers {
		rejected[i] = id.String()
	}
	return &AcceptOfferResponse{
		TransactionID:       r.TransactionID.String(),
		OfferID:             r.OfferID.String(),
		RejectedOfferIDs:    rejected,
		DiscountAmountCents: r.DiscountAmount.Cents(),
		EscrowAmountCents:   r.EscrowAmount.Cents(),
		PlatformFeeCents:    r.PlatformFee.Cents(),
		Status:              string(r.Status),
	}
}
