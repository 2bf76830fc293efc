package response

import (
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"
)

type TransactionResultResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

func FromTransactionResult(r *commands.TransactionResult) *TransactionResultResponse {
	return &TransactionResultResponse{TransactionID: r.TransactionID.String(), Status: string(r.Status)}
}

type StatusChangeResponse struct {
	FromStatus string  `json:"from_status"`
	ToStatus   string  `json:"to_status"`
	ActorKind  string  `json:"actor_kind"`
	ActorID    *string `json:"actor_id,omitempty"`
	Reason     string  `json:"reason,omitempty"`
	CreatedAt  int64   `json:"created_at"`
}

type TransactionResponse struct {
	ID                  string                  `json:"id"`
	ClientID            string                  `json:"client_id"`
	ProfessionalID      string                  `json:"professional_id"`
	PriceAgreedCents    int64                   `json:"price_agreed_cents"`
	DiscountAmountCents int64                   `json:"discount_amount_cents"`
	PlatformFeeCents    int64                   `json:"platform_fee_cents"`
	EscrowAmountCents   int64                   `json:"escrow_amount_cents"`
	Status              string                  `json:"status"`
	OriginKind          string                  `json:"origin_kind"`
	OriginID            string                  `json:"origin_id"`
	Category            string                  `json:"category"`
	PromoCodeID         *string                 `json:"promo_code_id,omitempty"`
	OfferID             *string                 `json:"offer_id,omitempty"`
	FundingPaymentID    *string                 `json:"funding_payment_id,omitempty"`
	ScheduledDate       *int64                  `json:"scheduled_date,omitempty"`
	CompletedAt         *int64                  `json:"completed_at,omitempty"`
	CanceledAt          *int64                  `json:"canceled_at,omitempty"`
	CancelReason        string                  `json:"cancel_reason,omitempty"`
	Notes               string                  `json:"notes,omitempty"`
	History             []*StatusChangeResponse `json:"history,omitempty"`
	CreatedAt           int64                   `json:"created_at"`
	UpdatedAt           int64                   `json:"updated_at"`
}

func FromTransactionView(v *queries.TransactionView) *TransactionResponse {
	resp := &TransactionResponse{
		ID:                  v.ID.String(),
		ClientID:            v.ClientID.String(),
		ProfessionalID:      v.ProfessionalID.String(),
		PriceAgreedCents:    v.PriceAgreedCents,
		DiscountAmountCents: v.DiscountAmountCents,
		PlatformFeeCents:    v.PlatformFeeCents,
		EscrowAmountCents:   v.EscrowAmountCents,
		Status:              v.Status,
		OriginKind:          v.OriginKind,
		OriginID:            v.OriginID.String(),
		Category:            v.Category,
		PromoCodeID:         optionalID(v.PromoCodeID),
		OfferID:             optionalID(v.OfferID),
		FundingPaymentID:    optionalID(v.FundingPaymentID),
		ScheduledDate:       optionalUnix(v.ScheduledDate),
		CompletedAt:         optionalUnix(v.CompletedAt),
		CanceledAt:          optionalUnix(v.CanceledAt),
		CancelReason:        v.CancelReason,
		Notes:               v.Notes,
		CreatedAt:           v.CreatedAt.Unix(),
		UpdatedAt:           v.UpdatedAt.Unix(),
	}
	for _, h := range v.History {
		resp.History = append(resp.History, &StatusChangeResponse{
			FromStatus: h.FromStatus,
			ToStatus:   h.ToStatus,
			ActorKind:  h.ActorKind,
			ActorID:    optionalID(h.ActorID),
			Reason:     h.Reason,
			CreatedAt:  h.CreatedAt.Unix(),
		})
	}
	return resp
}

func FromTransactionList(items []*queries.TransactionView) []*TransactionResponse {
	res := make([]*TransactionResponse, len(items))
	for i, it := range items {
		res[i] = FromTransactionView(it)
	}
	return res
}
