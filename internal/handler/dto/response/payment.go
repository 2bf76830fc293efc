package response

import (
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"
)

type PaymentResponse struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
}

func FromInitiatePaymentResult(r *commands.InitiatePaymentResult) *PaymentResponse {
	return &PaymentResponse{PaymentID: r.PaymentID.String(), Status: string(r.Status)}
}

type MovementResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	AmountCents int64  `json:"amount_cents"`
	ReferenceID string `json:"reference_id"`
	CreatedAt   int64  `json:"created_at"`
}

type BalanceResponse struct {
	UserID       string              `json:"user_id"`
	BalanceCents int64               `json:"balance_cents"`
	Movements    []*MovementResponse `json:"movements"`
}

func FromBalanceView(v *queries.BalanceView) *BalanceResponse {
	resp := &BalanceResponse{
		UserID:       v.UserID.String(),
		BalanceCents: v.BalanceCents,
		Movements:    make([]*MovementResponse, len(v.Movements)),
	}
	for i, m := range v.Movements {
		resp.Movements[i] = &MovementResponse{
			ID:          m.ID.String(),
			Kind:        m.Kind,
			AmountCents: m.AmountCents,
			ReferenceID: m.ReferenceID.String(),
			CreatedAt:   m.CreatedAt.Unix(),
		}
	}
	return resp
}

type WithdrawalResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	PaymentMethodID string  `json:"payment_method_id"`
	AmountCents     int64   `json:"amount_cents"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	ProcessedAt     *int64  `json:"processed_at,omitempty"`
	CreatedAt       int64   `json:"created_at"`
}

func FromWithdrawalList(items []*queries.WithdrawalView) []*WithdrawalResponse {
	res := make([]*WithdrawalResponse, len(items))
	for i, w := range items {
		res[i] = &WithdrawalResponse{
			ID:              w.ID.String(),
			UserID:          w.UserID.String(),
			PaymentMethodID: w.PaymentMethodID.String(),
			AmountCents:     w.AmountCents,
			Status:          w.Status,
			RejectionReason: w.RejectionReason,
			ProcessedAt:     optionalUnix(w.ProcessedAt),
			CreatedAt:       w.CreatedAt.Unix(),
		}
	}
	return res
}
