package response

import "github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"

type DiscountPreviewResponse struct {
	Code                string `json:"code"`
	DiscountAmountCents int64  `json:"discount_amount_cents"`
	FinalAmountCents    int64  `json:"final_amount_cents"`
}

func FromDiscountPreview(p *commands.DiscountPreview) *DiscountPreviewResponse {
	return &DiscountPreviewResponse{
		Code:                p.Code,
		DiscountAmountCents: p.DiscountAmount.Cents(),
		FinalAmountCents:    p.FinalAmount.Cents(),
	}
}
