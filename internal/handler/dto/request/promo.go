package request

import (
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/promo"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/patch"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreatePromoCodeRequest struct {
	Code           string     `json:"code" binding:"required,max=50"`
	DiscountType   string     `json:"discount_type" binding:"required,oneof=PERCENTAGE FIXED_AMOUNT"`
	DiscountValue  string     `json:"discount_value" binding:"required"`
	MaxUses        *int       `json:"max_uses" binding:"omitempty,gt=0"`
	MaxUsesPerUser *int       `json:"max_uses_per_user" binding:"omitempty,gt=0"`
	ValidFrom      *time.Time `json:"valid_from"`
	ValidUntil     *time.Time `json:"valid_until"`
	TargetCategory *string    `json:"target_category" binding:"omitempty,max=100"`
}

// ToCommand parses the decimal value; a missing validFrom starts the window now.
func (r *CreatePromoCodeRequest) ToCommand(now time.Time) (commands.CreatePromoCodeRequest, error) {
	value, err := decimal.NewFromString(r.DiscountValue)
	if err != nil {
		return commands.CreatePromoCodeRequest{}, errs.Wrapf(errs.ErrInvalidAmount, "discount value %q", r.DiscountValue)
	}
	return commands.CreatePromoCodeRequest{
		Code:           r.Code,
		DiscountType:   promo.DiscountType(r.DiscountType),
		DiscountValue:  value,
		MaxUses:        r.MaxUses,
		MaxUsesPerUser: r.MaxUsesPerUser,
		ValidFrom:      patch.Coalesce(r.ValidFrom, now),
		ValidUntil:     r.ValidUntil,
		TargetCategory: r.TargetCategory,
	}, nil
}

type PreviewDiscountRequest struct {
	Code        string `json:"code" binding:"required,max=50"`
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Category    string `json:"category" binding:"required,max=100"`
}

func (r *PreviewDiscountRequest) ToCommand() (commands.PreviewDiscountRequest, error) {
	amount, err := money.New(r.AmountCents)
	if err != nil {
		return commands.PreviewDiscountRequest{}, err
	}
	return commands.PreviewDiscountRequest{Code: r.Code, Amount: amount, Category: r.Category}, nil
}
