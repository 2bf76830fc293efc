package commands

import (
	"context"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/promo"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/clock"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePromoCodeRequest struct {
	Code           string
	DiscountType   promo.DiscountType
	DiscountValue  decimal.Decimal
	MaxUses        *int
	MaxUsesPerUser *int
	ValidFrom      time.Time
	ValidUntil     *time.Time
	TargetCategory *string
}

type PreviewDiscountRequest struct {
	Code     string
	Amount   money.Money
	Category string
}

type DiscountPreview struct {
	Code           string
	DiscountAmount money.Money
	FinalAmount    money.Money
}

type PromoCommands interface {
	CreatePromoCode(ctx context.Context, req CreatePromoCodeRequest, actor user.Actor) (uuid.UUID, error)
	// PreviewDiscount runs the validator for actor without recording a usage.
	PreviewDiscount(ctx context.Context, req PreviewDiscountRequest, actor user.Actor) (*DiscountPreview, error)
}

type promoUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPromoUseCase(uow shared.UnitOfWork, clk clock.Clock) PromoCommands {
	return &promoUseCaseImpl{uow: uow, clock: clk}
}

func (uc *promoUseCaseImpl) CreatePromoCode(ctx context.Context, req CreatePromoCodeRequest, actor user.Actor) (uuid.UUID, error) {
	if !actor.IsAdmin() {
		return uuid.Nil, errs.Wrap(errs.ErrForbidden, "promo codes are managed by admins")
	}
	discount, err := promo.NewDiscount(req.DiscountType, req.DiscountValue)
	if err != nil {
		return uuid.Nil, err
	}
	code, err := promo.NewPromoCode(promo.NewPromoCodeParams{
		Code:           req.Code,
		Discount:       discount,
		MaxUses:        req.MaxUses,
		MaxUsesPerUser: req.MaxUsesPerUser,
		ValidFrom:      req.ValidFrom,
		ValidUntil:     req.ValidUntil,
		TargetCategory: req.TargetCategory,
	}, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PromoCodes().Create(ctx, code)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return code.ID(), nil
}

func (uc *promoUseCaseImpl) PreviewDiscount(ctx context.Context, req PreviewDiscountRequest, actor user.Actor) (*DiscountPreview, error) {
	var preview *DiscountPreview
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		code, discount, err := validatePromo(ctx, tx, req.Code, promo.Candidate{
			UserID:   actor.ID,
			Amount:   req.Amount,
			Category: req.Category,
		}, uc.clock.Now(), false)
		if err != nil {
			return err
		}
		final, err := req.Amount.Sub(discount)
		if err != nil {
			return err
		}
		preview = &DiscountPreview{Code: code.Code().String(), DiscountAmount: discount, FinalAmount: final}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return preview, nil
}
