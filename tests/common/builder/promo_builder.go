//go:build unit || e2e

package builder

import (
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/promo"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PromoBuilder struct {
	ID             uuid.UUID
	Code           string
	DiscountType   promo.DiscountType
	DiscountValue  decimal.Decimal
	MaxUses        *int
	UsesCount      int
	MaxUsesPerUser *int
	ValidFrom      time.Time
	ValidUntil     *time.Time
	TargetCategory *string
	IsActive       bool
	CreatedAt      time.Time
}

func NewPromoBuilder() *PromoBuilder {
	now := time.Now()
	until := now.Add(30 * 24 * time.Hour)
	return &PromoBuilder{
		ID:            uuid.New(),
		Code:          "PLOMERIA50",
		DiscountType:  promo.DiscountFixedAmount,
		DiscountValue: decimal.NewFromInt(50),
		ValidFrom:     now.Add(-24 * time.Hour),
		ValidUntil:    &until,
		IsActive:      true,
		CreatedAt:     now,
	}
}

func (b *PromoBuilder) With(mutate func(*PromoBuilder)) *PromoBuilder {
	mutate(b)
	return b
}

func (b *PromoBuilder) WithPercentage(pct string) *PromoBuilder {
	b.DiscountType = promo.DiscountPercentage
	b.DiscountValue = decimal.RequireFromString(pct)
	return b
}

func (b *PromoBuilder) WithFixed(cents int64) *PromoBuilder {
	b.DiscountType = promo.DiscountFixedAmount
	b.DiscountValue = decimal.NewFromInt(cents)
	return b
}

func (b *PromoBuilder) WithMaxUses(n int) *PromoBuilder {
	b.MaxUses = &n
	return b
}

func (b *PromoBuilder) WithUsesCount(n int) *PromoBuilder {
	b.UsesCount = n
	return b
}

func (b *PromoBuilder) WithMaxUsesPerUser(n int) *PromoBuilder {
	b.MaxUsesPerUser = &n
	return b
}

func (b *PromoBuilder) WithTargetCategory(category string) *PromoBuilder {
	b.TargetCategory = &category
	return b
}

func (b *PromoBuilder) WithWindow(from time.Time, until *time.Time) *PromoBuilder {
	b.ValidFrom = from
	b.ValidUntil = until
	return b
}

func (b *PromoBuilder) Inactive() *PromoBuilder {
	b.IsActive = false
	return b
}

func (b *PromoBuilder) BuildDiscount() (promo.Discount, error) {
	return promo.NewDiscount(b.DiscountType, b.DiscountValue)
}

// BuildDomain reconstructs a persisted promo code, bypassing creation rules.
func (b *PromoBuilder) BuildDomain() *promo.PromoCode {
	discount, err := b.BuildDiscount()
	if err != nil {
		panic(err)
	}
	return promo.ReconstructPromoCode(
		b.ID, b.Code, discount, b.MaxUses, b.UsesCount, b.MaxUsesPerUser,
		b.ValidFrom, b.ValidUntil, b.TargetCategory, b.IsActive, b.CreatedAt,
	)
}

func (b *PromoBuilder) BuildParams() promo.NewPromoCodeParams {
	discount, err := b.BuildDiscount()
	if err != nil {
		panic(err)
	}
	return promo.NewPromoCodeParams{
		Code:           b.Code,
		Discount:       discount,
		MaxUses:        b.MaxUses,
		MaxUsesPerUser: b.MaxUsesPerUser,
		ValidFrom:      b.ValidFrom,
		ValidUntil:     b.ValidUntil,
		TargetCategory: b.TargetCategory,
	}
}
