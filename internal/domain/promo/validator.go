package promo

import (
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

// Candidate describes the purchase a promo code is being applied to.
type Candidate struct {
	UserID   uuid.UUID
	Amount   money.Money
	Category string
}

// Validate checks code against candidate and returns the discount it grants.
// priorUsages is the number of PromoCodeUsage rows the candidate user already has
// for this code. Checks run in a fixed order and the first failure wins.
// Validate never mutates code.
func Validate(code *PromoCode, priorUsages int, c Candidate, now time.Time) (money.Money, error) {
	if code == nil || !code.isActive {
		return money.Zero, errs.Wrap(errs.ErrNotFound, "promo code not found or inactive")
	}
	if c.Amount < 0 {
		return money.Zero, errs.Wrapf(errs.ErrInvalidAmount, "candidate amount %d is negative", c.Amount)
	}
	if !code.IsWithinWindow(now) {
		return money.Zero, errs.Wrapf(errs.ErrExpired, "promo code %s is outside its validity window", code.code)
	}
	if code.IsExhausted() {
		return money.Zero, errs.Wrapf(errs.ErrUsageExceeded, "promo code %s reached %d uses", code.code, *code.maxUses)
	}
	if code.maxUsesPerUser != nil && priorUsages >= *code.maxUsesPerUser {
		return money.Zero, errs.Wrapf(errs.ErrPerUserLimitExceeded, "user already redeemed %s %d times", code.code, priorUsages)
	}
	if !CategoryApplies(code.targetCategory, c.Category) {
		return money.Zero, errs.Wrapf(errs.ErrCategoryMismatch, "promo code %s targets %q, got %q", code.code, *code.targetCategory, c.Category)
	}

	return code.discount.Amount(c.Amount)
}
