// Package money holds the integer minor-unit amount type used by every
// settlement computation, plus the percentage and fee helpers built on it.
package money

import (
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is an amount in minor units (cents). The zero value is a valid zero amount.
type Money int64

const Zero Money = 0

var hundred = decimal.NewFromInt(100)

func New(cents int64) (Money, error) {
	if cents < 0 {
		return Zero, errs.Wrapf(errs.ErrInvalidAmount, "amount %d is negative", cents)
	}
	return Money(cents), nil
}

func (m Money) Cents() int64 { return int64(m) }

func (m Money) IsZero() bool { return m == 0 }

func (m Money) Add(other Money) Money {
	return m + other
}

// Sub fails instead of producing a negative amount.
func (m Money) Sub(other Money) (Money, error) {
	if other > m {
		return Zero, errs.Wrapf(errs.ErrInvalidAmount, "cannot subtract %d from %d", other, m)
	}
	return m - other, nil
}

func (m Money) GreaterThan(other Money) bool { return m > other }

func (m Money) LessThan(other Money) bool { return m < other }

func Min(a, b Money) Money {
	if a < b {
		return a
	}
	return b
}

// ApplyPercentage returns amount*pct/100 rounded half-up to the nearest minor unit.
func ApplyPercentage(amount Money, pct decimal.Decimal) (Money, error) {
	if amount < 0 {
		return Zero, errs.Wrapf(errs.ErrInvalidAmount, "amount %d is negative", amount)
	}
	if pct.IsNegative() {
		return Zero, errs.Wrapf(errs.ErrInvalidAmount, "percentage %s is negative", pct)
	}
	// Round(0) rounds half away from zero, which is half-up for non-negative values.
	v := decimal.NewFromInt(int64(amount)).Mul(pct).Div(hundred).Round(0)
	return Money(v.IntPart()), nil
}

// PlatformFee is the platform's cut of amount. It never exceeds amount.
func PlatformFee(amount Money, ratePct decimal.Decimal) (Money, error) {
	if ratePct.GreaterThan(hundred) {
		return Zero, errs.Wrapf(errs.ErrInvalidAmount, "fee rate %s exceeds 100%%", ratePct)
	}
	fee, err := ApplyPercentage(amount, ratePct)
	if err != nil {
		return Zero, err
	}
	return Min(fee, amount), nil
}

// Split divides amount into the professional payout and the platform fee.
func Split(amount Money, ratePct decimal.Decimal) (payout, fee Money, err error) {
	fee, err = PlatformFee(amount, ratePct)
	if err != nil {
		return Zero, Zero, err
	}
	payout, err = amount.Sub(fee)
	if err != nil {
		return Zero, Zero, err
	}
	return payout, fee, nil
}
