package promo

import (
	"errors"
	"regexp"
	"strings"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPromoCode       = errors.New("invalid promo code format")
	ErrInvalidDiscountType    = errors.New("invalid discount type")
	ErrInvalidDiscountAmount  = errors.New("fixed discount must be a positive whole number of cents")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be within (0, 100]")
)

var promoCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !promoCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidPromoCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage  DiscountType = "PERCENTAGE"
	DiscountFixedAmount DiscountType = "FIXED_AMOUNT"
)

func (t DiscountType) IsValid() bool {
	return t == DiscountPercentage || t == DiscountFixedAmount
}

// Discount is either a percentage of the candidate amount or a fixed amount in cents.
type Discount struct {
	kind  DiscountType
	value decimal.Decimal
}

func NewDiscount(kind DiscountType, value decimal.Decimal) (Discount, error) {
	switch kind {
	case DiscountPercentage:
		if !value.IsPositive() || value.GreaterThan(decimal.NewFromInt(100)) {
			return Discount{}, ErrInvalidDiscountPercent
		}
	case DiscountFixedAmount:
		if !value.IsPositive() || !value.Equal(value.Truncate(0)) {
			return Discount{}, ErrInvalidDiscountAmount
		}
	default:
		return Discount{}, ErrInvalidDiscountType
	}
	return Discount{kind: kind, value: value}, nil
}

func (d Discount) Type() DiscountType     { return d.kind }
func (d Discount) Value() decimal.Decimal { return d.value }

// Amount is the discount for amount; a fixed discount is capped at amount.
func (d Discount) Amount(amount money.Money) (money.Money, error) {
	if d.kind == DiscountPercentage {
		return money.ApplyPercentage(amount, d.value)
	}
	fixed, err := money.New(d.value.IntPart())
	if err != nil {
		return money.Zero, err
	}
	return money.Min(fixed, amount), nil
}
