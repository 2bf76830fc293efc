package promo

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidUsageLimit = errors.New("usage limits must be positive when set")
	ErrInvalidWindow     = errors.New("validUntil must not precede validFrom")
)

type PromoCode struct {
	id             uuid.UUID
	code           Code
	discount       Discount
	maxUses        *int
	usesCount      int
	maxUsesPerUser *int
	validFrom      time.Time
	validUntil     *time.Time
	targetCategory *string
	isActive       bool
	createdAt      time.Time
}

type NewPromoCodeParams struct {
	Code           string
	Discount       Discount
	MaxUses        *int
	MaxUsesPerUser *int
	ValidFrom      time.Time
	ValidUntil     *time.Time
	TargetCategory *string
}

func NewPromoCode(params NewPromoCodeParams, now time.Time) (*PromoCode, error) {
	code, err := NewCode(params.Code)
	if err != nil {
		return nil, err
	}
	if params.Discount.Type() == "" {
		return nil, ErrInvalidDiscountType
	}
	if (params.MaxUses != nil && *params.MaxUses <= 0) || (params.MaxUsesPerUser != nil && *params.MaxUsesPerUser <= 0) {
		return nil, ErrInvalidUsageLimit
	}
	validFrom := params.ValidFrom
	if validFrom.IsZero() {
		validFrom = now
	}
	if params.ValidUntil != nil && params.ValidUntil.Before(validFrom) {
		return nil, ErrInvalidWindow
	}

	return &PromoCode{
		id:             uuid.New(),
		code:           code,
		discount:       params.Discount,
		maxUses:        params.MaxUses,
		maxUsesPerUser: params.MaxUsesPerUser,
		validFrom:      validFrom,
		validUntil:     params.ValidUntil,
		targetCategory: params.TargetCategory,
		isActive:       true,
		createdAt:      now,
	}, nil
}

func ReconstructPromoCode(
	id uuid.UUID,
	code string,
	discount Discount,
	maxUses *int,
	usesCount int,
	maxUsesPerUser *int,
	validFrom time.Time,
	validUntil *time.Time,
	targetCategory *string,
	isActive bool,
	createdAt time.Time,
) *PromoCode {
	return &PromoCode{
		id:             id,
		code:           Code(code),
		discount:       discount,
		maxUses:        maxUses,
		usesCount:      usesCount,
		maxUsesPerUser: maxUsesPerUser,
		validFrom:      validFrom,
		validUntil:     validUntil,
		targetCategory: targetCategory,
		isActive:       isActive,
		createdAt:      createdAt,
	}
}

func (p *PromoCode) IsWithinWindow(t time.Time) bool {
	if t.Before(p.validFrom) {
		return false
	}
	if p.validUntil != nil && t.After(*p.validUntil) {
		return false
	}
	return true
}

func (p *PromoCode) IsExhausted() bool {
	return p.maxUses != nil && p.usesCount >= *p.maxUses
}

func (p *PromoCode) ID() uuid.UUID           { return p.id }
func (p *PromoCode) Code() Code              { return p.code }
func (p *PromoCode) Discount() Discount      { return p.discount }
func (p *PromoCode) MaxUses() *int           { return p.maxUses }
func (p *PromoCode) UsesCount() int          { return p.usesCount }
func (p *PromoCode) MaxUsesPerUser() *int    { return p.maxUsesPerUser }
func (p *PromoCode) ValidFrom() time.Time    { return p.validFrom }
func (p *PromoCode) ValidUntil() *time.Time  { return p.validUntil }
func (p *PromoCode) TargetCategory() *string { return p.targetCategory }
func (p *PromoCode) IsActive() bool          { return p.isActive }
func (p *PromoCode) CreatedAt() time.Time    { return p.createdAt }

// Usage is the append-only record of one redemption.
type Usage struct {
	CodeID        uuid.UUID
	UserID        uuid.UUID
	TransactionID uuid.UUID
	UsedAt        time.Time
}
