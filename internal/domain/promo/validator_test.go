//go:build unit

package promo_test

import (
	"testing"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/promo"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validateCase struct {
	name        string
	mutate      func(*builder.PromoBuilder)
	priorUsages int
	amount      money.Money
	category    string
	want        money.Money
	errIs       error
}

func TestValidate(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	runValidateCases(t, now, []validateCase{
		{
			name:     "fixed discount on matching category",
			mutate:   func(b *builder.PromoBuilder) { b.WithTargetCategory("plomería") },
			amount:   300,
			category: "plomeria",
			want:     50,
		},
		{
			name:     "fixed discount capped at amount",
			mutate:   func(b *builder.PromoBuilder) { b.WithFixed(500) },
			amount:   300,
			category: "electricidad",
			want:     300,
		},
		{
			name:     "percentage discount rounds half-up",
			mutate:   func(b *builder.PromoBuilder) { b.WithPercentage("15") },
			amount:   10,
			category: "limpieza",
			want:     2,
		},
		{
			name:     "inactive code is not found",
			mutate:   func(b *builder.PromoBuilder) { b.Inactive() },
			amount:   300,
			errIs:    errs.ErrNotFound,
			category: "plomeria",
		},
		{
			name:     "before validFrom is expired",
			mutate:   func(b *builder.PromoBuilder) { b.WithWindow(future, nil) },
			amount:   300,
			errIs:    errs.ErrExpired,
			category: "plomeria",
		},
		{
			name:     "after validUntil is expired",
			mutate:   func(b *builder.PromoBuilder) { b.WithWindow(now.Add(-48*time.Hour), &past) },
			amount:   300,
			errIs:    errs.ErrExpired,
			category: "plomeria",
		},
		{
			name:     "global limit reached",
			mutate:   func(b *builder.PromoBuilder) { b.WithMaxUses(10).WithUsesCount(10) },
			amount:   300,
			errIs:    errs.ErrUsageExceeded,
			category: "plomeria",
		},
		{
			name:        "per-user limit reached",
			mutate:      func(b *builder.PromoBuilder) { b.WithMaxUsesPerUser(1) },
			priorUsages: 1,
			amount:      300,
			errIs:       errs.ErrPerUserLimitExceeded,
			category:    "plomeria",
		},
		{
			name:        "per-user limit not yet reached",
			mutate:      func(b *builder.PromoBuilder) { b.WithMaxUsesPerUser(2) },
			priorUsages: 1,
			amount:      300,
			want:        50,
			category:    "plomeria",
		},
		{
			name:     "category mismatch",
			mutate:   func(b *builder.PromoBuilder) { b.WithTargetCategory("plomeria") },
			amount:   300,
			errIs:    errs.ErrCategoryMismatch,
			category: "electricidad",
		},
		{
			name:     "wildcard category TODOS matches anything",
			mutate:   func(b *builder.PromoBuilder) { b.WithTargetCategory("TODOS") },
			amount:   300,
			want:     50,
			category: "jardineria",
		},
		{
			name: "expiry checked before usage limit",
			mutate: func(b *builder.PromoBuilder) {
				b.WithWindow(now.Add(-48*time.Hour), &past).WithMaxUses(1).WithUsesCount(1)
			},
			amount:   300,
			errIs:    errs.ErrExpired,
			category: "plomeria",
		},
		{
			name: "global limit checked before per-user limit",
			mutate: func(b *builder.PromoBuilder) {
				b.WithMaxUses(1).WithUsesCount(1).WithMaxUsesPerUser(1)
			},
			priorUsages: 1,
			amount:      300,
			errIs:       errs.ErrUsageExceeded,
			category:    "plomeria",
		},
	})

	t.Run("missing code is not found", func(t *testing.T) {
		_, err := promo.Validate(nil, 0, promo.Candidate{UserID: uuid.New(), Amount: 100}, now)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("validation does not mutate the code", func(t *testing.T) {
		code := builder.NewPromoBuilder().WithMaxUses(5).WithUsesCount(2).BuildDomain()
		_, err := promo.Validate(code, 0, promo.Candidate{UserID: uuid.New(), Amount: 300, Category: "plomeria"}, now)
		require.NoError(t, err)
		assert.Equal(t, 2, code.UsesCount())
	})
}

func runValidateCases(t *testing.T, now time.Time, cases []validateCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewPromoBuilder()
			if c.mutate != nil {
				b.With(c.mutate)
			}
			got, err := promo.Validate(b.BuildDomain(), c.priorUsages, promo.Candidate{
				UserID:   uuid.New(),
				Amount:   c.amount,
				Category: c.category,
			}, now)

			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestCategoryApplies(t *testing.T) {
	target := func(s string) *string { return &s }

	assert.True(t, promo.CategoryApplies(nil, "anything"))
	assert.True(t, promo.CategoryApplies(target(""), "anything"))
	assert.True(t, promo.CategoryApplies(target("ALL"), "anything"))
	assert.True(t, promo.CategoryApplies(target("*"), "anything"))
	assert.True(t, promo.CategoryApplies(target("Plomería"), "PLOMERIA"))
	assert.False(t, promo.CategoryApplies(target("plomeria"), "pintura"))
}

func TestNewDiscount(t *testing.T) {
	b := builder.NewPromoBuilder()

	_, err := b.WithPercentage("0").BuildDiscount()
	require.ErrorIs(t, err, promo.ErrInvalidDiscountPercent)

	_, err = b.WithPercentage("100.5").BuildDiscount()
	require.ErrorIs(t, err, promo.ErrInvalidDiscountPercent)

	_, err = b.WithPercentage("12.5").BuildDiscount()
	require.NoError(t, err)

	_, err = b.WithFixed(0).BuildDiscount()
	require.ErrorIs(t, err, promo.ErrInvalidDiscountAmount)
}

func TestNewPromoCode(t *testing.T) {
	now := time.Now()

	code, err := promo.NewPromoCode(builder.NewPromoBuilder().BuildParams(), now)
	require.NoError(t, err)
	assert.Equal(t, promo.Code("PLOMERIA50"), code.Code())
	assert.True(t, code.IsActive())
	assert.Zero(t, code.UsesCount())

	params := builder.NewPromoBuilder().With(func(b *builder.PromoBuilder) { b.Code = "no spaces allowed" }).BuildParams()
	_, err = promo.NewPromoCode(params, now)
	require.ErrorIs(t, err, promo.ErrInvalidPromoCode)

	params = builder.NewPromoBuilder().WithMaxUses(0).BuildParams()
	_, err = promo.NewPromoCode(params, now)
	require.ErrorIs(t, err, promo.ErrInvalidUsageLimit)
}
