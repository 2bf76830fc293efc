//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/promo"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/clock"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PromoUseCaseTestSuite struct {
	suite.Suite
	store   *memStore
	useCase commands.PromoCommands

	client user.Actor
	admin  user.Actor
}

func TestPromoUseCaseSuite(t *testing.T) {
	suite.Run(t, new(PromoUseCaseTestSuite))
}

func (s *PromoUseCaseTestSuite) SetupTest() {
	s.store = newMemStore()
	s.useCase = commands.NewPromoUseCase(s.store, clock.NewMockClock(testNow))
	s.client = builder.NewUserBuilder().BuildActor()
	s.admin = builder.NewUserBuilder().AsAdmin().BuildActor()
}

func (s *PromoUseCaseTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *PromoUseCaseTestSuite) createRequest() commands.CreatePromoCodeRequest {
	until := testNow.Add(7 * 24 * time.Hour)
	category := "Plomería"
	return commands.CreatePromoCodeRequest{
		Code:           "verano10",
		DiscountType:   promo.DiscountPercentage,
		DiscountValue:  decimal.NewFromInt(10),
		ValidUntil:     &until,
		TargetCategory: &category,
	}
}

func (s *PromoUseCaseTestSuite) TestCreatePromoCode() {
	s.Run("admin creates a normalized code", func() {
		id, err := s.useCase.CreatePromoCode(context.Background(), s.createRequest(), s.admin)

		require.NoError(s.T(), err)
		stored := s.store.promo("VERANO10")
		assert.Equal(s.T(), id, stored.ID())
		assert.True(s.T(), stored.IsActive())
		assert.Equal(s.T(), testNow, stored.ValidFrom())
		assert.Zero(s.T(), stored.UsesCount())
	})

	s.Run("duplicate code", func() {
		_, err := s.useCase.CreatePromoCode(context.Background(), s.createRequest(), s.admin)
		require.NoError(s.T(), err)

		_, err = s.useCase.CreatePromoCode(context.Background(), s.createRequest(), s.admin)

		assert.ErrorIs(s.T(), err, errs.ErrConflict)
	})

	s.Run("only admins manage codes", func() {
		_, err := s.useCase.CreatePromoCode(context.Background(), s.createRequest(), s.client)

		assert.ErrorIs(s.T(), err, errs.ErrForbidden)
	})

	s.Run("percentage above 100 is rejected", func() {
		req := s.createRequest()
		req.DiscountValue = decimal.NewFromInt(150)

		_, err := s.useCase.CreatePromoCode(context.Background(), req, s.admin)

		assert.Error(s.T(), err)
	})
}

func (s *PromoUseCaseTestSuite) TestPreviewDiscount() {
	s.Run("preview computes the discount without recording usage", func() {
		s.store.putPromo(builder.NewPromoBuilder().WithTargetCategory("Plomeria").BuildDomain())

		preview, err := s.useCase.PreviewDiscount(context.Background(), commands.PreviewDiscountRequest{
			Code: "plomeria50", Amount: 300, Category: "plomería",
		}, s.client)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), &commands.DiscountPreview{Code: "PLOMERIA50", DiscountAmount: 50, FinalAmount: 250}, preview)
		assert.Zero(s.T(), s.store.usageCount())
		assert.Zero(s.T(), s.store.promo("PLOMERIA50").UsesCount())
	})

	s.Run("fixed discount larger than the amount is capped", func() {
		s.store.putPromo(builder.NewPromoBuilder().WithFixed(500).BuildDomain())

		preview, err := s.useCase.PreviewDiscount(context.Background(), commands.PreviewDiscountRequest{
			Code: "PLOMERIA50", Amount: 300,
		}, s.client)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), money.Money(300), preview.DiscountAmount)
		assert.Zero(s.T(), preview.FinalAmount)
	})

	s.Run("validator failures", func() {
		expired := testNow.Add(-time.Hour)
		cases := []struct {
			name  string
			promo *builder.PromoBuilder
			req   commands.PreviewDiscountRequest
			want  error
		}{
			{"unknown code", nil, commands.PreviewDiscountRequest{Code: "NOPE", Amount: 300}, errs.ErrNotFound},
			{"inactive", builder.NewPromoBuilder().Inactive(), commands.PreviewDiscountRequest{Code: "PLOMERIA50", Amount: 300}, errs.ErrNotFound},
			{"negative amount", builder.NewPromoBuilder(), commands.PreviewDiscountRequest{Code: "PLOMERIA50", Amount: -1}, errs.ErrInvalidAmount},
			{"expired", builder.NewPromoBuilder().WithWindow(testNow.Add(-48*time.Hour), &expired), commands.PreviewDiscountRequest{Code: "PLOMERIA50", Amount: 300}, errs.ErrExpired},
			{"exhausted", builder.NewPromoBuilder().WithMaxUses(2).WithUsesCount(2), commands.PreviewDiscountRequest{Code: "PLOMERIA50", Amount: 300}, errs.ErrUsageExceeded},
			{"other category", builder.NewPromoBuilder().WithTargetCategory("electricidad"), commands.PreviewDiscountRequest{Code: "PLOMERIA50", Amount: 300, Category: "plomeria"}, errs.ErrCategoryMismatch},
		}
		for _, tc := range cases {
			store := newMemStore()
			if tc.promo != nil {
				store.putPromo(tc.promo.BuildDomain())
			}
			uc := commands.NewPromoUseCase(store, clock.NewMockClock(testNow))

			_, err := uc.PreviewDiscount(context.Background(), tc.req, s.client)

			assert.ErrorIs(s.T(), err, tc.want, tc.name)
		}
	})
}
