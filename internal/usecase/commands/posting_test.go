//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/posting"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/transaction"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/clock"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// Builders default to windows around the wall clock, so tests run at "now".
var testNow = time.Now().UTC().Truncate(time.Second)

func testSettings() commands.Settings {
	return commands.Settings{FeeRatePct: decimal.NewFromInt(5)}
}

type PostingUseCaseTestSuite struct {
	suite.Suite
	store   *memStore
	clock   *clock.MockClock
	useCase commands.PostingCommands

	client user.Actor
	proA   user.Actor
	proB   user.Actor
}

func TestPostingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(PostingUseCaseTestSuite))
}

func (s *PostingUseCaseTestSuite) SetupTest() {
	s.store = newMemStore()
	s.clock = clock.NewMockClock(testNow)
	s.useCase = commands.NewPostingUseCase(s.store, s.clock, testSettings())
	s.client = builder.NewUserBuilder().BuildActor()
	s.proA = builder.NewUserBuilder().AsProfessional().BuildActor()
	s.proB = builder.NewUserBuilder().AsProfessional().BuildActor()
}

func (s *PostingUseCaseTestSuite) SetupSubTest() {
	s.SetupTest()
}

// seedPosting stores an open posting owned by s.client with offers of 350 and
// 400 from proA and proB.
func (s *PostingUseCaseTestSuite) seedPosting() (*builder.PostingBuilder, *posting.Offer, *posting.Offer) {
	b := builder.NewPostingBuilder().WithClientID(s.client.ID)
	b.CreatedAt = testNow.Add(-time.Hour)
	offerA := b.BuildOffer(s.proA.ID, 350, posting.OfferPending)
	offerB := b.BuildOffer(s.proB.ID, 400, posting.OfferPending)
	s.store.putPosting(b.BuildDomain(), offerA, offerB)
	return b, offerA, offerB
}

func (s *PostingUseCaseTestSuite) TestCreatePosting() {
	s.Run("client publishes an open posting", func() {
		lo, hi := money.Money(20000), money.Money(50000)
		id, err := s.useCase.CreatePosting(context.Background(), commands.CreatePostingRequest{
			Title:    "Reparar fuga",
			Category: "plomería",
			PriceMin: &lo,
			PriceMax: &hi,
		}, s.client)

		require.NoError(s.T(), err)
		stored := s.store.posting(id)
		assert.Equal(s.T(), posting.StatusOpen, stored.Status())
		assert.Equal(s.T(), s.client.ID, stored.ClientID())
	})

	s.Run("professionals cannot publish", func() {
		_, err := s.useCase.CreatePosting(context.Background(), commands.CreatePostingRequest{
			Title:    "Reparar fuga",
			Category: "plomería",
		}, s.proA)

		assert.ErrorIs(s.T(), err, errs.ErrForbidden)
	})
}

func (s *PostingUseCaseTestSuite) TestSubmitOffer() {
	s.Run("professional offers inside the price box", func() {
		b, _, _ := s.seedPosting()
		pro := builder.NewUserBuilder().AsProfessional().BuildActor()

		id, err := s.useCase.SubmitOffer(context.Background(), b.ID, commands.SubmitOfferRequest{Price: 30000}, pro)

		require.NoError(s.T(), err)
		o := s.store.offer(id)
		assert.Equal(s.T(), posting.OfferPending, o.Status())
		assert.Equal(s.T(), money.Money(30000), o.Price())
	})

	s.Run("clients cannot offer", func() {
		b, _, _ := s.seedPosting()

		_, err := s.useCase.SubmitOffer(context.Background(), b.ID, commands.SubmitOfferRequest{Price: 30000}, s.client)

		assert.ErrorIs(s.T(), err, errs.ErrForbidden)
	})

	s.Run("unknown posting", func() {
		_, err := s.useCase.SubmitOffer(context.Background(), uuid.New(), commands.SubmitOfferRequest{Price: 30000}, s.proA)

		assert.ErrorIs(s.T(), err, errs.ErrNotFound)
	})
}

func (s *PostingUseCaseTestSuite) TestAcceptOffer() {
	s.Run("accepting one offer rejects the rest and opens a transaction", func() {
		b, offerA, offerB := s.seedPosting()

		res, err := s.useCase.AcceptOffer(context.Background(), offerA.ID(), commands.AcceptOfferRequest{}, s.client)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), []uuid.UUID{offerB.ID()}, res.RejectedOffers)
		assert.Equal(s.T(), money.Money(0), res.DiscountAmount)
		assert.Equal(s.T(), money.Money(350), res.EscrowAmount)
		assert.Equal(s.T(), money.Money(18), res.PlatformFee)
		assert.Equal(s.T(), transaction.StatusPendingSolicitud, res.Status)

		assert.Equal(s.T(), posting.StatusClosed, s.store.posting(b.ID).Status())
		assert.Equal(s.T(), posting.OfferAccepted, s.store.offer(offerA.ID()).Status())
		assert.Equal(s.T(), posting.OfferRejected, s.store.offer(offerB.ID()).Status())

		t, ok := s.store.transaction(res.TransactionID)
		require.True(s.T(), ok)
		assert.Equal(s.T(), s.proA.ID, t.ProfessionalID())
		assert.Equal(s.T(), offerA.ID(), *t.OfferID())
		assert.Equal(s.T(), []string{shared.TopicTransactionCreated, shared.TopicOfferAccepted}, s.store.topics())
	})

	s.Run("promo code discounts the escrow and records one usage", func() {
		_, offerA, _ := s.seedPosting()
		s.store.putPromo(builder.NewPromoBuilder().WithFixed(50).WithTargetCategory("PLOMERIA").BuildDomain())
		price := offerA.Price()
		require.Equal(s.T(), money.Money(350), price)

		res, err := s.useCase.AcceptOffer(context.Background(), offerA.ID(), commands.AcceptOfferRequest{PromoCode: "plomeria50"}, s.client)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), money.Money(50), res.DiscountAmount)
		assert.Equal(s.T(), money.Money(300), res.EscrowAmount)
		assert.Equal(s.T(), money.Money(15), res.PlatformFee)
		assert.Equal(s.T(), 1, s.store.usageCount())
		assert.Equal(s.T(), 1, s.store.promo("PLOMERIA50").UsesCount())
	})

	s.Run("promo rejection rolls the whole acceptance back", func() {
		b, offerA, offerB := s.seedPosting()
		s.store.putPromo(builder.NewPromoBuilder().WithTargetCategory("ELECTRICIDAD").BuildDomain())

		_, err := s.useCase.AcceptOffer(context.Background(), offerA.ID(), commands.AcceptOfferRequest{PromoCode: "PLOMERIA50"}, s.client)

		assert.ErrorIs(s.T(), err, errs.ErrCategoryMismatch)
		assert.Equal(s.T(), posting.StatusOpen, s.store.posting(b.ID).Status())
		assert.Equal(s.T(), posting.OfferPending, s.store.offer(offerA.ID()).Status())
		assert.Equal(s.T(), posting.OfferPending, s.store.offer(offerB.ID()).Status())
		assert.Zero(s.T(), s.store.usageCount())
		assert.Empty(s.T(), s.store.topics())
	})

	s.Run("unknown promo code is not found", func() {
		_, offerA, _ := s.seedPosting()

		_, err := s.useCase.AcceptOffer(context.Background(), offerA.ID(), commands.AcceptOfferRequest{PromoCode: "NOPE"}, s.client)

		assert.ErrorIs(s.T(), err, errs.ErrNotFound)
	})

	s.Run("only the posting's client accepts", func() {
		_, offerA, _ := s.seedPosting()
		stranger := builder.NewUserBuilder().BuildActor()

		_, err := s.useCase.AcceptOffer(context.Background(), offerA.ID(), commands.AcceptOfferRequest{}, stranger)

		assert.ErrorIs(s.T(), err, errs.ErrForbidden)
	})

	s.Run("admin may accept on the client's behalf", func() {
		_, offerA, _ := s.seedPosting()
		admin := builder.NewUserBuilder().AsAdmin().BuildActor()

		res, err := s.useCase.AcceptOffer(context.Background(), offerA.ID(), commands.AcceptOfferRequest{}, admin)

		require.NoError(s.T(), err)
		t, _ := s.store.transaction(res.TransactionID)
		assert.Equal(s.T(), s.client.ID, t.ClientID())
	})

	s.Run("second acceptance on a closed posting fails", func() {
		_, offerA, offerB := s.seedPosting()
		_, err := s.useCase.AcceptOffer(context.Background(), offerA.ID(), commands.AcceptOfferRequest{}, s.client)
		require.NoError(s.T(), err)

		_, err = s.useCase.AcceptOffer(context.Background(), offerB.ID(), commands.AcceptOfferRequest{}, s.client)

		assert.ErrorIs(s.T(), err, errs.ErrInvalidState)
	})

	s.Run("expired posting cannot be resolved", func() {
		b := builder.NewPostingBuilder().WithClientID(s.client.ID).WithExpiresAt(testNow.Add(-time.Minute))
		offer := b.BuildOffer(s.proA.ID, 350, posting.OfferPending)
		s.store.putPosting(b.BuildDomain(), offer)

		_, err := s.useCase.AcceptOffer(context.Background(), offer.ID(), commands.AcceptOfferRequest{}, s.client)

		assert.ErrorIs(s.T(), err, errs.ErrInvalidState)
	})
}

func (s *PostingUseCaseTestSuite) TestForceClosePosting() {
	s.Run("admin closes and rejects pending offers", func() {
		b, offerA, offerB := s.seedPosting()
		admin := builder.NewUserBuilder().AsAdmin().BuildActor()

		require.NoError(s.T(), s.useCase.ForceClosePosting(context.Background(), b.ID, admin))

		assert.Equal(s.T(), posting.StatusClosed, s.store.posting(b.ID).Status())
		assert.Equal(s.T(), posting.OfferRejected, s.store.offer(offerA.ID()).Status())
		assert.Equal(s.T(), posting.OfferRejected, s.store.offer(offerB.ID()).Status())
	})

	s.Run("clients cannot force close", func() {
		b, _, _ := s.seedPosting()

		err := s.useCase.ForceClosePosting(context.Background(), b.ID, s.client)

		assert.ErrorIs(s.T(), err, errs.ErrForbidden)
		assert.Equal(s.T(), posting.StatusOpen, s.store.posting(b.ID).Status())
	})
}

func (s *PostingUseCaseTestSuite) TestExpireDuePostings() {
	s.Run("expires only overdue open postings", func() {
		overdue := builder.NewPostingBuilder().WithClientID(s.client.ID).WithExpiresAt(testNow.Add(-time.Hour))
		pending := overdue.BuildOffer(s.proA.ID, 30000, posting.OfferPending)
		s.store.putPosting(overdue.BuildDomain(), pending)

		future := builder.NewPostingBuilder().WithClientID(s.client.ID).WithExpiresAt(testNow.Add(time.Hour))
		s.store.putPosting(future.BuildDomain())

		closed := builder.NewPostingBuilder().WithStatus(posting.StatusClosed).WithExpiresAt(testNow.Add(-time.Hour))
		s.store.putPosting(closed.BuildDomain())

		n, err := s.useCase.ExpireDuePostings(context.Background(), 10)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), 1, n)
		assert.Equal(s.T(), posting.StatusExpired, s.store.posting(overdue.ID).Status())
		assert.Equal(s.T(), posting.OfferRejected, s.store.offer(pending.ID()).Status())
		assert.Equal(s.T(), posting.StatusOpen, s.store.posting(future.ID).Status())
		assert.Equal(s.T(), posting.StatusClosed, s.store.posting(closed.ID).Status())
	})

	s.Run("respects the limit", func() {
		for range 3 {
			s.store.putPosting(builder.NewPostingBuilder().WithExpiresAt(testNow.Add(-time.Hour)).BuildDomain())
		}

		n, err := s.useCase.ExpireDuePostings(context.Background(), 2)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), 2, n)
	})
}
