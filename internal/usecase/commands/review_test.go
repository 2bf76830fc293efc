//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/transaction"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/clock"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReviewUseCaseTestSuite struct {
	suite.Suite
	store   *memStore
	useCase commands.ReviewCommands

	client user.Actor
	pro    user.Actor
}

func TestReviewUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ReviewUseCaseTestSuite))
}

func (s *ReviewUseCaseTestSuite) SetupTest() {
	s.store = newMemStore()
	s.useCase = commands.NewReviewUseCase(s.store, clock.NewMockClock(testNow))
	s.client = builder.NewUserBuilder().BuildActor()
	s.pro = builder.NewUserBuilder().AsProfessional().BuildActor()
}

func (s *ReviewUseCaseTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *ReviewUseCaseTestSuite) seed(status transaction.Status) uuid.UUID {
	b := builder.NewTransactionBuilder().WithStatus(status)
	b.ClientID = s.client.ID
	b.ProfessionalID = s.pro.ID
	t := b.BuildDomain()
	s.store.putTransaction(t)
	return t.ID()
}

func (s *ReviewUseCaseTestSuite) TestCreateReview() {
	good := commands.CreateReviewRequest{Rating: 5, Comment: "Excelente trabajo"}

	s.Run("client reviews a completed transaction once", func() {
		id := s.seed(transaction.StatusCompleted)

		reviewID, err := s.useCase.CreateReview(context.Background(), id, good, s.client)
		require.NoError(s.T(), err)
		assert.NotEqual(s.T(), uuid.Nil, reviewID)

		_, err = s.useCase.CreateReview(context.Background(), id, good, s.client)
		assert.ErrorIs(s.T(), err, errs.ErrConflict)
	})

	s.Run("transaction must be completed", func() {
		id := s.seed(transaction.StatusInProgress)

		_, err := s.useCase.CreateReview(context.Background(), id, good, s.client)

		assert.ErrorIs(s.T(), err, errs.ErrInvalidState)
	})

	s.Run("professional cannot review", func() {
		id := s.seed(transaction.StatusCompleted)

		_, err := s.useCase.CreateReview(context.Background(), id, good, s.pro)

		assert.ErrorIs(s.T(), err, errs.ErrForbidden)
	})

	s.Run("rating out of range", func() {
		id := s.seed(transaction.StatusCompleted)

		_, err := s.useCase.CreateReview(context.Background(), id, commands.CreateReviewRequest{Rating: 6}, s.client)

		assert.Error(s.T(), err)
	})

	s.Run("unknown transaction", func() {
		_, err := s.useCase.CreateReview(context.Background(), uuid.New(), good, s.client)

		assert.ErrorIs(s.T(), err, errs.ErrNotFound)
	})
}
