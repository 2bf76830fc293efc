package commands

import (
	"context"

	domreview "github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/review"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/transaction"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/clock"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	Rating  int
	Comment string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, transactionID uuid.UUID, req CreateReviewRequest, actor user.Actor) (uuid.UUID, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

// CreateReview lets the client rate the professional once per completed
// transaction. A second review surfaces as Conflict from the unique index.
func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, transactionID uuid.UUID, req CreateReviewRequest, actor user.Actor) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Transactions().FindByIDForUpdate(ctx, transactionID)
		if err != nil {
			return err
		}
		rev, err := domreview.NewReview(domreview.Eligibility{
			TransactionID:  t.ID(),
			ClientID:       t.ClientID(),
			ProfessionalID: t.ProfessionalID(),
			Completed:      t.Status() == transaction.StatusCompleted,
		}, actor.ID, req.Rating, req.Comment, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Reviews().Create(ctx, rev); err != nil {
			return err
		}
		createdID = rev.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}
