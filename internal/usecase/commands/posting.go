package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/posting"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/transaction"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/clock"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreatePostingRequest struct {
	Title       string
	Description string
	Category    string
	PriceMin    *money.Money
	PriceMax    *money.Money
	ExpiresAt   *time.Time
}

type SubmitOfferRequest struct {
	Price   money.Money
	Message string
}

type AcceptOfferRequest struct {
	PromoCode     string
	ScheduledDate *time.Time
	Notes         string
}

type AcceptOfferResult struct {
	TransactionID  uuid.UUID
	OfferID        uuid.UUID
	RejectedOffers []uuid.UUID
	DiscountAmount money.Money
	EscrowAmount   money.Money
	PlatformFee    money.Money
	Status         transaction.Status
}

type PostingCommands interface {
	CreatePosting(ctx context.Context, req CreatePostingRequest, actor user.Actor) (uuid.UUID, error)
	SubmitOffer(ctx context.Context, postingID uuid.UUID, req SubmitOfferRequest, actor user.Actor) (uuid.UUID, error)
	AcceptOffer(ctx context.Context, offerID uuid.UUID, req AcceptOfferRequest, actor user.Actor) (*AcceptOfferResult, error)
	ForceClosePosting(ctx context.Context, postingID uuid.UUID, actor user.Actor) error
	ExpirePosting(ctx context.Context, postingID uuid.UUID) error
	// ExpireDuePostings expires up to limit overdue OPEN postings and returns
	// how many it expired.
	ExpireDuePostings(ctx context.Context, limit int) (int, error)
}

type postingUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings Settings
}

func NewPostingUseCase(uow shared.UnitOfWork, clk clock.Clock, settings Settings) PostingCommands {
	return &postingUseCaseImpl{uow: uow, clock: clk, settings: settings}
}

func (uc *postingUseCaseImpl) CreatePosting(ctx context.Context, req CreatePostingRequest, actor user.Actor) (uuid.UUID, error) {
	if actor.Role != user.RoleClient && !actor.IsAdmin() {
		return uuid.Nil, errs.Wrap(errs.ErrForbidden, "only clients publish postings")
	}
	p, err := posting.NewPosting(posting.NewPostingParams{
		ClientID:    actor.ID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		ExpiresAt:   req.ExpiresAt,
	}, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Postings().Create(ctx, p)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return p.ID(), nil
}

func (uc *postingUseCaseImpl) SubmitOffer(ctx context.Context, postingID uuid.UUID, req SubmitOfferRequest, actor user.Actor) (uuid.UUID, error) {
	if actor.Role != user.RoleProfessional {
		return uuid.Nil, errs.Wrap(errs.ErrForbidden, "only professionals submit offers")
	}

	var offerID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Postings().FindByIDForUpdate(ctx, postingID)
		if err != nil {
			return err
		}
		o, err := posting.NewOffer(p, actor.ID, req.Price, req.Message, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Offers().Create(ctx, o); err != nil {
			return err
		}
		offerID = o.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return offerID, nil
}

func (uc *postingUseCaseImpl) AcceptOffer(ctx context.Context, offerID uuid.UUID, req AcceptOfferRequest, actor user.Actor) (*AcceptOfferResult, error) {
	var result *AcceptOfferResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		offer, err := tx.Offers().FindByID(ctx, offerID)
		if err != nil {
			return err
		}
		// Lock order: posting first, then its offers.
		p, err := tx.Postings().FindByIDForUpdate(ctx, offer.PostingID())
		if err != nil {
			return err
		}
		offers, err := tx.Offers().ListByPostingForUpdate(ctx, p.ID())
		if err != nil {
			return err
		}

		acc, err := posting.Accept(p, offers, offerID, actor, now)
		if err != nil {
			return err
		}

		if err := tx.Offers().UpdateStatus(ctx, acc.Accepted, posting.OfferPending); err != nil {
			return err
		}
		rejected := make([]uuid.UUID, 0, len(acc.Rejected))
		for _, o := range acc.Rejected {
			if err := tx.Offers().UpdateStatus(ctx, o, posting.OfferPending); err != nil {
				return err
			}
			rejected = append(rejected, o.ID())
		}
		if err := tx.Postings().UpdateStatus(ctx, acc.Posting, posting.StatusOpen); err != nil {
			return err
		}

		in := acc.Input
		t, err := openTransaction(ctx, tx, uc.settings, transactionSeed{
			ClientID:       in.ClientID,
			ProfessionalID: in.ProfessionalID,
			Price:          in.PriceAgreed,
			Origin:         transaction.FromPosting(in.PostingID),
			OfferID:        &in.OfferID,
			Category:       in.Category,
			PromoCode:      req.PromoCode,
			ScheduledDate:  req.ScheduledDate,
			Notes:          req.Notes,
		}, now)
		if err != nil {
			return err
		}

		if err := enqueue(ctx, tx, shared.TopicOfferAccepted, in.OfferID, shared.OfferAcceptedEvent{
			OfferID:        in.OfferID,
			PostingID:      in.PostingID,
			ProfessionalID: in.ProfessionalID,
			TransactionID:  t.ID(),
			RejectedOffers: rejected,
		}, now); err != nil {
			return err
		}

		result = &AcceptOfferResult{
			TransactionID:  t.ID(),
			OfferID:        in.OfferID,
			RejectedOffers: rejected,
			DiscountAmount: t.DiscountAmount(),
			EscrowAmount:   t.EscrowAmount(),
			PlatformFee:    t.PlatformFee(),
			Status:         t.Status(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("offer accepted",
		"offer_id", offerID,
		"transaction_id", result.TransactionID,
		"rejected", len(result.RejectedOffers))
	return result, nil
}

func (uc *postingUseCaseImpl) ForceClosePosting(ctx context.Context, postingID uuid.UUID, actor user.Actor) error {
	if !actor.IsPrivileged() {
		return errs.Wrap(errs.ErrForbidden, "force close requires an admin")
	}
	return uc.withdraw(ctx, postingID, posting.StatusClosed)
}

func (uc *postingUseCaseImpl) ExpirePosting(ctx context.Context, postingID uuid.UUID) error {
	return uc.withdraw(ctx, postingID, posting.StatusExpired)
}

func (uc *postingUseCaseImpl) ExpireDuePostings(ctx context.Context, limit int) (int, error) {
	var ids []uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.Postings().ListExpiredOpen(ctx, uc.clock.Now(), limit)
		return err
	})
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, id := range ids {
		if err := uc.ExpirePosting(ctx, id); err != nil {
			// Accepted or closed between listing and locking.
			slog.Warn("posting expiry skipped", "posting_id", id, "error", err)
			continue
		}
		expired++
	}
	return expired, nil
}

func (uc *postingUseCaseImpl) withdraw(ctx context.Context, postingID uuid.UUID, to posting.Status) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Postings().FindByIDForUpdate(ctx, postingID)
		if err != nil {
			return err
		}
		offers, err := tx.Offers().ListByPostingForUpdate(ctx, postingID)
		if err != nil {
			return err
		}
		rejected, err := posting.Withdraw(p, offers, to, uc.clock.Now())
		if err != nil {
			return err
		}
		for _, o := range rejected {
			if err := tx.Offers().UpdateStatus(ctx, o, posting.OfferPending); err != nil {
				return err
			}
		}
		if err := tx.Postings().UpdateStatus(ctx, p, posting.StatusOpen); err != nil {
			return err
		}
		slog.Info("posting withdrawn", "posting_id", postingID, "status", to, "rejected", len(rejected))
		return nil
	})
}
