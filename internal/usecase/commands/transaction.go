package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/transaction"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/metrics"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/clock"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookServiceRequest struct {
	ServiceID     uuid.UUID
	PromoCode     string
	ScheduledDate *time.Time
	Notes         string

	// IdempotencyKey replays the first booking made with the same key.
	IdempotencyKey uuid.UUID `json:"-"`
}

type TransactionResult struct {
	TransactionID uuid.UUID
	Status        transaction.Status
	Replayed      bool
}

type TransactionCommands interface {
	// BookService opens a transaction from a professional's proactive service.
	BookService(ctx context.Context, req BookServiceRequest, actor user.Actor) (*TransactionResult, error)
	Schedule(ctx context.Context, id uuid.UUID, date time.Time, actor user.Actor) (*TransactionResult, error)
	Start(ctx context.Context, id uuid.UUID, actor user.Actor) (*TransactionResult, error)
	Complete(ctx context.Context, id uuid.UUID, actor user.Actor) (*TransactionResult, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string, actor user.Actor) (*TransactionResult, error)
}

type transactionUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings Settings
}

func NewTransactionUseCase(uow shared.UnitOfWork, clk clock.Clock, settings Settings) TransactionCommands {
	return &transactionUseCaseImpl{uow: uow, clock: clk, settings: settings}
}

func (uc *transactionUseCaseImpl) BookService(ctx context.Context, req BookServiceRequest, actor user.Actor) (*TransactionResult, error) {
	if actor.Role != user.RoleClient {
		return nil, errs.Wrap(errs.ErrForbidden, "only clients book services")
	}

	var result *TransactionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		id, replayed, err := replayOrCreate(ctx, tx, keyedRequest{
			Key:      req.IdempotencyKey,
			UserID:   actor.ID,
			Endpoint: endpointBookService,
			Body:     req,
		}, now, func() (uuid.UUID, error) {
			return uc.book(ctx, tx, req, actor, now)
		})
		if err != nil {
			return err
		}
		t, err := tx.Transactions().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		result = &TransactionResult{TransactionID: t.ID(), Status: t.Status(), Replayed: replayed}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *transactionUseCaseImpl) book(ctx context.Context, tx shared.Tx, req BookServiceRequest, actor user.Actor, now time.Time) (uuid.UUID, error) {
	svc, err := tx.Services().FindByID(ctx, req.ServiceID)
	if err != nil {
		return uuid.Nil, err
	}
	if !svc.IsActive {
		return uuid.Nil, errs.Wrapf(errs.ErrInvalidState, "service %s is not available", svc.ID)
	}

	t, err := openTransaction(ctx, tx, uc.settings, transactionSeed{
		ClientID:       actor.ID,
		ProfessionalID: svc.ProfessionalID,
		Price:          svc.Price,
		Origin:         transaction.FromProactiveService(svc.ID),
		Category:       svc.Category,
		PromoCode:      req.PromoCode,
		ScheduledDate:  req.ScheduledDate,
		Notes:          req.Notes,
	}, now)
	if err != nil {
		return uuid.Nil, err
	}
	return t.ID(), nil
}

func (uc *transactionUseCaseImpl) Schedule(ctx context.Context, id uuid.UUID, date time.Time, actor user.Actor) (*TransactionResult, error) {
	return uc.transition(ctx, id, func(tx shared.Tx, t *transaction.Transaction, now time.Time) (transaction.Transition, error) {
		return t.Schedule(actor, date, now)
	})
}

func (uc *transactionUseCaseImpl) Start(ctx context.Context, id uuid.UUID, actor user.Actor) (*TransactionResult, error) {
	return uc.transition(ctx, id, func(tx shared.Tx, t *transaction.Transaction, now time.Time) (transaction.Transition, error) {
		return t.Start(actor, now)
	})
}

// Complete moves the transaction to COMPLETED and credits escrow minus fee
// to the professional in the same unit of work. A second call fails on the
// terminal status before any credit happens.
func (uc *transactionUseCaseImpl) Complete(ctx context.Context, id uuid.UUID, actor user.Actor) (*TransactionResult, error) {
	var settlement transaction.Settlement
	res, err := uc.transition(ctx, id, func(tx shared.Tx, t *transaction.Transaction, now time.Time) (transaction.Transition, error) {
		tr, s, err := t.Complete(actor, now)
		if err != nil {
			return transaction.Transition{}, err
		}
		settlement = s
		return tr, nil
	}, func(ctx context.Context, tx shared.Tx, t *transaction.Transaction) error {
		if settlement.Payout.IsZero() {
			return nil
		}
		return tx.Balances().Credit(ctx, settlement.ProfessionalID, settlement.Payout, shared.MovementPayout, t.ID())
	})
	if err != nil {
		return nil, err
	}

	metrics.PayoutCentsTotal.Add(float64(settlement.Payout.Cents()))
	metrics.PlatformFeeCentsTotal.Add(float64(settlement.Fee.Cents()))
	slog.Info("transaction settled",
		"transaction_id", id,
		"professional_id", settlement.ProfessionalID,
		"payout_cents", settlement.Payout.Cents(),
		"fee_cents", settlement.Fee.Cents())
	return res, nil
}

// Cancel refunds the funding payment, if any, through the outbox. Promo usage
// stays recorded.
func (uc *transactionUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID, reason string, actor user.Actor) (*TransactionResult, error) {
	return cancelTransaction(ctx, uc.uow, uc.clock, id, reason, actor)
}

func cancelTransaction(ctx context.Context, uow shared.UnitOfWork, clk clock.Clock, id uuid.UUID, reason string, actor user.Actor) (*TransactionResult, error) {
	impl := &transactionUseCaseImpl{uow: uow, clock: clk}
	return impl.transition(ctx, id, func(tx shared.Tx, t *transaction.Transaction, now time.Time) (transaction.Transition, error) {
		return t.Cancel(actor, reason, now)
	}, func(ctx context.Context, tx shared.Tx, t *transaction.Transaction) error {
		return refundFunding(ctx, tx, t.ID(), "transaction canceled: "+t.CancelReason(), clk.Now())
	})
}

type transitionFunc func(tx shared.Tx, t *transaction.Transaction, now time.Time) (transaction.Transition, error)

type afterTransitionFunc func(ctx context.Context, tx shared.Tx, t *transaction.Transaction) error

// transition locks the transaction, applies step and persists the result
// with an optimistic status check. after hooks run in the same unit of work.
func (uc *transactionUseCaseImpl) transition(ctx context.Context, id uuid.UUID, step transitionFunc, after ...afterTransitionFunc) (*TransactionResult, error) {
	var (
		result *TransactionResult
		tr     transaction.Transition
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Transactions().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		tr, err = step(tx, t, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := persistTransition(ctx, tx, t, tr); err != nil {
			return err
		}
		for _, fn := range after {
			if err := fn(ctx, tx, t); err != nil {
				return err
			}
		}
		result = &TransactionResult{TransactionID: t.ID(), Status: t.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("transaction transition",
		"transaction_id", id,
		"from", tr.From,
		"to", tr.To,
		"actor", tr.Actor,
		"actor_id", tr.ActorID)
	return result, nil
}
