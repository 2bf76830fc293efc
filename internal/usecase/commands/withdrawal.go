package commands

import (
	"context"
	"log/slog"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/withdrawal"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/metrics"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/clock"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestWithdrawalRequest struct {
	PaymentMethodID uuid.UUID
	Amount          money.Money

	IdempotencyKey uuid.UUID `json:"-"`
}

type WithdrawalCommands interface {
	RequestWithdrawal(ctx context.Context, req RequestWithdrawalRequest, actor user.Actor) (uuid.UUID, error)
	ApproveWithdrawal(ctx context.Context, id uuid.UUID, actor user.Actor) error
	RejectWithdrawal(ctx context.Context, id uuid.UUID, reason string, actor user.Actor) error
}

type withdrawalUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewWithdrawalUseCase(uow shared.UnitOfWork, clk clock.Clock) WithdrawalCommands {
	return &withdrawalUseCaseImpl{uow: uow, clock: clk}
}

func (uc *withdrawalUseCaseImpl) RequestWithdrawal(ctx context.Context, req RequestWithdrawalRequest, actor user.Actor) (uuid.UUID, error) {
	var id uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		var err error
		id, _, err = replayOrCreate(ctx, tx, keyedRequest{
			Key:      req.IdempotencyKey,
			UserID:   actor.ID,
			Endpoint: endpointRequestWithdrawal,
			Body:     req,
		}, now, func() (uuid.UUID, error) {
			balance, err := tx.Balances().GetForUpdate(ctx, actor.ID)
			if err != nil {
				return uuid.Nil, err
			}
			w, err := withdrawal.New(actor.ID, req.PaymentMethodID, req.Amount, balance, now)
			if err != nil {
				return uuid.Nil, err
			}
			if err := tx.Withdrawals().Create(ctx, w); err != nil {
				return uuid.Nil, err
			}
			return w.ID(), nil
		})
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// ApproveWithdrawal re-reads the balance under lock. A short balance fails
// with InsufficientBalance and leaves the withdrawal PENDING.
func (uc *withdrawalUseCaseImpl) ApproveWithdrawal(ctx context.Context, id uuid.UUID, actor user.Actor) error {
	if !actor.IsAdmin() {
		return errs.Wrap(errs.ErrForbidden, "withdrawal approval requires an admin")
	}

	var w *withdrawal.Withdrawal
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		var err error
		w, err = tx.Withdrawals().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		balance, err := tx.Balances().GetForUpdate(ctx, w.UserID())
		if err != nil {
			return err
		}
		if _, err := w.Approve(balance, now); err != nil {
			return err
		}
		if err := tx.Balances().Debit(ctx, w.UserID(), w.Amount(), shared.MovementWithdrawal, w.ID()); err != nil {
			return err
		}
		if err := tx.Withdrawals().Update(ctx, w, withdrawal.StatusPending); err != nil {
			return err
		}
		return enqueue(ctx, tx, shared.TopicWithdrawalCompleted, w.ID(), shared.WithdrawalEvent{
			WithdrawalID: w.ID(),
			UserID:       w.UserID(),
			AmountCents:  w.Amount().Cents(),
		}, now)
	})
	if err != nil {
		return err
	}

	metrics.WithdrawalsTotal.WithLabelValues(string(withdrawal.StatusCompleted)).Inc()
	slog.Info("withdrawal approved", "withdrawal_id", id, "user_id", w.UserID(), "amount_cents", w.Amount().Cents())
	return nil
}

func (uc *withdrawalUseCaseImpl) RejectWithdrawal(ctx context.Context, id uuid.UUID, reason string, actor user.Actor) error {
	if !actor.IsAdmin() {
		return errs.Wrap(errs.ErrForbidden, "withdrawal rejection requires an admin")
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		w, err := tx.Withdrawals().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := w.Reject(reason, now); err != nil {
			return err
		}
		if err := tx.Withdrawals().Update(ctx, w, withdrawal.StatusPending); err != nil {
			return err
		}
		return enqueue(ctx, tx, shared.TopicWithdrawalFailed, w.ID(), shared.WithdrawalEvent{
			WithdrawalID: w.ID(),
			UserID:       w.UserID(),
			AmountCents:  w.Amount().Cents(),
			Reason:       *w.RejectionReason(),
		}, now)
	})
	if err != nil {
		return err
	}

	metrics.WithdrawalsTotal.WithLabelValues(string(withdrawal.StatusFailed)).Inc()
	slog.Info("withdrawal rejected", "withdrawal_id", id)
	return nil
}
