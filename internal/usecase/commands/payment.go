package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/payment"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/transaction"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/metrics"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/clock"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

const duplicateCaptureReason = "transaction already funded or closed"

type InitiatePaymentRequest struct {
	TransactionID uuid.UUID
	Method        string

	IdempotencyKey uuid.UUID `json:"-"`
}

type InitiatePaymentResult struct {
	PaymentID uuid.UUID
	Status    payment.Status
	Replayed  bool
}

type PaymentCommands interface {
	// InitiatePayment creates a PENDING payment for the escrow and queues the
	// capture. The gateway is never called inline.
	// A repeated idempotency key returns the first payment instead.
	InitiatePayment(ctx context.Context, req InitiatePaymentRequest, actor user.Actor) (*InitiatePaymentResult, error)
	ApplyPayment(ctx context.Context, result payment.Result) error
	Refund(ctx context.Context, transactionID uuid.UUID, reason string, actor user.Actor) error
}

type paymentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPaymentUseCase(uow shared.UnitOfWork, clk clock.Clock) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow, clock: clk}
}

func (uc *paymentUseCaseImpl) InitiatePayment(ctx context.Context, req InitiatePaymentRequest, actor user.Actor) (*InitiatePaymentResult, error) {
	var result *InitiatePaymentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		id, replayed, err := replayOrCreate(ctx, tx, keyedRequest{
			Key:      req.IdempotencyKey,
			UserID:   actor.ID,
			Endpoint: endpointInitiatePayment,
			Body:     req,
		}, now, func() (uuid.UUID, error) {
			return uc.initiate(ctx, tx, req, actor, now)
		})
		if err != nil {
			return err
		}
		p, err := tx.Payments().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		result = &InitiatePaymentResult{PaymentID: p.ID(), Status: p.Status(), Replayed: replayed}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *paymentUseCaseImpl) initiate(ctx context.Context, tx shared.Tx, req InitiatePaymentRequest, actor user.Actor, now time.Time) (uuid.UUID, error) {
	t, err := tx.Transactions().FindByIDForUpdate(ctx, req.TransactionID)
	if err != nil {
		return uuid.Nil, err
	}
	if actor.ID != t.ClientID() {
		return uuid.Nil, errs.Wrap(errs.ErrForbidden, "only the client pays for a transaction")
	}
	if t.Status().IsTerminal() {
		return uuid.Nil, errs.Wrapf(errs.ErrTerminalState, "transaction %s is %s", t.ID(), t.Status())
	}
	if t.IsFunded() {
		return uuid.Nil, errs.Wrapf(errs.ErrInvalidState, "transaction %s needs no payment", t.ID())
	}

	p, err := payment.New(actor.ID, t.ID(), t.EscrowAmount(), req.Method, now)
	if err != nil {
		return uuid.Nil, err
	}
	if err := tx.Payments().Create(ctx, p); err != nil {
		return uuid.Nil, err
	}
	if err := enqueue(ctx, tx, shared.TopicCaptureRequested, p.ID(), shared.CaptureRequestedEvent{
		PaymentID:     p.ID(),
		TransactionID: t.ID(),
		UserID:        actor.ID,
		AmountCents:   p.Amount().Cents(),
		Method:        p.Method(),
	}, now); err != nil {
		return uuid.Nil, err
	}
	return p.ID(), nil
}

// ApplyPayment reconciles a gateway result. A successful capture funds the
// transaction unless it is already funded or closed, in which case the extra
// capture is refunded so at most one completed payment backs the escrow.
func (uc *paymentUseCaseImpl) ApplyPayment(ctx context.Context, result payment.Result) error {
	var outcome payment.Status
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		p, err := tx.Payments().FindByIDForUpdate(ctx, result.PaymentID)
		if err != nil {
			return err
		}
		t, err := tx.Transactions().FindByIDForUpdate(ctx, p.TransactionID())
		if err != nil {
			return err
		}
		if err := p.Apply(result, now); err != nil {
			return err
		}

		if !p.IsCompleted() {
			if err := tx.Payments().Update(ctx, p, payment.StatusPending); err != nil {
				return err
			}
			outcome = p.Status()
			return enqueue(ctx, tx, shared.TopicPaymentFailed, p.ID(), paymentEvent(p), now)
		}

		if t.Status().IsTerminal() || t.FundingPaymentID() != nil {
			if err := p.Refund(duplicateCaptureReason, now); err != nil {
				return err
			}
			if err := tx.Payments().Update(ctx, p, payment.StatusPending); err != nil {
				return err
			}
			outcome = p.Status()
			return enqueueRefund(ctx, tx, p.ID(), t.ID(), p.Amount(), p.Reference(), duplicateCaptureReason, now)
		}

		if err := tx.Payments().Update(ctx, p, payment.StatusPending); err != nil {
			return err
		}
		if err := t.AttachFunding(p.ID(), now); err != nil {
			return err
		}
		if err := tx.Transactions().SetFunding(ctx, t); err != nil {
			return err
		}
		outcome = p.Status()
		return enqueue(ctx, tx, shared.TopicPaymentCompleted, p.ID(), paymentEvent(p), now)
	})
	if err != nil {
		return err
	}

	metrics.PaymentsTotal.WithLabelValues(string(outcome)).Inc()
	slog.Info("payment applied", "payment_id", result.PaymentID, "status", outcome)
	return nil
}

// Refund is the admin force-refund. Open transactions are canceled, which
// refunds their funding; a canceled transaction whose payment is still
// COMPLETED gets that payment refunded. Completed transactions cannot be
// refunded.
func (uc *paymentUseCaseImpl) Refund(ctx context.Context, transactionID uuid.UUID, reason string, actor user.Actor) error {
	if !actor.IsPrivileged() {
		return errs.Wrap(errs.ErrForbidden, "refunds require an admin")
	}
	if reason == "" {
		reason = "refunded by admin"
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		t, err := tx.Transactions().FindByIDForUpdate(ctx, transactionID)
		if err != nil {
			return err
		}

		switch t.Status() {
		case transaction.StatusCompleted:
			return errs.Wrapf(errs.ErrTerminalState, "transaction %s is completed", t.ID())
		case transaction.StatusCanceled:
			return refundFunding(ctx, tx, t.ID(), reason, now)
		}

		tr, err := t.Cancel(actor, reason, now)
		if err != nil {
			return err
		}
		if err := persistTransition(ctx, tx, t, tr); err != nil {
			return err
		}
		return refundFunding(ctx, tx, t.ID(), reason, now)
	})
}

func paymentEvent(p *payment.Payment) shared.PaymentEvent {
	ev := shared.PaymentEvent{
		PaymentID:     p.ID(),
		TransactionID: p.TransactionID(),
		UserID:        p.UserID(),
		AmountCents:   p.Amount().Cents(),
		Status:        string(p.Status()),
	}
	if p.FailureReason() != nil {
		ev.Reason = *p.FailureReason()
	}
	return ev
}
