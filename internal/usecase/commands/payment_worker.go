package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/payment"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"
)

// PaymentWorker consumes capture and refund requests from the outbox. It is
// the only code that calls the gateway, always outside a database
// transaction.
type PaymentWorker struct {
	gateway  shared.PaymentGateway
	payments PaymentCommands
}

func NewPaymentWorker(gateway shared.PaymentGateway, payments PaymentCommands) *PaymentWorker {
	return &PaymentWorker{gateway: gateway, payments: payments}
}

// HandleCaptureRequested captures the payment and feeds the result back
// through ApplyPayment. A gateway error is returned so the event is retried.
func (w *PaymentWorker) HandleCaptureRequested(ctx context.Context, payload []byte) error {
	var ev shared.CaptureRequestedEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return errs.Mark(errs.Wrap(err, "decode capture request"), shared.ErrPoisonEvent)
	}

	res, err := w.gateway.Capture(ctx, shared.CaptureRequest{
		PaymentID:     ev.PaymentID,
		TransactionID: ev.TransactionID,
		UserID:        ev.UserID,
		Amount:        money.Money(ev.AmountCents),
		Method:        ev.Method,
	})
	if err != nil {
		return err
	}
	res.PaymentID = ev.PaymentID

	err = w.payments.ApplyPayment(ctx, res)
	if errors.Is(err, errs.ErrInvalidState) {
		// Redelivery after the result was already applied.
		slog.Warn("capture result already applied", "payment_id", ev.PaymentID, "error", err)
		return nil
	}
	return err
}

// HandleCaptureAbandoned records a capture that ran out of attempts as a
// failed payment, leaving the transaction open for another payment or a
// cancel.
func (w *PaymentWorker) HandleCaptureAbandoned(ctx context.Context, payload []byte, cause error) error {
	var ev shared.CaptureRequestedEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return errs.Mark(errs.Wrap(err, "decode capture request"), shared.ErrPoisonEvent)
	}

	err := w.payments.ApplyPayment(ctx, payment.Result{
		PaymentID:     ev.PaymentID,
		FailureReason: "gateway unavailable: " + cause.Error(),
	})
	if errors.Is(err, errs.ErrInvalidState) {
		slog.Warn("abandoned capture already settled", "payment_id", ev.PaymentID, "error", err)
		return nil
	}
	return err
}

func (w *PaymentWorker) HandleRefundRequested(ctx context.Context, payload []byte) error {
	var ev shared.RefundRequestedEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return errs.Mark(errs.Wrap(err, "decode refund request"), shared.ErrPoisonEvent)
	}

	if err := w.gateway.Refund(ctx, shared.RefundRequest{
		PaymentID:     ev.PaymentID,
		TransactionID: ev.TransactionID,
		Amount:        money.Money(ev.AmountCents),
		Reference:     ev.Reference,
		Reason:        ev.Reason,
	}); err != nil {
		return err
	}
	slog.Info("refund sent to gateway", "payment_id", ev.PaymentID, "amount_cents", ev.AmountCents)
	return nil
}
