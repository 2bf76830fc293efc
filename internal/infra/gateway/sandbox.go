package gateway

import (
	"context"
	"log/slog"
	"strings"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/payment"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"
)

// Sandbox approves captures deterministically. Manual methods (cash,
// transfer, mobile payment) are confirmed offline and always succeed here.
type Sandbox struct {
	declineAbove money.Money
}

func NewSandbox(declineAboveCents int64) *Sandbox {
	return &Sandbox{declineAbove: money.Money(declineAboveCents)}
}

func (s *Sandbox) Capture(ctx context.Context, req shared.CaptureRequest) (payment.Result, error) {
	if err := ctx.Err(); err != nil {
		return payment.Result{}, err
	}

	res := payment.Result{
		PaymentID: req.PaymentID,
		Reference: "SBX-" + strings.ToUpper(req.PaymentID.String()[:8]),
	}
	if req.Method == payment.MethodCard && s.declineAbove > 0 && req.Amount > s.declineAbove {
		res.FailureReason = "card declined by issuer"
		slog.InfoContext(ctx, "sandbox capture declined",
			slog.String("paymentID", req.PaymentID.String()),
			slog.Int64("amount", req.Amount.Cents()))
		return res, nil
	}

	res.Success = true
	return res, nil
}

func (s *Sandbox) Refund(ctx context.Context, req shared.RefundRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	slog.InfoContext(ctx, "sandbox refund",
		slog.String("paymentID", req.PaymentID.String()),
		slog.Int64("amount", req.Amount.Cents()),
		slog.String("reason", req.Reason))
	return nil
}
