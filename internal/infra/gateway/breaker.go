package gateway

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/payment"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/metrics"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/config"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/sony/gobreaker"
)

var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// Breaker guards a PaymentGateway with a circuit breaker and a per-call
// timeout. Declined captures are successful calls and do not trip it.
type Breaker struct {
	next    shared.PaymentGateway
	cb      *gobreaker.CircuitBreaker
	timeout time.Duration
}

func NewBreaker(next shared.PaymentGateway, cfg config.GatewayConfig) *Breaker {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.BreakerHalfOpen,
		Timeout:     cfg.BreakerOpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("gateway circuit breaker state changed",
				slog.String("gateway", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			metrics.GatewayBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	}
	metrics.GatewayBreakerState.WithLabelValues(cfg.Name).Set(stateValue(gobreaker.StateClosed))

	return &Breaker{
		next:    next,
		cb:      gobreaker.NewCircuitBreaker(settings),
		timeout: cfg.Timeout,
	}
}

func (b *Breaker) Capture(ctx context.Context, req shared.CaptureRequest) (payment.Result, error) {
	out, err := b.execute(ctx, func(ctx context.Context) (any, error) {
		return b.next.Capture(ctx, req)
	})
	if err != nil {
		return payment.Result{}, err
	}
	return out.(payment.Result), nil
}

func (b *Breaker) Refund(ctx context.Context, req shared.RefundRequest) error {
	_, err := b.execute(ctx, func(ctx context.Context) (any, error) {
		return nil, b.next.Refund(ctx, req)
	})
	return err
}

func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

func (b *Breaker) execute(ctx context.Context, fn func(ctx context.Context) (any, error)) (any, error) {
	out, err := b.cb.Execute(func() (any, error) {
		callCtx := ctx
		if b.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, b.timeout)
			defer cancel()
		}
		return fn(callCtx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, errs.Mark(errs.Wrap(err, b.cb.Name()), ErrGatewayUnavailable)
	}
	return out, err
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
