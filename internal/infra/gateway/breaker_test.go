//go:build unit

package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/payment"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/config"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"
)

type flakyGateway struct {
	calls   int
	failing bool
	result  payment.Result
}

func (f *flakyGateway) Capture(_ context.Context, req shared.CaptureRequest) (payment.Result, error) {
	f.calls++
	if f.failing {
		return payment.Result{}, errors.New("connection reset")
	}
	f.result.PaymentID = req.PaymentID
	return f.result, nil
}

func (f *flakyGateway) Refund(context.Context, shared.RefundRequest) error {
	f.calls++
	if f.failing {
		return errors.New("connection reset")
	}
	return nil
}

func testGatewayConfig() config.GatewayConfig {
	return config.GatewayConfig{
		Name:            "test-gateway",
		Timeout:         time.Second,
		BreakerFailures: 2,
		BreakerOpenFor:  time.Hour,
		BreakerHalfOpen: 1,
	}
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	inner := &flakyGateway{failing: true}
	b := NewBreaker(inner, testGatewayConfig())
	req := shared.CaptureRequest{PaymentID: uuid.New(), Amount: 1000, Method: payment.MethodCard}

	for i := 0; i < 2; i++ {
		_, err := b.Capture(context.Background(), req)
		require.Error(t, err)
		assert.False(t, errs.Is(err, ErrGatewayUnavailable))
	}
	assert.Equal(t, gobreaker.StateOpen, b.State())

	_, err := b.Capture(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errs.Is(err, ErrGatewayUnavailable))
	assert.Equal(t, 2, inner.calls, "open breaker must not reach the gateway")
}

func TestBreaker_DeclineDoesNotTrip(t *testing.T) {
	inner := &flakyGateway{result: payment.Result{Success: false, FailureReason: "declined"}}
	b := NewBreaker(inner, testGatewayConfig())
	req := shared.CaptureRequest{PaymentID: uuid.New(), Amount: 1000, Method: payment.MethodCard}

	for i := 0; i < 5; i++ {
		res, err := b.Capture(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, req.PaymentID, res.PaymentID)
	}
	assert.Equal(t, gobreaker.StateClosed, b.State())
}

func TestBreaker_Refund(t *testing.T) {
	inner := &flakyGateway{}
	b := NewBreaker(inner, testGatewayConfig())

	require.NoError(t, b.Refund(context.Background(), shared.RefundRequest{PaymentID: uuid.New(), Amount: 500}))
	assert.Equal(t, 1, inner.calls)
}

func TestSandbox_Capture(t *testing.T) {
	sb := NewSandbox(50000)
	ctx := context.Background()

	tests := []struct {
		name    string
		method  string
		amount  money.Money
		success bool
	}{
		{"card under threshold", payment.MethodCard, 30000, true},
		{"card over threshold", payment.MethodCard, 60000, false},
		{"cash over threshold", payment.MethodCash, 60000, true},
		{"transfer", payment.MethodTransfer, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			res, err := sb.Capture(ctx, shared.CaptureRequest{PaymentID: id, Amount: tt.amount, Method: tt.method})

			require.NoError(t, err)
			assert.Equal(t, tt.success, res.Success)
			assert.Equal(t, id, res.PaymentID)
			assert.NotEmpty(t, res.Reference)
			if !tt.success {
				assert.NotEmpty(t, res.FailureReason)
			}
		})
	}
}

func TestSandbox_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSandbox(0).Capture(ctx, shared.CaptureRequest{PaymentID: uuid.New(), Amount: 100})
	require.ErrorIs(t, err, context.Canceled)
}
