package shared

import (
	"context"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/payment"

	"github.com/google/uuid"
)

type CaptureRequest struct {
	PaymentID     uuid.UUID
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Amount        money.Money
	Method        string
}

type RefundRequest struct {
	PaymentID     uuid.UUID
	TransactionID uuid.UUID
	Amount        money.Money
	Reference     string
	Reason        string
}

// PaymentGateway talks to the external processor. A declined capture is a
// successful call with Result.Success false; errors mean the outcome is
// unknown and the call should be retried.
type PaymentGateway interface {
	Capture(ctx context.Context, req CaptureRequest) (payment.Result, error)
	Refund(ctx context.Context, req RefundRequest) error
}

// EventPublisher hands notification events to the delivery system.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}
