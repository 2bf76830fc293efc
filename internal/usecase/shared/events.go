package shared

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Outbox topics. Capture and refund requests are processed by the payment
// worker; the rest are notifications forwarded to the EventPublisher.
const (
	TopicCaptureRequested = "payment.capture_requested"
	TopicRefundRequested  = "payment.refund_requested"

	TopicTransactionCreated       = "transaction.created"
	TopicTransactionStatusChanged = "transaction.status_changed"
	TopicOfferAccepted            = "offer.accepted"
	TopicPaymentCompleted         = "payment.completed"
	TopicPaymentFailed            = "payment.failed"
	TopicWithdrawalCompleted      = "withdrawal.completed"
	TopicWithdrawalFailed         = "withdrawal.failed"
)

func IsNotificationTopic(topic string) bool {
	switch topic {
	case TopicCaptureRequested, TopicRefundRequested:
		return false
	}
	return true
}

type CaptureRequestedEvent struct {
	PaymentID     uuid.UUID `json:"paymentId"`
	TransactionID uuid.UUID `json:"transactionId"`
	UserID        uuid.UUID `json:"userId"`
	AmountCents   int64     `json:"amountCents"`
	Method        string    `json:"method"`
}

type RefundRequestedEvent struct {
	PaymentID     uuid.UUID `json:"paymentId"`
	TransactionID uuid.UUID `json:"transactionId"`
	AmountCents   int64     `json:"amountCents"`
	Reference     string    `json:"reference,omitempty"`
	Reason        string    `json:"reason"`
}

type TransactionCreatedEvent struct {
	TransactionID     uuid.UUID `json:"transactionId"`
	ClientID          uuid.UUID `json:"clientId"`
	ProfessionalID    uuid.UUID `json:"professionalId"`
	EscrowAmountCents int64     `json:"escrowAmountCents"`
	Status            string    `json:"status"`
}

type StatusChangedEvent struct {
	TransactionID  uuid.UUID `json:"transactionId"`
	ClientID       uuid.UUID `json:"clientId"`
	ProfessionalID uuid.UUID `json:"professionalId"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	Actor          string    `json:"actor"`
	Reason         string    `json:"reason,omitempty"`
	At             time.Time `json:"at"`
}

type OfferAcceptedEvent struct {
	OfferID        uuid.UUID   `json:"offerId"`
	PostingID      uuid.UUID   `json:"postingId"`
	ProfessionalID uuid.UUID   `json:"professionalId"`
	TransactionID  uuid.UUID   `json:"transactionId"`
	RejectedOffers []uuid.UUID `json:"rejectedOffers"`
}

type PaymentEvent struct {
	PaymentID     uuid.UUID `json:"paymentId"`
	TransactionID uuid.UUID `json:"transactionId"`
	UserID        uuid.UUID `json:"userId"`
	AmountCents   int64     `json:"amountCents"`
	Status        string    `json:"status"`
	Reason        string    `json:"reason,omitempty"`
}

type WithdrawalEvent struct {
	WithdrawalID uuid.UUID `json:"withdrawalId"`
	UserID       uuid.UUID `json:"userId"`
	AmountCents  int64     `json:"amountCents"`
	Reason       string    `json:"reason,omitempty"`
}

// ErrPoisonEvent marks an outbox payload that can never be processed. The
// dispatcher dead-letters it instead of retrying.
var ErrPoisonEvent = errors.New("unprocessable outbox event")
