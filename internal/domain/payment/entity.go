package payment

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
	StatusRefunded  Status = "REFUNDED"
)

const (
	MethodCard         = "card"
	MethodTransfer     = "transfer"
	MethodMobilePay    = "mobile_payment"
	MethodCash         = "cash"
	maxReferenceLength = 128
	maxReasonLength    = 500
)

var methods = map[string]bool{
	MethodCard:      true,
	MethodTransfer:  true,
	MethodMobilePay: true,
	MethodCash:      true,
}

func IsValidMethod(m string) bool { return methods[m] }

// Result is what the gateway reports for a capture attempt.
type Result struct {
	PaymentID     uuid.UUID
	Success       bool
	Reference     string
	Fee           money.Money
	FailureReason string
}

type Payment struct {
	id            uuid.UUID
	userID        uuid.UUID
	transactionID uuid.UUID
	amount        money.Money
	fee           money.Money
	method        string
	reference     *string
	status        Status
	failureReason *string
	refundReason  *string
	createdAt     time.Time
	updatedAt     time.Time
}

func New(userID, transactionID uuid.UUID, amount money.Money, method string, now time.Time) (*Payment, error) {
	if amount <= 0 {
		return nil, errs.Wrapf(errs.ErrInvalidAmount, "payment amount %d must be positive", amount)
	}
	if !IsValidMethod(method) {
		return nil, errs.Wrapf(errs.ErrInvalidState, "unsupported payment method %q", method)
	}
	return &Payment{
		id:            uuid.New(),
		userID:        userID,
		transactionID: transactionID,
		amount:        amount,
		method:        method,
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

type ReconstructParams struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Amount        money.Money
	Fee           money.Money
	Method        string
	Reference     *string
	Status        Status
	FailureReason *string
	RefundReason  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func Reconstruct(p ReconstructParams) *Payment {
	return &Payment{
		id:            p.ID,
		userID:        p.UserID,
		transactionID: p.TransactionID,
		amount:        p.Amount,
		fee:           p.Fee,
		method:        p.Method,
		reference:     p.Reference,
		status:        p.Status,
		failureReason: p.FailureReason,
		refundReason:  p.RefundReason,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}
}

// Apply records a gateway result on a pending payment.
func (p *Payment) Apply(r Result, now time.Time) error {
	if p.status != StatusPending {
		return errs.Wrapf(errs.ErrInvalidState, "payment %s is %s, not PENDING", p.id, p.status)
	}
	if r.Success {
		if r.Fee < 0 || r.Fee > p.amount {
			return errs.Wrapf(errs.ErrInvalidAmount, "gateway fee %d out of range", r.Fee)
		}
		p.status = StatusCompleted
		p.fee = r.Fee
		if ref := truncate(strings.TrimSpace(r.Reference), maxReferenceLength); ref != "" {
			p.reference = &ref
		}
	} else {
		reason := truncate(strings.TrimSpace(r.FailureReason), maxReasonLength)
		if reason == "" {
			reason = "declined"
		}
		p.status = StatusFailed
		p.failureReason = &reason
	}
	p.updatedAt = now
	return nil
}

// Refund reverses a completed payment, or a pending one whose capture must be
// undone. Failed and already refunded payments are rejected.
func (p *Payment) Refund(reason string, now time.Time) error {
	switch p.status {
	case StatusCompleted, StatusPending:
	case StatusRefunded:
		return errs.Wrapf(errs.ErrTerminalState, "payment %s is already refunded", p.id)
	default:
		return errs.Wrapf(errs.ErrInvalidState, "payment %s is %s", p.id, p.status)
	}
	reason = truncate(strings.TrimSpace(reason), maxReasonLength)
	p.status = StatusRefunded
	p.refundReason = &reason
	p.updatedAt = now
	return nil
}

func (p *Payment) IsCompleted() bool { return p.status == StatusCompleted }

func (p *Payment) ID() uuid.UUID            { return p.id }
func (p *Payment) UserID() uuid.UUID        { return p.userID }
func (p *Payment) TransactionID() uuid.UUID { return p.transactionID }
func (p *Payment) Amount() money.Money      { return p.amount }
func (p *Payment) Fee() money.Money         { return p.fee }
func (p *Payment) Method() string           { return p.method }
func (p *Payment) Reference() *string       { return p.reference }
func (p *Payment) Status() Status           { return p.status }
func (p *Payment) FailureReason() *string   { return p.failureReason }
func (p *Payment) RefundReason() *string    { return p.refundReason }
func (p *Payment) CreatedAt() time.Time     { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time     { return p.updatedAt }

// truncate caps s at n bytes on a rune boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
