package withdrawal

import (
	"strings"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

type Withdrawal struct {
	id              uuid.UUID
	userID          uuid.UUID
	paymentMethodID uuid.UUID
	amount          money.Money
	status          Status
	rejectionReason *string
	processedAt     *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// New requests a payout of amount. The balance is checked here and again at
// approval, since it may change in between.
func New(userID, paymentMethodID uuid.UUID, amount, balance money.Money, now time.Time) (*Withdrawal, error) {
	if amount <= 0 {
		return nil, errs.Wrapf(errs.ErrInvalidAmount, "withdrawal amount %d must be positive", amount)
	}
	if paymentMethodID == uuid.Nil {
		return nil, errs.Wrap(errs.ErrInvalidState, "payment method is required")
	}
	if amount > balance {
		return nil, errs.Wrapf(errs.ErrInsufficientBalance, "requested %d, available %d", amount, balance)
	}
	return &Withdrawal{
		id:              uuid.New(),
		userID:          userID,
		paymentMethodID: paymentMethodID,
		amount:          amount,
		status:          StatusPending,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func Reconstruct(id, userID, paymentMethodID uuid.UUID, amount money.Money, status Status, rejectionReason *string, processedAt *time.Time, createdAt, updatedAt time.Time) *Withdrawal {
	return &Withdrawal{
		id:              id,
		userID:          userID,
		paymentMethodID: paymentMethodID,
		amount:          amount,
		status:          status,
		rejectionReason: rejectionReason,
		processedAt:     processedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Approve completes the withdrawal against the balance read under lock and
// returns the balance after the debit.
func (w *Withdrawal) Approve(balance money.Money, now time.Time) (money.Money, error) {
	if err := w.ensurePending(); err != nil {
		return money.Zero, err
	}
	remaining, err := balance.Sub(w.amount)
	if err != nil {
		return money.Zero, errs.Wrapf(errs.ErrInsufficientBalance, "withdrawal %s needs %d, balance is %d", w.id, w.amount, balance)
	}
	w.status = StatusCompleted
	w.processedAt = &now
	w.updatedAt = now
	return remaining, nil
}

func (w *Withdrawal) Reject(reason string, now time.Time) error {
	if err := w.ensurePending(); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.Wrap(errs.ErrInvalidState, "rejection reason is required")
	}
	w.status = StatusFailed
	w.rejectionReason = &reason
	w.processedAt = &now
	w.updatedAt = now
	return nil
}

func (w *Withdrawal) ensurePending() error {
	if w.status != StatusPending {
		return errs.Wrapf(errs.ErrTerminalState, "withdrawal %s is %s", w.id, w.status)
	}
	return nil
}

func (w *Withdrawal) ID() uuid.UUID              { return w.id }
func (w *Withdrawal) UserID() uuid.UUID          { return w.userID }
func (w *Withdrawal) PaymentMethodID() uuid.UUID { return w.paymentMethodID }
func (w *Withdrawal) Amount() money.Money        { return w.amount }
func (w *Withdrawal) Status() Status             { return w.status }
func (w *Withdrawal) RejectionReason() *string   { return w.rejectionReason }
func (w *Withdrawal) ProcessedAt() *time.Time    { return w.processedAt }
func (w *Withdrawal) CreatedAt() time.Time       { return w.createdAt }
func (w *Withdrawal) UpdatedAt() time.Time       { return w.updatedAt }
