package transaction

import (
	"errors"
	"strings"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotesTooLong = errors.New("notes exceed maximum length")

// Transition is a status change ready to be persisted: the optimistic update
// must match From, and a history row records Actor.
type Transition struct {
	TransactionID uuid.UUID
	From          Status
	To            Status
	Actor         ActorKind
	ActorID       uuid.UUID
	Reason        string
	At            time.Time
}

// Settlement is what completion releases from escrow.
type Settlement struct {
	ProfessionalID uuid.UUID
	Payout         money.Money
	Fee            money.Money
}

func (t *Transaction) Schedule(actor user.Actor, date time.Time, now time.Time) (Transition, error) {
	kind, err := t.actorKind(actor, ActorClient, ActorProfessional)
	if err != nil {
		return Transition{}, err
	}
	if err := t.ensureOpen(); err != nil {
		return Transition{}, err
	}
	if date.Before(now) {
		return Transition{}, errs.Wrap(errs.ErrInvalidState, "scheduled date is in the past")
	}
	tr, err := t.moveTo(StatusScheduled, kind, actor, "", now)
	if err != nil {
		return Transition{}, err
	}
	t.scheduledDate = &date
	return tr, nil
}

// Start begins work. The escrow must be funded unless it is zero.
func (t *Transaction) Start(actor user.Actor, now time.Time) (Transition, error) {
	kind, err := t.actorKind(actor, ActorProfessional)
	if err != nil {
		return Transition{}, err
	}
	if err := t.ensureOpen(); err != nil {
		return Transition{}, err
	}
	if !t.IsFunded() {
		return Transition{}, errs.Wrapf(errs.ErrInvalidState, "transaction %s escrow is not funded", t.id)
	}
	tr, err := t.moveTo(StatusInProgress, kind, actor, "", now)
	if err != nil {
		return Transition{}, err
	}
	t.startedAt = &now
	return tr, nil
}

// Complete finishes work and returns the payout owed to the professional.
// The caller credits it exactly once, in the same unit of work as the
// status update.
func (t *Transaction) Complete(actor user.Actor, now time.Time) (Transition, Settlement, error) {
	kind, err := t.actorKind(actor, ActorClient, ActorProfessional)
	if err != nil {
		return Transition{}, Settlement{}, err
	}
	payout, err := t.escrowAmount.Sub(t.platformFee)
	if err != nil {
		return Transition{}, Settlement{}, err
	}
	tr, err := t.moveTo(StatusCompleted, kind, actor, "", now)
	if err != nil {
		return Transition{}, Settlement{}, err
	}
	t.completedAt = &now
	return tr, Settlement{ProfessionalID: t.professionalID, Payout: payout, Fee: t.platformFee}, nil
}

// Cancel ends a non-terminal transaction. Refunding any funding payment is
// the caller's job; the professional is never credited.
func (t *Transaction) Cancel(actor user.Actor, reason string, now time.Time) (Transition, error) {
	kind, err := t.actorKind(actor, ActorClient, ActorProfessional)
	if err != nil {
		return Transition{}, err
	}
	reason = strings.TrimSpace(reason)
	tr, err := t.moveTo(StatusCanceled, kind, actor, reason, now)
	if err != nil {
		return Transition{}, err
	}
	t.canceledAt = &now
	t.cancelReason = reason
	return tr, nil
}

// AttachFunding records the completed payment that funds the escrow.
func (t *Transaction) AttachFunding(paymentID uuid.UUID, now time.Time) error {
	if t.status.IsTerminal() {
		return errs.Wrapf(errs.ErrTerminalState, "transaction %s is %s", t.id, t.status)
	}
	if t.fundingPaymentID != nil {
		return errs.Wrapf(errs.ErrInvalidState, "transaction %s is already funded", t.id)
	}
	t.fundingPaymentID = &paymentID
	t.updatedAt = now
	return nil
}

// ensureOpen reports terminal transactions before any other precondition.
func (t *Transaction) ensureOpen() error {
	if t.status.IsTerminal() {
		return errs.Wrapf(errs.ErrTerminalState, "transaction %s is %s", t.id, t.status)
	}
	return nil
}

func (t *Transaction) moveTo(to Status, kind ActorKind, actor user.Actor, reason string, now time.Time) (Transition, error) {
	if err := t.ensureOpen(); err != nil {
		return Transition{}, err
	}
	if !CanTransition(t.status, to) {
		return Transition{}, errs.Wrapf(errs.ErrInvalidState, "transaction %s cannot move from %s to %s", t.id, t.status, to)
	}
	tr := Transition{
		TransactionID: t.id,
		From:          t.status,
		To:            to,
		Actor:         kind,
		ActorID:       actor.ID,
		Reason:        reason,
		At:            now,
	}
	t.status = to
	t.updatedAt = now
	return tr, nil
}
