package transaction

import (
	"strings"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxNotesLength = 2000

type Transaction struct {
	id               uuid.UUID
	clientID         uuid.UUID
	professionalID   uuid.UUID
	priceAgreed      money.Money
	discountAmount   money.Money
	platformFee      money.Money
	escrowAmount     money.Money
	status           Status
	origin           Origin
	promoCodeID      *uuid.UUID
	offerID          *uuid.UUID
	scheduledDate    *time.Time
	startedAt        *time.Time
	completedAt      *time.Time
	canceledAt       *time.Time
	fundingPaymentID *uuid.UUID
	notes            string
	cancelReason     string
	createdAt        time.Time
	updatedAt        time.Time
}

type CreateParams struct {
	ClientID       uuid.UUID
	ProfessionalID uuid.UUID
	PriceAgreed    money.Money
	Discount       money.Money
	FeeRatePct     decimal.Decimal
	Origin         Origin
	PromoCodeID    *uuid.UUID
	OfferID        *uuid.UUID
	ScheduledDate  *time.Time
	Notes          string
}

// New builds a transaction in escrow. escrow = price - discount and the fee
// is charged on escrow, so fee <= escrow always holds.
func New(p CreateParams, now time.Time) (*Transaction, error) {
	if p.ClientID == uuid.Nil || p.ProfessionalID == uuid.Nil {
		return nil, errs.Wrap(errs.ErrInvalidState, "transaction needs both parties")
	}
	if p.ClientID == p.ProfessionalID {
		return nil, errs.Wrap(errs.ErrForbidden, "client and professional must differ")
	}
	if !p.Origin.IsValid() {
		return nil, errs.Wrap(errs.ErrInvalidState, "transaction origin is required")
	}
	if p.PriceAgreed <= 0 {
		return nil, errs.Wrapf(errs.ErrInvalidAmount, "price %d must be positive", p.PriceAgreed)
	}
	if p.Discount < 0 {
		return nil, errs.Wrapf(errs.ErrInvalidAmount, "discount %d is negative", p.Discount)
	}
	if p.Discount > 0 && p.PromoCodeID == nil {
		return nil, errs.Wrap(errs.ErrInvalidAmount, "discount requires a promo code")
	}
	escrow, err := p.PriceAgreed.Sub(p.Discount)
	if err != nil {
		return nil, err
	}
	fee, err := money.PlatformFee(escrow, p.FeeRatePct)
	if err != nil {
		return nil, err
	}
	notes := strings.TrimSpace(p.Notes)
	if len(notes) > MaxNotesLength {
		return nil, ErrNotesTooLong
	}

	status := StatusPendingSolicitud
	if p.ScheduledDate != nil {
		if p.ScheduledDate.Before(now) {
			return nil, errs.Wrap(errs.ErrInvalidState, "scheduled date is in the past")
		}
		status = StatusScheduled
	}

	return &Transaction{
		id:             uuid.New(),
		clientID:       p.ClientID,
		professionalID: p.ProfessionalID,
		priceAgreed:    p.PriceAgreed,
		discountAmount: p.Discount,
		platformFee:    fee,
		escrowAmount:   escrow,
		status:         status,
		origin:         p.Origin,
		promoCodeID:    p.PromoCodeID,
		offerID:        p.OfferID,
		scheduledDate:  p.ScheduledDate,
		notes:          notes,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

type ReconstructParams struct {
	ID               uuid.UUID
	ClientID         uuid.UUID
	ProfessionalID   uuid.UUID
	PriceAgreed      money.Money
	DiscountAmount   money.Money
	PlatformFee      money.Money
	EscrowAmount     money.Money
	Status           Status
	Origin           Origin
	PromoCodeID      *uuid.UUID
	OfferID          *uuid.UUID
	ScheduledDate    *time.Time
	StartedAt        *time.Time
	CompletedAt      *time.Time
	CanceledAt       *time.Time
	FundingPaymentID *uuid.UUID
	Notes            string
	CancelReason     string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func Reconstruct(p ReconstructParams) *Transaction {
	return &Transaction{
		id:               p.ID,
		clientID:         p.ClientID,
		professionalID:   p.ProfessionalID,
		priceAgreed:      p.PriceAgreed,
		discountAmount:   p.DiscountAmount,
		platformFee:      p.PlatformFee,
		escrowAmount:     p.EscrowAmount,
		status:           p.Status,
		origin:           p.Origin,
		promoCodeID:      p.PromoCodeID,
		offerID:          p.OfferID,
		scheduledDate:    p.ScheduledDate,
		startedAt:        p.StartedAt,
		completedAt:      p.CompletedAt,
		canceledAt:       p.CanceledAt,
		fundingPaymentID: p.FundingPaymentID,
		notes:            p.Notes,
		cancelReason:     p.CancelReason,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}
}

// IsFunded reports whether work may start: a completed payment covers the
// escrow, or there is nothing to escrow.
func (t *Transaction) IsFunded() bool {
	return t.fundingPaymentID != nil || t.escrowAmount.IsZero()
}

// IsParty reports whether id is the client or the professional.
func (t *Transaction) IsParty(id uuid.UUID) bool {
	return id == t.clientID || id == t.professionalID
}

func (t *Transaction) ID() uuid.UUID                { return t.id }
func (t *Transaction) ClientID() uuid.UUID          { return t.clientID }
func (t *Transaction) ProfessionalID() uuid.UUID    { return t.professionalID }
func (t *Transaction) PriceAgreed() money.Money     { return t.priceAgreed }
func (t *Transaction) DiscountAmount() money.Money  { return t.discountAmount }
func (t *Transaction) PlatformFee() money.Money     { return t.platformFee }
func (t *Transaction) EscrowAmount() money.Money    { return t.escrowAmount }
func (t *Transaction) Status() Status               { return t.status }
func (t *Transaction) Origin() Origin               { return t.origin }
func (t *Transaction) PromoCodeID() *uuid.UUID      { return t.promoCodeID }
func (t *Transaction) OfferID() *uuid.UUID          { return t.offerID }
func (t *Transaction) ScheduledDate() *time.Time    { return t.scheduledDate }
func (t *Transaction) StartedAt() *time.Time        { return t.startedAt }
func (t *Transaction) CompletedAt() *time.Time      { return t.completedAt }
func (t *Transaction) CanceledAt() *time.Time       { return t.canceledAt }
func (t *Transaction) FundingPaymentID() *uuid.UUID { return t.fundingPaymentID }
func (t *Transaction) Notes() string                { return t.notes }
func (t *Transaction) CancelReason() string         { return t.cancelReason }
func (t *Transaction) CreatedAt() time.Time         { return t.createdAt }
func (t *Transaction) UpdatedAt() time.Time         { return t.updatedAt }

// actorKind classifies actor relative to this transaction. allowed lists the
// party kinds that may perform the operation; admins and the system always may.
func (t *Transaction) actorKind(actor user.Actor, allowed ...ActorKind) (ActorKind, error) {
	switch {
	case actor.IsSystem():
		return ActorSystem, nil
	case actor.IsAdmin():
		return ActorAdmin, nil
	}

	var kind ActorKind
	switch actor.ID {
	case t.clientID:
		kind = ActorClient
	case t.professionalID:
		kind = ActorProfessional
	default:
		return "", errs.Wrapf(errs.ErrForbidden, "user %s is not a party to transaction %s", actor.ID, t.id)
	}
	for _, a := range allowed {
		if a == kind {
			return kind, nil
		}
	}
	return "", errs.Wrapf(errs.ErrForbidden, "%s cannot perform this operation", kind)
}
