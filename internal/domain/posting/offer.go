package posting

import (
	"errors"
	"strings"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxOfferMessageLength = 1000

var ErrOfferMessageTooLong = errors.New("offer message exceeds maximum length")

type Offer struct {
	id             uuid.UUID
	postingID      uuid.UUID
	professionalID uuid.UUID
	price          money.Money
	message        string
	status         OfferStatus
	createdAt      time.Time
	updatedAt      time.Time
}

// NewOffer creates a pending offer on an open posting.
func NewOffer(p *Posting, professionalID uuid.UUID, price money.Money, message string, now time.Time) (*Offer, error) {
	if !p.IsOpen() || p.IsExpiredAt(now) {
		return nil, errs.Wrapf(errs.ErrInvalidState, "posting %s is not accepting offers", p.id)
	}
	if professionalID == p.clientID {
		return nil, errs.Wrap(errs.ErrForbidden, "cannot offer on own posting")
	}
	if price <= 0 {
		return nil, errs.Wrapf(errs.ErrInvalidAmount, "offer price must be positive, got %d", price)
	}
	message = strings.TrimSpace(message)
	if len(message) > MaxOfferMessageLength {
		return nil, ErrOfferMessageTooLong
	}

	return &Offer{
		id:             uuid.New(),
		postingID:      p.id,
		professionalID: professionalID,
		price:          price,
		message:        message,
		status:         OfferPending,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructOffer(
	id, postingID, professionalID uuid.UUID,
	price money.Money,
	message string,
	status OfferStatus,
	createdAt, updatedAt time.Time,
) *Offer {
	return &Offer{
		id:             id,
		postingID:      postingID,
		professionalID: professionalID,
		price:          price,
		message:        message,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (o *Offer) IsPending() bool { return o.status == OfferPending }

func (o *Offer) accept(now time.Time) error {
	if o.status != OfferPending {
		return errs.Wrapf(errs.ErrInvalidState, "offer %s is %s", o.id, o.status)
	}
	o.status = OfferAccepted
	o.updatedAt = now
	return nil
}

func (o *Offer) reject(now time.Time) {
	o.status = OfferRejected
	o.updatedAt = now
}

func (o *Offer) ID() uuid.UUID             { return o.id }
func (o *Offer) PostingID() uuid.UUID      { return o.postingID }
func (o *Offer) ProfessionalID() uuid.UUID { return o.professionalID }
func (o *Offer) Price() money.Money        { return o.price }
func (o *Offer) Message() string           { return o.message }
func (o *Offer) Status() OfferStatus       { return o.status }
func (o *Offer) CreatedAt() time.Time      { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time      { return o.updatedAt }
