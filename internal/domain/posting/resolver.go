package posting

import (
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

// Acceptance is the outcome of resolving a posting to one offer. Callers
// persist Posting, Accepted and Rejected together with the transaction built
// from TransactionInput.
type Acceptance struct {
	Posting  *Posting
	Accepted *Offer
	Rejected []*Offer
	Input    TransactionInput
}

// TransactionInput carries what the transaction state machine needs from an
// accepted offer.
type TransactionInput struct {
	ClientID       uuid.UUID
	ProfessionalID uuid.UUID
	PriceAgreed    money.Money
	PostingID      uuid.UUID
	OfferID        uuid.UUID
	Category       string
}

// Accept resolves p to the offer identified by offerID. offers must hold
// every offer of p, loaded under lock. Only the posting's client or an admin
// may accept.
func Accept(p *Posting, offers []*Offer, offerID uuid.UUID, actor user.Actor, now time.Time) (*Acceptance, error) {
	if actor.ID != p.clientID && !actor.IsAdmin() {
		return nil, errs.Wrap(errs.ErrForbidden, "only the posting's client may accept offers")
	}

	var chosen *Offer
	for _, o := range offers {
		if o.id == offerID {
			chosen = o
			break
		}
	}
	if chosen == nil || chosen.postingID != p.id {
		return nil, errs.Wrapf(errs.ErrNotFound, "offer %s not found on posting %s", offerID, p.id)
	}
	if !chosen.IsPending() {
		return nil, errs.Wrapf(errs.ErrInvalidState, "offer %s is %s", chosen.id, chosen.status)
	}
	if !p.IsOpen() {
		return nil, errs.Wrapf(errs.ErrInvalidState, "posting %s is %s", p.id, p.status)
	}
	if p.IsExpiredAt(now) {
		return nil, errs.Wrapf(errs.ErrInvalidState, "posting %s expired", p.id)
	}

	if err := chosen.accept(now); err != nil {
		return nil, err
	}
	rejected := rejectPending(offers, chosen.id, now)
	if err := p.Close(now); err != nil {
		return nil, err
	}

	return &Acceptance{
		Posting:  p,
		Accepted: chosen,
		Rejected: rejected,
		Input: TransactionInput{
			ClientID:       p.clientID,
			ProfessionalID: chosen.professionalID,
			PriceAgreed:    chosen.price,
			PostingID:      p.id,
			OfferID:        chosen.id,
			Category:       p.category,
		},
	}, nil
}

// Withdraw closes (or expires) an open posting without a winner and rejects
// every pending offer. Admin force-close uses StatusClosed, the expiry sweep
// StatusExpired.
func Withdraw(p *Posting, offers []*Offer, to Status, now time.Time) ([]*Offer, error) {
	var err error
	switch to {
	case StatusClosed:
		err = p.Close(now)
	case StatusExpired:
		if !p.IsExpiredAt(now) {
			return nil, errs.Wrapf(errs.ErrInvalidState, "posting %s has not expired yet", p.id)
		}
		err = p.Expire(now)
	default:
		return nil, errs.Wrapf(errs.ErrInvalidState, "cannot withdraw posting to %s", to)
	}
	if err != nil {
		return nil, err
	}
	return rejectPending(offers, uuid.Nil, now), nil
}

func rejectPending(offers []*Offer, except uuid.UUID, now time.Time) []*Offer {
	var rejected []*Offer
	for _, o := range offers {
		if o.id == except || !o.IsPending() {
			continue
		}
		o.reject(now)
		rejected = append(rejected, o)
	}
	return rejected
}
