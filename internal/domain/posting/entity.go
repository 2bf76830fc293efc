package posting

import (
	"errors"
	"strings"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrEmptyCategory   = errors.New("category cannot be empty")
	ErrTitleTooLong    = errors.New("title exceeds maximum length")
	ErrInvalidPriceBox = errors.New("priceMin cannot exceed priceMax")
)

const MaxTitleLength = 200

// Posting is a client's request for a service, open to professional offers.
type Posting struct {
	id          uuid.UUID
	clientID    uuid.UUID
	title       string
	description string
	category    string
	priceMin    *money.Money
	priceMax    *money.Money
	status      Status
	expiresAt   *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

type NewPostingParams struct {
	ClientID    uuid.UUID
	Title       string
	Description string
	Category    string
	PriceMin    *money.Money
	PriceMax    *money.Money
	ExpiresAt   *time.Time
}

func NewPosting(p NewPostingParams, now time.Time) (*Posting, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	category := strings.TrimSpace(p.Category)
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if (p.PriceMin != nil && *p.PriceMin < 0) || (p.PriceMax != nil && *p.PriceMax < 0) {
		return nil, errs.Wrap(errs.ErrInvalidAmount, "price range cannot be negative")
	}
	if p.PriceMin != nil && p.PriceMax != nil && *p.PriceMin > *p.PriceMax {
		return nil, ErrInvalidPriceBox
	}
	if p.ExpiresAt != nil && !p.ExpiresAt.After(now) {
		return nil, errs.Wrap(errs.ErrInvalidState, "expiry must be in the future")
	}

	return &Posting{
		id:          uuid.New(),
		clientID:    p.ClientID,
		title:       title,
		description: strings.TrimSpace(p.Description),
		category:    category,
		priceMin:    p.PriceMin,
		priceMax:    p.PriceMax,
		status:      StatusOpen,
		expiresAt:   p.ExpiresAt,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPosting(
	id, clientID uuid.UUID,
	title, description, category string,
	priceMin, priceMax *money.Money,
	status Status,
	expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *Posting {
	return &Posting{
		id:          id,
		clientID:    clientID,
		title:       title,
		description: description,
		category:    category,
		priceMin:    priceMin,
		priceMax:    priceMax,
		status:      status,
		expiresAt:   expiresAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Posting) IsOpen() bool { return p.status == StatusOpen }

func (p *Posting) IsExpiredAt(now time.Time) bool {
	return p.expiresAt != nil && !now.Before(*p.expiresAt)
}

// Close moves an open posting to CLOSED. A closed posting is immutable.
func (p *Posting) Close(now time.Time) error {
	return p.moveTo(StatusClosed, now)
}

func (p *Posting) Expire(now time.Time) error {
	return p.moveTo(StatusExpired, now)
}

func (p *Posting) moveTo(to Status, now time.Time) error {
	if p.status != StatusOpen {
		return errs.Wrapf(errs.ErrInvalidState, "posting %s is %s, cannot move to %s", p.id, p.status, to)
	}
	p.status = to
	p.updatedAt = now
	return nil
}

func (p *Posting) ID() uuid.UUID          { return p.id }
func (p *Posting) ClientID() uuid.UUID    { return p.clientID }
func (p *Posting) Title() string          { return p.title }
func (p *Posting) Description() string    { return p.description }
func (p *Posting) Category() string       { return p.category }
func (p *Posting) PriceMin() *money.Money { return p.priceMin }
func (p *Posting) PriceMax() *money.Money { return p.priceMax }
func (p *Posting) Status() Status         { return p.status }
func (p *Posting) ExpiresAt() *time.Time  { return p.expiresAt }
func (p *Posting) CreatedAt() time.Time   { return p.createdAt }
func (p *Posting) UpdatedAt() time.Time   { return p.updatedAt }
