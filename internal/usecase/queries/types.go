package queries

import (
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidCursor = errs.New("invalid cursor")

// Keyset is the decoded position of an "after" cursor.
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type TransactionView struct {
	ID                  uuid.UUID          `json:"id"`
	ClientID            uuid.UUID          `json:"client_id"`
	ProfessionalID      uuid.UUID          `json:"professional_id"`
	PriceAgreedCents    int64              `json:"price_agreed_cents"`
	DiscountAmountCents int64              `json:"discount_amount_cents"`
	PlatformFeeCents    int64              `json:"platform_fee_cents"`
	EscrowAmountCents   int64              `json:"escrow_amount_cents"`
	Status              string             `json:"status"`
	OriginKind          string             `json:"origin_kind"`
	OriginID            uuid.UUID          `json:"origin_id"`
	PromoCodeID         *uuid.UUID         `json:"promo_code_id,omitempty"`
	OfferID             *uuid.UUID         `json:"offer_id,omitempty"`
	FundingPaymentID    *uuid.UUID         `json:"funding_payment_id,omitempty"`
	Category            string             `json:"category"`
	ScheduledDate       *time.Time         `json:"scheduled_date,omitempty"`
	CompletedAt         *time.Time         `json:"completed_at,omitempty"`
	CanceledAt          *time.Time         `json:"canceled_at,omitempty"`
	CancelReason        string             `json:"cancel_reason,omitempty"`
	Notes               string             `json:"notes,omitempty"`
	History             []StatusChangeView `json:"history,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

type StatusChangeView struct {
	FromStatus string     `json:"from_status"`
	ToStatus   string     `json:"to_status"`
	ActorKind  string     `json:"actor_kind"`
	ActorID    *uuid.UUID `json:"actor_id,omitempty"`
	Reason     string     `json:"reason,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type PostingView struct {
	ID            uuid.UUID    `json:"id"`
	ClientID      uuid.UUID    `json:"client_id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Category      string       `json:"category"`
	PriceMinCents *int64       `json:"price_min_cents,omitempty"`
	PriceMaxCents *int64       `json:"price_max_cents,omitempty"`
	Status        string       `json:"status"`
	ExpiresAt     *time.Time   `json:"expires_at,omitempty"`
	Offers        []*OfferView `json:"offers,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type OfferView struct {
	ID             uuid.UUID `json:"id"`
	PostingID      uuid.UUID `json:"posting_id"`
	ProfessionalID uuid.UUID `json:"professional_id"`
	PriceCents     int64     `json:"price_cents"`
	Message        string    `json:"message"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type BalanceView struct {
	UserID       uuid.UUID       `json:"user_id"`
	BalanceCents int64           `json:"balance_cents"`
	Movements    []*MovementView `json:"movements"`
}

type MovementView struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	AmountCents int64     `json:"amount_cents"`
	ReferenceID uuid.UUID `json:"reference_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type WithdrawalView struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	PaymentMethodID uuid.UUID  `json:"payment_method_id"`
	AmountCents     int64      `json:"amount_cents"`
	Status          string     `json:"status"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ReviewView struct {
	ID             uuid.UUID `json:"id"`
	TransactionID  uuid.UUID `json:"transaction_id"`
	ReviewerID     uuid.UUID `json:"reviewer_id"`
	ProfessionalID uuid.UUID `json:"professional_id"`
	Rating         int32     `json:"rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
}

type RatingSummary struct {
	ProfessionalID uuid.UUID `json:"professional_id"`
	TotalReviews   int32     `json:"total_reviews"`
	AverageRating  float64   `json:"average_rating"`
}
