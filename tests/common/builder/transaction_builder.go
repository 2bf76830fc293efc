//go:build unit || e2e

package builder

import (
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/transaction"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionBuilder struct {
	ID               uuid.UUID
	ClientID         uuid.UUID
	ProfessionalID   uuid.UUID
	PriceAgreed      money.Money
	DiscountAmount   money.Money
	FeeRatePct       decimal.Decimal
	Status           transaction.Status
	Origin           transaction.Origin
	PromoCodeID      *uuid.UUID
	OfferID          *uuid.UUID
	ScheduledDate    *time.Time
	FundingPaymentID *uuid.UUID
	Notes            string
	CreatedAt        time.Time
}

func NewTransactionBuilder() *TransactionBuilder {
	offerID := uuid.New()
	return &TransactionBuilder{
		ID:             uuid.New(),
		ClientID:       uuid.New(),
		ProfessionalID: uuid.New(),
		PriceAgreed:    300,
		FeeRatePct:     decimal.NewFromInt(5),
		Status:         transaction.StatusPendingSolicitud,
		Origin:         transaction.FromPosting(uuid.New()),
		OfferID:        &offerID,
		CreatedAt:      time.Now(),
	}
}

func (b *TransactionBuilder) With(mutate func(*TransactionBuilder)) *TransactionBuilder {
	mutate(b)
	return b
}

func (b *TransactionBuilder) WithStatus(s transaction.Status) *TransactionBuilder {
	b.Status = s
	return b
}

func (b *TransactionBuilder) WithPrice(price money.Money) *TransactionBuilder {
	b.PriceAgreed = price
	return b
}

func (b *TransactionBuilder) WithDiscount(discount money.Money) *TransactionBuilder {
	promoID := uuid.New()
	b.DiscountAmount = discount
	b.PromoCodeID = &promoID
	return b
}

func (b *TransactionBuilder) Funded() *TransactionBuilder {
	id := uuid.New()
	b.FundingPaymentID = &id
	return b
}

func (b *TransactionBuilder) BuildCreateParams() transaction.CreateParams {
	return transaction.CreateParams{
		ClientID:       b.ClientID,
		ProfessionalID: b.ProfessionalID,
		PriceAgreed:    b.PriceAgreed,
		Discount:       b.DiscountAmount,
		FeeRatePct:     b.FeeRatePct,
		Origin:         b.Origin,
		PromoCodeID:    b.PromoCodeID,
		OfferID:        b.OfferID,
		ScheduledDate:  b.ScheduledDate,
		Notes:          b.Notes,
	}
}

// BuildDomain reconstructs a persisted transaction in b.Status with amounts
// derived the same way creation derives them.
func (b *TransactionBuilder) BuildDomain() *transaction.Transaction {
	escrow := b.PriceAgreed - b.DiscountAmount
	fee, err := money.PlatformFee(escrow, b.FeeRatePct)
	if err != nil {
		panic(err)
	}
	return transaction.Reconstruct(transaction.ReconstructParams{
		ID:               b.ID,
		ClientID:         b.ClientID,
		ProfessionalID:   b.ProfessionalID,
		PriceAgreed:      b.PriceAgreed,
		DiscountAmount:   b.DiscountAmount,
		PlatformFee:      fee,
		EscrowAmount:     escrow,
		Status:           b.Status,
		Origin:           b.Origin,
		PromoCodeID:      b.PromoCodeID,
		OfferID:          b.OfferID,
		ScheduledDate:    b.ScheduledDate,
		FundingPaymentID: b.FundingPaymentID,
		Notes:            b.Notes,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.CreatedAt,
	})
}

func (b *TransactionBuilder) BuildView() *queries.TransactionView {
	t := b.BuildDomain()
	return &queries.TransactionView{
		ID:                  t.ID(),
		ClientID:            t.ClientID(),
		ProfessionalID:      t.ProfessionalID(),
		PriceAgreedCents:    t.PriceAgreed().Cents(),
		DiscountAmountCents: t.DiscountAmount().Cents(),
		PlatformFeeCents:    t.PlatformFee().Cents(),
		EscrowAmountCents:   t.EscrowAmount().Cents(),
		Status:              string(t.Status()),
		OriginKind:          string(t.Origin().Kind()),
		OriginID:            t.Origin().ID(),
		PromoCodeID:         t.PromoCodeID(),
		OfferID:             t.OfferID(),
		FundingPaymentID:    t.FundingPaymentID(),
		Category:            "plomería",
		CreatedAt:           t.CreatedAt(),
		UpdatedAt:           t.UpdatedAt(),
	}
}
