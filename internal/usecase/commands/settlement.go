package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/payment"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/promo"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/transaction"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/metrics"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Settings carries the settlement knobs shared by every command.
type Settings struct {
	FeeRatePct decimal.Decimal
}

// enqueue writes an outbox event in the caller's transaction, so it is
// published only if the surrounding work commits.
func enqueue(ctx context.Context, tx shared.Tx, topic string, key uuid.UUID, payload any, runAt time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrapf(err, "marshal %s event", topic)
	}
	return tx.Outbox().Enqueue(ctx, topic, key, body, runAt)
}

// transactionSeed is everything needed to open a transaction, whatever its origin.
type transactionSeed struct {
	ClientID       uuid.UUID
	ProfessionalID uuid.UUID
	Price          money.Money
	Origin         transaction.Origin
	OfferID        *uuid.UUID
	Category       string
	PromoCode      string
	ScheduledDate  *time.Time
	Notes          string
}

// openTransaction validates the promo code, inserts the transaction and only
// then records the promo usage, all inside tx.
func openTransaction(ctx context.Context, tx shared.Tx, settings Settings, seed transactionSeed, now time.Time) (*transaction.Transaction, error) {
	var (
		discount money.Money
		code     *promo.PromoCode
	)
	if strings.TrimSpace(seed.PromoCode) != "" {
		var err error
		code, discount, err = validatePromo(ctx, tx, seed.PromoCode, promo.Candidate{
			UserID:   seed.ClientID,
			Amount:   seed.Price,
			Category: seed.Category,
		}, now, true)
		if err != nil {
			return nil, err
		}
	}

	params := transaction.CreateParams{
		ClientID:       seed.ClientID,
		ProfessionalID: seed.ProfessionalID,
		PriceAgreed:    seed.Price,
		Discount:       discount,
		FeeRatePct:     settings.FeeRatePct,
		Origin:         seed.Origin,
		OfferID:        seed.OfferID,
		ScheduledDate:  seed.ScheduledDate,
		Notes:          seed.Notes,
	}
	if code != nil {
		id := code.ID()
		params.PromoCodeID = &id
	}

	t, err := transaction.New(params, now)
	if err != nil {
		return nil, err
	}
	if err := tx.Transactions().Create(ctx, t, seed.Category); err != nil {
		return nil, err
	}

	if code != nil {
		usage := promo.Usage{CodeID: code.ID(), UserID: seed.ClientID, TransactionID: t.ID(), UsedAt: now}
		if err := tx.PromoCodes().RecordUsage(ctx, usage); err != nil {
			return nil, err
		}
		metrics.PromoRedemptionsTotal.Inc()
	}

	if err := enqueue(ctx, tx, shared.TopicTransactionCreated, t.ID(), shared.TransactionCreatedEvent{
		TransactionID:     t.ID(),
		ClientID:          t.ClientID(),
		ProfessionalID:    t.ProfessionalID(),
		EscrowAmountCents: t.EscrowAmount().Cents(),
		Status:            string(t.Status()),
	}, now); err != nil {
		return nil, err
	}

	slog.Info("transaction created",
		"transaction_id", t.ID(),
		"origin", t.Origin().Kind(),
		"price_cents", t.PriceAgreed().Cents(),
		"discount_cents", t.DiscountAmount().Cents(),
		"fee_cents", t.PlatformFee().Cents(),
		"status", t.Status())
	return t, nil
}

// validatePromo loads raw and runs the validator. A malformed or unknown code
// is reported as NotFound.
func validatePromo(ctx context.Context, tx shared.Tx, raw string, c promo.Candidate, now time.Time, lock bool) (*promo.PromoCode, money.Money, error) {
	normalized, err := promo.NewCode(raw)
	if err != nil {
		return nil, money.Zero, errs.Wrapf(errs.ErrNotFound, "promo code %q", raw)
	}

	find := tx.PromoCodes().FindByCode
	if lock {
		find = tx.PromoCodes().FindByCodeForUpdate
	}
	code, err := find(ctx, normalized.String())
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, money.Zero, err
	}

	prior := 0
	if code != nil {
		if prior, err = tx.PromoCodes().CountUsages(ctx, code.ID(), c.UserID); err != nil {
			return nil, money.Zero, err
		}
	}

	discount, err := promo.Validate(code, prior, c, now)
	if err != nil {
		return nil, money.Zero, err
	}
	return code, discount, nil
}

// persistTransition writes the transition and its status_changed event.
func persistTransition(ctx context.Context, tx shared.Tx, t *transaction.Transaction, tr transaction.Transition) error {
	if err := tx.Transactions().ApplyTransition(ctx, t, tr); err != nil {
		return err
	}
	if err := enqueue(ctx, tx, shared.TopicTransactionStatusChanged, t.ID(), shared.StatusChangedEvent{
		TransactionID:  t.ID(),
		ClientID:       t.ClientID(),
		ProfessionalID: t.ProfessionalID(),
		From:           string(tr.From),
		To:             string(tr.To),
		Actor:          string(tr.Actor),
		Reason:         tr.Reason,
		At:             tr.At,
	}, tr.At); err != nil {
		return err
	}
	metrics.TransitionsTotal.WithLabelValues(string(tr.From), string(tr.To), string(tr.Actor)).Inc()
	return nil
}

// refundFunding marks the transaction's completed funding payment REFUNDED and
// asks the gateway worker to return the money. A transaction without one is a
// no-op.
func refundFunding(ctx context.Context, tx shared.Tx, transactionID uuid.UUID, reason string, now time.Time) error {
	p, err := tx.Payments().FindCompletedByTransaction(ctx, transactionID)
	if errors.Is(err, errs.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := p.Refund(reason, now); err != nil {
		return err
	}
	if err := tx.Payments().Update(ctx, p, payment.StatusCompleted); err != nil {
		return err
	}
	metrics.PaymentsTotal.WithLabelValues(string(p.Status())).Inc()
	return enqueueRefund(ctx, tx, p.ID(), p.TransactionID(), p.Amount(), p.Reference(), reason, now)
}

func enqueueRefund(ctx context.Context, tx shared.Tx, paymentID, transactionID uuid.UUID, amount money.Money, reference *string, reason string, now time.Time) error {
	ev := shared.RefundRequestedEvent{
		PaymentID:     paymentID,
		TransactionID: transactionID,
		AmountCents:   amount.Cents(),
		Reason:        reason,
	}
	if reference != nil {
		ev.Reference = *reference
	}
	return enqueue(ctx, tx, shared.TopicRefundRequested, paymentID, ev, now)
}
