package repository

import (
	"context"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/transaction"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/pgconv"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type TransactionRepository struct {
	db shared.DBTX
}

func NewTransactionRepository(db shared.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, client_id, professional_id, posting_id, service_id, offer_id, promo_code_id,
	price_agreed_cents, discount_amount_cents, platform_fee_cents, escrow_amount_cents, status,
	scheduled_date, started_at, completed_at, canceled_at, funding_payment_id, notes, cancel_reason,
	created_at, updated_at`

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction, category string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO transactions (`+transactionColumns+`, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`,
		t.ID(), t.ClientID(), t.ProfessionalID(),
		pgconv.UUIDPtrToPgtype(t.Origin().PostingID()), pgconv.UUIDPtrToPgtype(t.Origin().ServiceID()),
		pgconv.UUIDPtrToPgtype(t.OfferID()), pgconv.UUIDPtrToPgtype(t.PromoCodeID()),
		t.PriceAgreed().Cents(), t.DiscountAmount().Cents(), t.PlatformFee().Cents(), t.EscrowAmount().Cents(),
		string(t.Status()),
		pgconv.TimePtrToPgtype(t.ScheduledDate()), pgconv.TimePtrToPgtype(t.StartedAt()),
		pgconv.TimePtrToPgtype(t.CompletedAt()), pgconv.TimePtrToPgtype(t.CanceledAt()),
		pgconv.UUIDPtrToPgtype(t.FundingPaymentID()), t.Notes(), t.CancelReason(),
		t.CreatedAt(), t.UpdatedAt(), category,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create transaction", err)
	}
	return nil
}

func (r *TransactionRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	row := r.db.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1 FOR UPDATE`, id)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load transaction", err)
	}
	return t, nil
}

func (r *TransactionRepository) ApplyTransition(ctx context.Context, t *transaction.Transaction, tr transaction.Transition) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE transactions SET
			status = $2,
			scheduled_date = $3,
			started_at = $4,
			completed_at = $5,
			canceled_at = $6,
			cancel_reason = $7,
			updated_at = $8
		WHERE id = $1 AND status = $9`,
		t.ID(), string(tr.To),
		pgconv.TimePtrToPgtype(t.ScheduledDate()), pgconv.TimePtrToPgtype(t.StartedAt()),
		pgconv.TimePtrToPgtype(t.CompletedAt()), pgconv.TimePtrToPgtype(t.CanceledAt()),
		t.CancelReason(), t.UpdatedAt(), string(tr.From),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update transaction status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("transaction changed concurrently", nil, infra.KindStaleState)
	}

	actorID := pgtype.UUID{Bytes: tr.ActorID, Valid: tr.ActorID != uuid.Nil}
	if _, err := r.db.Exec(ctx, `
		INSERT INTO transaction_status_history (transaction_id, from_status, to_status, actor_kind, actor_id, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		tr.TransactionID, string(tr.From), string(tr.To), string(tr.Actor), actorID, tr.Reason, tr.At,
	); err != nil {
		return infra.WrapRepoErr("failed to append status history", err)
	}
	return nil
}

func (r *TransactionRepository) SetFunding(ctx context.Context, t *transaction.Transaction) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE transactions SET funding_payment_id = $2, updated_at = $3
		WHERE id = $1 AND funding_payment_id IS NULL`,
		t.ID(), pgconv.UUIDPtrToPgtype(t.FundingPaymentID()), t.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set transaction funding", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("transaction already funded", nil, infra.KindStaleState)
	}
	return nil
}

func scanTransaction(row pgx.Row) (*transaction.Transaction, error) {
	var (
		p                                       transaction.ReconstructParams
		postingID, serviceID, offerID, promoID  pgtype.UUID
		fundingID                               pgtype.UUID
		price, discount, fee, escrow            int64
		status                                  string
		scheduled, started, completed, canceled pgtype.Timestamptz
		createdAt, updatedAt                    time.Time
	)
	if err := row.Scan(&p.ID, &p.ClientID, &p.ProfessionalID, &postingID, &serviceID, &offerID, &promoID,
		&price, &discount, &fee, &escrow, &status,
		&scheduled, &started, &completed, &canceled, &fundingID, &p.Notes, &p.CancelReason,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if id := pgconv.UUIDPtrFromPgtype(postingID); id != nil {
		p.Origin = transaction.FromPosting(*id)
	} else if id := pgconv.UUIDPtrFromPgtype(serviceID); id != nil {
		p.Origin = transaction.FromProactiveService(*id)
	}
	p.OfferID = pgconv.UUIDPtrFromPgtype(offerID)
	p.PromoCodeID = pgconv.UUIDPtrFromPgtype(promoID)
	p.FundingPaymentID = pgconv.UUIDPtrFromPgtype(fundingID)
	p.PriceAgreed = money.Money(price)
	p.DiscountAmount = money.Money(discount)
	p.PlatformFee = money.Money(fee)
	p.EscrowAmount = money.Money(escrow)
	p.Status = transaction.Status(status)
	p.ScheduledDate = pgconv.TimePtrFromPgtype(scheduled)
	p.StartedAt = pgconv.TimePtrFromPgtype(started)
	p.CompletedAt = pgconv.TimePtrFromPgtype(completed)
	p.CanceledAt = pgconv.TimePtrFromPgtype(canceled)
	p.CreatedAt = createdAt
	p.UpdatedAt = updatedAt
	return transaction.Reconstruct(p), nil
}
