package readstore

import (
	"context"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/transaction"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/pgconv"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const transactionViewColumns = `t.id, t.client_id, t.professional_id, t.price_agreed_cents, t.discount_amount_cents,
	t.platform_fee_cents, t.escrow_amount_cents, t.status, t.posting_id, t.service_id, t.promo_code_id, t.offer_id,
	t.funding_payment_id, t.category, t.scheduled_date, t.completed_at, t.canceled_at, t.cancel_reason, t.notes,
	t.created_at, t.updated_at`

type TransactionReadStore struct {
	db shared.DBTX
}

func NewTransactionReadStore(db shared.DBTX) *TransactionReadStore {
	return &TransactionReadStore{db: db}
}

func (r *TransactionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TransactionView, error) {
	v, err := scanTransactionView(r.db.QueryRow(ctx, `SELECT `+transactionViewColumns+` FROM transactions t WHERE t.id = $1`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get transaction view", err)
	}
	return v, nil
}

func (r *TransactionReadStore) History(ctx context.Context, id uuid.UUID) ([]queries.StatusChangeView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT from_status, to_status, actor_kind, actor_id, reason, created_at
		FROM transaction_status_history
		WHERE transaction_id = $1
		ORDER BY id`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get transaction history", err)
	}
	defer rows.Close()

	var out []queries.StatusChangeView
	for rows.Next() {
		var (
			c       queries.StatusChangeView
			actorID pgtype.UUID
		)
		if err := rows.Scan(&c.FromStatus, &c.ToStatus, &c.ActorKind, &actorID, &c.Reason, &c.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan transaction history", err)
		}
		c.ActorID = pgconv.UUIDPtrFromPgtype(actorID)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read transaction history", err)
	}
	return out, nil
}

func (r *TransactionReadStore) ListByParty(ctx context.Context, userID uuid.UUID, status string, after *queries.Keyset, limit int32) ([]*queries.TransactionView, error) {
	afterAt, afterID := keysetArgs(after)
	rows, err := r.db.Query(ctx, `
		SELECT `+transactionViewColumns+`
		FROM transactions t
		WHERE (t.client_id = $1 OR t.professional_id = $1)
		  AND ($2 = '' OR t.status = $2)
		  AND ($3::timestamptz IS NULL OR (t.created_at, t.id) < ($3, $4::uuid))
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $5`,
		userID, status, afterAt, afterID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	defer rows.Close()

	var out []*queries.TransactionView
	for rows.Next() {
		v, err := scanTransactionView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan transaction view", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read transactions", err)
	}
	return out, nil
}

func scanTransactionView(row pgx.Row) (*queries.TransactionView, error) {
	var (
		v                                      queries.TransactionView
		postingID, serviceID, promoID, offerID pgtype.UUID
		fundingID                              pgtype.UUID
		scheduled, completed, canceled         pgtype.Timestamptz
		createdAt, updatedAt                   time.Time
	)
	if err := row.Scan(&v.ID, &v.ClientID, &v.ProfessionalID, &v.PriceAgreedCents, &v.DiscountAmountCents,
		&v.PlatformFeeCents, &v.EscrowAmountCents, &v.Status, &postingID, &serviceID, &promoID, &offerID,
		&fundingID, &v.Category, &scheduled, &completed, &canceled, &v.CancelReason, &v.Notes,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if postingID.Valid {
		v.OriginKind = string(transaction.OriginPosting)
		v.OriginID = postingID.Bytes
	} else {
		v.OriginKind = string(transaction.OriginProactiveService)
		v.OriginID = serviceID.Bytes
	}
	v.PromoCodeID = pgconv.UUIDPtrFromPgtype(promoID)
	v.OfferID = pgconv.UUIDPtrFromPgtype(offerID)
	v.FundingPaymentID = pgconv.UUIDPtrFromPgtype(fundingID)
	v.ScheduledDate = pgconv.TimePtrFromPgtype(scheduled)
	v.CompletedAt = pgconv.TimePtrFromPgtype(completed)
	v.CanceledAt = pgconv.TimePtrFromPgtype(canceled)
	v.CreatedAt = createdAt
	v.UpdatedAt = updatedAt
	return &v, nil
}
