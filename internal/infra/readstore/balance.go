package readstore

import (
	"context"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/pgconv"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BalanceReadStore struct {
	db shared.DBTX
}

func NewBalanceReadStore(db shared.DBTX) *BalanceReadStore {
	return &BalanceReadStore{db: db}
}

func (r *BalanceReadStore) Balance(ctx context.Context, userID uuid.UUID) (int64, error) {
	var cents int64
	if err := r.db.QueryRow(ctx, `SELECT balance_cents FROM users WHERE id = $1`, userID).Scan(&cents); err != nil {
		return 0, infra.WrapRepoErr("failed to get balance", err)
	}
	return cents, nil
}

func (r *BalanceReadStore) RecentMovements(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.MovementView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, kind, amount_cents, reference_id, created_at
		FROM balance_movements
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list balance movements", err)
	}
	defer rows.Close()

	var out []*queries.MovementView
	for rows.Next() {
		var m queries.MovementView
		if err := rows.Scan(&m.ID, &m.Kind, &m.AmountCents, &m.ReferenceID, &m.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan balance movement", err)
		}
		out = append(out, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read balance movements", err)
	}
	return out, nil
}

func (r *BalanceReadStore) ListWithdrawals(ctx context.Context, userID uuid.UUID, status string, after *queries.Keyset, limit int32) ([]*queries.WithdrawalView, error) {
	afterAt, afterID := keysetArgs(after)
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, payment_method_id, amount_cents, status, rejection_reason, processed_at, created_at
		FROM withdrawals
		WHERE ($1::uuid IS NULL OR user_id = $1)
		  AND ($2 = '' OR status = $2)
		  AND ($3::timestamptz IS NULL OR (created_at, id) < ($3, $4::uuid))
		ORDER BY created_at DESC, id DESC
		LIMIT $5`,
		pgtype.UUID{Bytes: userID, Valid: userID != uuid.Nil}, status, afterAt, afterID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list withdrawals", err)
	}
	defer rows.Close()

	var out []*queries.WithdrawalView
	for rows.Next() {
		var (
			w         queries.WithdrawalView
			reason    pgtype.Text
			processed pgtype.Timestamptz
		)
		if err := rows.Scan(&w.ID, &w.UserID, &w.PaymentMethodID, &w.AmountCents, &w.Status, &reason, &processed, &w.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan withdrawal", err)
		}
		w.RejectionReason = pgconv.StringPtrFromPgtype(reason)
		w.ProcessedAt = pgconv.TimePtrFromPgtype(processed)
		out = append(out, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read withdrawals", err)
	}
	return out, nil
}
