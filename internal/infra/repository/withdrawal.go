package repository

import (
	"context"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/withdrawal"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/pgconv"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type WithdrawalRepository struct {
	db shared.DBTX
}

func NewWithdrawalRepository(db shared.DBTX) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

func (r *WithdrawalRepository) Create(ctx context.Context, w *withdrawal.Withdrawal) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO withdrawals (id, user_id, payment_method_id, amount_cents, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		w.ID(), w.UserID(), w.PaymentMethodID(), w.Amount().Cents(), string(w.Status()), w.CreatedAt(), w.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create withdrawal", err)
	}
	return nil
}

func (r *WithdrawalRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*withdrawal.Withdrawal, error) {
	var (
		wid, userID, methodID uuid.UUID
		amount                int64
		status                string
		reason                pgtype.Text
		processedAt           pgtype.Timestamptz
		createdAt, updatedAt  time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, payment_method_id, amount_cents, status, rejection_reason, processed_at, created_at, updated_at
		FROM withdrawals WHERE id = $1 FOR UPDATE`, id,
	).Scan(&wid, &userID, &methodID, &amount, &status, &reason, &processedAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load withdrawal", err)
	}
	return withdrawal.Reconstruct(wid, userID, methodID, money.Money(amount), withdrawal.Status(status),
		pgconv.StringPtrFromPgtype(reason), pgconv.TimePtrFromPgtype(processedAt), createdAt, updatedAt), nil
}

func (r *WithdrawalRepository) Update(ctx context.Context, w *withdrawal.Withdrawal, from withdrawal.Status) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE withdrawals SET status = $2, rejection_reason = $3, processed_at = $4, updated_at = $5
		WHERE id = $1 AND status = $6`,
		w.ID(), string(w.Status()), pgconv.StringPtrToPgtype(w.RejectionReason()),
		pgconv.TimePtrToPgtype(w.ProcessedAt()), w.UpdatedAt(), string(from),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update withdrawal", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("withdrawal changed concurrently", nil, infra.KindStaleState)
	}
	return nil
}
