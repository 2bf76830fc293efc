package repository

import (
	"context"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type BalanceRepository struct {
	db shared.DBTX
}

func NewBalanceRepository(db shared.DBTX) *BalanceRepository {
	return &BalanceRepository{db: db}
}

func (r *BalanceRepository) GetForUpdate(ctx context.Context, userID uuid.UUID) (money.Money, error) {
	var cents int64
	err := r.db.QueryRow(ctx, `SELECT balance_cents FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&cents)
	if err != nil {
		return money.Zero, infra.WrapRepoErr("failed to load balance", err)
	}
	return money.Money(cents), nil
}

func (r *BalanceRepository) Credit(ctx context.Context, userID uuid.UUID, amount money.Money, kind shared.MovementKind, reference uuid.UUID) error {
	if amount <= 0 {
		return errs.Wrapf(errs.ErrInvalidAmount, "credit of %d", amount)
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET balance_cents = balance_cents + $2, updated_at = now()
		WHERE id = $1`, userID, amount.Cents())
	if err != nil {
		return infra.WrapRepoErr("failed to credit balance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return r.appendMovement(ctx, userID, amount.Cents(), kind, reference)
}

func (r *BalanceRepository) Debit(ctx context.Context, userID uuid.UUID, amount money.Money, kind shared.MovementKind, reference uuid.UUID) error {
	if amount <= 0 {
		return errs.Wrapf(errs.ErrInvalidAmount, "debit of %d", amount)
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET balance_cents = balance_cents - $2, updated_at = now()
		WHERE id = $1 AND balance_cents >= $2`, userID, amount.Cents())
	if err != nil {
		return infra.WrapRepoErr("failed to debit balance", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.Wrapf(errs.ErrInsufficientBalance, "user %s cannot cover %d", userID, amount)
	}
	return r.appendMovement(ctx, userID, -amount.Cents(), kind, reference)
}

func (r *BalanceRepository) appendMovement(ctx context.Context, userID uuid.UUID, signedCents int64, kind shared.MovementKind, reference uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO balance_movements (user_id, kind, amount_cents, reference_id)
		VALUES ($1, $2, $3, $4)`, userID, string(kind), signedCents, reference)
	if err != nil {
		return infra.WrapRepoErr("failed to append balance movement", err)
	}
	return nil
}
