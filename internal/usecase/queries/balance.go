package queries

import (
	"context"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

const recentMovements = 20

type BalanceReadStore interface {
	Balance(ctx context.Context, userID uuid.UUID) (int64, error)
	RecentMovements(ctx context.Context, userID uuid.UUID, limit int32) ([]*MovementView, error)
	ListWithdrawals(ctx context.Context, userID uuid.UUID, status string, after *Keyset, limit int32) ([]*WithdrawalView, error)
}

type BalanceQueries interface {
	GetBalance(ctx context.Context, userID uuid.UUID, actor user.Actor) (*BalanceView, error)
	ListWithdrawals(ctx context.Context, userID uuid.UUID, actor user.Actor, status string, cursor *Cursor, limit int) ([]*WithdrawalView, *Cursor, error)
}

type balanceQueriesImpl struct {
	store BalanceReadStore
}

func NewBalanceQueries(store BalanceReadStore) BalanceQueries {
	return &balanceQueriesImpl{store: store}
}

func (q *balanceQueriesImpl) GetBalance(ctx context.Context, userID uuid.UUID, actor user.Actor) (*BalanceView, error) {
	if !actor.IsPrivileged() && actor.ID != userID {
		return nil, errs.Wrapf(errs.ErrForbidden, "balance of %s", userID)
	}

	cents, err := q.store.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	movements, err := q.store.RecentMovements(ctx, userID, recentMovements)
	if err != nil {
		return nil, err
	}
	if movements == nil {
		movements = []*MovementView{}
	}
	return &BalanceView{UserID: userID, BalanceCents: cents, Movements: movements}, nil
}

// ListWithdrawals with a nil userID lists every user's withdrawals (admin queue).
func (q *balanceQueriesImpl) ListWithdrawals(ctx context.Context, userID uuid.UUID, actor user.Actor, status string, cursor *Cursor, limit int) ([]*WithdrawalView, *Cursor, error) {
	if !actor.IsPrivileged() && (userID == uuid.Nil || actor.ID != userID) {
		return nil, nil, errs.Wrapf(errs.ErrForbidden, "withdrawals of %s", userID)
	}

	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.store.ListWithdrawals(ctx, userID, status, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := pageOf(rows, limit, func(v *WithdrawalView) Keyset {
		return Keyset{CreatedAt: v.CreatedAt, ID: v.ID}
	})
	return page, next, nil
}
