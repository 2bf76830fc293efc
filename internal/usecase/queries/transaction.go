package queries

import (
	"context"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

type TransactionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TransactionView, error)
	History(ctx context.Context, id uuid.UUID) ([]StatusChangeView, error)
	// ListByParty returns transactions where userID is the client or the professional.
	ListByParty(ctx context.Context, userID uuid.UUID, status string, after *Keyset, limit int32) ([]*TransactionView, error)
}

type TransactionFilters struct {
	Status string
}

type TransactionQueries interface {
	GetTransaction(ctx context.Context, id uuid.UUID, actor user.Actor) (*TransactionView, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, actor user.Actor, filters TransactionFilters, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error)
}

type transactionQueriesImpl struct {
	store TransactionReadStore
}

func NewTransactionQueries(store TransactionReadStore) TransactionQueries {
	return &transactionQueriesImpl{store: store}
}

// GetTransaction is visible to both parties and to admins.
func (q *transactionQueriesImpl) GetTransaction(ctx context.Context, id uuid.UUID, actor user.Actor) (*TransactionView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsPrivileged() && actor.ID != view.ClientID && actor.ID != view.ProfessionalID {
		return nil, errs.Wrapf(errs.ErrForbidden, "transaction %s", id)
	}

	history, err := q.store.History(ctx, id)
	if err != nil {
		return nil, err
	}
	view.History = history
	return view, nil
}

func (q *transactionQueriesImpl) ListTransactions(ctx context.Context, userID uuid.UUID, actor user.Actor, filters TransactionFilters, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error) {
	if !actor.IsPrivileged() && actor.ID != userID {
		return nil, nil, errs.Wrapf(errs.ErrForbidden, "transactions of %s", userID)
	}

	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.store.ListByParty(ctx, userID, filters.Status, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := pageOf(rows, limit, func(v *TransactionView) Keyset {
		return Keyset{CreatedAt: v.CreatedAt, ID: v.ID}
	})
	return page, next, nil
}
