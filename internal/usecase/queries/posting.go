package queries

import (
	"context"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"

	"github.com/google/uuid"
)

type PostingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PostingView, error)
	Offers(ctx context.Context, postingID uuid.UUID) ([]*OfferView, error)
	ListOpen(ctx context.Context, category string, after *Keyset, limit int32) ([]*PostingView, error)
}

type PostingQueries interface {
	GetPosting(ctx context.Context, id uuid.UUID, actor user.Actor) (*PostingView, error)
	ListOpenPostings(ctx context.Context, category string, cursor *Cursor, limit int) ([]*PostingView, *Cursor, error)
}

type postingQueriesImpl struct {
	store PostingReadStore
}

func NewPostingQueries(store PostingReadStore) PostingQueries {
	return &postingQueriesImpl{store: store}
}

// GetPosting shows every offer to the owner and admins. A professional only
// sees their own offers.
func (q *postingQueriesImpl) GetPosting(ctx context.Context, id uuid.UUID, actor user.Actor) (*PostingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	offers, err := q.store.Offers(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.IsPrivileged() || actor.ID == view.ClientID {
		view.Offers = offers
		return view, nil
	}
	for _, o := range offers {
		if o.ProfessionalID == actor.ID {
			view.Offers = append(view.Offers, o)
		}
	}
	return view, nil
}

func (q *postingQueriesImpl) ListOpenPostings(ctx context.Context, category string, cursor *Cursor, limit int) ([]*PostingView, *Cursor, error) {
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.store.ListOpen(ctx, category, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := pageOf(rows, limit, func(v *PostingView) Keyset {
		return Keyset{CreatedAt: v.CreatedAt, ID: v.ID}
	})
	return page, next, nil
}
