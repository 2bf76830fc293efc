package readstore

import (
	"context"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/pgconv"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/queries"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const postingViewColumns = `id, client_id, title, description, category, price_min_cents, price_max_cents,
	status, expires_at, created_at, updated_at`

type PostingReadStore struct {
	db shared.DBTX
}

func NewPostingReadStore(db shared.DBTX) *PostingReadStore {
	return &PostingReadStore{db: db}
}

func (r *PostingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PostingView, error) {
	v, err := scanPostingView(r.db.QueryRow(ctx, `SELECT `+postingViewColumns+` FROM postings WHERE id = $1`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get posting view", err)
	}
	return v, nil
}

func (r *PostingReadStore) Offers(ctx context.Context, postingID uuid.UUID) ([]*queries.OfferView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, posting_id, professional_id, price_cents, message, status, created_at
		FROM offers WHERE posting_id = $1
		ORDER BY created_at, id`, postingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	defer rows.Close()

	var out []*queries.OfferView
	for rows.Next() {
		var o queries.OfferView
		if err := rows.Scan(&o.ID, &o.PostingID, &o.ProfessionalID, &o.PriceCents, &o.Message, &o.Status, &o.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer", err)
		}
		out = append(out, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offers", err)
	}
	return out, nil
}

func (r *PostingReadStore) ListOpen(ctx context.Context, category string, after *queries.Keyset, limit int32) ([]*queries.PostingView, error) {
	afterAt, afterID := keysetArgs(after)
	rows, err := r.db.Query(ctx, `
		SELECT `+postingViewColumns+`
		FROM postings
		WHERE status = 'OPEN'
		  AND (expires_at IS NULL OR expires_at > now())
		  AND ($1 = '' OR category = $1)
		  AND ($2::timestamptz IS NULL OR (created_at, id) < ($2, $3::uuid))
		ORDER BY created_at DESC, id DESC
		LIMIT $4`,
		category, afterAt, afterID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open postings", err)
	}
	defer rows.Close()

	var out []*queries.PostingView
	for rows.Next() {
		v, err := scanPostingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan posting view", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read postings", err)
	}
	return out, nil
}

func scanPostingView(row pgx.Row) (*queries.PostingView, error) {
	var (
		v                  queries.PostingView
		priceMin, priceMax pgtype.Int8
		expiresAt          pgtype.Timestamptz
	)
	if err := row.Scan(&v.ID, &v.ClientID, &v.Title, &v.Description, &v.Category, &priceMin, &priceMax,
		&v.Status, &expiresAt, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.PriceMinCents = int8Ptr(priceMin)
	v.PriceMaxCents = int8Ptr(priceMax)
	v.ExpiresAt = pgconv.TimePtrFromPgtype(expiresAt)
	return &v, nil
}
