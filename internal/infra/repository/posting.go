package repository

import (
	"context"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/money"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/posting"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/pgconv"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PostingRepository struct {
	db shared.DBTX
}

func NewPostingRepository(db shared.DBTX) *PostingRepository {
	return &PostingRepository{db: db}
}

const postingColumns = `id, client_id, title, description, category, price_min_cents, price_max_cents,
	status, expires_at, created_at, updated_at`

func (r *PostingRepository) Create(ctx context.Context, p *posting.Posting) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO postings (`+postingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID(), p.ClientID(), p.Title(), p.Description(), p.Category(),
		pgconv.MoneyPtrToPgtype(p.PriceMin()), pgconv.MoneyPtrToPgtype(p.PriceMax()),
		string(p.Status()), pgconv.TimePtrToPgtype(p.ExpiresAt()), p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create posting", err)
	}
	return nil
}

func (r *PostingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*posting.Posting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+postingColumns+` FROM postings WHERE id = $1 FOR UPDATE`, id)
	p, err := scanPosting(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load posting", err)
	}
	return p, nil
}

func (r *PostingRepository) UpdateStatus(ctx context.Context, p *posting.Posting, from posting.Status) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE postings SET status = $2, updated_at = $3
		WHERE id = $1 AND status = $4`,
		p.ID(), string(p.Status()), p.UpdatedAt(), string(from),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update posting status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("posting changed concurrently", nil, infra.KindStaleState)
	}
	return nil
}

func (r *PostingRepository) ListExpiredOpen(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id FROM postings
		WHERE status = 'OPEN' AND expires_at IS NOT NULL AND expires_at <= $1
		ORDER BY expires_at
		LIMIT $2`, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired postings", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan expired postings", err)
	}
	return ids, nil
}

func scanPosting(row pgx.Row) (*posting.Posting, error) {
	var (
		id, clientID                 uuid.UUID
		title, description, category string
		priceMin, priceMax           pgtype.Int8
		status                       string
		expiresAt                    pgtype.Timestamptz
		createdAt, updatedAt         time.Time
	)
	if err := row.Scan(&id, &clientID, &title, &description, &category, &priceMin, &priceMax,
		&status, &expiresAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return posting.ReconstructPosting(id, clientID, title, description, category,
		pgconv.MoneyPtrFromPgtype(priceMin), pgconv.MoneyPtrFromPgtype(priceMax),
		posting.Status(status), pgconv.TimePtrFromPgtype(expiresAt), createdAt, updatedAt), nil
}

type OfferRepository struct {
	db shared.DBTX
}

func NewOfferRepository(db shared.DBTX) *OfferRepository {
	return &OfferRepository{db: db}
}

const offerColumns = `id, posting_id, professional_id, price_cents, message, status, created_at, updated_at`

func (r *OfferRepository) Create(ctx context.Context, o *posting.Offer) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO offers (`+offerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID(), o.PostingID(), o.ProfessionalID(), o.Price().Cents(), o.Message(),
		string(o.Status()), o.CreatedAt(), o.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create offer", err)
	}
	return nil
}

func (r *OfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*posting.Offer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id)
	o, err := scanOffer(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load offer", err)
	}
	return o, nil
}

func (r *OfferRepository) ListByPostingForUpdate(ctx context.Context, postingID uuid.UUID) ([]*posting.Offer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+offerColumns+` FROM offers
		WHERE posting_id = $1
		ORDER BY created_at, id
		FOR UPDATE`, postingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	defer rows.Close()

	var offers []*posting.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer", err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate offers", err)
	}
	return offers, nil
}

func (r *OfferRepository) UpdateStatus(ctx context.Context, o *posting.Offer, from posting.OfferStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE offers SET status = $2, updated_at = $3
		WHERE id = $1 AND status = $4`,
		o.ID(), string(o.Status()), o.UpdatedAt(), string(from),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update offer status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer changed concurrently", nil, infra.KindStaleState)
	}
	return nil
}

func scanOffer(row pgx.Row) (*posting.Offer, error) {
	var (
		id, postingID, professionalID uuid.UUID
		price                         int64
		message, status               string
		createdAt, updatedAt          time.Time
	)
	if err := row.Scan(&id, &postingID, &professionalID, &price, &message, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return posting.ReconstructOffer(id, postingID, professionalID, money.Money(price), message,
		posting.OfferStatus(status), createdAt, updatedAt), nil
}
