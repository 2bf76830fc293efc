package repository

import (
	"context"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyRepository struct {
	db shared.DBTX
}

func NewIdempotencyRepository(db shared.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

func (r *IdempotencyRepository) Find(ctx context.Context, key, userID uuid.UUID, endpoint string, now time.Time) (*shared.IdempotencyRecord, error) {
	rec := shared.IdempotencyRecord{Key: key, UserID: userID, Endpoint: endpoint}
	err := r.db.QueryRow(ctx, `
		SELECT request_hash, result_id, expires_at, created_at
		FROM idempotency_keys
		WHERE user_id = $1 AND endpoint = $2 AND key = $3 AND expires_at > $4`,
		userID, endpoint, key, now,
	).Scan(&rec.RequestHash, &rec.ResultID, &rec.ExpiresAt, &rec.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &rec, nil
}

func (r *IdempotencyRepository) Save(ctx context.Context, rec shared.IdempotencyRecord) error {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, result_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, endpoint, key) DO UPDATE
		SET request_hash = EXCLUDED.request_hash, result_id = EXCLUDED.result_id,
		    expires_at = EXCLUDED.expires_at, created_at = EXCLUDED.created_at
		WHERE idempotency_keys.expires_at <= EXCLUDED.created_at`,
		rec.Key, rec.UserID, rec.Endpoint, rec.RequestHash, rec.ResultID, rec.ExpiresAt, rec.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key already recorded", nil, infra.KindDuplicateKey)
	}
	return nil
}
