package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

const idempotencyTTL = 24 * time.Hour

const (
	endpointBookService       = "POST /transactions"
	endpointInitiatePayment   = "POST /transactions/:id/payments"
	endpointRequestWithdrawal = "POST /withdrawals"
)

// keyedRequest identifies one client attempt. A zero Key disables replay.
type keyedRequest struct {
	Key      uuid.UUID
	UserID   uuid.UUID
	Endpoint string
	Body     any
}

// replayOrCreate runs inside the caller's unit of work. A live record for
// the same key returns the stored result instead of calling create; the same
// key with a different body fails with IdempotencyKeyReused.
func replayOrCreate(ctx context.Context, tx shared.Tx, req keyedRequest, now time.Time, create func() (uuid.UUID, error)) (uuid.UUID, bool, error) {
	if req.Key == uuid.Nil {
		id, err := create()
		return id, false, err
	}

	hash, err := requestHash(req.Body)
	if err != nil {
		return uuid.Nil, false, err
	}
	rec, err := tx.Idempotency().Find(ctx, req.Key, req.UserID, req.Endpoint, now)
	switch {
	case err == nil:
		if rec.RequestHash != hash {
			return uuid.Nil, false, errs.Wrapf(errs.ErrIdempotencyKeyReused, "%s with key %s", req.Endpoint, req.Key)
		}
		return rec.ResultID, true, nil
	case !errs.Is(err, errs.ErrNotFound):
		return uuid.Nil, false, err
	}

	id, err := create()
	if err != nil {
		return uuid.Nil, false, err
	}
	if err := tx.Idempotency().Save(ctx, shared.IdempotencyRecord{
		Key:         req.Key,
		UserID:      req.UserID,
		Endpoint:    req.Endpoint,
		RequestHash: hash,
		ResultID:    id,
		ExpiresAt:   now.Add(idempotencyTTL),
		CreatedAt:   now,
	}); err != nil {
		return uuid.Nil, false, err
	}
	return id, false, nil
}

func requestHash(body any) (string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", errs.Wrap(err, "hash request")
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
