package repository

import (
	"context"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type OutboxRepository struct {
	db shared.DBTX
}

func NewOutboxRepository(db shared.DBTX) *OutboxRepository {
	return &OutboxRepository{db: db}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, topic string, key uuid.UUID, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO outbox_events (topic, event_key, payload, status, run_at)
		VALUES ($1, $2, $3, 'queued', $4)`,
		topic, key, payload, runAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}
	return nil
}
