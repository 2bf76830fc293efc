package outbox

import (
	"context"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Event struct {
	ID       uuid.UUID
	Topic    string
	Key      uuid.UUID
	Payload  []byte
	Attempts int
}

// Store is the dispatcher's view of outbox_events. Claimed events are leased
// until the lease expires; an expired lease makes the event claimable again.
type Store interface {
	Claim(ctx context.Context, now time.Time, limit int, lease time.Duration) ([]Event, error)
	MarkDone(ctx context.Context, id uuid.UUID) error
	MarkRetry(ctx context.Context, id uuid.UUID, runAt time.Time, lastErr string) error
	MarkDead(ctx context.Context, id uuid.UUID, lastErr string) error
}

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Claim(ctx context.Context, now time.Time, limit int, lease time.Duration) ([]Event, error) {
	rows, err := s.pool.Query(ctx, `
		UPDATE outbox_events SET
			status = 'running',
			attempts = attempts + 1,
			locked_until = $2,
			updated_at = $1
		WHERE id IN (
			SELECT id FROM outbox_events
			WHERE (status = 'queued' AND run_at <= $1)
			   OR (status = 'running' AND locked_until < $1)
			ORDER BY run_at
			LIMIT $3
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, topic, event_key, payload, attempts`,
		now, now.Add(lease), limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Topic, &e.Key, &e.Payload, &e.Attempts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan outbox event", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read outbox events", err)
	}
	return events, nil
}

func (s *PostgresStore) MarkDone(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE outbox_events SET status = 'done', locked_until = NULL, last_error = NULL, updated_at = now()
		WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox event done", err)
	}
	return nil
}

func (s *PostgresStore) MarkRetry(ctx context.Context, id uuid.UUID, runAt time.Time, lastErr string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE outbox_events SET status = 'queued', run_at = $2, locked_until = NULL, last_error = $3, updated_at = now()
		WHERE id = $1`, id, runAt, lastErr)
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule outbox event", err)
	}
	return nil
}

func (s *PostgresStore) MarkDead(ctx context.Context, id uuid.UUID, lastErr string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE outbox_events SET status = 'dead', locked_until = NULL, last_error = $2, updated_at = now()
		WHERE id = $1`, id, lastErr)
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox event dead", err)
	}
	return nil
}
