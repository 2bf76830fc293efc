package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/config"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"

	"github.com/hibiken/asynq"
)

// AsynqPublisher hands notification events to the delivery workers as
// asynq tasks. The task type is the event topic.
type AsynqPublisher struct {
	client *asynq.Client
	queue  string
}

func NewAsynqPublisher(cfg config.RedisConfig) *AsynqPublisher {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &AsynqPublisher{client: client, queue: cfg.Queue}
}

func (p *AsynqPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	task := asynq.NewTask(topic, payload)
	info, err := p.client.EnqueueContext(ctx, task,
		asynq.Queue(p.queue),
		asynq.MaxRetry(5),
		asynq.Retention(24*time.Hour),
	)
	if err != nil {
		return errs.Wrapf(err, "enqueue %s", topic)
	}
	slog.DebugContext(ctx, "notification enqueued",
		slog.String("topic", topic),
		slog.String("taskID", info.ID),
		slog.String("queue", info.Queue))
	return nil
}

func (p *AsynqPublisher) Close() error {
	return p.client.Close()
}
