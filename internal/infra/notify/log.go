package notify

import (
	"context"
	"log/slog"
)

// LogPublisher is used when no Redis is configured.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (LogPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	slog.InfoContext(ctx, "notification",
		slog.String("topic", topic),
		slog.String("payload", string(payload)))
	return nil
}
