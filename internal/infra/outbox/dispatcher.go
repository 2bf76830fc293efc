package outbox

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/metrics"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/clock"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/config"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

const (
	maxRetryDelay = time.Hour
	maxErrorLen   = 500
)

var (
	ErrTopicRequired   = errors.New("outbox topic is required")
	ErrHandlerRequired = errors.New("outbox handler is required")
	ErrHandlerExists   = errors.New("outbox handler already registered")
	ErrNoHandler       = errors.New("no outbox handler for topic")
)

type Handler func(ctx context.Context, payload []byte) error

// DeadLetterHandler runs before an event is dead-lettered, with the error
// that exhausted it. A failure sends the event back for another attempt.
type DeadLetterHandler func(ctx context.Context, payload []byte, cause error) error

// Dispatcher delivers claimed outbox events to the handler registered for
// their topic. Notification topics without a handler go to the publisher.
// Delivery is at least once; handlers must tolerate redelivery.
type Dispatcher struct {
	store     Store
	publisher shared.EventPublisher
	clk       clock.Clock
	cfg       config.OutboxConfig

	mu       sync.RWMutex
	handlers map[string]Handler
	onDead   map[string]DeadLetterHandler
}

func NewDispatcher(store Store, publisher shared.EventPublisher, clk clock.Clock, cfg config.OutboxConfig) *Dispatcher {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}
	return &Dispatcher{
		store:     store,
		publisher: publisher,
		clk:       clk,
		cfg:       cfg,
		handlers:  make(map[string]Handler),
		onDead:    make(map[string]DeadLetterHandler),
	}
}

func (d *Dispatcher) Register(topic string, h Handler) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return ErrTopicRequired
	}
	if h == nil {
		return ErrHandlerRequired
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.handlers[topic]; ok {
		return errs.Wrapf(ErrHandlerExists, "topic %s", topic)
	}
	d.handlers[topic] = h
	return nil
}

// OnDead registers the hook for events of topic that will not be retried.
func (d *Dispatcher) OnDead(topic string, h DeadLetterHandler) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return ErrTopicRequired
	}
	if h == nil {
		return ErrHandlerRequired
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.onDead[topic]; ok {
		return errs.Wrapf(ErrHandlerExists, "dead-letter hook for topic %s", topic)
	}
	d.onDead[topic] = h
	return nil
}

// Run polls until ctx is canceled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	slog.Info("outbox dispatcher started",
		slog.Int("workers", d.cfg.Workers),
		slog.Duration("pollInterval", d.cfg.PollInterval))

	for {
		select {
		case <-ctx.Done():
			slog.Info("outbox dispatcher stopped")
			return
		case <-ticker.C:
			if _, err := d.DispatchOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("outbox dispatch failed", slog.Any("error", err))
			}
		}
	}
}

// DispatchOnce claims one batch and handles it. It returns the number of
// events that were delivered.
func (d *Dispatcher) DispatchOnce(ctx context.Context) (int, error) {
	events, err := d.store.Claim(ctx, d.clk.Now(), d.cfg.BatchSize, d.cfg.Lease)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	var (
		mu        sync.Mutex
		delivered int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.Workers)
	for _, e := range events {
		g.Go(func() error {
			ok, err := d.process(gctx, e)
			if ok {
				mu.Lock()
				delivered++
				mu.Unlock()
			}
			return err
		})
	}
	return delivered, g.Wait()
}

// process only returns an error when the outcome could not be recorded.
func (d *Dispatcher) process(ctx context.Context, e Event) (bool, error) {
	handleErr := d.handle(ctx, e)
	if handleErr == nil {
		metrics.OutboxDeliveriesTotal.WithLabelValues(e.Topic, "done").Inc()
		return true, d.store.MarkDone(ctx, e.ID)
	}

	msg := truncate(handleErr.Error(), maxErrorLen)
	if errs.Is(handleErr, shared.ErrPoisonEvent) || errs.Is(handleErr, ErrNoHandler) || e.Attempts >= d.cfg.MaxAttempts {
		if hookErr := d.deadLetter(ctx, e, handleErr); hookErr != nil && !errs.Is(hookErr, shared.ErrPoisonEvent) {
			slog.Error("outbox dead-letter hook failed",
				slog.String("eventID", e.ID.String()),
				slog.String("topic", e.Topic),
				slog.Any("error", hookErr))
			return d.retry(ctx, e, truncate(hookErr.Error(), maxErrorLen), hookErr)
		}
		metrics.OutboxDeliveriesTotal.WithLabelValues(e.Topic, "dead").Inc()
		slog.Error("outbox event dead-lettered",
			slog.String("eventID", e.ID.String()),
			slog.String("topic", e.Topic),
			slog.Int("attempts", e.Attempts),
			slog.Any("error", handleErr))
		return false, d.store.MarkDead(ctx, e.ID, msg)
	}

	return d.retry(ctx, e, msg, handleErr)
}

func (d *Dispatcher) deadLetter(ctx context.Context, e Event, cause error) error {
	d.mu.RLock()
	h, ok := d.onDead[e.Topic]
	d.mu.RUnlock()
	if !ok {
		return nil
	}
	return h(ctx, e.Payload, cause)
}

func (d *Dispatcher) retry(ctx context.Context, e Event, msg string, cause error) (bool, error) {
	delay := RetryDelay(d.cfg.RetryBase, e.Attempts)
	metrics.OutboxDeliveriesTotal.WithLabelValues(e.Topic, "retry").Inc()
	slog.Warn("outbox event will be retried",
		slog.String("eventID", e.ID.String()),
		slog.String("topic", e.Topic),
		slog.Int("attempts", e.Attempts),
		slog.Duration("delay", delay),
		slog.Any("error", cause))
	return false, d.store.MarkRetry(ctx, e.ID, d.clk.Now().Add(delay), msg)
}

func (d *Dispatcher) handle(ctx context.Context, e Event) error {
	d.mu.RLock()
	h, ok := d.handlers[e.Topic]
	d.mu.RUnlock()
	if ok {
		return h(ctx, e.Payload)
	}
	if shared.IsNotificationTopic(e.Topic) && d.publisher != nil {
		return d.publisher.Publish(ctx, e.Topic, e.Payload)
	}
	return errs.Wrapf(ErrNoHandler, "topic %s", e.Topic)
}

// RetryDelay doubles base per attempt, capped at one hour.
func RetryDelay(base time.Duration, attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	delay := base
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return delay
}

// truncate caps s at n bytes without splitting a rune; PostgreSQL rejects
// invalid UTF-8 in text columns.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
