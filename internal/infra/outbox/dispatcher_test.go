//go:build unit

package outbox

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/clock"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/config"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/errs"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"
)

type fakeStore struct {
	mu      sync.Mutex
	pending []Event
	done    []uuid.UUID
	dead    map[uuid.UUID]string
	retried map[uuid.UUID]time.Time
}

func newFakeStore(events ...Event) *fakeStore {
	return &fakeStore{pending: events, dead: map[uuid.UUID]string{}, retried: map[uuid.UUID]time.Time{}}
}

func (s *fakeStore) Claim(_ context.Context, _ time.Time, limit int, _ time.Duration) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := min(limit, len(s.pending))
	out := s.pending[:n]
	s.pending = s.pending[n:]
	return out, nil
}

func (s *fakeStore) MarkDone(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done = append(s.done, id)
	return nil
}

func (s *fakeStore) MarkRetry(_ context.Context, id uuid.UUID, runAt time.Time, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retried[id] = runAt
	return nil
}

func (s *fakeStore) MarkDead(_ context.Context, id uuid.UUID, lastErr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dead[id] = lastErr
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, _ []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	return nil
}

var (
	testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	testCfg = config.OutboxConfig{BatchSize: 10, Workers: 2, MaxAttempts: 3, RetryBase: time.Second, Lease: time.Minute}
)

func event(topic string, attempts int) Event {
	return Event{ID: uuid.New(), Topic: topic, Key: uuid.New(), Payload: []byte(`{}`), Attempts: attempts}
}

func TestDispatcher_RoutesByTopic(t *testing.T) {
	capture := event(shared.TopicCaptureRequested, 1)
	notice := event(shared.TopicPaymentCompleted, 1)
	store := newFakeStore(capture, notice)
	pub := &recordingPublisher{}
	d := NewDispatcher(store, pub, clock.NewMockClock(testNow), testCfg)

	var handled []byte
	require.NoError(t, d.Register(shared.TopicCaptureRequested, func(_ context.Context, payload []byte) error {
		handled = payload
		return nil
	}))

	n, err := d.DispatchOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte(`{}`), handled)
	assert.Equal(t, []string{shared.TopicPaymentCompleted}, pub.topics)
	assert.ElementsMatch(t, []uuid.UUID{capture.ID, notice.ID}, store.done)
}

func TestDispatcher_FailureOutcomes(t *testing.T) {
	tests := []struct {
		name      string
		attempts  int
		err       error
		wantDead  bool
		wantRunAt time.Time
	}{
		{"transient failure is retried with backoff", 2, errors.New("gateway timeout"), false, testNow.Add(2 * time.Second)},
		{"last attempt is dead-lettered", 3, errors.New("gateway timeout"), true, time.Time{}},
		{"poison event is dead-lettered at once", 1, errs.Mark(errors.New("bad json"), shared.ErrPoisonEvent), true, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := event(shared.TopicRefundRequested, tt.attempts)
			store := newFakeStore(e)
			d := NewDispatcher(store, nil, clock.NewMockClock(testNow), testCfg)
			require.NoError(t, d.Register(shared.TopicRefundRequested, func(context.Context, []byte) error {
				return tt.err
			}))

			n, err := d.DispatchOnce(context.Background())

			require.NoError(t, err)
			assert.Zero(t, n)
			assert.Empty(t, store.done)
			if tt.wantDead {
				assert.Contains(t, store.dead, e.ID)
				assert.Empty(t, store.retried)
			} else {
				assert.Equal(t, tt.wantRunAt, store.retried[e.ID])
				assert.Empty(t, store.dead)
			}
		})
	}
}

func TestDispatcher_DeadLetterHook(t *testing.T) {
	t.Run("exhausted event runs the hook with the last error", func(t *testing.T) {
		e := event(shared.TopicCaptureRequested, testCfg.MaxAttempts)
		store := newFakeStore(e)
		d := NewDispatcher(store, nil, clock.NewMockClock(testNow), testCfg)
		require.NoError(t, d.Register(shared.TopicCaptureRequested, func(context.Context, []byte) error {
			return errors.New("breaker open")
		}))
		var cause error
		require.NoError(t, d.OnDead(shared.TopicCaptureRequested, func(_ context.Context, _ []byte, err error) error {
			cause = err
			return nil
		}))

		_, err := d.DispatchOnce(context.Background())

		require.NoError(t, err)
		require.Error(t, cause)
		assert.Equal(t, "breaker open", cause.Error())
		assert.Equal(t, "breaker open", store.dead[e.ID])
	})

	t.Run("retryable failures do not run the hook", func(t *testing.T) {
		e := event(shared.TopicCaptureRequested, 1)
		store := newFakeStore(e)
		d := NewDispatcher(store, nil, clock.NewMockClock(testNow), testCfg)
		require.NoError(t, d.Register(shared.TopicCaptureRequested, func(context.Context, []byte) error {
			return errors.New("timeout")
		}))
		called := false
		require.NoError(t, d.OnDead(shared.TopicCaptureRequested, func(context.Context, []byte, error) error {
			called = true
			return nil
		}))

		_, err := d.DispatchOnce(context.Background())

		require.NoError(t, err)
		assert.False(t, called)
		assert.Contains(t, store.retried, e.ID)
	})

	t.Run("failing hook sends the event back", func(t *testing.T) {
		e := event(shared.TopicCaptureRequested, testCfg.MaxAttempts)
		store := newFakeStore(e)
		d := NewDispatcher(store, nil, clock.NewMockClock(testNow), testCfg)
		require.NoError(t, d.Register(shared.TopicCaptureRequested, func(context.Context, []byte) error {
			return errors.New("timeout")
		}))
		require.NoError(t, d.OnDead(shared.TopicCaptureRequested, func(context.Context, []byte, error) error {
			return errors.New("db down")
		}))

		_, err := d.DispatchOnce(context.Background())

		require.NoError(t, err)
		assert.Empty(t, store.dead)
		assert.Contains(t, store.retried, e.ID)
	})

	t.Run("duplicate hook", func(t *testing.T) {
		d := NewDispatcher(newFakeStore(), nil, clock.NewMockClock(testNow), testCfg)
		hook := func(context.Context, []byte, error) error { return nil }

		require.NoError(t, d.OnDead("a.topic", hook))
		assert.ErrorIs(t, d.OnDead("a.topic", hook), ErrHandlerExists)
		assert.ErrorIs(t, d.OnDead("b.topic", nil), ErrHandlerRequired)
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc", truncate("abcdef", 3))

	// "é" is two bytes; cutting inside it drops the partial rune.
	got := truncate("a"+strings.Repeat("é", 10), 4)
	assert.Equal(t, "aé", got)
	assert.True(t, utf8.ValidString(got))
}

func TestDispatcher_UnknownTopicIsDead(t *testing.T) {
	e := event(shared.TopicCaptureRequested, 1)
	store := newFakeStore(e)
	d := NewDispatcher(store, &recordingPublisher{}, clock.NewMockClock(testNow), testCfg)

	_, err := d.DispatchOnce(context.Background())

	require.NoError(t, err)
	assert.Contains(t, store.dead, e.ID)
}

func TestDispatcher_Register(t *testing.T) {
	d := NewDispatcher(newFakeStore(), nil, clock.NewMockClock(testNow), testCfg)
	noop := func(context.Context, []byte) error { return nil }

	require.NoError(t, d.Register("a.topic", noop))
	assert.ErrorIs(t, d.Register("a.topic", noop), ErrHandlerExists)
	assert.ErrorIs(t, d.Register("  ", noop), ErrTopicRequired)
	assert.ErrorIs(t, d.Register("b.topic", nil), ErrHandlerRequired)
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, time.Second, RetryDelay(time.Second, 0))
	assert.Equal(t, time.Second, RetryDelay(time.Second, 1))
	assert.Equal(t, 4*time.Second, RetryDelay(time.Second, 3))
	assert.Equal(t, time.Hour, RetryDelay(time.Minute, 20))
}
