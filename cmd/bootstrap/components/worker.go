package components

import (
	"context"
	"log/slog"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra/gateway"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra/notify"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra/outbox"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/clock"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/config"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/shared"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewPaymentGateway,
		NewEventPublisher,
		fx.Annotate(
			outbox.NewPostgresStore,
			fx.As(new(outbox.Store)),
		),
		NewOutboxDispatcher,
		NewPostingExpirySweeper,
	),
	fx.Invoke(startWorkers),
)

// The sandbox stands in for the processor; the breaker guards whichever
// gateway is configured.
func NewPaymentGateway(cfg config.Config) shared.PaymentGateway {
	return gateway.NewBreaker(gateway.NewSandbox(cfg.Gateway.SandboxDeclineAt), cfg.Gateway)
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.EventPublisher {
	if cfg.Redis.Addr == "" {
		logger.Warn("REDIS_ADDR not set, notifications are only logged")
		return notify.NewLogPublisher()
	}
	pub := notify.NewAsynqPublisher(cfg.Redis)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}

func NewOutboxDispatcher(store outbox.Store, publisher shared.EventPublisher, clk clock.Clock, cfg config.Config, worker *commands.PaymentWorker) (*outbox.Dispatcher, error) {
	d := outbox.NewDispatcher(store, publisher, clk, cfg.Outbox)
	if err := d.Register(shared.TopicCaptureRequested, worker.HandleCaptureRequested); err != nil {
		return nil, err
	}
	if err := d.OnDead(shared.TopicCaptureRequested, worker.HandleCaptureAbandoned); err != nil {
		return nil, err
	}
	if err := d.Register(shared.TopicRefundRequested, worker.HandleRefundRequested); err != nil {
		return nil, err
	}
	return d, nil
}

func NewPostingExpirySweeper(postings commands.PostingCommands, cfg config.Config) *commands.PostingExpirySweeper {
	return commands.NewPostingExpirySweeper(postings, cfg.Settlement.ExpirySweepInterval, cfg.Settlement.ExpirySweepBatch)
}

func startWorkers(lc fx.Lifecycle, cfg config.Config, dispatcher *outbox.Dispatcher, sweeper *commands.PostingExpirySweeper) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if cfg.Outbox.Enabled {
				go dispatcher.Run(ctx)
			}
			go sweeper.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
