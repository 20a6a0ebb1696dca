package jobs

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

type outboxObserver interface {
	ObserveOutbox(err error)
}

type OutboxRelayConfig struct {
	Schedule  string // six-field cron spec, seconds first
	BatchSize int
	Timeout   time.Duration
}

// OutboxRelayJob publishes committed order events on a schedule.
// Overlapping runs are skipped, so a slow broker never stacks relays.
type OutboxRelayJob struct {
	handler  outboxRelayer
	observer outboxObserver
	cfg      OutboxRelayConfig
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOutboxRelayJob(
	handler outboxRelayer,
	observer outboxObserver,
	cfg OutboxRelayConfig,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:  handler,
		observer: observer,
		cfg:      cfg,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.cfg.Schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started",
		"schedule", j.cfg.Schedule,
		"batch_size", j.cfg.BatchSize,
	)
	return nil
}

// RunOnce relays one batch and returns the number of published messages.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) int {
	if j.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.cfg.Timeout)
		defer cancel()
	}

	cmd, err := commands.NewRelayOutboxCommand(j.cfg.BatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay misconfigured", "error", err)
		return 0
	}

	published, err := j.handler.Handle(ctx, cmd)
	for range published {
		j.observer.ObserveOutbox(nil)
	}
	if err != nil {
		j.observer.ObserveOutbox(err)
		j.logger.ErrorContext(ctx, "Outbox relay failed", "published", published, "error", err)
		return published
	}

	if published > 0 {
		j.logger.DebugContext(ctx, "Outbox relayed", "published", published)
	}
	return published
}

// Stop waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
