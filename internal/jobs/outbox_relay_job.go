package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderdelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const outboxRelayTimeout = 10 * time.Second

// OutboxPublisher is implemented by *commands.PublishOutboxCommandHandler.
type OutboxPublisher interface {
	Handle(ctx context.Context, cmd commands.PublishOutboxCommand) (int, error)
}

// OutboxRelayJob drains the outbox to the event broker.
type OutboxRelayJob struct {
	handler   OutboxPublisher
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxRelayJob(handler OutboxPublisher, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:   handler,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "outbox_relay_job"),
	}
}

// Start validates the batch size and schedules the relay every second.
func (j *OutboxRelayJob) Start() error {
	if _, err := commands.NewPublishOutboxCommand(j.batchSize); err != nil {
		return err
	}

	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), outboxRelayTimeout)
		defer cancel()
		j.RunOnce(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)", "batch_size", j.batchSize)
	return nil
}

// RunOnce publishes one batch and returns how many messages went out. Errors are
// logged; the messages stay pending and are retried on the next run.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) int {
	cmd, err := commands.NewPublishOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
		return 0
	}

	published, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		return 0
	}

	if published > 0 {
		j.logger.DebugContext(ctx, "Outbox messages published", "count", published)
	}
	return published
}

// Stop stops scheduling and waits for a run in progress to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
