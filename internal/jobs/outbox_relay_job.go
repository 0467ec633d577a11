package jobs

import (
	"context"

	"jibekjoly/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const everySecond = "* * * * * *"

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob publishes pending order events every second.
type OutboxRelayJob struct {
	handler   outboxRelayer
	batchSize int
	cron      *cron.Cron
	logger    *zap.Logger
}

func NewOutboxRelayJob(handler outboxRelayer, batchSize int, logger *zap.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.Named("outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(everySecond, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("outbox relay job started", zap.Int("batch_size", j.batchSize))
	return nil
}

// RunOnce relays a single batch. Failures are logged and retried on the next tick.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.Error("invalid relay batch size", zap.Error(err))
		return
	}

	published, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("outbox relay failed", zap.Error(err))
		return
	}
	if published > 0 {
		j.logger.Debug("order events published", zap.Int("count", published))
	}
}

// Stop waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("outbox relay job stopped")
}
