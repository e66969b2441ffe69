package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// BackorderReleaseJob periodically sweeps backordered orders and releases
// those whose full demand can be covered by current stock.
type BackorderReleaseJob struct {
	handler commands.ReleaseBackordersCommandHandler
	actorID kernel.UUID
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBackorderReleaseJob creates a new job for releasing backordered orders.
// Each job instance carries its own system actor identity, recorded on the
// state change entries it produces.
func NewBackorderReleaseJob(
	handler commands.ReleaseBackordersCommandHandler,
	logger *slog.Logger,
) *BackorderReleaseJob {
	return &BackorderReleaseJob{
		handler: handler,
		actorID: kernel.NewUUID(),
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "backorder_release_job"),
	}
}

// Start begins the backorder release job to run every 30 seconds.
func (j *BackorderReleaseJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewReleaseBackordersCommand(j.actorID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Backorder release command construction failed", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Backorder release job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backorder release job started (running every 30 seconds)")
	return nil
}

// Stop stops the backorder release job.
func (j *BackorderReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backorder release job stopped")
}
