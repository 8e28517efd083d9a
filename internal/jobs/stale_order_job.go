package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob periodically fails pending orders that no restaurant has
// touched within the configured age. Runs every minute.
type StaleOrderJob struct {
	handler       commands.FailStaleOrdersCommandHandler
	maxPendingAge time.Duration
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewStaleOrderJob creates a job that sweeps stale pending orders.
func NewStaleOrderJob(
	handler commands.FailStaleOrdersCommandHandler,
	maxPendingAge time.Duration,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler:       handler,
		maxPendingAge: maxPendingAge,
		cron:          cron.New(),
		logger:        logger.With("component", "stale_order_job"),
	}
}

// Start schedules the sweep to run every minute.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewFailStaleOrdersCommand(j.maxPendingAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep misconfigured", "error", cmdErr)
			return
		}

		failed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", handleErr)
			return
		}

		if failed > 0 {
			j.logger.InfoContext(ctx, "Failed stale pending orders", "count", failed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running every minute)")
	return nil
}

// Stop stops the sweep.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}
