package jobs

import (
	"context"
	"log/slog"
	"time"

	"exchange/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleRequestSweepJob periodically rejects pending exchange requests that
// providers never answered. Runs once a minute; each sweep rejects every
// pending request older than the configured TTL on the provider's behalf.
type StaleRequestSweepJob struct {
	handler commands.ExpireStaleRequestsCommandHandler
	command commands.ExpireStaleRequestsCommand
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleRequestSweepJob creates the sweep job. The TTL is validated once
// here; an invalid TTL fails construction rather than every tick.
func NewStaleRequestSweepJob(
	handler commands.ExpireStaleRequestsCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) (*StaleRequestSweepJob, error) {
	command, err := commands.NewExpireStaleRequestsCommand(ttl)
	if err != nil {
		return nil, err
	}

	return &StaleRequestSweepJob{
		handler: handler,
		command: command,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_request_sweep_job"),
	}, nil
}

// Start begins the sweep job, running at the top of every minute.
func (j *StaleRequestSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		expired, err := j.handler.Handle(ctx, j.command)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale request sweep failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale exchange requests", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale request sweep job started (running every minute)")
	return nil
}

// Stop stops the sweep job.
func (j *StaleRequestSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale request sweep job stopped")
}
