package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"exchange/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleRequestSweepJob *StaleRequestSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// The request TTL governs how long a pending exchange request may wait for
// the provider before the sweep rejects it.
func NewJobManager(
	expireStaleRequestsHandler commands.ExpireStaleRequestsCommandHandler,
	requestTTL time.Duration,
	logger *slog.Logger,
) (*JobManager, error) {
	sweepJob, err := NewStaleRequestSweepJob(expireStaleRequestsHandler, requestTTL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create stale request sweep job: %w", err)
	}

	return &JobManager{
		staleRequestSweepJob: sweepJob,
	}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleRequestSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale request sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleRequestSweepJob.Stop()
}
