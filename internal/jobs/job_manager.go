package jobs

import (
	"fmt"
	"log/slog"

	"shipping/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	trackingProgressionJob *TrackingProgressionJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the unit of work factory and command handler as dependencies to
// wire up the job execution.
func NewJobManager(
	uowFactory commands.ShipmentUoWFactory,
	recordTrackingEventHandler commands.RecordTrackingEventCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		trackingProgressionJob: NewTrackingProgressionJob(uowFactory, recordTrackingEventHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.trackingProgressionJob.Start(); err != nil {
		return fmt.Errorf("failed to start tracking progression job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.trackingProgressionJob.Stop()
}
