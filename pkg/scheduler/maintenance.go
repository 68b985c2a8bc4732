package scheduler

import (
	"context"
	"time"

	"github.com/fadedpez/ginrummy/internal/logging"
	"github.com/fadedpez/ginrummy/pkg/repositories/round"
)

// MaintenanceScheduler prunes stored rounds older than the retention window
type MaintenanceScheduler struct {
	scheduler *Scheduler
	repo      round.Repository
	retention time.Duration
	interval  time.Duration
	now       func() time.Time
	logger    *logging.Logger
}

// NewMaintenanceScheduler creates a scheduler that prunes every interval.
// Non-positive durations fall back to daily pruning and 30 days of retention.
func NewMaintenanceScheduler(repo round.Repository, interval, retention time.Duration, logger *logging.Logger) *MaintenanceScheduler {
	if logger == nil {
		logger = logging.Default
	}
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	if retention <= 0 {
		retention = 30 * 24 * time.Hour
	}

	return &MaintenanceScheduler{
		scheduler: NewScheduler(logger),
		repo:      repo,
		retention: retention,
		interval:  interval,
		now:       time.Now,
		logger:    logger,
	}
}

// Start registers the pruning task and starts the scheduler
func (s *MaintenanceScheduler) Start(ctx context.Context) {
	s.scheduler.AddTask("round_pruning", s.interval, s.PruneRounds)
	s.scheduler.Start(ctx)
	s.logger.Info("Round maintenance scheduler started (interval %s, retention %s)", s.interval, s.retention)
}

// Stop stops the maintenance scheduler
func (s *MaintenanceScheduler) Stop() {
	s.scheduler.Stop()
}

// PruneRounds deletes rounds dealt before now minus the retention window
func (s *MaintenanceScheduler) PruneRounds(ctx context.Context) error {
	cutoff := s.now().Add(-s.retention)
	removed, err := s.repo.PruneRounds(ctx, cutoff)
	if err != nil {
		return err
	}
	if removed > 0 {
		s.logger.Info("Pruned %d rounds dealt before %s", removed, cutoff.Format(time.RFC3339))
	}
	return nil
}
