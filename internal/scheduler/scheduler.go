package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/robfig/cron/v3"

	"essentia-backend/internal/config"
	"essentia-backend/internal/logger"
)

// Runner is the set of jobs the scheduler triggers. *jobs.JobRunner satisfies it.
type Runner interface {
	Config() *config.Config
	SendInterviewReminders()
	SyncMemberRoster()
}

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs Runner
}

// NewScheduler creates a new scheduler with the provided job runner.
// An invalid cron expression is returned as an error.
func NewScheduler(jobRunner Runner) (*Scheduler, error) {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	if err := s.registerJobs(); err != nil {
		return nil, err
	}
	return s, nil
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() error {
	cfg := s.jobs.Config().Scheduler

	if _, err := s.cron.AddFunc(cfg.SendInterviewReminders, s.jobs.SendInterviewReminders); err != nil {
		return fmt.Errorf("failed to register SendInterviewReminders job: %w", err)
	}

	if _, err := s.cron.AddFunc(cfg.SyncMemberRoster, s.jobs.SyncMemberRoster); err != nil {
		return fmt.Errorf("failed to register SyncMemberRoster job: %w", err)
	}

	logger.Info("All cron jobs registered successfully", "jobs", len(s.cron.Entries()))
	return nil
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler, waiting for running jobs
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// NextRuns returns the next activation time of every registered job, earliest first
func (s *Scheduler) NextRuns(from time.Time) []time.Time {
	entries := s.cron.Entries()
	next := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		next = append(next, e.Schedule.Next(from))
	}
	sort.Slice(next, func(i, j int) bool { return next[i].Before(next[j]) })
	return next
}
