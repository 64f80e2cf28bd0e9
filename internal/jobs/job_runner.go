package jobs

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"essentia-backend/internal/config"
	"essentia-backend/internal/domain"
	"essentia-backend/internal/logger"
	"essentia-backend/internal/metrics"
	"essentia-backend/internal/repository"
	"essentia-backend/internal/service"
)

// Job names accepted by -run-once.
const (
	JobSendInterviewReminders = "send-interview-reminders"
	JobSyncMemberRoster       = "sync-member-roster"
	JobAll                    = "all"
)

// RosterWriter publishes the member directory somewhere outside the database.
type RosterWriter interface {
	WriteRoster(ctx context.Context, entries []domain.DirectoryEntry) error
}

// Dependencies holds the repositories and services needed by jobs
type Dependencies struct {
	Applicants repository.ApplicantRepository
	Members    repository.MemberRepository
	Email      service.EmailService
	// Roster is nil when no spreadsheet is configured.
	Roster RosterWriter
	Clock  clockwork.Clock
}

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	deps   Dependencies
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(deps Dependencies, cfg *config.Config) *JobRunner {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	return &JobRunner{deps: deps, config: cfg}
}

// Config returns the configuration the runner was built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// Run executes a job by name. It returns an error for unknown names.
func (jr *JobRunner) Run(name string) error {
	switch name {
	case JobSendInterviewReminders:
		jr.SendInterviewReminders()
	case JobSyncMemberRoster:
		jr.SyncMemberRoster()
	case JobAll:
		jr.SendInterviewReminders()
		jr.SyncMemberRoster()
	default:
		return fmt.Errorf("unknown job %q", name)
	}
	return nil
}

// runWithRecovery wraps job execution with panic recovery and records the outcome
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) {
	var err error
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
			err = fmt.Errorf("panic: %v", r)
		}
		metrics.JobRunsTotal.WithLabelValues(jobName, metrics.Result(err)).Inc()
	}()

	logger.Info("Starting job", "job", jobName)
	if err = jobFunc(context.Background()); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err)
		return
	}
	logger.Info("Job completed", "job", jobName)
}
