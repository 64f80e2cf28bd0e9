package jobs

import (
	"context"
	"fmt"
	"time"

	"essentia-backend/internal/logger"
)

const reminderWindow = 24 * time.Hour

// SendInterviewReminders emails applicants whose scheduled interview falls within the next day
func (jr *JobRunner) SendInterviewReminders() {
	jr.runWithRecovery(JobSendInterviewReminders, jr.sendInterviewReminders)
}

func (jr *JobRunner) sendInterviewReminders(ctx context.Context) error {
	now := jr.deps.Clock.Now().UTC()
	interviews, err := jr.deps.Applicants.ListScheduledInterviews(ctx, now, now.Add(reminderWindow))
	if err != nil {
		return fmt.Errorf("failed to list scheduled interviews: %w", err)
	}

	sent := 0
	for _, iv := range interviews {
		if err := jr.deps.Email.SendInterviewReminder(ctx, iv.Name, iv.Email, iv.InterviewAt); err != nil {
			logger.Error("Failed to send interview reminder",
				"user_id", iv.UserID,
				"email", iv.Email,
				"error", err)
			continue
		}
		sent++
		logger.Debug("Sent interview reminder", "user_id", iv.UserID, "interview_at", iv.InterviewAt)
	}

	logger.Info("Interview reminders sent", "sent", sent, "scheduled", len(interviews))
	return nil
}
