package jobs

import (
	"context"
	"fmt"

	"essentia-backend/internal/logger"
)

// SyncMemberRoster writes the member directory to the configured spreadsheet
func (jr *JobRunner) SyncMemberRoster() {
	jr.runWithRecovery(JobSyncMemberRoster, jr.syncMemberRoster)
}

func (jr *JobRunner) syncMemberRoster(ctx context.Context) error {
	if jr.deps.Roster == nil {
		logger.Info("Roster sync skipped, no spreadsheet configured")
		return nil
	}

	entries, err := jr.deps.Members.ListDirectory(ctx)
	if err != nil {
		return fmt.Errorf("failed to list members: %w", err)
	}
	if err := jr.deps.Roster.WriteRoster(ctx, entries); err != nil {
		return fmt.Errorf("failed to write roster: %w", err)
	}

	logger.Info("Member roster synced", "members", len(entries))
	return nil
}
