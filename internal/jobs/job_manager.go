package jobs

import (
	"fmt"

	"github.com/jklassic/logistics/internal/data/repository"
	"github.com/jklassic/logistics/pkg/utils"

	"go.uber.org/zap"
)

// JobManager coordinates the scheduled background jobs
type JobManager struct {
	sessionCleanupJob *SessionCleanupJob
}

func NewJobManager(repo *repository.Repository, config *utils.Config, log *zap.Logger) *JobManager {
	return &JobManager{
		sessionCleanupJob: NewSessionCleanupJob(repo.Session, config.Jobs.SessionCleanupCron, log),
	}
}

// StartAll starts all scheduled jobs
func (jm *JobManager) StartAll() error {
	if err := jm.sessionCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start session cleanup job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs
func (jm *JobManager) StopAll() {
	jm.sessionCleanupJob.Stop()
}
