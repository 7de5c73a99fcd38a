package jobs

import (
	"context"
	"time"

	"github.com/jklassic/logistics/internal/data/repository"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionCleanupJob periodically removes expired and revoked sessions so the
// sessions table does not grow without bound.
type SessionCleanupJob struct {
	sessions repository.SessionRepository
	cron     *cron.Cron
	spec     string
	log      *zap.Logger
}

func NewSessionCleanupJob(sessions repository.SessionRepository, spec string, log *zap.Logger) *SessionCleanupJob {
	return &SessionCleanupJob{
		sessions: sessions,
		cron:     cron.New(),
		spec:     spec,
		log:      log,
	}
}

// Start schedules the cleanup on the configured cron spec
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		removed, err := j.sessions.DeleteExpired(ctx)
		if err != nil {
			j.log.Error("Session cleanup failed", zap.Error(err))
			return
		}

		if removed > 0 {
			j.log.Info("Expired sessions removed", zap.Int64("count", removed))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info("Session cleanup job started", zap.String("schedule", j.spec))
	return nil
}

// Stop halts the schedule
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.log.Info("Session cleanup job stopped")
}
