package jobs

import (
	"sync"
	"time"

	"mountainride-backoffice/internal/config"
	"mountainride-backoffice/internal/logger"
)

// SessionInfo is the part of the operator session the jobs look at
type SessionInfo interface {
	IsAuthenticated() bool
	ExpiresAt() *time.Time
}

// Notifier delivers a message to the operator's next page
type Notifier interface {
	Error(message string)
}

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	sessions SessionInfo
	notifier Notifier
	config   *config.Config
	now      func() time.Time

	mu            sync.Mutex
	reportedUntil time.Time // expiry already reported to the operator
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(sessions SessionInfo, notifier Notifier, cfg *config.Config) *JobRunner {
	return &JobRunner{
		sessions: sessions,
		notifier: notifier,
		config:   cfg,
		now:      time.Now,
	}
}

// Config returns the configuration the jobs were created with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Debug("Starting job", "job", jobName)
	jobFunc()
	logger.Debug("Job completed", "job", jobName)
}
