// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/maestroworks/maestro/pkg/config"
)

// JobPurger deletes terminal jobs past their retention TTL.
// Implemented by services.JobService.
type JobPurger interface {
	DeleteOldJobs(ctx context.Context, ttl time.Duration) (int, error)
}

// LogArchiver moves old event log day files into the archive.
// Implemented by eventlog.Log.
type LogArchiver interface {
	ArchiveBefore(cutoff time.Time) (int, error)
}

// Service periodically enforces retention policies:
//   - Deletes terminal jobs past the job TTL
//   - Archives event log day files older than the archive window
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	retention *config.RetentionConfig
	eventLog  *config.EventLogConfig
	jobs      JobPurger
	archiver  LogArchiver

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	retention *config.RetentionConfig,
	eventLogCfg *config.EventLogConfig,
	jobs JobPurger,
	archiver LogArchiver,
) *Service {
	return &Service{
		retention: retention,
		eventLog:  eventLogCfg,
		jobs:      jobs,
		archiver:  archiver,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"job_ttl", s.retention.JobTTL,
		"archive_after_days", s.eventLog.ArchiveAfterDays,
		"interval", s.retention.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.retention.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.deleteOldJobs(ctx)
	s.archiveOldDayFiles()
}

func (s *Service) deleteOldJobs(_ context.Context) {
	count, err := s.jobs.DeleteOldJobs(context.Background(), s.retention.JobTTL)
	if err != nil {
		slog.Error("Retention: delete old jobs failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old jobs", "count", count)
	}
}

func (s *Service) archiveOldDayFiles() {
	if s.archiver == nil {
		return
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -s.eventLog.ArchiveAfterDays)
	count, err := s.archiver.ArchiveBefore(cutoff)
	if err != nil {
		slog.Error("Retention: event log archive failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: archived event log day files", "count", count)
	}
}
