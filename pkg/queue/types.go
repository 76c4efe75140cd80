// Package queue provides the in-process worker pool that drains the
// job queue: claiming leases, running the supervisor loop, and pushing
// results back through the job service.
package queue

import (
	"context"
	"time"

	"github.com/maestroworks/maestro/ent"
	"github.com/maestroworks/maestro/pkg/services"
	"github.com/maestroworks/maestro/pkg/supervisor"
)

// JobExecutor runs a claimed job to completion. Implemented by
// supervisor.Supervisor; tests substitute a scripted executor.
//
// The executor owns the whole write→audit→stamp loop and appends its
// own events. The worker only handles claiming, pushing the terminal
// result, and abandoning the lease on transient failure.
type JobExecutor interface {
	Execute(ctx context.Context, j *ent.Job) (*supervisor.Outcome, error)
}

// JobQueue is the subset of services.JobService the pool depends on.
type JobQueue interface {
	Pull(ctx context.Context, input services.PullInput) (*ent.Job, error)
	Push(ctx context.Context, input services.PushInput) (*services.PushOutcome, error)
	RequeueOwnedLeases(ctx context.Context, owner string) (int, error)
	ExpireLeases(ctx context.Context, now time.Time) (int, int, error)
	Status(ctx context.Context) (*services.QueueStatus, error)
}

// PipelineStore is the subset of services.PipelineService the reaper
// depends on.
type PipelineStore interface {
	ExpireDeadlines(ctx context.Context, now time.Time) (int, error)
}

// JobRegistry is the subset of WorkerPool used by Worker to register
// in-flight jobs for API-triggered cancellation.
type JobRegistry interface {
	RegisterJob(jobID, pipelineID string, cancel context.CancelFunc)
	UnregisterJob(jobID string)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy      bool           `json:"is_healthy"`
	DBReachable    bool           `json:"db_reachable"`
	DBError        string         `json:"db_error,omitempty"`
	PodID          string         `json:"pod_id"`
	ActiveWorkers  int            `json:"active_workers"`
	TotalWorkers   int            `json:"total_workers"`
	LeasedJobs     int            `json:"leased_jobs"`
	MaxConcurrent  int            `json:"max_concurrent"`
	QueueDepth     int            `json:"queue_depth"`
	WorkerStats    []WorkerHealth `json:"worker_stats"`
	LastReapScan   time.Time      `json:"last_reap_scan"`
	LeasesRequeued int            `json:"leases_requeued"`
	LeasesFailed   int            `json:"leases_failed"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
