package api

import (
	"github.com/maestroworks/maestro/ent"
	"github.com/maestroworks/maestro/pkg/queue"
)

// PushResponse is returned by POST /api/v1/jobs/push. On a duplicate
// push it carries the originally scheduled successors with
// code "DUPLICATE_PUSH" so retrying workers converge on the same plan.
type PushResponse struct {
	Job      *ent.Job   `json:"job"`
	NextJobs []*ent.Job `json:"next_jobs"`
	Code     string     `json:"code,omitempty"`
}

// CreateJobResponse is returned by POST /api/v1/jobs/create. Only the
// identifiers are echoed back; submitters poll GET /api/v1/jobs/:id for
// progress.
type CreateJobResponse struct {
	JobID      string `json:"job_id"`
	PipelineID string `json:"pipeline_id"`
}

// CancelResponse is returned by POST /api/v1/pipelines/:id/cancel.
type CancelResponse struct {
	PipelineID  string `json:"pipeline_id"`
	Message     string `json:"message"`
	Interrupted int    `json:"interrupted_jobs"`
}

// HealthCheck is one component's verdict inside HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Version    string                 `json:"version"`
	Checks     map[string]HealthCheck `json:"checks"`
	WorkerPool *queue.PoolHealth      `json:"worker_pool,omitempty"`
}
