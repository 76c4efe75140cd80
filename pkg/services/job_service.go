package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/maestroworks/maestro/ent"
	"github.com/maestroworks/maestro/ent/job"
	"github.com/maestroworks/maestro/ent/pipeline"
	"github.com/maestroworks/maestro/pkg/config"
	"github.com/maestroworks/maestro/pkg/contract"
	"github.com/maestroworks/maestro/pkg/models"
)

// SuccessorPlanner decides which jobs follow a finished one. It runs
// inside the push transaction so successor creation commits atomically
// with the result.
type SuccessorPlanner interface {
	PlanSuccessors(ctx context.Context, tx *ent.Tx, finished *ent.Job) ([]*ent.Job, error)
}

// JobService manages the job lifecycle: create, lease, push, reap.
type JobService struct {
	client      *ent.Client
	queueCfg    *config.QueueConfig
	pipelineCfg *config.PipelineConfig
	planner     SuccessorPlanner
}

// NewJobService creates a new JobService. The planner may be nil; set
// it later with SetPlanner once the orchestrator is constructed.
func NewJobService(client *ent.Client, queueCfg *config.QueueConfig, pipelineCfg *config.PipelineConfig) *JobService {
	if client == nil {
		panic("NewJobService: client must not be nil")
	}
	if queueCfg == nil {
		panic("NewJobService: queueCfg must not be nil")
	}
	if pipelineCfg == nil {
		panic("NewJobService: pipelineCfg must not be nil")
	}
	return &JobService{client: client, queueCfg: queueCfg, pipelineCfg: pipelineCfg}
}

// SetPlanner installs the successor planner invoked during push.
func (s *JobService) SetPlanner(p SuccessorPlanner) {
	s.planner = p
}

// CreateJobInput contains the domain-level data needed to create a job.
type CreateJobInput struct {
	PipelineID  string // empty with no parent starts a new pipeline
	ParentJobID string // inherits the parent's pipeline
	Role        models.Role
	Mode        models.Mode
	Payload     string
	Context     string
	Priority    models.Priority
	Sequence    *int // nil assigns the next free ordinal
	SessionID   string
}

// CreateJob creates a job, creating or resolving its pipeline first.
// A duplicate (pipeline, role, mode, sequence) insert is a no-op that
// returns the existing job.
func (s *JobService) CreateJob(httpCtx context.Context, input CreateJobInput) (*ent.Job, error) {
	if input.Payload == "" {
		return nil, NewValidationError("payload", "required")
	}
	if !input.Role.Valid() {
		return nil, NewValidationError("role", fmt.Sprintf("unknown role '%s'", input.Role))
	}
	if input.Mode == "" {
		input.Mode = models.ModeWorker
	}
	if !input.Mode.Valid() {
		return nil, NewValidationError("mode", fmt.Sprintf("unknown mode '%s'", input.Mode))
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}
	if !input.Priority.Valid() {
		return nil, NewValidationError("priority", fmt.Sprintf("unknown priority '%s'", input.Priority))
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	pipelineID, err := s.resolvePipeline(ctx, tx, input)
	if err != nil {
		return nil, err
	}

	seq := 0
	if input.Sequence != nil {
		seq = *input.Sequence
	} else {
		n, err := tx.Job.Query().
			Where(job.PipelineIDEQ(pipelineID)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count pipeline jobs: %w", err)
		}
		seq = n
	}

	builder := tx.Job.Create().
		SetID(uuid.New().String()).
		SetPipelineID(pipelineID).
		SetRole(job.Role(input.Role)).
		SetMode(job.Mode(input.Mode)).
		SetState(job.StatePending).
		SetPayload(input.Payload).
		SetPriority(job.Priority(input.Priority)).
		SetSequence(seq)
	if input.ParentJobID != "" {
		builder.SetParentJobID(input.ParentJobID)
	}
	if input.Context != "" {
		builder.SetContext(input.Context)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Duplicate successor: the constraint error aborts the
			// transaction, so load the existing job outside it.
			_ = tx.Rollback()
			existing, qerr := s.client.Job.Query().
				Where(
					job.PipelineIDEQ(pipelineID),
					job.RoleEQ(job.Role(input.Role)),
					job.ModeEQ(job.Mode(input.Mode)),
					job.SequenceEQ(seq),
				).
				Only(ctx)
			if qerr != nil {
				return nil, fmt.Errorf("failed to load duplicate job: %w", qerr)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return created, nil
}

// resolvePipeline returns the pipeline id for a new job, creating the
// pipeline when the job starts a fresh request.
func (s *JobService) resolvePipeline(ctx context.Context, tx *ent.Tx, input CreateJobInput) (string, error) {
	if input.ParentJobID != "" {
		parent, err := tx.Job.Get(ctx, input.ParentJobID)
		if err != nil {
			if ent.IsNotFound(err) {
				return "", NewValidationError("parent_job_id", fmt.Sprintf("job '%s' not found", input.ParentJobID))
			}
			return "", fmt.Errorf("failed to load parent job: %w", err)
		}
		return parent.PipelineID, nil
	}

	if input.PipelineID != "" {
		exists, err := tx.Pipeline.Query().
			Where(pipeline.IDEQ(input.PipelineID)).
			Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to check pipeline: %w", err)
		}
		if !exists {
			return "", NewValidationError("pipeline_id", fmt.Sprintf("pipeline '%s' not found", input.PipelineID))
		}
		return input.PipelineID, nil
	}

	builder := tx.Pipeline.Create().
		SetID(uuid.New().String()).
		SetRootRequest(input.Payload).
		SetState(pipeline.StateRunning)
	if input.SessionID != "" {
		builder.SetSessionID(input.SessionID)
	}
	if s.pipelineCfg.DefaultDeadline > 0 {
		builder.SetDeadline(time.Now().Add(s.pipelineCfg.DefaultDeadline))
	}

	p, err := builder.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create pipeline: %w", err)
	}
	return p.ID, nil
}

// PullInput identifies the queue a worker is serving.
type PullInput struct {
	Role  models.Role
	Mode  models.Mode
	Owner string // pod id holding the lease
}

// Pull atomically claims the next pending job for a (role, mode)
// queue. Ordering is priority rank minus an aging bump for jobs
// pending past the age threshold, then FIFO by created_at.
// Returns ErrNoJobsAvailable when the queue is empty and ErrAtCapacity
// when the global leased-job limit is reached.
func (s *JobService) Pull(httpCtx context.Context, input PullInput) (*ent.Job, error) {
	if !input.Role.Valid() {
		return nil, NewValidationError("role", fmt.Sprintf("unknown role '%s'", input.Role))
	}
	if input.Mode == "" {
		input.Mode = models.ModeWorker
	}
	if !input.Mode.Valid() {
		return nil, NewValidationError("mode", fmt.Sprintf("unknown mode '%s'", input.Mode))
	}

	// Use background context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if s.queueCfg.MaxConcurrentJobs > 0 {
		leased, err := tx.Job.Query().
			Where(job.StateEQ(job.StateLeased)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count leased jobs: %w", err)
		}
		if leased >= s.queueCfg.MaxConcurrentJobs {
			return nil, ErrAtCapacity
		}
	}

	// Effective priority: rank minus one tier once pending past the
	// age threshold. Lower sorts first.
	ageSecs := int(s.queueCfg.AgeThreshold.Seconds())
	orderExpr := fmt.Sprintf(
		"(CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END)"+
			" - (CASE WHEN created_at < NOW() - INTERVAL '%d seconds' THEN 1 ELSE 0 END)",
		ageSecs,
	)

	// Blocked pipelines stay claimable: the PM consult job that unblocks
	// them lives in the blocked pipeline itself.
	next, err := tx.Job.Query().
		Where(
			job.RoleEQ(job.Role(input.Role)),
			job.ModeEQ(job.Mode(input.Mode)),
			job.StateEQ(job.StatePending),
			job.HasPipelineWith(pipeline.StateIn(pipeline.StateRunning, pipeline.StateBlocked)),
		).
		Order(func(sel *sql.Selector) {
			sel.OrderExpr(sql.Expr(orderExpr))
		}, ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	now := time.Now()
	claimed, err := tx.Job.UpdateOneID(next.ID).
		SetState(job.StateLeased).
		SetLeaseOwner(input.Owner).
		SetLeasedAt(now).
		SetLeaseDeadline(now.Add(s.queueCfg.LeaseTTL)).
		AddAttemptCount(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// PushInput carries a worker's result for a leased job.
type PushInput struct {
	JobID  string
	Owner  string // pod id; empty skips the ownership check (external workers)
	Result string
	Error  string // non-empty marks the job failed
}

// PushOutcome reports the terminal job and the successors scheduled by
// the planner. On ErrDuplicatePush it carries the original successors.
type PushOutcome struct {
	Job      *ent.Job
	NextJobs []*ent.Job
}

// Push records a job result, transitioning leased→succeeded|failed and
// scheduling successors atomically. Results for succeeded pushes must
// satisfy the role's output contract.
func (s *JobService) Push(httpCtx context.Context, input PushInput) (*PushOutcome, error) {
	if input.JobID == "" {
		return nil, NewValidationError("job_id", "required")
	}
	if input.Result == "" && input.Error == "" {
		return nil, NewValidationError("result", "result or error is required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	j, err := tx.Job.Query().
		Where(job.IDEQ(input.JobID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}

	switch j.State {
	case job.StateSucceeded, job.StateFailed:
		successors, qerr := tx.Job.Query().
			Where(job.ParentJobIDEQ(j.ID)).
			Order(ent.Asc(job.FieldSequence)).
			All(ctx)
		if qerr != nil {
			return nil, fmt.Errorf("failed to load successors: %w", qerr)
		}
		return &PushOutcome{Job: j, NextJobs: successors}, ErrDuplicatePush
	case job.StatePending, job.StateCancelled:
		// Reaped back to pending or cancelled underneath the worker.
		return nil, ErrLeaseExpired
	}

	now := time.Now()
	if input.Owner != "" && (j.LeaseOwner == nil || *j.LeaseOwner != input.Owner) {
		return nil, ErrLeaseExpired
	}
	if j.LeaseDeadline != nil && j.LeaseDeadline.Before(now) {
		return nil, ErrLeaseExpired
	}

	state := job.StateSucceeded
	if input.Error != "" {
		state = job.StateFailed
	} else {
		if _, _, perr := contract.Parse(models.Role(j.Role), input.Result); perr != nil {
			return nil, fmt.Errorf("%w: %v", ErrContractViolation, perr)
		}
	}

	update := tx.Job.UpdateOneID(j.ID).
		SetState(state).
		SetFinishedAt(now).
		ClearLeaseDeadline()
	if input.Result != "" {
		update.SetResult(input.Result)
	}
	if input.Error != "" {
		update.SetError(input.Error)
	}

	finished, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record result: %w", err)
	}

	var next []*ent.Job
	if s.planner != nil {
		next, err = s.planner.PlanSuccessors(ctx, tx, finished)
		if err != nil {
			return nil, fmt.Errorf("failed to plan successors: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit push: %w", err)
	}
	return &PushOutcome{Job: finished, NextJobs: next}, nil
}

// GetJob retrieves a job by id.
func (s *JobService) GetJob(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// ListJobs returns a pipeline's jobs ordered by sequence.
func (s *JobService) ListJobs(ctx context.Context, pipelineID string) ([]*ent.Job, error) {
	if pipelineID == "" {
		return nil, NewValidationError("pipeline_id", "required")
	}
	jobs, err := s.client.Job.Query().
		Where(job.PipelineIDEQ(pipelineID)).
		Order(ent.Asc(job.FieldSequence), ent.Asc(job.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// QueueStatus summarizes the queue for the status endpoint.
type QueueStatus struct {
	CountsByState    map[string]int `json:"counts_by_state"`
	PendingByRole    map[string]int `json:"pending_by_role"`
	CorruptLogLines  int64          `json:"corrupt_log_lines"`
	ActivePipelines  int            `json:"active_pipelines"`
	BlockedPipelines int            `json:"blocked_pipelines"`
}

// Status aggregates job counts by state and pending depth by role.
func (s *JobService) Status(ctx context.Context) (*QueueStatus, error) {
	var stateRows []struct {
		State string `json:"state"`
		Count int    `json:"count"`
	}
	err := s.client.Job.Query().
		GroupBy(job.FieldState).
		Aggregate(ent.Count()).
		Scan(ctx, &stateRows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate job states: %w", err)
	}

	var roleRows []struct {
		Role  string `json:"role"`
		Count int    `json:"count"`
	}
	err = s.client.Job.Query().
		Where(job.StateEQ(job.StatePending)).
		GroupBy(job.FieldRole).
		Aggregate(ent.Count()).
		Scan(ctx, &roleRows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate queue depth: %w", err)
	}

	running, err := s.client.Pipeline.Query().
		Where(pipeline.StateEQ(pipeline.StateRunning)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count running pipelines: %w", err)
	}
	blocked, err := s.client.Pipeline.Query().
		Where(pipeline.StateEQ(pipeline.StateBlocked)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count blocked pipelines: %w", err)
	}

	status := &QueueStatus{
		CountsByState:    make(map[string]int, len(stateRows)),
		PendingByRole:    make(map[string]int, len(roleRows)),
		ActivePipelines:  running,
		BlockedPipelines: blocked,
	}
	for _, r := range stateRows {
		status.CountsByState[r.State] = r.Count
	}
	for _, r := range roleRows {
		status.PendingByRole[r.Role] = r.Count
	}
	return status, nil
}

// ExpireLeases returns timed-out leases to pending, failing jobs that
// exhausted their attempt budget and escalating their pipelines.
// Returns (requeued, failed).
func (s *JobService) ExpireLeases(httpCtx context.Context, now time.Time) (int, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	expired, err := tx.Job.Query().
		Where(
			job.StateEQ(job.StateLeased),
			job.LeaseDeadlineLT(now),
		).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query expired leases: %w", err)
	}

	requeued, failed := 0, 0
	for _, j := range expired {
		if j.AttemptCount >= s.queueCfg.MaxAttempts {
			err := tx.Job.UpdateOneID(j.ID).
				SetState(job.StateFailed).
				SetError(fmt.Sprintf("lease expired after %d attempts", j.AttemptCount)).
				SetFinishedAt(now).
				ClearLeaseDeadline().
				Exec(ctx)
			if err != nil {
				return 0, 0, fmt.Errorf("failed to fail job %s: %w", j.ID, err)
			}
			err = tx.Pipeline.Update().
				Where(
					pipeline.IDEQ(j.PipelineID),
					pipeline.StateIn(pipeline.StateRunning, pipeline.StateBlocked),
				).
				SetState(pipeline.StateEscalated).
				SetEscalationReason(fmt.Sprintf("job %s (%s) exceeded attempt budget", j.ID, j.Role)).
				Exec(ctx)
			if err != nil {
				return 0, 0, fmt.Errorf("failed to escalate pipeline %s: %w", j.PipelineID, err)
			}
			failed++
			continue
		}

		err := tx.Job.UpdateOneID(j.ID).
			SetState(job.StatePending).
			ClearLeaseOwner().
			ClearLeasedAt().
			ClearLeaseDeadline().
			Exec(ctx)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to requeue job %s: %w", j.ID, err)
		}
		requeued++
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit reap: %w", err)
	}
	return requeued, failed, nil
}

// RequeueOwnedLeases returns every lease held by owner to pending.
// Called on startup so a crashed replica's work is not stuck for a
// full lease TTL.
func (s *JobService) RequeueOwnedLeases(ctx context.Context, owner string) (int, error) {
	if owner == "" {
		return 0, NewValidationError("owner", "required")
	}
	n, err := s.client.Job.Update().
		Where(
			job.StateEQ(job.StateLeased),
			job.LeaseOwnerEQ(owner),
		).
		SetState(job.StatePending).
		ClearLeaseOwner().
		ClearLeasedAt().
		ClearLeaseDeadline().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue owned leases: %w", err)
	}
	return n, nil
}

// DeleteOldJobs removes terminal jobs finished before the retention
// cutoff. Used by the cleanup service.
func (s *JobService) DeleteOldJobs(httpCtx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, fmt.Errorf("ttl must be positive, got %v", ttl)
	}
	cutoff := time.Now().Add(-ttl)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.client.Job.Delete().
		Where(
			job.StateIn(job.StateSucceeded, job.StateFailed, job.StateCancelled),
			job.FinishedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old jobs: %w", err)
	}
	return n, nil
}
