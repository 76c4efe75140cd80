package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maestroworks/maestro/ent"
	"github.com/maestroworks/maestro/ent/job"
	"github.com/maestroworks/maestro/ent/pipeline"
	"github.com/maestroworks/maestro/pkg/config"
)

// PipelineService manages pipeline lifecycle
type PipelineService struct {
	client *ent.Client
	cfg    *config.PipelineConfig
}

// NewPipelineService creates a new PipelineService
func NewPipelineService(client *ent.Client, cfg *config.PipelineConfig) *PipelineService {
	if client == nil {
		panic("NewPipelineService: client must not be nil")
	}
	if cfg == nil {
		panic("NewPipelineService: cfg must not be nil")
	}
	return &PipelineService{client: client, cfg: cfg}
}

// CreatePipelineInput contains the data needed to start a pipeline.
type CreatePipelineInput struct {
	RootRequest string
	SessionID   string
	Deadline    *time.Time
}

// CreatePipeline starts a new pipeline in the running state.
func (s *PipelineService) CreatePipeline(ctx context.Context, input CreatePipelineInput) (*ent.Pipeline, error) {
	if input.RootRequest == "" {
		return nil, NewValidationError("root_request", "required")
	}

	builder := s.client.Pipeline.Create().
		SetID(uuid.New().String()).
		SetRootRequest(input.RootRequest).
		SetState(pipeline.StateRunning)
	if input.SessionID != "" {
		builder.SetSessionID(input.SessionID)
	}
	switch {
	case input.Deadline != nil:
		builder.SetDeadline(*input.Deadline)
	case s.cfg.DefaultDeadline > 0:
		builder.SetDeadline(time.Now().Add(s.cfg.DefaultDeadline))
	}

	p, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}
	return p, nil
}

// GetPipeline retrieves a pipeline by id, optionally with its jobs.
func (s *PipelineService) GetPipeline(ctx context.Context, pipelineID string, withJobs bool) (*ent.Pipeline, error) {
	query := s.client.Pipeline.Query().Where(pipeline.IDEQ(pipelineID))
	if withJobs {
		query = query.WithJobs(func(q *ent.JobQuery) {
			q.Order(ent.Asc(job.FieldSequence))
		})
	}

	p, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pipeline: %w", err)
	}
	return p, nil
}

// CancelPipeline marks a pipeline cancelled and cancels its pending
// jobs. Leased jobs finish or are dropped when their push observes the
// cancel flag. Returns ErrNotCancellable for terminal pipelines.
func (s *PipelineService) CancelPipeline(httpCtx context.Context, pipelineID string) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	p, err := tx.Pipeline.Query().
		Where(pipeline.IDEQ(pipelineID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load pipeline: %w", err)
	}

	if p.State == pipeline.StateDone || p.State == pipeline.StateCancelled {
		return ErrNotCancellable
	}

	err = tx.Pipeline.UpdateOneID(p.ID).
		SetState(pipeline.StateCancelled).
		SetCancelRequested(true).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel pipeline: %w", err)
	}

	_, err = tx.Job.Update().
		Where(
			job.PipelineIDEQ(p.ID),
			job.StateEQ(job.StatePending),
		).
		SetState(job.StateCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel pending jobs: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cancel: %w", err)
	}
	return nil
}

// EscalatePipeline hands a pipeline to a human: state escalated,
// pending jobs cancelled, reason recorded. No-op on terminal pipelines.
func (s *PipelineService) EscalatePipeline(httpCtx context.Context, pipelineID, reason string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := tx.Pipeline.Update().
		Where(
			pipeline.IDEQ(pipelineID),
			pipeline.StateIn(pipeline.StateRunning, pipeline.StateBlocked),
		).
		SetState(pipeline.StateEscalated).
		SetEscalationReason(reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to escalate pipeline: %w", err)
	}
	if n == 0 {
		// Already terminal or escalated; nothing to do.
		return tx.Commit()
	}

	_, err = tx.Job.Update().
		Where(
			job.PipelineIDEQ(pipelineID),
			job.StateEQ(job.StatePending),
		).
		SetState(job.StateCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel pending jobs: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit escalation: %w", err)
	}
	return nil
}

// ExpireDeadlines escalates running pipelines whose deadline passed.
// Returns the number escalated.
func (s *PipelineService) ExpireDeadlines(ctx context.Context, now time.Time) (int, error) {
	expired, err := s.client.Pipeline.Query().
		Where(
			pipeline.StateEQ(pipeline.StateRunning),
			pipeline.DeadlineNotNil(),
			pipeline.DeadlineLT(now),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired pipelines: %w", err)
	}

	for _, p := range expired {
		if err := s.EscalatePipeline(ctx, p.ID, "pipeline deadline exceeded"); err != nil {
			return 0, err
		}
	}
	return len(expired), nil
}

// IsCancelRequested reports the cancel flag for a pipeline. The
// supervisor polls this between stages.
func (s *PipelineService) IsCancelRequested(ctx context.Context, pipelineID string) (bool, error) {
	p, err := s.client.Pipeline.Query().
		Where(pipeline.IDEQ(pipelineID)).
		Select(pipeline.FieldCancelRequested).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to load pipeline: %w", err)
	}
	return p.CancelRequested, nil
}
