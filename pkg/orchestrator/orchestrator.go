// Package orchestrator realizes the pipeline state graph over concrete
// jobs: it runs inside the push transaction and decides which jobs
// follow a finished one.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/maestroworks/maestro/ent"
	"github.com/maestroworks/maestro/ent/job"
	"github.com/maestroworks/maestro/ent/pipeline"
	"github.com/maestroworks/maestro/pkg/config"
	"github.com/maestroworks/maestro/pkg/contract"
	"github.com/maestroworks/maestro/pkg/decision"
	"github.com/maestroworks/maestro/pkg/eventlog"
	"github.com/maestroworks/maestro/pkg/models"
)

// Orchestrator schedules successor jobs from finished ones. It is
// installed as the JobService's planner and always runs with the
// pipeline row locked, so same-pipeline pushes serialize.
type Orchestrator struct {
	cfg *config.PipelineConfig
	log *eventlog.Log
}

// New creates an Orchestrator.
func New(cfg *config.PipelineConfig, log *eventlog.Log) *Orchestrator {
	if cfg == nil {
		panic("orchestrator.New: cfg must not be nil")
	}
	if log == nil {
		panic("orchestrator.New: log must not be nil")
	}
	return &Orchestrator{cfg: cfg, log: log}
}

// PlanSuccessors decides what follows a finished job and creates the
// successor rows in the same transaction as the push.
func (o *Orchestrator) PlanSuccessors(ctx context.Context, tx *ent.Tx, finished *ent.Job) ([]*ent.Job, error) {
	// Lock the pipeline row: serializes concurrent pushes within one
	// pipeline and pins its state for the routing decision.
	p, err := tx.Pipeline.Query().
		Where(pipeline.IDEQ(finished.PipelineID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock pipeline: %w", err)
	}

	if p.State != pipeline.StateRunning && p.State != pipeline.StateBlocked {
		// Escalated, cancelled, or done pipelines schedule nothing.
		slog.Info("Dropping successors for inactive pipeline",
			"pipeline_id", p.ID, "state", p.State, "job_id", finished.ID)
		return nil, nil
	}

	if finished.State == job.StateFailed {
		reason := "job failed"
		if finished.Error != nil {
			reason = *finished.Error
		}
		return o.block(ctx, tx, p, finished,
			fmt.Sprintf("%s job %s failed: %s", finished.Role, finished.ID, reason))
	}

	result := ""
	if finished.Result != nil {
		result = *finished.Result
	}

	switch models.Role(finished.Role) {
	case models.RolePM:
		return o.planFromPM(ctx, tx, p, finished, result)
	case models.RoleCoder:
		return o.planFromCoder(ctx, tx, p, finished, result)
	case models.RoleQA:
		return o.planFromQA(ctx, tx, p, finished, result)
	case models.RoleReviewer:
		return o.planFromReviewer(ctx, tx, p, finished, result)
	default:
		// Strategist, analyst, researcher, excavator, council, stamp:
		// their reports go back to the PM for the next decision.
		return o.reportToPM(ctx, tx, p, finished, result)
	}
}

// planFromPM maps a PM output through the decision machine.
func (o *Orchestrator) planFromPM(ctx context.Context, tx *ent.Tx, p *ent.Pipeline, finished *ent.Job, result string) ([]*ent.Job, error) {
	out, _, err := contract.Parse(models.RolePM, result)
	if err != nil {
		return o.block(ctx, tx, p, finished, fmt.Sprintf("unparseable PM output: %v", err))
	}
	pm, ok := out.(*contract.PMOutput)
	if !ok {
		return o.block(ctx, tx, p, finished, "PM output has wrong shape")
	}

	d := decision.Process(pm)
	if err := o.appendEvent(p, finished, eventlog.TypeDecision, d.Summary, map[string]any{
		"action":     string(d.Action),
		"reason":     string(d.Reason),
		"confidence": d.Confidence,
	}); err != nil {
		return nil, err
	}

	switch d.Action {
	case decision.ActionDispatch:
		if err := o.resume(ctx, tx, p, finished); err != nil {
			return nil, err
		}
		var next []*ent.Job
		for i, task := range d.Tasks {
			role := models.Role(strings.ToLower(task.Agent))
			created, err := o.createJob(ctx, tx, jobParams{
				pipelineID: p.ID,
				parentID:   finished.ID,
				role:       role,
				mode:       models.ModeWorker,
				payload:    task.Instruction,
				context:    task.Context,
				priority:   models.Priority(strings.ToLower(task.Priority)),
				sequence:   finished.Sequence + 1 + i,
			})
			if err != nil {
				return nil, err
			}
			next = append(next, created)
		}
		return next, nil

	case decision.ActionRetry:
		pred, err := o.predecessor(ctx, tx, finished, "")
		if err != nil {
			return nil, err
		}
		if pred == nil {
			return o.escalate(ctx, tx, p, finished, "RETRY with no predecessor to re-enqueue")
		}
		if err := o.resume(ctx, tx, p, finished); err != nil {
			return nil, err
		}
		// A PM-ordered retry grants a fresh rework budget; otherwise a
		// pipeline blocked on the cap would re-block on the next failure.
		// rework persists the whole map, so the in-memory reset sticks.
		p.ReworkRounds = nil
		return o.rework(ctx, tx, p, finished, pred, d.Summary)

	case decision.ActionDone:
		return nil, o.done(ctx, tx, p, finished, d.Summary)

	case decision.ActionEscalate:
		reason := d.Summary
		if d.Reason != decision.ReasonNone {
			reason = fmt.Sprintf("[%s] %s", d.Reason, d.Summary)
		}
		return o.escalate(ctx, tx, p, finished, reason)

	default: // ActionBlocked
		// The PM itself cannot proceed; the only exit from BLOCKED is
		// escalation to a human.
		return o.escalate(ctx, tx, p, finished, fmt.Sprintf("PM blocked: %s", d.Summary))
	}
}

// planFromCoder schedules verification of a delivered change.
func (o *Orchestrator) planFromCoder(ctx context.Context, tx *ent.Tx, p *ent.Pipeline, finished *ent.Job, result string) ([]*ent.Job, error) {
	out, _, err := contract.Parse(models.RoleCoder, result)
	if err != nil {
		return o.block(ctx, tx, p, finished, fmt.Sprintf("unparseable coder output: %v", err))
	}
	coder, _ := out.(*contract.CoderOutput)

	payload := "Verify the following change against its intent."
	if coder != nil {
		payload = fmt.Sprintf("Verify the following change against its intent.\n\nSummary: %s\nFiles: %s",
			coder.Summary, strings.Join(coder.FilesChanged, ", "))
	}
	created, err := o.createJob(ctx, tx, jobParams{
		pipelineID: p.ID,
		parentID:   finished.ID,
		role:       models.RoleQA,
		mode:       models.ModeWorker,
		payload:    payload,
		context:    result,
		priority:   models.Priority(finished.Priority),
		sequence:   finished.Sequence + 1,
	})
	if err != nil {
		return nil, err
	}
	return []*ent.Job{created}, nil
}

// planFromQA routes PASS to review and FAIL back to the coder with the
// failing tests attached.
func (o *Orchestrator) planFromQA(ctx context.Context, tx *ent.Tx, p *ent.Pipeline, finished *ent.Job, result string) ([]*ent.Job, error) {
	out, _, err := contract.Parse(models.RoleQA, result)
	if err != nil {
		return o.block(ctx, tx, p, finished, fmt.Sprintf("unparseable qa output: %v", err))
	}
	qa, ok := out.(*contract.QAOutput)
	if !ok {
		return o.block(ctx, tx, p, finished, "qa output has wrong shape")
	}

	if qa.Verdict == models.VerdictFail {
		pred, err := o.predecessor(ctx, tx, finished, models.RoleCoder)
		if err != nil {
			return nil, err
		}
		if pred == nil {
			return o.block(ctx, tx, p, finished, "QA failed but no coder job to rework")
		}
		var failing []string
		for _, tc := range qa.Tests {
			if strings.EqualFold(tc.Result, "fail") {
				failing = append(failing, fmt.Sprintf("- %s: %s", tc.Name, tc.Reason))
			}
		}
		feedback := strings.Join(qa.IssuesFound, "\n")
		if len(failing) > 0 {
			feedback = fmt.Sprintf("Failing tests:\n%s\n\n%s", strings.Join(failing, "\n"), feedback)
		}
		return o.rework(ctx, tx, p, finished, pred, feedback)
	}

	// PASS (and SKIP, where nothing was testable) proceed to review.
	created, err := o.createJob(ctx, tx, jobParams{
		pipelineID: p.ID,
		parentID:   finished.ID,
		role:       models.RoleReviewer,
		mode:       models.ModeWorker,
		payload:    "Review the verified change for risk and correctness.",
		context:    result,
		priority:   models.Priority(finished.Priority),
		sequence:   finished.Sequence + 1,
	})
	if err != nil {
		return nil, err
	}
	return []*ent.Job{created}, nil
}

// planFromReviewer closes, reworks, or blocks depending on the verdict.
func (o *Orchestrator) planFromReviewer(ctx context.Context, tx *ent.Tx, p *ent.Pipeline, finished *ent.Job, result string) ([]*ent.Job, error) {
	out, _, err := contract.Parse(models.RoleReviewer, result)
	if err != nil {
		return o.block(ctx, tx, p, finished, fmt.Sprintf("unparseable reviewer output: %v", err))
	}
	rev, ok := out.(*contract.ReviewerOutput)
	if !ok {
		return o.block(ctx, tx, p, finished, "reviewer output has wrong shape")
	}

	switch rev.Verdict {
	case models.VerdictApprove:
		return nil, o.done(ctx, tx, p, finished, "review approved")

	case models.VerdictReject:
		return o.block(ctx, tx, p, finished,
			fmt.Sprintf("reviewer rejected the change (security score %d)", rev.SecurityScore))

	default: // REVISE
		pred, err := o.predecessor(ctx, tx, finished, models.RoleCoder)
		if err != nil {
			return nil, err
		}
		if pred == nil {
			return o.block(ctx, tx, p, finished, "reviewer requested revision but no coder job to rework")
		}
		var notes []string
		for _, r := range rev.Risks {
			notes = append(notes, fmt.Sprintf("- [%s] %s:%d %s (%s)", r.Severity, r.File, r.Line, r.Issue, r.FixSuggestion))
		}
		return o.rework(ctx, tx, p, finished, pred, strings.Join(notes, "\n"))
	}
}

// reportToPM hands a sub-agent report back to the PM.
func (o *Orchestrator) reportToPM(ctx context.Context, tx *ent.Tx, p *ent.Pipeline, finished *ent.Job, result string) ([]*ent.Job, error) {
	payload := fmt.Sprintf("[AGENT REPORT] %s finished.\n\nDecide the next step for the request:\n%s",
		finished.Role, p.RootRequest)
	created, err := o.createJob(ctx, tx, jobParams{
		pipelineID: p.ID,
		parentID:   finished.ID,
		role:       models.RolePM,
		mode:       models.ModeWorker,
		payload:    payload,
		context:    result,
		priority:   models.Priority(finished.Priority),
		sequence:   finished.Sequence + 1,
	})
	if err != nil {
		return nil, err
	}
	return []*ent.Job{created}, nil
}

// rework re-enqueues the predecessor with feedback attached, bounded by
// the per-role rework cap.
func (o *Orchestrator) rework(ctx context.Context, tx *ent.Tx, p *ent.Pipeline, finished, pred *ent.Job, feedback string) ([]*ent.Job, error) {
	rounds := p.ReworkRounds
	if rounds == nil {
		rounds = map[string]int{}
	}
	role := string(pred.Role)
	if rounds[role]+1 > o.cfg.MaxReworkRounds {
		return o.block(ctx, tx, p, finished,
			fmt.Sprintf("%s exceeded %d rework rounds", role, o.cfg.MaxReworkRounds))
	}
	rounds[role]++

	err := tx.Pipeline.UpdateOneID(p.ID).
		SetReworkRounds(rounds).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record rework round: %w", err)
	}

	payload := pred.Payload
	if feedback != "" {
		payload = fmt.Sprintf("%s\n\n[REVISION FEEDBACK]\n%s", pred.Payload, feedback)
	}
	created, err := o.createJob(ctx, tx, jobParams{
		pipelineID: p.ID,
		parentID:   finished.ID,
		role:       models.Role(pred.Role),
		mode:       models.Mode(pred.Mode),
		payload:    payload,
		context:    pred.Context,
		priority:   models.Priority(pred.Priority),
		sequence:   finished.Sequence + 1,
	})
	if err != nil {
		return nil, err
	}
	return []*ent.Job{created}, nil
}

// resume returns a blocked pipeline to running after the PM decided to
// proceed. Running pipelines pass through untouched.
func (o *Orchestrator) resume(ctx context.Context, tx *ent.Tx, p *ent.Pipeline, finished *ent.Job) error {
	if p.State != pipeline.StateBlocked {
		return nil
	}
	err := tx.Pipeline.UpdateOneID(p.ID).
		SetState(pipeline.StateRunning).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to resume pipeline: %w", err)
	}
	p.State = pipeline.StateRunning
	return o.appendEvent(p, finished, eventlog.TypeState, "pipeline resumed by PM decision",
		map[string]any{"state": "running"})
}

// block parks the pipeline and asks the PM what to do.
func (o *Orchestrator) block(ctx context.Context, tx *ent.Tx, p *ent.Pipeline, finished *ent.Job, reason string) ([]*ent.Job, error) {
	err := tx.Pipeline.UpdateOneID(p.ID).
		SetState(pipeline.StateBlocked).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to block pipeline: %w", err)
	}
	if err := o.appendEvent(p, finished, eventlog.TypeState, reason, map[string]any{"state": "blocked"}); err != nil {
		return nil, err
	}

	created, err := o.createJob(ctx, tx, jobParams{
		pipelineID: p.ID,
		parentID:   finished.ID,
		role:       models.RolePM,
		mode:       models.ModeWorker,
		payload: fmt.Sprintf("[BLOCKED] %s\n\nDecide how to proceed with the request:\n%s",
			reason, p.RootRequest),
		context:  resultOf(finished),
		priority: models.PriorityHigh,
		sequence: finished.Sequence + 1,
	})
	if err != nil {
		return nil, err
	}
	return []*ent.Job{created}, nil
}

// escalate hands the pipeline to a human operator and stops scheduling.
func (o *Orchestrator) escalate(ctx context.Context, tx *ent.Tx, p *ent.Pipeline, finished *ent.Job, reason string) ([]*ent.Job, error) {
	err := tx.Pipeline.UpdateOneID(p.ID).
		SetState(pipeline.StateEscalated).
		SetEscalationReason(reason).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to escalate pipeline: %w", err)
	}
	_, err = tx.Job.Update().
		Where(
			job.PipelineIDEQ(p.ID),
			job.StateEQ(job.StatePending),
		).
		SetState(job.StateCancelled).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel pending jobs: %w", err)
	}
	if err := o.appendEvent(p, finished, eventlog.TypeState, reason, map[string]any{"state": "escalated"}); err != nil {
		return nil, err
	}
	slog.Warn("Pipeline escalated", "pipeline_id", p.ID, "reason", reason)
	return nil, nil
}

// done closes the pipeline.
func (o *Orchestrator) done(ctx context.Context, tx *ent.Tx, p *ent.Pipeline, finished *ent.Job, summary string) error {
	err := tx.Pipeline.UpdateOneID(p.ID).
		SetState(pipeline.StateDone).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to finish pipeline: %w", err)
	}
	if err := o.appendEvent(p, finished, eventlog.TypeState, summary, map[string]any{"state": "done"}); err != nil {
		return err
	}
	slog.Info("Pipeline done", "pipeline_id", p.ID)
	return nil
}

// predecessor walks the parent chain from the finished job until it
// finds a job with the wanted role. An empty role matches the first
// parent. Returns nil when the chain runs out.
func (o *Orchestrator) predecessor(ctx context.Context, tx *ent.Tx, finished *ent.Job, role models.Role) (*ent.Job, error) {
	current := finished
	for i := 0; i < 100; i++ {
		if current.ParentJobID == nil || *current.ParentJobID == "" {
			return nil, nil
		}
		parent, err := tx.Job.Get(ctx, *current.ParentJobID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to walk parent chain: %w", err)
		}
		if role == "" || models.Role(parent.Role) == role {
			return parent, nil
		}
		current = parent
	}
	return nil, nil
}

type jobParams struct {
	pipelineID string
	parentID   string
	role       models.Role
	mode       models.Mode
	payload    string
	context    string
	priority   models.Priority
	sequence   int
}

// createJob inserts a successor, deduplicating on the (pipeline, role,
// mode, sequence) key. The pipeline row lock held by PlanSuccessors
// makes select-then-insert race-free within a pipeline.
func (o *Orchestrator) createJob(ctx context.Context, tx *ent.Tx, params jobParams) (*ent.Job, error) {
	if !params.role.Valid() {
		return nil, fmt.Errorf("cannot schedule unknown role %q", params.role)
	}
	if !params.mode.Valid() {
		params.mode = models.ModeWorker
	}
	if !params.priority.Valid() {
		params.priority = models.PriorityMedium
	}

	existing, err := tx.Job.Query().
		Where(
			job.PipelineIDEQ(params.pipelineID),
			job.RoleEQ(job.Role(params.role)),
			job.ModeEQ(job.Mode(params.mode)),
			job.SequenceEQ(params.sequence),
		).
		First(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check successor dedup key: %w", err)
	}

	created, err := tx.Job.Create().
		SetID(uuid.New().String()).
		SetPipelineID(params.pipelineID).
		SetParentJobID(params.parentID).
		SetRole(job.Role(params.role)).
		SetMode(job.Mode(params.mode)).
		SetState(job.StatePending).
		SetPayload(params.payload).
		SetContext(params.context).
		SetPriority(job.Priority(params.priority)).
		SetSequence(params.sequence).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create successor: %w", err)
	}
	return created, nil
}

func (o *Orchestrator) appendEvent(p *ent.Pipeline, finished *ent.Job, typ eventlog.Type, content string, metadata map[string]any) error {
	_, err := o.log.Append(eventlog.Event{
		PipelineID: p.ID,
		JobID:      finished.ID,
		FromRole:   string(finished.Role),
		EventType:  typ,
		Content:    content,
		Metadata:   metadata,
	})
	if err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}

func resultOf(j *ent.Job) string {
	if j.Result != nil {
		return *j.Result
	}
	return ""
}
