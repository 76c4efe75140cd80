// Package supervisor runs one leased job through the Write → Audit →
// Stamp loop: the writer produces the role's output, a cheap auditor
// reviews it through a bounded rewrite loop, and the stamp records the
// terminal advisory verdict.
package supervisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/maestroworks/maestro/ent"
	"github.com/maestroworks/maestro/pkg/backend"
	"github.com/maestroworks/maestro/pkg/config"
	"github.com/maestroworks/maestro/pkg/contract"
	"github.com/maestroworks/maestro/pkg/escalate"
	"github.com/maestroworks/maestro/pkg/eventlog"
	"github.com/maestroworks/maestro/pkg/guard"
	"github.com/maestroworks/maestro/pkg/metrics"
	"github.com/maestroworks/maestro/pkg/models"
	"github.com/maestroworks/maestro/pkg/persona"
)

// Sentinel errors surfaced to the worker.
var (
	// ErrCancelled aborts execution when the pipeline's cancel flag is
	// set between stages.
	ErrCancelled = errors.New("pipeline cancelled")

	// ErrHardFail means the escalation ladder gave up on the output
	// contract for this job.
	ErrHardFail = errors.New("output contract failed at hard_fail level")

	// ErrAuditRejected is the auditor's terminal verdict: the approach
	// itself is wrong and no rewrite will save it. The job fails and the
	// orchestrator decides what happens to the pipeline.
	ErrAuditRejected = errors.New("audit rejected the output")

	// ErrEscalationRequired is the one binding stamp outcome: a human
	// has to look before this result is used.
	ErrEscalationRequired = errors.New("stamp requires escalation")
)

// maxRepairAttempts bounds the write loop independently of the
// escalator ladder, which already hard-fails repeated signatures.
const maxRepairAttempts = 8

// CancelChecker exposes the per-pipeline cancel flag. Satisfied by
// services.PipelineService.
type CancelChecker interface {
	IsCancelRequested(ctx context.Context, pipelineID string) (bool, error)
}

// Compactor shrinks an overflowing payload so the call can be retried
// once.
type Compactor interface {
	Compact(ctx context.Context, payload string, targetRatio float64) (string, error)
}

// BackendResolver routes a call to an adapter. Satisfied by
// backend.Registry.
type BackendResolver interface {
	Resolve(role models.Role, stage models.Stage, payload string) (backend.Adapter, backend.Options, string)
}

// Outcome is a completed execution.
type Outcome struct {
	Result   string // validated completion text, pushed as the job result
	Output   contract.AgentOutput
	Stamp    *contract.StampOutput
	Degraded bool // audit loop exhausted without approval
	Rewrites int
	Usage    backend.Usage
}

// Supervisor executes jobs against the backend registry.
type Supervisor struct {
	backends  BackendResolver
	personas  *persona.Store
	escalator *escalate.Escalator
	log       *eventlog.Log
	cancels   CancelChecker
	compactor Compactor
	cfg       *config.SupervisorConfig
}

// New creates a Supervisor. The compactor may be nil; context overflow
// is then terminal for the call.
func New(backends BackendResolver, personas *persona.Store, escalator *escalate.Escalator,
	log *eventlog.Log, cancels CancelChecker, compactor Compactor, cfg *config.SupervisorConfig) *Supervisor {
	if backends == nil || personas == nil || escalator == nil || log == nil || cancels == nil || cfg == nil {
		panic("supervisor.New: all dependencies except compactor are required")
	}
	return &Supervisor{
		backends:  backends,
		personas:  personas,
		escalator: escalator,
		log:       log,
		cancels:   cancels,
		compactor: compactor,
		cfg:       cfg,
	}
}

// Execute runs one job to a validated result. Transient backend errors
// are returned as-is so the worker can leave the lease to expire;
// ErrHardFail and ErrEscalationRequired should be pushed as failures.
func (s *Supervisor) Execute(ctx context.Context, j *ent.Job) (*Outcome, error) {
	role := models.Role(j.Role)
	payload := j.Payload
	if j.Context != "" {
		payload = fmt.Sprintf("%s\n\n[CONTEXT]\n%s", j.Payload, j.Context)
	}

	out := &Outcome{}

	text, output, err := s.write(ctx, j, role, payload, out)
	if err != nil {
		return nil, err
	}

	if err := s.checkCancel(ctx, j); err != nil {
		return nil, err
	}

	text, output, err = s.audit(ctx, j, role, payload, text, output, out)
	if err != nil {
		return nil, err
	}

	if err := s.checkCancel(ctx, j); err != nil {
		return nil, err
	}

	if err := s.stamp(ctx, j, role, text, out); err != nil {
		return nil, err
	}

	out.Result = text
	if out.Degraded {
		out.Result = markDegraded(role, text)
	}
	out.Output = output
	return out, nil
}

// markDegraded injects a degraded flag into the result object so
// downstream consumers can tell an exhausted audit budget from a full
// approval. Unparseable results pass through unchanged.
func markDegraded(role models.Role, text string) string {
	var obj map[string]any
	if err := json.Unmarshal([]byte(contract.ExtractJSON(text, role)), &obj); err != nil {
		return text
	}
	obj["degraded"] = true
	marked, err := json.Marshal(obj)
	if err != nil {
		return text
	}
	return string(marked)
}

// write runs the writer stage through the escalation ladder until the
// output satisfies the contract and the semantic guard.
func (s *Supervisor) write(ctx context.Context, j *ent.Job, role models.Role, payload string, out *Outcome) (string, contract.AgentOutput, error) {
	writeRole := role
	prompt := payload

	for attempt := 0; attempt < maxRepairAttempts; attempt++ {
		if err := s.checkCancel(ctx, j); err != nil {
			return "", nil, err
		}

		text, err := s.call(ctx, j, writeRole, models.StageWriter, prompt)
		if err != nil {
			return "", nil, err
		}

		output, meta, perr := contract.Parse(role, text)
		if perr == nil {
			perr = guard.Check(output)
		}
		if perr == nil {
			if meta.DegradedParse {
				slog.Warn("Accepted degraded parse",
					"job_id", j.ID, "role", role, "verdict", meta.RawVerdict)
			}
			return text, output, nil
		}

		// The signature hashes the unmodified payload, not the retry
		// prompt: repair feedback mutates every attempt and would split
		// identical failures into fresh signatures.
		kind, missing := failureParts(perr)
		sig := escalate.NewSignature(kind, missing, role, payload)
		directive := s.escalator.OnFailure(j.PipelineID, sig, perr.Error())
		metrics.EscalationsOrdered.WithLabelValues(string(directive.Level)).Inc()

		if aerr := s.appendEvent(j, eventlog.TypeError, perr.Error(), map[string]any{
			"stage":     string(models.StageWriter),
			"kind":      string(kind),
			"level":     string(directive.Level),
			"attempts":  directive.Count,
			"next_role": string(directive.RetryRole),
		}); aerr != nil {
			return "", nil, aerr
		}

		if directive.Level == escalate.LevelHardFail {
			return "", nil, fmt.Errorf("%w: %s", ErrHardFail, perr.Error())
		}
		if directive.RoleSwitched {
			writeRole = directive.RetryRole
		}
		prompt = fmt.Sprintf("%s\n\n%s", payload, directive.Feedback)
	}

	return "", nil, fmt.Errorf("%w: repair attempts exhausted", ErrHardFail)
}

// audit runs the bounded rewrite loop. REVISE triggers a rewrite;
// REJECT is terminal. An unavailable or unparseable auditor is
// advisory, and an exhausted loop ships the last output marked
// degraded.
func (s *Supervisor) audit(ctx context.Context, j *ent.Job, role models.Role, payload, text string, output contract.AgentOutput, out *Outcome) (string, contract.AgentOutput, error) {
	for rewrite := 0; rewrite < s.cfg.MaxRewrites; rewrite++ {
		if err := s.checkCancel(ctx, j); err != nil {
			return "", nil, err
		}

		auditPrompt := fmt.Sprintf(
			"Audit the following %s output for the task below. Respond with a JSON object "+
				"{\"verdict\": \"APPROVE\"|\"REVISE\"|\"REJECT\", \"score\": 0-10, \"blocking_issues\": [...]}. "+
				"Use REVISE for fixable problems; REJECT only when the approach itself is wrong.\n\n"+
				"[TASK]\n%s\n\n[OUTPUT]\n%s",
			role, payload, text)

		auditText, err := s.call(ctx, j, role, models.StageAuditor, auditPrompt)
		if err != nil {
			// The audit is advisory; a failing auditor does not sink the
			// writer's validated output.
			slog.Warn("Audit stage unavailable, shipping unaudited output",
				"job_id", j.ID, "error", err)
			return text, output, nil
		}

		verdict, meta, perr := contract.Parse(models.RoleStamp, auditText)
		if perr != nil {
			slog.Warn("Unparseable audit verdict, shipping unaudited output",
				"job_id", j.ID, "error", perr)
			return text, output, nil
		}
		stamp := verdict.(*contract.StampOutput)

		if stamp.Verdict == models.VerdictApprove {
			return text, output, nil
		}

		// Canonicalization folds every revise-class token into REJECT
		// for the stamp schema; the raw token tells the terminal verdict
		// apart from a revise request.
		if strings.EqualFold(strings.TrimSpace(meta.RawVerdict), string(models.VerdictReject)) {
			return "", nil, fmt.Errorf("%w: %s", ErrAuditRejected, strings.Join(stamp.BlockingIssues, "; "))
		}

		// Rewrite with the blocking issues attached.
		out.Rewrites++
		rewritePrompt := fmt.Sprintf("%s\n\n[AUDIT FEEDBACK]\n%s",
			payload, strings.Join(stamp.BlockingIssues, "\n"))
		newText, newOutput, err := s.write(ctx, j, role, rewritePrompt, out)
		if err != nil {
			return "", nil, err
		}
		text, output = newText, newOutput
	}

	out.Degraded = true
	slog.Warn("Rewrite budget exhausted, shipping degraded output",
		"job_id", j.ID, "role", role, "rewrites", out.Rewrites)
	return text, output, nil
}

// stamp records the terminal verdict. Approval is advisory;
// requires_escalation is binding.
func (s *Supervisor) stamp(ctx context.Context, j *ent.Job, role models.Role, text string, out *Outcome) error {
	stampPrompt := fmt.Sprintf(
		"Give the final stamp for this %s output. Respond with a JSON object "+
			"{\"verdict\": \"APPROVE\"|\"REJECT\", \"score\": 0-10, \"blocking_issues\": [...], "+
			"\"requires_escalation\": bool}. Set requires_escalation only for work a human must "+
			"approve (deploys, payments, data deletion, credentials).\n\n[OUTPUT]\n%s",
		role, text)

	stampText, err := s.call(ctx, j, role, models.StageStamp, stampPrompt)
	if err != nil {
		slog.Warn("Stamp stage unavailable, shipping unstamped output", "job_id", j.ID, "error", err)
		return nil
	}

	verdict, _, perr := contract.Parse(models.RoleStamp, stampText)
	if perr != nil {
		slog.Warn("Unparseable stamp verdict, shipping unstamped output", "job_id", j.ID, "error", perr)
		return nil
	}
	stamp := verdict.(*contract.StampOutput)
	out.Stamp = stamp

	if stamp.RequiresEscalation {
		return fmt.Errorf("%w: %s", ErrEscalationRequired, strings.Join(stamp.BlockingIssues, "; "))
	}
	return nil
}

// call performs one backend call with the per-call timeout, retrying
// once through the compactor on context overflow.
func (s *Supervisor) call(ctx context.Context, j *ent.Job, role models.Role, stage models.Stage, prompt string) (string, error) {
	personaText, err := s.personas.Get(role)
	if err != nil {
		return "", err
	}

	adapter, opts, tier := s.backends.Resolve(role, stage, prompt)
	if aerr := s.appendEvent(j, eventlog.TypeRequest, prompt, map[string]any{
		"stage": string(stage), "tier": tier, "call_role": string(role),
	}); aerr != nil {
		return "", aerr
	}

	result, err := s.callOnce(ctx, adapter, personaText, prompt, opts)
	if err != nil && backend.KindOf(err) == models.ErrKindContextOverflow && s.compactor != nil {
		slog.Info("Context overflow, compacting payload", "job_id", j.ID, "stage", stage)
		compacted, cerr := s.compactor.Compact(ctx, prompt, s.cfg.CompactTargetRatio)
		if cerr != nil {
			return "", fmt.Errorf("compacting payload: %w", cerr)
		}
		result, err = s.callOnce(ctx, adapter, personaText, compacted, opts)
	}
	if err != nil {
		if aerr := s.appendEvent(j, eventlog.TypeError, err.Error(), map[string]any{
			"stage": string(stage), "tier": tier, "kind": string(backend.KindOf(err)),
		}); aerr != nil {
			return "", aerr
		}
		return "", err
	}

	metrics.BackendCallDuration.WithLabelValues(tier, string(stage)).
		Observe(float64(result.LatencyMS) / 1000)
	if aerr := s.appendEvent(j, eventlog.TypeResponse, result.Text, map[string]any{
		"stage":         string(stage),
		"tier":          tier,
		"latency_ms":    result.LatencyMS,
		"input_tokens":  result.Usage.InputTokens,
		"output_tokens": result.Usage.OutputTokens,
	}); aerr != nil {
		return "", aerr
	}
	return result.Text, nil
}

func (s *Supervisor) callOnce(ctx context.Context, adapter backend.Adapter, personaText, prompt string, opts backend.Options) (backend.Result, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.BackendTimeout)
	defer cancel()
	return adapter.Call(callCtx, personaText, prompt, opts)
}

func (s *Supervisor) checkCancel(ctx context.Context, j *ent.Job) error {
	cancelled, err := s.cancels.IsCancelRequested(ctx, j.PipelineID)
	if err != nil {
		// Cancel state unknown; keep going rather than dropping work.
		slog.Warn("Cancel check failed", "pipeline_id", j.PipelineID, "error", err)
		return nil
	}
	if !cancelled {
		return nil
	}
	if aerr := s.appendEvent(j, eventlog.TypeState, "execution aborted by cancel flag", map[string]any{"state": "cancelled"}); aerr != nil {
		return errors.Join(ErrCancelled, aerr)
	}
	return ErrCancelled
}

// appendEvent records one event on the audit trail. A failed append is
// fatal to the operation that produced the event: an unrecorded call
// must not ship its result.
func (s *Supervisor) appendEvent(j *ent.Job, typ eventlog.Type, content string, metadata map[string]any) error {
	_, err := s.log.Append(eventlog.Event{
		PipelineID: j.PipelineID,
		JobID:      j.ID,
		FromRole:   string(j.Role),
		EventType:  typ,
		Content:    content,
		Metadata:   metadata,
	})
	if err != nil {
		slog.Error("Failed to append event", "job_id", j.ID, "error", err)
		return fmt.Errorf("appending %s event: %w", typ, err)
	}
	return nil
}

// failureParts extracts the error kind and missing fields from a
// contract or guard failure.
func failureParts(err error) (models.ErrorKind, []string) {
	var pf *contract.ParseFailure
	if errors.As(err, &pf) {
		return pf.Kind, pf.MissingFields
	}
	var v *guard.Violation
	if errors.As(err, &v) {
		if v.Field != "" {
			return v.Kind, []string{v.Field}
		}
		return v.Kind, nil
	}
	return models.ErrKindJSONParse, nil
}
