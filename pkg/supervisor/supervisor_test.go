package supervisor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestroworks/maestro/ent"
	"github.com/maestroworks/maestro/ent/job"
	"github.com/maestroworks/maestro/pkg/backend"
	"github.com/maestroworks/maestro/pkg/config"
	"github.com/maestroworks/maestro/pkg/escalate"
	"github.com/maestroworks/maestro/pkg/eventlog"
	"github.com/maestroworks/maestro/pkg/models"
	"github.com/maestroworks/maestro/pkg/persona"
)

// scriptedBackend returns canned completions in order, one per call,
// regardless of role or stage.
type scriptedBackend struct {
	replies []any // string completions or error values
	calls   int
}

func (s *scriptedBackend) Call(ctx context.Context, personaText, payload string, opts backend.Options) (backend.Result, error) {
	if s.calls >= len(s.replies) {
		return backend.Result{}, context.DeadlineExceeded
	}
	reply := s.replies[s.calls]
	s.calls++
	if err, ok := reply.(error); ok {
		return backend.Result{}, err
	}
	return backend.Result{Text: reply.(string), LatencyMS: 5}, nil
}

func (s *scriptedBackend) Resolve(role models.Role, stage models.Stage, payload string) (backend.Adapter, backend.Options, string) {
	return s, backend.Options{}, "test"
}

type staticCancel struct{ cancelled bool }

func (c *staticCancel) IsCancelRequested(ctx context.Context, pipelineID string) (bool, error) {
	return c.cancelled, nil
}

const validCoderResult = `{"summary": "Implemented retry backoff in the queue client module", ` +
	`"files_changed": ["queue/client.go"], ` +
	`"diff": "--- a/queue/client.go\n+++ b/queue/client.go\n+\tbackoff := time.Second\n"}`

const approveStamp = `{"verdict": "APPROVE", "score": 9}`

func newTestSupervisor(t *testing.T, be *scriptedBackend, cancelled bool) *Supervisor {
	t.Helper()
	esc, err := escalate.New(escalate.DefaultCapacity)
	require.NoError(t, err)
	log, err := eventlog.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })

	return New(be, persona.NewStore(t.TempDir()), esc, log,
		&staticCancel{cancelled: cancelled}, nil, config.DefaultSupervisorConfig())
}

func coderJob() *ent.Job {
	return &ent.Job{
		ID:         "job-1",
		PipelineID: "pipe-1",
		Role:       job.RoleCoder,
		Payload:    "Add retry backoff to the queue client",
	}
}

func TestExecuteHappyPath(t *testing.T) {
	be := &scriptedBackend{replies: []any{
		validCoderResult, // write
		approveStamp,     // audit
		approveStamp,     // stamp
	}}
	s := newTestSupervisor(t, be, false)

	out, err := s.Execute(context.Background(), coderJob())
	require.NoError(t, err)
	assert.Equal(t, validCoderResult, out.Result)
	assert.False(t, out.Degraded)
	assert.Equal(t, 0, out.Rewrites)
	require.NotNil(t, out.Stamp)
	assert.Equal(t, models.VerdictApprove, out.Stamp.Verdict)
	assert.Equal(t, 3, be.calls)
}

func TestExecuteSelfRepairsBadOutput(t *testing.T) {
	be := &scriptedBackend{replies: []any{
		"I refactored some things and it all looks good now.", // no JSON
		validCoderResult, // repaired write
		approveStamp,     // audit
		approveStamp,     // stamp
	}}
	s := newTestSupervisor(t, be, false)

	out, err := s.Execute(context.Background(), coderJob())
	require.NoError(t, err)
	assert.Equal(t, validCoderResult, out.Result)
	assert.Equal(t, 4, be.calls)
}

func TestExecuteAuditReviseTriggersRewrite(t *testing.T) {
	be := &scriptedBackend{replies: []any{
		validCoderResult, // write
		`{"verdict": "REVISE", "score": 3, "blocking_issues": ["missing error handling"]}`, // audit 1
		validCoderResult, // rewrite
		approveStamp,     // audit 2
		approveStamp,     // stamp
	}}
	s := newTestSupervisor(t, be, false)

	out, err := s.Execute(context.Background(), coderJob())
	require.NoError(t, err)
	assert.Equal(t, 1, out.Rewrites)
	assert.False(t, out.Degraded)
}

func TestExecuteDegradedWhenRewriteBudgetExhausted(t *testing.T) {
	revise := `{"verdict": "REVISE", "score": 2, "blocking_issues": ["still wrong"]}`
	be := &scriptedBackend{replies: []any{
		validCoderResult,         // initial write
		revise, validCoderResult, // round 1
		revise, validCoderResult, // round 2
		revise, validCoderResult, // round 3
		approveStamp, // stamp
	}}
	s := newTestSupervisor(t, be, false)

	out, err := s.Execute(context.Background(), coderJob())
	require.NoError(t, err)
	assert.True(t, out.Degraded)
	assert.Equal(t, 3, out.Rewrites)
	// Consumers of the pushed result can see the exhausted budget.
	assert.Contains(t, out.Result, `"degraded":true`)
}

func TestExecuteAuditRejectIsTerminal(t *testing.T) {
	be := &scriptedBackend{replies: []any{
		validCoderResult, // write
		`{"verdict": "REJECT", "score": 1, "blocking_issues": ["wrong approach entirely"]}`,
	}}
	s := newTestSupervisor(t, be, false)

	_, err := s.Execute(context.Background(), coderJob())
	assert.ErrorIs(t, err, ErrAuditRejected)
	assert.Contains(t, err.Error(), "wrong approach entirely")
	assert.Equal(t, 2, be.calls)
}

func TestExecuteHardFailsRepeatedContractFailure(t *testing.T) {
	// The same malformed reply every attempt walks the ladder
	// self_repair → role_switch → hard_fail in exactly three calls.
	bad := "Sure, I went ahead and cleaned things up for you."
	be := &scriptedBackend{replies: []any{bad, bad, bad}}
	s := newTestSupervisor(t, be, false)

	_, err := s.Execute(context.Background(), coderJob())
	assert.ErrorIs(t, err, ErrHardFail)
	assert.Equal(t, 3, be.calls)
}

func TestExecuteFailsWhenEventLogUnavailable(t *testing.T) {
	be := &scriptedBackend{replies: []any{validCoderResult, approveStamp, approveStamp}}
	esc, err := escalate.New(escalate.DefaultCapacity)
	require.NoError(t, err)
	log, err := eventlog.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, log.Close())

	s := New(be, persona.NewStore(t.TempDir()), esc, log,
		&staticCancel{}, nil, config.DefaultSupervisorConfig())

	_, err = s.Execute(context.Background(), coderJob())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "event log is closed")
	assert.Equal(t, 0, be.calls)
}

func TestExecuteBindingStampEscalation(t *testing.T) {
	be := &scriptedBackend{replies: []any{
		validCoderResult,
		approveStamp,
		`{"verdict": "APPROVE", "score": 8, "requires_escalation": true, "blocking_issues": ["touches deploy config"]}`,
	}}
	s := newTestSupervisor(t, be, false)

	_, err := s.Execute(context.Background(), coderJob())
	assert.ErrorIs(t, err, ErrEscalationRequired)
}

func TestExecuteCancelledBetweenStages(t *testing.T) {
	be := &scriptedBackend{replies: []any{validCoderResult}}
	s := newTestSupervisor(t, be, true)

	_, err := s.Execute(context.Background(), coderJob())
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, 0, be.calls)
}
