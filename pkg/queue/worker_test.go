package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestroworks/maestro/ent"
	"github.com/maestroworks/maestro/ent/job"
	"github.com/maestroworks/maestro/pkg/config"
	"github.com/maestroworks/maestro/pkg/services"
	"github.com/maestroworks/maestro/pkg/supervisor"
)

// fakeQueue is an in-memory JobQueue for worker and pool tests.
type fakeQueue struct {
	mu       sync.Mutex
	pending  []*ent.Job
	pushes   []services.PushInput
	pushErr  error
	requeued int
}

func (q *fakeQueue) Pull(_ context.Context, input services.PullInput) (*ent.Job, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, j := range q.pending {
		if string(j.Role) == string(input.Role) && string(j.Mode) == string(input.Mode) {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return j, nil
		}
	}
	return nil, services.ErrNoJobsAvailable
}

func (q *fakeQueue) Push(_ context.Context, input services.PushInput) (*services.PushOutcome, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pushes = append(q.pushes, input)
	if q.pushErr != nil {
		return nil, q.pushErr
	}
	return &services.PushOutcome{}, nil
}

func (q *fakeQueue) RequeueOwnedLeases(_ context.Context, owner string) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := q.requeued
	q.requeued = 0
	return n, nil
}

func (q *fakeQueue) ExpireLeases(_ context.Context, _ time.Time) (int, int, error) {
	return 0, 0, nil
}

func (q *fakeQueue) Status(_ context.Context) (*services.QueueStatus, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return &services.QueueStatus{
		CountsByState: map[string]int{"pending": len(q.pending)},
		PendingByRole: map[string]int{"coder": len(q.pending)},
	}, nil
}

func (q *fakeQueue) pushed() []services.PushInput {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]services.PushInput(nil), q.pushes...)
}

// fakeExecutor returns a canned outcome or error for every job.
type fakeExecutor struct {
	mu    sync.Mutex
	out   *supervisor.Outcome
	err   error
	calls int
}

func (e *fakeExecutor) Execute(_ context.Context, _ *ent.Job) (*supervisor.Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	return e.out, e.err
}

type noopRegistry struct{}

func (noopRegistry) RegisterJob(string, string, context.CancelFunc) {}
func (noopRegistry) UnregisterJob(string)                           {}

func pendingJob(id string) *ent.Job {
	return &ent.Job{
		ID:         id,
		PipelineID: "pipe-1",
		Role:       job.RoleCoder,
		Mode:       job.ModeWorker,
		Priority:   job.PriorityMedium,
	}
}

func newTestWorker(q *fakeQueue, e *fakeExecutor) *Worker {
	return NewWorker("pod-a-worker-0", "pod-a", q, config.DefaultQueueConfig(), e, noopRegistry{})
}

func TestPollAndProcessPushesResult(t *testing.T) {
	q := &fakeQueue{pending: []*ent.Job{pendingJob("job-1")}}
	e := &fakeExecutor{out: &supervisor.Outcome{Result: `{"summary": "done"}`}}
	w := newTestWorker(q, e)

	require.NoError(t, w.pollAndProcess(context.Background()))

	pushes := q.pushed()
	require.Len(t, pushes, 1)
	assert.Equal(t, "job-1", pushes[0].JobID)
	assert.Equal(t, "pod-a", pushes[0].Owner)
	assert.Equal(t, `{"summary": "done"}`, pushes[0].Result)
	assert.Empty(t, pushes[0].Error)
}

func TestPollAndProcessEmptyQueue(t *testing.T) {
	q := &fakeQueue{}
	w := newTestWorker(q, &fakeExecutor{})

	err := w.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, services.ErrNoJobsAvailable)
}

func TestProcessHardFailPushesError(t *testing.T) {
	q := &fakeQueue{pending: []*ent.Job{pendingJob("job-1")}}
	e := &fakeExecutor{err: supervisor.ErrHardFail}
	w := newTestWorker(q, e)

	require.NoError(t, w.pollAndProcess(context.Background()))

	pushes := q.pushed()
	require.Len(t, pushes, 1)
	assert.Empty(t, pushes[0].Result)
	assert.NotEmpty(t, pushes[0].Error)
}

func TestProcessEscalationRequiredPushesError(t *testing.T) {
	q := &fakeQueue{pending: []*ent.Job{pendingJob("job-1")}}
	e := &fakeExecutor{err: supervisor.ErrEscalationRequired}
	w := newTestWorker(q, e)

	require.NoError(t, w.pollAndProcess(context.Background()))

	pushes := q.pushed()
	require.Len(t, pushes, 1)
	assert.NotEmpty(t, pushes[0].Error)
}

func TestProcessAuditRejectedPushesError(t *testing.T) {
	q := &fakeQueue{pending: []*ent.Job{pendingJob("job-1")}}
	e := &fakeExecutor{err: supervisor.ErrAuditRejected}
	w := newTestWorker(q, e)

	require.NoError(t, w.pollAndProcess(context.Background()))

	// A terminal audit verdict is a job failure, not a transient error:
	// the orchestrator must see it to block the pipeline.
	pushes := q.pushed()
	require.Len(t, pushes, 1)
	assert.Empty(t, pushes[0].Result)
	assert.NotEmpty(t, pushes[0].Error)
}

func TestProcessCancelledAbandonsWithoutPush(t *testing.T) {
	q := &fakeQueue{pending: []*ent.Job{pendingJob("job-1")}}
	e := &fakeExecutor{err: supervisor.ErrCancelled}
	w := newTestWorker(q, e)

	require.NoError(t, w.pollAndProcess(context.Background()))
	assert.Empty(t, q.pushed())
}

func TestProcessTransientErrorLeavesLease(t *testing.T) {
	q := &fakeQueue{pending: []*ent.Job{pendingJob("job-1")}}
	e := &fakeExecutor{err: errors.New("backend unreachable")}
	w := newTestWorker(q, e)

	// Transient failures abandon the lease; the reaper retries.
	require.NoError(t, w.pollAndProcess(context.Background()))
	assert.Empty(t, q.pushed())

	health := w.Health()
	assert.Equal(t, 1, health.JobsProcessed)
}

func TestPushToleratesDuplicate(t *testing.T) {
	q := &fakeQueue{pending: []*ent.Job{pendingJob("job-1")}, pushErr: services.ErrDuplicatePush}
	e := &fakeExecutor{out: &supervisor.Outcome{Result: `{"summary": "done"}`}}
	w := newTestWorker(q, e)

	require.NoError(t, w.pollAndProcess(context.Background()))
	assert.Len(t, q.pushed(), 1)
}

func TestPollIntervalJitterBounds(t *testing.T) {
	cfg := config.DefaultQueueConfig()
	w := NewWorker("w", "pod", &fakeQueue{}, cfg, &fakeExecutor{}, noopRegistry{})

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, cfg.PollInterval)
		assert.Less(t, d, cfg.PollInterval+cfg.PollIntervalJitter)
	}
}
