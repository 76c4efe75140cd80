package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestroworks/maestro/ent"
	"github.com/maestroworks/maestro/ent/job"
	"github.com/maestroworks/maestro/ent/pipeline"
	"github.com/maestroworks/maestro/pkg/config"
	"github.com/maestroworks/maestro/pkg/eventlog"
	"github.com/maestroworks/maestro/pkg/models"
	"github.com/maestroworks/maestro/pkg/orchestrator"
	"github.com/maestroworks/maestro/pkg/services"
	testdb "github.com/maestroworks/maestro/test/database"
)

const (
	coderResult    = `{"summary": "Implemented retry backoff", "files_changed": ["retry.go"], "diff": "--- a/retry.go\n+++ b/retry.go\n"}`
	qaPassResult   = `{"verdict": "PASS", "tests": [{"name": "TestRetry", "result": "pass"}]}`
	qaFailResult   = `{"verdict": "FAIL", "tests": [{"name": "TestRetry", "result": "fail", "reason": "timeout"}], "issues_found": ["retry loop busy-waits"]}`
	reviewerOK     = `{"verdict": "APPROVE", "security_score": 9}`
	pmDispatch     = `{"action": "DISPATCH", "summary": "Split the request into build work", "tasks": [{"task_id": "T1", "agent": "coder", "instruction": "Add retry backoff to the queue client", "priority": "high"}]}`
)

type testEnv struct {
	client    *ent.Client
	jobs      *services.JobService
	pipelines *services.PipelineService
	queueCfg  *config.QueueConfig
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	dbClient := testdb.NewTestClient(t)

	queueCfg := config.DefaultQueueConfig()
	pipeCfg := config.DefaultPipelineConfig()

	log, err := eventlog.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })

	jobs := services.NewJobService(dbClient.Client, queueCfg, pipeCfg)
	jobs.SetPlanner(orchestrator.New(pipeCfg, log))

	return &testEnv{
		client:    dbClient.Client,
		jobs:      jobs,
		pipelines: services.NewPipelineService(dbClient.Client, pipeCfg),
		queueCfg:  queueCfg,
	}
}

func (e *testEnv) createJob(t *testing.T, role models.Role, payload string) *ent.Job {
	t.Helper()
	j, err := e.jobs.CreateJob(context.Background(), services.CreateJobInput{
		Role:    role,
		Payload: payload,
	})
	require.NoError(t, err)
	return j
}

// pullPush claims the next job for role and pushes result, returning
// the scheduled successors.
func (e *testEnv) pullPush(t *testing.T, role models.Role, result string) *services.PushOutcome {
	t.Helper()
	ctx := context.Background()
	j, err := e.jobs.Pull(ctx, services.PullInput{Role: role, Mode: models.ModeWorker, Owner: "pod-a"})
	require.NoError(t, err, "pulling %s job", role)
	outcome, err := e.jobs.Push(ctx, services.PushInput{JobID: j.ID, Owner: "pod-a", Result: result})
	require.NoError(t, err, "pushing %s result", role)
	return outcome
}

func TestCoderResultSchedulesQA(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	created := env.createJob(t, models.RoleCoder, "Add retry backoff")

	claimed, err := env.jobs.Pull(ctx, services.PullInput{Role: models.RoleCoder, Mode: models.ModeWorker, Owner: "pod-a"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, claimed.ID)
	assert.Equal(t, job.StateLeased, claimed.State)
	assert.Equal(t, 1, claimed.AttemptCount)

	outcome, err := env.jobs.Push(ctx, services.PushInput{JobID: claimed.ID, Owner: "pod-a", Result: coderResult})
	require.NoError(t, err)
	assert.Equal(t, job.StateSucceeded, outcome.Job.State)
	require.Len(t, outcome.NextJobs, 1)
	assert.Equal(t, job.RoleQa, outcome.NextJobs[0].Role)
	assert.Equal(t, claimed.Sequence+1, outcome.NextJobs[0].Sequence)

	// A retried push converges on the original plan.
	dup, err := env.jobs.Push(ctx, services.PushInput{JobID: claimed.ID, Owner: "pod-a", Result: coderResult})
	assert.ErrorIs(t, err, services.ErrDuplicatePush)
	require.Len(t, dup.NextJobs, 1)
	assert.Equal(t, outcome.NextJobs[0].ID, dup.NextJobs[0].ID)
}

func TestPullOrdersByPriority(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	low, err := env.jobs.CreateJob(ctx, services.CreateJobInput{
		Role: models.RoleCoder, Payload: "low priority work", Priority: models.PriorityLow,
	})
	require.NoError(t, err)
	high, err := env.jobs.CreateJob(ctx, services.CreateJobInput{
		Role: models.RoleCoder, Payload: "high priority work", Priority: models.PriorityHigh,
	})
	require.NoError(t, err)

	first, err := env.jobs.Pull(ctx, services.PullInput{Role: models.RoleCoder, Mode: models.ModeWorker, Owner: "pod-a"})
	require.NoError(t, err)
	assert.Equal(t, high.ID, first.ID)

	second, err := env.jobs.Pull(ctx, services.PullInput{Role: models.RoleCoder, Mode: models.ModeWorker, Owner: "pod-a"})
	require.NoError(t, err)
	assert.Equal(t, low.ID, second.ID)

	_, err = env.jobs.Pull(ctx, services.PullInput{Role: models.RoleCoder, Mode: models.ModeWorker, Owner: "pod-a"})
	assert.ErrorIs(t, err, services.ErrNoJobsAvailable)
}

func TestPushRejectsWrongOwner(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	env.createJob(t, models.RoleCoder, "some work")
	claimed, err := env.jobs.Pull(ctx, services.PullInput{Role: models.RoleCoder, Mode: models.ModeWorker, Owner: "pod-a"})
	require.NoError(t, err)

	_, err = env.jobs.Push(ctx, services.PushInput{JobID: claimed.ID, Owner: "pod-b", Result: coderResult})
	assert.ErrorIs(t, err, services.ErrLeaseExpired)
}

func TestPushRejectsContractViolation(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	env.createJob(t, models.RoleCoder, "some work")
	claimed, err := env.jobs.Pull(ctx, services.PullInput{Role: models.RoleCoder, Mode: models.ModeWorker, Owner: "pod-a"})
	require.NoError(t, err)

	_, err = env.jobs.Push(ctx, services.PushInput{JobID: claimed.ID, Owner: "pod-a", Result: "I did the thing, looks good"})
	assert.ErrorIs(t, err, services.ErrContractViolation)

	// The lease survives so the worker can retry with a valid result.
	reloaded, err := env.jobs.GetJob(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StateLeased, reloaded.State)
}

func TestQAFailReworksUntilCapThenBlocks(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	created := env.createJob(t, models.RoleCoder, "Add retry backoff")

	// Rounds 1 and 2: FAIL sends the work back to the coder.
	for round := 1; round <= 2; round++ {
		outcome := env.pullPush(t, models.RoleCoder, coderResult)
		require.Len(t, outcome.NextJobs, 1)
		require.Equal(t, job.RoleQa, outcome.NextJobs[0].Role)

		outcome = env.pullPush(t, models.RoleQA, qaFailResult)
		require.Len(t, outcome.NextJobs, 1, "round %d", round)
		rework := outcome.NextJobs[0]
		assert.Equal(t, job.RoleCoder, rework.Role)
		assert.Contains(t, rework.Payload, "[REVISION FEEDBACK]")
		assert.Contains(t, rework.Payload, "TestRetry")

		p, err := env.pipelines.GetPipeline(ctx, created.PipelineID, false)
		require.NoError(t, err)
		assert.Equal(t, round, p.ReworkRounds["coder"])
	}

	// Round 3 exceeds the cap: the pipeline blocks and the PM is asked.
	env.pullPush(t, models.RoleCoder, coderResult)
	outcome := env.pullPush(t, models.RoleQA, qaFailResult)
	require.Len(t, outcome.NextJobs, 1)
	pmJob := outcome.NextJobs[0]
	assert.Equal(t, job.RolePm, pmJob.Role)
	assert.Contains(t, pmJob.Payload, "[BLOCKED]")
	assert.Equal(t, job.PriorityHigh, pmJob.Priority)

	p, err := env.pipelines.GetPipeline(ctx, created.PipelineID, false)
	require.NoError(t, err)
	assert.Equal(t, pipeline.StateBlocked, p.State)

	// The PM consult job must stay claimable while the pipeline is
	// blocked; a DISPATCH decision returns it to running.
	outcome = env.pullPush(t, models.RolePM, pmDispatch)
	require.Len(t, outcome.NextJobs, 1)
	assert.Equal(t, job.RoleCoder, outcome.NextJobs[0].Role)

	p, err = env.pipelines.GetPipeline(ctx, created.PipelineID, false)
	require.NoError(t, err)
	assert.Equal(t, pipeline.StateRunning, p.State)

	claimed, err := env.jobs.Pull(ctx, services.PullInput{Role: models.RoleCoder, Mode: models.ModeWorker, Owner: "pod-a"})
	require.NoError(t, err)
	assert.Equal(t, outcome.NextJobs[0].ID, claimed.ID)
}

func TestPMRetryResetsReworkBudget(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	created := env.createJob(t, models.RoleCoder, "Add retry backoff")

	for round := 1; round <= 3; round++ {
		env.pullPush(t, models.RoleCoder, coderResult)
		env.pullPush(t, models.RoleQA, qaFailResult)
	}

	p, err := env.pipelines.GetPipeline(ctx, created.PipelineID, false)
	require.NoError(t, err)
	require.Equal(t, pipeline.StateBlocked, p.State)

	// RETRY re-enqueues the failed step and forgives the spent rounds,
	// so the next failure does not re-block immediately.
	outcome := env.pullPush(t, models.RolePM,
		`{"action": "RETRY", "summary": "Timeout looks like a flake, verify again"}`)
	require.Len(t, outcome.NextJobs, 1)
	assert.Equal(t, job.RoleQa, outcome.NextJobs[0].Role)

	p, err = env.pipelines.GetPipeline(ctx, created.PipelineID, false)
	require.NoError(t, err)
	assert.Equal(t, pipeline.StateRunning, p.State)
	assert.Equal(t, map[string]int{"qa": 1}, p.ReworkRounds)
}

func TestReviewerApprovalCompletesPipeline(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	created := env.createJob(t, models.RoleCoder, "Add retry backoff")

	env.pullPush(t, models.RoleCoder, coderResult)
	env.pullPush(t, models.RoleQA, qaPassResult)
	outcome := env.pullPush(t, models.RoleReviewer, reviewerOK)
	assert.Empty(t, outcome.NextJobs)

	p, err := env.pipelines.GetPipeline(ctx, created.PipelineID, false)
	require.NoError(t, err)
	assert.Equal(t, pipeline.StateDone, p.State)
}

func TestPMDispatchFansOutTasks(t *testing.T) {
	env := setupEnv(t)

	env.createJob(t, models.RolePM, "Ship retry support end to end")

	outcome := env.pullPush(t, models.RolePM, pmDispatch)
	require.Len(t, outcome.NextJobs, 1)
	task := outcome.NextJobs[0]
	assert.Equal(t, job.RoleCoder, task.Role)
	assert.Equal(t, job.PriorityHigh, task.Priority)
	assert.Contains(t, task.Payload, "Add retry backoff")
}

func TestExpireLeasesRequeuesThenFails(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	env.queueCfg.LeaseTTL = 10 * time.Millisecond

	created := env.createJob(t, models.RoleCoder, "some work")

	_, err := env.jobs.Pull(ctx, services.PullInput{Role: models.RoleCoder, Mode: models.ModeWorker, Owner: "pod-a"})
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)

	requeued, failed, err := env.jobs.ExpireLeases(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, requeued)
	assert.Equal(t, 0, failed)

	reloaded, err := env.jobs.GetJob(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatePending, reloaded.State)

	// Exhaust the attempt budget; the next expiry is terminal.
	env.queueCfg.MaxAttempts = 1
	_, err = env.jobs.Pull(ctx, services.PullInput{Role: models.RoleCoder, Mode: models.ModeWorker, Owner: "pod-a"})
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)

	requeued, failed, err = env.jobs.ExpireLeases(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, requeued)
	assert.Equal(t, 1, failed)

	reloaded, err = env.jobs.GetJob(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StateFailed, reloaded.State)

	p, err := env.pipelines.GetPipeline(ctx, created.PipelineID, false)
	require.NoError(t, err)
	assert.Equal(t, pipeline.StateEscalated, p.State)
}

func TestCancelPipelineStopsWork(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	created := env.createJob(t, models.RoleCoder, "some work")

	require.NoError(t, env.pipelines.CancelPipeline(ctx, created.PipelineID))

	reloaded, err := env.jobs.GetJob(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StateCancelled, reloaded.State)

	_, err = env.jobs.Pull(ctx, services.PullInput{Role: models.RoleCoder, Mode: models.ModeWorker, Owner: "pod-a"})
	assert.ErrorIs(t, err, services.ErrNoJobsAvailable)

	err = env.pipelines.CancelPipeline(ctx, created.PipelineID)
	assert.ErrorIs(t, err, services.ErrNotCancellable)
}

func TestCreateJobDeduplicates(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	seq := 0
	first, err := env.jobs.CreateJob(ctx, services.CreateJobInput{
		Role: models.RoleCoder, Payload: "some work", Sequence: &seq,
	})
	require.NoError(t, err)

	second, err := env.jobs.CreateJob(ctx, services.CreateJobInput{
		PipelineID: first.PipelineID,
		Role:       models.RoleCoder,
		Payload:    "duplicate submit of the same step",
		Sequence:   &seq,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}
