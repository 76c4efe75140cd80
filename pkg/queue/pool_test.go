package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestroworks/maestro/pkg/config"
)

type fakePipelines struct {
	mu      sync.Mutex
	expired int
}

func (p *fakePipelines) ExpireDeadlines(_ context.Context, _ time.Time) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.expired++
	return 0, nil
}

func poolTestConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 5 * time.Millisecond
	cfg.PollIntervalJitter = time.Millisecond
	cfg.ReaperInterval = 5 * time.Millisecond
	return cfg
}

func TestPoolStartRequeuesAndStopsCleanly(t *testing.T) {
	q := &fakeQueue{requeued: 3}
	pool := NewWorkerPool("pod-a", q, &fakePipelines{}, poolTestConfig(), &fakeExecutor{})

	require.NoError(t, pool.Start(context.Background()))
	// Duplicate Start is a no-op.
	require.NoError(t, pool.Start(context.Background()))

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	q.mu.Lock()
	defer q.mu.Unlock()
	assert.Zero(t, q.requeued, "startup requeue should have drained owned leases")
}

func TestPoolReaperTicks(t *testing.T) {
	pipelines := &fakePipelines{}
	pool := NewWorkerPool("pod-a", &fakeQueue{}, pipelines, poolTestConfig(), &fakeExecutor{})

	require.NoError(t, pool.Start(context.Background()))
	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	pipelines.mu.Lock()
	defer pipelines.mu.Unlock()
	assert.Greater(t, pipelines.expired, 0, "reaper should have scanned deadlines")

	health := pool.Health()
	assert.False(t, health.LastReapScan.IsZero())
}

func TestPoolHealthReportsWorkers(t *testing.T) {
	pool := NewWorkerPool("pod-a", &fakeQueue{}, &fakePipelines{}, poolTestConfig(), &fakeExecutor{})
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, "pod-a", health.PodID)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 2)
}

func TestCancelPipelineJobs(t *testing.T) {
	pool := NewWorkerPool("pod-a", &fakeQueue{}, &fakePipelines{}, poolTestConfig(), &fakeExecutor{})

	ctx1, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	ctx2, cancel2 := context.WithCancel(context.Background())
	defer cancel2()

	pool.RegisterJob("job-1", "pipe-1", cancel1)
	pool.RegisterJob("job-2", "pipe-2", cancel2)

	assert.Equal(t, 1, pool.CancelPipelineJobs("pipe-1"))
	assert.Error(t, ctx1.Err())
	assert.NoError(t, ctx2.Err())

	pool.UnregisterJob("job-1")
	assert.Equal(t, 0, pool.CancelPipelineJobs("pipe-1"))
}
