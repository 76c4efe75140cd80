package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/maestroworks/maestro/pkg/config"
)

// jobHandle tracks an in-flight job for API-triggered cancellation.
type jobHandle struct {
	pipelineID string
	cancel     context.CancelFunc
}

// WorkerPool manages a pool of queue workers plus the lease reaper.
type WorkerPool struct {
	podID     string
	jobs      JobQueue
	pipelines PipelineStore
	config    *config.QueueConfig
	executor  JobExecutor
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Job cancel registry: job_id → handle
	activeJobs map[string]jobHandle
	mu         sync.RWMutex
	started    bool

	// Reaper state
	reaper reaperState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, jobs JobQueue, pipelines PipelineStore, cfg *config.QueueConfig, executor JobExecutor) *WorkerPool {
	return &WorkerPool{
		podID:      podID,
		jobs:       jobs,
		pipelines:  pipelines,
		config:     cfg,
		executor:   executor,
		workers:    make([]*Worker, 0, cfg.WorkerCount),
		stopCh:     make(chan struct{}),
		activeJobs: make(map[string]jobHandle),
	}
}

// Start requeues leases left over from a previous run of this pod,
// spawns the worker goroutines, and starts the reaper. It is safe to
// call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	// A crashed replica's leases would otherwise sit until the TTL.
	requeued, err := p.jobs.RequeueOwnedLeases(ctx, p.podID)
	if err != nil {
		slog.Error("Failed to requeue leases from previous run", "pod_id", p.podID, "error", err)
	} else if requeued > 0 {
		slog.Info("Requeued leases from previous run", "pod_id", p.podID, "count", requeued)
	}

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.jobs, p.config, p.executor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runReaper(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current jobs before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveJobIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active jobs to complete",
			"count", len(active),
			"job_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterJob stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterJob(jobID, pipelineID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeJobs[jobID] = jobHandle{pipelineID: pipelineID, cancel: cancel}
}

// UnregisterJob removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterJob(jobID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeJobs, jobID)
}

// CancelPipelineJobs triggers context cancellation for every in-flight
// job of a pipeline running on this pod. Returns the number of jobs
// interrupted. Jobs leased by other pods notice via the pipeline's
// cancel_requested flag instead.
func (p *WorkerPool) CancelPipelineJobs(pipelineID string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	n := 0
	for _, h := range p.activeJobs {
		if h.pipelineID == pipelineID {
			h.cancel()
			n++
		}
	}
	return n
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	status, errQ := p.jobs.Status(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue status for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	queueDepth, leased := 0, 0
	if status != nil {
		leased = status.CountsByState["leased"]
		for _, n := range status.PendingByRole {
			queueDepth += n
		}
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status: unreachable queue means not healthy.
	dbHealthy := errQ == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.reaper.mu.Lock()
	lastScan := p.reaper.lastScan
	requeued := p.reaper.leasesRequeued
	failed := p.reaper.leasesFailed
	p.reaper.mu.Unlock()

	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue status query failed: %v", errQ)
	}

	return &PoolHealth{
		IsHealthy:      isHealthy,
		DBReachable:    dbHealthy,
		DBError:        dbError,
		PodID:          p.podID,
		ActiveWorkers:  activeWorkers,
		TotalWorkers:   len(p.workers),
		LeasedJobs:     leased,
		MaxConcurrent:  p.config.MaxConcurrentJobs,
		QueueDepth:     queueDepth,
		WorkerStats:    workerStats,
		LastReapScan:   lastScan,
		LeasesRequeued: requeued,
		LeasesFailed:   failed,
	}
}

// getActiveJobIDs returns IDs of currently processing jobs (for logging).
func (p *WorkerPool) getActiveJobIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	jobs := make([]string, 0, len(p.activeJobs))
	for id := range p.activeJobs {
		jobs = append(jobs, id)
	}
	return jobs
}
