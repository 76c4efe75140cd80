package queue

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/maestroworks/maestro/ent"
	"github.com/maestroworks/maestro/pkg/config"
	"github.com/maestroworks/maestro/pkg/models"
	"github.com/maestroworks/maestro/pkg/services"
	"github.com/maestroworks/maestro/pkg/supervisor"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// workerModes is the claim order across the two queues a role serves.
var workerModes = []models.Mode{models.ModeWorker, models.ModeReviewer}

// Worker is a single queue worker that polls the role queues and runs
// claimed jobs through the executor.
type Worker struct {
	id       string
	podID    string
	jobs     JobQueue
	config   *config.QueueConfig
	executor JobExecutor
	pool     JobRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, jobs JobQueue, cfg *config.QueueConfig, executor JobExecutor, pool JobRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		jobs:         jobs,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, services.ErrNoJobsAvailable) || errors.Is(err, services.ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollInterval returns the poll interval with jitter applied, so
// workers on the same replica do not hit the queue in lockstep.
func (w *Worker) pollInterval() time.Duration {
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return w.config.PollInterval
	}
	return w.config.PollInterval + time.Duration(rand.Int64N(int64(jitter)))
}

// pollAndProcess claims the next job across all role queues and
// processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	j, err := w.claimNext(ctx)
	if err != nil {
		return err
	}
	return w.process(ctx, j)
}

// claimNext walks the (role, mode) queues in a fixed order and returns
// the first claim. The pull itself is atomic (FOR UPDATE SKIP LOCKED
// inside the job service), so concurrent workers never double-claim.
func (w *Worker) claimNext(ctx context.Context) (*ent.Job, error) {
	for _, mode := range workerModes {
		for _, role := range models.AllRoles {
			j, err := w.jobs.Pull(ctx, services.PullInput{
				Role:  role,
				Mode:  mode,
				Owner: w.podID,
			})
			if err == nil {
				return j, nil
			}
			if errors.Is(err, services.ErrNoJobsAvailable) {
				continue
			}
			return nil, err
		}
	}
	return nil, services.ErrNoJobsAvailable
}

// process runs a claimed job through the executor and records the
// outcome. Transient failures leave the lease to expire so the reaper
// retries within the attempt budget.
func (w *Worker) process(ctx context.Context, j *ent.Job) error {
	log := slog.With(
		"job_id", j.ID,
		"pipeline_id", j.PipelineID,
		"role", j.Role,
		"worker_id", w.id,
	)
	log.Info("Job claimed", "attempt", j.AttemptCount, "priority", j.Priority)

	w.setStatus(WorkerStatusWorking, j.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// Bound execution by the lease TTL: work past the deadline would be
	// rejected at push anyway.
	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.LeaseTTL)
	defer cancelJob()

	// Register for API-triggered cancellation on this pod.
	w.pool.RegisterJob(j.ID, j.PipelineID, cancelJob)
	defer w.pool.UnregisterJob(j.ID)

	out, err := w.executor.Execute(jobCtx, j)

	switch {
	case err == nil:
		w.push(services.PushInput{JobID: j.ID, Owner: w.podID, Result: out.Result}, log)
		log.Info("Job processing complete",
			"rewrites", out.Rewrites,
			"degraded", out.Degraded)
	case errors.Is(err, supervisor.ErrCancelled):
		// Cancellation is recorded by the pipeline service; nothing to
		// push. The reaper returns the lease.
		log.Info("Job abandoned after cancel request")
	case errors.Is(err, supervisor.ErrHardFail),
		errors.Is(err, supervisor.ErrAuditRejected),
		errors.Is(err, supervisor.ErrEscalationRequired):
		w.push(services.PushInput{JobID: j.ID, Owner: w.podID, Error: err.Error()}, log)
		log.Warn("Job finished with terminal failure", "error", err)
	default:
		log.Error("Job execution failed, leaving lease to expire", "error", err)
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()
	return nil
}

// push records a result, tolerating the at-least-once edge cases.
func (w *Worker) push(input services.PushInput, log *slog.Logger) {
	// The job service runs its own background-context timeout.
	_, err := w.jobs.Push(context.Background(), input)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrDuplicatePush):
		log.Info("Result already recorded, duplicate push ignored")
	case errors.Is(err, services.ErrLeaseExpired):
		log.Warn("Lease expired before push, result dropped")
	default:
		log.Error("Failed to push job result", "error", err)
	}
}

func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
