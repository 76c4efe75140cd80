package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/maestroworks/maestro/pkg/metrics"
)

// reaperState tracks reaper metrics (thread-safe).
type reaperState struct {
	mu             sync.Mutex
	lastScan       time.Time
	leasesRequeued int
	leasesFailed   int
}

// runReaper periodically expires timed-out leases and pipeline
// deadlines. All pods run this independently — operations are
// idempotent.
func (p *WorkerPool) runReaper(ctx context.Context) {
	ticker := time.NewTicker(p.config.ReaperInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.reapOnce(ctx)
		}
	}
}

// reapOnce runs a single reap pass.
func (p *WorkerPool) reapOnce(ctx context.Context) {
	now := time.Now()

	requeued, failed, err := p.jobs.ExpireLeases(ctx, now)
	if err != nil {
		slog.Error("Lease reap failed", "pod_id", p.podID, "error", err)
	} else if requeued > 0 || failed > 0 {
		metrics.LeasesReaped.WithLabelValues("requeued").Add(float64(requeued))
		metrics.LeasesReaped.WithLabelValues("failed").Add(float64(failed))
		slog.Warn("Expired leases reaped",
			"pod_id", p.podID,
			"requeued", requeued,
			"failed", failed)
	}

	expired, derr := p.pipelines.ExpireDeadlines(ctx, now)
	if derr != nil {
		slog.Error("Pipeline deadline scan failed", "pod_id", p.podID, "error", derr)
	} else if expired > 0 {
		slog.Warn("Pipelines escalated past deadline", "pod_id", p.podID, "count", expired)
	}

	p.reaper.mu.Lock()
	p.reaper.lastScan = now
	p.reaper.leasesRequeued += requeued
	p.reaper.leasesFailed += failed
	p.reaper.mu.Unlock()
}
