// Package metrics defines the Prometheus collectors exported on
// /metrics. Collectors are registered on the default registry via
// promauto so callers just import and increment.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JobsCreated counts jobs accepted through /jobs/create and the
	// orchestrator's successor planning.
	JobsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maestro_jobs_created_total",
		Help: "Jobs created, by role.",
	}, []string{"role"})

	// JobsPulled counts successful lease claims.
	JobsPulled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maestro_jobs_pulled_total",
		Help: "Jobs claimed from the queue, by role.",
	}, []string{"role"})

	// JobsPushed counts push attempts by outcome: succeeded, failed,
	// duplicate, lease_expired, contract_violation.
	JobsPushed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maestro_jobs_pushed_total",
		Help: "Job result pushes, by outcome.",
	}, []string{"outcome"})

	// LeasesReaped counts leases expired by the reaper, by disposition:
	// requeued or failed.
	LeasesReaped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maestro_leases_reaped_total",
		Help: "Expired leases processed by the reaper, by disposition.",
	}, []string{"disposition"})

	// BackendCallDuration observes model call latency per tier and stage.
	BackendCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "maestro_backend_call_seconds",
		Help:    "Model backend call latency.",
		Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
	}, []string{"tier", "stage"})

	// EscalationsOrdered counts escalator verdicts, by action:
	// self_repair, role_switch, hard_fail.
	EscalationsOrdered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maestro_escalations_total",
		Help: "Escalation ladder actions ordered, by action.",
	}, []string{"action"})
)
