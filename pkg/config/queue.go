package config

import (
	"fmt"
	"time"
)

// QueueConfig contains job queue and worker pool configuration.
// These values control how jobs are pulled, leased, and reaped.
type QueueConfig struct {
	// WorkerCount is the number of in-process worker goroutines per
	// replica/pod. Each worker independently pulls and executes jobs.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentJobs is the global limit of concurrently leased jobs
	// across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentJobs int `yaml:"max_concurrent_jobs"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// LeaseTTL is how long a pulled job stays leased before the reaper
	// returns it to pending.
	LeaseTTL time.Duration `yaml:"lease_ttl"`

	// MaxAttempts is the number of lease cycles a job gets before it is
	// failed and its pipeline escalated.
	MaxAttempts int `yaml:"max_attempts"`

	// AgeThreshold is the pending time after which a job's effective
	// priority rises one tier (starvation avoidance).
	AgeThreshold time.Duration `yaml:"age_threshold"`

	// ReaperInterval is how often expired leases and pipeline deadlines
	// are swept.
	ReaperInterval time.Duration `yaml:"reaper_interval"`

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentJobs:       5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		LeaseTTL:                5 * time.Minute,
		MaxAttempts:             3,
		AgeThreshold:            60 * time.Second,
		ReaperInterval:          30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Minute,
	}
}

// Validate checks the queue section.
func (c *QueueConfig) Validate() error {
	if c.WorkerCount < 0 {
		return fmt.Errorf("worker_count must be >= 0, got %d", c.WorkerCount)
	}
	if c.LeaseTTL <= 0 {
		return fmt.Errorf("lease_ttl must be positive, got %v", c.LeaseTTL)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1, got %d", c.MaxAttempts)
	}
	if c.AgeThreshold <= 0 {
		return fmt.Errorf("age_threshold must be positive, got %v", c.AgeThreshold)
	}
	if c.ReaperInterval <= 0 {
		return fmt.Errorf("reaper_interval must be positive, got %v", c.ReaperInterval)
	}
	return nil
}
