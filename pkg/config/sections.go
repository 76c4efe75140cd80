package config

import (
	"fmt"
	"time"
)

// SupervisorConfig controls the Write -> Audit -> Stamp execution loop.
type SupervisorConfig struct {
	// MaxRewrites is the number of audit-driven rewrite attempts before
	// the job result carries a degraded marker.
	MaxRewrites int `yaml:"max_rewrites"`

	// BackendTimeout bounds a single backend call.
	BackendTimeout time.Duration `yaml:"backend_timeout"`

	// CompactTargetRatio is the fraction of the payload kept by the
	// compactor on context overflow.
	CompactTargetRatio float64 `yaml:"compact_target_ratio"`
}

func DefaultSupervisorConfig() *SupervisorConfig {
	return &SupervisorConfig{
		MaxRewrites:        3,
		BackendTimeout:     5 * time.Minute,
		CompactTargetRatio: 0.5,
	}
}

func (c *SupervisorConfig) Validate() error {
	if c.MaxRewrites < 0 {
		return fmt.Errorf("max_rewrites must be >= 0, got %d", c.MaxRewrites)
	}
	if c.BackendTimeout <= 0 {
		return fmt.Errorf("backend_timeout must be positive, got %v", c.BackendTimeout)
	}
	if c.CompactTargetRatio <= 0 || c.CompactTargetRatio >= 1 {
		return fmt.Errorf("compact_target_ratio must be in (0, 1), got %g", c.CompactTargetRatio)
	}
	return nil
}

// PipelineConfig controls orchestrator routing limits.
type PipelineConfig struct {
	// MaxReworkRounds is the number of revise round-trips per
	// (pipeline, role) pair before the pipeline is blocked.
	MaxReworkRounds int `yaml:"max_rework_rounds"`

	// DefaultDeadline, when positive, is applied to new pipelines that
	// do not request one.
	DefaultDeadline time.Duration `yaml:"default_deadline"`
}

func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		MaxReworkRounds: 2,
		DefaultDeadline: 0,
	}
}

func (c *PipelineConfig) Validate() error {
	if c.MaxReworkRounds < 0 {
		return fmt.Errorf("max_rework_rounds must be >= 0, got %d", c.MaxReworkRounds)
	}
	if c.DefaultDeadline < 0 {
		return fmt.Errorf("default_deadline must be >= 0, got %v", c.DefaultDeadline)
	}
	return nil
}

// EventLogConfig controls the append-only event stream on disk.
type EventLogConfig struct {
	// Dir is the directory holding day files.
	Dir string `yaml:"dir"`

	// ArchiveAfterDays moves day files older than this into the archive
	// subdirectory.
	ArchiveAfterDays int `yaml:"archive_after_days"`
}

func DefaultEventLogConfig() *EventLogConfig {
	return &EventLogConfig{
		Dir:              "events/stream",
		ArchiveAfterDays: 7,
	}
}

func (c *EventLogConfig) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("dir must not be empty")
	}
	if c.ArchiveAfterDays < 1 {
		return fmt.Errorf("archive_after_days must be >= 1, got %d", c.ArchiveAfterDays)
	}
	return nil
}

// PersonaConfig points at the persona prompt bundles.
type PersonaConfig struct {
	// Dir is the directory containing one <role>.md file per role.
	Dir string `yaml:"dir"`
}

func DefaultPersonaConfig() *PersonaConfig {
	return &PersonaConfig{Dir: "personas"}
}

func (c *PersonaConfig) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("dir must not be empty")
	}
	return nil
}

// EscalatorConfig controls the failure-signature tracker.
type EscalatorConfig struct {
	// Capacity is the LRU size for failure signatures.
	Capacity int `yaml:"capacity"`

	// SnapshotPath, when set, is where escalator state is persisted on
	// shutdown and restored on startup. Best effort.
	SnapshotPath string `yaml:"snapshot_path"`
}

func DefaultEscalatorConfig() *EscalatorConfig {
	return &EscalatorConfig{
		Capacity:     4096,
		SnapshotPath: "events/escalator.json",
	}
}

func (c *EscalatorConfig) Validate() error {
	if c.Capacity < 4096 {
		return fmt.Errorf("capacity must be >= 4096, got %d", c.Capacity)
	}
	return nil
}

// RetentionConfig controls background cleanup of old data.
type RetentionConfig struct {
	// CleanupInterval is how often the cleanup service runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// JobTTL is how long terminal jobs are kept before deletion.
	JobTTL time.Duration `yaml:"job_ttl"`
}

func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		CleanupInterval: 6 * time.Hour,
		JobTTL:          30 * 24 * time.Hour,
	}
}

func (c *RetentionConfig) Validate() error {
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be positive, got %v", c.CleanupInterval)
	}
	if c.JobTTL <= 0 {
		return fmt.Errorf("job_ttl must be positive, got %v", c.JobTTL)
	}
	return nil
}
