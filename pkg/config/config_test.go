package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.Queue.MaxAttempts)
	assert.Equal(t, 5*time.Minute, cfg.Queue.LeaseTTL)
	assert.Equal(t, 60*time.Second, cfg.Queue.AgeThreshold)
	assert.Equal(t, 3, cfg.Supervisor.MaxRewrites)
	assert.Equal(t, 2, cfg.Pipeline.MaxReworkRounds)
	assert.Equal(t, 7, cfg.EventLog.ArchiveAfterDays)
	assert.Equal(t, 4096, cfg.Escalator.Capacity)
}

func TestInitializeMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default().Queue.LeaseTTL, cfg.Queue.LeaseTTL)
}

func TestInitializeMergesUserValues(t *testing.T) {
	dir := t.TempDir()
	yaml := `
queue:
  lease_ttl: 2m
  max_attempts: 5
pipeline:
  max_rework_rounds: 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "maestro.yaml"), []byte(yaml), 0644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Minute, cfg.Queue.LeaseTTL)
	assert.Equal(t, 5, cfg.Queue.MaxAttempts)
	assert.Equal(t, 4, cfg.Pipeline.MaxReworkRounds)
	// Untouched sections keep defaults.
	assert.Equal(t, 3, cfg.Supervisor.MaxRewrites)
}

func TestInitializeRejectsInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "maestro.yaml"), []byte("queue: [not: a map"), 0644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	yaml := `
escalator:
  capacity: 10
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "maestro.yaml"), []byte(yaml), 0644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("MAESTRO_TEST_DIR", "/var/lib/maestro")

	out := ExpandEnv([]byte("event_log:\n  dir: {{.MAESTRO_TEST_DIR}}/stream\n"))
	assert.Contains(t, string(out), "dir: /var/lib/maestro/stream")

	// Unset variables expand to empty, not an error.
	out = ExpandEnv([]byte("dir: {{.MAESTRO_TEST_UNSET_VAR}}"))
	assert.Equal(t, "dir: ", string(out))
}

func TestBackendsTierFor(t *testing.T) {
	cfg := DefaultBackendsConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, TierVIP, cfg.TierFor("strategist", "writer"))
	assert.Equal(t, TierVIP, cfg.TierFor("reviewer", "writer"))
	assert.Equal(t, TierBudget, cfg.TierFor("coder", "auditor"))
	assert.Equal(t, TierStandard, cfg.TierFor("coder", "writer"))
	// Stamp stage routes budget for roles without their own rule.
	assert.Equal(t, TierBudget, cfg.TierFor("researcher", "stamp"))
	// No rule at all falls back to the default tier.
	assert.Equal(t, TierStandard, cfg.TierFor("researcher", "writer"))
}

func TestBackendsValidateCatchesBadRoutes(t *testing.T) {
	cfg := DefaultBackendsConfig()
	cfg.Routes = append(cfg.Routes, RouteRule{Role: "coder", Tier: "platinum"})
	assert.Error(t, cfg.Validate())

	cfg = DefaultBackendsConfig()
	cfg.DefaultTier = "nope"
	assert.Error(t, cfg.Validate())

	cfg = DefaultBackendsConfig()
	cfg.Tiers[TierVIP].Provider = ProviderGRPC
	cfg.Tiers[TierVIP].Address = ""
	assert.Error(t, cfg.Validate())
}
