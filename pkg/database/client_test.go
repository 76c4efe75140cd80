package database_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestroworks/maestro/ent"
	"github.com/maestroworks/maestro/ent/job"
	"github.com/maestroworks/maestro/pkg/database"
	testdb "github.com/maestroworks/maestro/test/database"
)

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := database.Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestPartialIndexesExist(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	for _, name := range []string{"jobs_lease_owner_held", "jobs_leased_deadline"} {
		var count int
		err := client.DB().QueryRowContext(ctx,
			`SELECT count(*) FROM pg_indexes
			WHERE schemaname = current_schema() AND indexname = $1`, name).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "index %s should exist", name)
	}
}

func TestSuccessorDedupConstraint(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	p, err := client.Pipeline.Create().
		SetID("pipe-1").
		SetRootRequest("add retry backoff").
		Save(ctx)
	require.NoError(t, err)

	create := func(id string) error {
		_, err := client.Job.Create().
			SetID(id).
			SetPipelineID(p.ID).
			SetRole(job.RoleCoder).
			SetMode(job.ModeWorker).
			SetPayload("work").
			SetSequence(0).
			Save(ctx)
		return err
	}

	require.NoError(t, create("job-1"))

	// Same (pipeline, role, mode, sequence) must be rejected by the
	// unique index so duplicate scheduling cannot slip in.
	err = create("job-2")
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clearEnv := func(t *testing.T) {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
		t.Cleanup(func() {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
		})
	}

	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)
		cfg, err := database.LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "maestro", cfg.User)
		assert.Equal(t, "maestro", cfg.Database)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("custom values", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "admin")
		os.Setenv("DB_PASSWORD", "secret")
		os.Setenv("DB_NAME", "production")
		os.Setenv("DB_SSLMODE", "require")

		cfg, err := database.LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "require", cfg.SSLMode)
	})

	t.Run("invalid port", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DB_PORT", "invalid")

		_, err := database.LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestConfigDSN(t *testing.T) {
	cfg := database.Config{
		Host:     "localhost",
		Port:     5432,
		User:     "maestro",
		Password: "secret",
		Database: "maestro",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=maestro password=secret dbname=maestro sslmode=disable",
		cfg.DSN())
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	health, err := database.Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "local ping should be under a second")

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	err = json.Unmarshal(jsonBytes, &jsonData)
	require.NoError(t, err)

	// Durations must serialize as milliseconds, not nanoseconds.
	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.Less(t, responseTime, float64(1000000))

	waitDuration, ok := jsonData["wait_duration_ms"].(float64)
	require.True(t, ok, "wait_duration_ms should be a number")
	assert.Less(t, waitDuration, float64(1000000))
}
