package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestroworks/maestro/pkg/config"
	"github.com/maestroworks/maestro/pkg/services"
	testdb "github.com/maestroworks/maestro/test/database"
)

func TestCreateJobHandlerReturnsIdentifiers(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	jobs := services.NewJobService(dbClient.Client, config.DefaultQueueConfig(), config.DefaultPipelineConfig())
	s := &Server{jobService: jobs}

	c, rec := newTestContext(http.MethodPost, "/api/v1/jobs/create",
		`{"role": "coder", "payload": "Add retry backoff to the queue client"}`)
	require.NoError(t, s.createJobHandler(c))

	// Submitters get the identifiers back and poll for progress; the
	// full job row is not echoed.
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp CreateJobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.JobID)
	assert.NotEmpty(t, resp.PipelineID)
}
