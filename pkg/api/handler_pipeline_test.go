package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestroworks/maestro/pkg/eventlog"
)

func TestPipelineEventsHandler_InvalidDate(t *testing.T) {
	s := &Server{}
	e := s.buildRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pipelines/pipe-1/events?date=not-a-date", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPipelineEventsHandler_FiltersByPipeline(t *testing.T) {
	log, err := eventlog.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })

	_, err = log.Append(eventlog.Event{
		PipelineID: "pipe-1",
		FromRole:   "coder",
		EventType:  eventlog.TypeResponse,
		Content:    "done",
	})
	require.NoError(t, err)
	_, err = log.Append(eventlog.Event{
		PipelineID: "pipe-2",
		FromRole:   "qa",
		EventType:  eventlog.TypeResponse,
		Content:    "other pipeline",
	})
	require.NoError(t, err)

	s := &Server{eventLog: log}
	e := s.buildRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pipelines/pipe-1/events", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "done")
	assert.NotContains(t, rec.Body.String(), "other pipeline")
}
