package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/maestroworks/maestro/pkg/eventlog"
)

// getPipelineHandler handles GET /api/v1/pipelines/:id.
func (s *Server) getPipelineHandler(c *echo.Context) error {
	pipelineID := c.Param("id")
	if pipelineID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "pipeline id is required")
	}

	withJobs := c.QueryParam("with_jobs") == "true"
	p, err := s.pipelineService.GetPipeline(c.Request().Context(), pipelineID, withJobs)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, p)
}

// cancelPipelineHandler handles POST /api/v1/pipelines/:id/cancel.
// Marks the pipeline cancelled, cancels its pending jobs, and
// interrupts any of its jobs running on this pod. Jobs leased by other
// pods observe the cancel flag between supervisor stages.
func (s *Server) cancelPipelineHandler(c *echo.Context) error {
	pipelineID := c.Param("id")
	if pipelineID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "pipeline id is required")
	}

	if err := s.pipelineService.CancelPipeline(c.Request().Context(), pipelineID); err != nil {
		return mapServiceError(err)
	}

	interrupted := 0
	if s.workerPool != nil {
		interrupted = s.workerPool.CancelPipelineJobs(pipelineID)
	}

	return c.JSON(http.StatusOK, &CancelResponse{
		PipelineID:  pipelineID,
		Message:     "cancellation requested",
		Interrupted: interrupted,
	})
}

// pipelineEventsHandler handles GET /api/v1/pipelines/:id/events.
// Reads one UTC day file from the event log, filtered to the pipeline.
func (s *Server) pipelineEventsHandler(c *echo.Context) error {
	pipelineID := c.Param("id")
	if pipelineID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "pipeline id is required")
	}
	day := c.QueryParam("date")
	if day == "" {
		day = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", day); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date: must be YYYY-MM-DD")
	}

	if s.eventLog == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "event log not available")
	}

	events, err := s.eventLog.ReadDay(day)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to read event log")
	}

	filtered := make([]eventlog.Event, 0, len(events))
	for _, ev := range events {
		if ev.PipelineID == pipelineID {
			filtered = append(filtered, ev)
		}
	}
	return c.JSON(http.StatusOK, filtered)
}
