package api

import (
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/maestroworks/maestro/pkg/metrics"
	"github.com/maestroworks/maestro/pkg/models"
	"github.com/maestroworks/maestro/pkg/services"
)

// pullJobHandler handles GET /api/v1/jobs/pull.
// Claims the next pending job for a (role, mode) queue; 204 when the
// queue is empty or the leased-job limit is reached.
func (s *Server) pullJobHandler(c *echo.Context) error {
	role := c.QueryParam("role")
	if role == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "role query parameter is required")
	}
	owner := c.QueryParam("owner")
	if owner == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "owner query parameter is required")
	}

	j, err := s.jobService.Pull(c.Request().Context(), services.PullInput{
		Role:  models.Role(role),
		Mode:  models.Mode(c.QueryParam("mode")),
		Owner: owner,
	})
	if err != nil {
		if errors.Is(err, services.ErrNoJobsAvailable) || errors.Is(err, services.ErrAtCapacity) {
			return c.NoContent(http.StatusNoContent)
		}
		return mapServiceError(err)
	}

	metrics.JobsPulled.WithLabelValues(string(j.Role)).Inc()
	return c.JSON(http.StatusOK, j)
}

// pushJobHandler handles POST /api/v1/jobs/push.
// Records a leased job's result and returns the successors scheduled
// in the same transaction. Duplicate pushes return 409 with the
// original successors so at-least-once workers converge.
func (s *Server) pushJobHandler(c *echo.Context) error {
	var req PushJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.JobID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "job_id is required")
	}
	if req.Result == "" && req.Error == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "result or error is required")
	}

	outcome, err := s.jobService.Push(c.Request().Context(), services.PushInput{
		JobID:  req.JobID,
		Owner:  req.Owner,
		Result: req.Result,
		Error:  req.Error,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicatePush) {
			metrics.JobsPushed.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusConflict, &PushResponse{
				Job:      outcome.Job,
				NextJobs: outcome.NextJobs,
				Code:     "DUPLICATE_PUSH",
			})
		}
		if errors.Is(err, services.ErrLeaseExpired) {
			metrics.JobsPushed.WithLabelValues("lease_expired").Inc()
		} else if errors.Is(err, services.ErrContractViolation) {
			metrics.JobsPushed.WithLabelValues("contract_violation").Inc()
		}
		return mapServiceError(err)
	}

	if req.Error != "" {
		metrics.JobsPushed.WithLabelValues("failed").Inc()
	} else {
		metrics.JobsPushed.WithLabelValues("succeeded").Inc()
	}
	return c.JSON(http.StatusOK, &PushResponse{Job: outcome.Job, NextJobs: outcome.NextJobs})
}

// createJobHandler handles POST /api/v1/jobs/create.
func (s *Server) createJobHandler(c *echo.Context) error {
	var req CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Payload == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "payload is required")
	}

	j, err := s.jobService.CreateJob(c.Request().Context(), services.CreateJobInput{
		PipelineID:  req.PipelineID,
		ParentJobID: req.ParentJobID,
		Role:        models.Role(req.Role),
		Mode:        models.Mode(req.Mode),
		Payload:     req.Payload,
		Context:     req.Context,
		Priority:    models.Priority(req.Priority),
		Sequence:    req.Sequence,
		SessionID:   req.SessionID,
	})
	if err != nil {
		return mapServiceError(err)
	}

	metrics.JobsCreated.WithLabelValues(string(j.Role)).Inc()
	return c.JSON(http.StatusOK, &CreateJobResponse{JobID: j.ID, PipelineID: j.PipelineID})
}

// queueStatusHandler handles GET /api/v1/jobs/status.
func (s *Server) queueStatusHandler(c *echo.Context) error {
	status, err := s.jobService.Status(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	if s.eventLog != nil {
		status.CorruptLogLines = s.eventLog.CorruptLines()
	}
	return c.JSON(http.StatusOK, status)
}

// listJobsHandler handles GET /api/v1/jobs/list.
func (s *Server) listJobsHandler(c *echo.Context) error {
	pipelineID := c.QueryParam("pipeline_id")
	if pipelineID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "pipeline_id query parameter is required")
	}

	jobs, err := s.jobService.ListJobs(c.Request().Context(), pipelineID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, jobs)
}

// getJobHandler handles GET /api/v1/jobs/:id.
func (s *Server) getJobHandler(c *echo.Context) error {
	jobID := c.Param("id")
	if jobID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "job id is required")
	}

	j, err := s.jobService.GetJob(c.Request().Context(), jobID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, j)
}
