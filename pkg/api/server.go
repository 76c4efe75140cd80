// Package api exposes the dispatch HTTP surface: job pull/push/create,
// queue status, pipeline control, health, and metrics.
package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/maestroworks/maestro/pkg/config"
	"github.com/maestroworks/maestro/pkg/database"
	"github.com/maestroworks/maestro/pkg/eventlog"
	"github.com/maestroworks/maestro/pkg/queue"
	"github.com/maestroworks/maestro/pkg/services"
)

// Server wires the service layer to the HTTP routes.
type Server struct {
	cfg             *config.Config
	dbClient        *database.Client
	jobService      *services.JobService
	pipelineService *services.PipelineService
	workerPool      *queue.WorkerPool
	eventLog        *eventlog.Log

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the HTTP server. workerPool and eventLog may be
// nil (push-only replicas without an in-process pool).
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	jobService *services.JobService,
	pipelineService *services.PipelineService,
	workerPool *queue.WorkerPool,
	eventLog *eventlog.Log,
) *Server {
	s := &Server{
		cfg:             cfg,
		dbClient:        dbClient,
		jobService:      jobService,
		pipelineService: pipelineService,
		workerPool:      workerPool,
		eventLog:        eventLog,
	}
	s.echo = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *echo.Echo {
	e := echo.New()
	e.Use(securityHeaders())
	e.Use(requestLogger())

	e.GET("/healthz", s.healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")
	v1.GET("/jobs/pull", s.pullJobHandler)
	v1.POST("/jobs/push", s.pushJobHandler)
	v1.POST("/jobs/create", s.createJobHandler)
	v1.GET("/jobs/status", s.queueStatusHandler)
	v1.GET("/jobs/list", s.listJobsHandler)
	v1.GET("/jobs/:id", s.getJobHandler)
	v1.GET("/pipelines/:id", s.getPipelineHandler)
	v1.POST("/pipelines/:id/cancel", s.cancelPipelineHandler)
	v1.GET("/pipelines/:id/events", s.pipelineEventsHandler)

	return e
}

// Start runs the server until Shutdown is called. Blocks.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{Addr: addr, Handler: s.echo}
	return s.http.ListenAndServe()
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
