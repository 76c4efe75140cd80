// Maestro orchestrator server — provides the dispatch HTTP API, runs
// the queue worker pool, and drives pipelines through their role
// graph.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/maestroworks/maestro/pkg/api"
	"github.com/maestroworks/maestro/pkg/backend"
	"github.com/maestroworks/maestro/pkg/cleanup"
	"github.com/maestroworks/maestro/pkg/config"
	"github.com/maestroworks/maestro/pkg/database"
	"github.com/maestroworks/maestro/pkg/escalate"
	"github.com/maestroworks/maestro/pkg/eventlog"
	"github.com/maestroworks/maestro/pkg/orchestrator"
	"github.com/maestroworks/maestro/pkg/persona"
	"github.com/maestroworks/maestro/pkg/queue"
	"github.com/maestroworks/maestro/pkg/services"
	"github.com/maestroworks/maestro/pkg/supervisor"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting maestro",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Open the event log
	eventLog, err := eventlog.New(cfg.EventLog.Dir)
	if err != nil {
		slog.Error("Failed to open event log", "dir", cfg.EventLog.Dir, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := eventLog.Close(); err != nil {
			slog.Error("Error closing event log", "error", err)
		}
	}()

	// 4. Escalator, restored from its snapshot when one exists
	escalator, err := escalate.New(cfg.Escalator.Capacity)
	if err != nil {
		slog.Error("Failed to create escalator", "error", err)
		os.Exit(1)
	}
	restoreEscalator(escalator, cfg.Escalator.SnapshotPath)
	defer snapshotEscalator(escalator, cfg.Escalator.SnapshotPath)

	// 5. Model backends and personas
	backends, err := backend.NewRegistry(cfg.Backends)
	if err != nil {
		slog.Error("Failed to initialize backend registry", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := backends.Close(); err != nil {
			slog.Error("Error closing backend registry", "error", err)
		}
	}()
	personas := persona.NewStore(cfg.Personas.Dir)

	// 6. Services and the successor planner
	jobService := services.NewJobService(dbClient.Client, cfg.Queue, cfg.Pipeline)
	pipelineService := services.NewPipelineService(dbClient.Client, cfg.Pipeline)
	jobService.SetPlanner(orchestrator.New(cfg.Pipeline, eventLog))
	slog.Info("Services initialized")

	// 7. Supervisor and worker pool
	sup := supervisor.New(backends, personas, escalator, eventLog,
		pipelineService, supervisor.NewBackendCompactor(backends), cfg.Supervisor)

	workerPool := queue.NewWorkerPool(podID, jobService, pipelineService, cfg.Queue, sup)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Retention
	cleanupService := cleanup.NewService(cfg.Retention, cfg.EventLog, jobService, eventLog)
	cleanupService.Start(ctx)

	// 9. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, jobService, pipelineService, workerPool, eventLog)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Maestro started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop accepting requests, then drain workers.
	shutdownCtx, cancelShutdown := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", "error", err)
	}

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Worker pool shutdown timeout exceeded")
	}

	cleanupService.Stop()
	slog.Info("Maestro shut down")
}

// restoreEscalator loads a previous snapshot; absence is not an error.
func restoreEscalator(e *escalate.Escalator, path string) {
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Could not open escalator snapshot", "path", path, "error", err)
		}
		return
	}
	defer f.Close()
	if err := e.Restore(f); err != nil {
		slog.Warn("Could not restore escalator snapshot", "path", path, "error", err)
		return
	}
	slog.Info("Escalator state restored", "path", path, "signatures", e.Len())
}

// snapshotEscalator persists escalator state on shutdown, best-effort.
func snapshotEscalator(e *escalate.Escalator, path string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		slog.Warn("Could not create escalator snapshot directory", "path", path, "error", err)
		return
	}
	f, err := os.Create(path)
	if err != nil {
		slog.Warn("Could not create escalator snapshot", "path", path, "error", err)
		return
	}
	defer f.Close()
	if err := e.Snapshot(f); err != nil {
		slog.Warn("Could not write escalator snapshot", "path", path, "error", err)
		return
	}
	slog.Info("Escalator state persisted", "path", path, "signatures", e.Len())
}
