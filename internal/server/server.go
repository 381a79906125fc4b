package server

import (
	"log/slog"
	"net/http"

	"github.com/akiyamakenta/manabiya/internal/db"
	"github.com/akiyamakenta/manabiya/internal/llm"
	"github.com/akiyamakenta/manabiya/internal/planner"
)

// Server wires the planning services and the persistence layer into an
// HTTP API. Handlers are stateless; all request-scoped work goes through
// the services or a transaction.
type Server struct {
	analyzer   planner.TaskAnalyzer
	subtasks   planner.SubtaskGenerator
	masterPlan planner.MasterPlanGenerator
	dailyTask  planner.DailyTaskGenerator
	roadmap    planner.RoadmapGenerator
	microTasks planner.MicroTaskGenerator
	coach      planner.Coach

	uow    db.UnitOfWork
	client llm.CompletionClient
	logger *slog.Logger
}

// New creates a Server from a completion client and a unit of work.
func New(client llm.CompletionClient, uow db.UnitOfWork, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		analyzer:   planner.NewTaskAnalyzer(client),
		subtasks:   planner.NewSubtaskGenerator(client),
		masterPlan: planner.NewMasterPlanGenerator(client),
		dailyTask:  planner.NewDailyTaskGenerator(client),
		roadmap:    planner.NewRoadmapGenerator(client),
		microTasks: planner.NewMicroTaskGenerator(client),
		coach:      planner.NewCoach(client),
		uow:        uow,
		client:     client,
		logger:     logger,
	}
}

// Handler returns the fully wired HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/task-analyzer", s.handleTaskAnalyzer)
	mux.HandleFunc("POST /api/subtask-generator", s.handleSubtaskGenerator)
	mux.HandleFunc("POST /api/learning-master-plan", s.handleMasterPlan)
	mux.HandleFunc("POST /api/daily-task", s.handleDailyTask)
	mux.HandleFunc("POST /api/roadmap-generator", s.handleRoadmap)
	mux.HandleFunc("POST /api/micro-tasks", s.handleMicroTasks)
	mux.HandleFunc("POST /api/motivation-message", s.handleMotivationMessage)
	mux.HandleFunc("POST /api/progress-update", s.handleProgressUpdate)
	mux.HandleFunc("POST /api/task-result", s.handleTaskResult)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return withLogging(s.logger, withRecover(s.logger, mux))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"llm":    s.client.Available(r.Context()),
	})
}
