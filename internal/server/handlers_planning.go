package server

import (
	"net/http"
	"strings"

	"github.com/akiyamakenta/manabiya/internal/planner"
)

type taskAnalyzerRequest struct {
	TaskText string `json:"taskText"`
}

func (s *Server) handleTaskAnalyzer(w http.ResponseWriter, r *http.Request) {
	var req taskAnalyzerRequest
	if err := decodeBody(r, &req); err != nil || strings.TrimSpace(req.TaskText) == "" {
		writeError(w, http.StatusBadRequest, "タスクテキストが必要です")
		return
	}

	details := s.analyzer.Analyze(r.Context(), req.TaskText)
	writeJSON(w, http.StatusOK, details)
}

type subtaskRequest struct {
	TaskTitle       string            `json:"taskTitle"`
	TaskDescription string            `json:"taskDescription"`
	AdditionalInfo  map[string]string `json:"additionalInfo"`
}

func (s *Server) handleSubtaskGenerator(w http.ResponseWriter, r *http.Request) {
	var req subtaskRequest
	if err := decodeBody(r, &req); err != nil || strings.TrimSpace(req.TaskTitle) == "" {
		writeError(w, http.StatusBadRequest, "タスクタイトルが必要です")
		return
	}

	subtasks := s.subtasks.Generate(r.Context(), req.TaskTitle, req.TaskDescription, req.AdditionalInfo)
	if len(subtasks) == 0 {
		writeError(w, http.StatusInternalServerError,
			"サブタスクの生成に失敗しました。適切なタスクが生成されませんでした。")
		return
	}
	writeJSON(w, http.StatusOK, subtasks)
}

type masterPlanRequest struct {
	TaskTitle       string            `json:"taskTitle"`
	TaskDescription string            `json:"taskDescription"`
	DueDate         string            `json:"dueDate"`
	AdditionalInfo  map[string]string `json:"additionalInfo"`
}

func (s *Server) handleMasterPlan(w http.ResponseWriter, r *http.Request) {
	var req masterPlanRequest
	if err := decodeBody(r, &req); err != nil || strings.TrimSpace(req.TaskTitle) == "" {
		writeError(w, http.StatusBadRequest, "学習目標のタイトルが必要です")
		return
	}

	dueDate := planner.ParseDueDate(req.DueDate)
	plan := s.masterPlan.Generate(r.Context(), req.TaskTitle, req.TaskDescription, dueDate, req.AdditionalInfo)
	if len(plan.Plan) == 0 {
		writeError(w, http.StatusInternalServerError,
			"マスタープランの生成に失敗しました。適切なプランが生成されませんでした。")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}
