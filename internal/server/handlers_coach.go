package server

import (
	"encoding/json"
	"net/http"

	"github.com/akiyamakenta/manabiya/internal/domain"
	"github.com/akiyamakenta/manabiya/internal/planner"
)

type motivationRequest struct {
	Tasks json.RawMessage `json:"tasks"`
}

func (s *Server) handleMotivationMessage(w http.ResponseWriter, r *http.Request) {
	var req motivationRequest
	if err := decodeBody(r, &req); err != nil || len(req.Tasks) == 0 {
		writeError(w, http.StatusBadRequest, "タスクのリストが必要です")
		return
	}

	var tasks []domain.Task
	if err := json.Unmarshal(req.Tasks, &tasks); err != nil || tasks == nil {
		writeError(w, http.StatusBadRequest, "タスクのリストが必要です")
		return
	}

	message := s.coach.Motivate(r.Context(), tasks)
	writeJSON(w, http.StatusOK, message)
}

type progressUpdateRequest struct {
	DailyTask    *domain.DailyTask `json:"dailyTask"`
	IsCompleted  *bool             `json:"isCompleted"`
	UserFeedback string            `json:"userFeedback"`
	LearningGoal string            `json:"learningGoal"`
	CurrentPhase string            `json:"currentPhase"`
}

func (s *Server) handleProgressUpdate(w http.ResponseWriter, r *http.Request) {
	var req progressUpdateRequest
	if err := decodeBody(r, &req); err != nil || req.DailyTask == nil {
		writeError(w, http.StatusBadRequest, "有効なデイリータスク情報が必要です")
		return
	}
	if req.IsCompleted == nil {
		writeError(w, http.StatusBadRequest, "タスクの完了ステータス（true/false）が必要です")
		return
	}

	update := s.coach.ReviewProgress(r.Context(), planner.ProgressRequest{
		LearningGoal: domain.CoalesceStr(req.LearningGoal, req.DailyTask.Title, "学習目標"),
		CurrentPhase: domain.CoalesceStr(req.CurrentPhase, "学習フェーズ"),
		TaskTitle:    domain.CoalesceStr(req.DailyTask.Title, "不明"),
		IsCompleted:  *req.IsCompleted,
		UserFeedback: req.UserFeedback,
	})
	writeJSON(w, http.StatusOK, update)
}
