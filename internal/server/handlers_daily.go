package server

import (
	"net/http"
	"strings"

	"github.com/akiyamakenta/manabiya/internal/domain"
	"github.com/akiyamakenta/manabiya/internal/planner"
)

type dailyTaskRequest struct {
	MasterStepTitle   string                    `json:"masterStepTitle"`
	Category          string                    `json:"category"`
	Level             string                    `json:"level"`
	TimeAvailable     any                       `json:"timeAvailable"`
	PreviousResults   []domain.PreviousResult   `json:"previousResults"`
	MasterPlanDetails *domain.MasterPlanDetails `json:"masterPlanDetails"`
}

func (s *Server) handleDailyTask(w http.ResponseWriter, r *http.Request) {
	var req dailyTaskRequest
	if err := decodeBody(r, &req); err != nil || strings.TrimSpace(req.MasterStepTitle) == "" {
		writeError(w, http.StatusBadRequest, "学習ステップのタイトルが必要です")
		return
	}
	if !domain.ValidCategories[req.Category] {
		writeError(w, http.StatusBadRequest, "有効な学習カテゴリが必要です")
		return
	}
	if !domain.ValidLevels[req.Level] {
		writeError(w, http.StatusBadRequest, "有効な学習レベルが必要です")
		return
	}

	task := s.dailyTask.Generate(r.Context(), planner.DailyTaskRequest{
		MasterStepTitle:   req.MasterStepTitle,
		MasterPlanDetails: req.MasterPlanDetails,
		Category:          req.Category,
		Level:             req.Level,
		TimeAvailable:     planner.ClampTimeAvailable(req.TimeAvailable),
		PreviousResults:   req.PreviousResults,
	})
	if task.Title == "" {
		writeError(w, http.StatusInternalServerError,
			"日々のタスクの生成に失敗しました。適切なタスクが生成されませんでした。")
		return
	}
	writeJSON(w, http.StatusOK, task)
}
