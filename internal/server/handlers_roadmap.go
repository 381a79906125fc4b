package server

import (
	"net/http"
	"strings"

	"github.com/akiyamakenta/manabiya/internal/domain"
	"github.com/akiyamakenta/manabiya/internal/planner"
)

type roadmapRequest struct {
	Goal        string   `json:"goal"`
	Timeframe   string   `json:"timeframe"`
	UserLevel   string   `json:"userLevel"`
	Preferences []string `json:"preferences"`
}

func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	var req roadmapRequest
	if err := decodeBody(r, &req); err != nil || strings.TrimSpace(req.Goal) == "" {
		writeError(w, http.StatusBadRequest, "学習目標または目的が必要です")
		return
	}

	roadmap := s.roadmap.Generate(r.Context(), planner.RoadmapRequest{
		Goal:        req.Goal,
		Timeframe:   req.Timeframe,
		UserLevel:   req.UserLevel,
		Preferences: req.Preferences,
	})
	if len(roadmap.Nodes) == 0 {
		writeError(w, http.StatusInternalServerError,
			"ロードマップの生成に失敗しました。適切なパスが生成されませんでした。")
		return
	}
	writeJSON(w, http.StatusOK, roadmap)
}

type microTaskRequest struct {
	Node  *domain.RoadmapNode `json:"node"`
	Count any                 `json:"count"`
}

func (s *Server) handleMicroTasks(w http.ResponseWriter, r *http.Request) {
	var req microTaskRequest
	if err := decodeBody(r, &req); err != nil || req.Node == nil {
		writeError(w, http.StatusBadRequest, "有効なロードマップノードが必要です")
		return
	}

	count := 0
	if n, ok := req.Count.(float64); ok && n > 0 {
		count = int(n)
	}

	tasks := s.microTasks.Generate(r.Context(), *req.Node, count)
	if len(tasks) == 0 {
		writeError(w, http.StatusInternalServerError,
			"小タスクの生成に失敗しました。有効なタスクが生成されませんでした。")
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}
