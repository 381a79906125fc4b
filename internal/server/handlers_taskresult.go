package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/akiyamakenta/manabiya/internal/db"
	"github.com/akiyamakenta/manabiya/internal/domain"
	"github.com/akiyamakenta/manabiya/internal/repository"
)

type taskResultRequest struct {
	UserID          string                  `json:"userId"`
	TaskID          string                  `json:"taskId"`
	Completed       *bool                   `json:"completed"`
	ExerciseResults []domain.ExerciseResult `json:"exerciseResults"`
	Notes           string                  `json:"notes"`
}

type taskResultResponse struct {
	Success    bool               `json:"success"`
	TaskResult *domain.TaskResult `json:"taskResult"`
	Message    string             `json:"message"`
}

// handleTaskResult records one completion attempt. The result insert, the
// task status update and the plan progress recompute commit atomically.
func (s *Server) handleTaskResult(w http.ResponseWriter, r *http.Request) {
	var req taskResultRequest
	if err := decodeBody(r, &req); err != nil || req.UserID == "" || req.TaskID == "" || req.Completed == nil {
		writeError(w, http.StatusBadRequest, "必須パラメータが不足しています（userId, taskId, completed）")
		return
	}

	if req.ExerciseResults == nil {
		req.ExerciseResults = []domain.ExerciseResult{}
	}

	now := time.Now().UTC()
	result := &domain.TaskResult{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		TaskID:          req.TaskID,
		Completed:       *req.Completed,
		ExerciseResults: req.ExerciseResults,
		Notes:           req.Notes,
		CreatedAt:       now,
	}

	err := s.uow.WithinTx(r.Context(), func(ctx context.Context, tx db.DBTX) error {
		tasks := repository.NewSQLiteTaskRepo(tx)
		results := repository.NewSQLiteTaskResultRepo(tx)
		plans := repository.NewSQLiteLearningPlanRepo(tx)

		task, err := tasks.GetByID(ctx, req.TaskID)
		if err != nil {
			return err
		}
		if err := results.Create(ctx, result); err != nil {
			return err
		}
		if err := tasks.MarkAttempt(ctx, task.ID, result.Completed, now); err != nil {
			return err
		}
		if task.LearningPlanID != "" {
			if _, err := plans.RecomputeProgress(ctx, task.LearningPlanID, now); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "指定されたタスクが見つかりません")
		return
	}
	if err != nil {
		s.logger.Error("saving task result", "taskId", req.TaskID, "error", err)
		writeError(w, http.StatusInternalServerError, "サーバーエラーが発生しました")
		return
	}

	writeJSON(w, http.StatusOK, taskResultResponse{
		Success:    true,
		TaskResult: result,
		Message:    "結果が正常に保存されました",
	})
}
