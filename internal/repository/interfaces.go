package repository

import (
	"context"
	"errors"
	"time"

	"github.com/akiyamakenta/manabiya/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByPlan(ctx context.Context, planID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	// MarkAttempt records a completion attempt: sets completed, moves the
	// status accordingly and stamps last_attempt_at.
	MarkAttempt(ctx context.Context, id string, completed bool, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type TaskResultRepo interface {
	Create(ctx context.Context, r *domain.TaskResult) error
	ListByTask(ctx context.Context, taskID string) ([]*domain.TaskResult, error)
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]*domain.TaskResult, error)
}

type LearningPlanRepo interface {
	Create(ctx context.Context, p *domain.LearningPlan) error
	GetByID(ctx context.Context, id string) (*domain.LearningPlan, error)
	// RecomputeProgress recalculates the plan's progress percentage from its
	// tasks' completion state and persists it. Returns the new percentage.
	RecomputeProgress(ctx context.Context, planID string, at time.Time) (int, error)
}
