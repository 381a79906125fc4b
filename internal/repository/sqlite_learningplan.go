package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akiyamakenta/manabiya/internal/db"
	"github.com/akiyamakenta/manabiya/internal/domain"
)

// SQLiteLearningPlanRepo implements LearningPlanRepo over a DBTX.
type SQLiteLearningPlanRepo struct {
	q db.DBTX
}

// NewSQLiteLearningPlanRepo creates a new SQLiteLearningPlanRepo.
func NewSQLiteLearningPlanRepo(q db.DBTX) *SQLiteLearningPlanRepo {
	return &SQLiteLearningPlanRepo{q: q}
}

func (r *SQLiteLearningPlanRepo) Create(ctx context.Context, p *domain.LearningPlan) error {
	query := `INSERT INTO learning_plans (id, title, progress, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		p.ID,
		p.Title,
		p.Progress,
		boolToInt(p.Completed),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting learning plan: %w", err)
	}
	return nil
}

func (r *SQLiteLearningPlanRepo) GetByID(ctx context.Context, id string) (*domain.LearningPlan, error) {
	query := `SELECT id, title, progress, completed, created_at, updated_at
		FROM learning_plans WHERE id = ?`

	var (
		p         domain.LearningPlan
		completed int
		createdAt string
		updatedAt string
	)
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Progress, &completed, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning learning plan: %w", err)
	}

	p.Completed = intToBool(completed)
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &p, nil
}

// RecomputeProgress derives the plan's progress percentage from its tasks.
// The percentage rounds half-up; a plan reaching 100% is marked completed.
func (r *SQLiteLearningPlanRepo) RecomputeProgress(ctx context.Context, planID string, at time.Time) (int, error) {
	var total, done int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(completed), 0) FROM tasks WHERE learning_plan_id = ?`,
		planID,
	).Scan(&total, &done)
	if err != nil {
		return 0, fmt.Errorf("counting plan tasks: %w", err)
	}

	progress := 0
	if total > 0 {
		progress = (done*100 + total/2) / total
	}

	res, err := r.q.ExecContext(ctx,
		`UPDATE learning_plans SET progress = ?, completed = ?, updated_at = ? WHERE id = ?`,
		progress,
		boolToInt(progress == 100),
		at.UTC().Format(time.RFC3339),
		planID,
	)
	if err != nil {
		return 0, fmt.Errorf("updating plan progress: %w", err)
	}
	if err := requireRowAffected(res); err != nil {
		return 0, err
	}
	return progress, nil
}
