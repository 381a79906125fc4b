package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/akiyamakenta/manabiya/internal/db"
	"github.com/akiyamakenta/manabiya/internal/domain"
)

const taskResultColumns = `id, user_id, task_id, completed, exercise_results, notes, created_at`

// SQLiteTaskResultRepo implements TaskResultRepo over a DBTX.
// Exercise results are stored as a JSON array in a single column.
type SQLiteTaskResultRepo struct {
	q db.DBTX
}

// NewSQLiteTaskResultRepo creates a new SQLiteTaskResultRepo.
func NewSQLiteTaskResultRepo(q db.DBTX) *SQLiteTaskResultRepo {
	return &SQLiteTaskResultRepo{q: q}
}

func (r *SQLiteTaskResultRepo) Create(ctx context.Context, result *domain.TaskResult) error {
	exercises := result.ExerciseResults
	if exercises == nil {
		exercises = []domain.ExerciseResult{}
	}
	data, err := json.Marshal(exercises)
	if err != nil {
		return fmt.Errorf("encoding exercise results: %w", err)
	}

	query := `INSERT INTO task_results (` + taskResultColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.q.ExecContext(ctx, query,
		result.ID,
		result.UserID,
		result.TaskID,
		boolToInt(result.Completed),
		string(data),
		result.Notes,
		result.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task result: %w", err)
	}
	return nil
}

func (r *SQLiteTaskResultRepo) ListByTask(ctx context.Context, taskID string) ([]*domain.TaskResult, error) {
	query := `SELECT ` + taskResultColumns + ` FROM task_results
		WHERE task_id = ? ORDER BY created_at DESC`
	return r.list(ctx, query, taskID)
}

func (r *SQLiteTaskResultRepo) ListRecentByUser(ctx context.Context, userID string, limit int) ([]*domain.TaskResult, error) {
	query := `SELECT ` + taskResultColumns + ` FROM task_results
		WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`
	return r.list(ctx, query, userID, limit)
}

func (r *SQLiteTaskResultRepo) list(ctx context.Context, query string, args ...any) ([]*domain.TaskResult, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing task results: %w", err)
	}
	defer rows.Close()

	var results []*domain.TaskResult
	for rows.Next() {
		var (
			result    domain.TaskResult
			completed int
			exercises string
			createdAt string
		)
		if err := rows.Scan(
			&result.ID, &result.UserID, &result.TaskID, &completed,
			&exercises, &result.Notes, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning task result: %w", err)
		}

		result.Completed = intToBool(completed)
		if err := json.Unmarshal([]byte(exercises), &result.ExerciseResults); err != nil {
			return nil, fmt.Errorf("decoding exercise results: %w", err)
		}
		result.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		results = append(results, &result)
	}
	return results, rows.Err()
}
