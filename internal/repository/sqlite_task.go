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

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, title, description, due_date, priority, status,
		estimated_time, parent_task_id, completed, last_attempt_at,
		learning_plan_id, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo over a DBTX, so the same code serves
// both direct and transactional access.
type SQLiteTaskRepo struct {
	q db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(q db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{q: q}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		nullableTimeToString(t.DueDate, dateLayout),
		string(t.Priority),
		string(t.Status),
		t.EstimatedTime,
		nullableString(t.ParentTaskID),
		boolToInt(t.Completed),
		nullableTimeToString(t.LastAttemptAt, time.RFC3339),
		nullableString(t.LearningPlanID),
		t.CreatedAt.UTC().Format(time.RFC3339),
		t.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return r.scanTask(r.q.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTaskRepo) ListByPlan(ctx context.Context, planID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE learning_plan_id = ? ORDER BY created_at`
	rows, err := r.q.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by plan: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET
		title = ?, description = ?, due_date = ?, priority = ?, status = ?,
		estimated_time = ?, parent_task_id = ?, completed = ?, last_attempt_at = ?,
		learning_plan_id = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.q.ExecContext(ctx, query,
		t.Title,
		t.Description,
		nullableTimeToString(t.DueDate, dateLayout),
		string(t.Priority),
		string(t.Status),
		t.EstimatedTime,
		nullableString(t.ParentTaskID),
		boolToInt(t.Completed),
		nullableTimeToString(t.LastAttemptAt, time.RFC3339),
		nullableString(t.LearningPlanID),
		t.UpdatedAt.UTC().Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireRowAffected(res)
}

func (r *SQLiteTaskRepo) MarkAttempt(ctx context.Context, id string, completed bool, at time.Time) error {
	status := domain.TaskInProgress
	if completed {
		status = domain.TaskCompleted
	}
	query := `UPDATE tasks SET
		completed = ?, status = ?, last_attempt_at = ?, updated_at = ?
		WHERE id = ?`
	stamp := at.UTC().Format(time.RFC3339)
	res, err := r.q.ExecContext(ctx, query, boolToInt(completed), string(status), stamp, stamp, id)
	if err != nil {
		return fmt.Errorf("marking task attempt: %w", err)
	}
	return requireRowAffected(res)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireRowAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteTaskRepo) scanTask(row rowScanner) (*domain.Task, error) {
	var (
		t             domain.Task
		dueDate       sql.NullString
		priority      string
		status        string
		parentID      sql.NullString
		completed     int
		lastAttemptAt sql.NullString
		planID        sql.NullString
		createdAt     string
		updatedAt     string
	)
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &dueDate, &priority, &status,
		&t.EstimatedTime, &parentID, &completed, &lastAttemptAt,
		&planID, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.DueDate = parseNullableTime(dueDate, dateLayout)
	t.Priority = domain.Priority(priority)
	t.Status = domain.TaskStatus(status)
	t.ParentTaskID = parentID.String
	t.Completed = intToBool(completed)
	t.LastAttemptAt = parseNullableTime(lastAttemptAt, time.RFC3339)
	t.LearningPlanID = planID.String
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &t, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
