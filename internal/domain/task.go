package domain

import "time"

// Task is a persisted learning task. A task with a ParentTaskID is a subtask
// and must reference an existing parent; root tasks have no parent.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	DueDate        *time.Time `json:"dueDate"`
	Priority       Priority   `json:"priority"`
	Status         TaskStatus `json:"status"`
	EstimatedTime  int        `json:"estimatedTime,omitempty"` // minutes
	ParentTaskID   string     `json:"parentTaskId,omitempty"`
	Completed      bool       `json:"completed"`
	LastAttemptAt  *time.Time `json:"lastAttemptAt,omitempty"`
	LearningPlanID string     `json:"learningPlanId,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// TaskDetails is the structured result of analyzing free-form goal text.
type TaskDetails struct {
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	DueDate            *time.Time `json:"dueDate"`
	Priority           Priority   `json:"priority"`
	EstimatedTime      int        `json:"estimatedTime"` // minutes
	NeedsMoreInfo      bool       `json:"needsMoreInfo"`
	Questions          []string   `json:"questions"`
	Category           Category   `json:"category"`
	Level              Level      `json:"level"`
	DailyTimeAvailable int        `json:"dailyTimeAvailable"` // minutes per day
}

// Subtask is a generated draft subtask, not yet persisted.
type Subtask struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DueDate       time.Time `json:"dueDate"`
	Priority      Priority  `json:"priority"`
	EstimatedTime int       `json:"estimatedTime"` // minutes
}

// ExerciseResult records the outcome of one exercise attempt.
type ExerciseResult struct {
	Question string `json:"question"`
	Correct  bool   `json:"correct"`
	Answer   string `json:"answer,omitempty"`
}

// TaskResult records one completion attempt of a task by a user.
type TaskResult struct {
	ID              string           `json:"id"`
	UserID          string           `json:"userId"`
	TaskID          string           `json:"taskId"`
	Completed       bool             `json:"completed"`
	ExerciseResults []ExerciseResult `json:"exerciseResults"`
	Notes           string           `json:"notes"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// LearningPlan tracks overall progress across the tasks that share its id.
type LearningPlan struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Progress  int       `json:"progress"` // 0-100
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
