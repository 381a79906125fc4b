package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	TaskAnalyze    TaskType = "analyze"
	TaskSubtask    TaskType = "subtask"
	TaskMasterPlan TaskType = "master_plan"
	TaskDailyTask  TaskType = "daily_task"
	TaskRoadmap    TaskType = "roadmap"
	TaskMicroTask  TaskType = "micro_task"
	TaskMotivation TaskType = "motivation"
	TaskProgress   TaskType = "progress"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the completion subsystem.
type Config struct {
	Endpoint   string
	APIKey     string
	Model      string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. Extraction and
// plan-shaped tasks run cool; coaching tasks run warmer.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://api.openai.com/v1",
		Model:      "gpt-4o",
		TimeoutMs:  180000,
		MaxRetries: 0,
		LogCalls:   false,
		Tasks: map[TaskType]TaskConfig{
			TaskAnalyze:    {Temperature: 0.3, MaxTokens: 1024},
			TaskSubtask:    {Temperature: 0.3, MaxTokens: 2048},
			TaskMasterPlan: {Temperature: 0.3, MaxTokens: 4096},
			TaskDailyTask:  {Temperature: 0.5, MaxTokens: 4096},
			TaskRoadmap:    {Temperature: 0.3, MaxTokens: 4096},
			TaskMicroTask:  {Temperature: 0.3, MaxTokens: 2048},
			TaskMotivation: {Temperature: 0.7, MaxTokens: 1024},
			TaskProgress:   {Temperature: 0.7, MaxTokens: 1024},
		},
	}
}

// LoadConfig reads completion configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("MANABIYA_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("MANABIYA_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" && cfg.APIKey == "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("MANABIYA_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("MANABIYA_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("MANABIYA_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("MANABIYA_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
