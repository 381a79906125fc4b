package domain

// Exercise is one practice problem within a daily task.
type Exercise struct {
	Question    string   `json:"question"`
	SampleCode  string   `json:"sampleCode,omitempty"`
	Options     []string `json:"options,omitempty"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// DailyTask is a single day's learning assignment. Exercises and Activities
// are never empty; normalization backfills placeholders when the model
// omits them.
type DailyTask struct {
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	EstimatedTime     int        `json:"estimatedTime"` // minutes, capped to the requested budget
	PreparationSteps  []string   `json:"preparationSteps"`
	LearningMaterials []string   `json:"learningMaterials"`
	CodingTasks       []string   `json:"codingTasks"`
	Exercises         []Exercise `json:"exercises"`
	Activities        []string   `json:"activities"`
	ChecklistItems    []string   `json:"checklistItems"`
	NextSteps         []string   `json:"nextSteps"`
}

// PreviousResult is a prior daily-task outcome used for difficulty adjustment.
type PreviousResult struct {
	TaskID    string `json:"taskId"`
	Completed bool   `json:"completed"`
}
