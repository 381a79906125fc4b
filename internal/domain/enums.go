package domain

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"high": true, "medium": true, "low": true,
}

// CoercePriority maps an arbitrary string onto a legal Priority,
// defaulting to medium.
func CoercePriority(s string) Priority {
	if ValidPriorities[s] {
		return Priority(s)
	}
	return PriorityMedium
}

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

type Category string

const (
	CategoryLanguage    Category = "language"
	CategoryProgramming Category = "programming"
	CategoryExam        Category = "exam"
	CategoryHobby       Category = "hobby"
	CategoryOther       Category = "other"
)

// ValidCategories is the canonical set of accepted learning categories.
var ValidCategories = map[string]bool{
	"language": true, "programming": true, "exam": true,
	"hobby": true, "other": true,
}

// CoerceCategory maps an arbitrary string onto a legal Category,
// defaulting to other.
func CoerceCategory(s string) Category {
	if ValidCategories[s] {
		return Category(s)
	}
	return CategoryOther
}

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// ValidLevels is the canonical set of accepted learner levels.
var ValidLevels = map[string]bool{
	"beginner": true, "intermediate": true, "advanced": true,
}

// CoerceLevel maps an arbitrary string onto a legal Level,
// defaulting to beginner.
func CoerceLevel(s string) Level {
	if ValidLevels[s] {
		return Level(s)
	}
	return LevelBeginner
}

type Importance string

const (
	ImportanceEssential   Importance = "essential"
	ImportanceRecommended Importance = "recommended"
	ImportanceOptional    Importance = "optional"
)

// ValidImportances is the canonical set of accepted roadmap-node importances.
var ValidImportances = map[string]bool{
	"essential": true, "recommended": true, "optional": true,
}

// CoerceImportance maps an arbitrary string onto a legal Importance,
// defaulting to recommended.
func CoerceImportance(s string) Importance {
	if ValidImportances[s] {
		return Importance(s)
	}
	return ImportanceRecommended
}

type MicroTaskType string

const (
	MicroTaskReading  MicroTaskType = "reading"
	MicroTaskExercise MicroTaskType = "exercise"
	MicroTaskProject  MicroTaskType = "project"
	MicroTaskQuiz     MicroTaskType = "quiz"
	MicroTaskPractice MicroTaskType = "practice"
)

// ValidMicroTaskTypes is the canonical set of accepted micro-task types.
var ValidMicroTaskTypes = map[string]bool{
	"reading": true, "exercise": true, "project": true,
	"quiz": true, "practice": true,
}

// CoerceMicroTaskType maps an arbitrary string onto a legal MicroTaskType,
// defaulting to practice.
func CoerceMicroTaskType(s string) MicroTaskType {
	if ValidMicroTaskTypes[s] {
		return MicroTaskType(s)
	}
	return MicroTaskPractice
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[string]bool{
	"easy": true, "medium": true, "hard": true,
}

// CoerceDifficulty maps an arbitrary string onto a legal Difficulty,
// defaulting to medium.
func CoerceDifficulty(s string) Difficulty {
	if ValidDifficulties[s] {
		return Difficulty(s)
	}
	return DifficultyMedium
}

type MicroTaskStatus string

const (
	MicroTaskPending    MicroTaskStatus = "pending"
	MicroTaskInProgress MicroTaskStatus = "in-progress"
	MicroTaskCompleted  MicroTaskStatus = "completed"
	MicroTaskSkipped    MicroTaskStatus = "skipped"
)
