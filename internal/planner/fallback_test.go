package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiyamakenta/manabiya/internal/domain"
)

func TestDefaultSubtasksOffsets(t *testing.T) {
	now := fixedNow()
	subtasks := DefaultSubtasks("Learn Spanish", now)

	require.Len(t, subtasks, 3)
	assert.Equal(t, "Learn Spanishの計画を立てる", subtasks[0].Title)
	assert.Equal(t, "Learn Spanishの資料を集める", subtasks[1].Title)
	assert.Equal(t, "Learn Spanishの進捗を確認する", subtasks[2].Title)

	assert.Equal(t, now.AddDate(0, 0, 3), subtasks[0].DueDate)
	assert.Equal(t, now.AddDate(0, 0, 7), subtasks[1].DueDate)
	assert.Equal(t, now.AddDate(0, 0, 14), subtasks[2].DueDate)

	assert.Equal(t, domain.PriorityHigh, subtasks[0].Priority)
	assert.Equal(t, domain.PriorityMedium, subtasks[1].Priority)
}

func TestDefaultSubtasksDeterministic(t *testing.T) {
	now := fixedNow()
	assert.Equal(t, DefaultSubtasks("英検2級", now), DefaultSubtasks("英検2級", now))
}

func TestDefaultMasterPlanStepsSpacing(t *testing.T) {
	now := fixedNow()

	t.Run("no target defaults to 30 days", func(t *testing.T) {
		steps := DefaultMasterPlanSteps("Go言語", now, nil)
		// 30 days / 7 = ceil 5 steps.
		require.Len(t, steps, 5)
		target := now.AddDate(0, 0, 30)
		for i := 1; i < len(steps); i++ {
			assert.False(t, steps[i].DueDate.Before(steps[i-1].DueDate), "due dates must be non-decreasing")
		}
		assert.False(t, steps[len(steps)-1].DueDate.After(target), "last step never past target")
	})

	t.Run("short window clamps to 3 steps", func(t *testing.T) {
		target := now.AddDate(0, 0, 10)
		steps := DefaultMasterPlanSteps("Go言語", now, &target)
		require.Len(t, steps, 3)
		assert.False(t, steps[len(steps)-1].DueDate.After(target))
	})

	t.Run("long window clamps to 5 steps", func(t *testing.T) {
		target := now.AddDate(0, 0, 120)
		steps := DefaultMasterPlanSteps("Go言語", now, &target)
		require.Len(t, steps, 5)
	})

	t.Run("first and last step shapes", func(t *testing.T) {
		steps := DefaultMasterPlanSteps("Go言語", now, nil)
		assert.Equal(t, "Go言語の基礎学習", steps[0].Title)
		assert.Equal(t, domain.PriorityHigh, steps[0].Priority)
		assert.Equal(t, "Go言語の仕上げ", steps[len(steps)-1].Title)
		assert.Equal(t, 120, steps[0].EstimatedTotalTime)
	})
}

func TestDefaultMasterPlanDetails(t *testing.T) {
	details := DefaultMasterPlanDetails("英検2級", fixedNow(), nil)

	require.Len(t, details.Phases, 3)
	assert.Equal(t, "基礎学習フェーズ", details.Phases[0].Title)
	assert.Equal(t, "仕上げフェーズ", details.Phases[2].Title)
	assert.NotEmpty(t, details.WeeklySchedule.Weekday)
	assert.NotEmpty(t, details.WeeklySchedule.Weekend)
	assert.Len(t, details.RecommendedMaterials, 4)
	assert.Len(t, details.WeeklyChecklist, 4)
}

func TestDefaultDailyTask(t *testing.T) {
	task := DefaultDailyTask("文法の基礎", 45)

	assert.Equal(t, "文法の基礎の学習", task.Title)
	assert.Equal(t, 45, task.EstimatedTime)
	assert.NotEmpty(t, task.Exercises)
	assert.Equal(t, []string{"基本学習", "練習問題演習", "復習"}, task.Activities)
}

func TestDefaultRoadmap(t *testing.T) {
	roadmap := DefaultRoadmap("機械学習")

	require.Len(t, roadmap.Nodes, 3)
	assert.Equal(t, "機械学習の基礎", roadmap.Nodes[0].Title)
	assert.Equal(t, domain.LevelBeginner, roadmap.Nodes[0].Level)
	assert.Equal(t, domain.LevelAdvanced, roadmap.Nodes[2].Level)
	assert.Equal(t, 45.0, roadmap.EstimatedTotalHours)

	seen := map[string]bool{}
	for _, n := range roadmap.Nodes {
		assert.NotEmpty(t, n.ID)
		assert.False(t, seen[n.ID], "node ids must be unique")
		seen[n.ID] = true
	}
	require.Len(t, roadmap.Milestones, 1)
	assert.Equal(t, []string{roadmap.Nodes[0].ID}, roadmap.Milestones[0].NodeIDs)
}

func TestDefaultMicroTasksCoverEveryType(t *testing.T) {
	node := domain.RoadmapNode{ID: "n1", Title: "SQL"}
	tasks := DefaultMicroTasks(node, 5)

	require.Len(t, tasks, 5)
	types := map[domain.MicroTaskType]bool{}
	for _, task := range tasks {
		types[task.Type] = true
		assert.Equal(t, "n1", task.RoadmapNodeID)
		assert.Equal(t, domain.MicroTaskPending, task.Status)
		assert.Greater(t, task.EstimatedMinutes, 0)
	}
	assert.Len(t, types, 5, "the five archetypes span every type")
}

func TestDefaultMicroTasksCycles(t *testing.T) {
	node := domain.RoadmapNode{ID: "n1", Title: "SQL"}
	tasks := DefaultMicroTasks(node, 7)
	require.Len(t, tasks, 7)
	assert.Equal(t, tasks[0].Type, tasks[5].Type)
}

func TestDefaultStepDueDateNeverPastTarget(t *testing.T) {
	now := fixedNow()
	target := now.AddDate(0, 0, 2)
	due := DefaultStepDueDate(now, &target)
	assert.False(t, due.After(target))
}

func TestDefaultProgressUpdateCompletionAware(t *testing.T) {
	done := DefaultProgressUpdate(true)
	missed := DefaultProgressUpdate(false)
	assert.NotEqual(t, done.Analysis, missed.Analysis)
	assert.NotEmpty(t, done.Tips)
	assert.NotEmpty(t, missed.Encouragement)
}

func TestDefaultTaskDetails(t *testing.T) {
	details := DefaultTaskDetails("Learn Spanish")
	assert.Equal(t, "Learn Spanish", details.Title)
	assert.Equal(t, domain.PriorityMedium, details.Priority)
	assert.Equal(t, domain.CategoryOther, details.Category)
	assert.Equal(t, domain.LevelBeginner, details.Level)
	assert.Equal(t, 60, details.EstimatedTime)
	assert.NotNil(t, details.Questions)
	assert.Nil(t, details.DueDate)
}
