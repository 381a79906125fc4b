package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoercions(t *testing.T) {
	assert.Equal(t, PriorityHigh, CoercePriority("high"))
	assert.Equal(t, PriorityMedium, CoercePriority("urgent"))
	assert.Equal(t, PriorityMedium, CoercePriority(""))

	assert.Equal(t, CategoryExam, CoerceCategory("exam"))
	assert.Equal(t, CategoryOther, CoerceCategory("music"))

	assert.Equal(t, LevelAdvanced, CoerceLevel("advanced"))
	assert.Equal(t, LevelBeginner, CoerceLevel("expert"))

	assert.Equal(t, ImportanceEssential, CoerceImportance("essential"))
	assert.Equal(t, ImportanceRecommended, CoerceImportance("critical"))

	assert.Equal(t, MicroTaskQuiz, CoerceMicroTaskType("quiz"))
	assert.Equal(t, MicroTaskPractice, CoerceMicroTaskType("essay"))

	assert.Equal(t, DifficultyHard, CoerceDifficulty("hard"))
	assert.Equal(t, DifficultyMedium, CoerceDifficulty("impossible"))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", CoalesceStr("", "b", "c"))
	assert.Equal(t, "", CoalesceStr("", ""))
	assert.Equal(t, []int{1}, CoalesceList([]int{}, []int{1}))
	assert.Nil(t, CoalesceList[int](nil, nil))
}
