package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiyamakenta/manabiya/internal/domain"
)

func TestGenerateMasterPlanFromSteps(t *testing.T) {
	stub := &stubClient{text: `{
		"goal": "2026年内にGoを習得",
		"learningPeriod": "4か月",
		"totalStudyHours": "約120時間",
		"phases": [{"title": "基礎", "weeks": "Week 1〜4", "description": "文法", "tasks": ["本を読む"]}],
		"steps": [
			{"title": "文法を学ぶ", "dueDate": "2026-09-01", "priority": "high", "estimatedTotalTime": 300},
			{"title": "小さなツールを作る", "dueDate": "2026-10-01", "priority": "silly", "estimatedTotalTime": "x"}
		]
	}`}
	svc := &masterPlanGenerator{client: stub, now: fixedNow}

	plan := svc.Generate(context.Background(), "Goを習得", "", nil, nil)

	require.Len(t, plan.Plan, 2)
	assert.Equal(t, "文法を学ぶ", plan.Plan[0].Title)
	assert.Equal(t, domain.PriorityHigh, plan.Plan[0].Priority)
	assert.Equal(t, domain.PriorityMedium, plan.Plan[1].Priority)
	assert.Equal(t, 120, plan.Plan[1].EstimatedTotalTime)
	assert.Equal(t, "2026年内にGoを習得", plan.Details.Goal)
	assert.Equal(t, "約120時間", plan.Details.TotalStudyHours)
	require.Len(t, plan.Details.Phases, 1)
}

func TestGenerateMasterPlanStepsDerivedFromPhases(t *testing.T) {
	stub := &stubClient{text: `{
		"goal": "英検2級合格",
		"phases": [
			{"title": "基礎固め", "description": "単語と文法"},
			{"title": "過去問演習", "tasks": ["過去問3回分", "弱点の分析"]},
			{"title": "直前対策", "description": "総復習"}
		]
	}`}
	svc := &masterPlanGenerator{client: stub, now: fixedNow}

	target := fixedNow().AddDate(0, 0, 60)
	plan := svc.Generate(context.Background(), "英検2級", "", &target, nil)

	require.Len(t, plan.Plan, 3)
	assert.Equal(t, "基礎固め", plan.Plan[0].Title)
	assert.Equal(t, domain.PriorityHigh, plan.Plan[0].Priority)
	// Phase without a description falls back to its joined task list.
	assert.Equal(t, "過去問3回分、弱点の分析", plan.Plan[1].Description)
	// Last step pins to the target date.
	assert.Equal(t, target, plan.Plan[2].DueDate)
	for i := 1; i < len(plan.Plan); i++ {
		assert.False(t, plan.Plan[i].DueDate.Before(plan.Plan[i-1].DueDate))
	}
}

func TestGenerateMasterPlanNumericStudyHours(t *testing.T) {
	stub := &stubClient{text: `{"totalStudyHours": 80, "steps": [{"title": "s1"}]}`}
	svc := &masterPlanGenerator{client: stub, now: fixedNow}

	plan := svc.Generate(context.Background(), "x", "", nil, nil)
	assert.Equal(t, "約80時間", plan.Details.TotalStudyHours)
}

func TestGenerateMasterPlanFallsBack(t *testing.T) {
	svc := &masterPlanGenerator{client: &stubClient{err: errors.New("down")}, now: fixedNow}

	target := fixedNow().AddDate(0, 0, 21)
	plan := svc.Generate(context.Background(), "簿記3級", "", &target, nil)

	require.NotEmpty(t, plan.Plan)
	assert.Equal(t, "簿記3級の基礎学習", plan.Plan[0].Title)
	assert.False(t, plan.Plan[len(plan.Plan)-1].DueDate.After(target))
	require.Len(t, plan.Details.Phases, 3)
}

func TestGenerateMasterPlanStepDatesClampToTarget(t *testing.T) {
	target := fixedNow().AddDate(0, 0, 14)
	future := target.AddDate(0, 0, 30).Format(dateLayout)
	stub := &stubClient{text: `{"steps": [{"title": "はみ出すステップ", "dueDate": "` + future + `"}]}`}
	svc := &masterPlanGenerator{client: stub, now: fixedNow}

	plan := svc.Generate(context.Background(), "x", "", &target, nil)
	require.Len(t, plan.Plan, 1)
	assert.Equal(t, target, plan.Plan[0].DueDate)
}
