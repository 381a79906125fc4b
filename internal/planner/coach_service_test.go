package planner

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiyamakenta/manabiya/internal/domain"
)

func TestMotivateRepairsFields(t *testing.T) {
	stub := &stubClient{text: `{
		"greeting": "おはようございます！",
		"message": "順調に進んでいます",
		"urgentMessage": "",
		"goals": [],
		"tips": "",
		"closing": "がんばりましょう"
	}`}
	svc := &coach{client: stub, now: fixedNow}

	msg := svc.Motivate(context.Background(), nil)

	assert.Equal(t, "おはようございます！", msg.Greeting)
	assert.Equal(t, "順調に進んでいます", msg.Message)
	// Empty goals and tips fall back to defaults.
	assert.NotEmpty(t, msg.Goals)
	assert.NotEmpty(t, msg.Tips)
}

func TestMotivatePromptSummarizesTasks(t *testing.T) {
	stub := &stubClient{text: `{"greeting": "g", "message": "m"}`}
	svc := &coach{client: stub, now: fixedNow}

	soon := fixedNow().Add(24 * time.Hour)
	far := fixedNow().AddDate(0, 0, 30)
	tasks := []domain.Task{
		{Title: "完了済み", Status: domain.TaskCompleted},
		{Title: "期限間近", Status: domain.TaskPending, DueDate: &soon},
		{Title: "まだ先", Status: domain.TaskPending, DueDate: &far},
	}
	svc.Motivate(context.Background(), tasks)

	prompt := stub.lastReq.UserPrompt
	assert.True(t, strings.Contains(prompt, "総タスク数: 3"))
	assert.True(t, strings.Contains(prompt, "完了タスク: 1"))
	assert.True(t, strings.Contains(prompt, "期限間近"))
	assert.False(t, strings.Contains(prompt, "まだ先"), "only tasks within 3 days are urgent")
	assert.True(t, strings.Contains(prompt, "午前"))
}

func TestMotivateFallsBack(t *testing.T) {
	svc := &coach{client: &stubClient{err: errors.New("down")}, now: fixedNow}

	msg := svc.Motivate(context.Background(), nil)
	assert.Equal(t, "こんにちは！", msg.Greeting)
	require.NotEmpty(t, msg.Goals)
}

func TestReviewProgress(t *testing.T) {
	stub := &stubClient{text: `{
		"encouragement": "よく頑張りました",
		"analysis": "文法問題の正答率が高いです",
		"tips": ["復習を習慣に"],
		"nextFocus": "長文読解",
		"reflection": "どこが難しかったですか？"
	}`}
	svc := &coach{client: stub, now: fixedNow}

	update := svc.ReviewProgress(context.Background(), ProgressRequest{
		LearningGoal: "英検2級",
		TaskTitle:    "単語学習",
		IsCompleted:  true,
		UserFeedback: "集中できた",
	})

	assert.Equal(t, "よく頑張りました", update.Encouragement)
	assert.Equal(t, "長文読解", update.NextFocus)
	assert.True(t, strings.Contains(stub.lastReq.UserPrompt, "完了しました"))
	assert.True(t, strings.Contains(stub.lastReq.UserPrompt, "集中できた"))
}

func TestReviewProgressFallbackCompletionAware(t *testing.T) {
	svc := &coach{client: &stubClient{err: errors.New("down")}, now: fixedNow}

	done := svc.ReviewProgress(context.Background(), ProgressRequest{IsCompleted: true})
	missed := svc.ReviewProgress(context.Background(), ProgressRequest{IsCompleted: false})

	assert.NotEqual(t, done.Analysis, missed.Analysis)
	assert.NotEmpty(t, done.Tips)
}
