package planner

import (
	"fmt"
	"time"

	"github.com/akiyamakenta/manabiya/internal/domain"
	"github.com/google/uuid"
)

// Deterministic fallback generators. Every function here is a pure function
// of its inputs plus the supplied wall-clock time: no network, no randomness
// beyond generated ids. Their outputs satisfy the same structural invariants
// as normalized model output, so downstream code treats both alike.

// planSpacing computes the step layout between now and the target date.
// Steps are weekly-ish: clamp(ceil(days/7), 3, 5) of them, evenly spaced.
// A missing target defaults to 30 days out.
func planSpacing(now time.Time, target *time.Time) (stepCount, daysPerStep int, targetDate time.Time) {
	targetDate = now.AddDate(0, 0, 30)
	if target != nil {
		targetDate = *target
	}

	days := int((targetDate.Sub(now).Hours() + 23) / 24)
	if days < 1 {
		days = 1
	}

	stepCount = (days + 6) / 7
	if stepCount < 3 {
		stepCount = 3
	}
	if stepCount > 5 {
		stepCount = 5
	}
	daysPerStep = days / stepCount
	return stepCount, daysPerStep, targetDate
}

// DefaultStepDueDate computes the fallback due date for a single repaired
// step: one spacing-interval from now, never past the target.
func DefaultStepDueDate(now time.Time, target *time.Time) time.Time {
	if target == nil {
		return now.AddDate(0, 0, 30)
	}
	_, daysPerStep, targetDate := planSpacing(now, target)
	due := now.AddDate(0, 0, daysPerStep)
	if due.After(targetDate) {
		return targetDate
	}
	return due
}

// DefaultTaskDetails synthesizes task details straight from the input text.
func DefaultTaskDetails(taskText string) domain.TaskDetails {
	return domain.TaskDetails{
		Title:              taskText,
		Description:        "",
		DueDate:            nil,
		Priority:           domain.PriorityMedium,
		EstimatedTime:      60,
		NeedsMoreInfo:      false,
		Questions:          []string{},
		Category:           domain.CategoryOther,
		Level:              domain.LevelBeginner,
		DailyTimeAvailable: 60,
	}
}

// DefaultSubtasks returns the three standard planning subtasks for a title,
// due in 3, 7 and 14 days.
func DefaultSubtasks(title string, now time.Time) []domain.Subtask {
	return []domain.Subtask{
		{
			Title:         title + "の計画を立てる",
			Description:   "目標達成のための詳細な計画を立案する",
			DueDate:       now.AddDate(0, 0, 3),
			Priority:      domain.PriorityHigh,
			EstimatedTime: 60,
		},
		{
			Title:         title + "の資料を集める",
			Description:   "必要な教材や参考資料を集める",
			DueDate:       now.AddDate(0, 0, 7),
			Priority:      domain.PriorityMedium,
			EstimatedTime: 120,
		},
		{
			Title:         title + "の進捗を確認する",
			Description:   "目標に向けての進捗状況を確認し、必要に応じて計画を調整する",
			DueDate:       now.AddDate(0, 0, 14),
			Priority:      domain.PriorityMedium,
			EstimatedTime: 30,
		},
	}
}

// DefaultMasterPlanSteps builds an evenly spaced step sequence toward the
// target date. Due dates are non-decreasing and the last one never exceeds
// the target.
func DefaultMasterPlanSteps(title string, now time.Time, target *time.Time) []domain.MasterPlanStep {
	stepCount, daysPerStep, targetDate := planSpacing(now, target)

	steps := make([]domain.MasterPlanStep, 0, stepCount)
	for i := 0; i < stepCount; i++ {
		due := now.AddDate(0, 0, (i+1)*daysPerStep)
		if due.After(targetDate) {
			due = targetDate
		}

		step := domain.MasterPlanStep{
			Title:              fmt.Sprintf("%sのステップ%d", title, i+1),
			Description:        title + "に関する発展的な内容を学ぶ",
			DueDate:            due,
			Priority:           domain.PriorityMedium,
			EstimatedTotalTime: 120 * (i + 1),
		}
		switch i {
		case 0:
			step.Title = title + "の基礎学習"
			step.Description = "基礎的な内容を学習する"
			step.Priority = domain.PriorityHigh
		case stepCount - 1:
			step.Title = title + "の仕上げ"
			step.Description = "学習内容の総まとめと復習"
		}
		steps = append(steps, step)
	}
	return steps
}

// DefaultMasterPlanDetails builds the three-phase fallback plan description.
func DefaultMasterPlanDetails(title string, now time.Time, target *time.Time) domain.MasterPlanDetails {
	targetDate := now.AddDate(0, 0, 30)
	if target != nil {
		targetDate = *target
	}
	weekCount := int((targetDate.Sub(now).Hours()/24 + 6) / 7)
	if weekCount < 1 {
		weekCount = 1
	}
	third := (weekCount + 2) / 3
	twoThirds := (weekCount*2 + 2) / 3

	return domain.MasterPlanDetails{
		Goal:            title + "の習得・完了",
		LearningPeriod:  fmt.Sprintf("%d週間（現在から%sまで）", weekCount, targetDate.Format(dateLayout)),
		TotalStudyHours: fmt.Sprintf("平日2時間×5日、週末3時間×2日 = 約16時間/週 × %d週間 = 約%d時間", weekCount, 16*weekCount),
		Phases: []domain.LearningPhase{
			{
				Title:       "基礎学習フェーズ",
				Weeks:       fmt.Sprintf("Week 1〜%d", third),
				Description: title + "の基礎を固める期間です。基本概念や用語を学び、基礎的なスキルを習得します。",
				Tasks: []string{
					"基本的な知識・概念の習得",
					"基礎的な練習問題の解決",
					"学習リソースの確保と計画の見直し",
				},
			},
			{
				Title:       "応用学習フェーズ",
				Weeks:       fmt.Sprintf("Week %d〜%d", third+1, twoThirds),
				Description: "基礎知識を応用し、より複雑な問題に取り組む期間です。実践的なスキルを身につけます。",
				Tasks: []string{
					"応用問題への取り組み",
					"実践的な演習の実施",
					"弱点の特定と集中強化",
				},
			},
			{
				Title:       "仕上げフェーズ",
				Weeks:       fmt.Sprintf("Week %d〜%d", twoThirds+1, weekCount),
				Description: "学んだ知識を総合的に活用し、最終目標達成に向けた総仕上げを行います。",
				Tasks: []string{
					"総合的な復習と弱点補強",
					"模擬テストや総合演習",
					"最終評価と成果の確認",
				},
			},
		},
		WeeklySchedule: domain.WeeklySchedule{
			Weekday: []domain.ScheduleActivity{
				{Activity: "基礎知識の学習", Duration: 30},
				{Activity: "演習問題", Duration: 60},
				{Activity: "復習", Duration: 30},
			},
			Weekend: []domain.ScheduleActivity{
				{Activity: "今週の総復習", Duration: 60},
				{Activity: "応用問題演習", Duration: 90},
				{Activity: "次週の準備", Duration: 30},
			},
		},
		RecommendedMaterials: []string{
			"「" + title + "入門」基礎テキスト",
			"「" + title + "問題集」",
			"「" + title + "オンライン講座」",
			"「" + title + "実践アプリ」",
		},
		WeeklyChecklist: []string{
			"基礎知識の理解度チェック",
			"演習問題10問以上解く",
			"学習内容の振り返りノート作成",
			"次週の学習計画の見直し",
		},
	}
}

// DefaultExercise is the placeholder practice problem injected when a daily
// task arrives without any exercises.
func DefaultExercise(topic string) domain.Exercise {
	return domain.Exercise{
		Question:    topic + "に関する練習問題",
		Options:     []string{"選択肢1", "選択肢2", "選択肢3", "選択肢4"},
		Answer:      "選択肢2",
		Explanation: "これはダミーの練習問題です。実際の問題は現在生成できませんでした。",
	}
}

// DefaultActivities is the minimal activity list for a daily task.
func DefaultActivities() []string {
	return []string{"基本学習", "練習問題演習", "復習"}
}

// DefaultDailyTask synthesizes a complete daily task from the step title and
// time budget alone.
func DefaultDailyTask(stepTitle string, timeAvailable int) domain.DailyTask {
	return domain.DailyTask{
		Title:         stepTitle + "の学習",
		Description:   "今日の学習タスクを完了させましょう",
		EstimatedTime: timeAvailable,
		PreparationSteps: []string{
			"学習環境を整える",
			"必要なツールを確認する",
		},
		LearningMaterials: []string{
			"基本的なチュートリアル",
			"オンライン学習リソース",
		},
		CodingTasks: []string{
			"基本的な概念を理解するための簡単な練習",
		},
		Exercises: []domain.Exercise{
			{
				Question:    "サンプル問題1",
				SampleCode:  "// ここにサンプルコードが入ります",
				Answer:      "正解例",
				Explanation: "これはサンプル問題です。実際のAPIコールでは、より適切な問題が生成されます。",
			},
		},
		Activities: DefaultActivities(),
		ChecklistItems: []string{
			"基本概念を理解する",
			"サンプルコードを実行してみる",
			"練習問題に取り組む",
		},
		NextSteps: []string{
			"学んだ内容を復習する",
			"次回の学習テーマを確認する",
		},
	}
}

// DefaultRoadmap builds a three-node sequential roadmap for a goal.
func DefaultRoadmap(goal string) domain.Roadmap {
	nodes := []domain.RoadmapNode{
		{
			ID:             uuid.NewString(),
			Title:          goal + "の基礎",
			Description:    goal + "の基本概念と前提知識を習得します。",
			Level:          domain.LevelBeginner,
			Category:       "general",
			Importance:     domain.ImportanceEssential,
			EstimatedHours: 10,
		},
		{
			ID:             uuid.NewString(),
			Title:          goal + "の実践",
			Description:    "基礎を踏まえ、実践的な課題に取り組みます。",
			Level:          domain.LevelIntermediate,
			Category:       "general",
			Importance:     domain.ImportanceRecommended,
			EstimatedHours: 15,
		},
		{
			ID:             uuid.NewString(),
			Title:          goal + "の応用",
			Description:    "応用的なテーマに挑戦し、理解を深めます。",
			Level:          domain.LevelAdvanced,
			Category:       "general",
			Importance:     domain.ImportanceRecommended,
			EstimatedHours: 20,
		},
	}

	return domain.Roadmap{
		ID:                  uuid.NewString(),
		Title:               goal + "の学習ロードマップ",
		Description:         goal + "を段階的に習得するための学習パスです。",
		GoalDescription:     goal,
		EstimatedTotalHours: 45,
		Nodes:               nodes,
		Milestones: []domain.Milestone{
			{
				Title:       "基礎の完了",
				Description: "基礎ノードの学習をすべて終えた状態です。",
				NodeIDs:     []string{nodes[0].ID},
			},
		},
	}
}

// microTaskArchetypes spans every micro-task type exactly once.
var microTaskArchetypes = []struct {
	typ        domain.MicroTaskType
	difficulty domain.Difficulty
	minutes    int
	title      string
	desc       string
}{
	{domain.MicroTaskReading, domain.DifficultyEasy, 30, "%sの基礎資料を読む", "入門資料を読み、基本用語と概念を押さえます。"},
	{domain.MicroTaskExercise, domain.DifficultyMedium, 30, "%sの練習問題を解く", "理解度を確認するための練習問題に取り組みます。"},
	{domain.MicroTaskProject, domain.DifficultyMedium, 60, "%sを使った小さな成果物を作る", "学んだ内容を使って小さな成果物を完成させます。"},
	{domain.MicroTaskQuiz, domain.DifficultyEasy, 15, "%sの理解度クイズに挑戦する", "短いクイズで知識の定着を確認します。"},
	{domain.MicroTaskPractice, domain.DifficultyMedium, 45, "%sを実際に手を動かして練習する", "実際に手を動かし、繰り返し練習して身につけます。"},
}

// DefaultMicroTasks synthesizes count micro-tasks for a roadmap node,
// cycling through the archetype set.
func DefaultMicroTasks(node domain.RoadmapNode, count int) []domain.MicroTask {
	if count < 1 {
		count = len(microTaskArchetypes)
	}

	tasks := make([]domain.MicroTask, 0, count)
	for i := 0; i < count; i++ {
		a := microTaskArchetypes[i%len(microTaskArchetypes)]
		tasks = append(tasks, domain.MicroTask{
			ID:               uuid.NewString(),
			RoadmapNodeID:    node.ID,
			Title:            fmt.Sprintf(a.title, node.Title),
			Description:      a.desc,
			Type:             a.typ,
			Difficulty:       a.difficulty,
			EstimatedMinutes: a.minutes,
			Instructions:     []string{"タスクの内容を確認する", "実際に取り組む", "結果を振り返る"},
			Resources:        []string{node.Title + "の参考資料"},
			Hints:            []string{"小さく区切って進めると取り組みやすくなります"},
			Status:           domain.MicroTaskPending,
		})
	}
	return tasks
}

// DefaultMotivationalMessage is the fallback coach message.
func DefaultMotivationalMessage() domain.MotivationalMessage {
	return domain.MotivationalMessage{
		Greeting:      "こんにちは！",
		Message:       "今日も目標に向かって一歩ずつ進みましょう。",
		UrgentMessage: "",
		Goals: []string{
			"未完了タスクを一つ終わらせる",
			"新しい目標を設定する",
		},
		Tips:    "大きなタスクは小さく分けると達成しやすくなります。",
		Closing: "あなたならできます！",
	}
}

// DefaultProgressUpdate is the fallback coaching feedback.
func DefaultProgressUpdate(isCompleted bool) domain.ProgressUpdate {
	analysis := "完了できなかったタスクも、学習の一部です。次回に活かしましょう。"
	if isCompleted {
		analysis = "タスクを完了できたことは素晴らしい成果です。着実に進歩しています。"
	}
	return domain.ProgressUpdate{
		Encouragement: "今日も学習に取り組んでくれてありがとう！",
		Analysis:      analysis,
		Tips: []string{
			"毎日少しずつでも続けることが重要です。",
			"難しい部分は何度も繰り返し練習しましょう。",
			"わからないことはすぐに質問すると効率的です。",
		},
		NextFocus:  "次は基本的な概念の理解を深め、実践的な問題に取り組みましょう。",
		Reflection: "今日学んだことで最も興味深かったのはどんな部分でしたか？",
	}
}
