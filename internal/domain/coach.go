package domain

// MotivationalMessage is a coach message derived from current task state.
type MotivationalMessage struct {
	Greeting      string   `json:"greeting"`
	Message       string   `json:"message"`
	UrgentMessage string   `json:"urgentMessage"`
	Goals         []string `json:"goals"`
	Tips          string   `json:"tips"`
	Closing       string   `json:"closing"`
}

// ProgressUpdate is coaching feedback on a completed (or abandoned) daily
// task. Ephemeral; returned to the caller and never persisted.
type ProgressUpdate struct {
	Encouragement string   `json:"encouragement"`
	Analysis      string   `json:"analysis"`
	Tips          []string `json:"tips"`
	NextFocus     string   `json:"nextFocus"`
	Reflection    string   `json:"reflection"`
}
