package journal

import "time"

// Outcome is the terminal state recorded for a run.
const (
	OutcomeRunning   = "running"
	OutcomeCompleted = "completed"
	OutcomeAborted   = "aborted"
	OutcomeFailed    = "failed"
)

// Run is one pipeline invocation.
type Run struct {
	ID         string
	RecordPath string
	Outcome    string
	Message    string
	Rendered   int
	Cached     int
	Failed     int
	StartedAt  time.Time
	FinishedAt *time.Time
}

// Clip is the recorded status of one segment within a run.
type Clip struct {
	RunID  string
	Index  int
	Status string
	Detail string
}
