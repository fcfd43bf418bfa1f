package practice

import "github.com/abhisek/codecompanion/internal/session"

// dailyStartedMsg is sent when the daily challenge session has been created.
type dailyStartedMsg struct {
	State *session.State
	Err   error
}

// submittedMsg carries the judged outcome of an answer.
type submittedMsg struct {
	Out *session.Outcome
	Err error
}

// hintMsg carries a requested hint.
type hintMsg struct {
	Text string
	Err  error
}

// finishedMsg is sent when the session has been closed out.
type finishedMsg struct {
	Sum *session.Summary
	Err error
}
