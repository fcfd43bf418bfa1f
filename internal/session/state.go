package session

import (
	"time"

	"github.com/abhisek/codecompanion/internal/content"
	"github.com/abhisek/codecompanion/internal/validate"
)

// Phase represents the current phase of a practice session.
type Phase int

const (
	PhaseActive   Phase = iota // serving items
	PhaseFeedback              // showing verdict feedback
	PhaseSummary               // showing the end-of-session summary
)

// AutoRevealThreshold is the failed-attempt count after which choice and
// drill answers are revealed. Coding exercises are never revealed.
const AutoRevealThreshold = 3

// State tracks the runtime state of an active practice session.
type State struct {
	// SessionID is the UUID for this session.
	SessionID string

	// LessonID is the lesson being practiced, empty for daily challenges.
	LessonID string

	// Daily is true for a daily-challenge session.
	Daily bool

	// DateKey is the calendar date the session started on, learner.DateFormat.
	DateKey string

	// Items are the practice items in presentation order.
	Items []content.Item

	// Index is the current position in Items.
	Index int

	// Attempts counts submissions per item ID, passed or not.
	Attempts map[string]int

	// HintsUsed counts hints shown per item ID.
	HintsUsed map[string]int

	// LastError holds the most recent execution error per item ID, used to
	// pick error-specific hint tips.
	LastError map[string]string

	// Passed marks item IDs judged correct.
	Passed map[string]bool

	// Revealed marks item IDs whose answer was auto-revealed.
	Revealed map[string]bool

	// ItemsServed counts items that received at least one submission.
	ItemsServed int

	// ItemsPassed counts items judged correct.
	ItemsPassed int

	// XPEarned is the XP granted during this session.
	XPEarned int

	// StartTime is when the session began.
	StartTime time.Time

	// Phase is the current session phase.
	Phase Phase

	// LastVerdict is the most recent submission verdict, for feedback display.
	LastVerdict *validate.Verdict
}

func newState(sessionID, lessonID string, items []content.Item, now time.Time) *State {
	return &State{
		SessionID: sessionID,
		LessonID:  lessonID,
		DateKey:   now.Format("2006-01-02"),
		Items:     items,
		Attempts:  make(map[string]int),
		HintsUsed: make(map[string]int),
		LastError: make(map[string]string),
		Passed:    make(map[string]bool),
		Revealed:  make(map[string]bool),
		StartTime: now,
		Phase:     PhaseActive,
	}
}

// Current returns the item at the cursor, or false when the session is done.
func (s *State) Current() (content.Item, bool) {
	if s.Index < 0 || s.Index >= len(s.Items) {
		return content.Item{}, false
	}
	return s.Items[s.Index], true
}

// Advance moves the cursor to the next item. It returns false when no items
// remain.
func (s *State) Advance() bool {
	s.Index++
	return s.Index < len(s.Items)
}

// Done reports whether every item has been passed or revealed.
func (s *State) Done() bool {
	for _, it := range s.Items {
		id := it.ID()
		if !s.Passed[id] && !s.Revealed[id] {
			return false
		}
	}
	return true
}

// AllPassed reports whether every item was judged correct. Revealed items
// don't count; a revealed answer completes the session but not the lesson.
func (s *State) AllPassed() bool {
	for _, it := range s.Items {
		if !s.Passed[it.ID()] {
			return false
		}
	}
	return true
}
