package store

import (
	"context"
	"time"

	"github.com/abhisek/codecompanion/internal/learner"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData is the serialized learner aggregate plus a format version for
// forward-compatible restores.
type SnapshotData struct {
	Version int             `json:"version"`
	Learner learner.Learner `json:"learner"`
}

// CurrentSnapshotVersion is written into every new snapshot.
const CurrentSnapshotVersion = 1

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot of the learner, stamped with the current
	// global sequence.
	Save(ctx context.Context, l *learner.Learner) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData captures one judged submission.
type AttemptEventData struct {
	SessionID string
	LessonID  string
	ItemID    string
	ItemKind  string
	Answer    string
	Passed    bool
	AttemptNo int
	TimeMs    int
}

// HintEventData captures one hint shown to the learner.
type HintEventData struct {
	SessionID string
	ItemID    string
	AttemptNo int
	HintText  string
}

// CheckinEventData captures one daily check-in outcome.
type CheckinEventData struct {
	Date       string
	StreakDays int
	Vitality   int
	Stage      int
	Extended   bool
	Evolved    bool
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID    string
	Action       string // "start" or "end"
	LessonID     string
	ItemsServed  int
	ItemsPassed  int
	XPEarned     int
	DurationSecs int
}

// SessionSummaryRecord is a completed session as read back for stats views.
type SessionSummaryRecord struct {
	SessionID    string
	Timestamp    time.Time
	LessonID     string
	ItemsServed  int
	ItemsPassed  int
	XPEarned     int
	DurationSecs int
}

// AttemptStats aggregates attempt outcomes for an item or the whole log.
type AttemptStats struct {
	Total  int
	Passed int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error
	AppendHintEvent(ctx context.Context, data HintEventData) error
	AppendCheckinEvent(ctx context.Context, data CheckinEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// ItemAttemptStats returns attempt counts for one item across all
	// sessions. itemID "" aggregates over every item.
	ItemAttemptStats(ctx context.Context, itemID string) (AttemptStats, error)

	// QuerySessionSummaries returns completed sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)
}
