package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/codecompanion/internal/learner"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	l := learner.New("ada", "dragon", time.Now())
	l.XP = 120
	l.CompletedLessons["basics_01_variables"] = true

	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Data.Version != CurrentSnapshotVersion {
		t.Errorf("version = %d, want %d", snap.Data.Version, CurrentSnapshotVersion)
	}
	restored := snap.Data.Learner
	if restored.Username != "ada" || restored.XP != 120 {
		t.Errorf("restored learner = %s/%d XP, want ada/120", restored.Username, restored.XP)
	}
	if !restored.CompletedLessons["basics_01_variables"] {
		t.Error("completed lessons lost in round trip")
	}
	if restored.CompletedDrills == nil {
		t.Error("restored learner must be normalized")
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		l := learner.New("ada", "plant", time.Now())
		l.XP = (i + 1) * 100
		if err := repo.Save(ctx, l); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data.Learner.XP != 300 {
		t.Errorf("latest XP = %d, want 300", snap.Data.Learner.XP)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		l := learner.New("ada", "plant", time.Now())
		l.XP = (i + 1) * 10
		if err := repo.Save(ctx, l); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest must survive the prune.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data.Learner.XP != 70 {
		t.Errorf("latest XP = %d, want 70", snap.Data.Learner.XP)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.Save(ctx, learner.New("ada", "pet", time.Now())); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}

	cur, err := s.seq.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cur != 5 {
		t.Errorf("current = %d, want 5", cur)
	}
}

func TestEventAppendAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{SessionID: "s1", LessonID: "basics_01_variables", ItemID: "basics_01_ex1",
			ItemKind: "coding_exercise", Answer: "print(x)", Passed: false, AttemptNo: 1},
		{SessionID: "s1", LessonID: "basics_01_variables", ItemID: "basics_01_ex1",
			ItemKind: "coding_exercise", Answer: "x = 42\nprint(x)", Passed: true, AttemptNo: 2},
		{SessionID: "s1", LessonID: "basics_01_variables", ItemID: "basics_01_q1",
			ItemKind: "single_choice", Answer: "1", Passed: true, AttemptNo: 1},
	}
	for i, a := range attempts {
		if err := repo.AppendAttemptEvent(ctx, a); err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	stats, err := repo.ItemAttemptStats(ctx, "basics_01_ex1")
	if err != nil {
		t.Fatalf("item stats: %v", err)
	}
	if stats.Total != 2 || stats.Passed != 1 {
		t.Errorf("item stats = %+v, want 2 total 1 passed", stats)
	}

	all, err := repo.ItemAttemptStats(ctx, "")
	if err != nil {
		t.Fatalf("global stats: %v", err)
	}
	if all.Total != 3 || all.Passed != 2 {
		t.Errorf("global stats = %+v, want 3 total 2 passed", all)
	}
}

func TestSessionSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "s1", Action: "start", LessonID: "basics_01_variables"},
		{SessionID: "s1", Action: "end", LessonID: "basics_01_variables",
			ItemsServed: 8, ItemsPassed: 7, XPEarned: 45, DurationSecs: 600},
		{SessionID: "s2", Action: "start", LessonID: "basics_02_types"},
		{SessionID: "s2", Action: "end", LessonID: "basics_02_types",
			ItemsServed: 5, ItemsPassed: 5, XPEarned: 30, DurationSecs: 300},
	}
	for i, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append session event %d: %v", i, err)
		}
	}

	summaries, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query summaries: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("len(summaries) = %d, want 2 (end events only)", len(summaries))
	}
	if summaries[0].SessionID != "s2" {
		t.Errorf("newest first: got %s, want s2", summaries[0].SessionID)
	}
	if summaries[1].XPEarned != 45 {
		t.Errorf("XPEarned = %d, want 45", summaries[1].XPEarned)
	}
}

func TestHintAndCheckinAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendHintEvent(ctx, HintEventData{
		SessionID: "s1", ItemID: "basics_01_ex1", AttemptNo: 2, HintText: "Use print()",
	})
	if err != nil {
		t.Fatalf("append hint: %v", err)
	}

	err = repo.AppendCheckinEvent(ctx, CheckinEventData{
		Date: "2026-08-28", StreakDays: 3, Vitality: 90, Stage: 1, Extended: true, Evolved: true,
	})
	if err != nil {
		t.Fatalf("append checkin: %v", err)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}
