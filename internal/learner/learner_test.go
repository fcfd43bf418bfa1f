package learner

import (
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	l := New("ada", "plant", now)

	if l.Level != 1 {
		t.Errorf("Level = %d, want 1", l.Level)
	}
	if l.CompanionVitality != 100 {
		t.Errorf("CompanionVitality = %d, want 100", l.CompanionVitality)
	}
	if l.CompanionStage != 0 {
		t.Errorf("CompanionStage = %d, want 0", l.CompanionStage)
	}
	if l.LastActive != "2025-06-01" {
		t.Errorf("LastActive = %q, want 2025-06-01", l.LastActive)
	}
	if l.DailyGoalXP != 50 || l.WeeklyGoalXP != 200 {
		t.Errorf("goals = %d/%d, want 50/200", l.DailyGoalXP, l.WeeklyGoalXP)
	}
	if l.CompletedLessons == nil || l.Achievements == nil {
		t.Error("collections must be initialized at construction")
	}
}

func TestAddActivity_CapsAtMax(t *testing.T) {
	l := New("ada", "plant", time.Now())

	for i := 0; i < MaxActivityLog+20; i++ {
		l.AddActivity("xp_gain", "entry", 5)
	}

	if len(l.ActivityLog) != MaxActivityLog {
		t.Errorf("len(ActivityLog) = %d, want %d", len(l.ActivityLog), MaxActivityLog)
	}
}

func TestAddActivity_DropsOldestFirst(t *testing.T) {
	l := New("ada", "plant", time.Now())

	l.AddActivity("first", "oldest", 0)
	for i := 0; i < MaxActivityLog; i++ {
		l.AddActivity("xp_gain", "later", 0)
	}

	for _, a := range l.ActivityLog {
		if a.Type == "first" {
			t.Fatal("oldest entry should have been dropped")
		}
	}
}

func TestRecentActivity_NewestFirst(t *testing.T) {
	l := New("ada", "plant", time.Now())
	l.AddActivity("a", "one", 0)
	l.AddActivity("b", "two", 0)
	l.AddActivity("c", "three", 0)

	recent := l.RecentActivity(2)
	if len(recent) != 2 {
		t.Fatalf("len = %d, want 2", len(recent))
	}
	if recent[0].Type != "c" || recent[1].Type != "b" {
		t.Errorf("order = %s,%s, want c,b", recent[0].Type, recent[1].Type)
	}
}

func TestNormalize_FillsNilCollections(t *testing.T) {
	l := &Learner{Username: "ada"}
	l.Normalize()

	if l.CompletedLessons == nil || l.CompletedExercises == nil ||
		l.CompletedDrills == nil || l.Achievements == nil {
		t.Error("Normalize must fill nil collections")
	}
	if l.Level != 1 {
		t.Errorf("Level = %d, want 1 after Normalize", l.Level)
	}
}
