package achievements

import (
	"testing"
	"time"

	"github.com/abhisek/codecompanion/internal/learner"
)

func fresh() *learner.Learner {
	l := learner.New("ada", "plant", time.Now())
	l.CompanionVitality = 50 // keep vitality_100 out of baseline unlocks
	return l
}

func TestCheck_Idempotent(t *testing.T) {
	l := fresh()
	l.StreakDays = 7

	first := Check(l)
	if len(first) == 0 {
		t.Fatal("streak 7 must unlock something")
	}

	second := Check(l)
	if len(second) != 0 {
		t.Errorf("second check unlocked %v, want nothing", second)
	}
}

func TestCheck_StreakTiers(t *testing.T) {
	l := fresh()
	l.StreakDays = 30

	got := Check(l)

	want := map[string]bool{
		"Week Warrior":       true,
		"Month Master":       true,
		"Consistent Learner": true,
	}
	if len(got) != len(want) {
		t.Fatalf("unlocked %v, want exactly %d streak achievements", got, len(want))
	}
	for _, name := range got {
		if !want[name] {
			t.Errorf("unexpected unlock %q", name)
		}
	}
	if !l.Achievements["streak_30"] || l.Achievements["streak_100"] {
		t.Error("wrong IDs recorded on the aggregate")
	}
}

func TestCheck_SelfReliantNeedsBoth(t *testing.T) {
	l := fresh()
	l.TotalExercisesCompleted = 10
	l.TotalHintsUsed = 5

	Check(l)
	if l.Achievements["hints_low"] {
		t.Error("5 hints used must block Self Reliant")
	}

	l2 := fresh()
	l2.TotalExercisesCompleted = 10
	l2.TotalHintsUsed = 4
	Check(l2)
	if !l2.Achievements["hints_low"] {
		t.Error("10 exercises with 4 hints must unlock Self Reliant")
	}
}

func TestCheck_NeverRevokes(t *testing.T) {
	l := fresh()
	l.CompanionVitality = 100
	Check(l)
	if !l.Achievements["vitality_100"] {
		t.Fatal("full vitality must unlock Perfect Care")
	}

	l.CompanionVitality = 20
	Check(l)
	if !l.Achievements["vitality_100"] {
		t.Error("unlocked achievements must survive condition loss")
	}
}

func TestName(t *testing.T) {
	if Name("bug_hunter") != "Bug Hunter" {
		t.Errorf("Name(bug_hunter) = %q", Name("bug_hunter"))
	}
	if Name("retired_id") != "retired_id" {
		t.Error("unknown IDs must fall back to the ID")
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range All() {
		if seen[a.ID] {
			t.Errorf("duplicate achievement ID %q", a.ID)
		}
		seen[a.ID] = true
	}
	if Count() != 22 {
		t.Errorf("Count() = %d, want 22", Count())
	}
}
