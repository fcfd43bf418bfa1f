package content

import (
	"strings"
	"testing"
)

func TestBuiltinCatalog_Valid(t *testing.T) {
	r, err := NewRegistry(BuiltinLessons())
	if err != nil {
		t.Fatalf("built-in catalog invalid: %v", err)
	}
	if len(r.Lessons()) == 0 {
		t.Fatal("built-in catalog is empty")
	}
}

func TestRegistry_ItemLookup(t *testing.T) {
	r := Default()

	it, ok := r.Item("basics_01_drill1")
	if !ok {
		t.Fatal("basics_01_drill1 not found")
	}
	if it.Kind != KindOutputDrill {
		t.Errorf("Kind = %s, want %s", it.Kind, KindOutputDrill)
	}
	if it.Output.Expected != "20" {
		t.Errorf("Expected = %q, want 20", it.Output.Expected)
	}
}

func TestRegistry_Unlocked(t *testing.T) {
	r := Default()

	completed := map[string]bool{}
	if !r.Unlocked("basics_01_variables", completed) {
		t.Error("root lesson must be unlocked with nothing completed")
	}
	if r.Unlocked("basics_02_types", completed) {
		t.Error("basics_02_types requires basics_01_variables")
	}

	completed["basics_01_variables"] = true
	if !r.Unlocked("basics_02_types", completed) {
		t.Error("basics_02_types should unlock after its prerequisite")
	}
}

func TestValidateLessons_DanglingPrerequisite(t *testing.T) {
	lessons := []Lesson{
		{ID: "a", XPReward: 10, Prerequisites: []string{"missing"}},
	}
	_, err := NewRegistry(lessons)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite")
	}
	if !strings.Contains(err.Error(), "nonexistent prerequisite") {
		t.Errorf("err = %v, want nonexistent prerequisite mention", err)
	}
}

func TestValidateLessons_Cycle(t *testing.T) {
	lessons := []Lesson{
		{ID: "a", XPReward: 10, Prerequisites: []string{"b"}},
		{ID: "b", XPReward: 10, Prerequisites: []string{"a"}},
	}
	_, err := NewRegistry(lessons)
	if err == nil {
		t.Fatal("expected error for prerequisite cycle")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("err = %v, want cycle mention", err)
	}
}

func TestLesson_ItemsOrder(t *testing.T) {
	r := Default()
	l, ok := r.Lesson("basics_01_variables")
	if !ok {
		t.Fatal("basics_01_variables not found")
	}

	items := l.Items()
	// 2 exercises, 2 single-choice, 1 multi-choice, 1 output drill, 2 bug drills.
	if len(items) != 8 {
		t.Fatalf("len(items) = %d, want 8", len(items))
	}
	if items[0].Kind != KindCodingExercise || items[len(items)-1].Kind != KindBugFixDrill {
		t.Errorf("items out of presentation order: first %s last %s",
			items[0].Kind, items[len(items)-1].Kind)
	}
}

func TestDailyChallenge_Deterministic(t *testing.T) {
	a := DailyChallenge("2025-06-01")
	b := DailyChallenge("2025-06-01")

	if a.ID != b.ID || a.Prompt != b.Prompt {
		t.Error("same date must yield the same challenge")
	}
	if len(a.TestCases) == 0 {
		t.Error("daily challenge must carry test cases")
	}
}
