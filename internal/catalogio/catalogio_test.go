package catalogio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/codecompanion/internal/content"
)

const validPack = `{
  "name": "extras",
  "lessons": [
    {
      "id": "extras_01_sets",
      "title": "Sets",
      "concept": "A set holds unique values.",
      "exercises": [
        {
          "id": "extras_01_ex1",
          "prompt": "Print the number of unique values in [1, 2, 2, 3].",
          "test_cases": [{"expected": "3"}],
          "hints": ["len() works on sets too."],
          "difficulty": 2,
          "concept": "sets"
        }
      ],
      "single_choice": [
        {
          "id": "extras_01_q1",
          "question": "What does {1, 1, 2} evaluate to?",
          "choices": ["{1, 1, 2}", "{1, 2}", "[1, 2]"],
          "correct": 1,
          "explanation": "Sets drop duplicates.",
          "difficulty": 1,
          "concept": "sets"
        }
      ],
      "xp_reward": 40
    }
  ]
}`

func TestLoad_ValidPack(t *testing.T) {
	lessons, err := Load(strings.NewReader(validPack))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(lessons) != 1 {
		t.Fatalf("len(lessons) = %d, want 1", len(lessons))
	}

	l := lessons[0]
	if l.ID != "extras_01_sets" {
		t.Errorf("ID = %q, want extras_01_sets", l.ID)
	}
	if l.XPReward != 40 {
		t.Errorf("XPReward = %d, want 40", l.XPReward)
	}
	items := l.Items()
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Kind != content.KindCodingExercise {
		t.Errorf("items[0].Kind = %s, want %s", items[0].Kind, content.KindCodingExercise)
	}
	if items[1].Kind != content.KindSingleChoice {
		t.Errorf("items[1].Kind = %s, want %s", items[1].Kind, content.KindSingleChoice)
	}
}

func TestLoad_FeedsRegistry(t *testing.T) {
	lessons, err := Load(strings.NewReader(validPack))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r, err := content.NewRegistry(lessons)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if _, ok := r.Item("extras_01_ex1"); !ok {
		t.Error("extras_01_ex1 not found in registry")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := Load(strings.NewReader("{not json"))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("err = %v, want invalid JSON", err)
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"no lessons key", `{"name": "empty"}`},
		{"empty lessons", `{"lessons": []}`},
		{"lesson missing id", `{"lessons": [{"title": "Sets", "concept": "x"}]}`},
		{"exercise without test cases", `{"lessons": [{
			"id": "l1", "title": "T", "concept": "c",
			"exercises": [{"id": "e1", "prompt": "p", "test_cases": []}]
		}]}`},
		{"single choice with one option", `{"lessons": [{
			"id": "l1", "title": "T", "concept": "c",
			"single_choice": [{"id": "q1", "question": "?", "choices": ["a"], "correct": 0}]
		}]}`},
		{"bad bug type", `{"lessons": [{
			"id": "l1", "title": "T", "concept": "c",
			"bug_fix_drills": [{"id": "d1", "buggy_code": "x", "fixed_code": "y", "bug_type": "cosmic"}]
		}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.doc))
			if err == nil {
				t.Fatal("expected schema rejection")
			}
			if !strings.Contains(err.Error(), "rejected") {
				t.Errorf("err = %v, want lesson pack rejected", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.json")
	if err := os.WriteFile(path, []byte(validPack), 0o644); err != nil {
		t.Fatal(err)
	}
	lessons, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(lessons) != 1 {
		t.Fatalf("len(lessons) = %d, want 1", len(lessons))
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadPath_Directory(t *testing.T) {
	dir := t.TempDir()
	second := strings.ReplaceAll(validPack, "extras_01", "extras_02")
	if err := os.WriteFile(filepath.Join(dir, "a.json"), []byte(validPack), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.json"), []byte(second), 0o644); err != nil {
		t.Fatal(err)
	}

	lessons, err := LoadPath(dir)
	if err != nil {
		t.Fatalf("LoadPath: %v", err)
	}
	if len(lessons) != 2 {
		t.Fatalf("len(lessons) = %d, want 2", len(lessons))
	}
	if lessons[0].ID != "extras_01_sets" || lessons[1].ID != "extras_02_sets" {
		t.Errorf("lesson order = %s, %s", lessons[0].ID, lessons[1].ID)
	}
}

func TestLoadDir_Empty(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	if err == nil {
		t.Fatal("expected error for empty directory")
	}
}
