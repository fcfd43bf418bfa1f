package validate

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/codecompanion/internal/content"
	"github.com/abhisek/codecompanion/internal/sandbox"
)

func newValidator() *Validator {
	return New(sandbox.New(sandbox.DefaultConfig()))
}

func TestCheckExercise_SumOfEvens(t *testing.T) {
	v := newValidator()
	ex := &content.CodingExercise{
		ID:     "daily_sum_evens",
		Prompt: "Sum of evens from 1 to n.",
		TestCases: []content.TestCase{
			{Input: "10", Expected: "30"},
			{Input: "5", Expected: "6"},
			{Input: "1", Expected: "0"},
		},
	}
	code := "def sum_evens(n):\n" +
		"    total = 0\n" +
		"    for i in range(1, n + 1):\n" +
		"        if i % 2 == 0:\n" +
		"            total += i\n" +
		"    return total\n" +
		"\n" +
		"print(sum_evens(int(stdin)))"

	verdict := v.CheckExercise(context.Background(), ex, code)

	if !verdict.Passed {
		t.Fatalf("Passed = false, Message = %q Details = %v", verdict.Message, verdict.Details)
	}
	if len(verdict.Details) != 0 {
		t.Errorf("Details = %v, want none", verdict.Details)
	}
}

func TestCheckExercise_Mismatch(t *testing.T) {
	v := newValidator()
	ex := &content.CodingExercise{
		ID:        "ex",
		TestCases: []content.TestCase{{Input: "", Expected: "8"}},
	}

	verdict := v.CheckExercise(context.Background(), ex, "print(7)")

	if verdict.Passed {
		t.Fatal("wrong output must not pass")
	}
	if len(verdict.Details) != 1 {
		t.Fatalf("Details = %v, want one mismatch", verdict.Details)
	}
	if !strings.Contains(verdict.Details[0], "Expected: 8") {
		t.Errorf("Details[0] = %q, want expected/got pair", verdict.Details[0])
	}
}

func TestCheckExercise_RuntimeErrorShortCircuits(t *testing.T) {
	v := newValidator()
	ex := &content.CodingExercise{
		ID: "ex",
		TestCases: []content.TestCase{
			{Input: "", Expected: "1"},
			{Input: "", Expected: "2"},
		},
	}

	verdict := v.CheckExercise(context.Background(), ex, "print(undefined_name)")

	if verdict.Passed {
		t.Fatal("runtime error must not pass")
	}
	if !strings.HasPrefix(verdict.Message, "Runtime Error:") {
		t.Errorf("Message = %q, want Runtime Error prefix", verdict.Message)
	}
	if len(verdict.Details) != 1 {
		t.Errorf("Details = %v, want the single error", verdict.Details)
	}
}

func TestCheckSingleChoice(t *testing.T) {
	v := newValidator()
	q := &content.SingleChoiceQuestion{Correct: 2}

	if !v.CheckSingleChoice(q, 2).Passed {
		t.Error("correct index rejected")
	}
	if v.CheckSingleChoice(q, 1).Passed {
		t.Error("wrong index accepted")
	}
}

func TestCheckMultiChoice_OrderIndependent(t *testing.T) {
	v := newValidator()
	q := &content.MultiChoiceQuestion{Correct: []int{0, 2, 3}}

	tests := []struct {
		selected []int
		want     bool
	}{
		{[]int{3, 0, 2}, true},
		{[]int{0, 2, 3}, true},
		{[]int{2, 0}, false},     // missing selection
		{[]int{0, 1, 2, 3}, false}, // extra selection
		{nil, false},
	}
	for _, tt := range tests {
		got := v.CheckMultiChoice(q, tt.selected).Passed
		if got != tt.want {
			t.Errorf("CheckMultiChoice(%v) = %v, want %v", tt.selected, got, tt.want)
		}
	}
}

func TestCheckMultiChoice_PairEquivalence(t *testing.T) {
	v := newValidator()
	q := &content.MultiChoiceQuestion{Correct: []int{0, 2}}

	if v.CheckMultiChoice(q, []int{2, 0}).Passed != v.CheckMultiChoice(q, []int{0, 2}).Passed {
		t.Error("selection order must not affect the verdict")
	}
}

func TestCheckOutputDrill_WhitespaceTolerant(t *testing.T) {
	v := newValidator()
	d := &content.OutputDrill{
		Code:     "x=10\ny=20\nx=y\nprint(x)",
		Expected: "20",
	}

	if !v.CheckOutputDrill(d, " 20 ").Passed {
		t.Error("answer with surrounding whitespace must be accepted")
	}
	if v.CheckOutputDrill(d, "10").Passed {
		t.Error("wrong prediction accepted")
	}
}

func TestCheckBugFix_ExactMatch(t *testing.T) {
	v := newValidator()
	d := &content.BugFixDrill{
		BuggyCode: "x = 5\nprint(X)",
		FixedCode: "x = 5\nprint(x)",
	}

	verdict := v.CheckBugFix(context.Background(), d, "x = 5\nprint(x)")

	if !verdict.Passed {
		t.Fatalf("exact fix rejected: %q", verdict.Message)
	}
	if verdict.Message != "Perfect fix!" {
		t.Errorf("Message = %q, want Perfect fix!", verdict.Message)
	}
}

func TestCheckBugFix_TrailingWhitespaceNormalized(t *testing.T) {
	v := newValidator()
	d := &content.BugFixDrill{
		BuggyCode: "x = 5\nprint(X)",
		FixedCode: "x = 5\nprint(x)",
	}

	verdict := v.CheckBugFix(context.Background(), d, "x = 5\nprint(x) ")

	if !verdict.Passed {
		t.Fatalf("normalized fix rejected: %q", verdict.Message)
	}
}

func TestCheckBugFix_AlternativeSolution(t *testing.T) {
	v := newValidator()
	d := &content.BugFixDrill{
		BuggyCode: "total = 0\nfor i in range(5):\n    total = i\nprint(total)",
		FixedCode: "total = 0\nfor i in range(5):\n    total += i\nprint(total)",
	}
	// Same output, different shape.
	alt := "print(sum([0, 1, 2, 3, 4]))"

	verdict := v.CheckBugFix(context.Background(), d, alt)

	if !verdict.Passed {
		t.Fatalf("behaviorally equivalent fix rejected: %q", verdict.Message)
	}
	if !strings.Contains(verdict.Message, "Alternative") {
		t.Errorf("Message = %q, want alternative-solution acceptance", verdict.Message)
	}
}

func TestCheckBugFix_StillBroken(t *testing.T) {
	v := newValidator()
	d := &content.BugFixDrill{
		BuggyCode: "x = 5\nprint(X)",
		FixedCode: "x = 5\nprint(x)",
	}

	verdict := v.CheckBugFix(context.Background(), d, "x = 5\nprint(X)")

	if verdict.Passed {
		t.Fatal("unfixed code accepted")
	}
}

func TestCheck_DispatchesOnKind(t *testing.T) {
	v := newValidator()
	item := content.Item{
		Kind:   content.KindSingleChoice,
		Single: &content.SingleChoiceQuestion{Correct: 1},
	}

	verdict := v.Check(context.Background(), item, Answer{Index: 1})

	if !verdict.Passed {
		t.Error("dispatch to single-choice failed")
	}
}
