// Package validate judges learner answers across the five practice-item
// modalities. Choice-based checks are pure data comparisons; coding-based
// checks delegate execution to the sandbox.
package validate

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/codecompanion/internal/content"
	"github.com/abhisek/codecompanion/internal/sandbox"
)

// Verdict is the result of judging a single submission.
type Verdict struct {
	Passed  bool
	Message string
	Details []string // per-test failure details for coding exercises
}

// Answer carries the learner's submission for any item kind. Exactly the
// field matching the item's kind is consulted.
type Answer struct {
	Code    string // coding exercise, bug-fix drill
	Index   int    // single choice
	Indices []int  // multi choice
	Text    string // output drill
}

// Validator judges submissions. It owns a sandbox for the coding modalities.
type Validator struct {
	sb *sandbox.Sandbox
}

// New creates a Validator backed by the given sandbox.
func New(sb *sandbox.Sandbox) *Validator {
	return &Validator{sb: sb}
}

// Check routes the answer to the judge matching the item's kind. This is the
// single dispatch point over the content union; callers never inspect kinds
// themselves.
func (v *Validator) Check(ctx context.Context, item content.Item, ans Answer) Verdict {
	switch item.Kind {
	case content.KindCodingExercise:
		return v.CheckExercise(ctx, item.Exercise, ans.Code)
	case content.KindSingleChoice:
		return v.CheckSingleChoice(item.Single, ans.Index)
	case content.KindMultiChoice:
		return v.CheckMultiChoice(item.Multi, ans.Indices)
	case content.KindOutputDrill:
		return v.CheckOutputDrill(item.Output, ans.Text)
	case content.KindBugFixDrill:
		return v.CheckBugFix(ctx, item.BugFix, ans.Code)
	default:
		return Verdict{Message: fmt.Sprintf("unknown item kind %q", item.Kind)}
	}
}

// CheckExercise runs the learner's code once per test case and compares
// normalized output. A run that fails to execute short-circuits with a
// runtime-error verdict; otherwise all cases must match.
func (v *Validator) CheckExercise(ctx context.Context, ex *content.CodingExercise, code string) Verdict {
	var details []string
	for _, tc := range ex.TestCases {
		res := v.sb.Execute(ctx, code, tc.Input)
		if !res.Success {
			return Verdict{
				Message: fmt.Sprintf("Runtime Error: %s", res.Err),
				Details: []string{res.Err},
			}
		}
		got := normalizeOutput(res.Stdout)
		want := normalizeOutput(tc.Expected)
		if got != want {
			details = append(details, fmt.Sprintf("Expected: %s\nGot: %s", want, got))
		}
	}

	if len(details) > 0 {
		return Verdict{Message: "Some test cases failed", Details: details}
	}
	return Verdict{Passed: true, Message: "Perfect! All tests passed! 🎉"}
}

// CheckSingleChoice is exact index equality.
func (v *Validator) CheckSingleChoice(q *content.SingleChoiceQuestion, selected int) Verdict {
	if selected == q.Correct {
		return Verdict{Passed: true, Message: "Correct!"}
	}
	return Verdict{Message: "That's not quite right. Try again!"}
}

// CheckMultiChoice requires the selected set to equal the correct set.
// Extra or missing selections both fail; order is irrelevant.
func (v *Validator) CheckMultiChoice(q *content.MultiChoiceQuestion, selected []int) Verdict {
	if equalIndexSets(selected, q.Correct) {
		return Verdict{Passed: true, Message: "Correct!"}
	}
	return Verdict{Message: "Not quite - check your selections. Try again!"}
}

// CheckOutputDrill is whitespace-trimmed string equality.
func (v *Validator) CheckOutputDrill(d *content.OutputDrill, answer string) Verdict {
	if strings.TrimSpace(answer) == strings.TrimSpace(d.Expected) {
		return Verdict{Passed: true, Message: "Correct!"}
	}
	return Verdict{Message: "Not quite - trace through the code again."}
}

// CheckBugFix is the three-tier check: exact normalized match, then
// behavioral equivalence via execution, then rejection.
func (v *Validator) CheckBugFix(ctx context.Context, d *content.BugFixDrill, code string) Verdict {
	userClean := normalizeCode(code)
	fixedClean := normalizeCode(d.FixedCode)

	if userClean == fixedClean {
		return Verdict{Passed: true, Message: "Perfect fix!"}
	}

	userRes := v.sb.Execute(ctx, code, "")
	fixedRes := v.sb.Execute(ctx, d.FixedCode, "")
	if userRes.Success && fixedRes.Success &&
		strings.TrimSpace(userRes.Stdout) == strings.TrimSpace(fixedRes.Stdout) {
		return Verdict{Passed: true, Message: "Code works! (Alternative solution accepted)"}
	}

	return Verdict{Message: "Bug still present or code doesn't work correctly"}
}

// normalizeOutput trims and normalizes line endings for comparison.
func normalizeOutput(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
}

// normalizeCode trims and normalizes line endings without touching
// interior whitespace, which is significant.
func normalizeCode(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
}

// equalIndexSets compares two index slices as sets: duplicates collapse and
// order is ignored.
func equalIndexSets(a, b []int) bool {
	as := make(map[int]bool, len(a))
	for _, i := range a {
		as[i] = true
	}
	bs := make(map[int]bool, len(b))
	for _, i := range b {
		bs[i] = true
	}
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !bs[i] {
			return false
		}
	}
	return true
}
