package hints

import (
	"strings"
	"testing"

	"github.com/abhisek/codecompanion/internal/content"
)

func exerciseItem(hintTexts ...string) content.Item {
	return content.Item{
		Kind:     content.KindCodingExercise,
		Exercise: &content.CodingExercise{ID: "ex", Hints: hintTexts},
	}
}

func TestNext_FirstAttemptIsGeneric(t *testing.T) {
	got := Next(exerciseItem("h1", "h2"), 0, "")
	if got != encouragement {
		t.Errorf("Next(0) = %q, want generic encouragement", got)
	}
}

func TestNext_AdvancesThroughHints(t *testing.T) {
	item := exerciseItem("h1", "h2", "h3")

	tests := []struct {
		attempts int
		wantBase string
	}{
		{1, "h1"},
		{2, "h2"},
		{3, "h3"},
		{4, "h3"}, // clamped to last
		{9, "h3"},
	}
	for _, tt := range tests {
		got := Next(item, tt.attempts, "")
		if !strings.HasPrefix(got, tt.wantBase) {
			t.Errorf("Next(%d) = %q, want prefix %q", tt.attempts, got, tt.wantBase)
		}
	}
}

func TestNext_NoHintsFallback(t *testing.T) {
	got := Next(exerciseItem(), 1, "")
	if !strings.HasPrefix(got, noHintsFallback) {
		t.Errorf("Next with no hints = %q, want fallback", got)
	}
}

func TestNext_ErrorRemediation(t *testing.T) {
	item := exerciseItem("h1")

	tests := []struct {
		lastError string
		wantTip   string
	}{
		{"NameError: undefined: X", "Variable not defined"},
		{"SyntaxError: got newline, want ':'", "parentheses, colons"},
		{"TypeError: unknown binary op", "convert types"},
		{"IndentationError: unindent", "Indentation"},
		{"ValueError: invalid literal", "converting types"},
	}
	for _, tt := range tests {
		got := Next(item, 1, tt.lastError)
		if !strings.Contains(got, tt.wantTip) {
			t.Errorf("Next(err=%q) = %q, want tip containing %q", tt.lastError, got, tt.wantTip)
		}
	}
}

func TestNext_PersistenceSuffixAfterThree(t *testing.T) {
	item := exerciseItem("h1")

	if strings.Contains(Next(item, 2, ""), persistenceBoost) {
		t.Error("persistence suffix must not appear before three attempts")
	}
	if !strings.Contains(Next(item, 3, ""), persistenceBoost) {
		t.Error("persistence suffix missing at three attempts")
	}
}

func TestNext_RemediationTakesPriorityOverPersistence(t *testing.T) {
	item := exerciseItem("h1")

	got := Next(item, 5, "NameError: undefined: x")
	if !strings.Contains(got, "Variable not defined") {
		t.Errorf("Next = %q, want remediation tip", got)
	}
}
