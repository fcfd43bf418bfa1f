// Package hints selects the next hint for a struggling learner. Selection is
// a pure function of (item, attempt count, last error) with no hidden state.
package hints

import (
	"fmt"
	"strings"

	"github.com/abhisek/codecompanion/internal/content"
)

const (
	encouragement    = "💡 Think about the problem carefully. You can do this!"
	noHintsFallback  = "Try reviewing the lesson examples."
	persistenceBoost = "💪 Don't give up! Try breaking the problem into smaller steps."
)

// remediation maps error-category substrings to category-specific tips.
// Checked in a fixed order so overlapping matches are deterministic.
var remediation = []struct {
	category string
	tip      string
}{
	{"SyntaxError", "💡 Syntax error - check your parentheses, colons, and indentation."},
	{"NameError", "💡 Variable not defined - make sure you've created all necessary variables."},
	{"TypeError", "💡 Type mismatch - check if you need to convert types (int, str, etc.)."},
	{"IndentationError", "💡 Indentation error - indentation defines code blocks."},
	{"ValueError", "💡 Value error - check if you're converting types correctly."},
}

// Next returns the hint to show after attemptCount failed attempts, with
// lastError being the most recent sandbox error (empty if none).
//
// attemptCount 0 yields a generic encouragement; afterwards hints advance
// through the item's ordered list, clamping to the last one. A recognized
// error category appends its remediation tip; three or more attempts append
// a persistence suffix.
func Next(item content.Item, attemptCount int, lastError string) string {
	if attemptCount == 0 {
		return encouragement
	}

	hintList := item.Hints()
	base := noHintsFallback
	if len(hintList) > 0 {
		idx := attemptCount - 1
		if idx >= len(hintList) {
			idx = len(hintList) - 1
		}
		base = hintList[idx]
	}

	for _, r := range remediation {
		if strings.Contains(lastError, r.category) {
			return fmt.Sprintf("%s\n\n%s", base, r.tip)
		}
	}

	if attemptCount >= 3 {
		return fmt.Sprintf("%s\n\n%s", base, persistenceBoost)
	}
	return base
}
