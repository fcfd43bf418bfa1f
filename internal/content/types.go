// Package content defines the immutable learning entities and the read-only
// catalog registry they live in. The core never mutates content; entities are
// constructed once and shared.
package content

// TestCase pairs a test input with its expected printed output.
type TestCase struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
}

// CodingExercise is a free-form coding task validated against test cases.
type CodingExercise struct {
	ID          string     `json:"id"`
	Prompt      string     `json:"prompt"`
	TestCases   []TestCase `json:"test_cases"`
	Hints       []string   `json:"hints"`
	Difficulty  int        `json:"difficulty"`
	Concept     string     `json:"concept"`
	StarterCode string     `json:"starter_code,omitempty"`
}

// SingleChoiceQuestion has exactly one correct choice index.
type SingleChoiceQuestion struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Choices     []string `json:"choices"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
	Difficulty  int      `json:"difficulty"`
	Concept     string   `json:"concept"`
}

// MultiChoiceQuestion requires the selected set to match Correct exactly.
// No partial credit.
type MultiChoiceQuestion struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Choices     []string `json:"choices"`
	Correct     []int    `json:"correct"`
	Explanation string   `json:"explanation"`
	Difficulty  int      `json:"difficulty"`
	Concept     string   `json:"concept"`
}

// OutputDrill shows a snippet and asks the learner to predict its stdout.
type OutputDrill struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Expected    string `json:"expected"`
	Explanation string `json:"explanation"`
	Difficulty  int    `json:"difficulty"`
	Concept     string `json:"concept"`
}

// BugFixDrill asks the learner to repair broken code.
type BugFixDrill struct {
	ID          string   `json:"id"`
	BuggyCode   string   `json:"buggy_code"`
	BugType     string   `json:"bug_type"` // "syntax", "logic", "runtime", "indentation"
	Description string   `json:"description"`
	FixedCode   string   `json:"fixed_code"`
	Explanation string   `json:"explanation"`
	Difficulty  int      `json:"difficulty"`
	Concept     string   `json:"concept"`
	Hints       []string `json:"hints"`
}

// Example is a worked code example shown in lesson material.
type Example struct {
	Code        string `json:"code"`
	Explanation string `json:"explanation"`
}

// Lesson groups concept material with its practice items.
type Lesson struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	Concept       string                 `json:"concept"`
	Examples      []Example              `json:"examples"`
	Exercises     []CodingExercise       `json:"exercises"`
	SingleChoice  []SingleChoiceQuestion `json:"single_choice"`
	MultiChoice   []MultiChoiceQuestion  `json:"multi_choice"`
	OutputDrills  []OutputDrill          `json:"output_drills"`
	BugFixDrills  []BugFixDrill          `json:"bug_fix_drills"`
	Prerequisites []string               `json:"prerequisites"`
	XPReward      int                    `json:"xp_reward"`
	SkillPath     string                 `json:"skill_path"`
}

// Items returns the lesson's practice items in presentation order:
// exercises, single-choice, multi-choice, output drills, bug-fix drills.
func (l *Lesson) Items() []Item {
	var items []Item
	for i := range l.Exercises {
		items = append(items, Item{Kind: KindCodingExercise, Exercise: &l.Exercises[i]})
	}
	for i := range l.SingleChoice {
		items = append(items, Item{Kind: KindSingleChoice, Single: &l.SingleChoice[i]})
	}
	for i := range l.MultiChoice {
		items = append(items, Item{Kind: KindMultiChoice, Multi: &l.MultiChoice[i]})
	}
	for i := range l.OutputDrills {
		items = append(items, Item{Kind: KindOutputDrill, Output: &l.OutputDrills[i]})
	}
	for i := range l.BugFixDrills {
		items = append(items, Item{Kind: KindBugFixDrill, BugFix: &l.BugFixDrills[i]})
	}
	return items
}
