package content

// Kind discriminates the five practice-item variants.
type Kind string

const (
	KindCodingExercise Kind = "coding_exercise"
	KindSingleChoice   Kind = "single_choice"
	KindMultiChoice    Kind = "multi_choice"
	KindOutputDrill    Kind = "output_drill"
	KindBugFixDrill    Kind = "bug_fix_drill"
)

// DisplayName returns a human-readable label for the item kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindCodingExercise:
		return "Coding Exercise"
	case KindSingleChoice:
		return "Quiz Question"
	case KindMultiChoice:
		return "Select All That Apply"
	case KindOutputDrill:
		return "Predict the Output"
	case KindBugFixDrill:
		return "Fix the Bug"
	default:
		return string(k)
	}
}

// Item is the tagged union over the five content-entity kinds. Exactly one
// pointer field is non-nil, matching Kind.
type Item struct {
	Kind     Kind
	Exercise *CodingExercise
	Single   *SingleChoiceQuestion
	Multi    *MultiChoiceQuestion
	Output   *OutputDrill
	BugFix   *BugFixDrill
}

// ID returns the wrapped entity's identifier.
func (it Item) ID() string {
	switch it.Kind {
	case KindCodingExercise:
		return it.Exercise.ID
	case KindSingleChoice:
		return it.Single.ID
	case KindMultiChoice:
		return it.Multi.ID
	case KindOutputDrill:
		return it.Output.ID
	case KindBugFixDrill:
		return it.BugFix.ID
	default:
		return ""
	}
}

// Hints returns the ordered hint list for kinds that carry one.
func (it Item) Hints() []string {
	switch it.Kind {
	case KindCodingExercise:
		return it.Exercise.Hints
	case KindBugFixDrill:
		return it.BugFix.Hints
	default:
		return nil
	}
}

// Difficulty returns the wrapped entity's difficulty rating.
func (it Item) Difficulty() int {
	switch it.Kind {
	case KindCodingExercise:
		return it.Exercise.Difficulty
	case KindSingleChoice:
		return it.Single.Difficulty
	case KindMultiChoice:
		return it.Multi.Difficulty
	case KindOutputDrill:
		return it.Output.Difficulty
	case KindBugFixDrill:
		return it.BugFix.Difficulty
	default:
		return 0
	}
}

// Explanation returns the post-answer explanation for kinds that carry one.
func (it Item) Explanation() string {
	switch it.Kind {
	case KindSingleChoice:
		return it.Single.Explanation
	case KindMultiChoice:
		return it.Multi.Explanation
	case KindOutputDrill:
		return it.Output.Explanation
	case KindBugFixDrill:
		return it.BugFix.Explanation
	default:
		return ""
	}
}

// IsDrill reports whether the item counts toward the drill counters rather
// than the exercise counters.
func (it Item) IsDrill() bool {
	switch it.Kind {
	case KindOutputDrill, KindBugFixDrill:
		return true
	default:
		return false
	}
}
