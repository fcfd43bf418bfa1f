// Package session orchestrates practice sessions: it serves items, routes
// submissions through the validator, applies rewards to the learner
// aggregate, and persists events and snapshots.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/codecompanion/internal/achievements"
	"github.com/abhisek/codecompanion/internal/content"
	"github.com/abhisek/codecompanion/internal/hints"
	"github.com/abhisek/codecompanion/internal/learner"
	"github.com/abhisek/codecompanion/internal/progression"
	"github.com/abhisek/codecompanion/internal/store"
	"github.com/abhisek/codecompanion/internal/streak"
	"github.com/abhisek/codecompanion/internal/validate"
)

// XP multipliers per item kind. Bug fixes and coding exercises pay more than
// recognition tasks.
const (
	xpFactorExercise = 5
	xpFactorBugFix   = 5
	xpFactorChoice   = 3
	xpFactorDrill    = 3
)

// snapshotsToKeep bounds snapshot history in the store.
const snapshotsToKeep = 20

// ErrLessonLocked is returned when a lesson's prerequisites aren't met.
var ErrLessonLocked = errors.New("lesson is locked")

// ErrDailyDone is returned when today's challenge was already completed.
var ErrDailyDone = errors.New("daily challenge already completed today")

// Service runs practice sessions against the learner aggregate. Snapshots
// and Events may be nil (e.g. in tests); persistence is then skipped.
type Service struct {
	Learner   *learner.Learner
	Registry  *content.Registry
	Validator *validate.Validator
	Snapshots store.SnapshotRepo
	Events    store.EventRepo
}

// NewService wires a session service.
func NewService(l *learner.Learner, reg *content.Registry, v *validate.Validator,
	snaps store.SnapshotRepo, events store.EventRepo) *Service {
	return &Service{
		Learner:   l,
		Registry:  reg,
		Validator: v,
		Snapshots: snaps,
		Events:    events,
	}
}

// Onboard creates a fresh learner aggregate and persists its first snapshot.
func (s *Service) Onboard(ctx context.Context, username, companionType string, now time.Time) (*learner.Learner, error) {
	l := learner.New(username, companionType, now)
	s.Learner = l
	if err := s.saveSnapshot(ctx); err != nil {
		return nil, err
	}
	return l, nil
}

// CheckIn applies the daily streak check-in, records the outcome, and
// returns it together with any achievements it unlocked.
func (s *Service) CheckIn(ctx context.Context, now time.Time) (streak.CheckIn, []string, error) {
	res := streak.Check(s.Learner, now)

	if s.Events != nil {
		err := s.Events.AppendCheckinEvent(ctx, store.CheckinEventData{
			Date:       now.Format(learner.DateFormat),
			StreakDays: s.Learner.StreakDays,
			Vitality:   s.Learner.CompanionVitality,
			Stage:      s.Learner.CompanionStage,
			Extended:   res.Extended,
			Evolved:    res.Evolved,
		})
		if err != nil {
			return res, nil, fmt.Errorf("record check-in: %w", err)
		}
	}

	unlocked := achievements.Check(s.Learner)
	if err := s.saveSnapshot(ctx); err != nil {
		return res, unlocked, err
	}
	return res, unlocked, nil
}

// StartLesson begins a session over the lesson's practice items.
func (s *Service) StartLesson(ctx context.Context, lessonID string, now time.Time) (*State, error) {
	l, ok := s.Registry.Lesson(lessonID)
	if !ok {
		return nil, fmt.Errorf("unknown lesson %q", lessonID)
	}
	if !s.Registry.Unlocked(lessonID, s.Learner.CompletedLessons) {
		return nil, ErrLessonLocked
	}

	st := newState(uuid.NewString(), lessonID, l.Items(), now)
	if err := s.appendSessionEvent(ctx, st, "start", 0); err != nil {
		return nil, err
	}
	return st, nil
}

// StartDaily begins a session over today's daily challenge. It fails once
// the challenge has been completed for the day.
func (s *Service) StartDaily(ctx context.Context, now time.Time) (*State, error) {
	today := now.Format(learner.DateFormat)
	if s.Learner.DailyChallengeCompleted == today {
		return nil, ErrDailyDone
	}

	ex := content.DailyChallenge(today)
	items := []content.Item{{Kind: content.KindCodingExercise, Exercise: &ex}}

	st := newState(uuid.NewString(), "", items, now)
	st.Daily = true
	if err := s.appendSessionEvent(ctx, st, "start", 0); err != nil {
		return nil, err
	}
	return st, nil
}

// Outcome is the result of one submission.
type Outcome struct {
	Verdict validate.Verdict

	// XP is the amount granted for a pass, zero otherwise.
	XP        int
	LeveledUp bool
	NewLevel  int

	// NewAchievements holds display names unlocked by this submission.
	NewAchievements []string

	// RevealedAnswer is non-empty when repeated failures triggered an
	// auto-reveal of the correct answer.
	RevealedAnswer string

	// Explanation is the item's teaching note, shown after pass or reveal.
	Explanation string
}

// Submit judges the answer for the current item and applies all progression
// effects of the verdict.
func (s *Service) Submit(ctx context.Context, st *State, ans validate.Answer) (*Outcome, error) {
	it, ok := st.Current()
	if !ok {
		return nil, errors.New("no current item")
	}
	id := it.ID()

	if st.Attempts[id] == 0 {
		st.ItemsServed++
	}
	st.Attempts[id]++

	verdict := s.Validator.Check(ctx, it, ans)
	st.LastVerdict = &verdict
	out := &Outcome{Verdict: verdict}

	if s.Events != nil {
		err := s.Events.AppendAttemptEvent(ctx, store.AttemptEventData{
			SessionID: st.SessionID,
			LessonID:  st.LessonID,
			ItemID:    id,
			ItemKind:  string(it.Kind),
			Answer:    renderAnswer(it, ans),
			Passed:    verdict.Passed,
			AttemptNo: st.Attempts[id],
			TimeMs:    int(time.Since(st.StartTime).Milliseconds()),
		})
		if err != nil {
			return nil, fmt.Errorf("record attempt: %w", err)
		}
	}

	if verdict.Passed {
		st.Passed[id] = true
		st.ItemsPassed++
		s.applyPass(st, it, out)
		out.NewAchievements = achievements.Check(s.Learner)
		out.Explanation = it.Explanation()
		return out, nil
	}

	// Remember the execution error so the next hint can target it.
	if strings.HasPrefix(verdict.Message, "Runtime Error:") {
		st.LastError[id] = verdict.Message
	}

	// Recognition tasks reveal their answer after repeated failures. Coding
	// exercises never do; the learner keeps the hints instead.
	if it.Kind != content.KindCodingExercise && st.Attempts[id] >= AutoRevealThreshold {
		st.Revealed[id] = true
		out.RevealedAnswer = revealAnswer(it)
		out.Explanation = it.Explanation()
	}
	return out, nil
}

// Hint returns the next hint for the current item, recording its use.
func (s *Service) Hint(ctx context.Context, st *State) (string, error) {
	it, ok := st.Current()
	if !ok {
		return "", errors.New("no current item")
	}
	id := it.ID()

	text := hints.Next(it, st.Attempts[id], st.LastError[id])
	st.HintsUsed[id]++
	s.Learner.TotalHintsUsed++

	if s.Events != nil {
		err := s.Events.AppendHintEvent(ctx, store.HintEventData{
			SessionID: st.SessionID,
			ItemID:    id,
			AttemptNo: st.Attempts[id],
			HintText:  text,
		})
		if err != nil {
			return "", fmt.Errorf("record hint: %w", err)
		}
	}
	return text, nil
}

// Finish closes the session. Completing every item of a not-yet-completed
// lesson awards the lesson's XP; the learner state is then snapshotted.
func (s *Service) Finish(ctx context.Context, st *State, now time.Time) (*Summary, error) {
	st.Phase = PhaseSummary
	sum := buildSummary(st, now)

	if !st.Daily && st.AllPassed() && !s.Learner.CompletedLessons[st.LessonID] {
		if l, ok := s.Registry.Lesson(st.LessonID); ok {
			s.Learner.CompletedLessons[st.LessonID] = true
			award := progression.AddXP(s.Learner, l.XPReward,
				fmt.Sprintf("Completed lesson: %s", l.Title))
			st.XPEarned += award.Amount
			sum.XPEarned += award.Amount
			sum.LessonCompleted = true
			sum.LeveledUp = sum.LeveledUp || award.LeveledUp
			sum.NewAchievements = append(sum.NewAchievements, achievements.Check(s.Learner)...)
		}
	}

	if err := s.appendSessionEvent(ctx, st, "end", int(sum.Duration.Seconds())); err != nil {
		return nil, err
	}
	if err := s.saveSnapshot(ctx); err != nil {
		return nil, err
	}
	return sum, nil
}

// applyPass grants XP and bumps the aggregate counters for a passed item.
func (s *Service) applyPass(st *State, it content.Item, out *Outcome) {
	l := s.Learner
	id := it.ID()

	var amount int
	var reason string
	switch it.Kind {
	case content.KindCodingExercise:
		if st.Daily {
			amount = content.DailyBonusXP
			reason = "Daily Challenge completed!"
			l.DailyChallengeCompleted = st.DateKey
		} else {
			amount = it.Difficulty() * xpFactorExercise
			reason = fmt.Sprintf("Completed %s exercise", it.Exercise.Concept)
		}
		l.TotalExercisesCompleted++
		l.CompletedExercises[id]++
		if st.HintsUsed[id] == 0 {
			l.PerfectScores++
		}
	case content.KindSingleChoice, content.KindMultiChoice:
		amount = it.Difficulty() * xpFactorChoice
		reason = "Answered question correctly"
	case content.KindOutputDrill:
		amount = it.Difficulty() * xpFactorDrill
		reason = "Completed output drill"
		l.TotalDrillsCompleted++
		l.CompletedDrills[id]++
	case content.KindBugFixDrill:
		amount = it.Difficulty() * xpFactorBugFix
		reason = "Fixed a bug!"
		l.TotalDrillsCompleted++
		l.CompletedDrills[id]++
		l.TotalBugsFixed++
	}

	award := progression.AddXP(l, amount, reason)
	st.XPEarned += award.Amount
	out.XP = award.Amount
	out.LeveledUp = award.LeveledUp
	out.NewLevel = award.NewLevel
}

func (s *Service) appendSessionEvent(ctx context.Context, st *State, action string, durationSecs int) error {
	if s.Events == nil {
		return nil
	}
	data := store.SessionEventData{
		SessionID: st.SessionID,
		Action:    action,
		LessonID:  st.LessonID,
	}
	if action == "end" {
		data.ItemsServed = st.ItemsServed
		data.ItemsPassed = st.ItemsPassed
		data.XPEarned = st.XPEarned
		data.DurationSecs = durationSecs
	}
	if err := s.Events.AppendSessionEvent(ctx, data); err != nil {
		return fmt.Errorf("record session %s: %w", action, err)
	}
	return nil
}

func (s *Service) saveSnapshot(ctx context.Context) error {
	if s.Snapshots == nil {
		return nil
	}
	if err := s.Snapshots.Save(ctx, s.Learner); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := s.Snapshots.Prune(ctx, snapshotsToKeep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// renderAnswer flattens an answer into one string for the event log.
func renderAnswer(it content.Item, ans validate.Answer) string {
	switch it.Kind {
	case content.KindCodingExercise, content.KindBugFixDrill:
		return ans.Code
	case content.KindSingleChoice:
		return fmt.Sprintf("%d", ans.Index)
	case content.KindMultiChoice:
		parts := make([]string, len(ans.Indices))
		for i, idx := range ans.Indices {
			parts[i] = fmt.Sprintf("%d", idx)
		}
		return strings.Join(parts, ",")
	default:
		return ans.Text
	}
}

// revealAnswer renders the correct answer for display after an auto-reveal.
func revealAnswer(it content.Item) string {
	switch it.Kind {
	case content.KindSingleChoice:
		q := it.Single
		if q.Correct >= 0 && q.Correct < len(q.Choices) {
			return q.Choices[q.Correct]
		}
	case content.KindMultiChoice:
		q := it.Multi
		var parts []string
		for _, idx := range q.Correct {
			if idx >= 0 && idx < len(q.Choices) {
				parts = append(parts, q.Choices[idx])
			}
		}
		return strings.Join(parts, ", ")
	case content.KindOutputDrill:
		return it.Output.Expected
	case content.KindBugFixDrill:
		return it.BugFix.FixedCode
	}
	return ""
}
