package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/codecompanion/internal/content"
	"github.com/abhisek/codecompanion/internal/learner"
	"github.com/abhisek/codecompanion/internal/sandbox"
	"github.com/abhisek/codecompanion/internal/validate"
)

func testRegistry(t *testing.T) *content.Registry {
	t.Helper()
	lessons := []content.Lesson{
		{
			ID:       "intro",
			Title:    "Intro",
			XPReward: 10,
			Exercises: []content.CodingExercise{{
				ID:         "intro_ex1",
				Prompt:     "Print 42.",
				Difficulty: 2,
				Concept:    "printing",
				TestCases:  []content.TestCase{{Input: "", Expected: "42"}},
				Hints:      []string{"Use print()"},
			}},
			SingleChoice: []content.SingleChoiceQuestion{{
				ID:          "intro_q1",
				Question:    "Pick B.",
				Choices:     []string{"A", "B", "C"},
				Correct:     1,
				Difficulty:  1,
				Explanation: "B was correct.",
			}},
		},
		{
			ID:            "followup",
			Title:         "Follow-up",
			XPReward:      15,
			Prerequisites: []string{"intro"},
			OutputDrills: []content.OutputDrill{{
				ID:         "followup_d1",
				Code:       "print(1 + 1)",
				Expected:   "2",
				Difficulty: 1,
			}},
		},
	}
	r, err := content.NewRegistry(lessons)
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return r
}

func testService(t *testing.T) *Service {
	t.Helper()
	l := learner.New("ada", "dragon", time.Now())
	v := validate.New(sandbox.New(sandbox.DefaultConfig()))
	return NewService(l, testRegistry(t), v, nil, nil)
}

func TestStartLesson_LockedAndUnknown(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	if _, err := s.StartLesson(ctx, "followup", time.Now()); !errors.Is(err, ErrLessonLocked) {
		t.Errorf("err = %v, want ErrLessonLocked", err)
	}
	if _, err := s.StartLesson(ctx, "nope", time.Now()); err == nil {
		t.Error("unknown lesson must error")
	}

	s.Learner.CompletedLessons["intro"] = true
	if _, err := s.StartLesson(ctx, "followup", time.Now()); err != nil {
		t.Errorf("unlocked lesson errored: %v", err)
	}
}

func TestSubmit_PassAwardsXPAndCounters(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	st, err := s.StartLesson(ctx, "intro", time.Now())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	out, err := s.Submit(ctx, st, validate.Answer{Code: "print(42)"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Verdict.Passed {
		t.Fatalf("verdict = %+v, want pass", out.Verdict)
	}
	if out.XP != 10 { // difficulty 2 * 5
		t.Errorf("XP = %d, want 10", out.XP)
	}
	if s.Learner.TotalExercisesCompleted != 1 {
		t.Errorf("TotalExercisesCompleted = %d, want 1", s.Learner.TotalExercisesCompleted)
	}
	if s.Learner.PerfectScores != 1 {
		t.Errorf("PerfectScores = %d, want 1 (no hints used)", s.Learner.PerfectScores)
	}
	if st.XPEarned != 10 || st.ItemsPassed != 1 {
		t.Errorf("session XP/passed = %d/%d, want 10/1", st.XPEarned, st.ItemsPassed)
	}
}

func TestSubmit_AutoRevealAfterThreeFailures(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	st, err := s.StartLesson(ctx, "intro", time.Now())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	st.Advance() // move past the exercise to the choice question

	for i := 1; i <= 2; i++ {
		out, err := s.Submit(ctx, st, validate.Answer{Index: 0})
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if out.RevealedAnswer != "" {
			t.Fatalf("revealed after %d failures, want only after 3", i)
		}
	}

	out, err := s.Submit(ctx, st, validate.Answer{Index: 2})
	if err != nil {
		t.Fatalf("submit 3: %v", err)
	}
	if out.RevealedAnswer != "B" {
		t.Errorf("RevealedAnswer = %q, want B", out.RevealedAnswer)
	}
	if out.Explanation != "B was correct." {
		t.Errorf("Explanation = %q", out.Explanation)
	}
	if !st.Done() {
		t.Error("revealed item must count toward session completion")
	}
	if st.AllPassed() {
		t.Error("revealed item must not count as passed")
	}
}

func TestSubmit_CodingExerciseNeverReveals(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	st, err := s.StartLesson(ctx, "intro", time.Now())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	for i := 1; i <= 5; i++ {
		out, err := s.Submit(ctx, st, validate.Answer{Code: "print(7)"})
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if out.RevealedAnswer != "" {
			t.Fatal("coding exercises must never auto-reveal")
		}
	}
}

func TestHint_TracksUsageAndBlocksPerfectScore(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	st, err := s.StartLesson(ctx, "intro", time.Now())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	text, err := s.Hint(ctx, st)
	if err != nil {
		t.Fatalf("hint: %v", err)
	}
	if text == "" {
		t.Fatal("empty hint")
	}
	if s.Learner.TotalHintsUsed != 1 {
		t.Errorf("TotalHintsUsed = %d, want 1", s.Learner.TotalHintsUsed)
	}

	if _, err := s.Submit(ctx, st, validate.Answer{Code: "print(42)"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.Learner.PerfectScores != 0 {
		t.Error("hinted exercise must not count as a perfect score")
	}
}

func TestFinish_CompletesLessonOnlyWhenAllPassed(t *testing.T) {
	s := testService(t)
	ctx := context.Background()
	start := time.Now()

	st, err := s.StartLesson(ctx, "intro", start)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := s.Submit(ctx, st, validate.Answer{Code: "print(42)"}); err != nil {
		t.Fatalf("submit exercise: %v", err)
	}
	st.Advance()
	if _, err := s.Submit(ctx, st, validate.Answer{Index: 1}); err != nil {
		t.Fatalf("submit choice: %v", err)
	}

	sum, err := s.Finish(ctx, st, start.Add(3*time.Minute))
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if !sum.LessonCompleted {
		t.Fatal("all items passed, lesson must complete")
	}
	if !s.Learner.CompletedLessons["intro"] {
		t.Error("lesson not marked complete on the aggregate")
	}
	// 10 (exercise) + 3 (choice) + 10 (lesson reward).
	if sum.XPEarned != 23 {
		t.Errorf("XPEarned = %d, want 23", sum.XPEarned)
	}
	if sum.Duration != 3*time.Minute {
		t.Errorf("Duration = %v, want 3m", sum.Duration)
	}
	found := false
	for _, name := range sum.NewAchievements {
		if name == "First Steps" {
			found = true
		}
	}
	if !found {
		t.Errorf("NewAchievements = %v, want First Steps", sum.NewAchievements)
	}
}

func TestFinish_IncompleteLessonAwardsNoLessonXP(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	st, err := s.StartLesson(ctx, "intro", time.Now())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.Submit(ctx, st, validate.Answer{Code: "print(42)"}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	sum, err := s.Finish(ctx, st, time.Now())
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if sum.LessonCompleted {
		t.Error("one unanswered item, lesson must not complete")
	}
	if s.Learner.CompletedLessons["intro"] {
		t.Error("aggregate must not mark the lesson complete")
	}
}

func TestStartDaily_OncePerDay(t *testing.T) {
	s := testService(t)
	ctx := context.Background()
	now := time.Now()

	st, err := s.StartDaily(ctx, now)
	if err != nil {
		t.Fatalf("start daily: %v", err)
	}
	if !st.Daily || len(st.Items) != 1 {
		t.Fatalf("daily state = %+v, want one item", st)
	}

	s.Learner.DailyChallengeCompleted = now.Format(learner.DateFormat)
	if _, err := s.StartDaily(ctx, now); !errors.Is(err, ErrDailyDone) {
		t.Errorf("err = %v, want ErrDailyDone", err)
	}
}

func TestCheckIn_DelegatesToStreak(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	res, _, err := s.CheckIn(ctx, time.Now())
	if err != nil {
		t.Fatalf("check-in: %v", err)
	}
	if res.Extended {
		t.Error("same-day check-in must not extend the streak")
	}
}
