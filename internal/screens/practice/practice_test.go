package practice

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/codecompanion/internal/content"
	"github.com/abhisek/codecompanion/internal/learner"
	"github.com/abhisek/codecompanion/internal/router"
	"github.com/abhisek/codecompanion/internal/sandbox"
	"github.com/abhisek/codecompanion/internal/screen"
	"github.com/abhisek/codecompanion/internal/session"
	"github.com/abhisek/codecompanion/internal/validate"
)

func testService() *session.Service {
	svc := session.NewService(
		learner.New("ada", "dragon", time.Now()),
		content.Default(),
		validate.New(sandbox.New(sandbox.DefaultConfig())),
		nil, nil,
	)
	return svc
}

func singleChoiceState() *session.State {
	item := content.Item{
		Kind: content.KindSingleChoice,
		Single: &content.SingleChoiceQuestion{
			ID:          "q1",
			Question:    "What does len('abc') return?",
			Choices:     []string{"2", "3", "4"},
			Correct:     1,
			Explanation: "len counts characters.",
			Difficulty:  1,
		},
	}
	return &session.State{
		SessionID: "test-session",
		Items:     []content.Item{item},
		Attempts:  map[string]int{},
		HintsUsed: map[string]int{},
		LastError: map[string]string{},
		Passed:    map[string]bool{},
		Revealed:  map[string]bool{},
		StartTime: time.Now(),
	}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestTitle(t *testing.T) {
	svc := testService()
	if got := New(svc, singleChoiceState()).Title(); got != "Practice" {
		t.Errorf("Title = %q, want Practice", got)
	}
	if got := NewDaily(svc).Title(); got != "Daily Challenge" {
		t.Errorf("Title = %q, want Daily Challenge", got)
	}
}

func TestSubmitCorrectChoice(t *testing.T) {
	svc := testService()
	s := New(svc, singleChoiceState())

	// Move the cursor to the correct option, then submit.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	scr, _ = scr.Update(cmd())

	ps := scr.(*PracticeScreen)
	if !ps.showingFeedback {
		t.Fatal("expected feedback after submit")
	}
	if ps.outcome == nil || !ps.outcome.Verdict.Passed {
		t.Fatalf("outcome = %+v, want passed", ps.outcome)
	}
	if ps.outcome.XP == 0 {
		t.Error("expected XP for a passed item")
	}

	// Dismissing feedback on the last item finishes the session.
	_, cmd = ps.Update(specialKey(' '))
	if cmd == nil {
		t.Fatal("expected a finish command")
	}
}

func TestWrongChoiceRetries(t *testing.T) {
	svc := testService()
	s := New(svc, singleChoiceState())

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter)) // cursor on wrong option 0
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	scr, _ = scr.Update(cmd())

	ps := scr.(*PracticeScreen)
	if ps.outcome == nil || ps.outcome.Verdict.Passed {
		t.Fatalf("outcome = %+v, want failed", ps.outcome)
	}
	if ps.outcome.RevealedAnswer != "" {
		t.Error("first failure must not reveal the answer")
	}

	// Any key returns to the same item for another try.
	scr, _ = ps.Update(specialKey(' '))
	ps = scr.(*PracticeScreen)
	if ps.showingFeedback || ps.outcome != nil {
		t.Error("expected retry state after dismissing failure feedback")
	}
}

func TestThirdFailureReveals(t *testing.T) {
	svc := testService()
	s := New(svc, singleChoiceState())

	var scr screen.Screen = s
	for i := 0; i < 3; i++ {
		var cmd tea.Cmd
		scr, cmd = scr.Update(specialKey(tea.KeyEnter))
		if cmd == nil {
			t.Fatalf("attempt %d: expected a submit command", i+1)
		}
		scr, _ = scr.Update(cmd())
		ps := scr.(*PracticeScreen)
		if i < 2 {
			scr, _ = ps.Update(specialKey(' '))
			continue
		}
		if ps.outcome == nil || ps.outcome.RevealedAnswer == "" {
			t.Fatal("expected the answer revealed on the third failure")
		}
	}
}

func TestHintRequest(t *testing.T) {
	svc := testService()
	s := New(svc, singleChoiceState())

	var scr screen.Screen = s
	scr, cmd := scr.Update(tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected a hint command")
	}
	scr, _ = scr.Update(cmd())
	ps := scr.(*PracticeScreen)
	if ps.hint == "" {
		t.Error("expected a hint to be shown")
	}
	if svc.Learner.TotalHintsUsed != 1 {
		t.Errorf("TotalHintsUsed = %d, want 1", svc.Learner.TotalHintsUsed)
	}
}

func TestDailyAlreadyDone(t *testing.T) {
	svc := testService()
	s := NewDaily(svc)

	var scr screen.Screen = s
	scr, _ = scr.Update(dailyStartedMsg{Err: session.ErrDailyDone})
	ps := scr.(*PracticeScreen)
	if ps.errMsg == "" {
		t.Fatal("expected a friendly message for a done daily")
	}

	// Any key pops back home.
	_, cmd := ps.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestFinishReplacesWithSummary(t *testing.T) {
	svc := testService()
	s := New(svc, singleChoiceState())

	_, cmd := s.Update(finishedMsg{Sum: &session.Summary{ItemsServed: 1, ItemsPassed: 1}})
	if cmd == nil {
		t.Fatal("expected a replace command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}
}
