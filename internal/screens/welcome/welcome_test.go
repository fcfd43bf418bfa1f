package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/codecompanion/internal/router"
	"github.com/abhisek/codecompanion/internal/screen"
	"github.com/abhisek/codecompanion/internal/session"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome(svc *session.Service) (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(svc, factory), &callCount
}

func returningService(t *testing.T) *session.Service {
	t.Helper()
	svc := session.NewService(nil, nil, nil, nil, nil)
	l, err := svc.Onboard(t.Context(), "ada", "dragon", time.Now())
	if err != nil {
		t.Fatalf("onboard: %v", err)
	}
	if l == nil {
		t.Fatal("onboard returned nil learner")
	}
	return svc
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func TestSplashPhases(t *testing.T) {
	w, _ := newTestWelcome(returningService(t))

	view := w.View(80, 24)
	if strings.Contains(view, "Learn Python") {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 5)
	if w.elapsed != 500*time.Millisecond {
		t.Errorf("expected elapsed 500ms, got %v", w.elapsed)
	}

	sendTicks(w, 10)
	view = w.View(80, 24)
	if !strings.Contains(view, "Learn Python") {
		t.Error("tagline should be visible once the banner phase starts")
	}
}

func TestReturningLearnerSkipsOnboarding(t *testing.T) {
	w, callCount := newTestWelcome(returningService(t))

	sendTicks(w, 3)
	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress should trigger the home transition")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replaceMsg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcome(returningService(t))

	w.Update(tea.KeyPressMsg{Code: 'a'})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestOnboardingFlow(t *testing.T) {
	svc := session.NewService(nil, nil, nil, nil, nil)
	w, callCount := newTestWelcome(svc)

	// First keypress on a fresh profile enters the name step.
	w.Update(tea.KeyPressMsg{Code: ' '})
	if w.phase != phaseName {
		t.Fatalf("phase = %v, want phaseName", w.phase)
	}

	// Empty name must not advance.
	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if w.phase != phaseName {
		t.Fatal("empty name must not advance")
	}

	w.nameInput.Model.SetValue("ada")
	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if w.phase != phaseCompanion {
		t.Fatalf("phase = %v, want phaseCompanion", w.phase)
	}

	// Browse to the second companion type, then choose it.
	w.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if w.companionIdx != 1 {
		t.Errorf("companionIdx = %d, want 1", w.companionIdx)
	}

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on companion choice should produce an onboard command")
	}
	done, ok := cmd().(onboardDoneMsg)
	if !ok {
		t.Fatalf("expected onboardDoneMsg, got %T", cmd())
	}
	if done.Err != nil {
		t.Fatalf("onboard: %v", done.Err)
	}

	_, cmd = w.Update(done)
	if cmd == nil {
		t.Fatal("onboardDoneMsg should trigger the home transition")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg after onboarding")
	}

	if svc.Learner == nil || svc.Learner.Username != "ada" {
		t.Errorf("learner not created: %+v", svc.Learner)
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome(returningService(t))
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
