package practice

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/codecompanion/internal/content"
	"github.com/abhisek/codecompanion/internal/router"
	"github.com/abhisek/codecompanion/internal/screen"
	"github.com/abhisek/codecompanion/internal/screens/summary"
	"github.com/abhisek/codecompanion/internal/session"
	"github.com/abhisek/codecompanion/internal/ui/components"
	"github.com/abhisek/codecompanion/internal/ui/layout"
	"github.com/abhisek/codecompanion/internal/validate"
)

// PracticeScreen runs a practice session item by item: it shows the prompt,
// collects the answer with a kind-specific widget, and displays feedback.
type PracticeScreen struct {
	svc   *session.Service
	st    *session.State
	daily bool

	editor components.CodeEditor
	choice components.Choice
	output components.TextInput

	showingFeedback bool
	outcome         *session.Outcome
	hint            string
	errMsg          string
	submitting      bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen over an already-started session.
func New(svc *session.Service, st *session.State) *PracticeScreen {
	s := &PracticeScreen{svc: svc, st: st}
	s.prepare()
	return s
}

// NewDaily creates a PracticeScreen that starts today's daily challenge.
func NewDaily(svc *session.Service) *PracticeScreen {
	return &PracticeScreen{svc: svc, daily: true}
}

func (s *PracticeScreen) Init() tea.Cmd {
	if s.st == nil {
		svc := s.svc
		return func() tea.Msg {
			st, err := svc.StartDaily(context.Background(), time.Now())
			return dailyStartedMsg{State: st, Err: err}
		}
	}
	return s.inputInit()
}

func (s *PracticeScreen) Title() string {
	if s.daily {
		return "Daily Challenge"
	}
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	it, ok := s.currentItem()
	if !ok {
		return nil
	}
	switch it.Kind {
	case content.KindCodingExercise, content.KindBugFixDrill:
		return []layout.KeyHint{
			{Key: "Ctrl+R", Description: "Run"},
			{Key: "Ctrl+H", Description: "Hint"},
			{Key: "Esc", Description: "Back"},
		}
	case content.KindMultiChoice:
		return []layout.KeyHint{
			{Key: "Space", Description: "Toggle"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+H", Description: "Hint"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *PracticeScreen) currentItem() (content.Item, bool) {
	if s.st == nil {
		return content.Item{}, false
	}
	return s.st.Current()
}

// prepare sets up the answer widget for the current item.
func (s *PracticeScreen) prepare() {
	s.hint = ""
	s.outcome = nil
	s.showingFeedback = false

	it, ok := s.currentItem()
	if !ok {
		return
	}
	switch it.Kind {
	case content.KindCodingExercise:
		s.editor = components.NewCodeEditor("Write your Python code here...", it.Exercise.StarterCode, 70, 10)
	case content.KindBugFixDrill:
		s.editor = components.NewCodeEditor("", it.BugFix.BuggyCode, 70, 10)
	case content.KindSingleChoice:
		s.choice = components.NewChoice(it.Single.Choices)
	case content.KindMultiChoice:
		s.choice = components.NewMultiChoice(it.Multi.Choices)
	case content.KindOutputDrill:
		s.output = components.NewTextInput("What does this print?", 60)
	}
}

func (s *PracticeScreen) inputInit() tea.Cmd {
	it, ok := s.currentItem()
	if !ok {
		return nil
	}
	switch it.Kind {
	case content.KindCodingExercise, content.KindBugFixDrill:
		return s.editor.Init()
	case content.KindOutputDrill:
		return s.output.Init()
	default:
		return nil
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dailyStartedMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, session.ErrDailyDone) {
				s.errMsg = "You've already completed today's challenge! Come back tomorrow."
			} else {
				s.errMsg = msg.Err.Error()
			}
			return s, nil
		}
		s.st = msg.State
		s.prepare()
		return s, s.inputInit()

	case submittedMsg:
		s.submitting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.outcome = msg.Out
		s.showingFeedback = true
		return s, nil

	case hintMsg:
		if msg.Err == nil {
			s.hint = msg.Text
		}
		return s, nil

	case finishedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(msg.Sum)}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToWidget(msg)
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// A failed daily start only waits for a key to go back.
	if s.errMsg != "" && s.st == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.st == nil || s.submitting {
		return s, nil
	}

	if s.showingFeedback {
		return s.proceed()
	}

	it, ok := s.currentItem()
	if !ok {
		return s, s.finish()
	}

	switch msg.String() {
	case "ctrl+h":
		return s, s.requestHint()
	case "ctrl+r":
		if it.Kind == content.KindCodingExercise || it.Kind == content.KindBugFixDrill {
			return s, s.submit(validate.Answer{Code: s.editor.Value()})
		}
	case "enter":
		switch it.Kind {
		case content.KindSingleChoice:
			return s, s.submit(validate.Answer{Index: s.choice.Selected()})
		case content.KindMultiChoice:
			return s, s.submit(validate.Answer{Indices: s.choice.SelectedIndices()})
		case content.KindOutputDrill:
			return s, s.submit(validate.Answer{Text: s.output.Value()})
		}
	}

	return s.forwardToWidget(msg)
}

// proceed leaves the feedback view: on to the next item, back to the same
// item for a retry, or out to the summary once everything is answered.
func (s *PracticeScreen) proceed() (screen.Screen, tea.Cmd) {
	out := s.outcome
	s.showingFeedback = false

	settled := out != nil && (out.Verdict.Passed || out.RevealedAnswer != "")
	if !settled {
		s.outcome = nil
		s.choice.Unlock()
		return s, nil
	}

	if s.st.Done() {
		return s, s.finish()
	}
	s.st.Advance()
	s.prepare()
	return s, s.inputInit()
}

func (s *PracticeScreen) submit(ans validate.Answer) tea.Cmd {
	s.submitting = true
	if it, ok := s.currentItem(); ok && (it.Kind == content.KindSingleChoice || it.Kind == content.KindMultiChoice) {
		s.choice.Lock()
	}
	svc, st := s.svc, s.st
	return func() tea.Msg {
		out, err := svc.Submit(context.Background(), st, ans)
		return submittedMsg{Out: out, Err: err}
	}
}

func (s *PracticeScreen) requestHint() tea.Cmd {
	svc, st := s.svc, s.st
	return func() tea.Msg {
		text, err := svc.Hint(context.Background(), st)
		return hintMsg{Text: text, Err: err}
	}
}

func (s *PracticeScreen) finish() tea.Cmd {
	svc, st := s.svc, s.st
	return func() tea.Msg {
		sum, err := svc.Finish(context.Background(), st, time.Now())
		return finishedMsg{Sum: sum, Err: err}
	}
}

func (s *PracticeScreen) forwardToWidget(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.st == nil || s.showingFeedback || s.submitting {
		return s, nil
	}
	it, ok := s.currentItem()
	if !ok {
		return s, nil
	}

	var cmd tea.Cmd
	switch it.Kind {
	case content.KindCodingExercise, content.KindBugFixDrill:
		s.editor, cmd = s.editor.Update(msg)
	case content.KindSingleChoice, content.KindMultiChoice:
		s.choice, cmd = s.choice.Update(msg)
	case content.KindOutputDrill:
		s.output, cmd = s.output.Update(msg)
	}
	return s, cmd
}
