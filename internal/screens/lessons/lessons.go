package lessons

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/codecompanion/internal/content"
	"github.com/abhisek/codecompanion/internal/router"
	"github.com/abhisek/codecompanion/internal/screen"
	"github.com/abhisek/codecompanion/internal/screens/practice"
	"github.com/abhisek/codecompanion/internal/session"
	"github.com/abhisek/codecompanion/internal/ui/layout"
	"github.com/abhisek/codecompanion/internal/ui/theme"
)

type startedMsg struct {
	State *session.State
	Err   error
}

// LessonsScreen lists the lesson catalog with lock and completion markers.
type LessonsScreen struct {
	svc      *session.Service
	lessons  []content.Lesson
	selected int
	errMsg   string
}

var _ screen.Screen = (*LessonsScreen)(nil)
var _ screen.KeyHintProvider = (*LessonsScreen)(nil)

// New creates a new LessonsScreen.
func New(svc *session.Service) *LessonsScreen {
	return &LessonsScreen{
		svc:     svc,
		lessons: svc.Registry.Lessons(),
	}
}

func (s *LessonsScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonsScreen) Title() string {
	return "Lessons"
}

func (s *LessonsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LessonsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: practice.New(s.svc, msg.State)}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.lessons)-1 {
				s.selected++
			}
		case "enter":
			return s, s.start(s.lessons[s.selected].ID)
		}
	}
	return s, nil
}

func (s *LessonsScreen) start(lessonID string) tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		st, err := svc.StartLesson(context.Background(), lessonID, time.Now())
		return startedMsg{State: st, Err: err}
	}
}

func (s *LessonsScreen) View(width, height int) string {
	l := s.svc.Learner

	var b strings.Builder
	b.WriteString("\n")

	for i, lesson := range s.lessons {
		unlocked := s.svc.Registry.Unlocked(lesson.ID, l.CompletedLessons)

		marker := "  "
		switch {
		case l.CompletedLessons[lesson.ID]:
			marker = "✓ "
		case !unlocked:
			marker = "🔒"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		items := len(lesson.Items())
		line := fmt.Sprintf("%s%s %-32s %2d items  +%d XP",
			prefix, marker, lesson.Title, items, lesson.XPReward)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == s.selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		case !unlocked:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case l.CompletedLessons[lesson.ID]:
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	// Concept preview for the highlighted lesson.
	if s.selected < len(s.lessons) {
		concept := s.lessons[s.selected].Concept
		if concept != "" {
			preview := lipgloss.NewStyle().
				Width(min(width-8, 70)).
				Foreground(theme.TextDim).
				Render(concept)
			b.WriteString("\n")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, preview))
			b.WriteString("\n")
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
