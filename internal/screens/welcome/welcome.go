package welcome

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/codecompanion/internal/router"
	"github.com/abhisek/codecompanion/internal/screen"
	"github.com/abhisek/codecompanion/internal/session"
	"github.com/abhisek/codecompanion/internal/streak"
	"github.com/abhisek/codecompanion/internal/ui/components"
	"github.com/abhisek/codecompanion/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	sparkleStart = 500 * time.Millisecond
	bannerStart  = 1500 * time.Millisecond
)

const mascotArt = `  ╭───────────╮
  │  ┌─────┐  │
  │  │ >_  │  │
  │  │     │  │
  │  ├─────┤  │
  │  │ ▓▓▓ │  │
  │  └─────┘  │
  ╰───────────╯`

// sparkle frames cycle around the mascot
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

type onboardDoneMsg struct {
	Err error
}

// phase tracks the onboarding step shown after the splash.
type phase int

const (
	phaseSplash phase = iota
	phaseName
	phaseCompanion
)

// WelcomeScreen shows the splash animation, then onboards a first-time
// learner (name and companion choice) before handing off to the home screen.
// Returning learners go straight from the splash to home.
type WelcomeScreen struct {
	svc         *session.Service
	homeFactory func() screen.Screen

	phase        phase
	elapsed      time.Duration
	tickCount    int
	transitioned bool

	nameInput    components.TextInput
	companionIdx int
	errMsg       string
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by
// homeFactory once onboarding (if needed) is complete.
func New(svc *session.Service, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		svc:         svc,
		homeFactory: homeFactory,
		nameInput:   components.NewTextInput("Your name...", 20),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		w.elapsed += tickInterval
		w.tickCount++
		if w.phase != phaseSplash {
			return w, nil
		}
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case onboardDoneMsg:
		if msg.Err != nil {
			w.errMsg = msg.Err.Error()
			return w, nil
		}
		return w, w.transition()

	case tea.KeyPressMsg:
		return w.handleKey(msg)
	}

	if w.phase == phaseName {
		var cmd tea.Cmd
		w.nameInput, cmd = w.nameInput.Update(msg)
		return w, cmd
	}

	return w, nil
}

func (w *WelcomeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch w.phase {
	case phaseSplash:
		// Returning learners skip onboarding entirely.
		if w.svc != nil && w.svc.Learner != nil {
			return w, w.transition()
		}
		w.phase = phaseName
		return w, w.nameInput.Init()

	case phaseName:
		if msg.String() == "enter" {
			if strings.TrimSpace(w.nameInput.Value()) != "" {
				w.phase = phaseCompanion
			}
			return w, nil
		}
		var cmd tea.Cmd
		w.nameInput, cmd = w.nameInput.Update(msg)
		return w, cmd

	case phaseCompanion:
		types := streak.CompanionTypes()
		switch msg.String() {
		case "left", "h", "up", "k":
			w.companionIdx = (w.companionIdx - 1 + len(types)) % len(types)
		case "right", "l", "down", "j", "tab":
			w.companionIdx = (w.companionIdx + 1) % len(types)
		case "enter":
			return w, w.onboard()
		}
		return w, nil
	}

	return w, nil
}

func (w *WelcomeScreen) onboard() tea.Cmd {
	username := strings.TrimSpace(w.nameInput.Value())
	ctype := string(streak.CompanionTypes()[w.companionIdx])
	svc := w.svc
	return func() tea.Msg {
		_, err := svc.Onboard(context.Background(), username, ctype, time.Now())
		return onboardDoneMsg{Err: err}
	}
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	switch w.phase {
	case phaseName:
		return w.viewName(width, height)
	case phaseCompanion:
		return w.viewCompanion(width, height)
	default:
		return w.viewSplash(width, height)
	}
}

func (w *WelcomeScreen) viewSplash(width, height int) string {
	var sections []string

	mascotStyle := lipgloss.NewStyle().Foreground(theme.Primary)
	rendered := mascotStyle.Render(mascotArt)

	if w.elapsed >= sparkleStart {
		frame := w.tickCount % len(sparkleFrames)
		sparkle := sparkleFrames[frame]

		accentStyle := lipgloss.NewStyle().Foreground(theme.Accent)
		secondaryStyle := lipgloss.NewStyle().Foreground(theme.Secondary)

		s1 := accentStyle.Render(sparkle)
		s2 := secondaryStyle.Render(sparkle)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[0] = s1 + "  " + lines[0] + "  " + s2
		}
		if len(lines) > 3 {
			lines[3] = s2 + "  " + lines[3] + "  " + s1
		}
		if len(lines) > 6 {
			lines[6] = s1 + "  " + lines[6] + "  " + s2
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	if w.elapsed >= bannerStart {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Learn Python with a friend by your side!")
		sections = append(sections, tagline)

		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WelcomeScreen) viewName(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("What should we call you?")

	content := title + "\n\n" + w.nameInput.View()

	if w.errMsg != "" {
		content += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(w.errMsg)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WelcomeScreen) viewCompanion(width, height int) string {
	types := streak.CompanionTypes()
	t := types[w.companionIdx]
	c := streak.Companion{Type: t, Vitality: 100}

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Choose your companion")

	var tabs []string
	for i, ct := range types {
		label := string(ct)
		if i == w.companionIdx {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ "+label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+label))
		}
	}

	art := lipgloss.NewStyle().Foreground(theme.Secondary).Render(c.Art())
	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Name())
	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Render(c.Description())

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("←/→ to browse, enter to choose")

	content := strings.Join([]string{
		title, "",
		strings.Join(tabs, "   "), "",
		art, "",
		name,
		desc, "",
		hint,
	}, "\n")

	if w.errMsg != "" {
		content += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(w.errMsg)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
