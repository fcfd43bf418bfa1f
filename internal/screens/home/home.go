package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/codecompanion/internal/progression"
	"github.com/abhisek/codecompanion/internal/router"
	"github.com/abhisek/codecompanion/internal/screen"
	achscreen "github.com/abhisek/codecompanion/internal/screens/achievements"
	"github.com/abhisek/codecompanion/internal/screens/history"
	"github.com/abhisek/codecompanion/internal/screens/lessons"
	"github.com/abhisek/codecompanion/internal/screens/practice"
	"github.com/abhisek/codecompanion/internal/session"
	"github.com/abhisek/codecompanion/internal/store"
	"github.com/abhisek/codecompanion/internal/streak"
	"github.com/abhisek/codecompanion/internal/ui/components"
	"github.com/abhisek/codecompanion/internal/ui/theme"
)

type checkinMsg struct {
	Result   streak.CheckIn
	Unlocked []string
	Err      error
}

// HomeScreen is the companion dashboard and main menu.
type HomeScreen struct {
	svc    *session.Service
	events store.EventRepo

	menu       components.Menu
	checkinMsg string
	unlocked   []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *session.Service, events store.EventRepo) *HomeScreen {
	h := &HomeScreen{
		svc:    svc,
		events: events,
	}

	items := []components.MenuItem{
		{Label: "LESSONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: lessons.New(svc)}
			}
		}},
		{Label: "DAILY CHALLENGE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.NewDaily(svc)}
			}
		}},
		{Label: "ACHIEVEMENTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: achscreen.New(svc.Learner)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(events)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	svc := h.svc
	return func() tea.Msg {
		res, unlocked, err := svc.CheckIn(context.Background(), time.Now())
		return checkinMsg{Result: res, Unlocked: unlocked, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case checkinMsg:
		if msg.Err == nil {
			if msg.Result.Extended || msg.Result.Evolved || !strings.HasPrefix(msg.Result.Message, "You've already") {
				h.checkinMsg = msg.Result.Message
			}
			h.unlocked = msg.Unlocked
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	l := h.svc.Learner
	c := streak.Companion{
		Type:     streak.CompanionType(l.CompanionType),
		Stage:    l.CompanionStage,
		Vitality: l.CompanionVitality,
	}

	var sections []string

	// Companion card: art, name, vitality.
	art := lipgloss.NewStyle().Foreground(theme.Secondary).Render(c.Art())
	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%s  (stage %d/%d)", c.Name(), c.Stage, streak.MaxStage))
	vitality := components.NewProgressBar("Vitality", float64(l.CompanionVitality)/100, true, 40)
	companionCard := theme.Card.Render(
		lipgloss.JoinVertical(lipgloss.Center, art, "", name, vitality.View()))
	sections = append(sections, companionCard)

	// Progress lines: level, daily goal, streak.
	prog := progression.ProgressToNextLevel(l.XP)
	var levelLine string
	if prog.AtMax {
		levelLine = fmt.Sprintf("Level %d  (max)", prog.Level)
	} else {
		levelLine = components.NewProgressBar(
			fmt.Sprintf("Level %d", prog.Level),
			float64(prog.Current)/float64(prog.Needed), false, 40).View() +
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("  %d/%d XP", prog.Current, prog.Needed))
	}

	dailyPct := 0.0
	if l.DailyGoalXP > 0 {
		dailyPct = float64(l.TodayXP) / float64(l.DailyGoalXP)
		if dailyPct > 1 {
			dailyPct = 1
		}
	}
	dailyLine := components.NewProgressBar("Today  ", dailyPct, false, 40).View() +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d/%d XP", l.TodayXP, l.DailyGoalXP))

	weeklyPct := 0.0
	if l.WeeklyGoalXP > 0 {
		weeklyPct = float64(l.WeeklyXP) / float64(l.WeeklyGoalXP)
		if weeklyPct > 1 {
			weeklyPct = 1
		}
	}
	weeklyLine := components.NewProgressBar("Week   ", weeklyPct, false, 40).View() +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d/%d XP", l.WeeklyXP, l.WeeklyGoalXP))

	streakLine := lipgloss.NewStyle().Foreground(theme.Accent).
		Render(fmt.Sprintf("🔥 %d day streak", l.StreakDays))

	sections = append(sections, levelLine+"\n"+dailyLine+"\n"+weeklyLine+"\n"+streakLine)

	// Check-in or achievement announcements.
	if h.checkinMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Success).
			Render(h.checkinMsg))
	}
	if len(h.unlocked) > 0 {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).Bold(true).
			Render("🏆 Unlocked: "+strings.Join(h.unlocked, ", ")))
	}

	// Recent activity.
	recent := l.RecentActivity(3)
	if len(recent) > 0 {
		var lines []string
		for _, a := range recent {
			line := "  • " + a.Text
			if a.XPGained > 0 {
				line += fmt.Sprintf("  (+%d XP)", a.XPGained)
			}
			lines = append(lines, line)
		}
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(strings.Join(lines, "\n")))
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
