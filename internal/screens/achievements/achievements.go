package achievements

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/codecompanion/internal/achievements"
	"github.com/abhisek/codecompanion/internal/learner"
	"github.com/abhisek/codecompanion/internal/router"
	"github.com/abhisek/codecompanion/internal/screen"
	"github.com/abhisek/codecompanion/internal/ui/layout"
	"github.com/abhisek/codecompanion/internal/ui/theme"
)

// AchievementsScreen displays the trophy case: every achievement in the
// catalog, unlocked ones highlighted.
type AchievementsScreen struct {
	learner      *learner.Learner
	scrollOffset int
}

var _ screen.Screen = (*AchievementsScreen)(nil)
var _ screen.KeyHintProvider = (*AchievementsScreen)(nil)

// New creates a new AchievementsScreen.
func New(l *learner.Learner) *AchievementsScreen {
	return &AchievementsScreen{learner: l}
}

func (s *AchievementsScreen) Init() tea.Cmd {
	return nil
}

func (s *AchievementsScreen) Title() string {
	return "Achievements"
}

func (s *AchievementsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < achievements.Count()-1 {
				s.scrollOffset++
			}
		}
	}
	return s, nil
}

func (s *AchievementsScreen) View(width, height int) string {
	all := achievements.All()

	unlocked := 0
	for _, a := range all {
		if s.learner.Achievements[a.ID] {
			unlocked++
		}
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nUnlocked: %d / %d\n", unlocked, len(all))))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	maxVisible := height - 8
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := s.scrollOffset
	if start > len(all)-1 {
		start = len(all) - 1
	}
	end := start + maxVisible
	if end > len(all) {
		end = len(all)
	}

	for _, a := range all[start:end] {
		var line string
		var style lipgloss.Style
		if s.learner.Achievements[a.ID] {
			line = fmt.Sprintf("  🏆 %-22s unlocked", a.Name)
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		} else {
			line = fmt.Sprintf("  🔒 %-22s ???", a.Name)
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if end < len(all) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(all)-end)))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
