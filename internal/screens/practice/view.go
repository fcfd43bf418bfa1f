package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/codecompanion/internal/content"
	"github.com/abhisek/codecompanion/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" && s.st == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("\n\n\n%s\n\nPress any key to go back.", s.errMsg))
	}
	if s.st == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Preparing your session...")
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	return s.renderItem(width)
}

func (s *PracticeScreen) renderItem(width int) string {
	it, ok := s.currentItem()
	if !ok {
		return ""
	}

	var b strings.Builder

	// Info line: item kind and position, session XP.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", it.Kind.DisplayName()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Item %d/%d   +%d XP", s.st.Index+1, len(s.st.Items), s.st.XPEarned))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	promptStyle := lipgloss.NewStyle().
		Width(min(width-8, 74)).
		Foreground(theme.Text).
		Bold(true)
	codeStyle := lipgloss.NewStyle().
		Foreground(theme.Secondary)

	center := func(block string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
		b.WriteString("\n")
	}

	switch it.Kind {
	case content.KindCodingExercise:
		center(promptStyle.Render(it.Exercise.Prompt))
		b.WriteString("\n")
		center(s.editor.View())

	case content.KindBugFixDrill:
		center(promptStyle.Render("Fix the bug: " + it.BugFix.Description))
		b.WriteString("\n")
		center(s.editor.View())

	case content.KindSingleChoice:
		center(promptStyle.Render(it.Single.Question))
		b.WriteString("\n")
		center(s.choice.View())

	case content.KindMultiChoice:
		center(promptStyle.Render(it.Multi.Question))
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Select all that apply."))
		b.WriteString("\n")
		center(s.choice.View())

	case content.KindOutputDrill:
		center(promptStyle.Render("What does this code print?"))
		b.WriteString("\n")
		center(theme.Card.Render(codeStyle.Render(it.Output.Code)))
		b.WriteString("\n")
		center("Output: " + s.output.View())
	}

	if s.hint != "" {
		b.WriteString("\n")
		hintBox := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Accent).
			Render(s.hint)
		center(hintBox)
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	return b.String()
}

func (s *PracticeScreen) renderFeedback(width int) string {
	out := s.outcome
	if out == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")

	centerWide := func(block string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
		b.WriteString("\n")
	}

	if out.Verdict.Passed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(out.Verdict.Message))
		b.WriteString("\n")
		if out.XP > 0 {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Render(fmt.Sprintf("+%d XP", out.XP)))
			b.WriteString("\n")
		}
		if out.LeveledUp {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Bold(true).
				Render(fmt.Sprintf("🎉 Level up! You reached level %d!", out.NewLevel)))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		msgStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		centerWide(msgStyle.Render(out.Verdict.Message))
		for _, d := range out.Verdict.Details {
			centerWide(lipgloss.NewStyle().Foreground(theme.TextDim).Render(d))
		}
		if out.RevealedAnswer != "" {
			b.WriteString("\n")
			centerWide(lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Render("The answer was: " + out.RevealedAnswer))
		}
	}

	if out.Explanation != "" {
		b.WriteString("\n")
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		centerWide(expStyle.Render(out.Explanation))
	}

	if len(out.NewAchievements) > 0 {
		b.WriteString("\n")
		centerWide(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("🏆 Unlocked: " + strings.Join(out.NewAchievements, ", ")))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
