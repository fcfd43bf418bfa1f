package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/codecompanion/internal/ui/theme"
)

// ProgressBar renders a labeled horizontal bar. Percent is clamped to [0, 1]
// at render time so callers can pass raw ratios.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	suffixWidth := 0
	if p.ShowPercent {
		suffixWidth = 6
	}
	barWidth := p.Width - lipgloss.Width(b.String()) - suffixWidth
	if barWidth < 4 {
		barWidth = 4
	}

	pct := p.Percent
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(float64(barWidth) * pct)

	b.WriteString(lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled)))
	b.WriteString(lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled)))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(pct*100))))
	}

	return b.String()
}
