package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/codecompanion/internal/ui/theme"
)

// Choice is an answer selector for quiz questions. In multi-select mode the
// space bar toggles options and enter submits; in single-select mode enter
// submits the highlighted option.
type Choice struct {
	Options []string
	Multi   bool
	Cursor  int
	checked []bool
	locked  bool
}

// NewChoice creates a single-select choice list.
func NewChoice(options []string) Choice {
	return Choice{
		Options: options,
		checked: make([]bool, len(options)),
	}
}

// NewMultiChoice creates a multi-select choice list.
func NewMultiChoice(options []string) Choice {
	return Choice{
		Options: options,
		Multi:   true,
		checked: make([]bool, len(options)),
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and toggling. Submission is left to the
// parent screen, which reads Selected or SelectedIndices on enter.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if c.locked {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space":
		if c.Multi {
			c.checked[c.Cursor] = !c.checked[c.Cursor]
		}
	}

	return c, nil
}

// Selected returns the highlighted option index.
func (c Choice) Selected() int {
	return c.Cursor
}

// SelectedIndices returns the toggled option indices in ascending order.
func (c Choice) SelectedIndices() []int {
	var out []int
	for i, on := range c.checked {
		if on {
			out = append(out, i)
		}
	}
	return out
}

// Lock freezes the selector after a submission.
func (c *Choice) Lock() {
	c.locked = true
}

// Unlock re-enables the selector for another attempt.
func (c *Choice) Unlock() {
	c.locked = false
}

// View renders the option list with letter labels.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		label := string(rune('A' + i))

		prefix := "  "
		if i == c.Cursor && !c.locked {
			prefix = "▸ "
		}

		var line string
		if c.Multi {
			mark := "[ ]"
			if c.checked[i] {
				mark = "[x]"
			}
			line = fmt.Sprintf("%s%s %s)  %s", prefix, mark, label, opt)
		} else {
			line = fmt.Sprintf("%s%s)  %s", prefix, label, opt)
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == c.Cursor && !c.locked {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		} else if c.Multi && c.checked[i] {
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		s += style.Render(line) + "\n"
	}
	return s
}
