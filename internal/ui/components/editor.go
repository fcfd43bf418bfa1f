package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/codecompanion/internal/ui/theme"
)

// CodeEditor wraps bubbles/textarea for writing exercise code.
type CodeEditor struct {
	Model textarea.Model
}

// NewCodeEditor creates a focused multi-line code editor.
func NewCodeEditor(placeholder, initial string, width, height int) CodeEditor {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = true
	ta.Prompt = "│ "
	if width > 0 {
		ta.SetWidth(width)
	}
	if height > 0 {
		ta.SetHeight(height)
	}
	if initial != "" {
		ta.SetValue(initial)
	}
	ta.Focus()
	return CodeEditor{Model: ta}
}

// Init returns the initial command.
func (e CodeEditor) Init() tea.Cmd {
	return e.Model.Focus()
}

// Update handles messages.
func (e CodeEditor) Update(msg tea.Msg) (CodeEditor, tea.Cmd) {
	var cmd tea.Cmd
	e.Model, cmd = e.Model.Update(msg)
	return e, cmd
}

// View renders the editor inside a card border.
func (e CodeEditor) View() string {
	return theme.Card.Render(e.Model.View())
}

// Value returns the current buffer contents.
func (e CodeEditor) Value() string {
	return e.Model.Value()
}

// SetValue replaces the buffer contents.
func (e *CodeEditor) SetValue(s string) {
	e.Model.SetValue(s)
}

// Focused reports whether the editor has focus.
func (e CodeEditor) Focused() bool {
	return e.Model.Focused()
}

// Focus gives the editor keyboard focus.
func (e *CodeEditor) Focus() tea.Cmd {
	return e.Model.Focus()
}

// Blur removes keyboard focus.
func (e *CodeEditor) Blur() {
	e.Model.Blur()
}
