// Package screen defines the contract every routed screen satisfies.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/codecompanion/internal/ui/layout"
)

// Screen is one view on the navigation stack. The root model draws the
// header and footer; View renders only the content area between them.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	// Update handles a message and returns the (possibly new) screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content into the given area.
	View(width, height int) string

	// Title is the screen name shown in the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints instead of
// the depth-based defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
