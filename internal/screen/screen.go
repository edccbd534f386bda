package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/munhak/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface for screens with their own
// footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Refresher is an optional interface for screens that show study state.
// The router calls Refresh when the screen becomes active again after the
// screen above it is popped.
type Refresher interface {
	Refresh()
}

// InputCapturer is an optional interface for screens with a text field.
// While CapturingInput reports true the app forwards Esc to the screen
// instead of navigating back.
type InputCapturer interface {
	CapturingInput() bool
}
