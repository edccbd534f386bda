package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/munhak/internal/ui/theme"
)

// OXChoice is a two-button O/X answer selector. O and X keys answer
// directly; arrows move the highlight and Enter confirms it.
type OXChoice struct {
	// Cursor is true when O is highlighted.
	Cursor    bool
	Submitted bool
	Answer    bool
}

// NewOXChoice returns a selector with O highlighted.
func NewOXChoice() OXChoice {
	return OXChoice{Cursor: true}
}

// Update handles answer keys. It reports whether this message submitted an
// answer.
func (c OXChoice) Update(msg tea.Msg) (OXChoice, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || c.Submitted {
		return c, false
	}

	switch {
	case key.Matches(kmsg, Keys.O):
		c.Cursor = true
	case key.Matches(kmsg, Keys.X):
		c.Cursor = false
	case key.Matches(kmsg, Keys.Left), key.Matches(kmsg, Keys.Right):
		c.Cursor = !c.Cursor
		return c, false
	case key.Matches(kmsg, Keys.Enter):
	default:
		return c, false
	}

	c.Submitted = true
	c.Answer = c.Cursor
	return c, true
}

// View renders the two buttons side by side.
func (c OXChoice) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		c.button("O", true), "   ", c.button("X", false))
}

func (c OXChoice) button(label string, value bool) string {
	if c.Submitted {
		style := theme.AnswerInactive
		if c.Answer == value {
			style = theme.AnswerActive
		}
		return style.Render(label)
	}
	if c.Cursor == value {
		return theme.AnswerActive.Render(label)
	}
	return theme.AnswerInactive.Render(label)
}
