package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/munhak/internal/ui/theme"
)

// ContentWidth returns the column width screens lay their cards out in.
func ContentWidth(width int) int {
	return min(max(width-6, 30), 72)
}

// Card wraps content in a rounded-border card at content width cw.
func Card(content string, cw int) string {
	return theme.Card.Width(cw).Render(content)
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
