package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// SearchInput wraps bubbles/textinput for list filtering.
type SearchInput struct {
	Model textinput.Model
}

// NewSearchInput creates an unfocused search input.
func NewSearchInput(placeholder string) SearchInput {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = placeholder
	ti.CharLimit = 40
	return SearchInput{Model: ti}
}

// Focus starts accepting keystrokes.
func (s *SearchInput) Focus() tea.Cmd {
	return s.Model.Focus()
}

// Blur stops accepting keystrokes and keeps the current query.
func (s *SearchInput) Blur() {
	s.Model.Blur()
}

// Focused reports whether the input is accepting keystrokes.
func (s SearchInput) Focused() bool {
	return s.Model.Focused()
}

// Update handles messages.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the input.
func (s SearchInput) View() string {
	return s.Model.View()
}

// Query returns the trimmed search text.
func (s SearchInput) Query() string {
	return strings.TrimSpace(s.Model.Value())
}

// Matches reports whether any of fields contains the query. An empty query
// matches everything.
func (s SearchInput) Matches(fields ...string) bool {
	q := s.Query()
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(f, q) {
			return true
		}
	}
	return false
}
