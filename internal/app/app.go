package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/munhak/internal/router"
	"github.com/abhisek/munhak/internal/screen"
	"github.com/abhisek/munhak/internal/screens/home"
	"github.com/abhisek/munhak/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    screen.Env
	router *router.Router
	width  int
	height int
}

// New creates an AppModel with the home screen.
func New(env screen.Env) AppModel {
	return AppModel{
		env:    env,
		router: router.New(home.New(env)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturingInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Back
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), layout.HeaderStats{
		DDay:   m.env.State.DDay(),
		Streak: m.env.State.Streak(),
	}, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "뒤로"},
			{Key: "Ctrl+C", Description: "종료"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "이동"},
		{Key: "Enter", Description: "선택"},
		{Key: "Ctrl+C", Description: "종료"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(env screen.Env) error {
	_, err := tea.NewProgram(New(env)).Run()
	return err
}
