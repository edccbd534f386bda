package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/munhak/internal/router"
	"github.com/abhisek/munhak/internal/screens/screentest"
)

// drive feeds msg to the model and runs any resulting command once,
// feeding its message back.
func drive(t *testing.T, m tea.Model, msg tea.Msg) tea.Model {
	t.Helper()
	m, cmd := m.Update(msg)
	if cmd != nil {
		if next := cmd(); next != nil {
			m, _ = m.Update(next)
		}
	}
	return m
}

func TestApp_MenuNavigationAndBack(t *testing.T) {
	env, _ := screentest.Env(t)
	var m tea.Model = New(env)
	m = drive(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	// Third menu entry is the incorrect notes.
	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	m = drive(t, m, screentest.Enter())

	app := m.(AppModel)
	require.Equal(t, 2, app.router.Depth())
	assert.Equal(t, "오답 노트", app.router.Active().Title())

	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.(AppModel).router.Depth())

	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.(AppModel).router.Depth())
}

func TestApp_EscClosesSearchBeforePopping(t *testing.T) {
	env, _ := screentest.Env(t)
	var m tea.Model = New(env)
	m = drive(t, m, router.PushScreenMsg{Screen: notesScreen(env)})
	m = drive(t, m, screentest.Key('/'))

	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 2, m.(AppModel).router.Depth())

	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.(AppModel).router.Depth())
}

func TestApp_ViewShowsHeader(t *testing.T) {
	env, _ := screentest.Env(t)
	var m tea.Model = New(env)
	m = drive(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	content := m.(AppModel).render()
	assert.Contains(t, content, "문학 O/X")
	assert.Contains(t, content, "D-24")
}

func TestApp_TooSmall(t *testing.T) {
	env, _ := screentest.Env(t)
	var m tea.Model = New(env)
	m = drive(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.NotContains(t, m.(AppModel).render(), "문학 O/X")
}
