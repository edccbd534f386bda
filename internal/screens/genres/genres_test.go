package genres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/munhak/internal/router"
	"github.com/abhisek/munhak/internal/screens/quiz"
	"github.com/abhisek/munhak/internal/screens/screentest"
)

func TestGenres_EnterOpensWorks(t *testing.T) {
	env, _ := screentest.Env(t)
	g := New(env)
	require.Len(t, g.menu.Items, 4)

	_, cmd := g.Update(screentest.Enter())
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)

	works, ok := msg.Screen.(*WorksScreen)
	require.True(t, ok)
	assert.Equal(t, "현대시", works.Title())
	assert.Equal(t, "jindallae", works.passages[0].ID)
}

func TestWorks_EnterStartsQuizAndMarksCompleted(t *testing.T) {
	env, _ := screentest.Env(t)
	cat, ok := env.Catalog.Category("modern-poetry")
	require.True(t, ok)
	w := NewWorks(env, cat)
	assert.NotContains(t, w.menu.Items[0].Label, "✓")

	_, cmd := w.Update(screentest.Enter())
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = msg.Screen.(*quiz.QuizScreen)
	assert.True(t, ok)

	env.State.AddCompletedWork("jindallae")
	w.Refresh()
	assert.Contains(t, w.menu.Items[0].Label, "✓")
}
