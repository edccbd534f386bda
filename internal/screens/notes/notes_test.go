package notes

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/munhak/internal/catalog"
	"github.com/abhisek/munhak/internal/screen"
	"github.com/abhisek/munhak/internal/screens/screentest"
	"github.com/abhisek/munhak/internal/studystate"
)

func seed(t *testing.T, env screen.Env, clk *screentest.Clock) {
	t.Helper()
	for _, id := range []string{"seosi-4", "jindallae-2"} {
		p, q, ok := env.Catalog.QuestionByID(id)
		require.True(t, ok, id)
		env.State.AddIncorrectNote(catalog.IncorrectNote(p, q, !q.IsTrue))
		clk.Advance(time.Minute)
	}
	v, ok := env.Catalog.VocabByID("v06")
	require.True(t, ok)
	env.State.AddIncorrectNote(catalog.VocabNote(v, !v.IsTrue))
}

func ids(notes []studystate.IncorrectNote) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.QuestionID
	}
	return out
}

func TestNotes_NewestFirst(t *testing.T) {
	env, clk := screentest.Env(t)
	seed(t, env, clk)

	n := New(env)
	assert.Equal(t, []string{"v06", "jindallae-2", "seosi-4"}, ids(n.visible))
}

func TestNotes_SameTimestampOrderedByTitle(t *testing.T) {
	env, _ := screentest.Env(t)
	for _, id := range []string{"seosi-1", "jindallae-1"} {
		p, q, _ := env.Catalog.QuestionByID(id)
		env.State.AddIncorrectNote(catalog.IncorrectNote(p, q, !q.IsTrue))
	}

	n := New(env)
	// ㅅ collates before ㅈ.
	assert.Equal(t, []string{"seosi-1", "jindallae-1"}, ids(n.visible))
}

func TestNotes_FilterCycle(t *testing.T) {
	env, clk := screentest.Env(t)
	seed(t, env, clk)
	n := New(env)

	tab := tea.KeyPressMsg{Code: tea.KeyTab}

	n.Update(tab)
	assert.Equal(t, studystate.NoteLiterature, n.filter)
	assert.Equal(t, []string{"jindallae-2", "seosi-4"}, ids(n.visible))

	n.Update(tab)
	assert.Equal(t, studystate.NoteVocab, n.filter)
	assert.Equal(t, []string{"v06"}, ids(n.visible))

	n.Update(tab)
	assert.Equal(t, studystate.NoteExam, n.filter)
	assert.Empty(t, n.visible)

	n.Update(tab)
	assert.Equal(t, studystate.NoteType(""), n.filter)
	assert.Len(t, n.visible, 3)
}

func TestNotes_Search(t *testing.T) {
	env, clk := screentest.Env(t)
	seed(t, env, clk)
	n := New(env)

	n.Update(screentest.Key('/'))
	require.True(t, n.search.Focused())
	for _, r := range "서시" {
		n.Update(screentest.Key(r))
	}
	assert.Equal(t, []string{"seosi-4"}, ids(n.visible))

	n.Update(screentest.Enter())
	assert.False(t, n.search.Focused())

	// Keys act on the list again once the search is closed.
	n.Update(screentest.Key('d'))
	assert.Empty(t, n.visible)
	assert.Len(t, env.State.IncorrectNotes(), 2)
}

func TestNotes_DeleteSelected(t *testing.T) {
	env, clk := screentest.Env(t)
	seed(t, env, clk)
	n := New(env)

	n.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, n.selected)
	n.Update(screentest.Key('d'))

	assert.Equal(t, []string{"v06", "seosi-4"}, ids(n.visible))
	_, ok := env.State.IncorrectNote("jindallae-2")
	assert.False(t, ok)

	n.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	n.Update(screentest.Key('d'))
	assert.Equal(t, 0, n.selected)
	assert.Equal(t, []string{"v06"}, ids(n.visible))
}

func TestNotes_RefreshPicksUpNewNotes(t *testing.T) {
	env, _ := screentest.Env(t)
	n := New(env)
	assert.Empty(t, n.visible)

	v, _ := env.Catalog.VocabByID("v01")
	env.State.AddIncorrectNote(catalog.VocabNote(v, !v.IsTrue))
	n.Refresh()
	assert.Equal(t, []string{"v01"}, ids(n.visible))
}

func TestNotes_ExplainWithoutTutor(t *testing.T) {
	env, clk := screentest.Env(t)
	seed(t, env, clk)
	n := New(env)

	_, cmd := n.Update(screentest.Key('e'))
	assert.Nil(t, cmd)
	assert.False(t, n.panel.Active())
	assert.NotContains(t, hintKeys(n), "E")
}

func TestNotes_ViewEmpty(t *testing.T) {
	env, _ := screentest.Env(t)
	n := New(env)
	assert.Contains(t, n.View(80, 24), "틀린 문제가 없습니다")
}

func hintKeys(n *NotesScreen) []string {
	var keys []string
	for _, h := range n.KeyHints() {
		keys = append(keys, h.Key)
	}
	return keys
}

func TestNotes_EscClearsSearch(t *testing.T) {
	env, clk := screentest.Env(t)
	seed(t, env, clk)
	n := New(env)

	n.Update(screentest.Key('/'))
	n.Update(screentest.Key('서'))
	require.True(t, n.CapturingInput())
	assert.Len(t, n.visible, 1)

	n.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.False(t, n.CapturingInput())
	assert.Len(t, n.visible, 3)
}
