package bookmarks

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/munhak/internal/catalog"
	"github.com/abhisek/munhak/internal/screens/screentest"
	"github.com/abhisek/munhak/internal/studystate"
)

func questionIDs(items []studystate.BookmarkItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.QuestionID
	}
	return out
}

func TestSorted(t *testing.T) {
	items := []studystate.BookmarkItem{
		{QuestionID: "b", QuizTitle: "진달래꽃", Statement: "나"},
		{QuestionID: "a", QuizTitle: "진달래꽃", Statement: "가"},
		{QuestionID: "v", QuizTitle: "어휘 학습", SourceTitle: "시나브로", NoteType: studystate.NoteVocab},
		{QuestionID: "s", QuizTitle: "서시"},
	}
	assert.Equal(t, []string{"s", "v", "a", "b"}, questionIDs(Sorted(items)))
}

func TestBookmarks_RevealAndDelete(t *testing.T) {
	env, _ := screentest.Env(t)
	for _, id := range []string{"jindallae-1", "seosi-2"} {
		p, q, ok := env.Catalog.QuestionByID(id)
		require.True(t, ok)
		env.State.AddBookmark(catalog.Bookmark(p, q))
	}

	b := New(env)
	require.Equal(t, []string{"seosi-2", "jindallae-1"}, questionIDs(b.items))
	assert.NotContains(t, b.View(100, 40), "정답 O")

	b.Update(screentest.Enter())
	assert.True(t, b.revealed)
	assert.Contains(t, b.View(100, 40), "정답 O")

	b.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, b.selected)
	assert.False(t, b.revealed)

	b.Update(screentest.Key('d'))
	assert.Equal(t, []string{"seosi-2"}, questionIDs(b.items))
	assert.Equal(t, 0, b.selected)
	assert.False(t, env.State.IsBookmarked("jindallae-1"))
}

func TestBookmarks_Empty(t *testing.T) {
	env, _ := screentest.Env(t)
	b := New(env)
	b.Update(screentest.Key('d'))
	assert.Contains(t, b.View(80, 24), "북마크한 문제가 없습니다")
}
