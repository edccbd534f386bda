package vocab

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/munhak/internal/screens/screentest"
	"github.com/abhisek/munhak/internal/studystate"
)

func TestVocab_LearnedWordsLast(t *testing.T) {
	env, _ := screentest.Env(t)
	env.State.UpdateVocabProgress("v01")
	env.State.UpdateVocabProgress("v02")

	v := New(env)
	require.Len(t, v.items, 15)
	assert.Equal(t, "v03", v.items[0].ID)
	assert.Equal(t, "v01", v.items[13].ID)
	assert.Equal(t, "v02", v.items[14].ID)
}

func TestVocab_FullDrill(t *testing.T) {
	env, clk := screentest.Env(t)
	v := New(env)
	v.Init()

	for i, item := range v.items {
		clk.Advance(10 * time.Second)
		answer := item.IsTrue
		if item.ID == "v06" {
			answer = !answer
		}
		v.Update(screentest.Answer(answer))
		require.True(t, v.answered, "item %d", i)
		v.Update(screentest.Enter())
	}

	require.True(t, v.done)
	assert.Equal(t, 14, v.correct)

	progress := env.State.VocabProgress()
	assert.Equal(t, 15, progress.LearnedCount)
	assert.True(t, env.State.IsVocabCompletedToday())
	assert.Equal(t, 150, env.State.LearningTime())
	assert.Equal(t, 1, env.State.Streak())

	notes := env.State.IncorrectNotes()
	require.Len(t, notes, 1)
	assert.Equal(t, "v06", notes[0].QuestionID)
	assert.Equal(t, studystate.NoteVocab, notes[0].NoteType)
	assert.Equal(t, "시나브로", notes[0].SourceTitle)
}

func TestVocab_Bookmark(t *testing.T) {
	env, _ := screentest.Env(t)
	v := New(env)
	v.Init()

	v.Update(screentest.Key('b'))
	bookmarks := env.State.Bookmarks()
	require.Len(t, bookmarks, 1)
	assert.Equal(t, studystate.NoteVocab, bookmarks[0].NoteType)
	assert.Contains(t, v.View(100, 40), "★")
}
