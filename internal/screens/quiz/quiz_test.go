package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/munhak/internal/router"
	"github.com/abhisek/munhak/internal/screens/screentest"
	"github.com/abhisek/munhak/internal/studystate"
)

func TestQuiz_FullRun(t *testing.T) {
	env, clk := screentest.Env(t)
	p, ok := env.Catalog.QuizByID("jindallae")
	require.True(t, ok)
	require.GreaterOrEqual(t, len(p.Questions), 2)

	s := New(env, p)
	s.Init()

	// Miss the first question, answer the rest correctly.
	for i, q := range p.Questions {
		clk.Advance(20 * time.Second)
		answer := q.IsTrue
		if i == 0 {
			answer = !q.IsTrue
		}
		s.Update(screentest.Answer(answer))
		require.Equal(t, phaseFeedback, s.phase)
		s.Update(screentest.Enter())
	}
	require.Equal(t, phaseFinished, s.phase)
	assert.Equal(t, len(p.Questions)-1, s.correct)

	notes := env.State.IncorrectNotes()
	require.Len(t, notes, 1)
	assert.Equal(t, p.Questions[0].ID, notes[0].QuestionID)
	assert.Equal(t, studystate.NoteLiterature, notes[0].NoteType)

	assert.Equal(t, []string{"jindallae"}, env.State.CompletedWorks())
	sc, ok := env.State.SubCategory("modern-poetry")
	require.True(t, ok)
	assert.Equal(t, 1, sc.CompletedLessons)
	assert.InDelta(t, 1/float64(sc.TotalLessons), sc.Progress, 1e-9)
	assert.Equal(t, 20*len(p.Questions), env.State.LearningTime())
	assert.Equal(t, 1, env.State.Streak())

	_, cmd := s.Update(screentest.Enter())
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestQuiz_BookmarkToggle(t *testing.T) {
	env, _ := screentest.Env(t)
	p, _ := env.Catalog.QuizByID("seosi")

	s := New(env, p)
	s.Init()

	s.Update(screentest.Key('b'))
	assert.True(t, env.State.IsBookmarked(p.Questions[0].ID))
	assert.Contains(t, s.View(100, 40), "★")

	s.Update(screentest.Answer(p.Questions[0].IsTrue))
	s.Update(screentest.Key('b'))
	assert.False(t, env.State.IsBookmarked(p.Questions[0].ID))
	assert.Empty(t, env.State.Bookmarks())
}

func TestQuiz_ExplainNeedsTutorAndWrongAnswer(t *testing.T) {
	env, _ := screentest.Env(t)
	p, _ := env.Catalog.QuizByID("seosi")

	s := New(env, p)
	s.Init()
	s.Update(screentest.Answer(!p.Questions[0].IsTrue))

	_, cmd := s.Update(screentest.Key('e'))
	assert.Nil(t, cmd, "no tutor configured")
	for _, h := range s.KeyHints() {
		assert.NotEqual(t, "E", h.Key)
	}
}

func TestQuiz_IgnoresKeysBeforeAnswer(t *testing.T) {
	env, _ := screentest.Env(t)
	p, _ := env.Catalog.QuizByID("seosi")

	s := New(env, p)
	s.Init()
	s.Update(screentest.Enter())
	s.Update(screentest.Key('q'))

	// Enter on a fresh choice submits the highlighted O.
	assert.Equal(t, phaseFeedback, s.phase)
	assert.True(t, s.answer)
}
