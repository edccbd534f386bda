package quiz

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/munhak/internal/catalog"
	"github.com/abhisek/munhak/internal/router"
	"github.com/abhisek/munhak/internal/screen"
	"github.com/abhisek/munhak/internal/screens/explain"
	"github.com/abhisek/munhak/internal/ui/components"
	"github.com/abhisek/munhak/internal/ui/layout"
)

type phase int

const (
	phaseAnswering phase = iota
	phaseFeedback
	phaseFinished
)

// QuizScreen runs the O/X questions of one passage.
type QuizScreen struct {
	env     screen.Env
	passage catalog.QuizPassage
	session string
	log     logrus.FieldLogger

	index    int
	phase    phase
	choice   components.OXChoice
	answer   bool
	correct  int
	missed   []string
	lastMark time.Time
	panel    explain.Panel
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
)

// New creates a QuizScreen for passage.
func New(env screen.Env, passage catalog.QuizPassage) *QuizScreen {
	session := uuid.NewString()
	return &QuizScreen{
		env:     env,
		passage: passage,
		session: session,
		log: env.Log.WithFields(logrus.Fields{
			"session": session,
			"quiz":    passage.ID,
		}),
		choice: components.NewOXChoice(),
		panel:  explain.New(env.Tutor),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	s.lastMark = s.env.Now()
	s.log.Debug("quiz started")
	return nil
}

func (s *QuizScreen) Title() string {
	return s.passage.Title
}

func (s *QuizScreen) current() catalog.Question {
	return s.passage.Questions[s.index]
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseFinished:
		return []layout.KeyHint{{Key: "Enter", Description: "목록으로"}}
	case phaseFeedback:
		hints := []layout.KeyHint{
			{Key: "Enter", Description: "다음"},
			{Key: "B", Description: "북마크"},
		}
		if s.panel.Available() && s.answer != s.current().IsTrue {
			hints = append(hints, layout.KeyHint{Key: "E", Description: "AI 해설"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "그만두기"})
	}
	return []layout.KeyHint{
		{Key: "O/X", Description: "답하기"},
		{Key: "B", Description: "북마크"},
		{Key: "Esc", Description: "그만두기"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return s.handleKey(kmsg)
	}
	var cmd tea.Cmd
	s.panel, cmd = s.panel.Update(msg)
	return s, cmd
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseFinished:
		if key.Matches(msg, components.Keys.Enter) {
			return s, router.Back
		}
		return s, nil

	case phaseFeedback:
		switch {
		case key.Matches(msg, components.Keys.Bookmark):
			s.toggleBookmark()
		case key.Matches(msg, components.Keys.Explain):
			if s.answer != s.current().IsTrue {
				var cmd tea.Cmd
				s.panel, cmd = s.panel.Start(catalog.IncorrectNote(s.passage, s.current(), s.answer))
				return s, cmd
			}
		case key.Matches(msg, components.Keys.Enter):
			s.next()
		}
		return s, nil
	}

	if key.Matches(msg, components.Keys.Bookmark) {
		s.toggleBookmark()
		return s, nil
	}
	var submitted bool
	s.choice, submitted = s.choice.Update(msg)
	if submitted {
		s.submit(s.choice.Answer)
	}
	return s, nil
}

func (s *QuizScreen) submit(answer bool) {
	q := s.current()
	s.answer = answer
	s.phase = phaseFeedback
	s.recordTime()

	if answer == q.IsTrue {
		s.correct++
		return
	}
	s.missed = append(s.missed, q.ID)
	s.env.State.AddIncorrectNote(catalog.IncorrectNote(s.passage, q, answer))
	s.log.WithField("question", q.ID).Debug("incorrect answer recorded")
}

func (s *QuizScreen) next() {
	s.panel = s.panel.Reset()
	if s.index+1 < len(s.passage.Questions) {
		s.index++
		s.phase = phaseAnswering
		s.choice = components.NewOXChoice()
		return
	}
	s.finish()
}

func (s *QuizScreen) finish() {
	s.phase = phaseFinished
	if sc, ok := s.env.State.SubCategory(s.passage.CategoryID); ok && sc.TotalLessons > 0 {
		s.env.State.AddProgress(sc.ID, 1/float64(sc.TotalLessons))
	}
	s.env.State.AddCompletedWork(s.passage.ID)
	s.log.WithFields(logrus.Fields{
		"correct": s.correct,
		"total":   len(s.passage.Questions),
	}).Info("quiz finished")
}

// recordTime credits the time since the last answer as learning time.
func (s *QuizScreen) recordTime() {
	now := s.env.Now()
	if secs := int(now.Sub(s.lastMark).Seconds()); secs > 0 {
		s.env.State.AddLearningTime(secs)
	}
	s.lastMark = now
}

func (s *QuizScreen) toggleBookmark() {
	s.env.State.ToggleBookmark(catalog.Bookmark(s.passage, s.current()))
}

func (s *QuizScreen) bookmarked() bool {
	return s.env.State.IsBookmarked(s.current().ID)
}
