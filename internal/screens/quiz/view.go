package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/munhak/internal/catalog"
	"github.com/abhisek/munhak/internal/ui/components"
	"github.com/abhisek/munhak/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if s.phase == phaseFinished {
		return components.Center(s.renderResult(cw), width, height)
	}

	var sections []string
	sections = append(sections, s.renderHeading())
	if s.passage.Excerpt != "" {
		sections = append(sections, theme.Passage.Width(cw).Render(s.passage.Excerpt))
	}
	sections = append(sections, components.Card(theme.Body.Render(s.current().Statement), cw))

	if s.phase == phaseAnswering {
		sections = append(sections, s.choice.View())
	} else {
		sections = append(sections, s.renderFeedback(cw))
	}
	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

func (s *QuizScreen) renderHeading() string {
	heading := theme.Title.Render(fmt.Sprintf("%s · %s", s.passage.Title, s.passage.Author)) +
		"  " + theme.Subtitle.Render(fmt.Sprintf("%d / %d", s.index+1, len(s.passage.Questions)))
	if s.bookmarked() {
		heading += "  " + theme.Badge.Render("★")
	}
	return heading
}

func (s *QuizScreen) renderFeedback(cw int) string {
	q := s.current()
	var verdict string
	if s.answer == q.IsTrue {
		verdict = theme.Correct.Render("정답입니다!")
	} else {
		verdict = theme.Incorrect.Render(fmt.Sprintf("오답입니다. 정답은 %s", catalog.AnswerLabel(q.IsTrue)))
	}

	out := verdict + "\n\n" + lipgloss.NewStyle().Width(cw).Render(theme.Body.Render(q.Explanation))
	if s.panel.Active() {
		out += "\n\n" + s.panel.View(cw)
	}
	return out
}

func (s *QuizScreen) renderResult(cw int) string {
	total := len(s.passage.Questions)
	var b strings.Builder
	b.WriteString(theme.Title.Render(s.passage.Title+" 완료") + "\n\n")
	b.WriteString(components.ProgressBar{
		Label:   "점수",
		Percent: float64(s.correct) / float64(total),
		Suffix:  fmt.Sprintf("%d/%d", s.correct, total),
		Width:   cw - 6,
	}.View())
	if len(s.missed) > 0 {
		b.WriteString("\n\n" + theme.Subtitle.Render(
			fmt.Sprintf("틀린 %d문항은 오답 노트에 저장했습니다.", len(s.missed))))
	}
	return components.Card(b.String(), cw)
}
