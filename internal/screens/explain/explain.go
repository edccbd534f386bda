// Package explain renders the AI tutor panel shared by the quiz and notes
// screens.
package explain

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/munhak/internal/studystate"
	"github.com/abhisek/munhak/internal/tutor"
	"github.com/abhisek/munhak/internal/ui/theme"
)

const requestTimeout = 45 * time.Second

// ResultMsg carries a finished explanation request.
type ResultMsg struct {
	QuestionID  string
	Explanation tutor.Explanation
	Err         error
}

// Panel shows the loading state and result of one explanation request.
type Panel struct {
	tutor *tutor.Service

	questionID string
	loading    bool
	result     *tutor.Explanation
	err        error
	spinner    spinner.Model
}

// New returns an idle panel. svc may be nil.
func New(svc *tutor.Service) Panel {
	return Panel{
		tutor:   svc,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Available reports whether a tutor is configured.
func (p Panel) Available() bool {
	return p.tutor != nil
}

// Active reports whether the panel has anything to show.
func (p Panel) Active() bool {
	return p.loading || p.result != nil || p.err != nil
}

// Start requests an explanation for note. It is a no-op without a tutor or
// while the same note is already shown.
func (p Panel) Start(note studystate.IncorrectNote) (Panel, tea.Cmd) {
	if p.tutor == nil || (p.Active() && p.questionID == note.QuestionID) {
		return p, nil
	}
	p.questionID = note.QuestionID
	p.loading = true
	p.result = nil
	p.err = nil

	svc := p.tutor
	request := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		exp, err := svc.Explain(ctx, note)
		return ResultMsg{QuestionID: note.QuestionID, Explanation: exp, Err: err}
	}
	return p, tea.Batch(request, p.spinner.Tick)
}

// Reset clears the panel.
func (p Panel) Reset() Panel {
	p.questionID = ""
	p.loading = false
	p.result = nil
	p.err = nil
	return p
}

// Update consumes results and spinner ticks.
func (p Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case ResultMsg:
		if msg.QuestionID != p.questionID {
			return p, nil
		}
		p.loading = false
		if msg.Err != nil {
			p.err = msg.Err
			return p, nil
		}
		p.result = &msg.Explanation
		return p, nil

	case spinner.TickMsg:
		if !p.loading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	}
	return p, nil
}

// View renders the panel at width.
func (p Panel) View(width int) string {
	style := lipgloss.NewStyle().Width(width)
	switch {
	case p.loading:
		return style.Render(p.spinner.View() + " " + theme.Hint.Render("AI 선생님이 해설을 쓰는 중..."))
	case p.err != nil:
		return style.Render(theme.Incorrect.Render("해설을 가져오지 못했습니다: ") + theme.Subtitle.Render(p.err.Error()))
	case p.result != nil:
		var b strings.Builder
		b.WriteString(theme.Selected.Render("AI 해설") + "\n")
		b.WriteString(theme.Body.Render(p.result.Summary) + "\n\n")
		b.WriteString(theme.Badge.Render("핵심") + " " + theme.Body.Render(p.result.KeyPoint) + "\n")
		b.WriteString(theme.Badge.Render("팁") + " " + theme.Body.Render(p.result.Tip))
		return style.Render(b.String())
	}
	return ""
}
