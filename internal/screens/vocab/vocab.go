package vocab

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/munhak/internal/catalog"
	"github.com/abhisek/munhak/internal/router"
	"github.com/abhisek/munhak/internal/screen"
	"github.com/abhisek/munhak/internal/ui/components"
	"github.com/abhisek/munhak/internal/ui/layout"
	"github.com/abhisek/munhak/internal/ui/theme"
)

// VocabScreen drills the vocabulary list as O/X meaning statements.
// Unlearned words come first.
type VocabScreen struct {
	env   screen.Env
	items []catalog.VocabItem

	index    int
	choice   components.OXChoice
	answered bool
	answer   bool
	correct  int
	done     bool
	lastMark time.Time
}

var (
	_ screen.Screen          = (*VocabScreen)(nil)
	_ screen.KeyHintProvider = (*VocabScreen)(nil)
)

// New creates a VocabScreen.
func New(env screen.Env) *VocabScreen {
	learned := env.State.VocabProgress().CompletedIDs
	items := env.Catalog.VocabItems()
	slices.SortStableFunc(items, func(a, b catalog.VocabItem) int {
		al, bl := slices.Contains(learned, a.ID), slices.Contains(learned, b.ID)
		switch {
		case al == bl:
			return 0
		case bl:
			return -1
		default:
			return 1
		}
	})
	return &VocabScreen{env: env, items: items, choice: components.NewOXChoice()}
}

func (v *VocabScreen) Init() tea.Cmd {
	v.lastMark = v.env.Now()
	return nil
}

func (v *VocabScreen) Title() string { return "어휘 학습" }

func (v *VocabScreen) KeyHints() []layout.KeyHint {
	switch {
	case v.done:
		return []layout.KeyHint{{Key: "Enter", Description: "홈으로"}}
	case v.answered:
		return []layout.KeyHint{{Key: "Enter", Description: "다음"}, {Key: "B", Description: "북마크"}}
	}
	return []layout.KeyHint{{Key: "O/X", Description: "답하기"}, {Key: "B", Description: "북마크"}, {Key: "Esc", Description: "그만두기"}}
}

func (v *VocabScreen) current() catalog.VocabItem {
	return v.items[v.index]
}

func (v *VocabScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(v.items) == 0 {
		return v, nil
	}

	if v.done {
		if key.Matches(kmsg, components.Keys.Enter) {
			return v, router.Back
		}
		return v, nil
	}

	if key.Matches(kmsg, components.Keys.Bookmark) {
		v.env.State.ToggleBookmark(catalog.VocabBookmark(v.current()))
		return v, nil
	}

	if v.answered {
		if key.Matches(kmsg, components.Keys.Enter) {
			v.next()
		}
		return v, nil
	}

	var submitted bool
	v.choice, submitted = v.choice.Update(kmsg)
	if submitted {
		v.submit(v.choice.Answer)
	}
	return v, nil
}

func (v *VocabScreen) submit(answer bool) {
	item := v.current()
	v.answered = true
	v.answer = answer

	now := v.env.Now()
	if secs := int(now.Sub(v.lastMark).Seconds()); secs > 0 {
		v.env.State.AddLearningTime(secs)
	}
	v.lastMark = now

	v.env.State.UpdateVocabProgress(item.ID)
	if answer == item.IsTrue {
		v.correct++
		return
	}
	v.env.State.AddIncorrectNote(catalog.VocabNote(item, answer))
}

func (v *VocabScreen) next() {
	if v.index+1 < len(v.items) {
		v.index++
		v.answered = false
		v.choice = components.NewOXChoice()
		return
	}
	v.done = true
	v.env.State.MarkVocabCompleted()
	v.env.State.RecordStudyDay()
	v.env.Log.WithField("correct", v.correct).Info("vocab drill finished")
}

func (v *VocabScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if len(v.items) == 0 {
		return components.Center(theme.Hint.Render("어휘 목록이 비어 있습니다."), width, height)
	}

	progress := v.env.State.VocabProgress()
	bar := components.ProgressBar{
		Label:   fmt.Sprintf("Day %d", progress.CurrentDay),
		Percent: float64(progress.LearnedCount) / float64(max(progress.TotalCount, 1)),
		Suffix:  fmt.Sprintf("%d/%d", progress.LearnedCount, progress.TotalCount),
		Width:   cw,
	}.View()

	if v.done {
		msg := theme.Title.Render("오늘의 어휘 학습 완료!") + "\n\n" +
			theme.Body.Render(fmt.Sprintf("%d개 중 %d개 정답", len(v.items), v.correct))
		return components.Center(bar+"\n\n"+components.Card(msg, cw), width, height)
	}

	item := v.current()
	heading := theme.Title.Render(item.Term) + "  " +
		theme.Subtitle.Render(fmt.Sprintf("%d / %d", v.index+1, len(v.items)))
	if v.env.State.IsBookmarked(item.ID) {
		heading += "  " + theme.Badge.Render("★")
	}

	sections := []string{bar, heading, components.Card(theme.Body.Render(item.Statement), cw)}
	if !v.answered {
		sections = append(sections, v.choice.View())
	} else {
		sections = append(sections, v.renderFeedback(item, cw))
	}
	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

func (v *VocabScreen) renderFeedback(item catalog.VocabItem, cw int) string {
	var verdict string
	if v.answer == item.IsTrue {
		verdict = theme.Correct.Render("정답입니다!")
	} else {
		verdict = theme.Incorrect.Render("오답입니다. 정답은 " + catalog.AnswerLabel(item.IsTrue))
	}
	body := theme.Selected.Render(item.Term) + ": " + theme.Body.Render(item.Meaning)
	if item.Example != "" {
		body += "\n" + theme.Hint.Render(item.Example)
	}
	return verdict + "\n\n" + lipgloss.NewStyle().Width(cw).Render(body)
}
