package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/munhak/internal/router"
	"github.com/abhisek/munhak/internal/screen"
	"github.com/abhisek/munhak/internal/screens/bookmarks"
	"github.com/abhisek/munhak/internal/screens/genres"
	"github.com/abhisek/munhak/internal/screens/notes"
	"github.com/abhisek/munhak/internal/screens/vocab"
	"github.com/abhisek/munhak/internal/studystate"
	"github.com/abhisek/munhak/internal/ui/components"
	"github.com/abhisek/munhak/internal/ui/layout"
	"github.com/abhisek/munhak/internal/ui/theme"
)

// HomeScreen shows the exam countdown, today's study, genre progress and
// the main menu.
type HomeScreen struct {
	env  screen.Env
	snap studystate.Snapshot
	menu components.Menu
}

var (
	_ screen.Screen    = (*HomeScreen)(nil)
	_ screen.Refresher = (*HomeScreen)(nil)
)

// New creates a HomeScreen.
func New(env screen.Env) *HomeScreen {
	h := &HomeScreen{env: env}
	h.Refresh()
	return h
}

// Refresh re-reads the study state and rebuilds the menu details.
func (h *HomeScreen) Refresh() {
	h.snap = h.env.State.Snapshot()

	selected := h.menu.Selected
	vocabDetail := fmt.Sprintf("%d/%d", h.snap.Vocab.LearnedCount, h.snap.Vocab.TotalCount)
	if h.env.State.IsVocabCompletedToday() {
		vocabDetail += " · 오늘 완료"
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "문학 퀴즈", Action: h.push(func() screen.Screen { return genres.New(h.env) })},
		{Label: "어휘 학습", Detail: vocabDetail, Action: h.push(func() screen.Screen { return vocab.New(h.env) })},
		{Label: "오답 노트", Detail: fmt.Sprintf("%d개", len(h.snap.IncorrectNotes)),
			Action: h.push(func() screen.Screen { return notes.New(h.env) })},
		{Label: "북마크", Detail: fmt.Sprintf("%d개", len(h.snap.Bookmarks)),
			Action: h.push(func() screen.Screen { return bookmarks.New(h.env) })},
		{Label: "종료", Action: func() tea.Cmd { return tea.Quit }},
	})
	h.menu.Selected = selected
}

func (h *HomeScreen) push(build func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd { return router.Push(build()) }
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		h.renderCountdown(cw),
		components.Card(h.renderProgress(cw-6), cw),
		h.menu.View(),
	}
	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "홈"
}

func (h *HomeScreen) renderCountdown(cw int) string {
	dday := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).
		Render("수능 " + layout.DDayLabel(h.snap.DDay))

	minutes := h.snap.LearningTime / 60
	stats := theme.Subtitle.Render(fmt.Sprintf(
		"연속 %d일   오늘 %d분 공부   완료한 작품 %d편",
		h.snap.Streak, minutes, len(h.snap.CompletedWorks)))

	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(dday + "\n" + stats)
}

func (h *HomeScreen) renderProgress(width int) string {
	lines := []string{
		components.ProgressBar{
			Label:   "오늘의 진도",
			Percent: h.snap.DailyProgress,
			Width:   width,
			Color:   theme.AccentHex,
		}.View(),
		"",
	}
	for _, sc := range h.snap.SubCategories {
		label := theme.Hex(sc.Icon.Color).Render(sc.Icon.Glyph) + " " + padRight(sc.Name, 8)
		if !sc.Unlocked {
			lines = append(lines, theme.Subtitle.Render(label+"  잠김"))
			continue
		}
		lines = append(lines, components.ProgressBar{
			Label:   label,
			Percent: sc.Progress,
			Suffix:  fmt.Sprintf("%d/%d", sc.CompletedLessons, sc.TotalLessons),
			Width:   width,
			Color:   sc.Icon.Color,
		}.View())
	}
	return strings.Join(lines, "\n")
}

// padRight pads s with spaces to display width w.
func padRight(s string, w int) string {
	return s + strings.Repeat(" ", max(w-lipgloss.Width(s), 0))
}
