package notes

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/munhak/internal/catalog"
	"github.com/abhisek/munhak/internal/screen"
	"github.com/abhisek/munhak/internal/screens/explain"
	"github.com/abhisek/munhak/internal/studystate"
	"github.com/abhisek/munhak/internal/ui/components"
	"github.com/abhisek/munhak/internal/ui/layout"
	"github.com/abhisek/munhak/internal/ui/theme"
)

// NotesScreen lists incorrect notes, newest first, filtered by note type
// and search text.
type NotesScreen struct {
	env screen.Env

	all      []studystate.IncorrectNote
	filter   studystate.NoteType // empty means all types
	search   components.SearchInput
	visible  []studystate.IncorrectNote
	selected int
	panel    explain.Panel
}

var (
	_ screen.Screen          = (*NotesScreen)(nil)
	_ screen.KeyHintProvider = (*NotesScreen)(nil)
	_ screen.Refresher       = (*NotesScreen)(nil)
	_ screen.InputCapturer   = (*NotesScreen)(nil)
)

// New creates a NotesScreen.
func New(env screen.Env) *NotesScreen {
	n := &NotesScreen{
		env:    env,
		search: components.NewSearchInput("작품, 진술, 어휘 검색"),
		panel:  explain.New(env.Tutor),
	}
	n.reload()
	return n
}

func (n *NotesScreen) Init() tea.Cmd { return nil }

func (n *NotesScreen) Title() string { return "오답 노트" }

func (n *NotesScreen) KeyHints() []layout.KeyHint {
	if n.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "검색 완료"},
			{Key: "Esc", Description: "검색 취소"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "이동"},
		{Key: "Tab", Description: "유형"},
		{Key: "/", Description: "검색"},
		{Key: "D", Description: "삭제"},
	}
	if n.panel.Available() {
		hints = append(hints, layout.KeyHint{Key: "E", Description: "AI 해설"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "뒤로"})
}

func (n *NotesScreen) reload() {
	n.all = Sorted(n.env.State.IncorrectNotes())
	n.applyFilter()
}

// Sorted orders notes newest first. Notes recorded in the same
// millisecond are ordered by work title in Korean collation.
func Sorted(notes []studystate.IncorrectNote) []studystate.IncorrectNote {
	out := slices.Clone(notes)
	order := components.KoreanOrder()
	slices.SortStableFunc(out, func(a, b studystate.IncorrectNote) int {
		if c := cmp.Compare(b.Timestamp, a.Timestamp); c != 0 {
			return c
		}
		return order(a.QuizTitle, b.QuizTitle)
	})
	return out
}

func (n *NotesScreen) applyFilter() {
	notes := n.all
	if n.filter != "" {
		notes = studystate.NotesOfType(notes, n.filter)
	}
	n.visible = slices.DeleteFunc(slices.Clone(notes), func(note studystate.IncorrectNote) bool {
		return !n.search.Matches(note.QuizTitle, note.QuizAuthor, note.Statement, note.SourceTitle)
	})
	n.selected = min(n.selected, max(len(n.visible)-1, 0))
}

// cycleFilter steps through all → literature → vocab → exam → all.
func (n *NotesScreen) cycleFilter() {
	types := studystate.AllNoteTypes()
	i := slices.Index(types, n.filter)
	if i == len(types)-1 {
		n.filter = ""
	} else {
		n.filter = types[i+1]
	}
	n.selected = 0
	n.applyFilter()
}

func (n *NotesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var searchCmd, panelCmd tea.Cmd
		if n.search.Focused() {
			n.search, searchCmd = n.search.Update(msg)
		}
		n.panel, panelCmd = n.panel.Update(msg)
		return n, tea.Batch(searchCmd, panelCmd)
	}

	if n.search.Focused() {
		switch kmsg.String() {
		case "enter":
			n.search.Blur()
			return n, nil
		case "esc":
			n.search.Model.SetValue("")
			n.search.Blur()
			n.applyFilter()
			return n, nil
		}
		var cmd tea.Cmd
		n.search, cmd = n.search.Update(kmsg)
		n.applyFilter()
		return n, cmd
	}

	switch {
	case key.Matches(kmsg, components.Keys.Up):
		if n.selected > 0 {
			n.selected--
			n.panel = n.panel.Reset()
		}
	case key.Matches(kmsg, components.Keys.Down):
		if n.selected < len(n.visible)-1 {
			n.selected++
			n.panel = n.panel.Reset()
		}
	case key.Matches(kmsg, components.Keys.Filter):
		n.cycleFilter()
		n.panel = n.panel.Reset()
	case key.Matches(kmsg, components.Keys.Search):
		return n, n.search.Focus()
	case key.Matches(kmsg, components.Keys.Delete):
		if note, ok := n.current(); ok {
			n.remove(note)
		}
	case key.Matches(kmsg, components.Keys.Explain):
		if note, ok := n.current(); ok {
			var cmd tea.Cmd
			n.panel, cmd = n.panel.Start(note)
			return n, cmd
		}
	}
	return n, nil
}

func (n *NotesScreen) CapturingInput() bool { return n.search.Focused() }

// Refresh reloads notes after a drill may have added new ones.
func (n *NotesScreen) Refresh() { n.reload() }

func (n *NotesScreen) remove(note studystate.IncorrectNote) {
	n.env.State.RemoveIncorrectNote(note.QuestionID)
	if n.env.Tutor != nil {
		if err := n.env.Tutor.Forget(context.Background(), note.QuestionID); err != nil {
			n.env.Log.WithError(err).WithField("question", note.QuestionID).Warn("forget cached explanation")
		}
	}
	n.panel = n.panel.Reset()
	n.reload()
}

func (n *NotesScreen) current() (studystate.IncorrectNote, bool) {
	if n.selected < 0 || n.selected >= len(n.visible) {
		return studystate.IncorrectNote{}, false
	}
	return n.visible[n.selected], true
}

func (n *NotesScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(n.renderTabs() + "\n")
	if n.search.Focused() || n.search.Query() != "" {
		b.WriteString(n.search.View() + "\n")
	}
	b.WriteString("\n")

	if len(n.visible) == 0 {
		b.WriteString(theme.Hint.Render("틀린 문제가 없습니다."))
		return components.Center(b.String(), width, height)
	}

	// Leave room for the detail card below the list.
	rows := max(height/2-4, 3)
	start := max(0, min(n.selected-rows/2, len(n.visible)-rows))
	for i := start; i < min(start+rows, len(n.visible)); i++ {
		b.WriteString(n.renderRow(n.visible[i], i == n.selected, cw) + "\n")
	}

	note, _ := n.current()
	b.WriteString("\n" + components.Card(n.renderDetail(note, cw-6), cw))
	return components.Center(b.String(), width, height)
}

func (n *NotesScreen) renderTabs() string {
	tabs := []string{n.tab("전체", "", len(n.all))}
	for _, t := range studystate.AllNoteTypes() {
		tabs = append(tabs, n.tab(t.DisplayName(), t, len(studystate.NotesOfType(n.all, t))))
	}
	return strings.Join(tabs, "  ")
}

func (n *NotesScreen) tab(label string, t studystate.NoteType, count int) string {
	text := fmt.Sprintf("%s %d", label, count)
	if n.filter == t {
		return theme.Badge.Render(text)
	}
	return theme.Subtitle.Render(text)
}

func (n *NotesScreen) renderRow(note studystate.IncorrectNote, selected bool, cw int) string {
	title := note.QuizTitle
	if note.Type() == studystate.NoteVocab {
		title = note.SourceTitle
	}
	line := fmt.Sprintf("[%s] %s · %s", note.Type().DisplayName(), title, note.Statement)
	line = truncate(line, cw-4)
	if selected {
		return theme.Selected.Render("▸ " + line)
	}
	return theme.Unselected.Render("  " + line)
}

func (n *NotesScreen) renderDetail(note studystate.IncorrectNote, width int) string {
	style := lipgloss.NewStyle().Width(width)
	out := theme.Body.Render(note.Statement) + "\n\n" +
		theme.Incorrect.Render("내 답 "+note.UserAnswer) + "   " +
		theme.Correct.Render("정답 "+catalog.AnswerLabel(note.IsTrue)) + "\n" +
		theme.Subtitle.Render(note.Explanation)
	if n.panel.Active() {
		out += "\n\n" + n.panel.View(width)
	}
	return style.Render(out)
}

// truncate shortens s to display width w with an ellipsis.
func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > w {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
