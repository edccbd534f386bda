package bookmarks

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/munhak/internal/catalog"
	"github.com/abhisek/munhak/internal/screen"
	"github.com/abhisek/munhak/internal/studystate"
	"github.com/abhisek/munhak/internal/ui/components"
	"github.com/abhisek/munhak/internal/ui/layout"
	"github.com/abhisek/munhak/internal/ui/theme"
)

// BookmarksScreen lists saved questions grouped by work.
type BookmarksScreen struct {
	env      screen.Env
	items    []studystate.BookmarkItem
	selected int
	revealed bool
}

var (
	_ screen.Screen          = (*BookmarksScreen)(nil)
	_ screen.KeyHintProvider = (*BookmarksScreen)(nil)
	_ screen.Refresher       = (*BookmarksScreen)(nil)
)

// New creates a BookmarksScreen.
func New(env screen.Env) *BookmarksScreen {
	b := &BookmarksScreen{env: env}
	b.Refresh()
	return b
}

func (b *BookmarksScreen) Init() tea.Cmd { return nil }

func (b *BookmarksScreen) Title() string { return "북마크" }

func (b *BookmarksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "이동"},
		{Key: "Enter", Description: "정답 보기"},
		{Key: "D", Description: "삭제"},
		{Key: "Esc", Description: "뒤로"},
	}
}

// Refresh reloads bookmarks from the study state.
func (b *BookmarksScreen) Refresh() {
	b.items = Sorted(b.env.State.Bookmarks())
	b.selected = min(b.selected, max(len(b.items)-1, 0))
}

// Sorted orders bookmarks by work title in Korean collation, then by
// statement.
func Sorted(items []studystate.BookmarkItem) []studystate.BookmarkItem {
	out := slices.Clone(items)
	order := components.KoreanOrder()
	slices.SortStableFunc(out, func(x, y studystate.BookmarkItem) int {
		if c := order(displayTitle(x), displayTitle(y)); c != 0 {
			return c
		}
		return order(x.Statement, y.Statement)
	})
	return out
}

func displayTitle(item studystate.BookmarkItem) string {
	if item.Type() == studystate.NoteVocab && item.SourceTitle != "" {
		return item.SourceTitle
	}
	return item.QuizTitle
}

func (b *BookmarksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch {
	case key.Matches(kmsg, components.Keys.Up):
		if b.selected > 0 {
			b.selected--
			b.revealed = false
		}
	case key.Matches(kmsg, components.Keys.Down):
		if b.selected < len(b.items)-1 {
			b.selected++
			b.revealed = false
		}
	case key.Matches(kmsg, components.Keys.Enter):
		b.revealed = !b.revealed
	case key.Matches(kmsg, components.Keys.Delete):
		if b.selected < len(b.items) {
			b.env.State.RemoveBookmark(b.items[b.selected].QuestionID)
			b.revealed = false
			b.Refresh()
		}
	}
	return b, nil
}

func (b *BookmarksScreen) View(width, height int) string {
	if len(b.items) == 0 {
		return components.Center(theme.Hint.Render("북마크한 문제가 없습니다.\n풀이 중 B 키로 문제를 저장하세요."), width, height)
	}

	cw := components.ContentWidth(width)
	var s strings.Builder
	s.WriteString(theme.Subtitle.Render(fmt.Sprintf("저장한 문제 %d개", len(b.items))) + "\n\n")

	rows := max(height/2-4, 3)
	start := max(0, min(b.selected-rows/2, len(b.items)-rows))
	lastTitle := ""
	for i := start; i < min(start+rows, len(b.items)); i++ {
		item := b.items[i]
		if t := displayTitle(item); t != lastTitle {
			s.WriteString(theme.Title.Render(t) + "\n")
			lastTitle = t
		}
		line := truncate(item.Statement, cw-6)
		if i == b.selected {
			s.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
		} else {
			s.WriteString(theme.Unselected.Render("    "+line) + "\n")
		}
	}

	s.WriteString("\n" + components.Card(b.renderDetail(b.items[b.selected], cw-6), cw))
	return components.Center(s.String(), width, height)
}

func (b *BookmarksScreen) renderDetail(item studystate.BookmarkItem, width int) string {
	out := theme.Body.Render(item.Statement) + "\n\n"
	if !b.revealed {
		out += theme.Hint.Render("Enter를 눌러 정답을 확인하세요")
	} else {
		out += theme.Correct.Render("정답 "+catalog.AnswerLabel(item.IsTrue)) + "\n" +
			theme.Subtitle.Render(item.Explanation)
	}
	return lipgloss.NewStyle().Width(width).Render(out)
}

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
