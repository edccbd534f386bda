package genres

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/munhak/internal/catalog"
	"github.com/abhisek/munhak/internal/router"
	"github.com/abhisek/munhak/internal/screen"
	"github.com/abhisek/munhak/internal/screens/quiz"
	"github.com/abhisek/munhak/internal/ui/components"
	"github.com/abhisek/munhak/internal/ui/theme"
)

// GenresScreen lists the literature genres with their lesson progress.
type GenresScreen struct {
	env  screen.Env
	menu components.Menu
}

var (
	_ screen.Screen    = (*GenresScreen)(nil)
	_ screen.Refresher = (*GenresScreen)(nil)
)

// New creates a GenresScreen.
func New(env screen.Env) *GenresScreen {
	g := &GenresScreen{env: env}
	g.Refresh()
	return g
}

func (g *GenresScreen) Refresh() {
	selected := g.menu.Selected
	var items []components.MenuItem
	for _, sc := range g.env.State.SubCategories() {
		cat, ok := g.env.Catalog.Category(sc.ID)
		quizzes := g.env.Catalog.QuizzesByCategory(sc.ID)
		item := components.MenuItem{
			Label:    sc.Icon.Glyph + " " + sc.Name,
			Detail:   fmt.Sprintf("%d/%d 레슨 · 작품 %d편", sc.CompletedLessons, sc.TotalLessons, len(quizzes)),
			Disabled: !sc.Unlocked || !ok || len(quizzes) == 0,
		}
		if !item.Disabled {
			item.Action = func() tea.Cmd { return router.Push(NewWorks(g.env, cat)) }
		}
		items = append(items, item)
	}
	g.menu = components.NewMenu(items)
	if selected < len(items) && !items[selected].Disabled {
		g.menu.Selected = selected
	}
}

func (g *GenresScreen) Init() tea.Cmd { return nil }

func (g *GenresScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	g.menu, cmd = g.menu.Update(msg)
	return g, cmd
}

func (g *GenresScreen) View(width, height int) string {
	body := theme.Title.Render("갈래를 고르세요") + "\n\n" + g.menu.View()
	return components.Center(body, width, height)
}

func (g *GenresScreen) Title() string { return "문학 퀴즈" }

// WorksScreen lists the passages of one genre. Completed works are checked.
type WorksScreen struct {
	env      screen.Env
	category catalog.Category
	passages []catalog.QuizPassage
	menu     components.Menu
}

var (
	_ screen.Screen    = (*WorksScreen)(nil)
	_ screen.Refresher = (*WorksScreen)(nil)
)

// NewWorks creates a WorksScreen for category.
func NewWorks(env screen.Env, category catalog.Category) *WorksScreen {
	w := &WorksScreen{
		env:      env,
		category: category,
		passages: env.Catalog.QuizzesByCategory(category.ID),
	}
	w.Refresh()
	return w
}

func (w *WorksScreen) Refresh() {
	done := w.env.State.CompletedWorks()
	selected := w.menu.Selected

	items := make([]components.MenuItem, len(w.passages))
	for i, p := range w.passages {
		mark := "  "
		if slices.Contains(done, p.ID) {
			mark = theme.Correct.Render("✓ ")
		}
		items[i] = components.MenuItem{
			Label:  mark + p.Title,
			Detail: fmt.Sprintf("%s · %d문항", p.Author, len(p.Questions)),
			Action: func() tea.Cmd { return router.Push(quiz.New(w.env, p)) },
		}
	}
	w.menu = components.NewMenu(items)
	w.menu.Selected = min(selected, max(len(items)-1, 0))
}

func (w *WorksScreen) Init() tea.Cmd { return nil }

func (w *WorksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	w.menu, cmd = w.menu.Update(msg)
	return w, cmd
}

func (w *WorksScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(w.category.Name) + "\n")
	if w.category.Description != "" {
		b.WriteString(theme.Subtitle.Render(w.category.Description) + "\n")
	}
	b.WriteString("\n" + w.menu.View())
	return components.Center(b.String(), width, height)
}

func (w *WorksScreen) Title() string { return w.category.Name }
