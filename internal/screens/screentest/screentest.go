// Package screentest builds screen environments backed by a temporary
// database for screen tests.
package screentest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/munhak/internal/catalog"
	"github.com/abhisek/munhak/internal/screen"
	"github.com/abhisek/munhak/internal/store"
	"github.com/abhisek/munhak/internal/studystate"
)

// Clock is a settable time source.
type Clock struct {
	T time.Time
}

func (c *Clock) Now() time.Time { return c.T }

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) { c.T = c.T.Add(d) }

// Env opens a fresh study state and returns an environment using the
// embedded catalog and a clock at 2026-10-19 09:00 KST.
func Env(t *testing.T) (screen.Env, *Clock) {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "screen.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	cat, err := catalog.Default()
	require.NoError(t, err)

	clk := &Clock{T: time.Date(2026, 10, 19, 9, 0, 0, 0, studystate.DefaultLocation)}
	log, _ := test.NewNullLogger()

	m := studystate.Open(context.Background(), s.KV(),
		studystate.WithClock(clk.Now),
		studystate.WithLogger(log),
	)
	t.Cleanup(func() { m.Close(context.Background()) })

	return screen.Env{
		State:   m,
		Catalog: cat,
		Log:     log,
		Now:     clk.Now,
	}, clk
}

// Key returns a printable key press.
func Key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Enter returns an Enter key press.
func Enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

// Answer returns the key press for an O/X answer.
func Answer(b bool) tea.KeyPressMsg {
	if b {
		return Key('o')
	}
	return Key('x')
}
