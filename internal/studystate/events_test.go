package studystate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsInMutationOrder(t *testing.T) {
	m := New(newMemKV(), WithClock(newClock(day0).Now))
	defer m.Close(context.Background())

	var got []Event
	m.Subscribe(func(ev Event) { got = append(got, ev) })

	m.Load(context.Background())
	m.AddBookmark(sampleBookmark("q1"))
	m.AddIncorrectNote(sampleNote("q2"))
	m.AddCompletedWork("jindallae")
	m.UpdateVocabProgress("v01")

	assert.Equal(t, []Event{
		{Kind: EventLoaded},
		{Kind: EventBookmarks, ID: "q1"},
		{Kind: EventIncorrectNotes, ID: "q2"},
		{Kind: EventCompletedWorks, ID: "jindallae"},
		{Kind: EventVocab, ID: "v01"},
	}, got)
}

func TestEventAfterEnqueue(t *testing.T) {
	kv := newMemKV()
	m, _ := newTestManager(t, kv, newClock(day0))

	var sawState bool
	m.Subscribe(func(ev Event) {
		if ev.Kind == EventBookmarks {
			sawState = m.IsBookmarked(ev.ID)
		}
	})
	m.AddBookmark(sampleBookmark("q1"))

	require.True(t, sawState)
	flush(t, m)
	var stored []BookmarkItem
	kv.decode(t, KeyBookmarks, &stored)
	assert.Len(t, stored, 1)
}

func TestListenerMayMutate(t *testing.T) {
	m, _ := newTestManager(t, newMemKV(), newClock(day0))

	var kinds []EventKind
	m.Subscribe(func(ev Event) {
		kinds = append(kinds, ev.Kind)
		if ev.Kind == EventBookmarks {
			m.AddCompletedWork("from-listener")
		}
	})

	m.AddBookmark(sampleBookmark("q1"))

	assert.Equal(t, []EventKind{EventBookmarks, EventCompletedWorks}, kinds)
	assert.Equal(t, []string{"from-listener"}, m.CompletedWorks())
}

func TestSubscribersCalledInRegistrationOrder(t *testing.T) {
	m, _ := newTestManager(t, newMemKV(), newClock(day0))

	var order []string
	m.Subscribe(func(Event) { order = append(order, "first") })
	unsub := m.Subscribe(func(Event) { order = append(order, "second") })
	m.Subscribe(func(Event) { order = append(order, "third") })

	m.AddCompletedWork("a")
	unsub()
	m.AddCompletedWork("b")

	assert.Equal(t, []string{"first", "second", "third", "first", "third"}, order)
}

func TestNoEventWhenNothingChanges(t *testing.T) {
	m, _ := newTestManager(t, newMemKV(), newClock(day0))
	m.AddBookmark(sampleBookmark("q1"))
	m.UpdateVocabProgress("v01")

	var n int
	m.Subscribe(func(Event) { n++ })
	m.AddBookmark(sampleBookmark("q1"))
	m.RemoveBookmark("missing")
	m.UpdateVocabProgress("v01")
	m.UnlockCategory("modern-poetry")
	m.AddCompletedWork("x")
	m.AddCompletedWork("x")

	assert.Equal(t, 1, n)
}
