package studystate

import "slices"

// EventKind names the slice a mutation changed.
type EventKind string

const (
	EventLoaded         EventKind = "loaded"
	EventStudyData      EventKind = "study_data"
	EventIncorrectNotes EventKind = "incorrect_notes"
	EventBookmarks      EventKind = "bookmarks"
	EventCompletedWorks EventKind = "completed_works"
	EventLearningTime   EventKind = "learning_time"
	EventVocab          EventKind = "vocab"
	EventReset          EventKind = "reset"
)

// Event is delivered to subscribers after a mutation's persistence write
// has been enqueued. The write may not have completed yet.
type Event struct {
	Kind EventKind
	// ID is the category, question, quiz, or vocab id the mutation targeted.
	ID string
}

type listener struct {
	id int
	fn func(Event)
}

// Subscribe registers fn and returns a function that removes it.
// Events arrive in mutation order; subscribers are called in registration
// order. fn may call back into the manager.
func (m *Manager) Subscribe(fn func(Event)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners = append(m.listeners, listener{id: id, fn: fn})
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		m.listeners = slices.DeleteFunc(m.listeners, func(l listener) bool { return l.id == id })
		m.mu.Unlock()
	}
}

// unlockAndEmit queues ev, releases mu, and dispatches queued events.
// Must be called with mu held.
func (m *Manager) unlockAndEmit(ev Event) {
	m.events = append(m.events, ev)
	m.mu.Unlock()
	m.dispatch()
}

// dispatch delivers queued events. Only one goroutine dispatches at a time;
// a goroutine that finds dispatch busy leaves its event for the current
// dispatcher, which re-checks the queue before giving up the role.
func (m *Manager) dispatch() {
	for {
		if !m.emitMu.TryLock() {
			return
		}
		for {
			m.mu.Lock()
			if len(m.events) == 0 {
				m.mu.Unlock()
				break
			}
			ev := m.events[0]
			m.events = m.events[1:]
			listeners := slices.Clone(m.listeners)
			m.mu.Unlock()

			for _, l := range listeners {
				l.fn(ev)
			}
		}
		m.emitMu.Unlock()

		m.mu.Lock()
		more := len(m.events) > 0
		m.mu.Unlock()
		if !more {
			return
		}
	}
}
