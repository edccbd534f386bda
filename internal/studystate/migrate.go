package studystate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/munhak/internal/store"
)

// CurrentSchemaVersion is the note schema written by this build.
//
// Version history:
//
//	0/1: notes and bookmarks may lack noteType.
//	2:   every note and bookmark carries noteType.
const CurrentSchemaVersion = 2

// loadedNote is a decoded note plus whether its stored JSON carried a
// correctAnswer field, which version 0/1 records use to imply vocab notes.
type loadedNote struct {
	note             IncorrectNote
	hasCorrectAnswer bool
}

// loadNotes reads the incorrect-notes slice. Individual malformed records
// are skipped; a malformed slice yields no notes. ok is false when anything
// stored could not be read back, including a single skipped record.
func (m *Manager) loadNotes(ctx context.Context) (notes []loadedNote, ok bool) {
	raw, err := m.kv.Get(ctx, KeyIncorrectNotes)
	if err != nil {
		m.logLoadError(KeyIncorrectNotes, err)
		return nil, errors.Is(err, store.ErrNotFound)
	}
	notes, skipped, err := decodeNotes(raw)
	if err != nil {
		m.logLoadError(KeyIncorrectNotes, err)
		return nil, false
	}
	if skipped > 0 {
		m.log.WithField("key", KeyIncorrectNotes).WithField("skipped", skipped).Warn("skipped malformed notes")
	}
	return notes, skipped == 0
}

// decodeNotes decodes a stored notes array, returning the records that
// decoded and how many were skipped.
func decodeNotes(raw []byte) ([]loadedNote, int, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, 0, fmt.Errorf("decode incorrect notes: %w", err)
	}

	out := make([]loadedNote, 0, len(records))
	skipped := 0
	for _, rec := range records {
		var n IncorrectNote
		if err := json.Unmarshal(rec, &n); err != nil {
			skipped++
			continue
		}
		var answer struct {
			CorrectAnswer *json.RawMessage `json:"correctAnswer"`
		}
		_ = json.Unmarshal(rec, &answer)
		out = append(out, loadedNote{note: n, hasCorrectAnswer: answer.CorrectAnswer != nil})
	}
	return out, skipped, nil
}

// migrate upgrades notes and bookmarks from version from to
// CurrentSchemaVersion.
func migrate(from int, notes []loadedNote, bookmarks []BookmarkItem) ([]IncorrectNote, []BookmarkItem) {
	if from >= 2 {
		return notesOf(notes), bookmarks
	}

	// 0/1 -> 2: infer noteType from the presence of correctAnswer.
	migrated := make([]IncorrectNote, len(notes))
	for i, ln := range notes {
		n := ln.note
		if n.NoteType == "" {
			if ln.hasCorrectAnswer {
				n.NoteType = NoteVocab
			} else {
				n.NoteType = NoteLiterature
			}
		}
		migrated[i] = n
	}

	outBookmarks := make([]BookmarkItem, len(bookmarks))
	for i, b := range bookmarks {
		if b.NoteType == "" {
			b.NoteType = NoteLiterature
		}
		outBookmarks[i] = b
	}
	return migrated, outBookmarks
}

func notesOf(loaded []loadedNote) []IncorrectNote {
	out := make([]IncorrectNote, len(loaded))
	for i, ln := range loaded {
		out[i] = ln.note
	}
	return out
}
