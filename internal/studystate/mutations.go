package studystate

import (
	"context"
	"slices"

	"github.com/samber/lo"
)

func (m *Manager) subCategoryIndexLocked(id string) int {
	return slices.IndexFunc(m.study.SubCategories, func(sc SubCategoryProgress) bool { return sc.ID == id })
}

func (m *Manager) noteIndexLocked(questionID string) int {
	return slices.IndexFunc(m.notes, func(n IncorrectNote) bool { return n.QuestionID == questionID })
}

func (m *Manager) bookmarkIndexLocked(questionID string) int {
	return slices.IndexFunc(m.bookmarks, func(b BookmarkItem) bool { return b.QuestionID == questionID })
}

// UnlockCategory marks the sub-category id as unlocked.
func (m *Manager) UnlockCategory(id string) []SubCategoryProgress {
	m.mu.Lock()
	i := m.subCategoryIndexLocked(id)
	if i < 0 || m.study.SubCategories[i].Unlocked {
		out := m.study.clone().SubCategories
		m.mu.Unlock()
		return out
	}

	m.study.SubCategories[i].Unlocked = true
	m.persistLocked(KeyStudyData, m.study)
	out := m.study.clone().SubCategories
	m.unlockAndEmit(Event{Kind: EventStudyData, ID: id})
	return out
}

// AddProgress records one completed lesson in sub-category id. Each call
// counts, even when repeated for the same lesson.
func (m *Manager) AddProgress(id string, amount float64) []SubCategoryProgress {
	m.mu.Lock()
	today := m.today()
	m.rollDayLocked(today)

	if i := m.subCategoryIndexLocked(id); i >= 0 {
		sc := &m.study.SubCategories[i]
		sc.CompletedLessons = min(sc.CompletedLessons+1, sc.TotalLessons)
		sc.Progress = min(sc.Progress+amount, 1)
	}
	m.study.DailyProgress = min(m.study.DailyProgress+amount*dailyProgressWeight, 1)
	m.recordStudyDayLocked(today)

	m.persistLocked(KeyStudyData, m.study)
	out := m.study.clone().SubCategories
	m.unlockAndEmit(Event{Kind: EventStudyData, ID: id})
	return out
}

// RecordStudyDay counts today toward the study streak.
func (m *Manager) RecordStudyDay() int {
	m.mu.Lock()
	if !m.recordStudyDayLocked(m.today()) {
		streak := m.study.Streak
		m.mu.Unlock()
		return streak
	}
	m.persistLocked(KeyStudyData, m.study)
	streak := m.study.Streak
	m.unlockAndEmit(Event{Kind: EventStudyData})
	return streak
}

// recordStudyDayLocked updates the streak for a study action on today and
// reports whether anything changed.
func (m *Manager) recordStudyDayLocked(today string) bool {
	if m.study.LastStudyDate == today {
		return false
	}
	if m.study.LastStudyDate == m.yesterday() {
		m.study.Streak++
	} else {
		m.study.Streak = 1
	}
	m.study.LastStudyDate = today
	return true
}

// AddCompletedWork records quiz workID as completed.
func (m *Manager) AddCompletedWork(workID string) []string {
	m.mu.Lock()
	if lo.Contains(m.completed, workID) {
		out := slices.Clone(m.completed)
		m.mu.Unlock()
		return out
	}

	m.completed = append(m.completed, workID)
	m.persistLocked(KeyCompletedWorks, m.completed)
	out := slices.Clone(m.completed)
	m.unlockAndEmit(Event{Kind: EventCompletedWorks, ID: workID})
	return out
}

// AddIncorrectNote inserts note or replaces the note with the same
// QuestionID. A note without a type is filed as literature.
func (m *Manager) AddIncorrectNote(note IncorrectNote) []IncorrectNote {
	if note.NoteType == "" {
		note.NoteType = NoteLiterature
	}

	m.mu.Lock()
	if note.Timestamp == 0 {
		note.Timestamp = m.now().UnixMilli()
	}
	if i := m.noteIndexLocked(note.QuestionID); i >= 0 {
		m.notes[i] = note
	} else {
		m.notes = append(m.notes, note)
	}

	m.persistLocked(KeyIncorrectNotes, m.notes)
	out := slices.Clone(m.notes)
	m.unlockAndEmit(Event{Kind: EventIncorrectNotes, ID: note.QuestionID})
	return out
}

// RemoveIncorrectNote deletes the note for questionID, if any.
func (m *Manager) RemoveIncorrectNote(questionID string) []IncorrectNote {
	m.mu.Lock()
	if m.noteIndexLocked(questionID) < 0 {
		out := slices.Clone(m.notes)
		m.mu.Unlock()
		return out
	}

	m.notes = lo.Reject(m.notes, func(n IncorrectNote, _ int) bool { return n.QuestionID == questionID })
	m.persistLocked(KeyIncorrectNotes, m.notes)
	out := slices.Clone(m.notes)
	m.unlockAndEmit(Event{Kind: EventIncorrectNotes, ID: questionID})
	return out
}

// AddBookmark saves item unless its QuestionID is already bookmarked.
func (m *Manager) AddBookmark(item BookmarkItem) []BookmarkItem {
	m.mu.Lock()
	if m.bookmarkIndexLocked(item.QuestionID) >= 0 {
		out := slices.Clone(m.bookmarks)
		m.mu.Unlock()
		return out
	}

	if item.NoteType == "" {
		item.NoteType = NoteLiterature
	}
	if item.Timestamp == 0 {
		item.Timestamp = m.now().UnixMilli()
	}
	m.bookmarks = append(m.bookmarks, item)
	m.persistLocked(KeyBookmarks, m.bookmarks)
	out := slices.Clone(m.bookmarks)
	m.unlockAndEmit(Event{Kind: EventBookmarks, ID: item.QuestionID})
	return out
}

// RemoveBookmark deletes the bookmark for questionID, if any.
func (m *Manager) RemoveBookmark(questionID string) []BookmarkItem {
	m.mu.Lock()
	if m.bookmarkIndexLocked(questionID) < 0 {
		out := slices.Clone(m.bookmarks)
		m.mu.Unlock()
		return out
	}

	m.bookmarks = lo.Reject(m.bookmarks, func(b BookmarkItem, _ int) bool { return b.QuestionID == questionID })
	m.persistLocked(KeyBookmarks, m.bookmarks)
	out := slices.Clone(m.bookmarks)
	m.unlockAndEmit(Event{Kind: EventBookmarks, ID: questionID})
	return out
}

// ToggleBookmark adds item if it is not bookmarked and removes it
// otherwise. It reports whether the item is bookmarked afterwards.
func (m *Manager) ToggleBookmark(item BookmarkItem) bool {
	if m.IsBookmarked(item.QuestionID) {
		m.RemoveBookmark(item.QuestionID)
		return false
	}
	m.AddBookmark(item)
	return true
}

// AddLearningTime adds seconds to today's learning time.
func (m *Manager) AddLearningTime(seconds int) int {
	if seconds <= 0 {
		return m.LearningTime()
	}

	m.mu.Lock()
	today := m.today()
	if m.learning.Date != today {
		m.learning = LearningTimeRecord{Date: today}
	}
	m.learning.Seconds += seconds
	m.persistLocked(KeyLearningTime, m.learning)
	total := m.learning.Seconds
	m.unlockAndEmit(Event{Kind: EventLearningTime})
	return total
}

// ResetDailyLearningTime sets today's learning time to zero.
func (m *Manager) ResetDailyLearningTime() {
	m.mu.Lock()
	m.learning = LearningTimeRecord{Date: m.today()}
	m.persistLocked(KeyLearningTime, m.learning)
	m.unlockAndEmit(Event{Kind: EventLearningTime})
}

// UpdateVocabProgress marks vocab item id as learned. Repeated calls for
// the same id count once.
func (m *Manager) UpdateVocabProgress(id string) VocabProgress {
	m.mu.Lock()
	if lo.Contains(m.vocab.CompletedIDs, id) {
		out := m.vocab.clone()
		m.mu.Unlock()
		return out
	}

	m.vocab.LearnedCount++
	m.vocab.CompletedIDs = append(m.vocab.CompletedIDs, id)
	m.persistLocked(KeyVocabProgress, m.vocab)
	out := m.vocab.clone()
	m.unlockAndEmit(Event{Kind: EventVocab, ID: id})
	return out
}

// MarkVocabCompleted records that today's vocab drill is finished. A
// completion on a later day than the stored one advances CurrentDay.
func (m *Manager) MarkVocabCompleted() VocabProgress {
	m.mu.Lock()
	today := m.today()
	if m.vocab.CompletedDate != nil && *m.vocab.CompletedDate == today {
		out := m.vocab.clone()
		m.mu.Unlock()
		return out
	}

	if m.vocab.CompletedDate != nil {
		m.vocab.CurrentDay++
	}
	m.vocab.CompletedDate = &today
	m.persistLocked(KeyVocabProgress, m.vocab)
	out := m.vocab.clone()
	m.unlockAndEmit(Event{Kind: EventVocab})
	return out
}

// Reset returns every slice to its default and waits for the defaults to
// be written.
func (m *Manager) Reset(ctx context.Context) error {
	m.mu.Lock()
	today := m.today()
	m.study = defaultStudyData()
	m.notes = []IncorrectNote{}
	m.bookmarks = []BookmarkItem{}
	m.completed = []string{}
	m.learning = LearningTimeRecord{Date: today}
	m.vocab = defaultVocabProgress()

	m.persistLocked(KeyStudyData, m.study)
	m.persistLocked(KeyIncorrectNotes, m.notes)
	m.persistLocked(KeyBookmarks, m.bookmarks)
	m.persistLocked(KeyCompletedWorks, m.completed)
	m.persistLocked(KeyLearningTime, m.learning)
	m.persistLocked(KeyVocabProgress, m.vocab)
	m.persistLocked(KeySchemaVersion, CurrentSchemaVersion)
	m.unlockAndEmit(Event{Kind: EventReset})

	return m.Flush(ctx)
}
