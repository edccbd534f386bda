package studystate

import "github.com/samber/lo"

// Summary holds aggregates derived from a Snapshot.
type Summary struct {
	TotalLessons     int
	CompletedLessons int
	// OverallProgress is CompletedLessons/TotalLessons, 0 when there are no lessons.
	OverallProgress float64
	UnlockedCount   int

	IncorrectByType map[NoteType]int
	BookmarksByType map[NoteType]int

	VocabLearned int
	VocabTotal   int
}

// Summarize computes lesson totals and per-type note counts. Every
// NoteType has an entry in the count maps, even when zero.
func Summarize(s Snapshot) Summary {
	sum := Summary{
		TotalLessons:     lo.SumBy(s.SubCategories, func(sc SubCategoryProgress) int { return sc.TotalLessons }),
		CompletedLessons: lo.SumBy(s.SubCategories, func(sc SubCategoryProgress) int { return sc.CompletedLessons }),
		UnlockedCount:    lo.CountBy(s.SubCategories, func(sc SubCategoryProgress) bool { return sc.Unlocked }),
		IncorrectByType:  make(map[NoteType]int),
		BookmarksByType:  make(map[NoteType]int),
		VocabLearned:     s.Vocab.LearnedCount,
		VocabTotal:       s.Vocab.TotalCount,
	}
	if sum.TotalLessons > 0 {
		sum.OverallProgress = float64(sum.CompletedLessons) / float64(sum.TotalLessons)
	}

	for _, t := range AllNoteTypes() {
		sum.IncorrectByType[t] = 0
		sum.BookmarksByType[t] = 0
	}
	for _, n := range s.IncorrectNotes {
		sum.IncorrectByType[n.Type()]++
	}
	for _, b := range s.Bookmarks {
		sum.BookmarksByType[b.Type()]++
	}
	return sum
}

// NotesOfType filters notes by type.
func NotesOfType(notes []IncorrectNote, t NoteType) []IncorrectNote {
	return lo.Filter(notes, func(n IncorrectNote, _ int) bool { return n.Type() == t })
}
