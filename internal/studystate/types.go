package studystate

import "slices"

// Icon is the display metadata for a sub-category.
type Icon struct {
	Glyph string `json:"glyph"`
	Color string `json:"color"`
}

// SubCategoryProgress tracks lesson completion for one literature genre.
type SubCategoryProgress struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Icon             Icon    `json:"icon"`
	Unlocked         bool    `json:"unlocked"`
	Progress         float64 `json:"progress"`
	TotalLessons     int     `json:"totalLessons"`
	CompletedLessons int     `json:"completedLessons"`
}

// NoteType classifies an incorrect note or bookmark by the drill it came from.
type NoteType string

const (
	NoteLiterature NoteType = "literature"
	NoteVocab      NoteType = "vocab"
	NoteExam       NoteType = "exam"
)

// AllNoteTypes returns all note types in display order.
func AllNoteTypes() []NoteType {
	return []NoteType{NoteLiterature, NoteVocab, NoteExam}
}

// DisplayName returns the Korean label for the note type.
func (t NoteType) DisplayName() string {
	switch t {
	case NoteLiterature:
		return "문학"
	case NoteVocab:
		return "어휘"
	case NoteExam:
		return "기출"
	default:
		return string(t)
	}
}

// ParseNoteType validates a note type name.
func ParseNoteType(s string) (NoteType, bool) {
	t := NoteType(s)
	return t, slices.Contains(AllNoteTypes(), t)
}

// IncorrectNote records a missed question. At most one note exists per
// QuestionID.
type IncorrectNote struct {
	QuestionID    string   `json:"questionId"`
	QuizID        string   `json:"quizId"`
	QuizTitle     string   `json:"quizTitle"`
	QuizAuthor    string   `json:"quizAuthor"`
	CategoryID    string   `json:"categoryId"`
	Statement     string   `json:"statement"`
	IsTrue        bool     `json:"isTrue"`
	Explanation   string   `json:"explanation"`
	UserAnswer    string   `json:"userAnswer"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
	SourceTitle   string   `json:"sourceTitle,omitempty"`
	NoteType      NoteType `json:"noteType,omitempty"`
	Timestamp     int64    `json:"timestamp"`
}

// Type returns the note type, treating an unset type as literature.
func (n IncorrectNote) Type() NoteType {
	if n.NoteType == "" {
		return NoteLiterature
	}
	return n.NoteType
}

// BookmarkItem is a learner-saved question reference.
type BookmarkItem struct {
	QuestionID  string   `json:"questionId"`
	QuizID      string   `json:"quizId"`
	QuizTitle   string   `json:"quizTitle"`
	QuizAuthor  string   `json:"quizAuthor"`
	CategoryID  string   `json:"categoryId"`
	Statement   string   `json:"statement"`
	IsTrue      bool     `json:"isTrue"`
	Explanation string   `json:"explanation"`
	SourceTitle string   `json:"sourceTitle,omitempty"`
	NoteType    NoteType `json:"noteType,omitempty"`
	Timestamp   int64    `json:"timestamp"`
}

// Type returns the bookmark type, treating an unset type as literature.
func (b BookmarkItem) Type() NoteType {
	if b.NoteType == "" {
		return NoteLiterature
	}
	return b.NoteType
}

// VocabProgress tracks the vocabulary drill. CompletedIDs is a set.
type VocabProgress struct {
	LearnedCount  int      `json:"learnedCount"`
	TotalCount    int      `json:"totalCount"`
	CompletedIDs  []string `json:"completedIds"`
	CurrentDay    int      `json:"currentDay"`
	CompletedDate *string  `json:"completedDate"`
}

func (v VocabProgress) clone() VocabProgress {
	out := v
	out.CompletedIDs = slices.Clone(v.CompletedIDs)
	if v.CompletedDate != nil {
		d := *v.CompletedDate
		out.CompletedDate = &d
	}
	return out
}

// LearningTimeRecord is the persisted learning time for one calendar day.
type LearningTimeRecord struct {
	Date    string `json:"date"`
	Seconds int    `json:"seconds"`
}

// studyData is the persisted shape of the overall study slice.
type studyData struct {
	DailyProgress float64               `json:"dailyProgress"`
	Streak        int                   `json:"streak"`
	SubCategories []SubCategoryProgress `json:"subCategories"`
	LastStudyDate string                `json:"lastStudyDate,omitempty"`
	ProgressDate  string                `json:"progressDate,omitempty"`
}

func (d studyData) clone() studyData {
	out := d
	out.SubCategories = slices.Clone(d.SubCategories)
	return out
}

// Snapshot is a point-in-time copy of the learner state. It shares no
// memory with the manager.
type Snapshot struct {
	Today          string
	DDay           int
	DailyProgress  float64
	Streak         int
	SubCategories  []SubCategoryProgress
	IncorrectNotes []IncorrectNote
	Bookmarks      []BookmarkItem
	CompletedWorks []string
	LearningTime   int
	Vocab          VocabProgress
}

// ProgressMode selects how DailyProgress behaves across calendar days.
type ProgressMode string

const (
	// ProgressCumulative never resets DailyProgress.
	ProgressCumulative ProgressMode = "cumulative"
	// ProgressDaily resets DailyProgress on the first use of a new day.
	ProgressDaily ProgressMode = "daily"
)
