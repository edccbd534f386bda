package catalog

import "github.com/abhisek/munhak/internal/studystate"

// Vocab notes and bookmarks are filed under this pseudo-quiz.
const (
	VocabQuizID    = "vocab"
	VocabQuizTitle = "어휘 학습"
)

// IncorrectNote builds the note recorded when the learner answers q wrong.
func IncorrectNote(p QuizPassage, q Question, answer bool) studystate.IncorrectNote {
	return studystate.IncorrectNote{
		QuestionID:  q.ID,
		QuizID:      p.ID,
		QuizTitle:   p.Title,
		QuizAuthor:  p.Author,
		CategoryID:  p.CategoryID,
		Statement:   q.Statement,
		IsTrue:      q.IsTrue,
		Explanation: q.Explanation,
		UserAnswer:  AnswerLabel(answer),
		NoteType:    studystate.NoteLiterature,
	}
}

// Bookmark builds a bookmark for q.
func Bookmark(p QuizPassage, q Question) studystate.BookmarkItem {
	return studystate.BookmarkItem{
		QuestionID:  q.ID,
		QuizID:      p.ID,
		QuizTitle:   p.Title,
		QuizAuthor:  p.Author,
		CategoryID:  p.CategoryID,
		Statement:   q.Statement,
		IsTrue:      q.IsTrue,
		Explanation: q.Explanation,
		NoteType:    studystate.NoteLiterature,
	}
}

// VocabNote builds the note recorded when the learner misjudges v.
func VocabNote(v VocabItem, answer bool) studystate.IncorrectNote {
	return studystate.IncorrectNote{
		QuestionID:    v.ID,
		QuizID:        VocabQuizID,
		QuizTitle:     VocabQuizTitle,
		CategoryID:    VocabQuizID,
		Statement:     v.Statement,
		IsTrue:        v.IsTrue,
		Explanation:   v.Meaning,
		UserAnswer:    AnswerLabel(answer),
		CorrectAnswer: AnswerLabel(v.IsTrue),
		SourceTitle:   v.Term,
		NoteType:      studystate.NoteVocab,
	}
}

// VocabBookmark builds a bookmark for v.
func VocabBookmark(v VocabItem) studystate.BookmarkItem {
	return studystate.BookmarkItem{
		QuestionID:  v.ID,
		QuizID:      VocabQuizID,
		QuizTitle:   VocabQuizTitle,
		CategoryID:  VocabQuizID,
		Statement:   v.Statement,
		IsTrue:      v.IsTrue,
		Explanation: v.Meaning,
		SourceTitle: v.Term,
		NoteType:    studystate.NoteVocab,
	}
}
