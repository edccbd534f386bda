package studystate

import "time"

// Storage keys. Each holds one independently serialized JSON blob.
const (
	KeyStudyData      = "@study_data"
	KeyIncorrectNotes = "@incorrect_notes"
	KeyBookmarks      = "@bookmarks"
	KeyCompletedWorks = "@completed_works"
	KeyLearningTime   = "@learning_time"
	KeyVocabProgress  = "@vocab_progress"
	KeySchemaVersion  = "@schema_version"
)

// AllKeys returns every storage key owned by the manager.
func AllKeys() []string {
	return []string{
		KeyStudyData,
		KeyIncorrectNotes,
		KeyBookmarks,
		KeyCompletedWorks,
		KeyLearningTime,
		KeyVocabProgress,
		KeySchemaVersion,
	}
}

// DefaultVocabTotal is the number of words in the vocabulary drill.
const DefaultVocabTotal = 15

// dailyProgressWeight scales a lesson's progress amount into DailyProgress.
const dailyProgressWeight = 0.5

const dateLayout = "2006-01-02"

// DefaultExamDate is the CSAT date the D-Day counter targets.
var DefaultExamDate = time.Date(2026, time.November, 12, 0, 0, 0, 0, time.UTC)

// DefaultLocation is the time zone used for calendar-day comparisons.
var DefaultLocation = mustLoadLocation("Asia/Seoul")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

func defaultSubCategories() []SubCategoryProgress {
	return []SubCategoryProgress{
		{
			ID:           "modern-poetry",
			Name:         "현대시",
			Icon:         Icon{Glyph: "✎", Color: "#8B5CF6"},
			Unlocked:     true,
			TotalLessons: 12,
		},
		{
			ID:           "modern-novel",
			Name:         "현대소설",
			Icon:         Icon{Glyph: "❏", Color: "#14B8A6"},
			Unlocked:     true,
			TotalLessons: 10,
		},
		{
			ID:           "classic-poetry",
			Name:         "고전시가",
			Icon:         Icon{Glyph: "❀", Color: "#F97316"},
			Unlocked:     true,
			TotalLessons: 10,
		},
		{
			ID:           "classic-prose",
			Name:         "고전산문",
			Icon:         Icon{Glyph: "☰", Color: "#F43F5E"},
			Unlocked:     true,
			TotalLessons: 8,
		},
	}
}

func defaultStudyData() studyData {
	return studyData{SubCategories: defaultSubCategories()}
}

func defaultVocabProgress() VocabProgress {
	return VocabProgress{
		TotalCount:   DefaultVocabTotal,
		CompletedIDs: []string{},
		CurrentDay:   1,
	}
}
