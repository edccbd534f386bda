package catalog

// Category is a literature genre. Its ID matches a studystate sub-category.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Question is one O/X statement about a passage.
type Question struct {
	ID          string `json:"id"`
	Statement   string `json:"statement"`
	IsTrue      bool   `json:"isTrue"`
	Explanation string `json:"explanation"`
}

// QuizPassage is a literary work with its O/X questions.
type QuizPassage struct {
	ID         string     `json:"id"`
	CategoryID string     `json:"categoryId"`
	Title      string     `json:"title"`
	Author     string     `json:"author"`
	Excerpt    string     `json:"excerpt,omitempty"`
	Questions  []Question `json:"questions"`
}

// VocabItem is one term in the vocabulary drill. Statement proposes a
// meaning for Term; IsTrue says whether the proposal is right.
type VocabItem struct {
	ID        string `json:"id"`
	Term      string `json:"term"`
	Meaning   string `json:"meaning"`
	Statement string `json:"statement"`
	IsTrue    bool   `json:"isTrue"`
	Example   string `json:"example,omitempty"`
}

type bank struct {
	Categories []Category    `json:"categories"`
	Passages   []QuizPassage `json:"passages"`
	Vocab      []VocabItem   `json:"vocab"`
}

// AnswerLabel renders a true/false answer as O or X.
func AnswerLabel(b bool) string {
	if b {
		return "O"
	}
	return "X"
}
