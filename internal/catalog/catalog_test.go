package catalog

import (
	"strings"
	"testing"

	"github.com/abhisek/munhak/internal/studystate"
)

func mustDefault(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	if err != nil {
		t.Fatalf("load default catalog: %v", err)
	}
	return c
}

func TestDefault_Categories(t *testing.T) {
	c := mustDefault(t)
	cats := c.Categories()
	want := []string{"modern-poetry", "modern-novel", "classic-poetry", "classic-prose"}
	if len(cats) != len(want) {
		t.Fatalf("got %d categories, want %d", len(cats), len(want))
	}
	for i, id := range want {
		if cats[i].ID != id {
			t.Errorf("category %d: got %q, want %q", i, cats[i].ID, id)
		}
	}
}

func TestDefault_CategoriesMatchStudyState(t *testing.T) {
	c := mustDefault(t)
	m := studystate.New(nil)
	for _, sc := range m.SubCategories() {
		cat, ok := c.Category(sc.ID)
		if !ok {
			t.Errorf("sub-category %q has no catalog genre", sc.ID)
			continue
		}
		if cat.Name != sc.Name {
			t.Errorf("%s: catalog name %q, study name %q", sc.ID, cat.Name, sc.Name)
		}
	}
}

func TestDefault_EveryCategoryHasQuizzes(t *testing.T) {
	c := mustDefault(t)
	for _, cat := range c.Categories() {
		if len(c.QuizzesByCategory(cat.ID)) == 0 {
			t.Errorf("category %q has no passages", cat.ID)
		}
		if c.QuestionCount(cat.ID) == 0 {
			t.Errorf("category %q has no questions", cat.ID)
		}
	}
}

func TestDefault_VocabCount(t *testing.T) {
	c := mustDefault(t)
	if got := len(c.VocabItems()); got != studystate.DefaultVocabTotal {
		t.Errorf("got %d vocab items, want %d", got, studystate.DefaultVocabTotal)
	}
}

func TestQuizByID(t *testing.T) {
	c := mustDefault(t)
	p, ok := c.QuizByID("jindallae")
	if !ok {
		t.Fatal("expected jindallae to exist")
	}
	if p.Author != "김소월" {
		t.Errorf("got author %q", p.Author)
	}
	if _, ok := c.QuizByID("nonexistent"); ok {
		t.Error("expected nonexistent passage to be missing")
	}
}

func TestQuizByID_ReturnsCopy(t *testing.T) {
	c := mustDefault(t)
	p, _ := c.QuizByID("seosi")
	p.Questions[0].Statement = "changed"

	again, _ := c.QuizByID("seosi")
	if again.Questions[0].Statement == "changed" {
		t.Error("mutating a returned passage changed the catalog")
	}
}

func TestQuestionByID(t *testing.T) {
	c := mustDefault(t)
	p, q, ok := c.QuestionByID("guunmong-3")
	if !ok {
		t.Fatal("expected guunmong-3 to exist")
	}
	if p.ID != "guunmong" || q.IsTrue {
		t.Errorf("got passage %q isTrue=%v", p.ID, q.IsTrue)
	}
	if _, _, ok := c.QuestionByID("guunmong-99"); ok {
		t.Error("expected missing question")
	}
}

func TestQuizzesByCategory_UnknownIsEmpty(t *testing.T) {
	c := mustDefault(t)
	if got := c.QuizzesByCategory("drama"); len(got) != 0 {
		t.Errorf("got %d passages for unknown category", len(got))
	}
}

func TestVocabByID(t *testing.T) {
	c := mustDefault(t)
	v, ok := c.VocabByID("v06")
	if !ok {
		t.Fatal("expected v06")
	}
	if v.Term != "시나브로" || v.IsTrue {
		t.Errorf("got %+v", v)
	}
}

func TestParse_SchemaViolation(t *testing.T) {
	raw := []byte(`{"categories":[{"id":"a","name":"A"}],"passages":[{"id":"p","categoryId":"a","title":"t","author":"x","questions":[]}],"vocab":[]}`)
	_, err := Parse(raw)
	if err == nil {
		t.Fatal("expected error for passage without questions")
	}
	if !strings.Contains(err.Error(), "validate bank") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{`)); err == nil {
		t.Fatal("expected error for truncated JSON")
	}
}

func TestParse_CrossRecordChecks(t *testing.T) {
	raw := []byte(`{
		"categories":[{"id":"a","name":"A"}],
		"passages":[
			{"id":"p","categoryId":"a","title":"t","author":"x","questions":[{"id":"q1","statement":"s","isTrue":true,"explanation":"e"}]},
			{"id":"p","categoryId":"b","title":"t","author":"x","questions":[{"id":"q1","statement":"s","isTrue":true,"explanation":"e"}]}
		],
		"vocab":[
			{"id":"v1","term":"t","meaning":"m","statement":"s","isTrue":true},
			{"id":"v1","term":"t","meaning":"m","statement":"s","isTrue":true}
		]
	}`)
	_, err := Parse(raw)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{
		`duplicate passage ID: "p"`,
		`references unknown category "b"`,
		`question "q1"`,
		`duplicate vocab ID: "v1"`,
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q:\n%v", want, err)
		}
	}
}

func TestIncorrectNote(t *testing.T) {
	c := mustDefault(t)
	p, q, _ := c.QuestionByID("jindallae-2")
	n := IncorrectNote(p, q, true)

	if n.UserAnswer != "O" || n.IsTrue {
		t.Errorf("got answer %q isTrue=%v", n.UserAnswer, n.IsTrue)
	}
	if n.QuizTitle != "진달래꽃" || n.CategoryID != "modern-poetry" {
		t.Errorf("got %+v", n)
	}
	if n.NoteType != studystate.NoteLiterature {
		t.Errorf("got note type %q", n.NoteType)
	}
}

func TestVocabNote(t *testing.T) {
	c := mustDefault(t)
	v, _ := c.VocabByID("v03")
	n := VocabNote(v, true)

	if n.NoteType != studystate.NoteVocab {
		t.Errorf("got note type %q", n.NoteType)
	}
	if n.CorrectAnswer != "X" || n.UserAnswer != "O" {
		t.Errorf("got correct=%q user=%q", n.CorrectAnswer, n.UserAnswer)
	}
	if n.SourceTitle != "무람없다" {
		t.Errorf("got source %q", n.SourceTitle)
	}
}
