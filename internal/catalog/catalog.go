package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
)

//go:embed data/bank.json
var bankJSON []byte

// Catalog is a read-only question bank with precomputed indices.
type Catalog struct {
	categories []Category
	passages   []QuizPassage
	vocab      []VocabItem

	byID       map[string]int
	byCategory map[string][]int
	byQuestion map[string]int
	vocabByID  map[string]int
}

// Parse validates raw bank JSON and builds a Catalog from it.
func Parse(raw []byte) (*Catalog, error) {
	if err := validateSchema(raw); err != nil {
		return nil, fmt.Errorf("validate bank: %w", err)
	}
	var b bank
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	if err := validateBank(b); err != nil {
		return nil, err
	}
	return build(b), nil
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Parse(bankJSON)
})

// Default returns the catalog built from the embedded bank.
func Default() (*Catalog, error) {
	return loadDefault()
}

func build(b bank) *Catalog {
	c := &Catalog{
		categories: b.Categories,
		passages:   b.Passages,
		vocab:      b.Vocab,
		byID:       make(map[string]int, len(b.Passages)),
		byCategory: make(map[string][]int, len(b.Categories)),
		byQuestion: make(map[string]int),
		vocabByID:  make(map[string]int, len(b.Vocab)),
	}
	for i, p := range c.passages {
		c.byID[p.ID] = i
		c.byCategory[p.CategoryID] = append(c.byCategory[p.CategoryID], i)
		for _, q := range p.Questions {
			c.byQuestion[q.ID] = i
		}
	}
	for i, v := range c.vocab {
		c.vocabByID[v.ID] = i
	}
	return c
}

// Categories returns the genres in display order.
func (c *Catalog) Categories() []Category {
	return slices.Clone(c.categories)
}

// Category returns the genre with the given id.
func (c *Catalog) Category(id string) (Category, bool) {
	i := slices.IndexFunc(c.categories, func(cat Category) bool { return cat.ID == id })
	if i < 0 {
		return Category{}, false
	}
	return c.categories[i], true
}

// Passages returns every passage in bank order.
func (c *Catalog) Passages() []QuizPassage {
	out := make([]QuizPassage, len(c.passages))
	for i, p := range c.passages {
		out[i] = clonePassage(p)
	}
	return out
}

// QuizzesByCategory returns the passages of one genre in bank order.
func (c *Catalog) QuizzesByCategory(categoryID string) []QuizPassage {
	idx := c.byCategory[categoryID]
	out := make([]QuizPassage, len(idx))
	for i, j := range idx {
		out[i] = clonePassage(c.passages[j])
	}
	return out
}

// QuizByID returns the passage with the given id.
func (c *Catalog) QuizByID(id string) (QuizPassage, bool) {
	i, ok := c.byID[id]
	if !ok {
		return QuizPassage{}, false
	}
	return clonePassage(c.passages[i]), true
}

// QuestionByID returns a question along with the passage it belongs to.
func (c *Catalog) QuestionByID(id string) (QuizPassage, Question, bool) {
	i, ok := c.byQuestion[id]
	if !ok {
		return QuizPassage{}, Question{}, false
	}
	p := c.passages[i]
	for _, q := range p.Questions {
		if q.ID == id {
			return clonePassage(p), q, true
		}
	}
	return QuizPassage{}, Question{}, false
}

// VocabItems returns the vocabulary drill items in bank order.
func (c *Catalog) VocabItems() []VocabItem {
	return slices.Clone(c.vocab)
}

// VocabByID returns the vocab item with the given id.
func (c *Catalog) VocabByID(id string) (VocabItem, bool) {
	i, ok := c.vocabByID[id]
	if !ok {
		return VocabItem{}, false
	}
	return c.vocab[i], true
}

// QuestionCount returns the number of questions in a genre.
func (c *Catalog) QuestionCount(categoryID string) int {
	n := 0
	for _, i := range c.byCategory[categoryID] {
		n += len(c.passages[i].Questions)
	}
	return n
}

func clonePassage(p QuizPassage) QuizPassage {
	p.Questions = slices.Clone(p.Questions)
	return p
}
