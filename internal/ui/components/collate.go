package components

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// KoreanOrder returns a comparison function ordering strings the way a
// Korean dictionary does. The returned function is not safe for concurrent
// use.
func KoreanOrder() func(a, b string) int {
	c := collate.New(language.Korean)
	return c.CompareString
}
