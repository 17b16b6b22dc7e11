// Package normalize provides the case folding shared by vocabulary loading and recognition
// Patterns and comment text must pass through the same Fold so they compare byte for byte
package normalize

import (
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// a Caser carries state between calls so each goroutine takes its own
var lowerPool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

// Fold lower-cases s without locale tailoring
// Full case mapping is used rather than case folding so ß and similar runes survive unchanged
func Fold(s string) string {
	if s == "" {
		return ""
	}
	c := lowerPool.Get().(*cases.Caser)
	out := c.String(s)
	c.Reset()
	lowerPool.Put(c)
	return out
}

// Pattern folds a vocabulary entry and trims surrounding whitespace
func Pattern(s string) string {
	return strings.TrimSpace(Fold(s))
}

// IsBlank reports whether s is empty after trimming whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Len returns the length of s in code points
func Len(s string) int {
	return utf8.RuneCountInString(s)
}
