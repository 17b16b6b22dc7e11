// Package vocab builds the pattern vocabulary the matcher is compiled from.
// Entries are folded the same way comment text is folded, deduplicated on
// (text, category), and sorted so pattern ids are stable for a given input
package vocab

import (
	"sort"
	"strings"

	"wtwm/internal/core/normalize"
)

// DefaultCategory labels patterns loaded without a category
const DefaultCategory = "unspecified"

// MinLen is the shortest normalized pattern kept; shorter ones match too much noise
const MinLen = 3

// Pattern is one vocabulary entry
type Pattern struct {
	Text     string `json:"text" yaml:"text"`
	Category string `json:"category" yaml:"category"`
}

// Vocabulary is a normalized, deduplicated and sorted pattern set
type Vocabulary []Pattern

// Len returns the number of patterns
func (v Vocabulary) Len() int { return len(v) }

// Texts returns the pattern texts in vocabulary order
func (v Vocabulary) Texts() []string {
	out := make([]string, len(v))
	for i, p := range v {
		out[i] = p.Text
	}
	return out
}

// Normalize folds a raw pattern for matching: the same lower-casing applied to
// scanned text, plus trimming of leading and trailing whitespace so file
// columns and YAML scalars compare equal. Interior whitespace is kept
func Normalize(pattern string) string {
	return normalize.Pattern(pattern)
}

// Build normalizes raw, drops short entries and collapses duplicates
func Build(raw []Pattern) Vocabulary {
	seen := make(map[Pattern]struct{}, len(raw))
	out := make(Vocabulary, 0, len(raw))
	for _, p := range raw {
		text := Normalize(p.Text)
		if normalize.Len(text) < MinLen {
			continue
		}
		cat := strings.TrimSpace(p.Category)
		if cat == "" {
			cat = DefaultCategory
		}
		key := Pattern{Text: text, Category: cat}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}

	// deterministic ids for the matcher
	sort.Slice(out, func(i, j int) bool {
		if out[i].Text != out[j].Text {
			return out[i].Text < out[j].Text
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// FromTexts builds a vocabulary from bare pattern texts sharing one category
func FromTexts(category string, texts ...string) Vocabulary {
	raw := make([]Pattern, len(texts))
	for i, t := range texts {
		raw[i] = Pattern{Text: t, Category: category}
	}
	return Build(raw)
}
