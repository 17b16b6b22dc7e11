// Package resolver reduces raw automaton hits to the final mention spans.
//
// Resolution runs three stages in a fixed order:
//
//  1. LeftmostLongest keeps one hit per start offset, the longest
//  2. PruneOverlaps drops hits starting inside another candidate
//  3. FilterWordStarts drops hits whose first token starts no word of the text
//
// The word filter is a prefix test: "br" survives in "brauchen wir das"
// because "brauchen" begins with "br". Tightening it to whole words
// changes which mentions are reported and must be done deliberately
package resolver

import (
	"sort"
	"strings"
	"unicode/utf8"

	"wtwm/internal/core/matcher"
)

// Mention is a resolved span. Start and Offset count code points in the
// folded text. Lower-casing can change the code point count (U+0130 İ becomes
// i plus a combining dot), so for such input the span indexes the folded text,
// not the submitted one; Body is always the folded match
type Mention struct {
	Start  int    `json:"start"`
	Offset int    `json:"offset"`
	Body   string `json:"body"`
	Label  string `json:"label"`
}

// End returns the exclusive end of the span in code points
func (m Mention) End() int { return m.Start + m.Offset }

// LeftmostLongest groups hits by start and keeps the one with the greatest
// end. On equal ends the hit appearing later in hits wins. The result is
// sorted by start
func LeftmostLongest(hits []matcher.RawHit) []matcher.RawHit {
	if len(hits) == 0 {
		return nil
	}
	sorted := make([]matcher.RawHit, len(hits))
	copy(sorted, hits)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	out := make([]matcher.RawHit, 0, len(sorted))
	for _, h := range sorted {
		if n := len(out); n > 0 && out[n-1].Start == h.Start {
			if h.End >= out[n-1].End {
				out[n-1] = h
			}
			continue
		}
		out = append(out, h)
	}
	return out
}

// PruneOverlaps drops every candidate that starts after another candidate
// and either lies inside it or begins before it ends. Each candidate is
// checked against the whole input, discarded ones included. Quadratic in
// len(cands), which stays small per comment
func PruneOverlaps(cands []matcher.RawHit) []matcher.RawHit {
	out := make([]matcher.RawHit, 0, len(cands))
	for i, a := range cands {
		keep := true
		for j, b := range cands {
			if i == j || a.Start <= b.Start {
				continue
			}
			if a.End <= b.End || a.Start < b.End {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, a)
		}
	}
	return out
}

// FilterWordStarts keeps candidates whose pattern's first space separated
// token is a prefix of at least one word of text. Words are split on
// single spaces. Order is preserved and each candidate appears at most once
func FilterWordStarts(cands []matcher.RawHit, text string) []matcher.RawHit {
	if len(cands) == 0 {
		return nil
	}
	words := strings.Split(text, " ")
	out := make([]matcher.RawHit, 0, len(cands))
	for _, c := range cands {
		token, _, _ := strings.Cut(c.Pattern, " ")
		for _, w := range words {
			if strings.HasPrefix(w, token) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Resolve runs the three stages over hits found in text and converts the
// survivors to mentions sorted by start
func Resolve(hits []matcher.RawHit, text string) []Mention {
	cands := FilterWordStarts(PruneOverlaps(LeftmostLongest(hits)), text)
	if len(cands) == 0 {
		return []Mention{}
	}

	out := make([]Mention, 0, len(cands))
	// cands are sorted by start so the rune count can be carried forward
	pos, runes := 0, 0
	for _, c := range cands {
		runes += utf8.RuneCountInString(text[pos:c.Start])
		pos = c.Start
		out = append(out, Mention{
			Start:  runes,
			Offset: utf8.RuneCountInString(c.Pattern),
			Body:   c.Pattern,
			Label:  c.Category,
		})
	}
	return out
}
