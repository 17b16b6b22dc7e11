// Package matcher compiles a vocabulary into an Aho-Corasick automaton and
// reports every literal pattern occurrence in a text, overlapping and nested
// ones included. An Automaton never changes after Build and may be shared
// by any number of goroutines
package matcher

import (
	"wtwm/internal/core/vocab"
)

// RawHit is one pattern occurrence. Offsets are bytes into the scanned
// text and End is exclusive
type RawHit struct {
	Start    int
	End      int
	Pattern  string
	Category string
}

// Len returns the hit length in bytes
func (h RawHit) Len() int { return h.End - h.Start }

// Automaton is an immutable multi-pattern matcher
type Automaton struct {
	t     *trie
	vocab vocab.Vocabulary
}

// Build compiles v. Pattern ids are indexes into v, so a sorted vocabulary
// gives stable ids. An empty vocabulary yields an automaton that never matches
func Build(v vocab.Vocabulary) *Automaton {
	own := make(vocab.Vocabulary, len(v))
	copy(own, v)

	t := newTrie()
	for i, p := range own {
		t.insert(p.Text, int32(i))
	}
	t.link()
	return &Automaton{t: t, vocab: own}
}

// Len returns the number of patterns compiled in
func (a *Automaton) Len() int {
	if a == nil {
		return 0
	}
	return len(a.vocab)
}

// Patterns returns a copy of the compiled vocabulary
func (a *Automaton) Patterns() vocab.Vocabulary {
	if a == nil {
		return nil
	}
	out := make(vocab.Vocabulary, len(a.vocab))
	copy(out, a.vocab)
	return out
}

// Each reports occurrences in scan order (by end offset) until fn returns false
func (a *Automaton) Each(text string, fn func(RawHit) bool) {
	if a == nil || len(a.vocab) == 0 || text == "" {
		return
	}
	a.t.walk(text, func(end int, id int32) bool {
		p := a.vocab[id]
		return fn(RawHit{
			Start:    end - len(p.Text),
			End:      end,
			Pattern:  p.Text,
			Category: p.Category,
		})
	})
}

// Scan returns every occurrence of every pattern in text.
// text must already be folded the way the vocabulary was
func (a *Automaton) Scan(text string) []RawHit {
	var hits []RawHit
	a.Each(text, func(h RawHit) bool {
		hits = append(hits, h)
		return true
	})
	return hits
}

// Contains reports whether any pattern occurs in text, stopping at the first hit
func (a *Automaton) Contains(text string) bool {
	found := false
	a.Each(text, func(RawHit) bool {
		found = true
		return false
	})
	return found
}
