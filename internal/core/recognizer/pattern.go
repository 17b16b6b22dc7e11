package recognizer

import (
	"sync/atomic"

	"wtwm/internal/core/matcher"
	"wtwm/internal/core/normalize"
	"wtwm/internal/core/resolver"
	"wtwm/internal/core/vocab"
)

// Handle publishes the current automaton. Readers Load a snapshot and keep
// using it for the whole scan; Rebuild swaps in a new one atomically
type Handle struct {
	cur atomic.Pointer[matcher.Automaton]
}

// NewHandle builds an automaton from v and wraps it
func NewHandle(v vocab.Vocabulary) *Handle {
	h := &Handle{}
	h.cur.Store(matcher.Build(v))
	return h
}

// Load returns the current automaton
func (h *Handle) Load() *matcher.Automaton { return h.cur.Load() }

// Swap installs a and returns the previous automaton
func (h *Handle) Swap(a *matcher.Automaton) *matcher.Automaton { return h.cur.Swap(a) }

// Rebuild compiles v, installs it and returns the previous automaton
func (h *Handle) Rebuild(v vocab.Vocabulary) *matcher.Automaton {
	return h.Swap(matcher.Build(v))
}

// FindMentions folds text, scans it with a and resolves the hits. Mentions
// without a category get defaultLabel. Blank text fails with a
// *PreprocessingError carrying sourceID
func FindMentions(a *matcher.Automaton, text, sourceID, defaultLabel string) ([]resolver.Mention, error) {
	if err := checkText(text, sourceID); err != nil {
		return nil, err
	}
	folded := normalize.Fold(text)
	ms := resolver.Resolve(a.Scan(folded), folded)
	return labelled(ms, defaultLabel), nil
}

func labelled(ms []resolver.Mention, def string) []resolver.Mention {
	if def == "" {
		def = vocab.DefaultCategory
	}
	for i := range ms {
		if ms[i].Label == "" {
			ms[i].Label = def
		}
	}
	return ms
}

// Pattern recognizes vocabulary mentions through a Handle
type Pattern struct {
	h     *Handle
	label string
}

// NewPattern returns a pattern recognizer reading the automaton from h
func NewPattern(h *Handle, defaultLabel string) *Pattern {
	return &Pattern{h: h, label: defaultLabel}
}

// Kind implements Recognizer
func (p *Pattern) Kind() Kind { return KindPattern }

// Recognize implements Recognizer
func (p *Pattern) Recognize(text, sourceID string) ([]resolver.Mention, error) {
	return FindMentions(p.h.Load(), text, sourceID, p.label)
}
