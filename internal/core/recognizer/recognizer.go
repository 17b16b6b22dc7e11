// Package recognizer turns comment text into mention records.
//
// Every variant satisfies Recognizer and returns resolver.Mention values,
// so callers switch between the pattern automaton, the regex baseline or
// an external model without changing how results are handled. The package
// never logs; a *PreprocessingError tells the caller to skip one input
package recognizer

import (
	"wtwm/internal/core/resolver"
)

// Kind tags which recognizer produced a record
type Kind string

const (
	// KindPattern is the Aho-Corasick vocabulary recognizer
	KindPattern Kind = "pattern_recogniser_v1"
	// KindRegex is the regular expression baseline
	KindRegex Kind = "pattern_baseline"
	// KindModel is an externally hosted statistical model
	KindModel Kind = "bugg_model_v1"
)

// Kinds lists every known kind
var Kinds = []Kind{KindPattern, KindRegex, KindModel}

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k Kind) String() string { return string(k) }

// Recognizer finds mentions in one text
type Recognizer interface {
	Kind() Kind
	Recognize(text, sourceID string) ([]resolver.Mention, error)
}

// Input is one unit of recognition work
type Input struct {
	Text     string `json:"text"`
	SourceID string `json:"id" validate:"notblank"`
}

// Func adapts a function, typically a client for a model served elsewhere,
// to Recognizer. Blank text is rejected before fn is called
type Func struct {
	K  Kind
	Fn func(text, sourceID string) ([]resolver.Mention, error)
}

// Kind implements Recognizer
func (f Func) Kind() Kind { return f.K }

// Recognize implements Recognizer
func (f Func) Recognize(text, sourceID string) ([]resolver.Mention, error) {
	if err := checkText(text, sourceID); err != nil {
		return nil, err
	}
	return f.Fn(text, sourceID)
}
