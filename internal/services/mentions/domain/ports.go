package domain

import (
	"context"

	"wtwm/internal/core/recognizer"
)

// RunnerPort recognizes mentions across a batch of comments
type RunnerPort interface {
	// Run processes items concurrently and returns one Result per item in
	// input order. Item failures are reported in their Result and never
	// abort the batch; the error is only set when ctx ends early
	Run(ctx context.Context, items []Item) ([]Result, Stats, error)

	// RunOne recognizes a single item
	RunOne(ctx context.Context, it Item) ([]recognizer.Record, error)
}

// ReloaderPort re-reads the vocabulary and swaps the live automaton
type ReloaderPort interface {
	// Reload returns the number of patterns now in use. On error the
	// previous automaton stays in place
	Reload(ctx context.Context) (int, error)

	// Path is the vocabulary file being served, empty for the built-in one
	Path() string
}

// Ports are optional dependencies injected into the mentions module
type Ports struct {
	// Recognizer replaces the configured one, e.g. a client for a model
	// served elsewhere
	Recognizer recognizer.Recognizer
}
