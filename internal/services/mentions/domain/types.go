// Package domain defines the core types and interfaces for the mentions service
package domain

import (
	"wtwm/internal/core/recognizer"
)

// Item is one comment to recognize
type Item = recognizer.Input

// Result is the outcome for one Item, in input order. Exactly one of
// Records and Err is meaningful; a skipped item carries Err
type Result struct {
	SourceID string
	Records  []recognizer.Record
	Err      error
}

// Skipped reports whether the item produced no records because it failed
func (r Result) Skipped() bool { return r.Err != nil }

// Stats summarizes one batch
type Stats struct {
	BatchID  string `json:"batch_id"`
	Items    int    `json:"items"`
	Mentions int    `json:"mentions"`
	Skipped  int    `json:"skipped"`
}
