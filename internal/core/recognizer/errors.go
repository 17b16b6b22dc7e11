package recognizer

import (
	stderrs "errors"

	"wtwm/internal/core/normalize"
	perr "wtwm/internal/platform/errors"
)

// PreprocessingError marks an input that cannot be recognized. It is
// scoped to one item; batch callers skip it and continue
type PreprocessingError struct {
	SourceID string
	Reason   string
}

func (e *PreprocessingError) Error() string {
	return "preprocessing " + e.SourceID + ": " + e.Reason
}

// Unwrap exposes the error as a perr preprocessing error so perr.CodeOf
// classifies it
func (e *PreprocessingError) Unwrap() error {
	return perr.WithField(perr.New(perr.ErrorCodePreprocessing, e.Reason), "text")
}

// IsPreprocessing reports whether err is or wraps a *PreprocessingError
func IsPreprocessing(err error) bool {
	_, ok := AsPreprocessing(err)
	return ok
}

// AsPreprocessing returns the wrapped *PreprocessingError if any
func AsPreprocessing(err error) (*PreprocessingError, bool) {
	var pe *PreprocessingError
	if stderrs.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

const reasonEmpty = "text is empty"

func checkText(text, sourceID string) error {
	if normalize.IsBlank(text) {
		return &PreprocessingError{SourceID: sourceID, Reason: reasonEmpty}
	}
	return nil
}
