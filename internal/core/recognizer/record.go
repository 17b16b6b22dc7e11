package recognizer

import (
	"wtwm/internal/core/resolver"

	"github.com/google/uuid"
)

// Record is a mention tagged for downstream storage
type Record struct {
	ID            string `json:"id"`
	SourceID      string `json:"comment_id"`
	ExtractedFrom Kind   `json:"extracted_from"`
	resolver.Mention
}

var newID = uuid.NewString

// Wrap tags each mention with a fresh id, its source and the recognizer kind
func Wrap(kind Kind, sourceID string, ms []resolver.Mention) []Record {
	out := make([]Record, len(ms))
	for i, m := range ms {
		out[i] = Record{
			ID:            newID(),
			SourceID:      sourceID,
			ExtractedFrom: kind,
			Mention:       m,
		}
	}
	return out
}

// Recognize runs r over text and wraps the result
func Recognize(r Recognizer, text, sourceID string) ([]Record, error) {
	ms, err := r.Recognize(text, sourceID)
	if err != nil {
		return nil, err
	}
	return Wrap(r.Kind(), sourceID, ms), nil
}

// Includes reports whether r finds at least one mention in text.
// Inputs that fail preprocessing include nothing
func Includes(r Recognizer, text, sourceID string) bool {
	ms, err := r.Recognize(text, sourceID)
	return err == nil && len(ms) > 0
}
