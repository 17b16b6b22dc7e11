package module

import (
	"wtwm/internal/core/recognizer"
	"wtwm/internal/core/vocab"
	"wtwm/internal/platform/config"
)

// DefaultBaselinePath is where the regex baseline is read from unless configured
const DefaultBaselinePath = "model/baseline_regex_collection.txt"

// Options holds configuration settings for the mentions module
type Options struct {
	Kind         string `json:"kind" validate:"omitempty,oneof=pattern_recogniser_v1 pattern_baseline bugg_model_v1"`
	VocabPath    string `json:"vocab_path"`
	BaselinePath string `json:"baseline_path"`
	DefaultLabel string `json:"default_label"`
	Workers      int    `json:"workers" validate:"min=0,max=256"`
	Watch        bool   `json:"watch"`
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	rc := cfg.Prefix("CORE_RECOGNIZE_")
	return Options{
		Kind: rc.MayEnum("KIND", string(recognizer.KindPattern),
			string(recognizer.KindPattern), string(recognizer.KindRegex), string(recognizer.KindModel)),
		VocabPath:    rc.MayString("VOCAB_PATH", ""),
		BaselinePath: rc.MayString("BASELINE_PATH", DefaultBaselinePath),
		DefaultLabel: rc.MayString("DEFAULT_LABEL", vocab.DefaultCategory),
		Workers:      rc.MayInt("WORKERS", 2),
		Watch:        rc.MayBool("WATCH", false),
	}
}

// merge lays non-zero overrides over o
func (o Options) merge(over Options) Options {
	if over.Kind != "" {
		o.Kind = over.Kind
	}
	if over.VocabPath != "" {
		o.VocabPath = over.VocabPath
	}
	if over.BaselinePath != "" {
		o.BaselinePath = over.BaselinePath
	}
	if over.DefaultLabel != "" {
		o.DefaultLabel = over.DefaultLabel
	}
	if over.Workers != 0 {
		o.Workers = over.Workers
	}
	// bool override only turns watching on
	o.Watch = o.Watch || over.Watch
	return o
}
