package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"wtwm/internal/core/recognizer"
	perr "wtwm/internal/platform/errors"
	dom "wtwm/internal/services/mentions/domain"

	"github.com/fatih/color"
)

// printer writes batch results in one output format
type printer interface {
	print(results []dom.Result) error
}

func newPrinter(format string, w io.Writer, skipped bool) printer {
	if format == "text" {
		return newTextPrinter(w)
	}
	return &jsonPrinter{enc: json.NewEncoder(w), skipped: skipped}
}

// skippedLine is written for comments that produced no records because of an error
type skippedLine struct {
	SourceID string    `json:"comment_id"`
	Error    perr.Wire `json:"error"`
}

// jsonPrinter writes one record per line, optionally with a line per skipped comment
type jsonPrinter struct {
	enc     *json.Encoder
	skipped bool
}

func (p *jsonPrinter) print(results []dom.Result) error {
	for _, r := range results {
		if r.Err != nil {
			if !p.skipped {
				continue
			}
			if err := p.enc.Encode(skippedLine{SourceID: r.SourceID, Error: perr.WireFrom(r.Err)}); err != nil {
				return err
			}
			continue
		}
		for _, rec := range r.Records {
			if err := p.enc.Encode(rec); err != nil {
				return err
			}
		}
	}
	return nil
}

// textPrinter renders a colored line per mention and per skipped comment
type textPrinter struct {
	w      io.Writer
	colors map[string]*color.Color
}

func newTextPrinter(w io.Writer) *textPrinter {
	return &textPrinter{
		w: w,
		colors: map[string]*color.Color{
			"id":    color.New(color.FgCyan),
			"span":  color.New(color.FgBlue),
			"body":  color.New(color.FgWhite, color.Bold),
			"label": color.New(color.FgMagenta),
			"kind":  color.New(color.FgGreen),
			"skip":  color.New(color.FgYellow),
		},
	}
}

func (p *textPrinter) print(results []dom.Result) error {
	for _, r := range results {
		if r.Err != nil {
			if _, err := fmt.Fprintf(p.w, "%s  %s %s\n",
				p.colors["id"].Sprint(r.SourceID),
				p.colors["skip"].Sprint("skipped:"),
				r.Err); err != nil {
				return err
			}
			continue
		}
		for _, rec := range r.Records {
			if err := p.record(rec); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *textPrinter) record(rec recognizer.Record) error {
	_, err := fmt.Fprintf(p.w, "%s  %s  %s  [%s]  %s\n",
		p.colors["id"].Sprint(rec.SourceID),
		p.colors["span"].Sprintf("%d:%d", rec.Start, rec.End()),
		p.colors["body"].Sprint(rec.Body),
		p.colors["label"].Sprint(rec.Label),
		p.colors["kind"].Sprint(rec.ExtractedFrom),
	)
	return err
}
