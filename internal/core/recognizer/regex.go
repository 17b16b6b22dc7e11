package recognizer

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"wtwm/internal/core/matcher"
	"wtwm/internal/core/normalize"
	"wtwm/internal/core/resolver"
	perr "wtwm/internal/platform/errors"
)

// Regex is the baseline recognizer: a list of expressions matched against
// folded text and resolved like automaton hits
type Regex struct {
	exprs []*regexp.Regexp
	label string
}

// NewRegex compiles exprs case-insensitively. Blank and invalid expressions
// are skipped
func NewRegex(exprs []string, defaultLabel string) *Regex {
	r := &Regex{label: defaultLabel}
	for _, e := range exprs {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + e)
		if err != nil {
			continue
		}
		r.exprs = append(r.exprs, re)
	}
	return r
}

// ParseRegexLines reads one expression per line, skipping blank lines and
// '#' comments
func ParseRegexLines(rd io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(rd)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadRegexFile builds a Regex from an expression file
func LoadRegexFile(path, defaultLabel string) (*Regex, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "baseline: %s", path)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "baseline: open %s", path)
	}
	defer f.Close()
	exprs, err := ParseRegexLines(f)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "baseline: read %s", path)
	}
	return NewRegex(exprs, defaultLabel), nil
}

// Len returns the number of compiled expressions
func (r *Regex) Len() int { return len(r.exprs) }

// Kind implements Recognizer
func (r *Regex) Kind() Kind { return KindRegex }

// Recognize implements Recognizer
func (r *Regex) Recognize(text, sourceID string) ([]resolver.Mention, error) {
	if err := checkText(text, sourceID); err != nil {
		return nil, err
	}
	folded := normalize.Fold(text)

	var hits []matcher.RawHit
	for _, re := range r.exprs {
		for _, loc := range re.FindAllStringIndex(folded, -1) {
			if loc[0] == loc[1] {
				continue
			}
			hits = append(hits, matcher.RawHit{
				Start:   loc[0],
				End:     loc[1],
				Pattern: folded[loc[0]:loc[1]],
			})
		}
	}
	return labelled(resolver.Resolve(hits, folded), r.label), nil
}
