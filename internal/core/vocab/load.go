package vocab

import (
	"bufio"
	_ "embed"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	perr "wtwm/internal/platform/errors"

	"gopkg.in/yaml.v3"
)

//go:embed patterns.txt
var embedded string

// maxLine bounds a single vocabulary line
const maxLine = 1024 * 1024

// Default returns the built-in vocabulary
func Default() Vocabulary {
	raw, _ := ParseText(strings.NewReader(embedded), DefaultCategory)
	return Build(raw)
}

// ParseText reads one pattern per line. Blank lines and lines starting with
// '#' are skipped. A tab separates an optional category from the pattern;
// lines without one get category. Read errors are returned, never partial input
func ParseText(r io.Reader, category string) ([]Pattern, error) {
	var out []Pattern
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		text, cat := line, category
		if i := strings.IndexByte(line, '\t'); i >= 0 {
			text, cat = line[:i], strings.TrimSpace(line[i+1:])
			if cat == "" {
				cat = category
			}
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		out = append(out, Pattern{Text: text, Category: cat})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type yamlDoc struct {
	Category string    `yaml:"category"`
	Patterns []yamlRow `yaml:"patterns"`
}

// yamlRow accepts either a bare string or a {text, category} mapping
type yamlRow struct {
	Pattern
	ok bool
}

func (r *yamlRow) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		r.Text, r.ok = n.Value, true
	case yaml.MappingNode:
		var p Pattern
		if err := n.Decode(&p); err != nil {
			return nil
		}
		r.Pattern, r.ok = p, true
	}
	return nil
}

// ParseYAML reads a structured vocabulary:
//
//	category: staff
//	patterns:
//	  - mdr aktuell
//	  - text: jan kowalski
//	    category: editor
//
// Rows that are neither strings nor mappings are skipped
func ParseYAML(r io.Reader) ([]Pattern, error) {
	var doc yamlDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "vocab: parse yaml")
	}
	out := make([]Pattern, 0, len(doc.Patterns))
	for _, row := range doc.Patterns {
		if !row.ok || strings.TrimSpace(row.Text) == "" {
			continue
		}
		p := row.Pattern
		if strings.TrimSpace(p.Category) == "" {
			p.Category = doc.Category
		}
		out = append(out, p)
	}
	return out, nil
}

// LoadFile reads a vocabulary file, choosing the format by extension.
// An empty path yields the built-in vocabulary
func LoadFile(path string) (Vocabulary, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "vocab: %s", path)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "vocab: open %s", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		raw, err := ParseYAML(f)
		if err != nil {
			return nil, perr.WithOp(err, "vocab.LoadFile")
		}
		return Build(raw), nil
	default:
		raw, err := ParseText(f, DefaultCategory)
		if err != nil {
			return nil, perr.WithOp(readErr(err, path), "vocab.LoadFile")
		}
		return Build(raw), nil
	}
}

func readErr(err error, path string) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "vocab: %s: line too long", path)
	}
	return perr.Wrapf(err, perr.ErrorCodeUnavailable, "vocab: read %s", path)
}
