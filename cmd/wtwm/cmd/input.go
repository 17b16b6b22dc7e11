package cmd

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"

	"wtwm/internal/platform/logger"
	dom "wtwm/internal/services/mentions/domain"
)

const maxLine = 4 * 1024 * 1024

// reader yields input comments in batches. JSON lines carry {"id","text"};
// in plain mode every line is a comment and its line number is the id
type reader struct {
	sc    *bufio.Scanner
	plain bool
	line  int
}

func newReader(r io.Reader, plain bool) *reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &reader{sc: sc, plain: plain}
}

// next returns up to n items; an empty batch with a nil error means EOF
func (r *reader) next(n int) ([]dom.Item, error) {
	log := logger.Named("input")
	out := make([]dom.Item, 0, n)
	for len(out) < n && r.sc.Scan() {
		r.line++
		raw := r.sc.Bytes()
		if r.plain {
			out = append(out, dom.Item{SourceID: strconv.Itoa(r.line), Text: string(raw)})
			continue
		}
		if len(raw) == 0 {
			continue
		}
		var it dom.Item
		if err := json.Unmarshal(raw, &it); err != nil {
			log.Warn().Err(err).Int("line", r.line).Msg("skipping malformed line")
			continue
		}
		out = append(out, it)
	}
	return out, r.sc.Err()
}
