package vocab

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"

	perr "wtwm/internal/platform/errors"
)

func TestDefault_DropsBR(t *testing.T) {
	v := Default()
	want := Vocabulary{{Text: "mdr", Category: DefaultCategory}}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("Default = %v, want %v", v, want)
	}
}

func TestParseText(t *testing.T) {
	in := strings.Join([]string{
		"# staff and broadcasters",
		"",
		"MDR",
		"   ",
		"  # indented comment",
		"Jan Kowalski\teditor",
		"mdr aktuell\t",
		"\tlonely category",
		"Sachsenspiegel\r",
	}, "\n")

	got, err := ParseText(strings.NewReader(in), "org")
	if err != nil {
		t.Fatal(err)
	}
	want := []Pattern{
		{Text: "MDR", Category: "org"},
		{Text: "Jan Kowalski", Category: "editor"},
		{Text: "mdr aktuell", Category: "org"},
		{Text: "Sachsenspiegel", Category: "org"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseText =\n%#v\nwant\n%#v", got, want)
	}
}

func TestParseYAML(t *testing.T) {
	in := `
category: staff
patterns:
  - MDR Aktuell
  - text: Jan Kowalski
    category: editor
  - text: ""
  - [not, a, pattern]
  - text: [bad]
  - Umschau
`
	got, err := ParseYAML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	want := []Pattern{
		{Text: "MDR Aktuell", Category: "staff"},
		{Text: "Jan Kowalski", Category: "editor"},
		{Text: "Umschau", Category: "staff"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseYAML =\n%#v\nwant\n%#v", got, want)
	}
}

func TestParseYAML_EmptyAndBroken(t *testing.T) {
	got, err := ParseYAML(strings.NewReader(""))
	if err != nil || len(got) != 0 {
		t.Fatalf("empty doc: %v %v", got, err)
	}
	_, err = ParseYAML(strings.NewReader("patterns: [unclosed"))
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "patterns.txt")
	if err := os.WriteFile(txt, []byte("MDR\nBR\nUmschau\teditorial\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	yml := filepath.Join(dir, "patterns.YML")
	if err := os.WriteFile(yml, []byte("patterns:\n  - text: MDR\n    category: org\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("patterns: {"), 0o644); err != nil {
		t.Fatal(err)
	}

	v, err := LoadFile(txt)
	if err != nil {
		t.Fatalf("LoadFile txt: %v", err)
	}
	want := Vocabulary{{Text: "mdr", Category: DefaultCategory}, {Text: "umschau", Category: "editorial"}}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("txt = %v, want %v", v, want)
	}

	v, err = LoadFile(yml)
	if err != nil {
		t.Fatalf("LoadFile yml: %v", err)
	}
	if !reflect.DeepEqual(v, Vocabulary{{Text: "mdr", Category: "org"}}) {
		t.Fatalf("yml = %v", v)
	}

	_, err = LoadFile(bad)
	e, ok := perr.As(err)
	if !ok || e.Code() != perr.ErrorCodeInvalidArgument || e.Op() != "vocab.LoadFile" {
		t.Fatalf("bad yaml: %v", err)
	}

	_, err = LoadFile(filepath.Join(dir, "missing.txt"))
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing: %v", err)
	}

	v, err = LoadFile("  ")
	if err != nil || !reflect.DeepEqual(v, Default()) {
		t.Fatalf("empty path: %v %v", v, err)
	}
}

func TestParseText_ReadErrorIsReturned(t *testing.T) {
	in := io.MultiReader(strings.NewReader("mdr\numschau\n"), iotest.ErrReader(errors.New("disk gone")))
	got, err := ParseText(in, "org")
	if err == nil || got != nil {
		t.Fatalf("ParseText = %v, %v; want nil and the read error", got, err)
	}
}

func TestLoadFile_OverlongLineFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.txt")
	body := "mdr\n" + strings.Repeat("x", maxLine+1) + "\numschau\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	v, err := LoadFile(path)
	if v != nil || !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("LoadFile = %v, %v; want invalid argument", v, err)
	}
}
