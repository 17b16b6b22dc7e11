package resolver

import (
	"reflect"
	"testing"

	"wtwm/internal/core/matcher"
	"wtwm/internal/core/vocab"
)

func hit(start, end int, pattern string) matcher.RawHit {
	return matcher.RawHit{Start: start, End: end, Pattern: pattern, Category: vocab.DefaultCategory}
}

func TestLeftmostLongest(t *testing.T) {
	tests := []struct {
		name string
		in   []matcher.RawHit
		want []matcher.RawHit
	}{
		{name: "empty", in: nil, want: nil},
		{
			name: "longest per start",
			in:   []matcher.RawHit{hit(4, 7, "mdr"), hit(4, 14, "mdraktuell")},
			want: []matcher.RawHit{hit(4, 14, "mdraktuell")},
		},
		{
			name: "sorted by start",
			in:   []matcher.RawHit{hit(9, 12, "ccc"), hit(0, 3, "aaa"), hit(5, 8, "bbb")},
			want: []matcher.RawHit{hit(0, 3, "aaa"), hit(5, 8, "bbb"), hit(9, 12, "ccc")},
		},
		{
			name: "tie keeps later input",
			in: []matcher.RawHit{
				{Start: 0, End: 3, Pattern: "mdr", Category: "broadcaster"},
				{Start: 0, End: 3, Pattern: "mdr", Category: "unspecified"},
			},
			want: []matcher.RawHit{{Start: 0, End: 3, Pattern: "mdr", Category: "unspecified"}},
		},
		{
			name: "shorter after longer is dropped",
			in:   []matcher.RawHit{hit(0, 5, "abcde"), hit(0, 2, "ab")},
			want: []matcher.RawHit{hit(0, 5, "abcde")},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := LeftmostLongest(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("LeftmostLongest = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLeftmostLongest_DoesNotMutateInput(t *testing.T) {
	in := []matcher.RawHit{hit(5, 8, "bbb"), hit(0, 3, "aaa")}
	_ = LeftmostLongest(in)
	if in[0].Start != 5 {
		t.Fatalf("input reordered: %v", in)
	}
}

func TestPruneOverlaps(t *testing.T) {
	tests := []struct {
		name string
		in   []matcher.RawHit
		want []matcher.RawHit
	}{
		{
			name: "contained",
			in:   []matcher.RawHit{hit(0, 14, "sachsenspiegel"), hit(7, 14, "spiegel")},
			want: []matcher.RawHit{hit(0, 14, "sachsenspiegel")},
		},
		{
			name: "overlapping tail",
			in:   []matcher.RawHit{hit(0, 6, "fernse"), hit(4, 10, "sehsess")},
			want: []matcher.RawHit{hit(0, 6, "fernse")},
		},
		{
			name: "adjacent kept",
			in:   []matcher.RawHit{hit(0, 3, "mdr"), hit(3, 6, "mdr")},
			want: []matcher.RawHit{hit(0, 3, "mdr"), hit(3, 6, "mdr")},
		},
		{
			name: "disjoint kept",
			in:   []matcher.RawHit{hit(0, 3, "mdr"), hit(10, 13, "mdr")},
			want: []matcher.RawHit{hit(0, 3, "mdr"), hit(10, 13, "mdr")},
		},
		{
			// c only overlaps b, which a already removed; b still counts
			name: "checked against discarded candidates",
			in:   []matcher.RawHit{hit(0, 5, "aaaaa"), hit(3, 8, "bbbbb"), hit(6, 9, "ccc")},
			want: []matcher.RawHit{hit(0, 5, "aaaaa")},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PruneOverlaps(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("PruneOverlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterWordStarts(t *testing.T) {
	tests := []struct {
		name string
		in   []matcher.RawHit
		text string
		want []matcher.RawHit
	}{
		{
			name: "mid word dropped",
			in:   []matcher.RawHit{hit(1, 3, "br")},
			text: "abraham sagt etwas",
			want: []matcher.RawHit{},
		},
		{
			name: "prefix of a word kept",
			in:   []matcher.RawHit{hit(0, 2, "br")},
			text: "brauchen wir das",
			want: []matcher.RawHit{hit(0, 2, "br")},
		},
		{
			// the prefix may come from any word, not the one the hit sits in
			name: "prefix elsewhere in text",
			in:   []matcher.RawHit{hit(3, 6, "mdr")},
			text: "beimdr und mdrxyz",
			want: []matcher.RawHit{hit(3, 6, "mdr")},
		},
		{
			name: "multi word pattern uses first token",
			in:   []matcher.RawHit{hit(4, 15, "mdr aktuell")},
			text: "die mdr aktuell sendung",
			want: []matcher.RawHit{hit(4, 15, "mdr aktuell")},
		},
		{
			name: "matching words do not duplicate hits",
			in:   []matcher.RawHit{hit(0, 3, "mdr"), hit(4, 7, "mdr")},
			text: "mdr mdr mdr",
			want: []matcher.RawHit{hit(0, 3, "mdr"), hit(4, 7, "mdr")},
		},
		{
			name: "punctuation trails the word",
			in:   []matcher.RawHit{hit(20, 23, "mdr")},
			text: "liebe redaktion des mdr, danke",
			want: []matcher.RawHit{hit(20, 23, "mdr")},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FilterWordStarts(tc.in, tc.text); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("FilterWordStarts = %v, want %v", got, tc.want)
			}
		})
	}
}

func resolveWith(texts []string, text string) []Mention {
	a := matcher.Build(vocab.FromTexts("", texts...))
	return Resolve(a.Scan(text), text)
}

func TestResolve_LeftmostLongest(t *testing.T) {
	got := resolveWith([]string{"mdr", "mdraktuell"}, "die mdraktuell sendung")
	want := []Mention{{Start: 4, Offset: 10, Body: "mdraktuell", Label: "unspecified"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Resolve = %v, want %v", got, want)
	}
}

func TestResolve_WordStartContrast(t *testing.T) {
	// two letter patterns never reach the matcher, so the hits are fed in directly
	if got := Resolve([]matcher.RawHit{hit(1, 3, "br")}, "abraham sagt etwas"); len(got) != 0 {
		t.Fatalf("mid word hit survived: %v", got)
	}
	got := Resolve([]matcher.RawHit{hit(0, 2, "br")}, "brauchen wir das")
	want := []Mention{{Start: 0, Offset: 2, Body: "br", Label: "unspecified"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Resolve = %v, want %v", got, want)
	}
}

func TestResolve_CodePointOffsets(t *testing.T) {
	text := "grüße an den mdr und jörg müller"
	got := resolveWith([]string{"mdr", "müller"}, text)
	want := []Mention{
		{Start: 13, Offset: 3, Body: "mdr", Label: "unspecified"},
		{Start: 26, Offset: 6, Body: "müller", Label: "unspecified"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Resolve = %v, want %v", got, want)
	}
	runes := []rune(text)
	for _, m := range got {
		if s := string(runes[m.Start:m.End()]); s != m.Body {
			t.Fatalf("span %d:%d = %q, want %q", m.Start, m.End(), s, m.Body)
		}
	}
}

func TestResolve_EmptyIsNonNil(t *testing.T) {
	got := Resolve(nil, "nichts")
	if got == nil || len(got) != 0 {
		t.Fatalf("Resolve(nil) = %#v", got)
	}
}

func TestResolve_NonOverlapping(t *testing.T) {
	texts := []string{"mdr", "mdraktuell", "aktuell", "ell", "sachsen", "sachsenspiegel", "spiegel", "lll"}
	inputs := []string{
		"mdraktuell sachsenspiegel aktuell",
		"mdrmdr mdraktuellaktuell",
		"llllll ell mdr",
		"sachsen spiegel sachsenspiegel",
	}
	for _, text := range inputs {
		got := resolveWith(texts, text)
		for i := range got {
			for j := range got {
				if i == j {
					continue
				}
				a, b := got[i], got[j]
				if !(a.End() <= b.Start || b.End() <= a.Start) {
					t.Fatalf("%q: overlap %+v %+v", text, a, b)
				}
			}
			if i > 0 && got[i-1].Start >= got[i].Start {
				t.Fatalf("%q: not sorted: %v", text, got)
			}
		}
	}
}
