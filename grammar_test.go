package slides

import (
	"reflect"
	"testing"
)

func TestParseAll(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []Slide
	}{
		{
			name: "hello world",
			src:  "---Title\nHello World\n",
			want: []Slide{{Kind: "Title", Contents: []Content{Text{Value: "Hello World"}}}},
		},
		{
			name: "image without closing bracket",
			src:  "---Title\n[a cat \"cat.png\"",
			want: []Slide{{Kind: "Title", Contents: []Content{Image{Description: "a cat", Path: "cat.png"}}}},
		},
		{
			name: "image with closing bracket",
			src:  "---Title\n[a cat] \"cat.png\"\n",
			want: []Slide{{Kind: "Title", Contents: []Content{Image{Description: "a cat", Path: "cat.png"}}}},
		},
		{
			name: "consecutive lines join with a space",
			src:  "---Title\nline one\nline two\nline three\n",
			want: []Slide{{Kind: "Title", Contents: []Content{Text{Value: "line one line two line three"}}}},
		},
		{
			name: "blank line separates contents",
			src:  "---Two_Hor\nleft\n\n\nright",
			want: []Slide{{Kind: "Two_Hor", Contents: []Content{Text{Value: "left"}, Text{Value: "right"}}}},
		},
		{
			name: "list depth",
			src:  "---Head_Cont\n- a\n  - b\n",
			want: []Slide{{Kind: "Head_Cont", Contents: []Content{
				List{Entries: []ListEntry{{Depth: 0, Text: "a"}, {Depth: 2, Text: "b"}}},
			}}},
		},
		{
			name: "list entry continuation and trailing text",
			src:  "---Head_Cont\n- a\n  continued\n- b\n\nafter\n",
			want: []Slide{{Kind: "Head_Cont", Contents: []Content{
				List{Entries: []ListEntry{{Depth: 0, Text: "a continued"}, {Depth: 0, Text: "b"}}},
				Text{Value: "after"},
			}}},
		},
		{
			name: "blank line ends a list",
			src:  "---A\n- a\n\n- b\n",
			want: []Slide{{Kind: "A", Contents: []Content{
				List{Entries: []ListEntry{{Depth: 0, Text: "a"}}},
				List{Entries: []ListEntry{{Depth: 0, Text: "b"}}},
			}}},
		},
		{
			name: "blank lines split a list across areas",
			src:  "---Two_Hor\n- a\n  - a1\n\n\n* b\n* c",
			want: []Slide{{Kind: "Two_Hor", Contents: []Content{
				List{Entries: []ListEntry{{Depth: 0, Text: "a"}, {Depth: 2, Text: "a1"}}},
				List{Entries: []ListEntry{{Depth: 0, Text: "b"}, {Depth: 0, Text: "c"}}},
			}}},
		},
		{
			name: "bare path is a config directive",
			src:  "---Style\n\"dark.yaml\"\n",
			want: []Slide{{Kind: "Style", Contents: []Content{ConfigDirective{Path: "dark.yaml"}}}},
		},
		{
			name: "path after text stays separate",
			src:  "---Title\nHello\n\"x.yaml\"\n",
			want: []Slide{{Kind: "Title", Contents: []Content{Text{Value: "Hello"}, ConfigDirective{Path: "x.yaml"}}}},
		},
		{
			name: "empty slides",
			src:  "---A\n---B\n\n---C",
			want: []Slide{{Kind: "A"}, {Kind: "B"}, {Kind: "C"}},
		},
		{
			name: "leading blank lines and comments",
			src:  "\n\n; speaker notes\n---Title\nHi ; not a comment\n; comment line\n",
			want: []Slide{{Kind: "Title", Contents: []Content{Text{Value: "Hi ; not a comment"}}}},
		},
		{
			name: "empty source",
			src:  "",
			want: nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAll(tc.src)
			if err != nil {
				t.Fatalf("ParseAll: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseAll(%q)\n got %#v\nwant %#v", tc.src, got, tc.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		slides   int
		line     int
		expected string
		actual   string
	}{
		{name: "unterminated path", src: "---Title\n\"foo\n", slides: 0, line: 2, expected: "end of input", actual: "invalid token"},
		{name: "after good slide", src: "---A\nok\n\n---B\n\"foo", slides: 1, line: 5, expected: "end of input", actual: "invalid token"},
		{name: "missing marker", src: "hello\n---A\n", slides: 0, line: 1, expected: "identifier", actual: `text "hello"`},
		{name: "stray bracket", src: "---A\n]\n", slides: 0, line: 2, expected: "end of input", actual: "']'"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAll(tc.src)
			if len(got) != tc.slides {
				t.Fatalf("got %d slides before the error, want %d", len(got), tc.slides)
			}
			perr, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("expected *ParseError, got %T (%v)", err, err)
			}
			if perr.Line != tc.line || perr.Expected != tc.expected || perr.Actual != tc.actual {
				t.Fatalf("unexpected error %+v", perr)
			}
		})
	}
}

func TestConfigBeatsText(t *testing.T) {
	for _, src := range []string{"---S\n\"a b c\"\n", "---S\n   \"a\"   ; note\n"} {
		got, err := ParseAll(src)
		if err != nil {
			t.Fatalf("ParseAll(%q): %v", src, err)
		}
		if len(got) != 1 || len(got[0].Contents) != 1 {
			t.Fatalf("unexpected slides %#v", got)
		}
		if _, ok := got[0].Contents[0].(ConfigDirective); !ok {
			t.Fatalf("%q decoded to %T, want ConfigDirective", src, got[0].Contents[0])
		}
	}
}

func TestCollapseLinefeeds(t *testing.T) {
	lf := Token{Kind: TokenLinefeed}
	id := Token{Kind: TokenIdentifier, Text: "A"}
	got := collapseLinefeeds([]Token{lf, lf, id, lf, lf, lf, id, lf})
	want := []Token{id, lf, id, lf}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("collapse = %v, want %v", got, want)
	}
	if got := collapseLinefeeds(nil); len(got) != 0 {
		t.Fatalf("collapse(nil) = %v", got)
	}
}
