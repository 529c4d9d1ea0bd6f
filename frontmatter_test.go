package slides

import (
	"bytes"
	"strings"
	"testing"
)

func TestSplitFrontMatter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		src   string
		found bool
		meta  FrontMatter
		body  string
	}{
		{
			name:  "yaml",
			src:   "---\ntitle: Talk\nauthor: Ada\nstyle: dark.yaml\ntemplates:\n  - a.yaml\n  - b.yaml\n---\n---Title\nHi\n",
			found: true,
			meta:  FrontMatter{Title: "Talk", Author: "Ada", Style: "dark.yaml", Templates: []string{"a.yaml", "b.yaml"}},
			body:  strings.Repeat("\n", 8) + "---Title\nHi\n",
		},
		{
			name:  "dots close the block",
			src:   "---\ntitle: Talk\n...\n---A\n",
			found: true,
			meta:  FrontMatter{Title: "Talk"},
			body:  "\n\n\n---A\n",
		},
		{
			name:  "crlf and bom",
			src:   "\ufeff---\r\ntitle: Talk\r\n---\r\n---A\r\n",
			found: true,
			meta:  FrontMatter{Title: "Talk"},
			body:  "\n\n\n---A\r\n",
		},
		{
			name: "slide marker is not a delimiter",
			src:  "---Title\ntitle: nope\n---\n",
			body: "---Title\ntitle: nope\n---\n",
		},
		{
			name: "unterminated block",
			src:  "---\ntitle: Talk\n",
			body: "---\ntitle: Talk\n",
		},
		{
			name: "no front matter",
			src:  "---A\nbody\n",
			body: "---A\nbody\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			meta, body, found, err := SplitFrontMatter(tt.src)
			if err != nil {
				t.Fatalf("SplitFrontMatter: %v", err)
			}
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if body != tt.body {
				t.Fatalf("body = %q, want %q", body, tt.body)
			}
			if meta.Title != tt.meta.Title || meta.Author != tt.meta.Author || meta.Style != tt.meta.Style ||
				strings.Join(meta.Templates, ",") != strings.Join(tt.meta.Templates, ",") {
				t.Fatalf("meta = %+v, want %+v", meta, tt.meta)
			}
		})
	}
}

func TestSplitFrontMatterBadYAML(t *testing.T) {
	t.Parallel()
	_, _, _, err := SplitFrontMatter("---\ntitle: [unclosed\n---\n---A\n")
	if err == nil || !strings.Contains(err.Error(), "front matter") {
		t.Fatalf("expected front matter error, got %v", err)
	}
}

func TestFrontMatterKeepsLineNumbers(t *testing.T) {
	t.Parallel()
	src, err := NewSource([]byte("---\ntitle: Talk\n---\n---A\n\"broken\n"))
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	if !src.HasMeta || src.Meta.Title != "Talk" {
		t.Fatalf("unexpected meta %+v", src)
	}
	var lastErr error
	for _, err := range src.Slides() {
		lastErr = err
	}
	perr, ok := lastErr.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %v", lastErr)
	}
	if perr.Line != 5 {
		t.Fatalf("error line = %d, want 5", perr.Line)
	}
}

func TestRenderOmitsFrontMatter(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader: strings.NewReader("---\ntitle: Secret title\n---\n---Title\nVisible\n"),
		Writer: &out,
		Width:  60,
		Theme:  BoringTheme(),
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(out.String(), "Secret title") {
		t.Fatalf("front matter leaked into preview:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Visible") {
		t.Fatalf("missing slide text:\n%s", out.String())
	}
}

func TestNewSourceStripsByteOrderMark(t *testing.T) {
	t.Parallel()
	for _, data := range []string{
		"\ufeff---Title\nHello\n",
		"\ufeff---\ntitle: Talk\n---\n---Title\nHello\n",
	} {
		src, err := NewSource([]byte(data))
		if err != nil {
			t.Fatalf("NewSource(%q): %v", data, err)
		}
		got, err := ParseAll(src.Body)
		if err != nil {
			t.Fatalf("ParseAll(%q): %v", src.Body, err)
		}
		if len(got) != 1 || got[0].Kind != "Title" || len(got[0].Contents) != 1 ||
			got[0].Contents[0] != Content(Text{Value: "Hello"}) {
			t.Fatalf("unexpected slides %#v", got)
		}
	}
}
