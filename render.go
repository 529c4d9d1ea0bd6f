package slides

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"pkt.systems/slides/internal/palette"
)

const (
	defaultWidth = 80
	minWidth     = 20
	ruleRune     = "─"
	bullet       = "•"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []RenderOption
}

// Render reads a presentation source and writes an ANSI preview of its
// slides. Slides before a parse error are written; the error is returned.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	src, err := ReadSource(req.Reader)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return RenderSlides(req.Writer, src.Slides(), req.Width, req.Theme, req.Options...)
}

// RenderSlides writes an ANSI preview of every slide in seq.
func RenderSlides(w io.Writer, seq iter.Seq2[Slide, error], width int, theme Theme, opts ...RenderOption) error {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	if width <= 0 {
		width = defaultWidth
	}
	if width < minWidth {
		width = minWidth
	}
	p := &previewer{
		w:      bufio.NewWriter(w),
		width:  width,
		styles: theme.Styles(),
		cfg:    cfg,
	}
	n := 0
	for slide, err := range seq {
		if err != nil {
			_ = p.w.Flush()
			return fmt.Errorf("render: %w", err)
		}
		n++
		p.slide(n, slide)
	}
	if err := p.w.Flush(); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}

type previewer struct {
	w      *bufio.Writer
	width  int
	styles Styles
	cfg    renderConfig
}

func (p *previewer) paint(s Style, text string) string {
	if s.Prefix == "" || text == "" {
		return text
	}
	return s.Prefix + text + palette.Reset
}

func (p *previewer) slide(n int, s Slide) {
	label := s.Kind
	if p.cfg.numbers {
		label = strconv.Itoa(n) + " · " + label
	}
	label = truncate.StringWithTail(label, uint(p.width-4), "…")
	fill := p.width - 4 - ansi.PrintableRuneWidth(label)
	if fill < 0 {
		fill = 0
	}
	p.w.WriteString(p.paint(p.styles.Rule, ruleRune+ruleRune) + " ")
	p.w.WriteString(p.paint(p.styles.Kind, label) + " ")
	p.w.WriteString(p.paint(p.styles.Rule, strings.Repeat(ruleRune, fill)))
	p.w.WriteByte('\n')
	for _, c := range s.Contents {
		p.content(c)
	}
	p.w.WriteByte('\n')
}

func (p *previewer) content(c Content) {
	switch c := c.(type) {
	case Text:
		for _, line := range strings.Split(wordwrap.String(c.Value, p.width), "\n") {
			p.w.WriteString(p.paint(p.styles.Text, line))
			p.w.WriteByte('\n')
		}
	case List:
		for _, e := range c.Entries {
			p.listEntry(e)
		}
	case Image:
		p.w.WriteString(p.paint(p.styles.Image, "[image]"))
		if c.Description != "" {
			p.w.WriteString(" " + p.paint(p.styles.Text, c.Description))
		}
		p.w.WriteString(" -> " + p.link(c.Path))
		p.w.WriteByte('\n')
	case ConfigDirective:
		p.w.WriteString(p.paint(p.styles.Directive, "(style ") + p.link(c.Path) + p.paint(p.styles.Directive, ")"))
		p.w.WriteByte('\n')
	}
}

// listEntry indents two columns per nesting step plus the source depth and
// hangs continuation lines under the first word.
func (p *previewer) listEntry(e ListEntry) {
	pad := 2 + int(e.Depth)
	if limit := p.width / 2; pad > limit {
		pad = limit
	}
	textWidth := p.width - pad - 2
	lines := strings.Split(wordwrap.String(e.Text, textWidth), "\n")
	p.w.WriteString(strings.Repeat(" ", pad) + p.paint(p.styles.ListMarker, bullet) + " ")
	p.w.WriteString(p.paint(p.styles.Text, lines[0]))
	p.w.WriteByte('\n')
	if len(lines) == 1 {
		return
	}
	for i, line := range lines[1:] {
		lines[i+1] = p.paint(p.styles.Text, line)
	}
	p.w.WriteString(indent.String(strings.Join(lines[1:], "\n"), uint(pad+2)))
	p.w.WriteByte('\n')
}

func (p *previewer) link(path string) string {
	text := p.paint(p.styles.Path, path)
	if !p.cfg.osc8 {
		return text
	}
	return hyperlink(linkURL(p.cfg.baseDir, path), text)
}
