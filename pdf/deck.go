package pdf

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/jung-kurt/gofpdf"
	"pkt.systems/slides"
	"pkt.systems/slides/catalog"
)

const bulletText = "-"

// ErrMisplacedDirective is returned for a config directive on a slide that
// is not a Style slide.
var ErrMisplacedDirective = errors.New("config directive outside a Style slide")

type deck struct {
	pdf     *gofpdf.Fpdf
	cfg     Config
	cat     *catalog.Catalog
	baseDir string
	logger  *slog.Logger
	fonts   *fontSet
	layer   int
	page    catalog.Rect
}

// line is one wrapped output line inside an area.
type line struct {
	text   string
	indent float64
	bullet bool
}

func newDeck(cfg Config, cat *catalog.Catalog, baseDir string, logger *slog.Logger) *deck {
	pdf := newDocument(cfg)
	d := &deck{
		pdf:     pdf,
		cfg:     cfg,
		cat:     cat,
		baseDir: baseDir,
		logger:  logger,
		fonts:   newFontSet(pdf, baseDir),
		layer:   -1,
		page:    catalog.Rect{Size: catalog.Point{X: cfg.PageWidth, Y: cfg.PageHeight}},
	}
	if cfg.DecorationLayer {
		d.layer = pdf.AddLayer(decorationLayer, true)
		if cfg.OpenLayerPane {
			pdf.OpenLayerPane()
		}
	}
	return d
}

func (d *deck) add(slide slides.Slide) error {
	if slide.Kind == styleKind {
		return d.changeStyle(slide)
	}
	tmpl, err := d.cat.Lookup(slide.Kind)
	if err != nil {
		return err
	}
	style := d.cat.Style()
	f, err := d.fonts.face(style.Font)
	if err != nil {
		return err
	}

	d.pdf.AddPage()
	if err := d.background(style); err != nil {
		return err
	}
	if err := d.decorations(tmpl, style); err != nil {
		return err
	}
	if len(slide.Contents) > len(tmpl.Areas) {
		d.logger.Warn("surplus slide contents skipped",
			"kind", slide.Kind, "contents", len(slide.Contents), "areas", len(tmpl.Areas))
	}
	text := style.Text()
	if d.cfg.Boring {
		text = catalog.Color{}
	}
	d.pdf.SetTextColor(int(text.R), int(text.G), int(text.B))
	drawable := d.cat.Margin().Scale(d.page)
	for i, area := range tmpl.Areas {
		if i >= len(slide.Contents) {
			break
		}
		d.pdf.SetFont(f.family, "", area.FontSize)
		box := area.Rect.Scale(drawable)
		if err := d.content(box, area, slide.Contents[i], f, style.LineSpacing); err != nil {
			return err
		}
	}
	return d.pdf.Error()
}

func (d *deck) changeStyle(slide slides.Slide) error {
	if len(slide.Contents) == 0 {
		d.logger.Warn("style slide without a style path")
		return nil
	}
	for _, c := range slide.Contents {
		dir, ok := c.(slides.ConfigDirective)
		if !ok {
			return fmt.Errorf("style slide holds %T, want config directives only", c)
		}
		if err := d.cat.ChangeStyle(resolvePath(d.baseDir, dir.Path)); err != nil {
			return err
		}
	}
	return nil
}

func (d *deck) background(style catalog.Style) error {
	if d.cfg.Boring || style.Background < 0 {
		return nil
	}
	c, err := style.Color(style.Background)
	if err != nil {
		return err
	}
	d.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	d.pdf.Rect(0, 0, d.cfg.PageWidth, d.cfg.PageHeight, "F")
	return nil
}

func (d *deck) decorations(tmpl catalog.SlideTemplate, style catalog.Style) error {
	if d.cfg.Boring || len(tmpl.Decorations) == 0 {
		return nil
	}
	if d.layer >= 0 {
		d.pdf.BeginLayer(d.layer)
		defer d.pdf.EndLayer()
	}
	for _, deco := range tmpl.Decorations {
		c, err := style.Color(deco.Color)
		if err != nil {
			return fmt.Errorf("decoration: %w", err)
		}
		r := deco.Rect.Scale(d.page)
		d.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
		d.pdf.Rect(r.Orig.X, r.Orig.Y, r.Size.X, r.Size.Y, "F")
	}
	return nil
}

func (d *deck) content(box catalog.Rect, area catalog.Area, c slides.Content, f face, spacing float64) error {
	lineHeight := area.FontSize * spacing
	switch c := c.(type) {
	case slides.Text:
		var lines []line
		for _, l := range f.split(d.pdf, f.tr(c.Value), box.Size.X) {
			lines = append(lines, line{text: l})
		}
		d.drawLines(box, area.Orientation, lines, lineHeight)
	case slides.List:
		d.drawLines(box, area.Orientation, d.listLines(box, area, c, f), lineHeight)
	case slides.Image:
		return d.image(box, area, c, f, spacing)
	case slides.ConfigDirective:
		return fmt.Errorf("%w: %q", ErrMisplacedDirective, c.Path)
	default:
		return fmt.Errorf("unsupported content %T", c)
	}
	return nil
}

func (d *deck) listLines(box catalog.Rect, area catalog.Area, list slides.List, f face) []line {
	bulletWidth := d.pdf.GetStringWidth(bulletText + " ")
	var lines []line
	for _, e := range list.Entries {
		indent := math.Min(float64(e.Depth)*area.FontSize, box.Size.X/2)
		width := box.Size.X - indent - bulletWidth
		for i, l := range f.split(d.pdf, f.tr(e.Text), width) {
			lines = append(lines, line{text: l, indent: indent + bulletWidth, bullet: i == 0})
		}
	}
	return lines
}

// drawLines places lines in box following the orientation. Lines that do not
// fit are dropped.
func (d *deck) drawLines(box catalog.Rect, o catalog.Orientation, lines []line, lineHeight float64) {
	if len(lines) == 0 {
		return
	}
	fit := int(math.Floor(box.Size.Y/lineHeight + 1e-6))
	if fit < 1 {
		fit = 1
	}
	if len(lines) > fit {
		d.logger.Warn("content overflows its area", "lines", len(lines), "fit", fit)
		lines = lines[:fit]
	}
	y := box.Orig.Y + verticalOffset(o.Vertical, box.Size.Y, float64(len(lines))*lineHeight)
	align := o.Horizontal.Align() + "M"
	bulletWidth := d.pdf.GetStringWidth(bulletText + " ")
	for _, l := range lines {
		if l.bullet {
			d.pdf.SetXY(box.Orig.X+l.indent-bulletWidth, y)
			d.pdf.CellFormat(bulletWidth, lineHeight, bulletText, "", 0, "LM", false, 0, "")
		}
		d.pdf.SetXY(box.Orig.X+l.indent, y)
		d.pdf.CellFormat(box.Size.X-l.indent, lineHeight, l.text, "", 0, align, false, 0, "")
		y += lineHeight
	}
}

func verticalOffset(v catalog.Vertical, available, used float64) float64 {
	free := math.Max(available-used, 0)
	switch v {
	case catalog.Middle:
		return free / 2
	case catalog.Bottom:
		return free
	default:
		return 0
	}
}

func horizontalOffset(h catalog.Horizontal, available, used float64) float64 {
	free := math.Max(available-used, 0)
	switch h {
	case catalog.Center:
		return free / 2
	case catalog.Right:
		return free
	default:
		return 0
	}
}
