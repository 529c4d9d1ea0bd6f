package pdf

import (
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/jung-kurt/gofpdf"
	"pkt.systems/slides"
	"pkt.systems/slides/catalog"
)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	// Reader supplies slide markup. It is ignored when Slides is set.
	Reader io.Reader
	Slides iter.Seq2[slides.Slide, error]
	Writer io.Writer
	// Catalog defaults to catalog.Default(). Style slides mutate it.
	Catalog *catalog.Catalog
	Config  Config
	// BaseDir resolves relative image, font and style paths.
	BaseDir string
	Logger  *slog.Logger
}

// Render lays out every slide and writes the PDF. Nothing is written when a
// slide fails to parse or render.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	seq := req.Slides
	if seq == nil {
		if req.Reader == nil {
			return fmt.Errorf("pdf render: reader is nil")
		}
		src, err := slides.ReadSource(req.Reader)
		if err != nil {
			return fmt.Errorf("pdf render: %w", err)
		}
		seq = src.Slides()
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	if cfg.PageWidth < 72 || cfg.PageHeight < 72 {
		return fmt.Errorf("pdf render: page %gx%g is too small", cfg.PageWidth, cfg.PageHeight)
	}
	cat := req.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	logger := req.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	d := newDeck(cfg, cat, req.BaseDir, logger)
	n := 0
	for slide, err := range seq {
		if err != nil {
			return fmt.Errorf("pdf render: %w", err)
		}
		n++
		if err := d.add(slide); err != nil {
			return fmt.Errorf("pdf render: slide %d (%s): %w", n, slide.Kind, err)
		}
	}
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	logger.Debug("pdf rendered", "slides", n, "pages", d.pdf.PageCount())
	if err := d.pdf.Output(req.Writer); err != nil {
		return fmt.Errorf("pdf render: output: %w", err)
	}
	return nil
}

func newDocument(cfg Config) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: cfg.PageWidth, Ht: cfg.PageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	if cfg.Title != "" {
		pdf.SetTitle(cfg.Title, true)
	}
	if cfg.Author != "" {
		pdf.SetAuthor(cfg.Author, true)
	}
	pdf.SetCreator("slides", true)
	if !cfg.CreationDate.IsZero() {
		pdf.SetCreationDate(cfg.CreationDate)
	}
	return pdf
}
