package pdf

import "time"

// Config holds PDF rendering settings.
type Config struct {
	// PageWidth and PageHeight are in points.
	PageWidth  float64
	PageHeight float64
	// DecorationLayer puts template decorations on an optional content
	// layer viewers can hide.
	DecorationLayer bool
	OpenLayerPane   bool
	// Boring ignores style colors: black text, no fills.
	Boring       bool
	Title        string
	Author       string
	CreationDate time.Time
}

const (
	styleKind       = "Style"
	decorationLayer = "decorations"
	captionScale    = 0.6
)

// DefaultConfig returns a 16:9 page of 960x540 points.
func DefaultConfig() Config {
	return Config{
		PageWidth:  960,
		PageHeight: 540,
	}
}

func applyConfig(dst *Config, src Config) {
	if src.PageWidth > 0 {
		dst.PageWidth = src.PageWidth
	}
	if src.PageHeight > 0 {
		dst.PageHeight = src.PageHeight
	}
	if src.DecorationLayer {
		dst.DecorationLayer = src.DecorationLayer
	}
	if src.OpenLayerPane {
		dst.OpenLayerPane = src.OpenLayerPane
	}
	if src.Boring {
		dst.Boring = src.Boring
	}
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.Author != "" {
		dst.Author = src.Author
	}
	if !src.CreationDate.IsZero() {
		dst.CreationDate = src.CreationDate
	}
}
