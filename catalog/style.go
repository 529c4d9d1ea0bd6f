package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoColor is returned when a palette index is out of range.
var ErrNoColor = errors.New("catalog: no such color")

// DefaultLineSpacing is used when a style omits lineSpace.
const DefaultLineSpacing = 1.2

// DefaultFont is a PDF core font that needs no embedding.
const DefaultFont = "Helvetica"

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// ParseColor reads "#rrggbb", "#rgb" or the same without the hash.
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("color %q: expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex formats c as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Style is the palette and typography shared by every slide until the next
// style change.
type Style struct {
	Colors      []Color
	Font        string
	LineSpacing float64
	// Foreground indexes Colors for text.
	Foreground int
	// Background indexes Colors for the page fill, or is negative for none.
	Background int
}

type styleFile struct {
	Colors     []Color  `yaml:"colors"`
	Font       string   `yaml:"font"`
	LineSpace  *float64 `yaml:"lineSpace"`
	Foreground *int     `yaml:"foreground"`
	Background *int     `yaml:"background"`
}

// DefaultStyle returns the built-in style: dark text on white paper.
func DefaultStyle() Style {
	return Style{
		Colors: []Color{
			{R: 0x11, G: 0x18, B: 0x27},
			{R: 0x25, G: 0x63, B: 0xeb},
			{R: 0xe5, G: 0xe7, B: 0xeb},
		},
		Font:        DefaultFont,
		LineSpacing: DefaultLineSpacing,
		Foreground:  0,
		Background:  -1,
	}
}

// ParseStyle decodes a style document. Omitted fields fall back to
// DefaultStyle.
func ParseStyle(data []byte) (Style, error) {
	var raw styleFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Style{}, fmt.Errorf("parse style: %w", err)
	}
	style := DefaultStyle()
	if len(raw.Colors) > 0 {
		style.Colors = raw.Colors
	}
	if raw.Font != "" {
		style.Font = raw.Font
	}
	if raw.LineSpace != nil {
		if *raw.LineSpace <= 0 {
			return Style{}, fmt.Errorf("parse style: lineSpace %g must be positive", *raw.LineSpace)
		}
		style.LineSpacing = *raw.LineSpace
	}
	if raw.Foreground != nil {
		style.Foreground = *raw.Foreground
	}
	if raw.Background != nil {
		style.Background = *raw.Background
	}
	if _, err := style.Color(style.Foreground); err != nil {
		return Style{}, fmt.Errorf("parse style: foreground: %w", err)
	}
	if style.Background >= 0 {
		if _, err := style.Color(style.Background); err != nil {
			return Style{}, fmt.Errorf("parse style: background: %w", err)
		}
	}
	return style, nil
}

// Color returns the palette entry at i.
func (s Style) Color(i int) (Color, error) {
	if i < 0 || i >= len(s.Colors) {
		return Color{}, fmt.Errorf("%w: index %d, palette has %d", ErrNoColor, i, len(s.Colors))
	}
	return s.Colors[i], nil
}

// Text returns the foreground color.
func (s Style) Text() Color {
	c, err := s.Color(s.Foreground)
	if err != nil {
		return Color{}
	}
	return c
}
